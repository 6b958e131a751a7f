// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/walletbook/backend/internal/domain/entity"
)

// EntryFilter defines filter options for listing entries.
type EntryFilter struct {
	UserID     uuid.UUID
	WalletID   *uuid.UUID
	CategoryID *uuid.UUID
	IsPaid     *bool
	StartDate  *time.Time
	EndDate    *time.Time
	Search     string // Case-insensitive description match
}

// EntryPagination defines pagination options.
type EntryPagination struct {
	Page  int
	Limit int
}

// EntryListResult represents the result of listing entries.
type EntryListResult struct {
	Entries    []*entity.Entry
	Total      int64
	Page       int
	Limit      int
	TotalPages int
}

// EntryRepository defines the interface for entry persistence operations.
type EntryRepository interface {
	// Create creates a new entry in the database.
	Create(ctx context.Context, entry *entity.Entry) error

	// CreateBatch creates all entries of a generated series.
	CreateBatch(ctx context.Context, entries []*entity.Entry) error

	// FindByIDAndUser retrieves an entry by ID for the given user.
	FindByIDAndUser(ctx context.Context, id, userID uuid.UUID) (*entity.Entry, error)

	// FindByGroupAndUser retrieves every entry sharing the given recurrence
	// or installment group ID, ordered by due date.
	FindByGroupAndUser(ctx context.Context, groupID, userID uuid.UUID) ([]*entity.Entry, error)

	// FindByFilter retrieves entries based on filter criteria with pagination.
	FindByFilter(ctx context.Context, filter EntryFilter, pagination EntryPagination) (*EntryListResult, error)

	// Update updates an existing entry in the database.
	Update(ctx context.Context, entry *entity.Entry) error

	// DeleteBatch soft-deletes the given entries.
	DeleteBatch(ctx context.Context, ids []uuid.UUID) error

	// CountByCategory counts live entries referencing the given category.
	CountByCategory(ctx context.Context, categoryID uuid.UUID) (int64, error)

	// CountByWallet counts live entries referencing the given wallet.
	CountByWallet(ctx context.Context, walletID uuid.UUID) (int64, error)

	// SumPaidByWallet recomputes the signed sum of all paid entries on a
	// wallet directly from the rows. Used to audit the cached balance.
	SumPaidByWallet(ctx context.Context, walletID uuid.UUID) (decimal.Decimal, error)
}
