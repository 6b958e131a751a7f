// Package entry contains entry-related use cases.
package entry

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/walletbook/backend/internal/application/adapter"
)

const (
	defaultPage  = 1
	defaultLimit = 50
	maxLimit     = 200
)

// ListEntriesInput represents the input for listing entries.
type ListEntriesInput struct {
	UserID     uuid.UUID
	WalletID   *uuid.UUID
	CategoryID *uuid.UUID
	IsPaid     *bool
	StartDate  *time.Time
	EndDate    *time.Time
	Search     string
	Page       int
	Limit      int
}

// ListEntriesOutput represents the output of listing entries.
type ListEntriesOutput struct {
	Entries    []*EntryOutput
	Total      int64
	Page       int
	Limit      int
	TotalPages int
}

// ListEntriesUseCase handles entry listing logic.
type ListEntriesUseCase struct {
	entryRepo adapter.EntryRepository
}

// NewListEntriesUseCase creates a new ListEntriesUseCase instance.
func NewListEntriesUseCase(entryRepo adapter.EntryRepository) *ListEntriesUseCase {
	return &ListEntriesUseCase{
		entryRepo: entryRepo,
	}
}

// Execute performs the entry listing.
func (uc *ListEntriesUseCase) Execute(ctx context.Context, input ListEntriesInput) (*ListEntriesOutput, error) {
	page := input.Page
	if page < 1 {
		page = defaultPage
	}
	limit := input.Limit
	if limit < 1 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}

	result, err := uc.entryRepo.FindByFilter(ctx,
		adapter.EntryFilter{
			UserID:     input.UserID,
			WalletID:   input.WalletID,
			CategoryID: input.CategoryID,
			IsPaid:     input.IsPaid,
			StartDate:  input.StartDate,
			EndDate:    input.EndDate,
			Search:     input.Search,
		},
		adapter.EntryPagination{
			Page:  page,
			Limit: limit,
		},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list entries: %w", err)
	}

	return &ListEntriesOutput{
		Entries:    toEntryOutputs(result.Entries),
		Total:      result.Total,
		Page:       result.Page,
		Limit:      result.Limit,
		TotalPages: result.TotalPages,
	}, nil
}
