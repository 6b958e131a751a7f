// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/walletbook/backend/internal/domain/entity"
)

// TransferRepository defines the interface for transfer persistence operations.
type TransferRepository interface {
	// Create creates a new transfer record in the database.
	Create(ctx context.Context, transfer *entity.Transfer) error

	// FindByIDAndUser retrieves a transfer by ID for the given user.
	FindByIDAndUser(ctx context.Context, id, userID uuid.UUID) (*entity.Transfer, error)

	// FindByUser retrieves transfers for a user, optionally bounded by date.
	FindByUser(ctx context.Context, userID uuid.UUID, startDate, endDate *time.Time) ([]*entity.Transfer, error)

	// Delete removes a transfer record from the database.
	Delete(ctx context.Context, id uuid.UUID) error
}
