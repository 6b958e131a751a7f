// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/walletbook/backend/internal/domain/entity"
)

// WalletRepository defines the interface for wallet persistence operations.
// All lookups are scoped by the owning user: a wallet owned by another user
// behaves exactly like a missing one.
type WalletRepository interface {
	// Create creates a new wallet in the database.
	Create(ctx context.Context, wallet *entity.Wallet) error

	// FindByIDAndUser retrieves a wallet by ID for the given user.
	FindByIDAndUser(ctx context.Context, id, userID uuid.UUID) (*entity.Wallet, error)

	// FindByIDAndUserForUpdate retrieves a wallet like FindByIDAndUser but
	// takes a row lock when the backing store supports one. Only meaningful
	// inside a unit of work.
	FindByIDAndUserForUpdate(ctx context.Context, id, userID uuid.UUID) (*entity.Wallet, error)

	// FindByUser retrieves all active wallets for a given user.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Wallet, error)

	// Update updates a wallet's mutable fields (name, active flag).
	// The balance column is deliberately excluded; use AdjustBalance.
	Update(ctx context.Context, wallet *entity.Wallet) error

	// AdjustBalance applies a relative delta to the wallet's cached balance
	// as a single SQL increment.
	AdjustBalance(ctx context.Context, id uuid.UUID, delta decimal.Decimal) error
}
