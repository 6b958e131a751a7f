// Package wallet contains wallet-related use cases.
package wallet

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/walletbook/backend/internal/application/adapter"
	"github.com/walletbook/backend/internal/domain/entity"
)

// WalletOutput represents a wallet returned by the wallet use cases.
type WalletOutput struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Name      string
	Balance   decimal.Decimal
	Active    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// toWalletOutput converts a domain wallet to its use-case output shape.
func toWalletOutput(w *entity.Wallet) *WalletOutput {
	return &WalletOutput{
		ID:        w.ID,
		UserID:    w.UserID,
		Name:      w.Name,
		Balance:   w.Balance,
		Active:    w.Active,
		CreatedAt: w.CreatedAt,
		UpdatedAt: w.UpdatedAt,
	}
}

// ListWalletsInput represents the input for listing wallets.
type ListWalletsInput struct {
	UserID uuid.UUID
}

// ListWalletsOutput represents the output of listing wallets.
type ListWalletsOutput struct {
	Wallets []*WalletOutput
}

// ListWalletsUseCase handles wallet listing logic.
type ListWalletsUseCase struct {
	walletRepo adapter.WalletRepository
}

// NewListWalletsUseCase creates a new ListWalletsUseCase instance.
func NewListWalletsUseCase(walletRepo adapter.WalletRepository) *ListWalletsUseCase {
	return &ListWalletsUseCase{
		walletRepo: walletRepo,
	}
}

// Execute performs the wallet listing.
func (uc *ListWalletsUseCase) Execute(ctx context.Context, input ListWalletsInput) (*ListWalletsOutput, error) {
	wallets, err := uc.walletRepo.FindByUser(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list wallets: %w", err)
	}

	outputs := make([]*WalletOutput, len(wallets))
	for i, w := range wallets {
		outputs[i] = toWalletOutput(w)
	}

	return &ListWalletsOutput{Wallets: outputs}, nil
}
