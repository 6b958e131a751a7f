// Package wallet contains wallet-related use cases.
package wallet

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/walletbook/backend/internal/application/adapter"
	domainerror "github.com/walletbook/backend/internal/domain/error"
)

// UpdateWalletInput represents the input for wallet update. Only the display
// name is mutable; the balance is never client-writable.
type UpdateWalletInput struct {
	WalletID uuid.UUID
	UserID   uuid.UUID
	Name     string
}

// UpdateWalletOutput represents the output of wallet update.
type UpdateWalletOutput struct {
	Wallet *WalletOutput
}

// UpdateWalletUseCase handles wallet update logic.
type UpdateWalletUseCase struct {
	walletRepo adapter.WalletRepository
}

// NewUpdateWalletUseCase creates a new UpdateWalletUseCase instance.
func NewUpdateWalletUseCase(walletRepo adapter.WalletRepository) *UpdateWalletUseCase {
	return &UpdateWalletUseCase{
		walletRepo: walletRepo,
	}
}

// Execute performs the wallet update.
func (uc *UpdateWalletUseCase) Execute(ctx context.Context, input UpdateWalletInput) (*UpdateWalletOutput, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, domainerror.NewWalletError(
			domainerror.ErrCodeWalletNameRequired,
			"wallet name is required",
			domainerror.ErrWalletNameRequired,
		)
	}

	wallet, err := uc.walletRepo.FindByIDAndUser(ctx, input.WalletID, input.UserID)
	if err != nil {
		return nil, domainerror.NewWalletError(
			domainerror.ErrCodeWalletNotFound,
			"wallet not found",
			err,
		)
	}

	wallet.Name = name
	wallet.UpdatedAt = time.Now().UTC()

	if err := uc.walletRepo.Update(ctx, wallet); err != nil {
		return nil, fmt.Errorf("failed to update wallet: %w", err)
	}

	return &UpdateWalletOutput{Wallet: toWalletOutput(wallet)}, nil
}
