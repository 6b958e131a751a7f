// Package wallet contains wallet-related use cases.
package wallet

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/walletbook/backend/internal/application/adapter"
	domainerror "github.com/walletbook/backend/internal/domain/error"
)

// DeleteWalletInput represents the input for wallet deactivation.
type DeleteWalletInput struct {
	WalletID uuid.UUID
	UserID   uuid.UUID
}

// DeleteWalletOutput represents the output of wallet deactivation.
type DeleteWalletOutput struct {
	Success bool
}

// DeleteWalletUseCase deactivates a wallet. Deactivation is refused while
// the wallet still holds a balance, so no paid contribution can be stranded
// on an invisible wallet.
type DeleteWalletUseCase struct {
	uow adapter.UnitOfWork
}

// NewDeleteWalletUseCase creates a new DeleteWalletUseCase instance.
func NewDeleteWalletUseCase(uow adapter.UnitOfWork) *DeleteWalletUseCase {
	return &DeleteWalletUseCase{
		uow: uow,
	}
}

// Execute performs the wallet deactivation.
func (uc *DeleteWalletUseCase) Execute(ctx context.Context, input DeleteWalletInput) (*DeleteWalletOutput, error) {
	err := uc.uow.Execute(ctx, func(ctx context.Context, stores adapter.Stores) error {
		wallet, err := stores.Wallets.FindByIDAndUserForUpdate(ctx, input.WalletID, input.UserID)
		if err != nil {
			return domainerror.NewWalletError(
				domainerror.ErrCodeWalletNotFound,
				"wallet not found",
				err,
			)
		}

		if !wallet.Balance.IsZero() {
			return domainerror.NewWalletError(
				domainerror.ErrCodeWalletNotEmpty,
				"wallet balance must be zero before deactivation",
				domainerror.ErrWalletNotEmpty,
			)
		}

		wallet.Active = false
		wallet.UpdatedAt = time.Now().UTC()

		if err := stores.Wallets.Update(ctx, wallet); err != nil {
			return fmt.Errorf("failed to deactivate wallet: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &DeleteWalletOutput{Success: true}, nil
}
