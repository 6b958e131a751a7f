// Package transfer contains wallet-to-wallet transfer use cases.
package transfer

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/walletbook/backend/internal/application/adapter"
	domainerror "github.com/walletbook/backend/internal/domain/error"
)

// DeleteTransferInput represents the input for transfer deletion.
type DeleteTransferInput struct {
	TransferID uuid.UUID
	UserID     uuid.UUID
}

// DeleteTransferOutput represents the output of transfer deletion.
type DeleteTransferOutput struct {
	Success bool
}

// DeleteTransferUseCase removes a transfer and reverses its balance effect
// on both wallets as one atomic unit.
type DeleteTransferUseCase struct {
	uow adapter.UnitOfWork
}

// NewDeleteTransferUseCase creates a new DeleteTransferUseCase instance.
func NewDeleteTransferUseCase(uow adapter.UnitOfWork) *DeleteTransferUseCase {
	return &DeleteTransferUseCase{
		uow: uow,
	}
}

// Execute performs the transfer deletion.
func (uc *DeleteTransferUseCase) Execute(ctx context.Context, input DeleteTransferInput) (*DeleteTransferOutput, error) {
	err := uc.uow.Execute(ctx, func(ctx context.Context, stores adapter.Stores) error {
		transfer, err := stores.Transfers.FindByIDAndUser(ctx, input.TransferID, input.UserID)
		if err != nil {
			return domainerror.NewTransferError(
				domainerror.ErrCodeTransferNotFound,
				"transfer not found",
				err,
			)
		}

		if err := stores.Wallets.AdjustBalance(ctx, transfer.FromWalletID, transfer.Amount); err != nil {
			return err
		}
		if err := stores.Wallets.AdjustBalance(ctx, transfer.ToWalletID, transfer.Amount.Neg()); err != nil {
			return err
		}
		if err := stores.Transfers.Delete(ctx, transfer.ID); err != nil {
			return fmt.Errorf("failed to delete transfer: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &DeleteTransferOutput{Success: true}, nil
}
