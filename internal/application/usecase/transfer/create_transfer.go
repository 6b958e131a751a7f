// Package transfer contains wallet-to-wallet transfer use cases.
package transfer

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/walletbook/backend/internal/application/adapter"
	"github.com/walletbook/backend/internal/domain/entity"
	domainerror "github.com/walletbook/backend/internal/domain/error"
)

// CreateTransferInput represents the input for transfer creation.
type CreateTransferInput struct {
	UserID       uuid.UUID
	FromWalletID uuid.UUID
	ToWalletID   uuid.UUID
	Amount       decimal.Decimal
	Date         *time.Time
	Description  string
}

// CreateTransferOutput represents the output of transfer creation.
type CreateTransferOutput struct {
	Transfer *TransferOutput
}

// CreateTransferUseCase moves funds between two wallets of the same user.
// The record insert and both balance adjustments commit as one atomic unit.
type CreateTransferUseCase struct {
	uow   adapter.UnitOfWork
	clock adapter.Clock
}

// NewCreateTransferUseCase creates a new CreateTransferUseCase instance.
func NewCreateTransferUseCase(uow adapter.UnitOfWork, clock adapter.Clock) *CreateTransferUseCase {
	return &CreateTransferUseCase{
		uow:   uow,
		clock: clock,
	}
}

// Execute performs the transfer creation.
func (uc *CreateTransferUseCase) Execute(ctx context.Context, input CreateTransferInput) (*CreateTransferOutput, error) {
	if !input.Amount.IsPositive() {
		return nil, domainerror.NewTransferError(
			domainerror.ErrCodeInvalidTransferAmount,
			"transfer amount must be positive",
			domainerror.ErrInvalidTransferAmount,
		)
	}
	if input.FromWalletID == input.ToWalletID {
		return nil, domainerror.NewTransferError(
			domainerror.ErrCodeSameWalletTransfer,
			"source and destination wallets must differ",
			domainerror.ErrSameWalletTransfer,
		)
	}

	var created *entity.Transfer

	err := uc.uow.Execute(ctx, func(ctx context.Context, stores adapter.Stores) error {
		// Lock both wallet rows in a stable order so two opposite transfers
		// between the same pair cannot deadlock.
		source, _, err := uc.lockWallets(ctx, stores.Wallets, input)
		if err != nil {
			return err
		}

		if source.Balance.LessThan(input.Amount) {
			return domainerror.NewTransferError(
				domainerror.ErrCodeInsufficientBalance,
				"source wallet balance is insufficient",
				domainerror.ErrInsufficientBalance,
			)
		}

		date := uc.clock.Now()
		if input.Date != nil {
			date = *input.Date
		}

		created = entity.NewTransfer(
			input.UserID,
			input.FromWalletID,
			input.ToWalletID,
			input.Amount,
			date,
			input.Description,
		)

		if err := stores.Transfers.Create(ctx, created); err != nil {
			return fmt.Errorf("failed to create transfer: %w", err)
		}
		if err := stores.Wallets.AdjustBalance(ctx, input.FromWalletID, input.Amount.Neg()); err != nil {
			return err
		}
		return stores.Wallets.AdjustBalance(ctx, input.ToWalletID, input.Amount)
	})
	if err != nil {
		return nil, err
	}

	return &CreateTransferOutput{Transfer: toTransferOutput(created)}, nil
}

// lockWallets loads both wallets under row locks, lowest wallet ID first,
// and returns them as (source, destination).
func (uc *CreateTransferUseCase) lockWallets(ctx context.Context, wallets adapter.WalletRepository, input CreateTransferInput) (source, destination *entity.Wallet, err error) {
	first, second := input.FromWalletID, input.ToWalletID
	if strings.Compare(first.String(), second.String()) > 0 {
		first, second = second, first
	}

	a, err := wallets.FindByIDAndUserForUpdate(ctx, first, input.UserID)
	if err != nil {
		return nil, nil, walletNotFoundError(err)
	}
	b, err := wallets.FindByIDAndUserForUpdate(ctx, second, input.UserID)
	if err != nil {
		return nil, nil, walletNotFoundError(err)
	}

	if a.ID == input.FromWalletID {
		return a, b, nil
	}
	return b, a, nil
}

func walletNotFoundError(err error) error {
	return domainerror.NewTransferError(
		domainerror.ErrCodeTransferWalletMissing,
		"wallet not found",
		err,
	)
}
