// Package transfer contains wallet-to-wallet transfer use cases.
package transfer

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/walletbook/backend/internal/application/adapter"
	"github.com/walletbook/backend/internal/domain/entity"
)

// TransferOutput represents a transfer returned by the transfer use cases.
type TransferOutput struct {
	ID           uuid.UUID
	UserID       uuid.UUID
	FromWalletID uuid.UUID
	ToWalletID   uuid.UUID
	Amount       decimal.Decimal
	Date         time.Time
	Description  string
	CreatedAt    time.Time
}

// toTransferOutput converts a domain transfer to its use-case output shape.
func toTransferOutput(t *entity.Transfer) *TransferOutput {
	return &TransferOutput{
		ID:           t.ID,
		UserID:       t.UserID,
		FromWalletID: t.FromWalletID,
		ToWalletID:   t.ToWalletID,
		Amount:       t.Amount,
		Date:         t.Date,
		Description:  t.Description,
		CreatedAt:    t.CreatedAt,
	}
}

// ListTransfersInput represents the input for listing transfers.
type ListTransfersInput struct {
	UserID    uuid.UUID
	StartDate *time.Time
	EndDate   *time.Time
}

// ListTransfersOutput represents the output of listing transfers.
type ListTransfersOutput struct {
	Transfers []*TransferOutput
}

// ListTransfersUseCase handles transfer listing logic.
type ListTransfersUseCase struct {
	transferRepo adapter.TransferRepository
}

// NewListTransfersUseCase creates a new ListTransfersUseCase instance.
func NewListTransfersUseCase(transferRepo adapter.TransferRepository) *ListTransfersUseCase {
	return &ListTransfersUseCase{
		transferRepo: transferRepo,
	}
}

// Execute performs the transfer listing.
func (uc *ListTransfersUseCase) Execute(ctx context.Context, input ListTransfersInput) (*ListTransfersOutput, error) {
	transfers, err := uc.transferRepo.FindByUser(ctx, input.UserID, input.StartDate, input.EndDate)
	if err != nil {
		return nil, fmt.Errorf("failed to list transfers: %w", err)
	}

	outputs := make([]*TransferOutput, len(transfers))
	for i, t := range transfers {
		outputs[i] = toTransferOutput(t)
	}

	return &ListTransfersOutput{Transfers: outputs}, nil
}
