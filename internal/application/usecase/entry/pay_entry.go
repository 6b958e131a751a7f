// Package entry contains entry-related use cases.
package entry

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/walletbook/backend/internal/application/adapter"
	"github.com/walletbook/backend/internal/domain/entity"
	domainerror "github.com/walletbook/backend/internal/domain/error"
)

// PayEntryInput represents the input for paying an entry. Pay is always a
// single-entry operation, never group-wide.
type PayEntryInput struct {
	EntryID     uuid.UUID
	UserID      uuid.UUID
	PaymentDate *time.Time
}

// PayEntryOutput represents the output of paying an entry.
type PayEntryOutput struct {
	Entry *EntryOutput
}

// PayEntryUseCase marks an entry paid, applies its balance contribution and
// stamps the payment date.
type PayEntryUseCase struct {
	uow   adapter.UnitOfWork
	clock adapter.Clock
}

// NewPayEntryUseCase creates a new PayEntryUseCase instance.
func NewPayEntryUseCase(uow adapter.UnitOfWork, clock adapter.Clock) *PayEntryUseCase {
	return &PayEntryUseCase{
		uow:   uow,
		clock: clock,
	}
}

// Execute performs the payment.
func (uc *PayEntryUseCase) Execute(ctx context.Context, input PayEntryInput) (*PayEntryOutput, error) {
	var paid *entity.Entry

	err := uc.uow.Execute(ctx, func(ctx context.Context, stores adapter.Stores) error {
		e, err := stores.Entries.FindByIDAndUser(ctx, input.EntryID, input.UserID)
		if err != nil {
			return domainerror.NewEntryError(
				domainerror.ErrCodeEntryNotFound,
				"entry not found",
				err,
			)
		}

		if e.IsPaid {
			return domainerror.NewEntryError(
				domainerror.ErrCodeEntryAlreadyPaid,
				"entry is already paid",
				domainerror.ErrEntryAlreadyPaid,
			)
		}

		paymentDate := uc.clock.Now()
		if input.PaymentDate != nil {
			paymentDate = *input.PaymentDate
		}

		e.IsPaid = true
		e.PaymentDate = &paymentDate
		e.UpdatedAt = uc.clock.Now()

		if err := applyContribution(ctx, stores.Wallets, e); err != nil {
			return err
		}
		if err := stores.Entries.Update(ctx, e); err != nil {
			return fmt.Errorf("failed to update entry: %w", err)
		}

		paid = e
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &PayEntryOutput{Entry: toEntryOutput(paid)}, nil
}
