// Package entry contains entry-related use cases.
package entry

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/walletbook/backend/internal/application/adapter"
	"github.com/walletbook/backend/internal/domain/entity"
	domainerror "github.com/walletbook/backend/internal/domain/error"
)

const (
	// MaxDescriptionLength is the maximum allowed length for entry descriptions.
	MaxDescriptionLength = 255
	// MaxNotesLength is the maximum allowed length for entry notes.
	MaxNotesLength = 1000
	// MaxInstallmentCount bounds a single installment request, matching the
	// fixed length of a generated recurring series.
	MaxInstallmentCount = 36
)

// CreateEntryInput represents the input for entry creation.
type CreateEntryInput struct {
	UserID      uuid.UUID
	WalletID    uuid.UUID
	CategoryID  uuid.UUID
	Description string
	Amount      decimal.Decimal
	Type        entity.EntryType
	DueDate     time.Time
	Notes       string

	// Singleton paid state. Ignored when either series flag is set: series
	// members always start unpaid.
	IsPaid      bool
	PaymentDate *time.Time

	IsRecurring bool
	Recurrence  *entity.Recurrence

	IsInstallment    bool
	InstallmentCount *int
}

// CreateEntryOutput represents the output of entry creation: the full created
// set, one entry for singletons or the whole generated series.
type CreateEntryOutput struct {
	Entries []*EntryOutput
}

// CreateEntryUseCase handles entry creation, including recurring and
// installment series expansion.
type CreateEntryUseCase struct {
	uow   adapter.UnitOfWork
	clock adapter.Clock
}

// NewCreateEntryUseCase creates a new CreateEntryUseCase instance.
func NewCreateEntryUseCase(uow adapter.UnitOfWork, clock adapter.Clock) *CreateEntryUseCase {
	return &CreateEntryUseCase{
		uow:   uow,
		clock: clock,
	}
}

// Execute performs the entry creation.
func (uc *CreateEntryUseCase) Execute(ctx context.Context, input CreateEntryInput) (*CreateEntryOutput, error) {
	if err := validateCreateInput(input); err != nil {
		return nil, err
	}

	var created []*entity.Entry

	err := uc.uow.Execute(ctx, func(ctx context.Context, stores adapter.Stores) error {
		if _, err := stores.Wallets.FindByIDAndUser(ctx, input.WalletID, input.UserID); err != nil {
			return domainerror.NewEntryError(
				domainerror.ErrCodeEntryWalletNotFound,
				"wallet not found",
				err,
			)
		}

		category, err := stores.Categories.FindByIDAndUser(ctx, input.CategoryID, input.UserID)
		if err != nil {
			return domainerror.NewEntryError(
				domainerror.ErrCodeEntryCategoryNotFound,
				"category not found",
				err,
			)
		}
		if string(category.Type) != string(input.Type) {
			return domainerror.NewEntryError(
				domainerror.ErrCodeEntryTypeMismatch,
				"entry type does not match category type",
				domainerror.ErrCategoryTypeMismatch,
			)
		}

		template := entity.NewEntry(
			input.UserID,
			input.WalletID,
			input.CategoryID,
			input.Description,
			input.Amount,
			input.Type,
			input.DueDate,
			input.Notes,
		)

		switch {
		case input.IsRecurring:
			created = expandRecurring(template, *input.Recurrence)
			return stores.Entries.CreateBatch(ctx, created)

		case input.IsInstallment:
			created = expandInstallments(template, input.Amount, *input.InstallmentCount)
			return stores.Entries.CreateBatch(ctx, created)

		default:
			if input.IsPaid {
				template.IsPaid = true
				paymentDate := uc.clock.Now()
				if input.PaymentDate != nil {
					paymentDate = *input.PaymentDate
				}
				template.PaymentDate = &paymentDate
			}

			if err := stores.Entries.Create(ctx, template); err != nil {
				return err
			}
			if template.IsPaid {
				if err := applyContribution(ctx, stores.Wallets, template); err != nil {
					return err
				}
			}
			created = []*entity.Entry{template}
			return nil
		}
	})
	if err != nil {
		return nil, err
	}

	return &CreateEntryOutput{Entries: toEntryOutputs(created)}, nil
}

// validateCreateInput checks the structural rules of a create request before
// any storage is touched.
func validateCreateInput(input CreateEntryInput) error {
	if input.Type != entity.EntryTypeExpense && input.Type != entity.EntryTypeIncome {
		return domainerror.NewEntryError(
			domainerror.ErrCodeInvalidEntryType,
			"entry type must be 'expense' or 'income'",
			domainerror.ErrInvalidEntryType,
		)
	}

	if !input.Amount.IsPositive() {
		return domainerror.NewEntryError(
			domainerror.ErrCodeInvalidEntryAmount,
			"entry amount must be positive",
			domainerror.ErrInvalidEntryAmount,
		)
	}

	if len(input.Description) > MaxDescriptionLength {
		return domainerror.NewEntryError(
			domainerror.ErrCodeMissingEntryFields,
			fmt.Sprintf("description must not exceed %d characters", MaxDescriptionLength),
			nil,
		)
	}
	if len(input.Notes) > MaxNotesLength {
		return domainerror.NewEntryError(
			domainerror.ErrCodeMissingEntryFields,
			fmt.Sprintf("notes must not exceed %d characters", MaxNotesLength),
			nil,
		)
	}

	if input.IsRecurring && input.IsInstallment {
		return domainerror.NewEntryError(
			domainerror.ErrCodeRecurringAndInstallment,
			"entry cannot be recurring and installment at the same time",
			domainerror.ErrRecurringAndInstallment,
		)
	}

	if input.IsRecurring {
		if input.Recurrence == nil {
			return domainerror.NewEntryError(
				domainerror.ErrCodeMissingRecurrence,
				"recurring entry requires a recurrence kind",
				domainerror.ErrMissingRecurrence,
			)
		}
		if !entity.IsValidRecurrence(*input.Recurrence) {
			return domainerror.NewEntryError(
				domainerror.ErrCodeInvalidRecurrence,
				"recurrence must be 'weekly', 'monthly', 'yearly' or 'open_ended'",
				domainerror.ErrInvalidRecurrence,
			)
		}
	}

	if input.IsInstallment {
		if input.InstallmentCount == nil || *input.InstallmentCount < 1 {
			return domainerror.NewEntryError(
				domainerror.ErrCodeMissingInstallmentCount,
				"installment entry requires an installment count of at least 1",
				domainerror.ErrMissingInstallmentCount,
			)
		}
		if *input.InstallmentCount > MaxInstallmentCount {
			return domainerror.NewEntryError(
				domainerror.ErrCodeInvalidInstallmentCount,
				fmt.Sprintf("installment count must not exceed %d", MaxInstallmentCount),
				domainerror.ErrInvalidInstallmentCount,
			)
		}
		// Each installment must carry at least one cent, so the split
		// never produces a zero or negative part.
		minTotal := decimal.New(int64(*input.InstallmentCount), -2)
		if input.Amount.LessThan(minTotal) {
			return domainerror.NewEntryError(
				domainerror.ErrCodeInvalidInstallmentCount,
				fmt.Sprintf("amount is too small to split into %d installments", *input.InstallmentCount),
				domainerror.ErrInvalidInstallmentCount,
			)
		}
	}

	return nil
}
