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

// UpdateEntryInput represents the input for entry update. Nil fields are
// left unchanged. When ApplyToGroup is set and the target entry belongs to a
// recurring or installment series, the change applies to every member of the
// series.
type UpdateEntryInput struct {
	EntryID      uuid.UUID
	UserID       uuid.UUID
	ApplyToGroup bool

	WalletID    *uuid.UUID
	CategoryID  *uuid.UUID
	Description *string
	Amount      *decimal.Decimal
	Type        *entity.EntryType
	DueDate     *time.Time
	Notes       *string
	IsPaid      *bool
	PaymentDate *time.Time
}

// UpdateEntryOutput represents the output of entry update: the full mutated set.
type UpdateEntryOutput struct {
	Entries []*EntryOutput
}

// UpdateEntryUseCase handles entry update logic, including group-wide bulk
// edits and paid-state reconciliation.
type UpdateEntryUseCase struct {
	uow   adapter.UnitOfWork
	clock adapter.Clock
}

// NewUpdateEntryUseCase creates a new UpdateEntryUseCase instance.
func NewUpdateEntryUseCase(uow adapter.UnitOfWork, clock adapter.Clock) *UpdateEntryUseCase {
	return &UpdateEntryUseCase{
		uow:   uow,
		clock: clock,
	}
}

// Execute performs the entry update.
func (uc *UpdateEntryUseCase) Execute(ctx context.Context, input UpdateEntryInput) (*UpdateEntryOutput, error) {
	if err := validateUpdateInput(input); err != nil {
		return nil, err
	}

	var updated []*entity.Entry

	err := uc.uow.Execute(ctx, func(ctx context.Context, stores adapter.Stores) error {
		target, err := stores.Entries.FindByIDAndUser(ctx, input.EntryID, input.UserID)
		if err != nil {
			return domainerror.NewEntryError(
				domainerror.ErrCodeEntryNotFound,
				"entry not found",
				err,
			)
		}

		targets, err := resolveTargetSet(ctx, stores.Entries, target, input.ApplyToGroup)
		if err != nil {
			return err
		}

		// Validate replacement references once, before mutating anything.
		if input.WalletID != nil {
			if _, err := stores.Wallets.FindByIDAndUser(ctx, *input.WalletID, input.UserID); err != nil {
				return domainerror.NewEntryError(
					domainerror.ErrCodeEntryWalletNotFound,
					"wallet not found",
					err,
				)
			}
		}

		var replacementCategory *entity.Category
		if input.CategoryID != nil {
			replacementCategory, err = stores.Categories.FindByIDAndUser(ctx, *input.CategoryID, input.UserID)
			if err != nil {
				return domainerror.NewEntryError(
					domainerror.ErrCodeEntryCategoryNotFound,
					"category not found",
					err,
				)
			}
		}

		now := uc.clock.Now()
		for _, e := range targets {
			before := *e

			applyFieldChanges(e, input)

			if err := uc.checkTypeMatch(ctx, stores.Categories, e, replacementCategory); err != nil {
				return err
			}

			// Paid transitions stamp or clear the payment date.
			if !before.IsPaid && e.IsPaid && e.PaymentDate == nil {
				paymentDate := now
				e.PaymentDate = &paymentDate
			}
			if before.IsPaid && !e.IsPaid {
				e.PaymentDate = nil
			}

			if err := reconcileUpdate(ctx, stores.Wallets, &before, e); err != nil {
				return err
			}

			e.UpdatedAt = now
			if err := stores.Entries.Update(ctx, e); err != nil {
				return fmt.Errorf("failed to update entry: %w", err)
			}
		}

		updated = targets
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &UpdateEntryOutput{Entries: toEntryOutputs(updated)}, nil
}

// resolveTargetSet expands the target to the whole series when requested.
// A singleton, or applyToGroup on a non-grouped entry, resolves to itself.
func resolveTargetSet(ctx context.Context, entries adapter.EntryRepository, target *entity.Entry, applyToGroup bool) ([]*entity.Entry, error) {
	groupID, ok := target.Group.GroupID()
	if !applyToGroup || !ok {
		return []*entity.Entry{target}, nil
	}

	members, err := entries.FindByGroupAndUser(ctx, groupID, target.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve entry group: %w", err)
	}
	return members, nil
}

// applyFieldChanges copies the provided fields of the input onto the entry.
func applyFieldChanges(e *entity.Entry, input UpdateEntryInput) {
	if input.WalletID != nil {
		e.WalletID = *input.WalletID
	}
	if input.CategoryID != nil {
		e.CategoryID = *input.CategoryID
	}
	if input.Description != nil {
		e.Description = *input.Description
	}
	if input.Amount != nil {
		e.Amount = *input.Amount
	}
	if input.Type != nil {
		e.Type = *input.Type
	}
	if input.DueDate != nil {
		e.DueDate = *input.DueDate
	}
	if input.Notes != nil {
		e.Notes = *input.Notes
	}
	if input.IsPaid != nil {
		e.IsPaid = *input.IsPaid
	}
	if input.PaymentDate != nil {
		e.PaymentDate = input.PaymentDate
	}
}

// checkTypeMatch verifies the post-update entry type still matches the
// post-update category type. Categories are fetched lazily; the replacement
// category, when present, covers the whole target set.
func (uc *UpdateEntryUseCase) checkTypeMatch(ctx context.Context, categories adapter.CategoryRepository, e *entity.Entry, replacement *entity.Category) error {
	category := replacement
	if category == nil {
		var err error
		category, err = categories.FindByIDAndUser(ctx, e.CategoryID, e.UserID)
		if err != nil {
			return domainerror.NewEntryError(
				domainerror.ErrCodeEntryCategoryNotFound,
				"category not found",
				err,
			)
		}
	}

	if string(category.Type) != string(e.Type) {
		return domainerror.NewEntryError(
			domainerror.ErrCodeEntryTypeMismatch,
			"entry type does not match category type",
			domainerror.ErrCategoryTypeMismatch,
		)
	}
	return nil
}

// validateUpdateInput checks the structural rules of an update request.
func validateUpdateInput(input UpdateEntryInput) error {
	if input.Amount != nil && !input.Amount.IsPositive() {
		return domainerror.NewEntryError(
			domainerror.ErrCodeInvalidEntryAmount,
			"entry amount must be positive",
			domainerror.ErrInvalidEntryAmount,
		)
	}
	if input.Type != nil && *input.Type != entity.EntryTypeExpense && *input.Type != entity.EntryTypeIncome {
		return domainerror.NewEntryError(
			domainerror.ErrCodeInvalidEntryType,
			"entry type must be 'expense' or 'income'",
			domainerror.ErrInvalidEntryType,
		)
	}
	if input.Description != nil && len(*input.Description) > MaxDescriptionLength {
		return domainerror.NewEntryError(
			domainerror.ErrCodeMissingEntryFields,
			fmt.Sprintf("description must not exceed %d characters", MaxDescriptionLength),
			nil,
		)
	}
	if input.Notes != nil && len(*input.Notes) > MaxNotesLength {
		return domainerror.NewEntryError(
			domainerror.ErrCodeMissingEntryFields,
			fmt.Sprintf("notes must not exceed %d characters", MaxNotesLength),
			nil,
		)
	}
	return nil
}
