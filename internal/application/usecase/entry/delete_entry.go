// Package entry contains entry-related use cases.
package entry

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/walletbook/backend/internal/application/adapter"
	domainerror "github.com/walletbook/backend/internal/domain/error"
)

// DeleteEntryInput represents the input for entry deletion.
type DeleteEntryInput struct {
	EntryID      uuid.UUID
	UserID       uuid.UUID
	ApplyToGroup bool
}

// DeleteEntryOutput represents the output of entry deletion.
type DeleteEntryOutput struct {
	DeletedCount int
}

// DeleteEntryUseCase handles entry deletion, including group-wide deletes.
// Paid members have their contribution reversed before removal; reversals
// and removals commit as one atomic unit.
type DeleteEntryUseCase struct {
	uow adapter.UnitOfWork
}

// NewDeleteEntryUseCase creates a new DeleteEntryUseCase instance.
func NewDeleteEntryUseCase(uow adapter.UnitOfWork) *DeleteEntryUseCase {
	return &DeleteEntryUseCase{
		uow: uow,
	}
}

// Execute performs the entry deletion.
func (uc *DeleteEntryUseCase) Execute(ctx context.Context, input DeleteEntryInput) (*DeleteEntryOutput, error) {
	var deleted int

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

		ids := make([]uuid.UUID, 0, len(targets))
		for _, e := range targets {
			if e.IsPaid {
				if err := reverseContribution(ctx, stores.Wallets, e); err != nil {
					return err
				}
			}
			ids = append(ids, e.ID)
		}

		if err := stores.Entries.DeleteBatch(ctx, ids); err != nil {
			return fmt.Errorf("failed to delete entries: %w", err)
		}

		deleted = len(ids)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &DeleteEntryOutput{DeletedCount: deleted}, nil
}
