// Package category contains category-related use cases.
package category

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/walletbook/backend/internal/application/adapter"
	domainerror "github.com/walletbook/backend/internal/domain/error"
)

// DeleteCategoryInput represents the input for category deletion.
type DeleteCategoryInput struct {
	CategoryID uuid.UUID
	UserID     uuid.UUID
}

// DeleteCategoryOutput represents the output of category deletion.
type DeleteCategoryOutput struct {
	Success bool
}

// DeleteCategoryUseCase deletes a category. Deletion is refused while any
// entry still references the category; the reference check and the delete
// run in one atomic unit.
type DeleteCategoryUseCase struct {
	uow adapter.UnitOfWork
}

// NewDeleteCategoryUseCase creates a new DeleteCategoryUseCase instance.
func NewDeleteCategoryUseCase(uow adapter.UnitOfWork) *DeleteCategoryUseCase {
	return &DeleteCategoryUseCase{
		uow: uow,
	}
}

// Execute performs the category deletion.
func (uc *DeleteCategoryUseCase) Execute(ctx context.Context, input DeleteCategoryInput) (*DeleteCategoryOutput, error) {
	err := uc.uow.Execute(ctx, func(ctx context.Context, stores adapter.Stores) error {
		category, err := stores.Categories.FindByIDAndUser(ctx, input.CategoryID, input.UserID)
		if err != nil {
			return domainerror.NewCategoryError(
				domainerror.ErrCodeCategoryNotFound,
				"category not found",
				err,
			)
		}

		referenced, err := stores.Entries.CountByCategory(ctx, category.ID)
		if err != nil {
			return fmt.Errorf("failed to count category entries: %w", err)
		}
		if referenced > 0 {
			return domainerror.NewCategoryError(
				domainerror.ErrCodeCategoryInUse,
				"category is referenced by entries",
				domainerror.ErrCategoryInUse,
			)
		}

		if err := stores.Categories.Delete(ctx, category.ID); err != nil {
			return fmt.Errorf("failed to delete category: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &DeleteCategoryOutput{Success: true}, nil
}
