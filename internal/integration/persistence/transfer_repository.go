// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/walletbook/backend/internal/application/adapter"
	"github.com/walletbook/backend/internal/domain/entity"
	domainerror "github.com/walletbook/backend/internal/domain/error"
	"github.com/walletbook/backend/internal/integration/persistence/model"
)

// transferRepository implements the adapter.TransferRepository interface.
type transferRepository struct {
	db *gorm.DB
}

// NewTransferRepository creates a new transfer repository instance.
func NewTransferRepository(db *gorm.DB) adapter.TransferRepository {
	return &transferRepository{
		db: db,
	}
}

// Create creates a new transfer record in the database.
func (r *transferRepository) Create(ctx context.Context, transfer *entity.Transfer) error {
	transferModel := model.TransferFromEntity(transfer)
	result := r.db.WithContext(ctx).Create(transferModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByIDAndUser retrieves a transfer by ID for the given user.
func (r *transferRepository) FindByIDAndUser(ctx context.Context, id, userID uuid.UUID) (*entity.Transfer, error) {
	var transferModel model.TransferModel
	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&transferModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrTransferNotFound
		}
		return nil, result.Error
	}
	return transferModel.ToEntity(), nil
}

// FindByUser retrieves transfers for a user, optionally bounded by date.
func (r *transferRepository) FindByUser(ctx context.Context, userID uuid.UUID, startDate, endDate *time.Time) ([]*entity.Transfer, error) {
	query := r.db.WithContext(ctx).Where("user_id = ?", userID)

	if startDate != nil {
		query = query.Where("date >= ?", startDate)
	}
	if endDate != nil {
		query = query.Where("date <= ?", endDate)
	}

	var transferModels []model.TransferModel
	result := query.
		Order("date DESC, created_at DESC").
		Find(&transferModels)
	if result.Error != nil {
		return nil, result.Error
	}

	transfers := make([]*entity.Transfer, len(transferModels))
	for i, tm := range transferModels {
		transfers[i] = tm.ToEntity()
	}
	return transfers, nil
}

// Delete removes a transfer record from the database.
func (r *transferRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.TransferModel{})
	return result.Error
}
