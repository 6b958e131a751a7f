// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/walletbook/backend/internal/application/adapter"
	"github.com/walletbook/backend/internal/domain/entity"
	domainerror "github.com/walletbook/backend/internal/domain/error"
	"github.com/walletbook/backend/internal/integration/persistence/model"
)

// entryRepository implements the adapter.EntryRepository interface.
type entryRepository struct {
	db *gorm.DB
}

// NewEntryRepository creates a new entry repository instance.
func NewEntryRepository(db *gorm.DB) adapter.EntryRepository {
	return &entryRepository{
		db: db,
	}
}

// Create creates a new entry in the database.
func (r *entryRepository) Create(ctx context.Context, entry *entity.Entry) error {
	entryModel := model.EntryFromEntity(entry)
	result := r.db.WithContext(ctx).Create(entryModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// CreateBatch creates all entries of a generated series in one statement.
func (r *entryRepository) CreateBatch(ctx context.Context, entries []*entity.Entry) error {
	if len(entries) == 0 {
		return nil
	}

	entryModels := make([]*model.EntryModel, len(entries))
	for i, e := range entries {
		entryModels[i] = model.EntryFromEntity(e)
	}

	result := r.db.WithContext(ctx).Create(entryModels)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByIDAndUser retrieves an entry by ID for the given user.
func (r *entryRepository) FindByIDAndUser(ctx context.Context, id, userID uuid.UUID) (*entity.Entry, error) {
	var entryModel model.EntryModel
	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&entryModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrEntryNotFound
		}
		return nil, result.Error
	}
	return entryModel.ToEntity(), nil
}

// FindByGroupAndUser retrieves every entry sharing the given recurrence or
// installment group ID, ordered by due date.
func (r *entryRepository) FindByGroupAndUser(ctx context.Context, groupID, userID uuid.UUID) ([]*entity.Entry, error) {
	var entryModels []model.EntryModel
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Where("recurrence_group_id = ? OR installment_group_id = ?", groupID, groupID).
		Order("due_date ASC, created_at ASC").
		Find(&entryModels)
	if result.Error != nil {
		return nil, result.Error
	}

	entries := make([]*entity.Entry, len(entryModels))
	for i, em := range entryModels {
		entries[i] = em.ToEntity()
	}
	return entries, nil
}

// FindByFilter retrieves entries based on filter criteria with pagination.
func (r *entryRepository) FindByFilter(ctx context.Context, filter adapter.EntryFilter, pagination adapter.EntryPagination) (*adapter.EntryListResult, error) {
	query := r.db.WithContext(ctx).Model(&model.EntryModel{})

	// Apply filters
	query = query.Where("user_id = ?", filter.UserID)

	if filter.WalletID != nil {
		query = query.Where("wallet_id = ?", filter.WalletID)
	}
	if filter.CategoryID != nil {
		query = query.Where("category_id = ?", filter.CategoryID)
	}
	if filter.IsPaid != nil {
		query = query.Where("is_paid = ?", *filter.IsPaid)
	}
	if filter.StartDate != nil {
		query = query.Where("due_date >= ?", filter.StartDate)
	}
	if filter.EndDate != nil {
		query = query.Where("due_date <= ?", filter.EndDate)
	}
	if filter.Search != "" {
		searchPattern := "%" + strings.ToLower(filter.Search) + "%"
		query = query.Where("LOWER(description) LIKE ?", searchPattern)
	}

	// Get total count
	var total int64
	countQuery := query.Session(&gorm.Session{})
	if err := countQuery.Count(&total).Error; err != nil {
		return nil, err
	}

	// Calculate pagination
	offset := (pagination.Page - 1) * pagination.Limit
	totalPages := int((total + int64(pagination.Limit) - 1) / int64(pagination.Limit))
	if totalPages == 0 {
		totalPages = 1
	}

	var entryModels []model.EntryModel
	result := query.
		Order("due_date DESC, created_at DESC").
		Offset(offset).
		Limit(pagination.Limit).
		Find(&entryModels)
	if result.Error != nil {
		return nil, result.Error
	}

	entries := make([]*entity.Entry, len(entryModels))
	for i, em := range entryModels {
		entries[i] = em.ToEntity()
	}

	return &adapter.EntryListResult{
		Entries:    entries,
		Total:      total,
		Page:       pagination.Page,
		Limit:      pagination.Limit,
		TotalPages: totalPages,
	}, nil
}

// Update updates an existing entry in the database.
func (r *entryRepository) Update(ctx context.Context, entry *entity.Entry) error {
	entryModel := model.EntryFromEntity(entry)

	// Save skips NULL transitions, so the series and payment columns are
	// written explicitly. Moving an entry out of a group or unpaying it must
	// clear the columns, not leave the old values behind.
	result := r.db.WithContext(ctx).
		Model(&model.EntryModel{}).
		Where("id = ?", entry.ID).
		Updates(map[string]any{
			"wallet_id":            entryModel.WalletID,
			"category_id":          entryModel.CategoryID,
			"description":          entryModel.Description,
			"amount":               entryModel.Amount,
			"type":                 entryModel.Type,
			"due_date":             entryModel.DueDate,
			"payment_date":         entryModel.PaymentDate,
			"is_paid":              entryModel.IsPaid,
			"notes":                entryModel.Notes,
			"recurrence_group_id":  entryModel.RecurrenceGroupID,
			"recurrence":           entryModel.Recurrence,
			"installment_group_id": entryModel.InstallmentGroupID,
			"installment_number":   entryModel.InstallmentNumber,
			"installment_total":    entryModel.InstallmentTotal,
			"updated_at":           entryModel.UpdatedAt,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrEntryNotFound
	}
	return nil
}

// DeleteBatch soft-deletes the given entries.
func (r *entryRepository) DeleteBatch(ctx context.Context, ids []uuid.UUID) error {
	if len(ids) == 0 {
		return nil
	}
	result := r.db.WithContext(ctx).
		Where("id IN ?", ids).
		Delete(&model.EntryModel{})
	return result.Error
}

// CountByCategory counts live entries referencing the given category.
func (r *entryRepository) CountByCategory(ctx context.Context, categoryID uuid.UUID) (int64, error) {
	var count int64
	result := r.db.WithContext(ctx).
		Model(&model.EntryModel{}).
		Where("category_id = ?", categoryID).
		Count(&count)
	if result.Error != nil {
		return 0, result.Error
	}
	return count, nil
}

// CountByWallet counts live entries referencing the given wallet.
func (r *entryRepository) CountByWallet(ctx context.Context, walletID uuid.UUID) (int64, error) {
	var count int64
	result := r.db.WithContext(ctx).
		Model(&model.EntryModel{}).
		Where("wallet_id = ?", walletID).
		Count(&count)
	if result.Error != nil {
		return 0, result.Error
	}
	return count, nil
}

// SumPaidByWallet recomputes the signed sum of all paid entries on a wallet
// directly from the rows.
func (r *entryRepository) SumPaidByWallet(ctx context.Context, walletID uuid.UUID) (decimal.Decimal, error) {
	var sumResult struct {
		Total decimal.Decimal
	}
	result := r.db.WithContext(ctx).
		Model(&model.EntryModel{}).
		Select("COALESCE(SUM(CASE WHEN type = ? THEN amount ELSE -amount END), 0) as total", string(entity.EntryTypeIncome)).
		Where("wallet_id = ? AND is_paid = ?", walletID, true).
		Scan(&sumResult)
	if result.Error != nil {
		return decimal.Zero, result.Error
	}
	return sumResult.Total, nil
}
