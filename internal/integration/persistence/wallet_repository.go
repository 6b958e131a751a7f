// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/walletbook/backend/internal/application/adapter"
	"github.com/walletbook/backend/internal/domain/entity"
	domainerror "github.com/walletbook/backend/internal/domain/error"
	"github.com/walletbook/backend/internal/integration/persistence/model"
)

// walletRepository implements the adapter.WalletRepository interface.
type walletRepository struct {
	db *gorm.DB
}

// NewWalletRepository creates a new wallet repository instance.
func NewWalletRepository(db *gorm.DB) adapter.WalletRepository {
	return &walletRepository{
		db: db,
	}
}

// Create creates a new wallet in the database.
func (r *walletRepository) Create(ctx context.Context, wallet *entity.Wallet) error {
	walletModel := model.WalletFromEntity(wallet)
	result := r.db.WithContext(ctx).Create(walletModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByIDAndUser retrieves a wallet by ID for the given user.
func (r *walletRepository) FindByIDAndUser(ctx context.Context, id, userID uuid.UUID) (*entity.Wallet, error) {
	return r.findByIDAndUser(ctx, r.db.WithContext(ctx), id, userID)
}

// FindByIDAndUserForUpdate retrieves a wallet by ID for the given user,
// taking a row lock on dialects that support one. SQLite serializes writers
// on its own, so the lock clause is applied on postgres only.
func (r *walletRepository) FindByIDAndUserForUpdate(ctx context.Context, id, userID uuid.UUID) (*entity.Wallet, error) {
	query := r.db.WithContext(ctx)
	if r.db.Dialector.Name() == "postgres" {
		query = query.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	return r.findByIDAndUser(ctx, query, id, userID)
}

func (r *walletRepository) findByIDAndUser(_ context.Context, query *gorm.DB, id, userID uuid.UUID) (*entity.Wallet, error) {
	var walletModel model.WalletModel
	result := query.
		Where("id = ? AND user_id = ? AND active = ?", id, userID, true).
		First(&walletModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrWalletNotFound
		}
		return nil, result.Error
	}
	return walletModel.ToEntity(), nil
}

// FindByUser retrieves all active wallets for a given user.
func (r *walletRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Wallet, error) {
	var walletModels []model.WalletModel
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND active = ?", userID, true).
		Order("name ASC").
		Find(&walletModels)
	if result.Error != nil {
		return nil, result.Error
	}

	wallets := make([]*entity.Wallet, len(walletModels))
	for i, wm := range walletModels {
		wallets[i] = wm.ToEntity()
	}
	return wallets, nil
}

// Update updates a wallet's mutable fields. The balance column is excluded:
// it only moves through AdjustBalance so a stale in-memory copy can never
// overwrite concurrent adjustments.
func (r *walletRepository) Update(ctx context.Context, wallet *entity.Wallet) error {
	result := r.db.WithContext(ctx).
		Model(&model.WalletModel{}).
		Where("id = ?", wallet.ID).
		Updates(map[string]any{
			"name":       wallet.Name,
			"active":     wallet.Active,
			"updated_at": wallet.UpdatedAt,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrWalletNotFound
	}
	return nil
}

// AdjustBalance applies a relative delta to the wallet's cached balance as a
// single SQL increment, so concurrent adjustments compose instead of racing.
func (r *walletRepository) AdjustBalance(ctx context.Context, id uuid.UUID, delta decimal.Decimal) error {
	result := r.db.WithContext(ctx).
		Model(&model.WalletModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"balance":    gorm.Expr("balance + ?", delta),
			"updated_at": time.Now().UTC(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrWalletNotFound
	}
	return nil
}
