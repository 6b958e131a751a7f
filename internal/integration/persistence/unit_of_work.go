// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"

	"gorm.io/gorm"

	"github.com/walletbook/backend/internal/application/adapter"
)

// unitOfWork implements adapter.UnitOfWork on top of a database transaction.
type unitOfWork struct {
	db *gorm.DB
}

// NewUnitOfWork creates a new unit of work bound to the given database handle.
func NewUnitOfWork(db *gorm.DB) adapter.UnitOfWork {
	return &unitOfWork{
		db: db,
	}
}

// Execute runs fn inside a single database transaction. The repositories
// handed to fn are bound to the transaction, so every record mutation and
// balance adjustment either commits together or rolls back together.
func (u *unitOfWork) Execute(ctx context.Context, fn func(ctx context.Context, stores adapter.Stores) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		stores := adapter.Stores{
			Entries:    NewEntryRepository(tx),
			Wallets:    NewWalletRepository(tx),
			Categories: NewCategoryRepository(tx),
			Transfers:  NewTransferRepository(tx),
		}
		return fn(ctx, stores)
	})
}
