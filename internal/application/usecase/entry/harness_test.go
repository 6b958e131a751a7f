// Package entry contains entry-related use cases.
package entry

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/walletbook/backend/internal/application/adapter"
	"github.com/walletbook/backend/internal/domain/entity"
	"github.com/walletbook/backend/internal/integration/persistence"
	"github.com/walletbook/backend/internal/integration/persistence/model"
)

// fixedClock returns a constant time, making payment date stamps assertable.
type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time {
	return c.now
}

var testNow = time.Date(2026, 5, 20, 12, 0, 0, 0, time.UTC)

// testEnv is a ledger engine wired against an in-memory SQLite database.
type testEnv struct {
	db     *gorm.DB
	uow    adapter.UnitOfWork
	clock  fixedClock
	userID uuid.UUID

	wallets    adapter.WalletRepository
	categories adapter.CategoryRepository
	entries    adapter.EntryRepository
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	sqlDB, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("failed to open sqlite: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(sqlite.Dialector{Conn: sqlDB}, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open gorm: %v", err)
	}

	if err := db.AutoMigrate(
		&model.UserModel{},
		&model.WalletModel{},
		&model.CategoryModel{},
		&model.EntryModel{},
		&model.TransferModel{},
	); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}

	env := &testEnv{
		db:         db,
		uow:        persistence.NewUnitOfWork(db),
		clock:      fixedClock{now: testNow},
		wallets:    persistence.NewWalletRepository(db),
		categories: persistence.NewCategoryRepository(db),
		entries:    persistence.NewEntryRepository(db),
	}

	user := entity.NewUser("owner@example.com", "Owner", "hashed")
	if err := persistence.NewUserRepository(db).Create(context.Background(), user); err != nil {
		t.Fatalf("failed to seed user: %v", err)
	}
	env.userID = user.ID

	return env
}

func (env *testEnv) seedWallet(t *testing.T, name, balance string) *entity.Wallet {
	t.Helper()

	w := entity.NewWallet(env.userID, name, decimal.RequireFromString(balance))
	if err := env.wallets.Create(context.Background(), w); err != nil {
		t.Fatalf("failed to seed wallet: %v", err)
	}
	return w
}

func (env *testEnv) seedCategory(t *testing.T, name string, categoryType entity.CategoryType) *entity.Category {
	t.Helper()

	c := entity.NewCategory(env.userID, name, categoryType)
	if err := env.categories.Create(context.Background(), c); err != nil {
		t.Fatalf("failed to seed category: %v", err)
	}
	return c
}

func (env *testEnv) walletBalance(t *testing.T, walletID uuid.UUID) decimal.Decimal {
	t.Helper()

	w, err := env.wallets.FindByIDAndUser(context.Background(), walletID, env.userID)
	if err != nil {
		t.Fatalf("failed to load wallet: %v", err)
	}
	return w.Balance
}

func (env *testEnv) assertBalance(t *testing.T, walletID uuid.UUID, expected string) {
	t.Helper()

	balance := env.walletBalance(t, walletID)
	if !balance.Equal(decimal.RequireFromString(expected)) {
		t.Errorf("wallet balance %s, expected %s", balance, expected)
	}
}
