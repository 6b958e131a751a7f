// Package entry contains entry-related use cases.
package entry

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/walletbook/backend/internal/domain/entity"
	domainerror "github.com/walletbook/backend/internal/domain/error"
)

func TestPayEntryUseCase(t *testing.T) {
	dueDate := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)

	createUnpaid := func(t *testing.T, env *testEnv, walletID, categoryID uuid.UUID, amount string, entryType entity.EntryType) uuid.UUID {
		t.Helper()

		uc := NewCreateEntryUseCase(env.uow, env.clock)
		output, err := uc.Execute(context.Background(), CreateEntryInput{
			UserID:      env.userID,
			WalletID:    walletID,
			CategoryID:  categoryID,
			Description: "Electric bill",
			Amount:      decimal.RequireFromString(amount),
			Type:        entryType,
			DueDate:     dueDate,
		})
		if err != nil {
			t.Fatalf("failed to create entry: %v", err)
		}
		return output.Entries[0].ID
	}

	t.Run("paying an expense debits the wallet and stamps the date", func(t *testing.T) {
		env := newTestEnv(t)
		wallet := env.seedWallet(t, "Checking", "200.00")
		category := env.seedCategory(t, "Utilities", entity.CategoryTypeExpense)
		entryID := createUnpaid(t, env, wallet.ID, category.ID, "75.00", entity.EntryTypeExpense)
		uc := NewPayEntryUseCase(env.uow, env.clock)

		output, err := uc.Execute(context.Background(), PayEntryInput{
			EntryID: entryID,
			UserID:  env.userID,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if !output.Entry.IsPaid {
			t.Error("expected entry to be paid")
		}
		if output.Entry.PaymentDate == nil || !output.Entry.PaymentDate.Equal(testNow) {
			t.Errorf("payment date %v, expected %v", output.Entry.PaymentDate, testNow)
		}
		env.assertBalance(t, wallet.ID, "125.00")
	})

	t.Run("paying an income credits the wallet", func(t *testing.T) {
		env := newTestEnv(t)
		wallet := env.seedWallet(t, "Checking", "200.00")
		category := env.seedCategory(t, "Salary", entity.CategoryTypeIncome)
		entryID := createUnpaid(t, env, wallet.ID, category.ID, "1500.00", entity.EntryTypeIncome)
		uc := NewPayEntryUseCase(env.uow, env.clock)

		if _, err := uc.Execute(context.Background(), PayEntryInput{
			EntryID: entryID,
			UserID:  env.userID,
		}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		env.assertBalance(t, wallet.ID, "1700.00")
	})

	t.Run("explicit payment date wins over the clock", func(t *testing.T) {
		env := newTestEnv(t)
		wallet := env.seedWallet(t, "Checking", "200.00")
		category := env.seedCategory(t, "Utilities", entity.CategoryTypeExpense)
		entryID := createUnpaid(t, env, wallet.ID, category.ID, "75.00", entity.EntryTypeExpense)
		uc := NewPayEntryUseCase(env.uow, env.clock)

		paymentDate := time.Date(2026, 5, 2, 0, 0, 0, 0, time.UTC)
		output, err := uc.Execute(context.Background(), PayEntryInput{
			EntryID:     entryID,
			UserID:      env.userID,
			PaymentDate: &paymentDate,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if !output.Entry.PaymentDate.Equal(paymentDate) {
			t.Errorf("payment date %v, expected %v", output.Entry.PaymentDate, paymentDate)
		}
	})

	t.Run("paying twice reports a conflict and adjusts the balance once", func(t *testing.T) {
		env := newTestEnv(t)
		wallet := env.seedWallet(t, "Checking", "200.00")
		category := env.seedCategory(t, "Utilities", entity.CategoryTypeExpense)
		entryID := createUnpaid(t, env, wallet.ID, category.ID, "75.00", entity.EntryTypeExpense)
		uc := NewPayEntryUseCase(env.uow, env.clock)

		if _, err := uc.Execute(context.Background(), PayEntryInput{EntryID: entryID, UserID: env.userID}); err != nil {
			t.Fatalf("unexpected error on first pay: %v", err)
		}

		_, err := uc.Execute(context.Background(), PayEntryInput{EntryID: entryID, UserID: env.userID})
		if err == nil {
			t.Fatal("expected an error on second pay")
		}
		if !domainerror.IsConflict(err) {
			t.Errorf("expected a conflict error, got %v", err)
		}

		env.assertBalance(t, wallet.ID, "125.00")
	})

	t.Run("another user's entry behaves like a missing one", func(t *testing.T) {
		env := newTestEnv(t)
		wallet := env.seedWallet(t, "Checking", "200.00")
		category := env.seedCategory(t, "Utilities", entity.CategoryTypeExpense)
		entryID := createUnpaid(t, env, wallet.ID, category.ID, "75.00", entity.EntryTypeExpense)
		uc := NewPayEntryUseCase(env.uow, env.clock)

		_, err := uc.Execute(context.Background(), PayEntryInput{
			EntryID: entryID,
			UserID:  uuid.New(),
		})
		if err == nil {
			t.Fatal("expected an error")
		}
		if !domainerror.IsNotFound(err) {
			t.Errorf("expected a not-found error, got %v", err)
		}
		env.assertBalance(t, wallet.ID, "200.00")
	})
}
