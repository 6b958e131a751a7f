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

func TestUpdateEntryUseCase(t *testing.T) {
	dueDate := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)

	createEntry := func(t *testing.T, env *testEnv, input CreateEntryInput) *CreateEntryOutput {
		t.Helper()

		output, err := NewCreateEntryUseCase(env.uow, env.clock).Execute(context.Background(), input)
		if err != nil {
			t.Fatalf("failed to create entry: %v", err)
		}
		return output
	}

	paidExpense := func(t *testing.T, env *testEnv, walletID, categoryID uuid.UUID, amount string) uuid.UUID {
		t.Helper()

		output := createEntry(t, env, CreateEntryInput{
			UserID:      env.userID,
			WalletID:    walletID,
			CategoryID:  categoryID,
			Description: "Groceries",
			Amount:      decimal.RequireFromString(amount),
			Type:        entity.EntryTypeExpense,
			DueDate:     dueDate,
			IsPaid:      true,
		})
		return output.Entries[0].ID
	}

	t.Run("renaming does not touch the balance", func(t *testing.T) {
		env := newTestEnv(t)
		wallet := env.seedWallet(t, "Checking", "500.00")
		category := env.seedCategory(t, "Food", entity.CategoryTypeExpense)
		entryID := paidExpense(t, env, wallet.ID, category.ID, "100.00")
		uc := NewUpdateEntryUseCase(env.uow, env.clock)

		description := "Weekly groceries"
		output, err := uc.Execute(context.Background(), UpdateEntryInput{
			EntryID:     entryID,
			UserID:      env.userID,
			Description: &description,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.Entries[0].Description != description {
			t.Errorf("description %q, expected %q", output.Entries[0].Description, description)
		}

		env.assertBalance(t, wallet.ID, "400.00")
	})

	t.Run("amount change on a paid entry applies only the difference", func(t *testing.T) {
		env := newTestEnv(t)
		wallet := env.seedWallet(t, "Checking", "500.00")
		category := env.seedCategory(t, "Food", entity.CategoryTypeExpense)
		entryID := paidExpense(t, env, wallet.ID, category.ID, "100.00")
		uc := NewUpdateEntryUseCase(env.uow, env.clock)

		amount := decimal.RequireFromString("130.00")
		if _, err := uc.Execute(context.Background(), UpdateEntryInput{
			EntryID: entryID,
			UserID:  env.userID,
			Amount:  &amount,
		}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		env.assertBalance(t, wallet.ID, "370.00")
	})

	t.Run("marking unpaid reverses the contribution and clears the date", func(t *testing.T) {
		env := newTestEnv(t)
		wallet := env.seedWallet(t, "Checking", "500.00")
		category := env.seedCategory(t, "Food", entity.CategoryTypeExpense)
		entryID := paidExpense(t, env, wallet.ID, category.ID, "100.00")
		uc := NewUpdateEntryUseCase(env.uow, env.clock)

		isPaid := false
		output, err := uc.Execute(context.Background(), UpdateEntryInput{
			EntryID: entryID,
			UserID:  env.userID,
			IsPaid:  &isPaid,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if output.Entries[0].IsPaid {
			t.Error("expected entry to be unpaid")
		}
		if output.Entries[0].PaymentDate != nil {
			t.Errorf("expected payment date to be cleared, got %v", output.Entries[0].PaymentDate)
		}
		env.assertBalance(t, wallet.ID, "500.00")
	})

	t.Run("marking paid applies the contribution and stamps the date", func(t *testing.T) {
		env := newTestEnv(t)
		wallet := env.seedWallet(t, "Checking", "500.00")
		category := env.seedCategory(t, "Food", entity.CategoryTypeExpense)
		output := createEntry(t, env, CreateEntryInput{
			UserID:      env.userID,
			WalletID:    wallet.ID,
			CategoryID:  category.ID,
			Description: "Groceries",
			Amount:      decimal.RequireFromString("80.00"),
			Type:        entity.EntryTypeExpense,
			DueDate:     dueDate,
		})
		uc := NewUpdateEntryUseCase(env.uow, env.clock)

		isPaid := true
		updated, err := uc.Execute(context.Background(), UpdateEntryInput{
			EntryID: output.Entries[0].ID,
			UserID:  env.userID,
			IsPaid:  &isPaid,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if updated.Entries[0].PaymentDate == nil || !updated.Entries[0].PaymentDate.Equal(testNow) {
			t.Errorf("payment date %v, expected %v", updated.Entries[0].PaymentDate, testNow)
		}
		env.assertBalance(t, wallet.ID, "420.00")
	})

	t.Run("moving a paid entry shifts the contribution between wallets", func(t *testing.T) {
		env := newTestEnv(t)
		source := env.seedWallet(t, "Checking", "500.00")
		target := env.seedWallet(t, "Savings", "0.00")
		category := env.seedCategory(t, "Food", entity.CategoryTypeExpense)
		entryID := paidExpense(t, env, source.ID, category.ID, "100.00")
		uc := NewUpdateEntryUseCase(env.uow, env.clock)

		if _, err := uc.Execute(context.Background(), UpdateEntryInput{
			EntryID:  entryID,
			UserID:   env.userID,
			WalletID: &target.ID,
		}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		env.assertBalance(t, source.ID, "500.00")
		env.assertBalance(t, target.ID, "-100.00")
	})

	t.Run("group update applies to every series member", func(t *testing.T) {
		env := newTestEnv(t)
		wallet := env.seedWallet(t, "Checking", "500.00")
		category := env.seedCategory(t, "Subscriptions", entity.CategoryTypeExpense)

		recurrence := entity.RecurrenceMonthly
		created := createEntry(t, env, CreateEntryInput{
			UserID:      env.userID,
			WalletID:    wallet.ID,
			CategoryID:  category.ID,
			Description: "Streaming",
			Amount:      decimal.RequireFromString("15.00"),
			Type:        entity.EntryTypeExpense,
			DueDate:     dueDate,
			IsRecurring: true,
			Recurrence:  &recurrence,
		})
		uc := NewUpdateEntryUseCase(env.uow, env.clock)

		amount := decimal.RequireFromString("18.00")
		output, err := uc.Execute(context.Background(), UpdateEntryInput{
			EntryID:      created.Entries[5].ID,
			UserID:       env.userID,
			ApplyToGroup: true,
			Amount:       &amount,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if len(output.Entries) != 36 {
			t.Fatalf("expected 36 updated members, got %d", len(output.Entries))
		}
		for i, e := range output.Entries {
			if !e.Amount.Equal(amount) {
				t.Errorf("member %d amount %s, expected 18.00", i, e.Amount)
			}
		}
		// All members unpaid, so no balance movement.
		env.assertBalance(t, wallet.ID, "500.00")
	})

	t.Run("single update on a series member leaves siblings alone", func(t *testing.T) {
		env := newTestEnv(t)
		wallet := env.seedWallet(t, "Checking", "500.00")
		category := env.seedCategory(t, "Subscriptions", entity.CategoryTypeExpense)

		recurrence := entity.RecurrenceMonthly
		created := createEntry(t, env, CreateEntryInput{
			UserID:      env.userID,
			WalletID:    wallet.ID,
			CategoryID:  category.ID,
			Description: "Streaming",
			Amount:      decimal.RequireFromString("15.00"),
			Type:        entity.EntryTypeExpense,
			DueDate:     dueDate,
			IsRecurring: true,
			Recurrence:  &recurrence,
		})
		uc := NewUpdateEntryUseCase(env.uow, env.clock)

		description := "Streaming (premium)"
		output, err := uc.Execute(context.Background(), UpdateEntryInput{
			EntryID:     created.Entries[0].ID,
			UserID:      env.userID,
			Description: &description,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(output.Entries) != 1 {
			t.Fatalf("expected 1 updated entry, got %d", len(output.Entries))
		}

		groupID := created.Entries[0].GroupID
		members, err := env.entries.FindByGroupAndUser(context.Background(), *groupID, env.userID)
		if err != nil {
			t.Fatalf("failed to load group: %v", err)
		}
		renamed := 0
		for _, m := range members {
			if m.Description == description {
				renamed++
			}
		}
		if renamed != 1 {
			t.Errorf("expected exactly one renamed member, got %d", renamed)
		}
	})

	t.Run("category change enforces the type match", func(t *testing.T) {
		env := newTestEnv(t)
		wallet := env.seedWallet(t, "Checking", "500.00")
		category := env.seedCategory(t, "Food", entity.CategoryTypeExpense)
		incomeCategory := env.seedCategory(t, "Salary", entity.CategoryTypeIncome)
		entryID := paidExpense(t, env, wallet.ID, category.ID, "100.00")
		uc := NewUpdateEntryUseCase(env.uow, env.clock)

		_, err := uc.Execute(context.Background(), UpdateEntryInput{
			EntryID:    entryID,
			UserID:     env.userID,
			CategoryID: &incomeCategory.ID,
		})
		if err == nil {
			t.Fatal("expected an error")
		}
		if !domainerror.IsInvalidRequest(err) {
			t.Errorf("expected an invalid-request error, got %v", err)
		}

		// The rejected update rolls back, balance untouched.
		env.assertBalance(t, wallet.ID, "400.00")
	})

	t.Run("unknown entry reports not found", func(t *testing.T) {
		env := newTestEnv(t)
		uc := NewUpdateEntryUseCase(env.uow, env.clock)

		description := "anything"
		_, err := uc.Execute(context.Background(), UpdateEntryInput{
			EntryID:     uuid.New(),
			UserID:      env.userID,
			Description: &description,
		})
		if err == nil {
			t.Fatal("expected an error")
		}
		if !domainerror.IsNotFound(err) {
			t.Errorf("expected a not-found error, got %v", err)
		}
	})
}
