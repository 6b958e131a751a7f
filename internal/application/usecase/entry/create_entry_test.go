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

func TestCreateEntryUseCase(t *testing.T) {
	dueDate := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)

	baseInput := func(env *testEnv, walletID, categoryID uuid.UUID) CreateEntryInput {
		return CreateEntryInput{
			UserID:      env.userID,
			WalletID:    walletID,
			CategoryID:  categoryID,
			Description: "Groceries",
			Amount:      decimal.RequireFromString("45.50"),
			Type:        entity.EntryTypeExpense,
			DueDate:     dueDate,
		}
	}

	t.Run("unpaid entry leaves the wallet balance untouched", func(t *testing.T) {
		env := newTestEnv(t)
		wallet := env.seedWallet(t, "Checking", "1000.00")
		category := env.seedCategory(t, "Food", entity.CategoryTypeExpense)
		uc := NewCreateEntryUseCase(env.uow, env.clock)

		output, err := uc.Execute(context.Background(), baseInput(env, wallet.ID, category.ID))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(output.Entries) != 1 {
			t.Fatalf("expected 1 entry, got %d", len(output.Entries))
		}
		if output.Entries[0].IsPaid {
			t.Error("expected entry to start unpaid")
		}

		env.assertBalance(t, wallet.ID, "1000.00")
	})

	t.Run("paid expense debits the wallet on creation", func(t *testing.T) {
		env := newTestEnv(t)
		wallet := env.seedWallet(t, "Checking", "1000.00")
		category := env.seedCategory(t, "Food", entity.CategoryTypeExpense)
		uc := NewCreateEntryUseCase(env.uow, env.clock)

		input := baseInput(env, wallet.ID, category.ID)
		input.IsPaid = true

		output, err := uc.Execute(context.Background(), input)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.Entries[0].PaymentDate == nil {
			t.Fatal("expected paid entry to carry a payment date")
		}
		if !output.Entries[0].PaymentDate.Equal(testNow) {
			t.Errorf("payment date %v, expected %v", output.Entries[0].PaymentDate, testNow)
		}

		env.assertBalance(t, wallet.ID, "954.50")
	})

	t.Run("paid income credits the wallet on creation", func(t *testing.T) {
		env := newTestEnv(t)
		wallet := env.seedWallet(t, "Checking", "100.00")
		category := env.seedCategory(t, "Salary", entity.CategoryTypeIncome)
		uc := NewCreateEntryUseCase(env.uow, env.clock)

		input := baseInput(env, wallet.ID, category.ID)
		input.Type = entity.EntryTypeIncome
		input.Amount = decimal.RequireFromString("2500.00")
		input.IsPaid = true

		if _, err := uc.Execute(context.Background(), input); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		env.assertBalance(t, wallet.ID, "2600.00")
	})

	t.Run("explicit payment date wins over the clock", func(t *testing.T) {
		env := newTestEnv(t)
		wallet := env.seedWallet(t, "Checking", "100.00")
		category := env.seedCategory(t, "Food", entity.CategoryTypeExpense)
		uc := NewCreateEntryUseCase(env.uow, env.clock)

		paymentDate := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)
		input := baseInput(env, wallet.ID, category.ID)
		input.IsPaid = true
		input.PaymentDate = &paymentDate

		output, err := uc.Execute(context.Background(), input)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !output.Entries[0].PaymentDate.Equal(paymentDate) {
			t.Errorf("payment date %v, expected %v", output.Entries[0].PaymentDate, paymentDate)
		}
	})

	t.Run("recurring request persists the whole series unpaid", func(t *testing.T) {
		env := newTestEnv(t)
		wallet := env.seedWallet(t, "Checking", "500.00")
		category := env.seedCategory(t, "Subscriptions", entity.CategoryTypeExpense)
		uc := NewCreateEntryUseCase(env.uow, env.clock)

		recurrence := entity.RecurrenceMonthly
		input := baseInput(env, wallet.ID, category.ID)
		input.IsRecurring = true
		input.Recurrence = &recurrence
		input.IsPaid = true // ignored for series

		output, err := uc.Execute(context.Background(), input)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(output.Entries) != 36 {
			t.Fatalf("expected 36 occurrences, got %d", len(output.Entries))
		}
		for i, e := range output.Entries {
			if e.IsPaid {
				t.Errorf("occurrence %d is paid, series members must start unpaid", i)
			}
		}

		// Nothing paid, so the balance stays put.
		env.assertBalance(t, wallet.ID, "500.00")

		groupID := output.Entries[0].GroupID
		if groupID == nil {
			t.Fatal("expected occurrences to carry a group ID")
		}
		members, err := env.entries.FindByGroupAndUser(context.Background(), *groupID, env.userID)
		if err != nil {
			t.Fatalf("failed to load group: %v", err)
		}
		if len(members) != 36 {
			t.Errorf("expected 36 persisted members, got %d", len(members))
		}
	})

	t.Run("installment request splits the amount across members", func(t *testing.T) {
		env := newTestEnv(t)
		wallet := env.seedWallet(t, "Checking", "0.00")
		category := env.seedCategory(t, "Electronics", entity.CategoryTypeExpense)
		uc := NewCreateEntryUseCase(env.uow, env.clock)

		count := 3
		input := baseInput(env, wallet.ID, category.ID)
		input.Description = "New laptop"
		input.Amount = decimal.RequireFromString("100.00")
		input.IsInstallment = true
		input.InstallmentCount = &count

		output, err := uc.Execute(context.Background(), input)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(output.Entries) != 3 {
			t.Fatalf("expected 3 installments, got %d", len(output.Entries))
		}

		sum := decimal.Zero
		for _, e := range output.Entries {
			sum = sum.Add(e.Amount)
		}
		if !sum.Equal(decimal.RequireFromString("100.00")) {
			t.Errorf("installments sum to %s, expected 100.00", sum)
		}
		if output.Entries[0].Description != "New laptop (1/3)" {
			t.Errorf("first description %q", output.Entries[0].Description)
		}
	})

	t.Run("every installment of a small total stays positive", func(t *testing.T) {
		env := newTestEnv(t)
		wallet := env.seedWallet(t, "Checking", "0.00")
		category := env.seedCategory(t, "Fees", entity.CategoryTypeExpense)
		uc := NewCreateEntryUseCase(env.uow, env.clock)

		count := 20
		input := baseInput(env, wallet.ID, category.ID)
		input.Amount = decimal.RequireFromString("0.30")
		input.IsInstallment = true
		input.InstallmentCount = &count

		output, err := uc.Execute(context.Background(), input)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(output.Entries) != 20 {
			t.Fatalf("expected 20 installments, got %d", len(output.Entries))
		}

		sum := decimal.Zero
		for i, e := range output.Entries {
			if !e.Amount.IsPositive() {
				t.Errorf("installment %d amount %s, expected a positive amount", i+1, e.Amount)
			}
			sum = sum.Add(e.Amount)
		}
		if !sum.Equal(decimal.RequireFromString("0.30")) {
			t.Errorf("installments sum to %s, expected 0.30", sum)
		}
	})

	t.Run("unknown wallet reports not found", func(t *testing.T) {
		env := newTestEnv(t)
		category := env.seedCategory(t, "Food", entity.CategoryTypeExpense)
		uc := NewCreateEntryUseCase(env.uow, env.clock)

		_, err := uc.Execute(context.Background(), baseInput(env, uuid.New(), category.ID))
		if err == nil {
			t.Fatal("expected an error")
		}
		if !domainerror.IsNotFound(err) {
			t.Errorf("expected a not-found error, got %v", err)
		}
	})

	t.Run("another user's wallet behaves like a missing one", func(t *testing.T) {
		env := newTestEnv(t)
		wallet := env.seedWallet(t, "Checking", "100.00")
		category := env.seedCategory(t, "Food", entity.CategoryTypeExpense)
		uc := NewCreateEntryUseCase(env.uow, env.clock)

		input := baseInput(env, wallet.ID, category.ID)
		input.UserID = uuid.New()

		_, err := uc.Execute(context.Background(), input)
		if err == nil {
			t.Fatal("expected an error")
		}
		if !domainerror.IsNotFound(err) {
			t.Errorf("expected a not-found error, got %v", err)
		}
	})

	t.Run("entry type must match the category type", func(t *testing.T) {
		env := newTestEnv(t)
		wallet := env.seedWallet(t, "Checking", "100.00")
		category := env.seedCategory(t, "Salary", entity.CategoryTypeIncome)
		uc := NewCreateEntryUseCase(env.uow, env.clock)

		input := baseInput(env, wallet.ID, category.ID)
		input.Type = entity.EntryTypeExpense

		_, err := uc.Execute(context.Background(), input)
		if err == nil {
			t.Fatal("expected an error")
		}
		if !domainerror.IsInvalidRequest(err) {
			t.Errorf("expected an invalid-request error, got %v", err)
		}
	})

	t.Run("validation failures", func(t *testing.T) {
		env := newTestEnv(t)
		wallet := env.seedWallet(t, "Checking", "100.00")
		category := env.seedCategory(t, "Food", entity.CategoryTypeExpense)
		uc := NewCreateEntryUseCase(env.uow, env.clock)

		recurrence := entity.RecurrenceMonthly
		badRecurrence := entity.Recurrence("daily")
		count := 3
		zero := 0
		overCap := MaxInstallmentCount + 1
		twenty := 20

		tests := []struct {
			name   string
			mutate func(*CreateEntryInput)
		}{
			{
				name: "non-positive amount",
				mutate: func(in *CreateEntryInput) {
					in.Amount = decimal.Zero
				},
			},
			{
				name: "unknown entry type",
				mutate: func(in *CreateEntryInput) {
					in.Type = entity.EntryType("savings")
				},
			},
			{
				name: "recurring and installment together",
				mutate: func(in *CreateEntryInput) {
					in.IsRecurring = true
					in.Recurrence = &recurrence
					in.IsInstallment = true
					in.InstallmentCount = &count
				},
			},
			{
				name: "recurring without a recurrence kind",
				mutate: func(in *CreateEntryInput) {
					in.IsRecurring = true
				},
			},
			{
				name: "unknown recurrence kind",
				mutate: func(in *CreateEntryInput) {
					in.IsRecurring = true
					in.Recurrence = &badRecurrence
				},
			},
			{
				name: "installment without a count",
				mutate: func(in *CreateEntryInput) {
					in.IsInstallment = true
				},
			},
			{
				name: "installment count below one",
				mutate: func(in *CreateEntryInput) {
					in.IsInstallment = true
					in.InstallmentCount = &zero
				},
			},
			{
				name: "installment count above the cap",
				mutate: func(in *CreateEntryInput) {
					in.IsInstallment = true
					in.InstallmentCount = &overCap
				},
			},
			{
				name: "amount too small for the installment count",
				mutate: func(in *CreateEntryInput) {
					in.Amount = decimal.RequireFromString("0.10")
					in.IsInstallment = true
					in.InstallmentCount = &twenty
				},
			},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				input := baseInput(env, wallet.ID, category.ID)
				tt.mutate(&input)

				_, err := uc.Execute(context.Background(), input)
				if err == nil {
					t.Fatal("expected an error")
				}
				if !domainerror.IsInvalidRequest(err) {
					t.Errorf("expected an invalid-request error, got %v", err)
				}
			})
		}
	})
}
