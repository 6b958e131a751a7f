// Package entry contains entry-related use cases.
package entry

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/walletbook/backend/internal/domain/entity"
)

// balanceRecorder is a wallet repository fake that accumulates AdjustBalance
// deltas per wallet.
type balanceRecorder struct {
	deltas map[uuid.UUID]decimal.Decimal
	calls  int
}

func newBalanceRecorder() *balanceRecorder {
	return &balanceRecorder{deltas: make(map[uuid.UUID]decimal.Decimal)}
}

func (r *balanceRecorder) Create(ctx context.Context, wallet *entity.Wallet) error {
	return nil
}

func (r *balanceRecorder) FindByIDAndUser(ctx context.Context, id, userID uuid.UUID) (*entity.Wallet, error) {
	return nil, nil
}

func (r *balanceRecorder) FindByIDAndUserForUpdate(ctx context.Context, id, userID uuid.UUID) (*entity.Wallet, error) {
	return nil, nil
}

func (r *balanceRecorder) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Wallet, error) {
	return nil, nil
}

func (r *balanceRecorder) Update(ctx context.Context, wallet *entity.Wallet) error {
	return nil
}

func (r *balanceRecorder) AdjustBalance(ctx context.Context, id uuid.UUID, delta decimal.Decimal) error {
	r.deltas[id] = r.deltas[id].Add(delta)
	r.calls++
	return nil
}

func paidEntry(walletID uuid.UUID, amount string, entryType entity.EntryType) *entity.Entry {
	now := time.Now().UTC()
	return &entity.Entry{
		ID:          uuid.New(),
		UserID:      uuid.New(),
		WalletID:    walletID,
		CategoryID:  uuid.New(),
		Description: "Paycheck",
		Amount:      decimal.RequireFromString(amount),
		Type:        entryType,
		DueDate:     now,
		PaymentDate: &now,
		IsPaid:      true,
		Group:       entity.NoGroup(),
	}
}

func TestApplyContribution(t *testing.T) {
	walletID := uuid.New()

	t.Run("income credits the wallet", func(t *testing.T) {
		recorder := newBalanceRecorder()
		e := paidEntry(walletID, "250.00", entity.EntryTypeIncome)

		if err := applyContribution(context.Background(), recorder, e); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if !recorder.deltas[walletID].Equal(decimal.RequireFromString("250.00")) {
			t.Errorf("wallet delta %s, expected 250.00", recorder.deltas[walletID])
		}
	})

	t.Run("expense debits the wallet", func(t *testing.T) {
		recorder := newBalanceRecorder()
		e := paidEntry(walletID, "80.00", entity.EntryTypeExpense)

		if err := applyContribution(context.Background(), recorder, e); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if !recorder.deltas[walletID].Equal(decimal.RequireFromString("-80.00")) {
			t.Errorf("wallet delta %s, expected -80.00", recorder.deltas[walletID])
		}
	})
}

func TestReverseContribution(t *testing.T) {
	walletID := uuid.New()

	t.Run("reversing an expense restores the balance", func(t *testing.T) {
		recorder := newBalanceRecorder()
		e := paidEntry(walletID, "80.00", entity.EntryTypeExpense)

		if err := reverseContribution(context.Background(), recorder, e); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if !recorder.deltas[walletID].Equal(decimal.RequireFromString("80.00")) {
			t.Errorf("wallet delta %s, expected 80.00", recorder.deltas[walletID])
		}
	})

	t.Run("apply then reverse nets to zero", func(t *testing.T) {
		recorder := newBalanceRecorder()
		e := paidEntry(walletID, "123.45", entity.EntryTypeIncome)

		if err := applyContribution(context.Background(), recorder, e); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if err := reverseContribution(context.Background(), recorder, e); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if !recorder.deltas[walletID].IsZero() {
			t.Errorf("wallet delta %s, expected zero", recorder.deltas[walletID])
		}
	})
}

func TestReconcileUpdate(t *testing.T) {
	t.Run("no delta when nothing balance-relevant changed", func(t *testing.T) {
		recorder := newBalanceRecorder()
		walletID := uuid.New()
		before := paidEntry(walletID, "50.00", entity.EntryTypeExpense)
		after := *before
		after.Description = "Renamed"

		if err := reconcileUpdate(context.Background(), recorder, before, &after); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if recorder.calls != 0 {
			t.Errorf("expected no balance adjustments, got %d", recorder.calls)
		}
	})

	t.Run("no delta when an unpaid entry stays unpaid", func(t *testing.T) {
		recorder := newBalanceRecorder()
		walletID := uuid.New()
		before := paidEntry(walletID, "50.00", entity.EntryTypeExpense)
		before.IsPaid = false
		before.PaymentDate = nil
		after := *before
		after.Amount = decimal.RequireFromString("500.00")

		if err := reconcileUpdate(context.Background(), recorder, before, &after); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if recorder.calls != 0 {
			t.Errorf("expected no balance adjustments, got %d", recorder.calls)
		}
	})

	t.Run("marking paid applies the contribution", func(t *testing.T) {
		recorder := newBalanceRecorder()
		walletID := uuid.New()
		before := paidEntry(walletID, "60.00", entity.EntryTypeExpense)
		before.IsPaid = false
		before.PaymentDate = nil
		after := *before
		now := time.Now().UTC()
		after.IsPaid = true
		after.PaymentDate = &now

		if err := reconcileUpdate(context.Background(), recorder, before, &after); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if !recorder.deltas[walletID].Equal(decimal.RequireFromString("-60.00")) {
			t.Errorf("wallet delta %s, expected -60.00", recorder.deltas[walletID])
		}
	})

	t.Run("marking unpaid reverses the contribution", func(t *testing.T) {
		recorder := newBalanceRecorder()
		walletID := uuid.New()
		before := paidEntry(walletID, "60.00", entity.EntryTypeIncome)
		after := *before
		after.IsPaid = false
		after.PaymentDate = nil

		if err := reconcileUpdate(context.Background(), recorder, before, &after); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if !recorder.deltas[walletID].Equal(decimal.RequireFromString("-60.00")) {
			t.Errorf("wallet delta %s, expected -60.00", recorder.deltas[walletID])
		}
	})

	t.Run("amount change on a paid entry applies only the difference", func(t *testing.T) {
		recorder := newBalanceRecorder()
		walletID := uuid.New()
		before := paidEntry(walletID, "100.00", entity.EntryTypeExpense)
		after := *before
		after.Amount = decimal.RequireFromString("130.00")

		if err := reconcileUpdate(context.Background(), recorder, before, &after); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if recorder.calls != 1 {
			t.Fatalf("expected a single adjustment, got %d", recorder.calls)
		}
		if !recorder.deltas[walletID].Equal(decimal.RequireFromString("-30.00")) {
			t.Errorf("wallet delta %s, expected -30.00", recorder.deltas[walletID])
		}
	})

	t.Run("type flip on a paid entry swings the full doubled amount", func(t *testing.T) {
		recorder := newBalanceRecorder()
		walletID := uuid.New()
		before := paidEntry(walletID, "40.00", entity.EntryTypeExpense)
		after := *before
		after.Type = entity.EntryTypeIncome

		if err := reconcileUpdate(context.Background(), recorder, before, &after); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if !recorder.deltas[walletID].Equal(decimal.RequireFromString("80.00")) {
			t.Errorf("wallet delta %s, expected 80.00", recorder.deltas[walletID])
		}
	})

	t.Run("wallet move reverses the old wallet and applies the new", func(t *testing.T) {
		recorder := newBalanceRecorder()
		oldWallet := uuid.New()
		newWallet := uuid.New()
		before := paidEntry(oldWallet, "75.00", entity.EntryTypeExpense)
		after := *before
		after.WalletID = newWallet

		if err := reconcileUpdate(context.Background(), recorder, before, &after); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if !recorder.deltas[oldWallet].Equal(decimal.RequireFromString("75.00")) {
			t.Errorf("old wallet delta %s, expected 75.00", recorder.deltas[oldWallet])
		}
		if !recorder.deltas[newWallet].Equal(decimal.RequireFromString("-75.00")) {
			t.Errorf("new wallet delta %s, expected -75.00", recorder.deltas[newWallet])
		}
	})

	t.Run("wallet move of an unpaid entry touches nothing", func(t *testing.T) {
		recorder := newBalanceRecorder()
		before := paidEntry(uuid.New(), "75.00", entity.EntryTypeExpense)
		before.IsPaid = false
		before.PaymentDate = nil
		after := *before
		after.WalletID = uuid.New()

		if err := reconcileUpdate(context.Background(), recorder, before, &after); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if recorder.calls != 0 {
			t.Errorf("expected no balance adjustments, got %d", recorder.calls)
		}
	})
}
