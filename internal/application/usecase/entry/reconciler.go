// Package entry contains entry-related use cases.
package entry

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/walletbook/backend/internal/application/adapter"
	"github.com/walletbook/backend/internal/domain/entity"
)

// The reconciler keeps each wallet's cached balance consistent with the set
// of entries currently marked paid. Every mutation path that can change an
// entry's paid contribution funnels through these helpers, and they are only
// ever called with repositories bound to the unit of work performing the
// record mutation, so balance deltas commit or roll back with the rows that
// imply them.

// applyContribution credits the entry's wallet with its signed amount.
// Called when an entry becomes paid.
func applyContribution(ctx context.Context, wallets adapter.WalletRepository, e *entity.Entry) error {
	return wallets.AdjustBalance(ctx, e.WalletID, e.SignedAmount())
}

// reverseContribution removes the entry's signed amount from its wallet.
// Called when a paid entry becomes unpaid or is deleted.
func reverseContribution(ctx context.Context, wallets adapter.WalletRepository, e *entity.Entry) error {
	return wallets.AdjustBalance(ctx, e.WalletID, e.SignedAmount().Neg())
}

// reconcileUpdate applies the minimal balance delta between the pre-update
// and post-update state of one entry. It handles paid-flag toggles, amount
// and type changes on paid entries, and wallet reassignments of paid entries
// (reverse against the old wallet, apply against the new one).
func reconcileUpdate(ctx context.Context, wallets adapter.WalletRepository, before, after *entity.Entry) error {
	var oldContribution, newContribution decimal.Decimal
	if before.IsPaid {
		oldContribution = before.SignedAmount()
	}
	if after.IsPaid {
		newContribution = after.SignedAmount()
	}

	if before.WalletID == after.WalletID {
		delta := newContribution.Sub(oldContribution)
		if delta.IsZero() {
			return nil
		}
		return wallets.AdjustBalance(ctx, after.WalletID, delta)
	}

	if !oldContribution.IsZero() {
		if err := wallets.AdjustBalance(ctx, before.WalletID, oldContribution.Neg()); err != nil {
			return err
		}
	}
	if !newContribution.IsZero() {
		return wallets.AdjustBalance(ctx, after.WalletID, newContribution)
	}
	return nil
}
