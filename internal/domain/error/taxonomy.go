// Package error defines domain-specific errors for the Walletbook application.
package error

import "errors"

// The ledger engine reports three recoverable failure classes. Controllers
// map them to HTTP statuses; everything else is an internal failure.

var notFoundErrors = []error{
	ErrWalletNotFound,
	ErrCategoryNotFound,
	ErrEntryNotFound,
	ErrTransferNotFound,
	ErrUserNotFound,
}

var conflictErrors = []error{
	ErrEntryAlreadyPaid,
	ErrInsufficientBalance,
	ErrCategoryInUse,
	ErrWalletNotEmpty,
	ErrEmailAlreadyExists,
}

var invalidRequestErrors = []error{
	ErrRecurringAndInstallment,
	ErrMissingRecurrence,
	ErrMissingInstallmentCount,
	ErrInvalidInstallmentCount,
	ErrCategoryTypeMismatch,
	ErrCategoryTypeImmutable,
	ErrInvalidEntryType,
	ErrInvalidEntryAmount,
	ErrInvalidRecurrence,
	ErrSameWalletTransfer,
	ErrInvalidTransferAmount,
	ErrWalletNameRequired,
	ErrCategoryNameRequired,
}

func matchesAny(err error, targets []error) bool {
	for _, target := range targets {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

// IsNotFound reports whether err means an entity is missing or not owned by
// the caller. The two cases are deliberately indistinguishable.
func IsNotFound(err error) bool {
	return matchesAny(err, notFoundErrors)
}

// IsConflict reports whether err means the operation clashes with current
// state (already paid, insufficient balance, referenced records).
func IsConflict(err error) bool {
	return matchesAny(err, conflictErrors)
}

// IsInvalidRequest reports whether err means the request itself is malformed
// or violates a structural rule.
func IsInvalidRequest(err error) bool {
	return matchesAny(err, invalidRequestErrors)
}
