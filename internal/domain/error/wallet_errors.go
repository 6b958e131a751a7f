// Package error defines domain-specific errors for the Walletbook application.
package error

import "errors"

// Wallet domain errors.
var (
	// ErrWalletNotFound is returned when a wallet is missing or belongs to
	// another user.
	ErrWalletNotFound = errors.New("wallet not found")

	// ErrWalletNameRequired is returned when a wallet name is empty.
	ErrWalletNameRequired = errors.New("wallet name is required")

	// ErrWalletNotEmpty is returned when deactivating a wallet whose balance
	// is not zero.
	ErrWalletNotEmpty = errors.New("wallet balance must be zero")
)

// WalletErrorCode defines error codes for wallet errors.
// Format: WAL-XXYYYY where XX is category and YYYY is specific error.
type WalletErrorCode string

const (
	ErrCodeWalletNotFound     WalletErrorCode = "WAL-010001"
	ErrCodeWalletNameRequired WalletErrorCode = "WAL-010002"
	ErrCodeWalletNotEmpty     WalletErrorCode = "WAL-020001"
)

// WalletError represents a wallet error with code and message.
type WalletError struct {
	Code    WalletErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *WalletError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *WalletError) Unwrap() error {
	return e.Err
}

// NewWalletError creates a new WalletError with the given code and message.
func NewWalletError(code WalletErrorCode, message string, err error) *WalletError {
	return &WalletError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
