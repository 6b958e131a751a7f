// Package error defines domain-specific errors for the Walletbook application.
package error

import "errors"

// Transfer domain errors.
var (
	// ErrTransferNotFound is returned when a transfer is missing or belongs
	// to another user.
	ErrTransferNotFound = errors.New("transfer not found")

	// ErrSameWalletTransfer is returned when source and destination wallets
	// are the same.
	ErrSameWalletTransfer = errors.New("source and destination wallets must differ")

	// ErrInvalidTransferAmount is returned when the transfer amount is not
	// strictly positive.
	ErrInvalidTransferAmount = errors.New("transfer amount must be positive")

	// ErrInsufficientBalance is returned when the source wallet cannot cover
	// the transfer amount.
	ErrInsufficientBalance = errors.New("insufficient wallet balance")
)

// TransferErrorCode defines error codes for transfer errors.
// Format: TRF-XXYYYY where XX is category and YYYY is specific error.
type TransferErrorCode string

const (
	ErrCodeTransferNotFound      TransferErrorCode = "TRF-010001"
	ErrCodeSameWalletTransfer    TransferErrorCode = "TRF-010002"
	ErrCodeInvalidTransferAmount TransferErrorCode = "TRF-010003"
	ErrCodeTransferWalletMissing TransferErrorCode = "TRF-010004"
	ErrCodeInsufficientBalance   TransferErrorCode = "TRF-020001"
)

// TransferError represents a transfer error with code and message.
type TransferError struct {
	Code    TransferErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *TransferError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *TransferError) Unwrap() error {
	return e.Err
}

// NewTransferError creates a new TransferError with the given code and message.
func NewTransferError(code TransferErrorCode, message string, err error) *TransferError {
	return &TransferError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
