// Package error defines domain-specific errors for the Walletbook application.
package error

import "errors"

// Entry domain errors.
var (
	// ErrEntryNotFound is returned when an entry is missing or belongs to
	// another user.
	ErrEntryNotFound = errors.New("entry not found")

	// ErrEntryAlreadyPaid is returned when paying an entry that is already
	// marked paid.
	ErrEntryAlreadyPaid = errors.New("entry is already paid")

	// ErrInvalidEntryType is returned when the entry type is invalid.
	ErrInvalidEntryType = errors.New("invalid entry type")

	// ErrInvalidEntryAmount is returned when the entry amount is not
	// strictly positive.
	ErrInvalidEntryAmount = errors.New("entry amount must be positive")

	// ErrRecurringAndInstallment is returned when a create request flags an
	// entry as both recurring and installment.
	ErrRecurringAndInstallment = errors.New("entry cannot be recurring and installment")

	// ErrMissingRecurrence is returned when a recurring request carries no
	// recurrence kind.
	ErrMissingRecurrence = errors.New("recurring entry requires a recurrence kind")

	// ErrInvalidRecurrence is returned when the recurrence kind is unknown.
	ErrInvalidRecurrence = errors.New("invalid recurrence kind")

	// ErrMissingInstallmentCount is returned when an installment request
	// carries no installment count.
	ErrMissingInstallmentCount = errors.New("installment entry requires an installment count")

	// ErrInvalidInstallmentCount is returned when the installment count is
	// out of range or the amount is too small to split across it.
	ErrInvalidInstallmentCount = errors.New("invalid installment count")
)

// EntryErrorCode defines error codes for entry errors.
// Format: ENT-XXYYYY where XX is category and YYYY is specific error.
type EntryErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeEntryNotFound           EntryErrorCode = "ENT-010001"
	ErrCodeInvalidEntryType        EntryErrorCode = "ENT-010002"
	ErrCodeInvalidEntryAmount      EntryErrorCode = "ENT-010003"
	ErrCodeRecurringAndInstallment EntryErrorCode = "ENT-010004"
	ErrCodeMissingRecurrence       EntryErrorCode = "ENT-010005"
	ErrCodeInvalidRecurrence       EntryErrorCode = "ENT-010006"
	ErrCodeMissingInstallmentCount EntryErrorCode = "ENT-010007"
	ErrCodeEntryWalletNotFound     EntryErrorCode = "ENT-010008"
	ErrCodeEntryCategoryNotFound   EntryErrorCode = "ENT-010009"
	ErrCodeEntryTypeMismatch       EntryErrorCode = "ENT-010010"
	ErrCodeMissingEntryFields      EntryErrorCode = "ENT-010011"
	ErrCodeInvalidInstallmentCount EntryErrorCode = "ENT-010012"

	// State conflicts (02XXXX)
	ErrCodeEntryAlreadyPaid EntryErrorCode = "ENT-020001"
)

// EntryError represents an entry error with code and message.
type EntryError struct {
	Code    EntryErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *EntryError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *EntryError) Unwrap() error {
	return e.Err
}

// NewEntryError creates a new EntryError with the given code and message.
func NewEntryError(code EntryErrorCode, message string, err error) *EntryError {
	return &EntryError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
