// Package error defines domain-specific errors for the Walletbook application.
package error

import "errors"

// Category domain errors.
var (
	// ErrCategoryNotFound is returned when a category is missing or belongs
	// to another user.
	ErrCategoryNotFound = errors.New("category not found")

	// ErrCategoryNameRequired is returned when a category name is empty.
	ErrCategoryNameRequired = errors.New("category name is required")

	// ErrCategoryInUse is returned when deleting a category that entries
	// still reference.
	ErrCategoryInUse = errors.New("category is referenced by entries")

	// ErrCategoryTypeImmutable is returned when attempting to change a
	// category's type after creation.
	ErrCategoryTypeImmutable = errors.New("category type cannot be changed")

	// ErrCategoryTypeMismatch is returned when an entry's type differs from
	// its category's type.
	ErrCategoryTypeMismatch = errors.New("entry type does not match category type")
)

// CategoryErrorCode defines error codes for category errors.
// Format: CAT-XXYYYY where XX is category and YYYY is specific error.
type CategoryErrorCode string

const (
	ErrCodeCategoryNotFound      CategoryErrorCode = "CAT-010001"
	ErrCodeCategoryNameRequired  CategoryErrorCode = "CAT-010002"
	ErrCodeCategoryTypeImmutable CategoryErrorCode = "CAT-010003"
	ErrCodeCategoryTypeMismatch  CategoryErrorCode = "CAT-010004"
	ErrCodeCategoryInUse         CategoryErrorCode = "CAT-020001"
)

// CategoryError represents a category error with code and message.
type CategoryError struct {
	Code    CategoryErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *CategoryError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *CategoryError) Unwrap() error {
	return e.Err
}

// NewCategoryError creates a new CategoryError with the given code and message.
func NewCategoryError(code CategoryErrorCode, message string, err error) *CategoryError {
	return &CategoryError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
