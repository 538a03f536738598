// Package error defines domain-specific errors for the budget dashboard.
package error

import "errors"

// Bill domain errors.
var (
	// ErrBillNotFound is returned when a bill is not found in the system.
	ErrBillNotFound = errors.New("bill not found")

	// ErrInvalidDueDate is returned when a due day falls outside 1-31.
	ErrInvalidDueDate = errors.New("due date must be between 1 and 31")

	// ErrInvalidBillCategory is returned when the category is not a known value.
	ErrInvalidBillCategory = errors.New("invalid bill category")

	// ErrInvalidPerson is returned when the payer is not one of the two partners.
	ErrInvalidPerson = errors.New("invalid person")

	// ErrNegativeAmount is returned when a money amount is negative.
	ErrNegativeAmount = errors.New("amount must not be negative")
)

// BillErrorCode defines error codes for bill errors.
// Format: BIL-XXYYYY where XX is category and YYYY is specific error.
type BillErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeBillNotFound        BillErrorCode = "BIL-010001"
	ErrCodeInvalidDueDate      BillErrorCode = "BIL-010002"
	ErrCodeInvalidBillCategory BillErrorCode = "BIL-010003"
	ErrCodeInvalidPerson       BillErrorCode = "BIL-010004"
	ErrCodeNegativeAmount      BillErrorCode = "BIL-010005"
	ErrCodeMissingBillFields   BillErrorCode = "BIL-010006"
)

// BillError represents a bill error with code and message.
type BillError struct {
	Code    BillErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *BillError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *BillError) Unwrap() error {
	return e.Err
}

// NewBillError creates a new BillError with the given code and message.
func NewBillError(code BillErrorCode, message string, err error) *BillError {
	return &BillError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
