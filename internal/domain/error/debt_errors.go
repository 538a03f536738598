// Package error defines domain-specific errors for the budget dashboard.
package error

import "errors"

// Debt (credit card and loan) domain errors.
var (
	// ErrCreditCardNotFound is returned when a credit card is not found.
	ErrCreditCardNotFound = errors.New("credit card not found")

	// ErrLoanNotFound is returned when a loan is not found.
	ErrLoanNotFound = errors.New("loan not found")
)
