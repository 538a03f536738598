// Package error defines domain-specific errors for the budget dashboard.
package error

import "errors"

// Income source domain errors.
var (
	// ErrIncomeSourceNotFound is returned when an income source is not found.
	ErrIncomeSourceNotFound = errors.New("income source not found")

	// ErrInvalidPayDate is returned when a next pay date cannot be parsed.
	ErrInvalidPayDate = errors.New("invalid next pay date")
)
