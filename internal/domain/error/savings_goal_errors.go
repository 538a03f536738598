// Package error defines domain-specific errors for the budget dashboard.
package error

import "errors"

// Savings goal domain errors.
var (
	// ErrSavingsGoalNotFound is returned when a savings goal is not found.
	ErrSavingsGoalNotFound = errors.New("savings goal not found")

	// ErrInvalidTargetAmount is returned when the target amount is zero or
	// negative.
	ErrInvalidTargetAmount = errors.New("target amount must be greater than zero")
)
