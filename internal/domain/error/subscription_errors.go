// Package error defines domain-specific errors for the budget dashboard.
package error

import "errors"

// Subscription domain errors.
var (
	// ErrSubscriptionNotFound is returned when a subscription is not found.
	ErrSubscriptionNotFound = errors.New("subscription not found")

	// ErrInvalidFrequency is returned when the renewal frequency is not a
	// known value.
	ErrInvalidFrequency = errors.New("invalid subscription frequency")
)
