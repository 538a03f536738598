// Package error defines domain-specific errors for the budget dashboard.
package error

import "errors"

// Paid-check domain errors.
var (
	// ErrInvalidCheckKey is returned when a paid-check mutation addresses a
	// malformed period or an empty bill key.
	ErrInvalidCheckKey = errors.New("invalid paid-check key")

	// ErrCheckStoreUnavailable is returned when neither the durable store
	// nor the fallback cache could serve a paid-check operation.
	ErrCheckStoreUnavailable = errors.New("paid-check store unavailable")
)

// CheckErrorCode defines error codes for paid-check errors.
type CheckErrorCode string

const (
	ErrCodeInvalidCheckKey       CheckErrorCode = "CHK-010001"
	ErrCodeCheckStoreUnavailable CheckErrorCode = "CHK-020001"
)
