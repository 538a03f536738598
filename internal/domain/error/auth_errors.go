// Package error defines domain-specific errors for the budget dashboard.
package error

import "errors"

// Auth domain errors.
var (
	// ErrInvalidCredentials is returned when the household password is wrong.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrInvalidToken is returned when a JWT is malformed, expired or has
	// the wrong type.
	ErrInvalidToken = errors.New("invalid or expired token")
)

// AuthErrorCode defines error codes for authentication errors.
type AuthErrorCode string

const (
	ErrCodeInvalidCredentials AuthErrorCode = "AUT-010001"
	ErrCodeMissingToken       AuthErrorCode = "AUT-010002"
	ErrCodeInvalidToken       AuthErrorCode = "AUT-010003"
	ErrCodeRateLimited        AuthErrorCode = "AUT-010004"
)

// AuthError represents an authentication error with code and message.
type AuthError struct {
	Code    AuthErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *AuthError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *AuthError) Unwrap() error {
	return e.Err
}

// NewAuthError creates a new AuthError with the given code and message.
func NewAuthError(code AuthErrorCode, message string, err error) *AuthError {
	return &AuthError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
