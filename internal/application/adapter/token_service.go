package adapter

import "time"

// TokenClaims carries the subject and expiry extracted from a verified token.
type TokenClaims struct {
	Subject   string
	ExpiresAt time.Time
}

// TokenService defines the interface for issuing and verifying auth tokens.
type TokenService interface {
	// GenerateAccessToken issues a short lived access token for the subject.
	GenerateAccessToken(subject string) (string, error)

	// GenerateRefreshToken issues a long lived refresh token for the subject.
	GenerateRefreshToken(subject string) (string, error)

	// ValidateAccessToken verifies an access token and returns its claims.
	ValidateAccessToken(token string) (*TokenClaims, error)

	// ValidateRefreshToken verifies a refresh token and returns its claims.
	ValidateRefreshToken(token string) (*TokenClaims, error)
}
