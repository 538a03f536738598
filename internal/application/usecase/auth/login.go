// Package auth contains authentication use cases. The dashboard uses a
// single shared household password; there are no user accounts.
package auth

import (
	"context"
	"fmt"

	"github.com/household-budget/backend/internal/application/adapter"
	domainerror "github.com/household-budget/backend/internal/domain/error"
)

// LoginInput represents the input for household login.
type LoginInput struct {
	Password string
}

// LoginOutput represents the output of household login.
type LoginOutput struct {
	AccessToken  string
	RefreshToken string
}

// LoginUseCase handles household login logic.
type LoginUseCase struct {
	passwordHash    string
	householdName   string
	passwordService adapter.PasswordService
	tokenService    adapter.TokenService
}

// NewLoginUseCase creates a new LoginUseCase instance.
func NewLoginUseCase(
	passwordHash string,
	householdName string,
	passwordService adapter.PasswordService,
	tokenService adapter.TokenService,
) *LoginUseCase {
	return &LoginUseCase{
		passwordHash:    passwordHash,
		householdName:   householdName,
		passwordService: passwordService,
		tokenService:    tokenService,
	}
}

// Execute performs the household login.
func (uc *LoginUseCase) Execute(ctx context.Context, input LoginInput) (*LoginOutput, error) {
	if err := uc.passwordService.Compare(uc.passwordHash, input.Password); err != nil {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeInvalidCredentials,
			"invalid password",
			domainerror.ErrInvalidCredentials,
		)
	}

	accessToken, err := uc.tokenService.GenerateAccessToken(uc.householdName)
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}
	refreshToken, err := uc.tokenService.GenerateRefreshToken(uc.householdName)
	if err != nil {
		return nil, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	return &LoginOutput{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}
