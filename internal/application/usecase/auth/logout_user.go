// Package auth contains authentication-related use cases.
package auth

import (
	"context"
	"fmt"

	"github.com/finance-tracker/ledger/internal/application/adapter"
	domainerror "github.com/finance-tracker/ledger/internal/domain/error"
)

// LogoutUserInput represents the input for user logout.
type LogoutUserInput struct {
	Claims *adapter.TokenClaims
}

// LogoutUserOutput represents the output of user logout.
type LogoutUserOutput struct {
	Message string
}

// LogoutUserUseCase handles user logout logic.
type LogoutUserUseCase struct {
	tokenService adapter.TokenService
}

// NewLogoutUserUseCase creates a new LogoutUserUseCase instance.
func NewLogoutUserUseCase(tokenService adapter.TokenService) *LogoutUserUseCase {
	return &LogoutUserUseCase{
		tokenService: tokenService,
	}
}

// Execute performs the user logout by revoking the presented access token.
func (uc *LogoutUserUseCase) Execute(ctx context.Context, input LogoutUserInput) (*LogoutUserOutput, error) {
	// Tokens without an identifier cannot be put on the revocation list
	if input.Claims == nil || input.Claims.TokenID == "" {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeInvalidToken,
			"token cannot be revoked",
			domainerror.ErrInvalidToken,
		)
	}

	if err := uc.tokenService.RevokeToken(ctx, input.Claims); err != nil {
		return nil, fmt.Errorf("failed to revoke token: %w", err)
	}

	return &LogoutUserOutput{
		Message: "Successfully logged out",
	}, nil
}
