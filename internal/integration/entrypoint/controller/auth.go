package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/finance-tracker/ledger/internal/application/usecase/auth"
	"github.com/finance-tracker/ledger/internal/integration/entrypoint/dto"
	"github.com/finance-tracker/ledger/internal/integration/entrypoint/middleware"
)

// AuthController handles session endpoints. Tokens are issued by the identity
// service, so only logout lives here.
type AuthController struct {
	logoutUseCase *auth.LogoutUserUseCase
}

// NewAuthController creates a new auth controller instance.
func NewAuthController(logoutUseCase *auth.LogoutUserUseCase) *AuthController {
	return &AuthController{
		logoutUseCase: logoutUseCase,
	}
}

// Logout handles POST /auth/logout requests.
// It revokes the presented access token for the rest of its lifetime.
func (c *AuthController) Logout(ctx *gin.Context) {
	claims, _ := middleware.GetClaimsFromContext(ctx)

	output, err := c.logoutUseCase.Execute(ctx.Request.Context(), auth.LogoutUserInput{
		Claims: claims,
	})
	if err != nil {
		respondError(ctx, err, "log out")
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: output.Message})
}
