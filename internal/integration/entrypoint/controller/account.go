package controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/finance-tracker/ledger/internal/application/usecase/account"
	"github.com/finance-tracker/ledger/internal/domain/entity"
	"github.com/finance-tracker/ledger/internal/integration/entrypoint/dto"
)

// AccountController handles account endpoints.
type AccountController struct {
	createUseCase     *account.CreateAccountUseCase
	listUseCase       *account.ListAccountsUseCase
	getUseCase        *account.GetAccountUseCase
	deactivateUseCase *account.DeactivateAccountUseCase
}

// NewAccountController creates a new account controller instance.
func NewAccountController(
	createUseCase *account.CreateAccountUseCase,
	listUseCase *account.ListAccountsUseCase,
	getUseCase *account.GetAccountUseCase,
	deactivateUseCase *account.DeactivateAccountUseCase,
) *AccountController {
	return &AccountController{
		createUseCase:     createUseCase,
		listUseCase:       listUseCase,
		getUseCase:        getUseCase,
		deactivateUseCase: deactivateUseCase,
	}
}

// Create handles POST /accounts requests.
func (c *AccountController) Create(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}

	var req dto.CreateAccountRequest
	if !bindJSON(ctx, &req) {
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), account.CreateAccountInput{
		UserID:         userID,
		Name:           req.Name,
		Type:           entity.AccountType(req.Type),
		OpeningBalance: req.OpeningBalance,
	})
	if err != nil {
		respondError(ctx, err, "create account")
		return
	}

	response := dto.CreateAccountResponse{
		Account: dto.ToAccountResponse(output.Account),
	}
	if output.OpeningTransaction != nil {
		opening := dto.ToTransactionResponse(output.OpeningTransaction)
		response.OpeningTransaction = &opening
	}
	ctx.JSON(http.StatusCreated, response)
}

// List handles GET /accounts requests.
func (c *AccountController) List(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}

	includeInactive := false
	if raw := ctx.Query("include_inactive"); raw != "" {
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			badRequest(ctx, "include_inactive must be a boolean")
			return
		}
		includeInactive = parsed
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), account.ListAccountsInput{
		UserID:          userID,
		IncludeInactive: includeInactive,
	})
	if err != nil {
		respondError(ctx, err, "retrieve accounts")
		return
	}

	ctx.JSON(http.StatusOK, dto.ToAccountListResponse(output.Accounts))
}

// Get handles GET /accounts/:id requests.
func (c *AccountController) Get(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}
	accountID, ok := parseIDParam(ctx, "id", "account")
	if !ok {
		return
	}

	output, err := c.getUseCase.Execute(ctx.Request.Context(), account.GetAccountInput{
		UserID:    userID,
		AccountID: accountID,
	})
	if err != nil {
		respondError(ctx, err, "retrieve account")
		return
	}

	ctx.JSON(http.StatusOK, dto.ToAccountDetailResponse(output.Account, output.Reconciliation))
}

// Deactivate handles DELETE /accounts/:id requests. Accounts are never removed, only
// closed for new activity.
func (c *AccountController) Deactivate(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}
	accountID, ok := parseIDParam(ctx, "id", "account")
	if !ok {
		return
	}

	output, err := c.deactivateUseCase.Execute(ctx.Request.Context(), account.DeactivateAccountInput{
		UserID:    userID,
		AccountID: accountID,
	})
	if err != nil {
		respondError(ctx, err, "deactivate account")
		return
	}

	ctx.JSON(http.StatusOK, dto.ToAccountResponse(output.Account))
}
