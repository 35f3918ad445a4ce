package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/finance-tracker/ledger/internal/application/usecase/debt"
	"github.com/finance-tracker/ledger/internal/domain/entity"
	"github.com/finance-tracker/ledger/internal/integration/entrypoint/dto"
)

// DebtController handles debt endpoints.
type DebtController struct {
	createUseCase *debt.CreateDebtUseCase
	listUseCase   *debt.ListDebtsUseCase
	getUseCase    *debt.GetDebtUseCase
	payUseCase    *debt.PayDebtUseCase
}

// NewDebtController creates a new debt controller instance.
func NewDebtController(
	createUseCase *debt.CreateDebtUseCase,
	listUseCase *debt.ListDebtsUseCase,
	getUseCase *debt.GetDebtUseCase,
	payUseCase *debt.PayDebtUseCase,
) *DebtController {
	return &DebtController{
		createUseCase: createUseCase,
		listUseCase:   listUseCase,
		getUseCase:    getUseCase,
		payUseCase:    payUseCase,
	}
}

// Create handles POST /debts requests.
func (c *DebtController) Create(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}

	var req dto.CreateDebtRequest
	if !bindJSON(ctx, &req) {
		return
	}

	startDate, _ := dto.ParseOptionalDate(req.StartDate)
	dueDate, _ := dto.ParseOptionalDate(req.DueDate)

	output, err := c.createUseCase.Execute(ctx.Request.Context(), debt.CreateDebtInput{
		UserID:           userID,
		Name:             req.Name,
		Creditor:         req.Creditor,
		OriginalAmount:   req.OriginalAmount,
		InterestRate:     req.InterestRate,
		StartDate:        startDate,
		DueDate:          dueDate,
		Notes:            req.Notes,
		InstallmentCount: req.InstallmentCount,
	})
	if err != nil {
		respondError(ctx, err, "create debt")
		return
	}

	details := &entity.DebtDetails{
		Debt:            output.Debt,
		LedgerRemaining: output.Debt.RemainingAmount,
	}
	if len(output.Installments) > 0 {
		summary := entity.SummarizeInstallments(output.Installments)
		details.Installments = &summary
	}
	ctx.JSON(http.StatusCreated, dto.ToDebtDetailsResponse(details))
}

// List handles GET /debts requests with an optional status filter.
func (c *DebtController) List(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}

	status, ok := queryEnum(ctx, "status",
		string(entity.DebtStatusActive), string(entity.DebtStatusOverdue), string(entity.DebtStatusPaid))
	if !ok {
		return
	}

	input := debt.ListDebtsInput{UserID: userID}
	if status != "" {
		s := entity.DebtStatus(status)
		input.Status = &s
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		respondError(ctx, err, "retrieve debts")
		return
	}

	ctx.JSON(http.StatusOK, dto.ToDebtListResponse(output.Debts))
}

// Get handles GET /debts/:id requests.
func (c *DebtController) Get(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}
	debtID, ok := parseIDParam(ctx, "id", "debt")
	if !ok {
		return
	}

	output, err := c.getUseCase.Execute(ctx.Request.Context(), debt.GetDebtInput{
		UserID: userID,
		DebtID: debtID,
	})
	if err != nil {
		respondError(ctx, err, "retrieve debt")
		return
	}

	ctx.JSON(http.StatusOK, dto.ToDebtDetailsResponse(output.Details))
}

// Pay handles POST /debts/:id/payments requests.
func (c *DebtController) Pay(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}
	debtID, ok := parseIDParam(ctx, "id", "debt")
	if !ok {
		return
	}

	var req dto.PaymentRequest
	if !bindJSON(ctx, &req) {
		return
	}

	accountID, _ := uuid.Parse(req.AccountID)
	date, _ := dto.ParseOptionalDate(req.Date)

	output, err := c.payUseCase.Execute(ctx.Request.Context(), debt.PayDebtInput{
		UserID:    userID,
		DebtID:    debtID,
		AccountID: accountID,
		Amount:    req.Amount,
		Date:      date,
	})
	if err != nil {
		respondError(ctx, err, "pay debt")
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToDebtPaymentResponse(output))
}
