package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/finance-tracker/ledger/internal/application/usecase/recurring"
	"github.com/finance-tracker/ledger/internal/domain/entity"
	"github.com/finance-tracker/ledger/internal/domain/valueobject"
	"github.com/finance-tracker/ledger/internal/integration/entrypoint/dto"
)

// RecurringExpenseController handles recurring expense endpoints.
type RecurringExpenseController struct {
	createUseCase       *recurring.CreateRecurringExpenseUseCase
	listUseCase         *recurring.ListRecurringExpensesUseCase
	updateStatusUseCase *recurring.UpdateRecurringStatusUseCase
	chargeUseCase       *recurring.ChargeRecurringExpenseUseCase
}

// NewRecurringExpenseController creates a new recurring expense controller instance.
func NewRecurringExpenseController(
	createUseCase *recurring.CreateRecurringExpenseUseCase,
	listUseCase *recurring.ListRecurringExpensesUseCase,
	updateStatusUseCase *recurring.UpdateRecurringStatusUseCase,
	chargeUseCase *recurring.ChargeRecurringExpenseUseCase,
) *RecurringExpenseController {
	return &RecurringExpenseController{
		createUseCase:       createUseCase,
		listUseCase:         listUseCase,
		updateStatusUseCase: updateStatusUseCase,
		chargeUseCase:       chargeUseCase,
	}
}

// Create handles POST /recurring-expenses requests.
func (c *RecurringExpenseController) Create(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}

	var req dto.CreateRecurringExpenseRequest
	if !bindJSON(ctx, &req) {
		return
	}

	accountID, _ := uuid.Parse(req.AccountID)
	categoryID, _ := dto.ParseOptionalUUID(req.CategoryID)

	output, err := c.createUseCase.Execute(ctx.Request.Context(), recurring.CreateRecurringExpenseInput{
		UserID:     userID,
		AccountID:  accountID,
		CategoryID: categoryID,
		Name:       req.Name,
		Amount:     req.Amount,
		Frequency:  valueobject.Frequency(req.Frequency),
		ChargeDay:  req.ChargeDay,
	})
	if err != nil {
		respondError(ctx, err, "create recurring expense")
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToRecurringExpenseResponse(output.RecurringExpense))
}

// List handles GET /recurring-expenses requests with an optional status filter.
func (c *RecurringExpenseController) List(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}

	status, ok := queryEnum(ctx, "status",
		string(entity.RecurringStatusActive), string(entity.RecurringStatusPaused),
		string(entity.RecurringStatusCancelled))
	if !ok {
		return
	}

	input := recurring.ListRecurringExpensesInput{UserID: userID}
	if status != "" {
		s := entity.RecurringStatus(status)
		input.Status = &s
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		respondError(ctx, err, "retrieve recurring expenses")
		return
	}

	ctx.JSON(http.StatusOK, dto.ToRecurringExpenseListResponse(output.RecurringExpenses))
}

// UpdateStatus handles PATCH /recurring-expenses/:id/status requests.
func (c *RecurringExpenseController) UpdateStatus(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}
	expenseID, ok := parseIDParam(ctx, "id", "recurring expense")
	if !ok {
		return
	}

	var req dto.UpdateRecurringStatusRequest
	if !bindJSON(ctx, &req) {
		return
	}

	output, err := c.updateStatusUseCase.Execute(ctx.Request.Context(), recurring.UpdateRecurringStatusInput{
		UserID:             userID,
		RecurringExpenseID: expenseID,
		Status:             entity.RecurringStatus(req.Status),
	})
	if err != nil {
		respondError(ctx, err, "update recurring expense status")
		return
	}

	ctx.JSON(http.StatusOK, dto.ToRecurringExpenseResponse(output.RecurringExpense))
}

// Charge handles POST /recurring-expenses/:id/charge requests. It bills the next
// scheduled period immediately.
func (c *RecurringExpenseController) Charge(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}
	expenseID, ok := parseIDParam(ctx, "id", "recurring expense")
	if !ok {
		return
	}

	output, err := c.chargeUseCase.Execute(ctx.Request.Context(), recurring.ChargeRecurringExpenseInput{
		UserID:             userID,
		RecurringExpenseID: expenseID,
	})
	if err != nil {
		respondError(ctx, err, "charge recurring expense")
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToChargeResponse(output))
}
