package controller

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/finance-tracker/ledger/internal/application/usecase/pendingpayment"
	"github.com/finance-tracker/ledger/internal/domain/entity"
	"github.com/finance-tracker/ledger/internal/integration/entrypoint/dto"
	"github.com/finance-tracker/ledger/internal/integration/entrypoint/middleware"
)

// PendingPaymentController handles pending payment endpoints.
type PendingPaymentController struct {
	createUseCase   *pendingpayment.CreatePendingPaymentUseCase
	listUseCase     *pendingpayment.ListPendingPaymentsUseCase
	markPaidUseCase *pendingpayment.MarkPaidUseCase
	cancelUseCase   *pendingpayment.CancelPendingPaymentUseCase
}

// NewPendingPaymentController creates a new pending payment controller instance.
func NewPendingPaymentController(
	createUseCase *pendingpayment.CreatePendingPaymentUseCase,
	listUseCase *pendingpayment.ListPendingPaymentsUseCase,
	markPaidUseCase *pendingpayment.MarkPaidUseCase,
	cancelUseCase *pendingpayment.CancelPendingPaymentUseCase,
) *PendingPaymentController {
	return &PendingPaymentController{
		createUseCase:   createUseCase,
		listUseCase:     listUseCase,
		markPaidUseCase: markPaidUseCase,
		cancelUseCase:   cancelUseCase,
	}
}

// Create handles POST /pending-payments requests. Overdue reminders go to the email
// address of the authenticated user.
func (c *PendingPaymentController) Create(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}

	var req dto.CreatePendingPaymentRequest
	if !bindJSON(ctx, &req) {
		return
	}

	dueDate, _ := dto.ParseOptionalDate(req.DueDate)
	debtID, _ := dto.ParseOptionalUUID(req.DebtID)
	loanID, _ := dto.ParseOptionalUUID(req.LoanID)
	email, _ := middleware.GetUserEmailFromContext(ctx)

	output, err := c.createUseCase.Execute(ctx.Request.Context(), pendingpayment.CreatePendingPaymentInput{
		UserID:        userID,
		Description:   req.Description,
		Amount:        req.Amount,
		DueDate:       dueDate,
		Priority:      entity.Priority(req.Priority),
		DebtID:        debtID,
		LoanID:        loanID,
		ReminderEmail: email,
	})
	if err != nil {
		respondError(ctx, err, "create pending payment")
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToPendingPaymentResponse(output.PendingPayment))
}

// List handles GET /pending-payments requests. The status query parameter accepts a
// comma separated list.
func (c *PendingPaymentController) List(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}

	input := pendingpayment.ListPendingPaymentsInput{UserID: userID}
	if raw := ctx.Query("status"); raw != "" {
		for _, part := range strings.Split(raw, ",") {
			status := entity.PendingPaymentStatus(strings.TrimSpace(part))
			switch status {
			case entity.PendingPaymentStatusPending, entity.PendingPaymentStatusOverdue,
				entity.PendingPaymentStatusPaid, entity.PendingPaymentStatusCancelled:
				input.Statuses = append(input.Statuses, status)
			default:
				badRequest(ctx, "Invalid status: "+part)
				return
			}
		}
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		respondError(ctx, err, "retrieve pending payments")
		return
	}

	ctx.JSON(http.StatusOK, dto.ToPendingPaymentListResponse(output.PendingPayments))
}

// MarkPaid handles POST /pending-payments/:id/pay requests.
func (c *PendingPaymentController) MarkPaid(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}
	paymentID, ok := parseIDParam(ctx, "id", "pending payment")
	if !ok {
		return
	}

	var req dto.MarkPaidRequest
	if !bindJSON(ctx, &req) {
		return
	}

	accountID, _ := uuid.Parse(req.AccountID)

	output, err := c.markPaidUseCase.Execute(ctx.Request.Context(), pendingpayment.MarkPaidInput{
		UserID:           userID,
		PendingPaymentID: paymentID,
		AccountID:        accountID,
	})
	if err != nil {
		respondError(ctx, err, "mark pending payment as paid")
		return
	}

	ctx.JSON(http.StatusOK, dto.ToMarkPaidResponse(output))
}

// Cancel handles POST /pending-payments/:id/cancel requests.
func (c *PendingPaymentController) Cancel(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}
	paymentID, ok := parseIDParam(ctx, "id", "pending payment")
	if !ok {
		return
	}

	output, err := c.cancelUseCase.Execute(ctx.Request.Context(), pendingpayment.CancelPendingPaymentInput{
		UserID:           userID,
		PendingPaymentID: paymentID,
	})
	if err != nil {
		respondError(ctx, err, "cancel pending payment")
		return
	}

	ctx.JSON(http.StatusOK, dto.ToPendingPaymentResponse(output.PendingPayment))
}
