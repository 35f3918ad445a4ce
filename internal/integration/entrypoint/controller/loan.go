package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/finance-tracker/ledger/internal/application/usecase/loan"
	"github.com/finance-tracker/ledger/internal/domain/entity"
	"github.com/finance-tracker/ledger/internal/integration/entrypoint/dto"
)

// LoanController handles loan endpoints.
type LoanController struct {
	createUseCase *loan.CreateLoanUseCase
	listUseCase   *loan.ListLoansUseCase
	getUseCase    *loan.GetLoanUseCase
	payUseCase    *loan.PayLoanUseCase
}

// NewLoanController creates a new loan controller instance.
func NewLoanController(
	createUseCase *loan.CreateLoanUseCase,
	listUseCase *loan.ListLoansUseCase,
	getUseCase *loan.GetLoanUseCase,
	payUseCase *loan.PayLoanUseCase,
) *LoanController {
	return &LoanController{
		createUseCase: createUseCase,
		listUseCase:   listUseCase,
		getUseCase:    getUseCase,
		payUseCase:    payUseCase,
	}
}

// Create handles POST /loans requests.
func (c *LoanController) Create(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}

	var req dto.CreateLoanRequest
	if !bindJSON(ctx, &req) {
		return
	}

	startDate, _ := dto.ParseOptionalDate(req.StartDate)
	dueDate, _ := dto.ParseOptionalDate(req.DueDate)

	output, err := c.createUseCase.Execute(ctx.Request.Context(), loan.CreateLoanInput{
		UserID:         userID,
		Name:           req.Name,
		Borrower:       req.Borrower,
		OriginalAmount: req.OriginalAmount,
		InterestRate:   req.InterestRate,
		StartDate:      startDate,
		DueDate:        dueDate,
		Notes:          req.Notes,
	})
	if err != nil {
		respondError(ctx, err, "create loan")
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToLoanResponse(output.Loan))
}

// List handles GET /loans requests with an optional status filter.
func (c *LoanController) List(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}

	status, ok := queryEnum(ctx, "status",
		string(entity.LoanStatusActive), string(entity.LoanStatusOverdue),
		string(entity.LoanStatusPartial), string(entity.LoanStatusPaid))
	if !ok {
		return
	}

	input := loan.ListLoansInput{UserID: userID}
	if status != "" {
		s := entity.LoanStatus(status)
		input.Status = &s
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		respondError(ctx, err, "retrieve loans")
		return
	}

	ctx.JSON(http.StatusOK, dto.ToLoanListResponse(output.Loans))
}

// Get handles GET /loans/:id requests.
func (c *LoanController) Get(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}
	loanID, ok := parseIDParam(ctx, "id", "loan")
	if !ok {
		return
	}

	output, err := c.getUseCase.Execute(ctx.Request.Context(), loan.GetLoanInput{
		UserID: userID,
		LoanID: loanID,
	})
	if err != nil {
		respondError(ctx, err, "retrieve loan")
		return
	}

	ctx.JSON(http.StatusOK, dto.ToLoanDetailsResponse(output.Details))
}

// Pay handles POST /loans/:id/payments requests.
func (c *LoanController) Pay(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}
	loanID, ok := parseIDParam(ctx, "id", "loan")
	if !ok {
		return
	}

	var req dto.PaymentRequest
	if !bindJSON(ctx, &req) {
		return
	}

	accountID, _ := uuid.Parse(req.AccountID)
	date, _ := dto.ParseOptionalDate(req.Date)

	output, err := c.payUseCase.Execute(ctx.Request.Context(), loan.PayLoanInput{
		UserID:    userID,
		LoanID:    loanID,
		AccountID: accountID,
		Amount:    req.Amount,
		Date:      date,
	})
	if err != nil {
		respondError(ctx, err, "record loan payment")
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToLoanPaymentResponse(output))
}
