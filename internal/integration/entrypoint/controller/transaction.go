package controller

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/finance-tracker/ledger/internal/application/usecase/transaction"
	"github.com/finance-tracker/ledger/internal/domain/entity"
	"github.com/finance-tracker/ledger/internal/integration/entrypoint/dto"
)

// TransactionController handles transaction endpoints.
type TransactionController struct {
	createUseCase   *transaction.CreateTransactionUseCase
	transferUseCase *transaction.TransferUseCase
	listUseCase     *transaction.ListTransactionsUseCase
	deleteUseCase   *transaction.DeleteTransactionUseCase
}

// NewTransactionController creates a new transaction controller instance.
func NewTransactionController(
	createUseCase *transaction.CreateTransactionUseCase,
	transferUseCase *transaction.TransferUseCase,
	listUseCase *transaction.ListTransactionsUseCase,
	deleteUseCase *transaction.DeleteTransactionUseCase,
) *TransactionController {
	return &TransactionController{
		createUseCase:   createUseCase,
		transferUseCase: transferUseCase,
		listUseCase:     listUseCase,
		deleteUseCase:   deleteUseCase,
	}
}

// Create handles POST /transactions requests.
func (c *TransactionController) Create(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}

	var req dto.CreateTransactionRequest
	if !bindJSON(ctx, &req) {
		return
	}

	// Request binding already validated the UUID and date formats
	accountID, _ := uuid.Parse(req.AccountID)
	date, _ := dto.ParseOptionalDate(req.Date)
	categoryID, _ := dto.ParseOptionalUUID(req.CategoryID)
	subcategoryID, _ := dto.ParseOptionalUUID(req.SubcategoryID)

	output, err := c.createUseCase.Execute(ctx.Request.Context(), transaction.CreateTransactionInput{
		UserID:        userID,
		AccountID:     accountID,
		Type:          entity.TransactionType(req.Type),
		Amount:        req.Amount,
		CategoryID:    categoryID,
		SubcategoryID: subcategoryID,
		Date:          date,
		Description:   req.Description,
		Notes:         req.Notes,
		AttachmentIDs: req.AttachmentIDs,
	})
	if err != nil {
		respondError(ctx, err, "create transaction")
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToPostedTransactionResponse(output.Transaction, output.AccountBalance))
}

// Transfer handles POST /transactions/transfer requests.
func (c *TransactionController) Transfer(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}

	var req dto.TransferRequest
	if !bindJSON(ctx, &req) {
		return
	}

	fromID, _ := uuid.Parse(req.FromAccountID)
	toID, _ := uuid.Parse(req.ToAccountID)
	date, _ := dto.ParseOptionalDate(req.Date)

	output, err := c.transferUseCase.Execute(ctx.Request.Context(), transaction.TransferInput{
		UserID:        userID,
		FromAccountID: fromID,
		ToAccountID:   toID,
		Amount:        req.Amount,
		Date:          date,
		Description:   req.Description,
	})
	if err != nil {
		respondError(ctx, err, "transfer funds")
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToTransferResponse(output))
}

// List handles GET /transactions requests.
// Supported query parameters: account_id, type (comma separated), start_date, end_date,
// page and limit.
func (c *TransactionController) List(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}

	input := transaction.ListTransactionsInput{
		UserID: userID,
	}

	if raw := ctx.Query("account_id"); raw != "" {
		accountID, err := uuid.Parse(raw)
		if err != nil {
			badRequest(ctx, "Invalid account ID format")
			return
		}
		input.AccountID = &accountID
	}

	if raw := ctx.Query("type"); raw != "" {
		for _, part := range strings.Split(raw, ",") {
			txType := entity.TransactionType(strings.TrimSpace(part))
			if !txType.IsValid() {
				badRequest(ctx, "Invalid transaction type: "+part)
				return
			}
			input.Types = append(input.Types, txType)
		}
	}

	if raw := ctx.Query("start_date"); raw != "" {
		start, err := dto.ParseDate(raw)
		if err != nil {
			badRequest(ctx, "start_date must use format "+dto.DateLayout)
			return
		}
		input.StartDate = &start
	}
	if raw := ctx.Query("end_date"); raw != "" {
		end, err := dto.ParseDate(raw)
		if err != nil {
			badRequest(ctx, "end_date must use format "+dto.DateLayout)
			return
		}
		input.EndDate = &end
	}

	if raw := ctx.Query("page"); raw != "" {
		page, err := strconv.Atoi(raw)
		if err != nil {
			badRequest(ctx, "page must be a number")
			return
		}
		input.Page = page
	}
	if raw := ctx.Query("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil {
			badRequest(ctx, "limit must be a number")
			return
		}
		input.Limit = limit
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		respondError(ctx, err, "retrieve transactions")
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTransactionListResponse(output))
}

// Delete handles DELETE /transactions/:id requests.
func (c *TransactionController) Delete(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}
	transactionID, ok := parseIDParam(ctx, "id", "transaction")
	if !ok {
		return
	}

	output, err := c.deleteUseCase.Execute(ctx.Request.Context(), transaction.DeleteTransactionInput{
		TransactionID: transactionID,
		UserID:        userID,
	})
	if err != nil {
		respondError(ctx, err, "delete transaction")
		return
	}

	ctx.JSON(http.StatusOK, dto.DeleteTransactionResponse{
		DeletedID:     output.Transaction.ID.String(),
		AttachmentIDs: output.AttachmentIDs,
	})
}
