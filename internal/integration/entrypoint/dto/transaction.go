package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/finance-tracker/ledger/internal/application/usecase/transaction"
	"github.com/finance-tracker/ledger/internal/domain/entity"
)

// CreateTransactionRequest represents the request body for transaction creation.
type CreateTransactionRequest struct {
	AccountID     string          `json:"account_id" binding:"required,uuid"`
	Type          string          `json:"type" binding:"required,transaction_type"`
	Amount        decimal.Decimal `json:"amount" binding:"required,gt=0"`
	Date          *string         `json:"date,omitempty" binding:"omitempty,datetime=2006-01-02"`
	CategoryID    *string         `json:"category_id,omitempty" binding:"omitempty,uuid"`
	SubcategoryID *string         `json:"subcategory_id,omitempty" binding:"omitempty,uuid"`
	Description   string          `json:"description" binding:"max=255"`
	Notes         string          `json:"notes,omitempty" binding:"omitempty,max=1000"`
	AttachmentIDs []string        `json:"attachment_ids,omitempty" binding:"omitempty,max=10"`
}

// TransferRequest represents the request body for a transfer between accounts.
type TransferRequest struct {
	FromAccountID string          `json:"from_account_id" binding:"required,uuid"`
	ToAccountID   string          `json:"to_account_id" binding:"required,uuid"`
	Amount        decimal.Decimal `json:"amount" binding:"required,gt=0"`
	Date          *string         `json:"date,omitempty" binding:"omitempty,datetime=2006-01-02"`
	Description   string          `json:"description" binding:"max=255"`
}

// TransactionResponse represents a single transaction in API responses.
type TransactionResponse struct {
	ID                   string    `json:"id"`
	AccountID            string    `json:"account_id"`
	Type                 string    `json:"type"`
	Amount               string    `json:"amount"`
	Date                 string    `json:"date"`
	Description          string    `json:"description"`
	Notes                string    `json:"notes,omitempty"`
	CategoryID           *string   `json:"category_id,omitempty"`
	SubcategoryID        *string   `json:"subcategory_id,omitempty"`
	DebtID               *string   `json:"debt_id,omitempty"`
	LoanID               *string   `json:"loan_id,omitempty"`
	GoalID               *string   `json:"goal_id,omitempty"`
	RecurringExpenseID   *string   `json:"recurring_expense_id,omitempty"`
	CounterpartAccountID *string   `json:"counterpart_account_id,omitempty"`
	AttachmentIDs        []string  `json:"attachment_ids,omitempty"`
	CreatedAt            time.Time `json:"created_at"`
}

// PostedTransactionResponse is a recorded transaction with the resulting account balance.
type PostedTransactionResponse struct {
	Transaction    TransactionResponse `json:"transaction"`
	AccountBalance string              `json:"account_balance"`
}

// TransferResponse represents the response of a transfer.
type TransferResponse struct {
	Transaction TransactionResponse `json:"transaction"`
	FromBalance string              `json:"from_balance"`
	ToBalance   string              `json:"to_balance"`
}

// DeleteTransactionResponse represents the response of a transaction deletion.
type DeleteTransactionResponse struct {
	DeletedID     string   `json:"deleted_id"`
	AttachmentIDs []string `json:"attachment_ids,omitempty"`
}

// TransactionListResponse represents the response for listing transactions.
type TransactionListResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	Pagination   PaginationResponse    `json:"pagination"`
}

// ToTransactionResponse converts a domain Transaction entity to a TransactionResponse DTO.
func ToTransactionResponse(t *entity.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:                   t.ID.String(),
		AccountID:            t.AccountID.String(),
		Type:                 string(t.Type),
		Amount:               money(t.Amount),
		Date:                 formatDate(t.TransactionDate),
		Description:          t.Description,
		Notes:                t.Notes,
		CategoryID:           optionalID(t.CategoryID),
		SubcategoryID:        optionalID(t.SubcategoryID),
		DebtID:               optionalID(t.DebtID),
		LoanID:               optionalID(t.LoanID),
		GoalID:               optionalID(t.GoalID),
		RecurringExpenseID:   optionalID(t.RecurringExpenseID),
		CounterpartAccountID: optionalID(t.CounterpartAccountID),
		AttachmentIDs:        t.AttachmentIDs,
		CreatedAt:            t.CreatedAt,
	}
}

// ToPostedTransactionResponse converts a transaction and the balance it left behind.
func ToPostedTransactionResponse(t *entity.Transaction, balance decimal.Decimal) PostedTransactionResponse {
	return PostedTransactionResponse{
		Transaction:    ToTransactionResponse(t),
		AccountBalance: money(balance),
	}
}

// ToTransferResponse converts a transfer output.
func ToTransferResponse(output *transaction.TransferOutput) TransferResponse {
	return TransferResponse{
		Transaction: ToTransactionResponse(output.Transaction),
		FromBalance: money(output.FromBalance),
		ToBalance:   money(output.ToBalance),
	}
}

// ToTransactionListResponse converts a ListTransactionsOutput to a TransactionListResponse DTO.
func ToTransactionListResponse(output *transaction.ListTransactionsOutput) TransactionListResponse {
	response := TransactionListResponse{
		Transactions: make([]TransactionResponse, len(output.Transactions)),
		Pagination: PaginationResponse{
			Page:       output.Pagination.Page,
			Limit:      output.Pagination.Limit,
			Total:      output.Pagination.Total,
			TotalPages: output.Pagination.TotalPages,
		},
	}
	for i, t := range output.Transactions {
		response.Transactions[i] = ToTransactionResponse(t)
	}
	return response
}
