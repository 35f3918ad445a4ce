package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/finance-tracker/ledger/internal/application/usecase/pendingpayment"
	"github.com/finance-tracker/ledger/internal/domain/entity"
)

// CreatePendingPaymentRequest represents the request body for pending payment creation.
type CreatePendingPaymentRequest struct {
	Description string          `json:"description" binding:"required,max=255"`
	Amount      decimal.Decimal `json:"amount" binding:"required,gt=0"`
	DueDate     *string         `json:"due_date,omitempty" binding:"omitempty,datetime=2006-01-02"`
	Priority    string          `json:"priority,omitempty" binding:"omitempty,priority"`
	DebtID      *string         `json:"debt_id,omitempty" binding:"omitempty,uuid"`
	LoanID      *string         `json:"loan_id,omitempty" binding:"omitempty,uuid"`
}

// MarkPaidRequest represents the request body for settling a pending payment.
type MarkPaidRequest struct {
	AccountID string `json:"account_id" binding:"required,uuid"`
}

// PendingPaymentResponse represents a single pending payment in API responses.
type PendingPaymentResponse struct {
	ID            string    `json:"id"`
	Description   string    `json:"description"`
	Amount        string    `json:"amount"`
	DueDate       *string   `json:"due_date,omitempty"`
	Priority      string    `json:"priority"`
	Status        string    `json:"status"`
	DebtID        *string   `json:"debt_id,omitempty"`
	LoanID        *string   `json:"loan_id,omitempty"`
	TransactionID *string   `json:"transaction_id,omitempty"`
	PaidDate      *string   `json:"paid_date,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// PendingPaymentListResponse represents the response for listing pending payments.
type PendingPaymentListResponse struct {
	PendingPayments []PendingPaymentResponse `json:"pending_payments"`
}

// MarkPaidResponse represents the response of settling a pending payment.
type MarkPaidResponse struct {
	PendingPayment PendingPaymentResponse `json:"pending_payment"`
	Transaction    TransactionResponse    `json:"transaction"`
	Debt           *DebtResponse          `json:"debt,omitempty"`
	Loan           *LoanResponse          `json:"loan,omitempty"`
	AccountBalance string                 `json:"account_balance"`
}

// ToPendingPaymentResponse converts a domain PendingPayment entity to its DTO.
func ToPendingPaymentResponse(p *entity.PendingPayment) PendingPaymentResponse {
	return PendingPaymentResponse{
		ID:            p.ID.String(),
		Description:   p.Description,
		Amount:        money(p.Amount),
		DueDate:       formatOptionalDate(p.DueDate),
		Priority:      string(p.Priority),
		Status:        string(p.Status),
		DebtID:        optionalID(p.DebtID),
		LoanID:        optionalID(p.LoanID),
		TransactionID: optionalID(p.TransactionID),
		PaidDate:      formatOptionalDate(p.PaidDate),
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}

// ToPendingPaymentListResponse converts a list of pending payments.
func ToPendingPaymentListResponse(payments []*entity.PendingPayment) PendingPaymentListResponse {
	response := PendingPaymentListResponse{
		PendingPayments: make([]PendingPaymentResponse, len(payments)),
	}
	for i, p := range payments {
		response.PendingPayments[i] = ToPendingPaymentResponse(p)
	}
	return response
}

// ToMarkPaidResponse converts a MarkPaidOutput.
func ToMarkPaidResponse(output *pendingpayment.MarkPaidOutput) MarkPaidResponse {
	response := MarkPaidResponse{
		PendingPayment: ToPendingPaymentResponse(output.PendingPayment),
		Transaction:    ToTransactionResponse(output.Transaction),
		AccountBalance: money(output.AccountBalance),
	}
	if output.Debt != nil {
		d := ToDebtResponse(output.Debt)
		response.Debt = &d
	}
	if output.Loan != nil {
		l := ToLoanResponse(output.Loan)
		response.Loan = &l
	}
	return response
}
