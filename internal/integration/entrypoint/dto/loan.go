package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/finance-tracker/ledger/internal/application/usecase/loan"
	"github.com/finance-tracker/ledger/internal/domain/entity"
)

// CreateLoanRequest represents the request body for loan creation.
type CreateLoanRequest struct {
	Name           string          `json:"name" binding:"required,max=100"`
	Borrower       string          `json:"borrower" binding:"max=100"`
	OriginalAmount decimal.Decimal `json:"original_amount" binding:"required,gt=0"`
	InterestRate   decimal.Decimal `json:"interest_rate" binding:"gte=0"`
	StartDate      *string         `json:"start_date,omitempty" binding:"omitempty,datetime=2006-01-02"`
	DueDate        *string         `json:"due_date,omitempty" binding:"omitempty,datetime=2006-01-02"`
	Notes          string          `json:"notes,omitempty" binding:"omitempty,max=1000"`
}

// LoanResponse represents a single loan in API responses.
type LoanResponse struct {
	ID              string                  `json:"id"`
	Name            string                  `json:"name"`
	Borrower        string                  `json:"borrower,omitempty"`
	OriginalAmount  string                  `json:"original_amount"`
	RemainingAmount string                  `json:"remaining_amount"`
	InterestRate    string                  `json:"interest_rate"`
	StartDate       string                  `json:"start_date"`
	DueDate         *string                 `json:"due_date,omitempty"`
	Status          string                  `json:"status"`
	Notes           string                  `json:"notes,omitempty"`
	Payments        *PaymentSummaryResponse `json:"payments,omitempty"`
	CreatedAt       time.Time               `json:"created_at"`
	UpdatedAt       time.Time               `json:"updated_at"`
}

// LoanListResponse represents the response for listing loans.
type LoanListResponse struct {
	Loans []LoanResponse `json:"loans"`
}

// LoanPaymentResponse represents the response of a received loan payment.
type LoanPaymentResponse struct {
	Loan              LoanResponse        `json:"loan"`
	Transaction       TransactionResponse `json:"transaction"`
	AppliedAmount     string              `json:"applied_amount"`
	OverpaymentAmount string              `json:"overpayment_amount"`
	AccountBalance    string              `json:"account_balance"`
}

// ToLoanResponse converts a domain Loan entity to a LoanResponse DTO.
func ToLoanResponse(l *entity.Loan) LoanResponse {
	return LoanResponse{
		ID:              l.ID.String(),
		Name:            l.Name,
		Borrower:        l.Borrower,
		OriginalAmount:  money(l.OriginalAmount),
		RemainingAmount: money(l.RemainingAmount),
		InterestRate:    l.InterestRate.String(),
		StartDate:       formatDate(l.StartDate),
		DueDate:         formatOptionalDate(l.DueDate),
		Status:          string(l.Status),
		Notes:           l.Notes,
		CreatedAt:       l.CreatedAt,
		UpdatedAt:       l.UpdatedAt,
	}
}

// ToLoanDetailsResponse converts a loan read model.
func ToLoanDetailsResponse(details *entity.LoanDetails) LoanResponse {
	response := ToLoanResponse(details.Loan)
	payments := toPaymentSummaryResponse(details.Payments)
	response.Payments = &payments
	return response
}

// ToLoanListResponse converts a list of loan read models.
func ToLoanListResponse(loans []*entity.LoanDetails) LoanListResponse {
	response := LoanListResponse{
		Loans: make([]LoanResponse, len(loans)),
	}
	for i, l := range loans {
		response.Loans[i] = ToLoanDetailsResponse(l)
	}
	return response
}

// ToLoanPaymentResponse converts a PayLoanOutput.
func ToLoanPaymentResponse(output *loan.PayLoanOutput) LoanPaymentResponse {
	return LoanPaymentResponse{
		Loan:              ToLoanResponse(output.Loan),
		Transaction:       ToTransactionResponse(output.Transaction),
		AppliedAmount:     money(output.AppliedAmount),
		OverpaymentAmount: money(output.OverpaymentAmount),
		AccountBalance:    money(output.AccountBalance),
	}
}
