package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/finance-tracker/ledger/internal/application/usecase/debt"
	"github.com/finance-tracker/ledger/internal/domain/entity"
)

// CreateDebtRequest represents the request body for debt creation.
type CreateDebtRequest struct {
	Name             string          `json:"name" binding:"required,max=100"`
	Creditor         string          `json:"creditor" binding:"max=100"`
	OriginalAmount   decimal.Decimal `json:"original_amount" binding:"required,gt=0"`
	InterestRate     decimal.Decimal `json:"interest_rate" binding:"gte=0"`
	StartDate        *string         `json:"start_date,omitempty" binding:"omitempty,datetime=2006-01-02"`
	DueDate          *string         `json:"due_date,omitempty" binding:"omitempty,datetime=2006-01-02"`
	Notes            string          `json:"notes,omitempty" binding:"omitempty,max=1000"`
	InstallmentCount *int            `json:"installment_count,omitempty" binding:"omitempty,min=1,max=360"`
}

// PaymentRequest represents the request body for a debt or loan payment.
type PaymentRequest struct {
	AccountID string          `json:"account_id" binding:"required,uuid"`
	Amount    decimal.Decimal `json:"amount" binding:"required,gt=0"`
	Date      *string         `json:"date,omitempty" binding:"omitempty,datetime=2006-01-02"`
}

// PaymentSummaryResponse aggregates the ledger payments of a debt or loan.
type PaymentSummaryResponse struct {
	Total           string  `json:"total"`
	Count           int     `json:"count"`
	LastPaymentDate *string `json:"last_payment_date,omitempty"`
}

// InstallmentSummaryResponse summarizes the installment plan of a debt.
type InstallmentSummaryResponse struct {
	Total       int     `json:"total"`
	Paid        int     `json:"paid"`
	NextNumber  *int    `json:"next_number,omitempty"`
	NextDueDate *string `json:"next_due_date,omitempty"`
	NextAmount  string  `json:"next_amount"`
}

// DebtResponse represents a single debt in API responses.
type DebtResponse struct {
	ID              string                      `json:"id"`
	Name            string                      `json:"name"`
	Creditor        string                      `json:"creditor,omitempty"`
	OriginalAmount  string                      `json:"original_amount"`
	RemainingAmount string                      `json:"remaining_amount"`
	InterestRate    string                      `json:"interest_rate"`
	StartDate       string                      `json:"start_date"`
	DueDate         *string                     `json:"due_date,omitempty"`
	Status          string                      `json:"status"`
	Notes           string                      `json:"notes,omitempty"`
	Payments        *PaymentSummaryResponse     `json:"payments,omitempty"`
	Installments    *InstallmentSummaryResponse `json:"installments,omitempty"`
	CreatedAt       time.Time                   `json:"created_at"`
	UpdatedAt       time.Time                   `json:"updated_at"`
}

// DebtListResponse represents the response for listing debts.
type DebtListResponse struct {
	Debts []DebtResponse `json:"debts"`
}

// DebtPaymentResponse represents the response of a debt payment.
type DebtPaymentResponse struct {
	Debt              DebtResponse        `json:"debt"`
	Transaction       TransactionResponse `json:"transaction"`
	AppliedAmount     string              `json:"applied_amount"`
	OverpaymentAmount string              `json:"overpayment_amount"`
	AccountBalance    string              `json:"account_balance"`
}

// ToDebtResponse converts a domain Debt entity to a DebtResponse DTO.
func ToDebtResponse(d *entity.Debt) DebtResponse {
	return DebtResponse{
		ID:              d.ID.String(),
		Name:            d.Name,
		Creditor:        d.Creditor,
		OriginalAmount:  money(d.OriginalAmount),
		RemainingAmount: money(d.RemainingAmount),
		InterestRate:    d.InterestRate.String(),
		StartDate:       formatDate(d.StartDate),
		DueDate:         formatOptionalDate(d.DueDate),
		Status:          string(d.Status),
		Notes:           d.Notes,
		CreatedAt:       d.CreatedAt,
		UpdatedAt:       d.UpdatedAt,
	}
}

// ToDebtDetailsResponse converts a debt read model.
func ToDebtDetailsResponse(details *entity.DebtDetails) DebtResponse {
	response := ToDebtResponse(details.Debt)
	payments := toPaymentSummaryResponse(details.Payments)
	response.Payments = &payments

	if s := details.Installments; s != nil {
		response.Installments = &InstallmentSummaryResponse{
			Total:       s.Total,
			Paid:        s.Paid,
			NextNumber:  s.NextNumber,
			NextDueDate: formatOptionalDate(s.NextDueDate),
			NextAmount:  money(s.NextAmount),
		}
	}
	return response
}

// ToDebtListResponse converts a list of debt read models.
func ToDebtListResponse(debts []*entity.DebtDetails) DebtListResponse {
	response := DebtListResponse{
		Debts: make([]DebtResponse, len(debts)),
	}
	for i, d := range debts {
		response.Debts[i] = ToDebtDetailsResponse(d)
	}
	return response
}

// ToDebtPaymentResponse converts a PayDebtOutput.
func ToDebtPaymentResponse(output *debt.PayDebtOutput) DebtPaymentResponse {
	return DebtPaymentResponse{
		Debt:              ToDebtResponse(output.Debt),
		Transaction:       ToTransactionResponse(output.Transaction),
		AppliedAmount:     money(output.AppliedAmount),
		OverpaymentAmount: money(output.OverpaymentAmount),
		AccountBalance:    money(output.AccountBalance),
	}
}

func toPaymentSummaryResponse(s entity.PaymentSummary) PaymentSummaryResponse {
	return PaymentSummaryResponse{
		Total:           money(s.Total),
		Count:           s.Count,
		LastPaymentDate: formatOptionalDate(s.LastDate),
	}
}
