package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/finance-tracker/ledger/internal/application/usecase/recurring"
	"github.com/finance-tracker/ledger/internal/domain/entity"
)

// CreateRecurringExpenseRequest represents the request body for recurring expense creation.
type CreateRecurringExpenseRequest struct {
	AccountID  string          `json:"account_id" binding:"required,uuid"`
	CategoryID *string         `json:"category_id,omitempty" binding:"omitempty,uuid"`
	Name       string          `json:"name" binding:"required,max=100"`
	Amount     decimal.Decimal `json:"amount" binding:"required,gt=0"`
	Frequency  string          `json:"frequency" binding:"required,frequency"`
	ChargeDay  int             `json:"charge_day" binding:"required"`
}

// UpdateRecurringStatusRequest represents the request body for a recurring expense status change.
type UpdateRecurringStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=active paused cancelled"`
}

// RecurringExpenseResponse represents a single recurring expense in API responses.
type RecurringExpenseResponse struct {
	ID             string    `json:"id"`
	AccountID      string    `json:"account_id"`
	CategoryID     *string   `json:"category_id,omitempty"`
	Name           string    `json:"name"`
	Amount         string    `json:"amount"`
	Frequency      string    `json:"frequency"`
	ChargeDay      int       `json:"charge_day"`
	NextChargeDate string    `json:"next_charge_date"`
	LastChargeDate *string   `json:"last_charge_date,omitempty"`
	Status         string    `json:"status"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// RecurringExpenseListResponse represents the response for listing recurring expenses.
type RecurringExpenseListResponse struct {
	RecurringExpenses []RecurringExpenseResponse `json:"recurring_expenses"`
}

// ChargeResponse represents the response of charging a recurring expense.
type ChargeResponse struct {
	RecurringExpense RecurringExpenseResponse `json:"recurring_expense"`
	Transaction      TransactionResponse      `json:"transaction"`
	AccountBalance   string                   `json:"account_balance"`
}

// ToRecurringExpenseResponse converts a domain RecurringExpense entity to its DTO.
func ToRecurringExpenseResponse(r *entity.RecurringExpense) RecurringExpenseResponse {
	return RecurringExpenseResponse{
		ID:             r.ID.String(),
		AccountID:      r.AccountID.String(),
		CategoryID:     optionalID(r.CategoryID),
		Name:           r.Name,
		Amount:         money(r.Amount),
		Frequency:      string(r.Frequency),
		ChargeDay:      r.ChargeDay,
		NextChargeDate: formatDate(r.NextChargeDate),
		LastChargeDate: formatOptionalDate(r.LastChargeDate),
		Status:         string(r.Status),
		CreatedAt:      r.CreatedAt,
		UpdatedAt:      r.UpdatedAt,
	}
}

// ToRecurringExpenseListResponse converts a list of recurring expenses.
func ToRecurringExpenseListResponse(expenses []*entity.RecurringExpense) RecurringExpenseListResponse {
	response := RecurringExpenseListResponse{
		RecurringExpenses: make([]RecurringExpenseResponse, len(expenses)),
	}
	for i, r := range expenses {
		response.RecurringExpenses[i] = ToRecurringExpenseResponse(r)
	}
	return response
}

// ToChargeResponse converts a ChargeRecurringExpenseOutput.
func ToChargeResponse(output *recurring.ChargeRecurringExpenseOutput) ChargeResponse {
	return ChargeResponse{
		RecurringExpense: ToRecurringExpenseResponse(output.RecurringExpense),
		Transaction:      ToTransactionResponse(output.Transaction),
		AccountBalance:   money(output.AccountBalance),
	}
}
