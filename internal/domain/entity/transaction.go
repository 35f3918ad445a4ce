// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionType represents the kind of money movement a ledger row records.
type TransactionType string

const (
	TransactionTypeIncome           TransactionType = "income"
	TransactionTypeExpense          TransactionType = "expense"
	TransactionTypeTransfer         TransactionType = "transfer"
	TransactionTypeDebtPayment      TransactionType = "debt_payment"
	TransactionTypeLoanPayment      TransactionType = "loan_payment"
	TransactionTypeGoalContribution TransactionType = "goal_contribution"
	TransactionTypePendingPayment   TransactionType = "pending_payment"
)

// IsValid checks if the transaction type is one of the ledger types.
func (t TransactionType) IsValid() bool {
	_, ok := balanceEffects[t]
	return ok
}

// IsDirect reports whether the type may be recorded without going through a subsystem operation.
func (t TransactionType) IsDirect() bool {
	return t == TransactionTypeIncome || t == TransactionTypeExpense
}

// Field limits.
const (
	MaxDescriptionLength = 255
	MaxNotesLength       = 1000
	MaxAttachments       = 10
)

// Transaction is an immutable ledger row. Amount is always positive; the sign applied to
// the account is derived from Type through BalanceEffectOf.
type Transaction struct {
	ID                   uuid.UUID
	UserID               uuid.UUID
	AccountID            uuid.UUID
	Type                 TransactionType
	Amount               decimal.Decimal
	CategoryID           *uuid.UUID
	SubcategoryID        *uuid.UUID
	DebtID               *uuid.UUID
	LoanID               *uuid.UUID
	GoalID               *uuid.UUID
	PendingPaymentID     *uuid.UUID
	RecurringExpenseID   *uuid.UUID
	CounterpartAccountID *uuid.UUID
	TransactionDate      time.Time
	Description          string
	Notes                string
	AttachmentIDs        []string
	CreatedAt            time.Time
}

// NewTransaction creates a new ledger row dated on the given day.
func NewTransaction(
	userID uuid.UUID,
	accountID uuid.UUID,
	transactionType TransactionType,
	amount decimal.Decimal,
	date time.Time,
	description string,
) *Transaction {
	return &Transaction{
		ID:              uuid.New(),
		UserID:          userID,
		AccountID:       accountID,
		Type:            transactionType,
		Amount:          amount,
		TransactionDate: TruncateToDay(date),
		Description:     description,
		CreatedAt:       time.Now().UTC(),
	}
}

// TransactionFilter defines filtering options for listing transactions.
type TransactionFilter struct {
	AccountID *uuid.UUID
	Types     []TransactionType
	StartDate *time.Time
	EndDate   *time.Time
	Page      int
	Limit     int
}

// PaymentSummary aggregates the ledger rows linked to a debt or loan.
type PaymentSummary struct {
	Total    decimal.Decimal
	Count    int
	LastDate *time.Time
}

// TruncateToDay returns the UTC midnight of t.
func TruncateToDay(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}
