package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-tracker/ledger/internal/domain/valueobject"
)

// LoanStatus represents the collection state of a loan.
type LoanStatus string

const (
	LoanStatusActive  LoanStatus = "active"
	LoanStatusOverdue LoanStatus = "overdue"
	LoanStatusPartial LoanStatus = "partial"
	LoanStatusPaid    LoanStatus = "paid"
)

// Loan is money owed to the user. RemainingAmount tracks what has not been received yet.
type Loan struct {
	ID              uuid.UUID
	UserID          uuid.UUID
	Name            string
	Borrower        string
	OriginalAmount  decimal.Decimal
	RemainingAmount decimal.Decimal
	InterestRate    decimal.Decimal
	StartDate       time.Time
	DueDate         *time.Time
	Status          LoanStatus
	Notes           string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// NewLoan creates a loan with nothing received yet.
func NewLoan(
	userID uuid.UUID,
	name, borrower string,
	originalAmount, interestRate decimal.Decimal,
	startDate time.Time,
	dueDate *time.Time,
	notes string,
	asOf time.Time,
) *Loan {
	now := time.Now().UTC()

	l := &Loan{
		ID:              uuid.New(),
		UserID:          userID,
		Name:            name,
		Borrower:        borrower,
		OriginalAmount:  originalAmount,
		RemainingAmount: originalAmount,
		InterestRate:    interestRate,
		StartDate:       TruncateToDay(startDate),
		DueDate:         truncateOptionalDay(dueDate),
		Notes:           notes,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	l.Status = LoanStatusFor(l.OriginalAmount, l.RemainingAmount, l.DueDate, asOf)
	return l
}

// LoanStatusFor derives the status of a loan. Overdue takes precedence over partial.
func LoanStatusFor(original, remaining decimal.Decimal, dueDate *time.Time, asOf time.Time) LoanStatus {
	switch {
	case !remaining.IsPositive():
		return LoanStatusPaid
	case IsPastDue(dueDate, asOf):
		return LoanStatusOverdue
	case remaining.LessThan(original):
		return LoanStatusPartial
	default:
		return LoanStatusActive
	}
}

// IsPaid reports whether the loan has been fully received.
func (l *Loan) IsPaid() bool {
	return !l.RemainingAmount.IsPositive()
}

// ApplyPayment caps amount at the remaining amount and records the applied part.
func (l *Loan) ApplyPayment(amount decimal.Decimal, receivedOn time.Time) valueobject.PaymentAllocation {
	allocation := valueobject.AllocatePayment(amount, l.RemainingAmount)
	l.RemainingAmount = valueobject.ClampNonNegative(l.RemainingAmount.Sub(allocation.Applied))
	l.Status = LoanStatusFor(l.OriginalAmount, l.RemainingAmount, l.DueDate, receivedOn)
	l.UpdatedAt = time.Now().UTC()
	return allocation
}

// RevertPayment restores a previously applied amount.
func (l *Loan) RevertPayment(amount decimal.Decimal, asOf time.Time) {
	l.RemainingAmount = decimal.Min(l.RemainingAmount.Add(amount), l.OriginalAmount)
	l.Status = LoanStatusFor(l.OriginalAmount, l.RemainingAmount, l.DueDate, asOf)
	l.UpdatedAt = time.Now().UTC()
}

// RefreshStatus re-evaluates the status at asOf and reports whether it changed.
func (l *Loan) RefreshStatus(asOf time.Time) bool {
	status := LoanStatusFor(l.OriginalAmount, l.RemainingAmount, l.DueDate, asOf)
	if status == l.Status {
		return false
	}
	l.Status = status
	l.UpdatedAt = time.Now().UTC()
	return true
}

// LoanDetails is a loan together with figures derived from the ledger.
type LoanDetails struct {
	Loan            *Loan
	Payments        PaymentSummary
	LedgerRemaining decimal.Decimal
}
