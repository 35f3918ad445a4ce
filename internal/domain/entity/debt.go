package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-tracker/ledger/internal/domain/valueobject"
)

// DebtStatus represents the repayment state of a debt.
type DebtStatus string

const (
	DebtStatusActive  DebtStatus = "active"
	DebtStatusOverdue DebtStatus = "overdue"
	DebtStatusPaid    DebtStatus = "paid"
)

// Debt is money the user owes. RemainingAmount equals OriginalAmount minus the sum of
// applied payments and never drops below zero.
type Debt struct {
	ID              uuid.UUID
	UserID          uuid.UUID
	Name            string
	Creditor        string
	OriginalAmount  decimal.Decimal
	RemainingAmount decimal.Decimal
	InterestRate    decimal.Decimal
	StartDate       time.Time
	DueDate         *time.Time
	Status          DebtStatus
	HasInstallments bool
	Notes           string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// NewDebt creates a debt with nothing paid yet. The initial status is evaluated at asOf.
func NewDebt(
	userID uuid.UUID,
	name, creditor string,
	originalAmount, interestRate decimal.Decimal,
	startDate time.Time,
	dueDate *time.Time,
	notes string,
	asOf time.Time,
) *Debt {
	now := time.Now().UTC()

	d := &Debt{
		ID:              uuid.New(),
		UserID:          userID,
		Name:            name,
		Creditor:        creditor,
		OriginalAmount:  originalAmount,
		RemainingAmount: originalAmount,
		InterestRate:    interestRate,
		StartDate:       TruncateToDay(startDate),
		DueDate:         truncateOptionalDay(dueDate),
		Notes:           notes,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	d.Status = DebtStatusFor(d.RemainingAmount, d.DueDate, asOf)
	return d
}

// DebtStatusFor derives the status of a debt from what remains and its due date.
func DebtStatusFor(remaining decimal.Decimal, dueDate *time.Time, asOf time.Time) DebtStatus {
	switch {
	case !remaining.IsPositive():
		return DebtStatusPaid
	case IsPastDue(dueDate, asOf):
		return DebtStatusOverdue
	default:
		return DebtStatusActive
	}
}

// IsPaid reports whether nothing remains to be paid.
func (d *Debt) IsPaid() bool {
	return !d.RemainingAmount.IsPositive()
}

// ApplyPayment caps amount at the remaining amount, reduces the remaining amount by the
// applied part and re-evaluates the status at paidOn.
func (d *Debt) ApplyPayment(amount decimal.Decimal, paidOn time.Time) valueobject.PaymentAllocation {
	allocation := valueobject.AllocatePayment(amount, d.RemainingAmount)
	d.RemainingAmount = valueobject.ClampNonNegative(d.RemainingAmount.Sub(allocation.Applied))
	d.Status = DebtStatusFor(d.RemainingAmount, d.DueDate, paidOn)
	d.UpdatedAt = time.Now().UTC()
	return allocation
}

// RevertPayment restores a previously applied amount.
func (d *Debt) RevertPayment(amount decimal.Decimal, asOf time.Time) {
	d.RemainingAmount = decimal.Min(d.RemainingAmount.Add(amount), d.OriginalAmount)
	d.Status = DebtStatusFor(d.RemainingAmount, d.DueDate, asOf)
	d.UpdatedAt = time.Now().UTC()
}

// RefreshStatus re-evaluates the status at asOf and reports whether it changed.
func (d *Debt) RefreshStatus(asOf time.Time) bool {
	status := DebtStatusFor(d.RemainingAmount, d.DueDate, asOf)
	if status == d.Status {
		return false
	}
	d.Status = status
	d.UpdatedAt = time.Now().UTC()
	return true
}

// DebtDetails is a debt together with figures derived from the ledger.
type DebtDetails struct {
	Debt            *Debt
	Payments        PaymentSummary
	LedgerRemaining decimal.Decimal
	Installments    *InstallmentSummary
}

// IsPastDue reports whether dueDate lies before the day of asOf.
func IsPastDue(dueDate *time.Time, asOf time.Time) bool {
	if dueDate == nil {
		return false
	}
	return TruncateToDay(*dueDate).Before(TruncateToDay(asOf))
}

func truncateOptionalDay(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	day := TruncateToDay(*t)
	return &day
}
