package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-tracker/ledger/internal/domain/valueobject"
)

// RecurringStatus represents the lifecycle state of a recurring expense.
type RecurringStatus string

const (
	RecurringStatusActive    RecurringStatus = "active"
	RecurringStatusPaused    RecurringStatus = "paused"
	RecurringStatusCancelled RecurringStatus = "cancelled"
)

// IsValid checks if the status is known.
func (s RecurringStatus) IsValid() bool {
	switch s {
	case RecurringStatusActive, RecurringStatusPaused, RecurringStatusCancelled:
		return true
	}
	return false
}

// RecurringExpense is a charge that repeats on a fixed schedule.
type RecurringExpense struct {
	ID             uuid.UUID
	UserID         uuid.UUID
	AccountID      uuid.UUID
	CategoryID     *uuid.UUID
	Name           string
	Amount         decimal.Decimal
	Frequency      valueobject.Frequency
	ChargeDay      int
	NextChargeDate time.Time
	LastChargeDate *time.Time
	Status         RecurringStatus
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// NewRecurringExpense creates an active recurring expense. The caller validates the
// charge day and passes the next charge date computed from it.
func NewRecurringExpense(
	userID, accountID uuid.UUID,
	categoryID *uuid.UUID,
	name string,
	amount decimal.Decimal,
	frequency valueobject.Frequency,
	chargeDay int,
	nextChargeDate time.Time,
) *RecurringExpense {
	now := time.Now().UTC()

	return &RecurringExpense{
		ID:             uuid.New(),
		UserID:         userID,
		AccountID:      accountID,
		CategoryID:     categoryID,
		Name:           name,
		Amount:         amount,
		Frequency:      frequency,
		ChargeDay:      chargeDay,
		NextChargeDate: TruncateToDay(nextChargeDate),
		Status:         RecurringStatusActive,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

// CanTransitionTo reports whether the status may move to next.
// Active and paused are interchangeable; cancelled is terminal.
func (r *RecurringExpense) CanTransitionTo(next RecurringStatus) bool {
	if r.Status == RecurringStatusCancelled {
		return false
	}
	switch next {
	case RecurringStatusActive:
		return r.Status == RecurringStatusPaused
	case RecurringStatusPaused:
		return r.Status == RecurringStatusActive
	case RecurringStatusCancelled:
		return true
	}
	return false
}

// SetStatus applies a transition previously checked with CanTransitionTo. Resuming
// reschedules the next charge from asOf so that missed periods are not charged.
func (r *RecurringExpense) SetStatus(next RecurringStatus, asOf time.Time) error {
	if next == RecurringStatusActive && r.Status == RecurringStatusPaused {
		nextDate, err := valueobject.NextChargeDate(r.Frequency, r.ChargeDay, asOf)
		if err != nil {
			return err
		}
		r.NextChargeDate = nextDate
	}
	r.Status = next
	r.UpdatedAt = time.Now().UTC()
	return nil
}

// IsDue reports whether an active expense should be charged at asOf.
func (r *RecurringExpense) IsDue(asOf time.Time) bool {
	return r.Status == RecurringStatusActive && !r.NextChargeDate.After(TruncateToDay(asOf))
}

// MarkCharged records a charge for the current period and advances the schedule past it.
func (r *RecurringExpense) MarkCharged() error {
	charged := r.NextChargeDate
	nextDate, err := valueobject.NextChargeDate(r.Frequency, r.ChargeDay, charged)
	if err != nil {
		return err
	}
	r.LastChargeDate = &charged
	r.NextChargeDate = nextDate
	r.UpdatedAt = time.Now().UTC()
	return nil
}
