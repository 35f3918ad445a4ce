package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PendingPaymentStatus represents the settlement state of a pending payment.
type PendingPaymentStatus string

const (
	PendingPaymentStatusPending   PendingPaymentStatus = "pending"
	PendingPaymentStatusOverdue   PendingPaymentStatus = "overdue"
	PendingPaymentStatusPaid      PendingPaymentStatus = "paid"
	PendingPaymentStatusCancelled PendingPaymentStatus = "cancelled"
)

// Priority ranks pending payments.
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// IsValid checks if the priority is known.
func (p Priority) IsValid() bool {
	return p == PriorityHigh || p == PriorityMedium || p == PriorityLow
}

// PendingPayment is an obligation that has not been settled into the ledger yet.
// Status only moves forward: pending to overdue, and either of them to paid or cancelled.
type PendingPayment struct {
	ID             uuid.UUID
	UserID         uuid.UUID
	Description    string
	Amount         decimal.Decimal
	DueDate        *time.Time
	Priority       Priority
	Status         PendingPaymentStatus
	DebtID         *uuid.UUID
	LoanID         *uuid.UUID
	TransactionID  *uuid.UUID
	PaidDate       *time.Time
	ReminderEmail  string
	ReminderSentAt *time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// NewPendingPayment creates a pending payment whose status is evaluated at asOf.
func NewPendingPayment(
	userID uuid.UUID,
	description string,
	amount decimal.Decimal,
	dueDate *time.Time,
	priority Priority,
	debtID, loanID *uuid.UUID,
	reminderEmail string,
	asOf time.Time,
) *PendingPayment {
	now := time.Now().UTC()

	p := &PendingPayment{
		ID:            uuid.New(),
		UserID:        userID,
		Description:   description,
		Amount:        amount,
		DueDate:       truncateOptionalDay(dueDate),
		Priority:      priority,
		Status:        PendingPaymentStatusPending,
		DebtID:        debtID,
		LoanID:        loanID,
		ReminderEmail: reminderEmail,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	p.RefreshStatus(asOf)
	return p
}

// IsOpen reports whether the payment still awaits settlement.
func (p *PendingPayment) IsOpen() bool {
	return p.Status == PendingPaymentStatusPending || p.Status == PendingPaymentStatusOverdue
}

// EffectiveStatus returns the status as seen at asOf without modifying the payment.
func (p *PendingPayment) EffectiveStatus(asOf time.Time) PendingPaymentStatus {
	if p.Status == PendingPaymentStatusPending && IsPastDue(p.DueDate, asOf) {
		return PendingPaymentStatusOverdue
	}
	return p.Status
}

// RefreshStatus moves a pending payment to overdue once its due date has passed and
// reports whether the status changed.
func (p *PendingPayment) RefreshStatus(asOf time.Time) bool {
	status := p.EffectiveStatus(asOf)
	if status == p.Status {
		return false
	}
	p.Status = status
	p.UpdatedAt = time.Now().UTC()
	return true
}

// MarkPaid records the settling transaction.
func (p *PendingPayment) MarkPaid(transactionID uuid.UUID, paidAt time.Time) {
	at := paidAt.UTC()
	p.Status = PendingPaymentStatusPaid
	p.PaidDate = &at
	p.TransactionID = &transactionID
	p.UpdatedAt = time.Now().UTC()
}

// Cancel closes an open payment without settling it.
func (p *PendingPayment) Cancel() {
	p.Status = PendingPaymentStatusCancelled
	p.UpdatedAt = time.Now().UTC()
}

// NeedsReminder reports whether an overdue reminder should still be sent.
func (p *PendingPayment) NeedsReminder() bool {
	return p.Status == PendingPaymentStatusOverdue && p.ReminderEmail != "" && p.ReminderSentAt == nil
}

// MarkReminded stamps the reminder as sent.
func (p *PendingPayment) MarkReminded(at time.Time) {
	sent := at.UTC()
	p.ReminderSentAt = &sent
	p.UpdatedAt = time.Now().UTC()
}
