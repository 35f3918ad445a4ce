package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-tracker/ledger/internal/domain/entity"
)

// PendingPaymentModel represents the pending_payments table in the database.
type PendingPaymentModel struct {
	ID             uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID         uuid.UUID       `gorm:"type:uuid;not null;index"`
	Description    string          `gorm:"type:varchar(255);not null"`
	Amount         decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	DueDate        *time.Time      `gorm:"type:date;index"`
	Priority       string          `gorm:"type:varchar(10);not null"`
	Status         string          `gorm:"type:varchar(10);not null;index"`
	DebtID         *uuid.UUID      `gorm:"type:uuid;index"`
	LoanID         *uuid.UUID      `gorm:"type:uuid;index"`
	TransactionID  *uuid.UUID      `gorm:"type:uuid"`
	PaidDate       *time.Time      `gorm:"type:timestamp"`
	ReminderEmail  string          `gorm:"type:varchar(255)"`
	ReminderSentAt *time.Time      `gorm:"type:timestamp"`
	CreatedAt      time.Time       `gorm:"not null"`
	UpdatedAt      time.Time       `gorm:"not null"`
}

// TableName returns the table name for the PendingPaymentModel.
func (PendingPaymentModel) TableName() string {
	return "pending_payments"
}

// ToEntity converts a PendingPaymentModel to a domain PendingPayment entity.
func (m *PendingPaymentModel) ToEntity() *entity.PendingPayment {
	return &entity.PendingPayment{
		ID:             m.ID,
		UserID:         m.UserID,
		Description:    m.Description,
		Amount:         m.Amount,
		DueDate:        m.DueDate,
		Priority:       entity.Priority(m.Priority),
		Status:         entity.PendingPaymentStatus(m.Status),
		DebtID:         m.DebtID,
		LoanID:         m.LoanID,
		TransactionID:  m.TransactionID,
		PaidDate:       m.PaidDate,
		ReminderEmail:  m.ReminderEmail,
		ReminderSentAt: m.ReminderSentAt,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}

// PendingPaymentFromEntity creates a PendingPaymentModel from a domain PendingPayment entity.
func PendingPaymentFromEntity(payment *entity.PendingPayment) *PendingPaymentModel {
	return &PendingPaymentModel{
		ID:             payment.ID,
		UserID:         payment.UserID,
		Description:    payment.Description,
		Amount:         payment.Amount,
		DueDate:        payment.DueDate,
		Priority:       string(payment.Priority),
		Status:         string(payment.Status),
		DebtID:         payment.DebtID,
		LoanID:         payment.LoanID,
		TransactionID:  payment.TransactionID,
		PaidDate:       payment.PaidDate,
		ReminderEmail:  payment.ReminderEmail,
		ReminderSentAt: payment.ReminderSentAt,
		CreatedAt:      payment.CreatedAt,
		UpdatedAt:      payment.UpdatedAt,
	}
}
