package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-tracker/ledger/internal/domain/entity"
	"github.com/finance-tracker/ledger/internal/domain/valueobject"
)

// RecurringExpenseModel represents the recurring_expenses table in the database.
type RecurringExpenseModel struct {
	ID             uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID         uuid.UUID       `gorm:"type:uuid;not null;index"`
	AccountID      uuid.UUID       `gorm:"type:uuid;not null;index"`
	CategoryID     *uuid.UUID      `gorm:"type:uuid"`
	Name           string          `gorm:"type:varchar(100);not null"`
	Amount         decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Frequency      string          `gorm:"type:varchar(10);not null"`
	ChargeDay      int             `gorm:"not null"`
	NextChargeDate time.Time       `gorm:"type:date;not null;index"`
	LastChargeDate *time.Time      `gorm:"type:date"`
	Status         string          `gorm:"type:varchar(10);not null;index"`
	CreatedAt      time.Time       `gorm:"not null"`
	UpdatedAt      time.Time       `gorm:"not null"`
}

// TableName returns the table name for the RecurringExpenseModel.
func (RecurringExpenseModel) TableName() string {
	return "recurring_expenses"
}

// ToEntity converts a RecurringExpenseModel to a domain RecurringExpense entity.
func (m *RecurringExpenseModel) ToEntity() *entity.RecurringExpense {
	return &entity.RecurringExpense{
		ID:             m.ID,
		UserID:         m.UserID,
		AccountID:      m.AccountID,
		CategoryID:     m.CategoryID,
		Name:           m.Name,
		Amount:         m.Amount,
		Frequency:      valueobject.Frequency(m.Frequency),
		ChargeDay:      m.ChargeDay,
		NextChargeDate: m.NextChargeDate,
		LastChargeDate: m.LastChargeDate,
		Status:         entity.RecurringStatus(m.Status),
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}

// RecurringExpenseFromEntity creates a RecurringExpenseModel from a domain RecurringExpense entity.
func RecurringExpenseFromEntity(expense *entity.RecurringExpense) *RecurringExpenseModel {
	return &RecurringExpenseModel{
		ID:             expense.ID,
		UserID:         expense.UserID,
		AccountID:      expense.AccountID,
		CategoryID:     expense.CategoryID,
		Name:           expense.Name,
		Amount:         expense.Amount,
		Frequency:      string(expense.Frequency),
		ChargeDay:      expense.ChargeDay,
		NextChargeDate: expense.NextChargeDate,
		LastChargeDate: expense.LastChargeDate,
		Status:         string(expense.Status),
		CreatedAt:      expense.CreatedAt,
		UpdatedAt:      expense.UpdatedAt,
	}
}
