package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-tracker/ledger/internal/domain/entity"
)

// DebtModel represents the debts table in the database.
type DebtModel struct {
	ID              uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID          uuid.UUID       `gorm:"type:uuid;not null;index"`
	Name            string          `gorm:"type:varchar(100);not null"`
	Creditor        string          `gorm:"type:varchar(100)"`
	OriginalAmount  decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	RemainingAmount decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	InterestRate    decimal.Decimal `gorm:"type:decimal(7,4);not null;default:0"`
	StartDate       time.Time       `gorm:"type:date;not null"`
	DueDate         *time.Time      `gorm:"type:date;index"`
	Status          string          `gorm:"type:varchar(10);not null;index"`
	HasInstallments bool            `gorm:"not null;default:false"`
	Notes           string          `gorm:"type:text"`
	CreatedAt       time.Time       `gorm:"not null"`
	UpdatedAt       time.Time       `gorm:"not null"`

	Installments []DebtInstallmentModel `gorm:"foreignKey:DebtID;references:ID"`
}

// TableName returns the table name for the DebtModel.
func (DebtModel) TableName() string {
	return "debts"
}

// ToEntity converts a DebtModel to a domain Debt entity.
func (m *DebtModel) ToEntity() *entity.Debt {
	return &entity.Debt{
		ID:              m.ID,
		UserID:          m.UserID,
		Name:            m.Name,
		Creditor:        m.Creditor,
		OriginalAmount:  m.OriginalAmount,
		RemainingAmount: m.RemainingAmount,
		InterestRate:    m.InterestRate,
		StartDate:       m.StartDate,
		DueDate:         m.DueDate,
		Status:          entity.DebtStatus(m.Status),
		HasInstallments: m.HasInstallments,
		Notes:           m.Notes,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}

// DebtFromEntity creates a DebtModel from a domain Debt entity.
func DebtFromEntity(debt *entity.Debt) *DebtModel {
	return &DebtModel{
		ID:              debt.ID,
		UserID:          debt.UserID,
		Name:            debt.Name,
		Creditor:        debt.Creditor,
		OriginalAmount:  debt.OriginalAmount,
		RemainingAmount: debt.RemainingAmount,
		InterestRate:    debt.InterestRate,
		StartDate:       debt.StartDate,
		DueDate:         debt.DueDate,
		Status:          string(debt.Status),
		HasInstallments: debt.HasInstallments,
		Notes:           debt.Notes,
		CreatedAt:       debt.CreatedAt,
		UpdatedAt:       debt.UpdatedAt,
	}
}

// DebtInstallmentModel represents the debt_installments table in the database.
type DebtInstallmentModel struct {
	ID         uuid.UUID       `gorm:"type:uuid;primaryKey"`
	DebtID     uuid.UUID       `gorm:"type:uuid;not null;index"`
	Number     int             `gorm:"not null"`
	Amount     decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	PaidAmount decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0"`
	DueDate    time.Time       `gorm:"type:date;not null"`
	PaidAt     *time.Time      `gorm:"type:timestamp"`
}

// TableName returns the table name for the DebtInstallmentModel.
func (DebtInstallmentModel) TableName() string {
	return "debt_installments"
}

// ToEntity converts a DebtInstallmentModel to a domain DebtInstallment entity.
func (m *DebtInstallmentModel) ToEntity() *entity.DebtInstallment {
	return &entity.DebtInstallment{
		ID:         m.ID,
		DebtID:     m.DebtID,
		Number:     m.Number,
		Amount:     m.Amount,
		PaidAmount: m.PaidAmount,
		DueDate:    m.DueDate,
		PaidAt:     m.PaidAt,
	}
}

// DebtInstallmentFromEntity creates a DebtInstallmentModel from a domain DebtInstallment entity.
func DebtInstallmentFromEntity(installment *entity.DebtInstallment) *DebtInstallmentModel {
	return &DebtInstallmentModel{
		ID:         installment.ID,
		DebtID:     installment.DebtID,
		Number:     installment.Number,
		Amount:     installment.Amount,
		PaidAmount: installment.PaidAmount,
		DueDate:    installment.DueDate,
		PaidAt:     installment.PaidAt,
	}
}
