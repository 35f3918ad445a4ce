package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-tracker/ledger/internal/domain/entity"
)

// LoanModel represents the loans table in the database.
type LoanModel struct {
	ID              uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID          uuid.UUID       `gorm:"type:uuid;not null;index"`
	Name            string          `gorm:"type:varchar(100);not null"`
	Borrower        string          `gorm:"type:varchar(100)"`
	OriginalAmount  decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	RemainingAmount decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	InterestRate    decimal.Decimal `gorm:"type:decimal(7,4);not null;default:0"`
	StartDate       time.Time       `gorm:"type:date;not null"`
	DueDate         *time.Time      `gorm:"type:date;index"`
	Status          string          `gorm:"type:varchar(10);not null;index"`
	Notes           string          `gorm:"type:text"`
	CreatedAt       time.Time       `gorm:"not null"`
	UpdatedAt       time.Time       `gorm:"not null"`
}

// TableName returns the table name for the LoanModel.
func (LoanModel) TableName() string {
	return "loans"
}

// ToEntity converts a LoanModel to a domain Loan entity.
func (m *LoanModel) ToEntity() *entity.Loan {
	return &entity.Loan{
		ID:              m.ID,
		UserID:          m.UserID,
		Name:            m.Name,
		Borrower:        m.Borrower,
		OriginalAmount:  m.OriginalAmount,
		RemainingAmount: m.RemainingAmount,
		InterestRate:    m.InterestRate,
		StartDate:       m.StartDate,
		DueDate:         m.DueDate,
		Status:          entity.LoanStatus(m.Status),
		Notes:           m.Notes,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}

// LoanFromEntity creates a LoanModel from a domain Loan entity.
func LoanFromEntity(loan *entity.Loan) *LoanModel {
	return &LoanModel{
		ID:              loan.ID,
		UserID:          loan.UserID,
		Name:            loan.Name,
		Borrower:        loan.Borrower,
		OriginalAmount:  loan.OriginalAmount,
		RemainingAmount: loan.RemainingAmount,
		InterestRate:    loan.InterestRate,
		StartDate:       loan.StartDate,
		DueDate:         loan.DueDate,
		Status:          string(loan.Status),
		Notes:           loan.Notes,
		CreatedAt:       loan.CreatedAt,
		UpdatedAt:       loan.UpdatedAt,
	}
}
