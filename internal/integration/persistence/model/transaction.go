package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/finance-tracker/ledger/internal/domain/entity"
)

// TransactionModel represents the transactions table in the database.
type TransactionModel struct {
	ID                   uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID               uuid.UUID       `gorm:"type:uuid;not null;index"`
	AccountID            uuid.UUID       `gorm:"type:uuid;not null;index"`
	Type                 string          `gorm:"type:varchar(20);not null;index"`
	Amount               decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	CategoryID           *uuid.UUID      `gorm:"type:uuid;index"`
	SubcategoryID        *uuid.UUID      `gorm:"type:uuid"`
	DebtID               *uuid.UUID      `gorm:"type:uuid;index"`
	LoanID               *uuid.UUID      `gorm:"type:uuid;index"`
	GoalID               *uuid.UUID      `gorm:"type:uuid;index"`
	PendingPaymentID     *uuid.UUID      `gorm:"type:uuid;index"`
	RecurringExpenseID   *uuid.UUID      `gorm:"type:uuid;index"`
	CounterpartAccountID *uuid.UUID      `gorm:"type:uuid;index"`
	TransactionDate      time.Time       `gorm:"type:date;not null;index"`
	Description          string          `gorm:"type:varchar(255)"`
	Notes                string          `gorm:"type:text"`
	AttachmentIDs        pq.StringArray  `gorm:"type:text"`
	CreatedAt            time.Time       `gorm:"not null"`
	DeletedAt            gorm.DeletedAt  `gorm:"index"`
}

// TableName returns the table name for the TransactionModel.
func (TransactionModel) TableName() string {
	return "transactions"
}

// ToEntity converts a TransactionModel to a domain Transaction entity.
func (m *TransactionModel) ToEntity() *entity.Transaction {
	var attachments []string
	if len(m.AttachmentIDs) > 0 {
		attachments = append(attachments, m.AttachmentIDs...)
	}

	return &entity.Transaction{
		ID:                   m.ID,
		UserID:               m.UserID,
		AccountID:            m.AccountID,
		Type:                 entity.TransactionType(m.Type),
		Amount:               m.Amount,
		CategoryID:           m.CategoryID,
		SubcategoryID:        m.SubcategoryID,
		DebtID:               m.DebtID,
		LoanID:               m.LoanID,
		GoalID:               m.GoalID,
		PendingPaymentID:     m.PendingPaymentID,
		RecurringExpenseID:   m.RecurringExpenseID,
		CounterpartAccountID: m.CounterpartAccountID,
		TransactionDate:      m.TransactionDate,
		Description:          m.Description,
		Notes:                m.Notes,
		AttachmentIDs:        attachments,
		CreatedAt:            m.CreatedAt,
	}
}

// TransactionFromEntity creates a TransactionModel from a domain Transaction entity.
func TransactionFromEntity(transaction *entity.Transaction) *TransactionModel {
	return &TransactionModel{
		ID:                   transaction.ID,
		UserID:               transaction.UserID,
		AccountID:            transaction.AccountID,
		Type:                 string(transaction.Type),
		Amount:               transaction.Amount,
		CategoryID:           transaction.CategoryID,
		SubcategoryID:        transaction.SubcategoryID,
		DebtID:               transaction.DebtID,
		LoanID:               transaction.LoanID,
		GoalID:               transaction.GoalID,
		PendingPaymentID:     transaction.PendingPaymentID,
		RecurringExpenseID:   transaction.RecurringExpenseID,
		CounterpartAccountID: transaction.CounterpartAccountID,
		TransactionDate:      transaction.TransactionDate,
		Description:          transaction.Description,
		Notes:                transaction.Notes,
		AttachmentIDs:        pq.StringArray(transaction.AttachmentIDs),
		CreatedAt:            transaction.CreatedAt,
	}
}
