package persistence

import (
	"context"

	"gorm.io/gorm"

	"github.com/finance-tracker/ledger/internal/application/adapter"
)

// unitOfWork implements adapter.UnitOfWork on top of gorm transactions.
type unitOfWork struct {
	db *gorm.DB
}

// NewUnitOfWork creates a unit of work bound to db.
func NewUnitOfWork(db *gorm.DB) adapter.UnitOfWork {
	return &unitOfWork{db: db}
}

// Do runs fn with repositories bound to a single database transaction.
// The transaction commits if fn returns nil and rolls back otherwise.
func (u *unitOfWork) Do(ctx context.Context, fn func(ctx context.Context, repos adapter.Repositories) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(ctx, NewRepositories(tx))
	})
}

// NewRepositories builds the full repository set on db.
func NewRepositories(db *gorm.DB) adapter.Repositories {
	return adapter.Repositories{
		Accounts:          NewAccountRepository(db),
		Transactions:      NewTransactionRepository(db),
		Debts:             NewDebtRepository(db),
		Loans:             NewLoanRepository(db),
		Goals:             NewGoalRepository(db),
		RecurringExpenses: NewRecurringExpenseRepository(db),
		PendingPayments:   NewPendingPaymentRepository(db),
		Categories:        NewCategoryRepository(db),
	}
}
