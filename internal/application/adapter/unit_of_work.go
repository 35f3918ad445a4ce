package adapter

import "context"

// Repositories is the set of repositories bound to one unit of work.
type Repositories struct {
	Accounts          AccountRepository
	Transactions      TransactionRepository
	Debts             DebtRepository
	Loans             LoanRepository
	Goals             GoalRepository
	RecurringExpenses RecurringExpenseRepository
	PendingPayments   PendingPaymentRepository
	Categories        CategoryRepository
}

// UnitOfWork runs fn inside a single database transaction. Every write fn performs through
// repos commits together; any error returned by fn rolls all of them back.
type UnitOfWork interface {
	Do(ctx context.Context, fn func(ctx context.Context, repos Repositories) error) error
}
