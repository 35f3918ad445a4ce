package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/finance-tracker/ledger/internal/domain/entity"
)

// TransactionRepository defines the interface for ledger persistence operations.
type TransactionRepository interface {
	// Create appends a row to the ledger.
	Create(ctx context.Context, transaction *entity.Transaction) error

	// FindByID retrieves a ledger row owned by userID.
	FindByID(ctx context.Context, id, userID uuid.UUID) (*entity.Transaction, error)

	// Delete removes a ledger row.
	Delete(ctx context.Context, id uuid.UUID) error

	// List retrieves a user's ledger rows newest first, with the total match count.
	List(ctx context.Context, userID uuid.UUID, filter entity.TransactionFilter) ([]*entity.Transaction, int64, error)

	// SummarizeByDebt aggregates the rows that paid towards a debt.
	SummarizeByDebt(ctx context.Context, debtID uuid.UUID) (*entity.PaymentSummary, error)

	// SummarizeByLoan aggregates the rows that collected a loan.
	SummarizeByLoan(ctx context.Context, loanID uuid.UUID) (*entity.PaymentSummary, error)

	// SummarizeByGoal aggregates the contributions made to a goal.
	SummarizeByGoal(ctx context.Context, goalID uuid.UUID) (*entity.PaymentSummary, error)
}
