package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/finance-tracker/ledger/internal/domain/entity"
)

// DebtRepository defines the interface for debt persistence operations.
type DebtRepository interface {
	// Create saves a debt and its installments.
	Create(ctx context.Context, debt *entity.Debt, installments []*entity.DebtInstallment) error

	// FindByID retrieves a debt owned by userID.
	FindByID(ctx context.Context, id, userID uuid.UUID) (*entity.Debt, error)

	// FindByIDForUpdate retrieves a debt owned by userID and locks its row.
	FindByIDForUpdate(ctx context.Context, id, userID uuid.UUID) (*entity.Debt, error)

	// FindByUser retrieves all debts of a user.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Debt, error)

	// Update persists remaining amount and status changes.
	Update(ctx context.Context, debt *entity.Debt) error

	// FindInstallments retrieves the installments of a debt ordered by number.
	FindInstallments(ctx context.Context, debtID uuid.UUID) ([]*entity.DebtInstallment, error)

	// UpdateInstallments persists installment allocations.
	UpdateInstallments(ctx context.Context, installments []*entity.DebtInstallment) error

	// FindNewlyOverdue retrieves unpaid debts past their due date that are not yet marked overdue.
	FindNewlyOverdue(ctx context.Context, asOf time.Time, limit int) ([]*entity.Debt, error)
}
