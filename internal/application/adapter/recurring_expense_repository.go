package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/finance-tracker/ledger/internal/domain/entity"
)

// RecurringExpenseRepository defines the interface for recurring expense persistence operations.
type RecurringExpenseRepository interface {
	Create(ctx context.Context, expense *entity.RecurringExpense) error
	FindByID(ctx context.Context, id, userID uuid.UUID) (*entity.RecurringExpense, error)
	FindByIDForUpdate(ctx context.Context, id, userID uuid.UUID) (*entity.RecurringExpense, error)
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.RecurringExpense, error)
	Update(ctx context.Context, expense *entity.RecurringExpense) error

	// FindDue retrieves active expenses whose next charge date is on or before asOf.
	FindDue(ctx context.Context, asOf time.Time, limit int) ([]*entity.RecurringExpense, error)
}
