package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/finance-tracker/ledger/internal/domain/entity"
)

// GoalRepository defines the interface for savings goal persistence operations.
type GoalRepository interface {
	// Create saves a new goal.
	Create(ctx context.Context, goal *entity.SavingGoal) error

	// FindByID retrieves a goal owned by userID.
	FindByID(ctx context.Context, id, userID uuid.UUID) (*entity.SavingGoal, error)

	// FindByIDForUpdate retrieves a goal owned by userID and locks its row.
	FindByIDForUpdate(ctx context.Context, id, userID uuid.UUID) (*entity.SavingGoal, error)

	// FindByUser retrieves all goals of a user.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.SavingGoal, error)

	// Update persists amount, status and completion changes.
	Update(ctx context.Context, goal *entity.SavingGoal) error
}
