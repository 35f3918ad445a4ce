package goal

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/finance-tracker/ledger/internal/application/adapter"
	"github.com/finance-tracker/ledger/internal/domain/entity"
)

// ListGoalsInput represents the input for listing goals.
type ListGoalsInput struct {
	UserID uuid.UUID
	Status *entity.GoalStatus // Optional filter on the effective status
}

// ListGoalsOutput represents the output of listing goals.
type ListGoalsOutput struct {
	Goals []*GoalView
}

// ListGoalsUseCase handles listing goals logic.
type ListGoalsUseCase struct {
	goalRepo        adapter.GoalRepository
	transactionRepo adapter.TransactionRepository
	clock           adapter.Clock
}

// NewListGoalsUseCase creates a new ListGoalsUseCase instance.
func NewListGoalsUseCase(
	goalRepo adapter.GoalRepository,
	transactionRepo adapter.TransactionRepository,
	clock adapter.Clock,
) *ListGoalsUseCase {
	return &ListGoalsUseCase{
		goalRepo:        goalRepo,
		transactionRepo: transactionRepo,
		clock:           clock,
	}
}

// Execute performs the goal listing.
func (uc *ListGoalsUseCase) Execute(ctx context.Context, input ListGoalsInput) (*ListGoalsOutput, error) {
	goals, err := uc.goalRepo.FindByUser(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list goals: %w", err)
	}

	now := uc.clock.Now()
	views := make([]*GoalView, 0, len(goals))
	for _, goal := range goals {
		view, err := buildView(ctx, uc.transactionRepo, goal, now)
		if err != nil {
			return nil, err
		}
		if input.Status != nil && view.EffectiveStatus != *input.Status {
			continue
		}
		views = append(views, view)
	}

	return &ListGoalsOutput{
		Goals: views,
	}, nil
}
