package goal

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-tracker/ledger/internal/application/adapter"
	"github.com/finance-tracker/ledger/internal/domain/entity"
)

// GoalView is a goal as seen at a point in time.
type GoalView struct {
	Goal            *entity.SavingGoal
	EffectiveStatus entity.GoalStatus
	Progress        decimal.Decimal
	Contributions   int
}

// NewGoalView derives the view of goal at asOf.
func NewGoalView(goal *entity.SavingGoal, asOf time.Time) *GoalView {
	return &GoalView{
		Goal:            goal,
		EffectiveStatus: goal.EffectiveStatus(asOf),
		Progress:        goal.Progress(),
	}
}

// GetGoalInput represents the input for retrieving a goal.
type GetGoalInput struct {
	UserID uuid.UUID
	GoalID uuid.UUID
}

// GetGoalOutput represents the output of retrieving a goal.
type GetGoalOutput struct {
	Goal *GoalView
}

// GetGoalUseCase handles retrieving a single goal.
type GetGoalUseCase struct {
	goalRepo        adapter.GoalRepository
	transactionRepo adapter.TransactionRepository
	clock           adapter.Clock
}

// NewGetGoalUseCase creates a new GetGoalUseCase instance.
func NewGetGoalUseCase(
	goalRepo adapter.GoalRepository,
	transactionRepo adapter.TransactionRepository,
	clock adapter.Clock,
) *GetGoalUseCase {
	return &GetGoalUseCase{
		goalRepo:        goalRepo,
		transactionRepo: transactionRepo,
		clock:           clock,
	}
}

// Execute loads the goal and checks its saved amount against the ledger.
func (uc *GetGoalUseCase) Execute(ctx context.Context, input GetGoalInput) (*GetGoalOutput, error) {
	goal, err := uc.goalRepo.FindByID(ctx, input.GoalID, input.UserID)
	if err != nil {
		return nil, goalLookupError(err)
	}

	view, err := buildView(ctx, uc.transactionRepo, goal, uc.clock.Now())
	if err != nil {
		return nil, err
	}

	return &GetGoalOutput{
		Goal: view,
	}, nil
}

// buildView derives the saved amount from the ledger. Drift from the stored amount is
// logged and the ledger figure is reported.
func buildView(ctx context.Context, transactionRepo adapter.TransactionRepository, goal *entity.SavingGoal, asOf time.Time) (*GoalView, error) {
	summary, err := transactionRepo.SummarizeByGoal(ctx, goal.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to summarize goal contributions: %w", err)
	}

	if !summary.Total.Equal(goal.CurrentAmount) {
		slog.Warn("Goal amount differs from ledger",
			"goal_id", goal.ID,
			"stored_amount", goal.CurrentAmount.String(),
			"ledger_amount", summary.Total.String(),
		)
		goal.CurrentAmount = summary.Total
	}

	view := NewGoalView(goal, asOf)
	view.Contributions = summary.Count
	return view, nil
}
