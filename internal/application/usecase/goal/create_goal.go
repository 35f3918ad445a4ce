// Package goal contains savings goal use cases.
package goal

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-tracker/ledger/internal/application/adapter"
	"github.com/finance-tracker/ledger/internal/domain/entity"
	domainerror "github.com/finance-tracker/ledger/internal/domain/error"
	"github.com/finance-tracker/ledger/internal/domain/valueobject"
)

var hundred = decimal.NewFromInt(100)

// CreateGoalInput represents the input for goal creation.
type CreateGoalInput struct {
	UserID                   uuid.UUID
	Name                     string
	TargetAmount             decimal.Decimal
	TargetDate               *time.Time
	AutoContributePercentage *decimal.Decimal // Optional, within (0, 100]
}

// CreateGoalOutput represents the output of goal creation.
type CreateGoalOutput struct {
	Goal *entity.SavingGoal
}

// CreateGoalUseCase handles goal creation logic.
type CreateGoalUseCase struct {
	goalRepo adapter.GoalRepository
}

// NewCreateGoalUseCase creates a new CreateGoalUseCase instance.
func NewCreateGoalUseCase(goalRepo adapter.GoalRepository) *CreateGoalUseCase {
	return &CreateGoalUseCase{
		goalRepo: goalRepo,
	}
}

// Execute performs the goal creation.
func (uc *CreateGoalUseCase) Execute(ctx context.Context, input CreateGoalInput) (*CreateGoalOutput, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, domainerror.NewGoalError(
			domainerror.ErrCodeGoalNameRequired,
			"goal name is required",
			domainerror.ErrGoalNameRequired,
		)
	}

	// Validate target amount
	if !valueobject.IsValidAmount(input.TargetAmount) {
		return nil, domainerror.NewGoalError(
			domainerror.ErrCodeInvalidTargetAmount,
			"target amount must be a positive amount of whole cents",
			domainerror.ErrInvalidTargetAmount,
		)
	}

	if pct := input.AutoContributePercentage; pct != nil && (!pct.IsPositive() || pct.GreaterThan(hundred)) {
		return nil, domainerror.NewGoalError(
			domainerror.ErrCodeInvalidAutoContribute,
			"auto contribute percentage must be greater than 0 and at most 100",
			domainerror.ErrInvalidAutoContribute,
		)
	}

	goal := entity.NewSavingGoal(
		input.UserID,
		name,
		input.TargetAmount,
		input.TargetDate,
		input.AutoContributePercentage,
	)

	if err := uc.goalRepo.Create(ctx, goal); err != nil {
		return nil, fmt.Errorf("failed to create goal: %w", err)
	}

	return &CreateGoalOutput{
		Goal: goal,
	}, nil
}
