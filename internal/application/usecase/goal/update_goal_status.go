package goal

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/finance-tracker/ledger/internal/application/adapter"
	"github.com/finance-tracker/ledger/internal/domain/entity"
	domainerror "github.com/finance-tracker/ledger/internal/domain/error"
)

// UpdateGoalStatusInput represents the input for a goal status change.
type UpdateGoalStatusInput struct {
	UserID uuid.UUID
	GoalID uuid.UUID
	Status entity.GoalStatus
}

// UpdateGoalStatusOutput represents the output of a goal status change.
type UpdateGoalStatusOutput struct {
	Goal *GoalView
}

// UpdateGoalStatusUseCase handles requested goal status changes. Only in_progress and
// cancelled are interchangeable; achieved requires the target to be covered and expired
// is never set by request.
type UpdateGoalStatusUseCase struct {
	uow   adapter.UnitOfWork
	clock adapter.Clock
}

// NewUpdateGoalStatusUseCase creates a new UpdateGoalStatusUseCase instance.
func NewUpdateGoalStatusUseCase(uow adapter.UnitOfWork, clock adapter.Clock) *UpdateGoalStatusUseCase {
	return &UpdateGoalStatusUseCase{
		uow:   uow,
		clock: clock,
	}
}

// Execute performs the status change. Requesting the current status is a no-op.
func (uc *UpdateGoalStatusUseCase) Execute(ctx context.Context, input UpdateGoalStatusInput) (*UpdateGoalStatusOutput, error) {
	if !input.Status.IsValid() {
		return nil, domainerror.NewGoalError(
			domainerror.ErrCodeInvalidGoalStatus,
			"status must be one of in_progress, achieved, cancelled",
			domainerror.ErrInvalidGoalStatus,
		)
	}
	if input.Status == entity.GoalStatusExpired {
		return nil, domainerror.NewGoalError(
			domainerror.ErrCodeInvalidGoalTransition,
			"expired is derived from the target date and cannot be set",
			domainerror.ErrInvalidGoalTransition,
		)
	}

	now := uc.clock.Now()
	var goal *entity.SavingGoal

	err := uc.uow.Do(ctx, func(ctx context.Context, repos adapter.Repositories) error {
		locked, err := repos.Goals.FindByIDForUpdate(ctx, input.GoalID, input.UserID)
		if err != nil {
			return goalLookupError(err)
		}
		goal = locked

		if goal.Status == input.Status {
			return nil
		}
		if !goal.CanTransitionTo(input.Status) {
			return domainerror.NewGoalError(
				domainerror.ErrCodeInvalidGoalTransition,
				fmt.Sprintf("cannot change goal status from %s to %s", goal.Status, input.Status),
				domainerror.ErrInvalidGoalTransition,
			)
		}
		if input.Status == entity.GoalStatusAchieved && !goal.HasReachedTarget() {
			return domainerror.NewGoalError(
				domainerror.ErrCodeGoalTargetNotReached,
				"goal target has not been reached",
				domainerror.ErrGoalTargetNotReached,
			)
		}

		goal.SetStatus(input.Status, now)
		if err := repos.Goals.Update(ctx, goal); err != nil {
			return fmt.Errorf("failed to update goal: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &UpdateGoalStatusOutput{
		Goal: NewGoalView(goal, now),
	}, nil
}
