package recurring

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/finance-tracker/ledger/internal/application/adapter"
	"github.com/finance-tracker/ledger/internal/domain/entity"
	domainerror "github.com/finance-tracker/ledger/internal/domain/error"
)

// UpdateRecurringStatusInput represents the input for a recurring expense status change.
type UpdateRecurringStatusInput struct {
	UserID             uuid.UUID
	RecurringExpenseID uuid.UUID
	Status             entity.RecurringStatus
}

// UpdateRecurringStatusOutput represents the output of a recurring expense status change.
type UpdateRecurringStatusOutput struct {
	RecurringExpense *entity.RecurringExpense
}

// UpdateRecurringStatusUseCase pauses, resumes and cancels recurring expenses.
type UpdateRecurringStatusUseCase struct {
	uow   adapter.UnitOfWork
	clock adapter.Clock
}

// NewUpdateRecurringStatusUseCase creates a new UpdateRecurringStatusUseCase instance.
func NewUpdateRecurringStatusUseCase(uow adapter.UnitOfWork, clock adapter.Clock) *UpdateRecurringStatusUseCase {
	return &UpdateRecurringStatusUseCase{
		uow:   uow,
		clock: clock,
	}
}

// Execute performs the status change. Requesting the current status is a no-op; resuming
// reschedules from today.
func (uc *UpdateRecurringStatusUseCase) Execute(ctx context.Context, input UpdateRecurringStatusInput) (*UpdateRecurringStatusOutput, error) {
	if !input.Status.IsValid() {
		return nil, domainerror.NewRecurringError(
			domainerror.ErrCodeInvalidRecurringStatus,
			"status must be one of active, paused, cancelled",
			domainerror.ErrInvalidRecurringStatus,
		)
	}

	var expense *entity.RecurringExpense
	err := uc.uow.Do(ctx, func(ctx context.Context, repos adapter.Repositories) error {
		locked, err := lockExpense(ctx, repos.RecurringExpenses, input.RecurringExpenseID, input.UserID)
		if err != nil {
			return err
		}
		expense = locked

		if expense.Status == input.Status {
			return nil
		}
		if !expense.CanTransitionTo(input.Status) {
			return domainerror.NewRecurringError(
				domainerror.ErrCodeRecurringCancelled,
				fmt.Sprintf("cannot change recurring expense status from %s to %s", expense.Status, input.Status),
				domainerror.ErrRecurringCancelled,
			)
		}

		if err := expense.SetStatus(input.Status, uc.clock.Now()); err != nil {
			return fmt.Errorf("failed to reschedule recurring expense: %w", err)
		}
		if err := repos.RecurringExpenses.Update(ctx, expense); err != nil {
			return fmt.Errorf("failed to update recurring expense: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &UpdateRecurringStatusOutput{
		RecurringExpense: expense,
	}, nil
}

func lockExpense(ctx context.Context, repo adapter.RecurringExpenseRepository, id, userID uuid.UUID) (*entity.RecurringExpense, error) {
	expense, err := repo.FindByIDForUpdate(ctx, id, userID)
	if err != nil {
		return nil, recurringLookupError(err)
	}
	return expense, nil
}

func recurringLookupError(err error) error {
	if errors.Is(err, domainerror.ErrRecurringExpenseNotFound) {
		return domainerror.NewRecurringError(
			domainerror.ErrCodeRecurringNotFound,
			"recurring expense not found",
			domainerror.ErrRecurringExpenseNotFound,
		)
	}
	return fmt.Errorf("failed to find recurring expense: %w", err)
}
