package recurring

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/finance-tracker/ledger/internal/application/adapter"
)

// maxPeriodsPerRun bounds how many missed periods of one expense are charged in a run.
const maxPeriodsPerRun = 12

// ChargeDueExpensesInput represents the input for a charging run.
type ChargeDueExpensesInput struct {
	BatchSize int
}

// ChargeDueExpensesOutput represents the output of a charging run.
type ChargeDueExpensesOutput struct {
	Charged int // Number of periods charged
	Failed  int // Number of expenses that could not be charged
}

// ChargeDueExpensesUseCase charges every active recurring expense whose next charge date
// has arrived, across all users.
type ChargeDueExpensesUseCase struct {
	recurringRepo adapter.RecurringExpenseRepository
	uow           adapter.UnitOfWork
	clock         adapter.Clock
}

// NewChargeDueExpensesUseCase creates a new ChargeDueExpensesUseCase instance.
func NewChargeDueExpensesUseCase(
	recurringRepo adapter.RecurringExpenseRepository,
	uow adapter.UnitOfWork,
	clock adapter.Clock,
) *ChargeDueExpensesUseCase {
	return &ChargeDueExpensesUseCase{
		recurringRepo: recurringRepo,
		uow:           uow,
		clock:         clock,
	}
}

// Execute charges each due expense in its own unit of work so that one failure does not
// hold back the others.
func (uc *ChargeDueExpensesUseCase) Execute(ctx context.Context, input ChargeDueExpensesInput) (*ChargeDueExpensesOutput, error) {
	now := uc.clock.Now()

	due, err := uc.recurringRepo.FindDue(ctx, now, input.BatchSize)
	if err != nil {
		return nil, fmt.Errorf("failed to find due recurring expenses: %w", err)
	}

	output := &ChargeDueExpensesOutput{}
	for _, candidate := range due {
		charged := 0
		err := uc.uow.Do(ctx, func(ctx context.Context, repos adapter.Repositories) error {
			account, err := repos.Accounts.FindByIDForUpdate(ctx, candidate.AccountID)
			if err != nil {
				return fmt.Errorf("failed to lock account: %w", err)
			}
			expense, err := lockExpense(ctx, repos.RecurringExpenses, candidate.ID, candidate.UserID)
			if err != nil {
				return err
			}

			for charged < maxPeriodsPerRun && expense.IsDue(now) {
				if _, err := charge(ctx, repos, account, expense); err != nil {
					return err
				}
				charged++
			}
			return nil
		})
		if err != nil {
			slog.Warn("Failed to charge recurring expense",
				"recurring_expense_id", candidate.ID,
				"error", err,
			)
			output.Failed++
			continue
		}
		output.Charged += charged
	}

	return output, nil
}
