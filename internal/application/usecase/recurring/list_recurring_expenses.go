package recurring

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/finance-tracker/ledger/internal/application/adapter"
	"github.com/finance-tracker/ledger/internal/domain/entity"
)

// ListRecurringExpensesInput represents the input for listing recurring expenses.
type ListRecurringExpensesInput struct {
	UserID uuid.UUID
	Status *entity.RecurringStatus // Optional filter
}

// ListRecurringExpensesOutput represents the output of listing recurring expenses.
type ListRecurringExpensesOutput struct {
	RecurringExpenses []*entity.RecurringExpense
}

// ListRecurringExpensesUseCase handles listing recurring expenses.
type ListRecurringExpensesUseCase struct {
	recurringRepo adapter.RecurringExpenseRepository
}

// NewListRecurringExpensesUseCase creates a new ListRecurringExpensesUseCase instance.
func NewListRecurringExpensesUseCase(recurringRepo adapter.RecurringExpenseRepository) *ListRecurringExpensesUseCase {
	return &ListRecurringExpensesUseCase{
		recurringRepo: recurringRepo,
	}
}

// Execute lists the user's recurring expenses ordered by next charge date.
func (uc *ListRecurringExpensesUseCase) Execute(ctx context.Context, input ListRecurringExpensesInput) (*ListRecurringExpensesOutput, error) {
	expenses, err := uc.recurringRepo.FindByUser(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list recurring expenses: %w", err)
	}

	if input.Status != nil {
		filtered := make([]*entity.RecurringExpense, 0, len(expenses))
		for _, expense := range expenses {
			if expense.Status == *input.Status {
				filtered = append(filtered, expense)
			}
		}
		expenses = filtered
	}

	return &ListRecurringExpensesOutput{
		RecurringExpenses: expenses,
	}, nil
}
