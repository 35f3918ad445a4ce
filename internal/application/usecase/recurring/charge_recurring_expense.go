package recurring

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-tracker/ledger/internal/application/adapter"
	"github.com/finance-tracker/ledger/internal/application/ledger"
	"github.com/finance-tracker/ledger/internal/domain/entity"
	domainerror "github.com/finance-tracker/ledger/internal/domain/error"
)

// ChargeRecurringExpenseInput represents the input for charging a recurring expense.
type ChargeRecurringExpenseInput struct {
	UserID             uuid.UUID
	RecurringExpenseID uuid.UUID
}

// ChargeRecurringExpenseOutput represents the output of charging a recurring expense.
type ChargeRecurringExpenseOutput struct {
	RecurringExpense *entity.RecurringExpense
	Transaction      *entity.Transaction
	AccountBalance   decimal.Decimal
}

// ChargeRecurringExpenseUseCase records the charge for the current period of a recurring
// expense and advances its schedule.
type ChargeRecurringExpenseUseCase struct {
	uow adapter.UnitOfWork
}

// NewChargeRecurringExpenseUseCase creates a new ChargeRecurringExpenseUseCase instance.
func NewChargeRecurringExpenseUseCase(uow adapter.UnitOfWork) *ChargeRecurringExpenseUseCase {
	return &ChargeRecurringExpenseUseCase{
		uow: uow,
	}
}

// Execute charges the period due on the expense's next charge date.
func (uc *ChargeRecurringExpenseUseCase) Execute(ctx context.Context, input ChargeRecurringExpenseInput) (*ChargeRecurringExpenseOutput, error) {
	output := &ChargeRecurringExpenseOutput{}
	err := uc.uow.Do(ctx, func(ctx context.Context, repos adapter.Repositories) error {
		// Read without locking to learn the account, which must be locked first.
		current, err := repos.RecurringExpenses.FindByID(ctx, input.RecurringExpenseID, input.UserID)
		if err != nil {
			return recurringLookupError(err)
		}

		account, err := ledger.LockAccount(ctx, repos.Accounts, current.AccountID)
		if err != nil {
			return err
		}
		expense, err := lockExpense(ctx, repos.RecurringExpenses, input.RecurringExpenseID, input.UserID)
		if err != nil {
			return err
		}

		txn, err := charge(ctx, repos, account, expense)
		if err != nil {
			return err
		}

		output.RecurringExpense = expense
		output.Transaction = txn
		output.AccountBalance = account.Balance
		return nil
	})
	if err != nil {
		return nil, err
	}

	return output, nil
}

// charge posts the expense for the period at NextChargeDate and advances the schedule.
// Both rows must already be locked.
func charge(ctx context.Context, repos adapter.Repositories, account *entity.Account, expense *entity.RecurringExpense) (*entity.Transaction, error) {
	if expense.Status != entity.RecurringStatusActive {
		return nil, domainerror.NewRecurringError(
			domainerror.ErrCodeRecurringNotActive,
			fmt.Sprintf("recurring expense is %s", expense.Status),
			domainerror.ErrRecurringNotActive,
		)
	}
	if account.ID != expense.AccountID || !account.IsUsableBy(expense.UserID) {
		return nil, domainerror.NewRecurringError(
			domainerror.ErrCodeRecurringInvalidAccount,
			"account cannot be used for this recurring expense",
			domainerror.ErrInvalidPaymentAccount,
		)
	}

	txn := entity.NewTransaction(expense.UserID, account.ID, entity.TransactionTypeExpense, expense.Amount, expense.NextChargeDate, expense.Name)
	txn.CategoryID = expense.CategoryID
	txn.RecurringExpenseID = &expense.ID
	if err := ledger.Post(ctx, repos, account, txn); err != nil {
		return nil, err
	}

	if err := expense.MarkCharged(); err != nil {
		return nil, fmt.Errorf("failed to advance recurring expense: %w", err)
	}
	if err := repos.RecurringExpenses.Update(ctx, expense); err != nil {
		return nil, fmt.Errorf("failed to update recurring expense: %w", err)
	}
	return txn, nil
}
