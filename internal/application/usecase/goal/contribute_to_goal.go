package goal

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-tracker/ledger/internal/application/adapter"
	"github.com/finance-tracker/ledger/internal/application/ledger"
	"github.com/finance-tracker/ledger/internal/domain/entity"
	domainerror "github.com/finance-tracker/ledger/internal/domain/error"
	"github.com/finance-tracker/ledger/internal/domain/valueobject"
)

// ContributeToGoalInput represents the input for a goal contribution.
type ContributeToGoalInput struct {
	UserID    uuid.UUID
	GoalID    uuid.UUID
	AccountID uuid.UUID
	Amount    decimal.Decimal
	Date      *time.Time // Optional, defaults to today
}

// ContributeToGoalOutput represents the output of a goal contribution.
type ContributeToGoalOutput struct {
	Goal           *GoalView
	Transaction    *entity.Transaction
	Achieved       bool // True when this contribution reached the target
	AccountBalance decimal.Decimal
}

// ContributeToGoalUseCase moves money from an account into a savings goal.
type ContributeToGoalUseCase struct {
	uow   adapter.UnitOfWork
	clock adapter.Clock
}

// NewContributeToGoalUseCase creates a new ContributeToGoalUseCase instance.
func NewContributeToGoalUseCase(uow adapter.UnitOfWork, clock adapter.Clock) *ContributeToGoalUseCase {
	return &ContributeToGoalUseCase{
		uow:   uow,
		clock: clock,
	}
}

// Execute debits the account and adds the full amount to the goal. Overshooting the target
// is allowed; the goal is marked achieved the first time the target is covered.
func (uc *ContributeToGoalUseCase) Execute(ctx context.Context, input ContributeToGoalInput) (*ContributeToGoalOutput, error) {
	if !valueobject.IsValidAmount(input.Amount) {
		return nil, domainerror.NewGoalError(
			domainerror.ErrCodeInvalidContribution,
			"contribution amount must be a positive amount of whole cents",
			domainerror.ErrInvalidContributionAmount,
		)
	}

	now := uc.clock.Now()
	date := now
	if input.Date != nil {
		date = *input.Date
	}

	output := &ContributeToGoalOutput{}
	err := uc.uow.Do(ctx, func(ctx context.Context, repos adapter.Repositories) error {
		account, err := ledger.LockAccount(ctx, repos.Accounts, input.AccountID)
		if err != nil {
			return err
		}
		if !account.IsUsableBy(input.UserID) {
			return domainerror.NewGoalError(
				domainerror.ErrCodeGoalInvalidAccount,
				"account cannot be used for this contribution",
				domainerror.ErrInvalidPaymentAccount,
			)
		}

		goal, err := repos.Goals.FindByIDForUpdate(ctx, input.GoalID, input.UserID)
		if err != nil {
			return goalLookupError(err)
		}

		if !goal.AcceptsContributions() {
			return closedGoalError(goal.Status)
		}

		achieved := goal.Contribute(input.Amount, now)

		txn := entity.NewTransaction(input.UserID, account.ID, entity.TransactionTypeGoalContribution, input.Amount, date, "Contribution: "+goal.Name)
		txn.GoalID = &goal.ID
		if err := ledger.Post(ctx, repos, account, txn); err != nil {
			return err
		}

		if err := repos.Goals.Update(ctx, goal); err != nil {
			return fmt.Errorf("failed to update goal: %w", err)
		}

		output.Goal = NewGoalView(goal, now)
		output.Transaction = txn
		output.Achieved = achieved
		output.AccountBalance = account.Balance
		return nil
	})
	if err != nil {
		return nil, err
	}

	return output, nil
}

func goalLookupError(err error) error {
	if errors.Is(err, domainerror.ErrGoalNotFound) {
		return domainerror.NewGoalError(
			domainerror.ErrCodeGoalNotFound,
			"goal not found",
			domainerror.ErrGoalNotFound,
		)
	}
	return fmt.Errorf("failed to find goal: %w", err)
}

// closedGoalError reports why a goal in status no longer takes contributions.
func closedGoalError(status entity.GoalStatus) error {
	if status == entity.GoalStatusCancelled {
		return domainerror.NewGoalError(
			domainerror.ErrCodeGoalCancelled,
			"goal is cancelled",
			domainerror.ErrGoalCancelled,
		)
	}
	return domainerror.NewGoalError(
		domainerror.ErrCodeGoalAchieved,
		"goal is already achieved",
		domainerror.ErrGoalAchieved,
	)
}
