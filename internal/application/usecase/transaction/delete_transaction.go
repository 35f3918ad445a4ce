package transaction

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/finance-tracker/ledger/internal/application/adapter"
	"github.com/finance-tracker/ledger/internal/application/ledger"
	"github.com/finance-tracker/ledger/internal/domain/entity"
	domainerror "github.com/finance-tracker/ledger/internal/domain/error"
)

// DeleteTransactionInput represents the input for transaction deletion.
type DeleteTransactionInput struct {
	TransactionID uuid.UUID
	UserID        uuid.UUID
}

// DeleteTransactionOutput represents the output of transaction deletion.
type DeleteTransactionOutput struct {
	Transaction *entity.Transaction
	// AttachmentIDs lists the blobs the caller should purge from file storage.
	AttachmentIDs []string
}

// DeleteTransactionUseCase reverses a ledger row: the balance effect is undone, the
// dependent aggregate is restored and the row is removed, all in one unit of work.
type DeleteTransactionUseCase struct {
	uow   adapter.UnitOfWork
	clock adapter.Clock
}

// NewDeleteTransactionUseCase creates a new DeleteTransactionUseCase instance.
func NewDeleteTransactionUseCase(uow adapter.UnitOfWork, clock adapter.Clock) *DeleteTransactionUseCase {
	return &DeleteTransactionUseCase{
		uow:   uow,
		clock: clock,
	}
}

// Execute performs the transaction reversal.
func (uc *DeleteTransactionUseCase) Execute(ctx context.Context, input DeleteTransactionInput) (*DeleteTransactionOutput, error) {
	var txn *entity.Transaction

	err := uc.uow.Do(ctx, func(ctx context.Context, repos adapter.Repositories) error {
		found, err := repos.Transactions.FindByID(ctx, input.TransactionID, input.UserID)
		if err != nil {
			return err
		}
		txn = found

		if txn.Type == entity.TransactionTypeTransfer {
			return reverseTransfer(ctx, repos, txn)
		}
		// Settled pending payments cannot be reopened.
		if !entity.IsReversible(txn.Type) {
			return domainerror.NewTransactionError(
				domainerror.ErrCodeSettlementNotReversible,
				"pending payment settlements cannot be reversed",
				domainerror.ErrSettlementNotReversible,
			)
		}

		account, err := ledger.LockAccount(ctx, repos.Accounts, txn.AccountID)
		if err != nil {
			return err
		}

		if err := uc.revertDependent(ctx, repos, txn); err != nil {
			return err
		}

		return ledger.Unpost(ctx, repos, account, txn)
	})
	if err != nil {
		if errors.Is(err, domainerror.ErrTransactionNotFound) {
			return nil, domainerror.NewTransactionError(
				domainerror.ErrCodeTransactionNotFound,
				"transaction not found",
				domainerror.ErrTransactionNotFound,
			)
		}
		return nil, err
	}

	return &DeleteTransactionOutput{
		Transaction:   txn,
		AttachmentIDs: txn.AttachmentIDs,
	}, nil
}

// revertDependent restores the aggregate the transaction contributed to.
func (uc *DeleteTransactionUseCase) revertDependent(ctx context.Context, repos adapter.Repositories, txn *entity.Transaction) error {
	now := uc.clock.Now()

	switch {
	case txn.Type == entity.TransactionTypeDebtPayment && txn.DebtID != nil:
		debt, err := repos.Debts.FindByIDForUpdate(ctx, *txn.DebtID, txn.UserID)
		if err != nil {
			return fmt.Errorf("failed to lock debt: %w", err)
		}
		debt.RevertPayment(txn.Amount, now)
		if err := repos.Debts.Update(ctx, debt); err != nil {
			return fmt.Errorf("failed to update debt: %w", err)
		}
		if !debt.HasInstallments {
			return nil
		}
		installments, err := repos.Debts.FindInstallments(ctx, debt.ID)
		if err != nil {
			return fmt.Errorf("failed to find installments: %w", err)
		}
		changed := entity.DeallocateFromInstallments(installments, txn.Amount)
		if err := repos.Debts.UpdateInstallments(ctx, changed); err != nil {
			return fmt.Errorf("failed to update installments: %w", err)
		}

	case txn.Type == entity.TransactionTypeLoanPayment && txn.LoanID != nil:
		loan, err := repos.Loans.FindByIDForUpdate(ctx, *txn.LoanID, txn.UserID)
		if err != nil {
			return fmt.Errorf("failed to lock loan: %w", err)
		}
		loan.RevertPayment(txn.Amount, now)
		if err := repos.Loans.Update(ctx, loan); err != nil {
			return fmt.Errorf("failed to update loan: %w", err)
		}

	case txn.Type == entity.TransactionTypeGoalContribution && txn.GoalID != nil:
		goal, err := repos.Goals.FindByIDForUpdate(ctx, *txn.GoalID, txn.UserID)
		if err != nil {
			return fmt.Errorf("failed to lock goal: %w", err)
		}
		// completed_at is stamped once, so an achieved goal keeps its contributions.
		if goal.Status == entity.GoalStatusAchieved {
			return domainerror.NewGoalError(
				domainerror.ErrCodeGoalAchieved,
				"contributions to an achieved goal cannot be reversed",
				domainerror.ErrGoalAchieved,
			)
		}
		goal.Withdraw(txn.Amount)
		if err := repos.Goals.Update(ctx, goal); err != nil {
			return fmt.Errorf("failed to update goal: %w", err)
		}
	}

	return nil
}

func reverseTransfer(ctx context.Context, repos adapter.Repositories, txn *entity.Transaction) error {
	if txn.CounterpartAccountID == nil {
		return fmt.Errorf("transfer %s has no counterpart account", txn.ID)
	}

	accounts, err := ledger.LockAccounts(ctx, repos.Accounts, txn.AccountID, *txn.CounterpartAccountID)
	if err != nil {
		return ledger.AccountLookupError(err)
	}

	return ledger.UnpostTransfer(ctx, repos, accounts[txn.AccountID], accounts[*txn.CounterpartAccountID], txn)
}
