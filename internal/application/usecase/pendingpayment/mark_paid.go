package pendingpayment

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

// MarkPaidInput represents the input for settling a pending payment.
type MarkPaidInput struct {
	UserID           uuid.UUID
	PendingPaymentID uuid.UUID
	AccountID        uuid.UUID
}

// MarkPaidOutput represents the output of settling a pending payment.
type MarkPaidOutput struct {
	PendingPayment *entity.PendingPayment
	Transaction    *entity.Transaction
	Debt           *entity.Debt // Set when the payment settled a debt
	Loan           *entity.Loan // Set when the payment settled a loan
	AccountBalance decimal.Decimal
}

// MarkPaidUseCase settles a pending payment from an account. The debit, the status change
// and the cascade into a linked debt or loan happen together or not at all.
type MarkPaidUseCase struct {
	uow   adapter.UnitOfWork
	clock adapter.Clock
}

// NewMarkPaidUseCase creates a new MarkPaidUseCase instance.
func NewMarkPaidUseCase(uow adapter.UnitOfWork, clock adapter.Clock) *MarkPaidUseCase {
	return &MarkPaidUseCase{
		uow:   uow,
		clock: clock,
	}
}

// Execute locks the account, the pending payment and the linked debt or loan in that
// order, checks every precondition and only then writes.
func (uc *MarkPaidUseCase) Execute(ctx context.Context, input MarkPaidInput) (*MarkPaidOutput, error) {
	now := uc.clock.Now()

	output := &MarkPaidOutput{}
	err := uc.uow.Do(ctx, func(ctx context.Context, repos adapter.Repositories) error {
		account, err := ledger.LockAccount(ctx, repos.Accounts, input.AccountID)
		if err != nil {
			return err
		}
		if !account.IsUsableBy(input.UserID) {
			return domainerror.NewPendingPaymentError(
				domainerror.ErrCodePendingInvalidAccount,
				"account cannot be used for this payment",
				domainerror.ErrInvalidPaymentAccount,
			)
		}

		payment, err := repos.PendingPayments.FindByIDForUpdate(ctx, input.PendingPaymentID, input.UserID)
		if err != nil {
			return pendingLookupError(err)
		}

		switch payment.Status {
		case entity.PendingPaymentStatusPaid:
			return domainerror.NewPendingPaymentError(
				domainerror.ErrCodePendingPaymentAlreadyPaid,
				"pending payment is already paid",
				domainerror.ErrPendingPaymentAlreadyPaid,
			)
		case entity.PendingPaymentStatusCancelled:
			return domainerror.NewPendingPaymentError(
				domainerror.ErrCodePendingPaymentCancelled,
				"pending payment is cancelled",
				domainerror.ErrPendingPaymentCancelled,
			)
		}

		// Validate funds
		if !account.CanCover(payment.Amount) {
			return domainerror.NewAccountError(
				domainerror.ErrCodeInsufficientFunds,
				fmt.Sprintf("balance %s does not cover %s", account.Balance.StringFixed(2), payment.Amount.StringFixed(2)),
				domainerror.ErrInsufficientFunds,
			)
		}

		txn := entity.NewTransaction(input.UserID, account.ID, entity.TransactionTypePendingPayment, payment.Amount, now, payment.Description)

		switch {
		case payment.DebtID != nil:
			debt, err := repos.Debts.FindByIDForUpdate(ctx, *payment.DebtID, input.UserID)
			if err != nil {
				return linkLookupError(err)
			}
			if err := checkLinkedRemaining(debt.IsPaid(), debt.RemainingAmount, payment.Amount); err != nil {
				return err
			}
			if _, err := ledger.SettleDebt(ctx, repos, debt, payment.Amount, now); err != nil {
				return err
			}
			txn.DebtID = &debt.ID
			output.Debt = debt

		case payment.LoanID != nil:
			loan, err := repos.Loans.FindByIDForUpdate(ctx, *payment.LoanID, input.UserID)
			if err != nil {
				return linkLookupError(err)
			}
			if err := checkLinkedRemaining(loan.IsPaid(), loan.RemainingAmount, payment.Amount); err != nil {
				return err
			}
			if _, err := ledger.SettleLoan(ctx, repos, loan, payment.Amount, now); err != nil {
				return err
			}
			txn.LoanID = &loan.ID
			output.Loan = loan
		}

		if err := ledger.Post(ctx, repos, account, txn); err != nil {
			return err
		}

		payment.MarkPaid(txn.ID, now)
		if err := repos.PendingPayments.Update(ctx, payment); err != nil {
			return fmt.Errorf("failed to update pending payment: %w", err)
		}

		output.PendingPayment = payment
		output.Transaction = txn
		output.AccountBalance = account.Balance
		return nil
	})
	if err != nil {
		return nil, err
	}

	return output, nil
}

// checkLinkedRemaining rejects settlements that the linked debt or loan cannot absorb in
// full. Pending payments are never partially applied.
func checkLinkedRemaining(paid bool, remaining, amount decimal.Decimal) error {
	if paid {
		return domainerror.NewPendingPaymentError(
			domainerror.ErrCodeLinkedEntityPaid,
			"linked debt or loan is already paid",
			domainerror.ErrLinkedEntityPaid,
		)
	}
	if amount.GreaterThan(remaining) {
		return domainerror.NewPendingPaymentError(
			domainerror.ErrCodeExceedsLinkedRemaining,
			fmt.Sprintf("amount %s exceeds the remaining %s", amount.StringFixed(2), remaining.StringFixed(2)),
			domainerror.ErrExceedsLinkedRemaining,
		)
	}
	return nil
}
