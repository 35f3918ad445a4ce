package debt

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

// PayDebtInput represents the input for a debt payment.
type PayDebtInput struct {
	UserID    uuid.UUID
	DebtID    uuid.UUID
	AccountID uuid.UUID
	Amount    decimal.Decimal
	Date      *time.Time // Optional, defaults to today
}

// PayDebtOutput represents the output of a debt payment.
type PayDebtOutput struct {
	Debt              *entity.Debt
	Transaction       *entity.Transaction
	AppliedAmount     decimal.Decimal
	OverpaymentAmount decimal.Decimal
	AccountBalance    decimal.Decimal
}

// PayDebtUseCase records a payment towards a debt. Payments above the remaining amount are
// capped and the excess is reported back instead of being posted.
type PayDebtUseCase struct {
	uow   adapter.UnitOfWork
	clock adapter.Clock
}

// NewPayDebtUseCase creates a new PayDebtUseCase instance.
func NewPayDebtUseCase(uow adapter.UnitOfWork, clock adapter.Clock) *PayDebtUseCase {
	return &PayDebtUseCase{
		uow:   uow,
		clock: clock,
	}
}

// Execute locks the paying account and the debt, then settles the capped payment against
// the debt and its installments and posts it.
func (uc *PayDebtUseCase) Execute(ctx context.Context, input PayDebtInput) (*PayDebtOutput, error) {
	if !valueobject.IsValidAmount(input.Amount) {
		return nil, domainerror.NewDebtError(
			domainerror.ErrCodeInvalidDebtPayment,
			"payment amount must be a positive amount of whole cents",
			domainerror.ErrInvalidPaymentAmount,
		)
	}

	paidOn := uc.clock.Now()
	if input.Date != nil {
		paidOn = *input.Date
	}

	output := &PayDebtOutput{}
	err := uc.uow.Do(ctx, func(ctx context.Context, repos adapter.Repositories) error {
		account, err := ledger.LockAccount(ctx, repos.Accounts, input.AccountID)
		if err != nil {
			return err
		}
		if !account.IsUsableBy(input.UserID) {
			return domainerror.NewDebtError(
				domainerror.ErrCodeDebtInvalidAccount,
				"account cannot be used for this payment",
				domainerror.ErrInvalidPaymentAccount,
			)
		}

		debt, err := lockDebt(ctx, repos.Debts, input.DebtID, input.UserID)
		if err != nil {
			return err
		}
		if debt.IsPaid() {
			return domainerror.NewDebtError(
				domainerror.ErrCodeDebtAlreadyPaid,
				"debt is already paid",
				domainerror.ErrDebtAlreadyPaid,
			)
		}

		allocation, err := ledger.SettleDebt(ctx, repos, debt, input.Amount, paidOn)
		if err != nil {
			return err
		}

		txn := entity.NewTransaction(input.UserID, account.ID, entity.TransactionTypeDebtPayment, allocation.Applied, paidOn, "Payment: "+debt.Name)
		txn.DebtID = &debt.ID
		if err := ledger.Post(ctx, repos, account, txn); err != nil {
			return err
		}

		output.Debt = debt
		output.Transaction = txn
		output.AppliedAmount = allocation.Applied
		output.OverpaymentAmount = allocation.Overpayment
		output.AccountBalance = account.Balance
		return nil
	})
	if err != nil {
		return nil, err
	}

	return output, nil
}

// lockDebt locks a debt owned by userID.
func lockDebt(ctx context.Context, repo adapter.DebtRepository, id, userID uuid.UUID) (*entity.Debt, error) {
	debt, err := repo.FindByIDForUpdate(ctx, id, userID)
	if err != nil {
		if errors.Is(err, domainerror.ErrDebtNotFound) {
			return nil, domainerror.NewDebtError(
				domainerror.ErrCodeDebtNotFound,
				"debt not found",
				domainerror.ErrDebtNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find debt: %w", err)
	}
	return debt, nil
}
