package loan

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

// PayLoanInput represents the input for collecting a loan payment.
type PayLoanInput struct {
	UserID    uuid.UUID
	LoanID    uuid.UUID
	AccountID uuid.UUID
	Amount    decimal.Decimal
	Date      *time.Time // Optional, defaults to today
}

// PayLoanOutput represents the output of collecting a loan payment.
type PayLoanOutput struct {
	Loan              *entity.Loan
	Transaction       *entity.Transaction
	AppliedAmount     decimal.Decimal
	OverpaymentAmount decimal.Decimal
	AccountBalance    decimal.Decimal
}

// PayLoanUseCase records money received against a loan. Receipts above the remaining
// amount are capped like debt payments.
type PayLoanUseCase struct {
	uow   adapter.UnitOfWork
	clock adapter.Clock
}

// NewPayLoanUseCase creates a new PayLoanUseCase instance.
func NewPayLoanUseCase(uow adapter.UnitOfWork, clock adapter.Clock) *PayLoanUseCase {
	return &PayLoanUseCase{
		uow:   uow,
		clock: clock,
	}
}

// Execute locks the receiving account and the loan, then posts the capped receipt and
// updates the loan.
func (uc *PayLoanUseCase) Execute(ctx context.Context, input PayLoanInput) (*PayLoanOutput, error) {
	if !valueobject.IsValidAmount(input.Amount) {
		return nil, domainerror.NewLoanError(
			domainerror.ErrCodeInvalidLoanPayment,
			"payment amount must be a positive amount of whole cents",
			domainerror.ErrInvalidPaymentAmount,
		)
	}

	receivedOn := uc.clock.Now()
	if input.Date != nil {
		receivedOn = *input.Date
	}

	output := &PayLoanOutput{}
	err := uc.uow.Do(ctx, func(ctx context.Context, repos adapter.Repositories) error {
		account, err := ledger.LockAccount(ctx, repos.Accounts, input.AccountID)
		if err != nil {
			return err
		}
		if !account.IsUsableBy(input.UserID) {
			return domainerror.NewLoanError(
				domainerror.ErrCodeLoanInvalidAccount,
				"account cannot be used for this payment",
				domainerror.ErrInvalidPaymentAccount,
			)
		}

		loan, err := lockLoan(ctx, repos.Loans, input.LoanID, input.UserID)
		if err != nil {
			return err
		}
		if loan.IsPaid() {
			return domainerror.NewLoanError(
				domainerror.ErrCodeLoanAlreadyPaid,
				"loan is already paid",
				domainerror.ErrLoanAlreadyPaid,
			)
		}

		allocation, err := ledger.SettleLoan(ctx, repos, loan, input.Amount, receivedOn)
		if err != nil {
			return err
		}

		txn := entity.NewTransaction(input.UserID, account.ID, entity.TransactionTypeLoanPayment, allocation.Applied, receivedOn, "Received: "+loan.Name)
		txn.LoanID = &loan.ID
		if err := ledger.Post(ctx, repos, account, txn); err != nil {
			return err
		}

		output.Loan = loan
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

func lockLoan(ctx context.Context, repo adapter.LoanRepository, id, userID uuid.UUID) (*entity.Loan, error) {
	loan, err := repo.FindByIDForUpdate(ctx, id, userID)
	if err != nil {
		return nil, loanLookupError(err)
	}
	return loan, nil
}

func loanLookupError(err error) error {
	if errors.Is(err, domainerror.ErrLoanNotFound) {
		return domainerror.NewLoanError(
			domainerror.ErrCodeLoanNotFound,
			"loan not found",
			domainerror.ErrLoanNotFound,
		)
	}
	return fmt.Errorf("failed to find loan: %w", err)
}
