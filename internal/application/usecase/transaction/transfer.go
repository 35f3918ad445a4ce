package transaction

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-tracker/ledger/internal/application/adapter"
	"github.com/finance-tracker/ledger/internal/application/ledger"
	"github.com/finance-tracker/ledger/internal/domain/entity"
	domainerror "github.com/finance-tracker/ledger/internal/domain/error"
)

// DefaultTransferDescription is used when a transfer is created without a description.
const DefaultTransferDescription = "Transfer"

// TransferInput represents the input for a transfer between two accounts.
type TransferInput struct {
	UserID        uuid.UUID
	FromAccountID uuid.UUID
	ToAccountID   uuid.UUID
	Amount        decimal.Decimal
	Date          *time.Time
	Description   string
}

// TransferOutput represents the output of a transfer.
type TransferOutput struct {
	Transaction *entity.Transaction
	FromBalance decimal.Decimal
	ToBalance   decimal.Decimal
}

// TransferUseCase moves money between two accounts of the same user.
type TransferUseCase struct {
	uow   adapter.UnitOfWork
	clock adapter.Clock
}

// NewTransferUseCase creates a new TransferUseCase instance.
func NewTransferUseCase(uow adapter.UnitOfWork, clock adapter.Clock) *TransferUseCase {
	return &TransferUseCase{
		uow:   uow,
		clock: clock,
	}
}

// Execute debits the source and credits the destination as a single pair.
func (uc *TransferUseCase) Execute(ctx context.Context, input TransferInput) (*TransferOutput, error) {
	if err := validateAmount(input.Amount); err != nil {
		return nil, err
	}
	if input.FromAccountID == input.ToAccountID {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeSameTransferAccount,
			"source and destination accounts must differ",
			domainerror.ErrSameTransferAccount,
		)
	}
	if err := validateText(input.Description, ""); err != nil {
		return nil, err
	}

	description := input.Description
	if description == "" {
		description = DefaultTransferDescription
	}
	date := uc.clock.Now()
	if input.Date != nil {
		date = *input.Date
	}

	txn := entity.NewTransaction(input.UserID, input.FromAccountID, entity.TransactionTypeTransfer, input.Amount, date, description)
	counterpart := input.ToAccountID
	txn.CounterpartAccountID = &counterpart

	output := &TransferOutput{Transaction: txn}
	err := uc.uow.Do(ctx, func(ctx context.Context, repos adapter.Repositories) error {
		accounts, err := ledger.LockAccounts(ctx, repos.Accounts, input.FromAccountID, input.ToAccountID)
		if err != nil {
			return ledger.AccountLookupError(err)
		}

		from, to := accounts[input.FromAccountID], accounts[input.ToAccountID]
		for _, account := range []*entity.Account{from, to} {
			if err := ledger.RequireUsable(account, input.UserID); err != nil {
				return err
			}
		}

		if err := ledger.PostTransfer(ctx, repos, from, to, txn); err != nil {
			return err
		}
		output.FromBalance = from.Balance
		output.ToBalance = to.Balance
		return nil
	})
	if err != nil {
		return nil, err
	}

	return output, nil
}
