// Package account contains account-related use cases.
package account

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-tracker/ledger/internal/application/adapter"
	"github.com/finance-tracker/ledger/internal/application/ledger"
	"github.com/finance-tracker/ledger/internal/domain/entity"
	domainerror "github.com/finance-tracker/ledger/internal/domain/error"
	"github.com/finance-tracker/ledger/internal/domain/valueobject"
)

// OpeningBalanceDescription is the description of the ledger row that opens an account.
const OpeningBalanceDescription = "Opening balance"

// CreateAccountInput represents the input for account creation.
type CreateAccountInput struct {
	UserID         uuid.UUID
	Name           string
	Type           entity.AccountType
	OpeningBalance decimal.Decimal
}

// CreateAccountOutput represents the output of account creation.
type CreateAccountOutput struct {
	Account *entity.Account
	// OpeningTransaction is nil when the account opens with a zero balance.
	OpeningTransaction *entity.Transaction
}

// CreateAccountUseCase handles account creation logic.
type CreateAccountUseCase struct {
	uow   adapter.UnitOfWork
	clock adapter.Clock
}

// NewCreateAccountUseCase creates a new CreateAccountUseCase instance.
func NewCreateAccountUseCase(uow adapter.UnitOfWork, clock adapter.Clock) *CreateAccountUseCase {
	return &CreateAccountUseCase{
		uow:   uow,
		clock: clock,
	}
}

// Execute creates the account and posts a non-zero opening balance through the ledger, so
// that the stored balance always matches the ledger from the first row.
func (uc *CreateAccountUseCase) Execute(ctx context.Context, input CreateAccountInput) (*CreateAccountOutput, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, domainerror.NewAccountError(
			domainerror.ErrCodeAccountNameRequired,
			"account name is required",
			domainerror.ErrAccountNameRequired,
		)
	}
	if len(name) > entity.MaxAccountNameLength {
		return nil, domainerror.NewAccountError(
			domainerror.ErrCodeAccountNameTooLong,
			fmt.Sprintf("account name must not exceed %d characters", entity.MaxAccountNameLength),
			domainerror.ErrAccountNameRequired,
		)
	}
	if !input.Type.IsValid() {
		return nil, domainerror.NewAccountError(
			domainerror.ErrCodeInvalidAccountType,
			"account type must be one of cash, debit, credit, bank, savings, investment",
			domainerror.ErrInvalidAccountType,
		)
	}
	if !valueobject.HasMoneyScale(input.OpeningBalance) {
		return nil, domainerror.NewAccountError(
			domainerror.ErrCodeOpeningBalancePrecision,
			"opening balance must be a whole number of cents",
			domainerror.ErrOpeningBalancePrecision,
		)
	}
	// Only credit accounts may open in debt.
	if input.OpeningBalance.IsNegative() && input.Type != entity.AccountTypeCredit {
		return nil, domainerror.NewAccountError(
			domainerror.ErrCodeNegativeOpeningBalance,
			"opening balance cannot be negative",
			domainerror.ErrNegativeOpeningBalance,
		)
	}

	account := entity.NewAccount(input.UserID, name, input.Type)
	output := &CreateAccountOutput{Account: account}

	err := uc.uow.Do(ctx, func(ctx context.Context, repos adapter.Repositories) error {
		if err := repos.Accounts.Create(ctx, account); err != nil {
			return fmt.Errorf("failed to create account: %w", err)
		}

		if input.OpeningBalance.IsZero() {
			return nil
		}

		txnType := entity.TransactionTypeIncome
		if input.OpeningBalance.IsNegative() {
			txnType = entity.TransactionTypeExpense
		}
		txn := entity.NewTransaction(
			input.UserID,
			account.ID,
			txnType,
			input.OpeningBalance.Abs(),
			uc.clock.Now(),
			OpeningBalanceDescription,
		)
		if err := ledger.Post(ctx, repos, account, txn); err != nil {
			return err
		}
		output.OpeningTransaction = txn
		return nil
	})
	if err != nil {
		return nil, err
	}

	return output, nil
}
