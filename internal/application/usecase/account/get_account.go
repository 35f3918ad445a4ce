package account

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/finance-tracker/ledger/internal/application/adapter"
	"github.com/finance-tracker/ledger/internal/application/ledger"
	"github.com/finance-tracker/ledger/internal/domain/entity"
	domainerror "github.com/finance-tracker/ledger/internal/domain/error"
)

// GetAccountInput represents the input for retrieving an account.
type GetAccountInput struct {
	UserID    uuid.UUID
	AccountID uuid.UUID
}

// GetAccountOutput represents the output of retrieving an account.
type GetAccountOutput struct {
	Account        *entity.Account
	Reconciliation entity.AccountReconciliation
}

// GetAccountUseCase handles retrieving an account together with its ledger reconciliation.
type GetAccountUseCase struct {
	accountRepo adapter.AccountRepository
}

// NewGetAccountUseCase creates a new GetAccountUseCase instance.
func NewGetAccountUseCase(accountRepo adapter.AccountRepository) *GetAccountUseCase {
	return &GetAccountUseCase{
		accountRepo: accountRepo,
	}
}

// Execute loads the account and compares its stored balance with the balance derived from
// the ledger.
func (uc *GetAccountUseCase) Execute(ctx context.Context, input GetAccountInput) (*GetAccountOutput, error) {
	account, err := uc.accountRepo.FindByID(ctx, input.AccountID)
	if err != nil {
		return nil, ledger.AccountLookupError(err)
	}
	if account.UserID != input.UserID {
		return nil, domainerror.NewAccountError(
			domainerror.ErrCodeAccountNotFound,
			"account not found",
			domainerror.ErrAccountNotFound,
		)
	}

	ledgerBalance, err := uc.accountRepo.LedgerBalance(ctx, account.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to derive ledger balance: %w", err)
	}

	reconciliation := entity.AccountReconciliation{
		StoredBalance: account.Balance,
		LedgerBalance: ledgerBalance,
	}
	if !reconciliation.InSync() {
		slog.Warn("Account balance differs from ledger",
			"account_id", account.ID,
			"stored_balance", account.Balance.String(),
			"ledger_balance", ledgerBalance.String(),
		)
	}

	return &GetAccountOutput{
		Account:        account,
		Reconciliation: reconciliation,
	}, nil
}
