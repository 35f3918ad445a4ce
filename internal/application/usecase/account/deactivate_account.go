package account

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/finance-tracker/ledger/internal/application/adapter"
	"github.com/finance-tracker/ledger/internal/application/ledger"
	"github.com/finance-tracker/ledger/internal/domain/entity"
)

// DeactivateAccountInput represents the input for account deactivation.
type DeactivateAccountInput struct {
	UserID    uuid.UUID
	AccountID uuid.UUID
}

// DeactivateAccountOutput represents the output of account deactivation.
type DeactivateAccountOutput struct {
	Account *entity.Account
}

// DeactivateAccountUseCase soft-deletes accounts. Ledger rows keep referencing the account.
type DeactivateAccountUseCase struct {
	uow adapter.UnitOfWork
}

// NewDeactivateAccountUseCase creates a new DeactivateAccountUseCase instance.
func NewDeactivateAccountUseCase(uow adapter.UnitOfWork) *DeactivateAccountUseCase {
	return &DeactivateAccountUseCase{
		uow: uow,
	}
}

// Execute marks the account inactive.
func (uc *DeactivateAccountUseCase) Execute(ctx context.Context, input DeactivateAccountInput) (*DeactivateAccountOutput, error) {
	var account *entity.Account

	err := uc.uow.Do(ctx, func(ctx context.Context, repos adapter.Repositories) error {
		locked, err := ledger.LockAccount(ctx, repos.Accounts, input.AccountID)
		if err != nil {
			return err
		}
		if err := ledger.RequireUsable(locked, input.UserID); err != nil {
			return err
		}

		locked.Deactivate()
		if err := repos.Accounts.Update(ctx, locked); err != nil {
			return fmt.Errorf("failed to deactivate account: %w", err)
		}
		account = locked
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &DeactivateAccountOutput{
		Account: account,
	}, nil
}
