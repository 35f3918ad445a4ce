// Package ledger applies transactions to account balances. It is the only code that moves
// an account balance, and it always does so together with the ledger row that explains
// the movement, inside the caller's unit of work.
package ledger

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/google/uuid"

	"github.com/finance-tracker/ledger/internal/application/adapter"
	"github.com/finance-tracker/ledger/internal/domain/entity"
)

// ErrAccountMismatch is returned when a transaction is posted against the wrong account.
var ErrAccountMismatch = errors.New("transaction does not belong to account")

// Post applies the balance effect of txn to account and appends txn to the ledger.
// The account must have been locked in the same unit of work.
func Post(ctx context.Context, repos adapter.Repositories, account *entity.Account, txn *entity.Transaction) error {
	if account.ID != txn.AccountID {
		return fmt.Errorf("%w: %s", ErrAccountMismatch, txn.ID)
	}

	account.ApplyEffect(entity.BalanceEffectOf(txn.Type), txn.Amount)

	if err := repos.Accounts.Update(ctx, account); err != nil {
		return fmt.Errorf("failed to update account balance: %w", err)
	}
	if err := repos.Transactions.Create(ctx, txn); err != nil {
		return fmt.Errorf("failed to record transaction: %w", err)
	}

	return nil
}

// Unpost applies the exact opposite of the effect txn had on account and removes txn.
func Unpost(ctx context.Context, repos adapter.Repositories, account *entity.Account, txn *entity.Transaction) error {
	if account.ID != txn.AccountID {
		return fmt.Errorf("%w: %s", ErrAccountMismatch, txn.ID)
	}

	account.RevertEffect(entity.BalanceEffectOf(txn.Type), txn.Amount)

	if err := repos.Accounts.Update(ctx, account); err != nil {
		return fmt.Errorf("failed to update account balance: %w", err)
	}
	if err := repos.Transactions.Delete(ctx, txn.ID); err != nil {
		return fmt.Errorf("failed to delete transaction: %w", err)
	}

	return nil
}

// PostTransfer debits source and credits counterpart by txn.Amount as one pair.
func PostTransfer(ctx context.Context, repos adapter.Repositories, source, counterpart *entity.Account, txn *entity.Transaction) error {
	if source.ID != txn.AccountID || txn.CounterpartAccountID == nil || *txn.CounterpartAccountID != counterpart.ID {
		return fmt.Errorf("%w: %s", ErrAccountMismatch, txn.ID)
	}

	source.ApplyEffect(entity.EffectDebit, txn.Amount)
	counterpart.ApplyEffect(entity.EffectCredit, txn.Amount)

	if err := updateAccounts(ctx, repos, source, counterpart); err != nil {
		return err
	}
	if err := repos.Transactions.Create(ctx, txn); err != nil {
		return fmt.Errorf("failed to record transfer: %w", err)
	}

	return nil
}

// UnpostTransfer reverses both legs of a transfer and removes it.
func UnpostTransfer(ctx context.Context, repos adapter.Repositories, source, counterpart *entity.Account, txn *entity.Transaction) error {
	if source.ID != txn.AccountID || txn.CounterpartAccountID == nil || *txn.CounterpartAccountID != counterpart.ID {
		return fmt.Errorf("%w: %s", ErrAccountMismatch, txn.ID)
	}

	source.ApplyEffect(entity.EffectCredit, txn.Amount)
	counterpart.ApplyEffect(entity.EffectDebit, txn.Amount)

	if err := updateAccounts(ctx, repos, source, counterpart); err != nil {
		return err
	}
	if err := repos.Transactions.Delete(ctx, txn.ID); err != nil {
		return fmt.Errorf("failed to delete transfer: %w", err)
	}

	return nil
}

// LockAccounts locks the given accounts in ascending ID order so that concurrent units
// of work touching the same pair never wait on each other in opposite orders.
func LockAccounts(ctx context.Context, repo adapter.AccountRepository, ids ...uuid.UUID) (map[uuid.UUID]*entity.Account, error) {
	ordered := slices.Clone(ids)
	slices.SortFunc(ordered, func(a, b uuid.UUID) int {
		return bytes.Compare(a[:], b[:])
	})
	ordered = slices.Compact(ordered)

	locked := make(map[uuid.UUID]*entity.Account, len(ordered))
	for _, id := range ordered {
		account, err := repo.FindByIDForUpdate(ctx, id)
		if err != nil {
			return nil, err
		}
		locked[id] = account
	}

	return locked, nil
}

func updateAccounts(ctx context.Context, repos adapter.Repositories, accounts ...*entity.Account) error {
	for _, account := range accounts {
		if err := repos.Accounts.Update(ctx, account); err != nil {
			return fmt.Errorf("failed to update account balance: %w", err)
		}
	}
	return nil
}
