package ledger_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finance-tracker/ledger/internal/application/adapter"
	"github.com/finance-tracker/ledger/internal/application/ledger"
	"github.com/finance-tracker/ledger/internal/domain/entity"
	domainerror "github.com/finance-tracker/ledger/internal/domain/error"
	"github.com/finance-tracker/ledger/internal/integration/persistence/persistencetest"
)

var testNow = time.Date(2024, time.March, 15, 12, 0, 0, 0, time.UTC)

func amount(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestPostAndUnpost(t *testing.T) {
	env := persistencetest.NewEnv(t, testNow)
	userID := uuid.New()
	account := env.OpenAccount(t, userID, "100")
	txn := entity.NewTransaction(userID, account.ID, entity.TransactionTypeExpense, amount("40"), testNow, "Groceries")

	err := env.UoW.Do(context.Background(), func(ctx context.Context, repos adapter.Repositories) error {
		locked, err := ledger.LockAccount(ctx, repos.Accounts, account.ID)
		if err != nil {
			return err
		}
		return ledger.Post(ctx, repos, locked, txn)
	})
	require.NoError(t, err)
	assert.True(t, env.Balance(t, account.ID).Equal(amount("60")))

	err = env.UoW.Do(context.Background(), func(ctx context.Context, repos adapter.Repositories) error {
		locked, err := ledger.LockAccount(ctx, repos.Accounts, account.ID)
		if err != nil {
			return err
		}
		return ledger.Unpost(ctx, repos, locked, txn)
	})
	require.NoError(t, err)
	assert.True(t, env.Balance(t, account.ID).Equal(amount("100")))
}

func TestPost_RollsBackWithUnitOfWork(t *testing.T) {
	env := persistencetest.NewEnv(t, testNow)
	userID := uuid.New()
	account := env.OpenAccount(t, userID, "100")
	failure := errors.New("dependent update failed")

	err := env.UoW.Do(context.Background(), func(ctx context.Context, repos adapter.Repositories) error {
		locked, err := ledger.LockAccount(ctx, repos.Accounts, account.ID)
		if err != nil {
			return err
		}
		txn := entity.NewTransaction(userID, account.ID, entity.TransactionTypeExpense, amount("70"), testNow, "Rent")
		if err := ledger.Post(ctx, repos, locked, txn); err != nil {
			return err
		}
		return failure
	})

	assert.ErrorIs(t, err, failure)
	assert.True(t, env.Balance(t, account.ID).Equal(amount("100")))
	assert.Equal(t, int64(1), persistencetest.CountRows(t, env.DB, "transactions", "account_id = ?", account.ID))
}

func TestPost_AccountMismatch(t *testing.T) {
	env := persistencetest.NewEnv(t, testNow)
	userID := uuid.New()
	account := env.OpenAccount(t, userID, "100")
	other := env.OpenAccount(t, userID, "0")

	err := env.UoW.Do(context.Background(), func(ctx context.Context, repos adapter.Repositories) error {
		txn := entity.NewTransaction(userID, other.ID, entity.TransactionTypeIncome, amount("5"), testNow, "")
		return ledger.Post(ctx, repos, account, txn)
	})

	assert.ErrorIs(t, err, ledger.ErrAccountMismatch)
	assert.True(t, env.Balance(t, account.ID).Equal(amount("100")))
	assert.True(t, env.Balance(t, other.ID).Equal(decimal.Zero))
}

func TestPostTransfer_ConservesTotal(t *testing.T) {
	env := persistencetest.NewEnv(t, testNow)
	userID := uuid.New()
	source := env.OpenAccount(t, userID, "300")
	target := env.OpenAccount(t, userID, "20")
	txn := entity.NewTransaction(userID, source.ID, entity.TransactionTypeTransfer, amount("120"), testNow, "Savings")
	txn.CounterpartAccountID = &target.ID

	move := func(post bool) error {
		return env.UoW.Do(context.Background(), func(ctx context.Context, repos adapter.Repositories) error {
			locked, err := ledger.LockAccounts(ctx, repos.Accounts, target.ID, source.ID)
			if err != nil {
				return err
			}
			if post {
				return ledger.PostTransfer(ctx, repos, locked[source.ID], locked[target.ID], txn)
			}
			return ledger.UnpostTransfer(ctx, repos, locked[source.ID], locked[target.ID], txn)
		})
	}

	require.NoError(t, move(true))
	assert.True(t, env.Balance(t, source.ID).Equal(amount("180")))
	assert.True(t, env.Balance(t, target.ID).Equal(amount("140")))

	require.NoError(t, move(false))
	assert.True(t, env.Balance(t, source.ID).Equal(amount("300")))
	assert.True(t, env.Balance(t, target.ID).Equal(amount("20")))
}

func TestLockAccounts(t *testing.T) {
	env := persistencetest.NewEnv(t, testNow)
	account := env.OpenAccount(t, uuid.New(), "1")

	err := env.UoW.Do(context.Background(), func(ctx context.Context, repos adapter.Repositories) error {
		locked, err := ledger.LockAccounts(ctx, repos.Accounts, account.ID, account.ID)
		require.NoError(t, err)
		assert.Len(t, locked, 1)

		_, err = ledger.LockAccounts(ctx, repos.Accounts, account.ID, uuid.New())
		return err
	})

	assert.ErrorIs(t, err, domainerror.ErrAccountNotFound)
}

func TestRequireUsable(t *testing.T) {
	owner := uuid.New()
	account := entity.NewAccount(owner, "Cash", entity.AccountTypeCash)

	assert.NoError(t, ledger.RequireUsable(account, owner))
	assert.Equal(t, domainerror.KindNotFound, domainerror.KindOf(ledger.RequireUsable(account, uuid.New())))

	account.Deactivate()
	assert.Equal(t, domainerror.KindInvalidState, domainerror.KindOf(ledger.RequireUsable(account, owner)))
}
