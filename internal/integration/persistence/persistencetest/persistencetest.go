// Package persistencetest opens throwaway SQLite databases for use case tests.
package persistencetest

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/finance-tracker/ledger/config"
	"github.com/finance-tracker/ledger/internal/application/adapter"
	"github.com/finance-tracker/ledger/internal/application/ledger"
	"github.com/finance-tracker/ledger/internal/domain/entity"
	"github.com/finance-tracker/ledger/internal/infra/db"
	"github.com/finance-tracker/ledger/internal/integration/persistence"
)

// NewDB opens a migrated in-memory database private to t.
func NewDB(t *testing.T) *gorm.DB {
	t.Helper()

	database, err := db.NewConnection(&config.DatabaseConfig{
		Driver: db.DriverSQLite,
		URL:    fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString()),
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close() })

	require.NoError(t, database.Migrate())
	return database.DB()
}

// Env bundles what most use cases need.
type Env struct {
	DB    *gorm.DB
	UoW   adapter.UnitOfWork
	Repos adapter.Repositories
	Clock *Clock
}

// NewEnv opens a database and wires repositories on it. The clock starts at now.
func NewEnv(t *testing.T, now time.Time) *Env {
	t.Helper()

	gdb := NewDB(t)
	return &Env{
		DB:    gdb,
		UoW:   persistence.NewUnitOfWork(gdb),
		Repos: persistence.NewRepositories(gdb),
		Clock: NewClock(now),
	}
}

// OpenAccount creates a bank account funded by an income row dated at the clock, so
// that the stored balance and the ledger agree from the start.
func (e *Env) OpenAccount(t *testing.T, userID uuid.UUID, opening string) *entity.Account {
	t.Helper()

	account := entity.NewAccount(userID, "Checking", entity.AccountTypeBank)
	amount := decimal.RequireFromString(opening)

	err := e.UoW.Do(context.Background(), func(ctx context.Context, repos adapter.Repositories) error {
		if err := repos.Accounts.Create(ctx, account); err != nil {
			return err
		}
		if amount.IsZero() {
			return nil
		}
		txn := entity.NewTransaction(userID, account.ID, entity.TransactionTypeIncome, amount, e.Clock.Now(), "Opening balance")
		return ledger.Post(ctx, repos, account, txn)
	})
	require.NoError(t, err)
	return account
}

// Balance returns the stored balance of an account after checking that it matches the
// balance derived from the ledger.
func (e *Env) Balance(t *testing.T, accountID uuid.UUID) decimal.Decimal {
	t.Helper()

	account, err := e.Repos.Accounts.FindByID(context.Background(), accountID)
	require.NoError(t, err)

	ledgerBalance, err := e.Repos.Accounts.LedgerBalance(context.Background(), accountID)
	require.NoError(t, err)
	require.True(t, account.Balance.Equal(ledgerBalance), "stored %s, ledger %s", account.Balance, ledgerBalance)

	return account.Balance
}

// Clock is a manually advanced adapter.Clock.
type Clock struct {
	mu  sync.Mutex
	now time.Time
}

// NewClock returns a clock frozen at now.
func NewClock(now time.Time) *Clock {
	return &Clock{now: now.UTC()}
}

// Now returns the frozen time.
func (c *Clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// Set moves the clock to now.
func (c *Clock) Set(now time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = now.UTC()
}

// CountRows counts the rows of table matching the optional where clause.
func CountRows(t *testing.T, gdb *gorm.DB, table string, where ...any) int64 {
	t.Helper()

	query := gdb.WithContext(context.Background()).Table(table)
	if len(where) > 0 {
		query = query.Where(where[0], where[1:]...)
	}
	var count int64
	require.NoError(t, query.Count(&count).Error)
	return count
}

var _ adapter.Clock = (*Clock)(nil)
