package persistence

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/finance-tracker/ledger/internal/domain/entity"
	domainerror "github.com/finance-tracker/ledger/internal/domain/error"
)

func newMockPostgres(t *testing.T) (*gorm.DB, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()

	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	dialector := postgres.New(postgres.Config{
		Conn:       mockDB,
		DriverName: "postgres",
	})
	gormDB, err := gorm.Open(dialector, &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	return gormDB, mock, mockDB
}

func accountRows(id, userID uuid.UUID, balance string) *sqlmock.Rows {
	now := time.Date(2024, time.March, 15, 12, 0, 0, 0, time.UTC)
	return sqlmock.NewRows([]string{"id", "user_id", "name", "type", "balance", "is_active", "created_at", "updated_at"}).
		AddRow(id, userID, "Checking", "bank", balance, true, now, now)
}

func TestAccountRepository_FindByIDForUpdate(t *testing.T) {
	t.Run("locks the row on postgres", func(t *testing.T) {
		gormDB, mock, mockDB := newMockPostgres(t)
		defer mockDB.Close()

		id, userID := uuid.New(), uuid.New()
		mock.ExpectQuery(`SELECT \* FROM "accounts" WHERE id = \$1 ORDER BY "accounts"."id" LIMIT .* FOR UPDATE`).
			WillReturnRows(accountRows(id, userID, "1250.75"))

		account, err := NewAccountRepository(gormDB).FindByIDForUpdate(context.Background(), id)

		require.NoError(t, err)
		assert.Equal(t, userID, account.UserID)
		assert.Equal(t, entity.AccountTypeBank, account.Type)
		assert.True(t, account.Balance.Equal(decimal.RequireFromString("1250.75")))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("plain lookup does not lock", func(t *testing.T) {
		gormDB, mock, mockDB := newMockPostgres(t)
		defer mockDB.Close()

		id := uuid.New()
		mock.ExpectQuery(`SELECT \* FROM "accounts" WHERE id = \$1 ORDER BY "accounts"."id" LIMIT \S+$`).
			WillReturnRows(accountRows(id, uuid.New(), "0"))

		_, err := NewAccountRepository(gormDB).FindByID(context.Background(), id)

		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing row maps to not found", func(t *testing.T) {
		gormDB, mock, mockDB := newMockPostgres(t)
		defer mockDB.Close()

		mock.ExpectQuery(`FOR UPDATE`).WillReturnRows(sqlmock.NewRows([]string{"id"}))

		_, err := NewAccountRepository(gormDB).FindByIDForUpdate(context.Background(), uuid.New())

		assert.ErrorIs(t, err, domainerror.ErrAccountNotFound)
	})
}

func TestDebtRepository_FindByIDForUpdate(t *testing.T) {
	gormDB, mock, mockDB := newMockPostgres(t)
	defer mockDB.Close()

	mock.ExpectQuery(`SELECT \* FROM "debts" WHERE id = \$1 AND user_id = \$2 .* FOR UPDATE`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := NewDebtRepository(gormDB).FindByIDForUpdate(context.Background(), uuid.New(), uuid.New())

	assert.ErrorIs(t, err, domainerror.ErrDebtNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAccountRepository_Update(t *testing.T) {
	t.Run("writes balance", func(t *testing.T) {
		gormDB, mock, mockDB := newMockPostgres(t)
		defer mockDB.Close()

		mock.ExpectExec(`UPDATE "accounts" SET .*"balance"=\$1.* WHERE id = \$\d`).
			WillReturnResult(sqlmock.NewResult(0, 1))

		account := &entity.Account{ID: uuid.New(), Balance: decimal.RequireFromString("10"), IsActive: true, UpdatedAt: time.Now()}
		require.NoError(t, NewAccountRepository(gormDB).Update(context.Background(), account))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("no rows maps to not found", func(t *testing.T) {
		gormDB, mock, mockDB := newMockPostgres(t)
		defer mockDB.Close()

		mock.ExpectExec(`UPDATE "accounts"`).WillReturnResult(sqlmock.NewResult(0, 0))

		err := NewAccountRepository(gormDB).Update(context.Background(), &entity.Account{ID: uuid.New(), UpdatedAt: time.Now()})
		assert.ErrorIs(t, err, domainerror.ErrAccountNotFound)
	})
}
