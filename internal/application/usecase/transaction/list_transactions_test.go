package transaction

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finance-tracker/ledger/internal/domain/entity"
	domainerror "github.com/finance-tracker/ledger/internal/domain/error"
	"github.com/finance-tracker/ledger/internal/integration/persistence/persistencetest"
)

func TestListTransactions_Filters(t *testing.T) {
	env := persistencetest.NewEnv(t, testNow)
	userID := uuid.New()
	account := env.OpenAccount(t, userID, "1000")
	other := env.OpenAccount(t, userID, "0")
	env.OpenAccount(t, uuid.New(), "75")

	create := NewCreateTransactionUseCase(env.UoW, env.Repos.Categories, env.Clock)
	for _, day := range []int{1, 10} {
		date := time.Date(2024, time.March, day, 0, 0, 0, 0, time.UTC)
		_, err := create.Execute(context.Background(), CreateTransactionInput{
			UserID: userID, AccountID: account.ID, Type: entity.TransactionTypeExpense, Amount: amount("10"), Date: &date,
		})
		require.NoError(t, err)
	}
	_, err := create.Execute(context.Background(), CreateTransactionInput{
		UserID: userID, AccountID: other.ID, Type: entity.TransactionTypeIncome, Amount: amount("5"),
	})
	require.NoError(t, err)

	start := time.Date(2024, time.March, 5, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, time.March, 12, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		input    ListTransactionsInput
		expCount int
		expTotal int64
	}{
		{name: "all of the user", input: ListTransactionsInput{}, expCount: 4, expTotal: 4},
		{name: "one account", input: ListTransactionsInput{AccountID: &account.ID}, expCount: 3, expTotal: 3},
		{name: "expenses only", input: ListTransactionsInput{Types: []entity.TransactionType{entity.TransactionTypeExpense}}, expCount: 2, expTotal: 2},
		{name: "date range", input: ListTransactionsInput{StartDate: &start, EndDate: &end}, expCount: 1, expTotal: 1},
		{name: "paged", input: ListTransactionsInput{Limit: 3, Page: 2}, expCount: 1, expTotal: 4},
	}

	uc := NewListTransactionsUseCase(env.Repos.Transactions)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.input.UserID = userID

			output, err := uc.Execute(context.Background(), tt.input)

			require.NoError(t, err)
			assert.Len(t, output.Transactions, tt.expCount)
			assert.Equal(t, tt.expTotal, output.Pagination.Total)
			for _, txn := range output.Transactions {
				assert.Equal(t, userID, txn.UserID)
			}
		})
	}
}

func TestListTransactions_Pagination(t *testing.T) {
	env := persistencetest.NewEnv(t, testNow)
	uc := NewListTransactionsUseCase(env.Repos.Transactions)

	output, err := uc.Execute(context.Background(), ListTransactionsInput{UserID: uuid.New(), Page: 0, Limit: 500})

	require.NoError(t, err)
	assert.Equal(t, 1, output.Pagination.Page)
	assert.Equal(t, 100, output.Pagination.Limit)
	assert.Zero(t, output.Pagination.TotalPages)
}

func TestListTransactions_Rejections(t *testing.T) {
	env := persistencetest.NewEnv(t, testNow)
	uc := NewListTransactionsUseCase(env.Repos.Transactions)
	start := testNow
	end := testNow.AddDate(0, 0, -1)

	_, err := uc.Execute(context.Background(), ListTransactionsInput{UserID: uuid.New(), Types: []entity.TransactionType{"refund"}})
	assert.Equal(t, string(domainerror.ErrCodeInvalidTransactionType), domainerror.CodeOf(err))

	_, err = uc.Execute(context.Background(), ListTransactionsInput{UserID: uuid.New(), StartDate: &start, EndDate: &end})
	assert.Equal(t, string(domainerror.ErrCodeInvalidDateRange), domainerror.CodeOf(err))
}
