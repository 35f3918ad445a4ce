package transaction

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finance-tracker/ledger/internal/domain/entity"
	domainerror "github.com/finance-tracker/ledger/internal/domain/error"
	"github.com/finance-tracker/ledger/internal/integration/persistence/persistencetest"
)

func TestDeleteTransaction_RestoresBalance(t *testing.T) {
	env := persistencetest.NewEnv(t, testNow)
	userID := uuid.New()
	account := env.OpenAccount(t, userID, "500")

	created, err := NewCreateTransactionUseCase(env.UoW, env.Repos.Categories, env.Clock).Execute(context.Background(), CreateTransactionInput{
		UserID:    userID,
		AccountID: account.ID,
		Type:      entity.TransactionTypeExpense,
		Amount:    amount("120"),
	})
	require.NoError(t, err)
	require.True(t, env.Balance(t, account.ID).Equal(amount("380")))

	uc := NewDeleteTransactionUseCase(env.UoW, env.Clock)
	_, err = uc.Execute(context.Background(), DeleteTransactionInput{TransactionID: created.Transaction.ID, UserID: userID})
	require.NoError(t, err)
	assert.True(t, env.Balance(t, account.ID).Equal(amount("500")))

	_, err = uc.Execute(context.Background(), DeleteTransactionInput{TransactionID: created.Transaction.ID, UserID: userID})
	require.Error(t, err)
	assert.Equal(t, string(domainerror.ErrCodeTransactionNotFound), domainerror.CodeOf(err))
}

func TestDeleteTransaction_OtherUserCannotDelete(t *testing.T) {
	env := persistencetest.NewEnv(t, testNow)
	userID := uuid.New()
	account := env.OpenAccount(t, userID, "500")

	created, err := NewCreateTransactionUseCase(env.UoW, env.Repos.Categories, env.Clock).Execute(context.Background(), CreateTransactionInput{
		UserID:    userID,
		AccountID: account.ID,
		Type:      entity.TransactionTypeIncome,
		Amount:    amount("1"),
	})
	require.NoError(t, err)

	_, err = NewDeleteTransactionUseCase(env.UoW, env.Clock).Execute(context.Background(), DeleteTransactionInput{
		TransactionID: created.Transaction.ID,
		UserID:        uuid.New(),
	})

	assert.ErrorIs(t, err, domainerror.ErrTransactionNotFound)
	assert.True(t, env.Balance(t, account.ID).Equal(amount("501")))
}

func TestDeleteTransaction_ReversesTransfer(t *testing.T) {
	env := persistencetest.NewEnv(t, testNow)
	userID := uuid.New()
	from := env.OpenAccount(t, userID, "300")
	to := env.OpenAccount(t, userID, "0")

	transfer, err := NewTransferUseCase(env.UoW, env.Clock).Execute(context.Background(), TransferInput{
		UserID:        userID,
		FromAccountID: from.ID,
		ToAccountID:   to.ID,
		Amount:        amount("75"),
	})
	require.NoError(t, err)

	_, err = NewDeleteTransactionUseCase(env.UoW, env.Clock).Execute(context.Background(), DeleteTransactionInput{
		TransactionID: transfer.Transaction.ID,
		UserID:        userID,
	})
	require.NoError(t, err)

	assert.True(t, env.Balance(t, from.ID).Equal(amount("300")))
	assert.True(t, env.Balance(t, to.ID).Equal(amount("0")))
}
