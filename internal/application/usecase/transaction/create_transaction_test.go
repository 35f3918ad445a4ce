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

func TestCreateTransaction_MovesBalance(t *testing.T) {
	env := persistencetest.NewEnv(t, testNow)
	userID := uuid.New()
	account := env.OpenAccount(t, userID, "1000")
	uc := NewCreateTransactionUseCase(env.UoW, env.Repos.Categories, env.Clock)

	income, err := uc.Execute(context.Background(), CreateTransactionInput{
		UserID:    userID,
		AccountID: account.ID,
		Type:      entity.TransactionTypeIncome,
		Amount:    amount("250.50"),
	})
	require.NoError(t, err)
	assert.True(t, income.AccountBalance.Equal(amount("1250.50")))
	assert.Equal(t, entity.TruncateToDay(testNow), income.Transaction.TransactionDate)

	expense, err := uc.Execute(context.Background(), CreateTransactionInput{
		UserID:      userID,
		AccountID:   account.ID,
		Type:        entity.TransactionTypeExpense,
		Amount:      amount("2000"),
		Description: "Rent",
	})
	require.NoError(t, err, "expenses may overdraw an account")
	assert.True(t, expense.AccountBalance.Equal(amount("-749.50")))

	assert.True(t, env.Balance(t, account.ID).Equal(amount("-749.50")))
}

func TestCreateTransaction_Rejections(t *testing.T) {
	env := persistencetest.NewEnv(t, testNow)
	userID := uuid.New()
	account := env.OpenAccount(t, userID, "100")
	inactive := env.OpenAccount(t, userID, "0")
	inactive.Deactivate()
	require.NoError(t, env.Repos.Accounts.Update(context.Background(), inactive))
	foreign := env.OpenAccount(t, uuid.New(), "100")
	uc := NewCreateTransactionUseCase(env.UoW, env.Repos.Categories, env.Clock)

	tests := []struct {
		name     string
		input    CreateTransactionInput
		wantCode string
	}{
		{
			name:     "unknown type",
			input:    CreateTransactionInput{AccountID: account.ID, Type: "refund", Amount: amount("1")},
			wantCode: string(domainerror.ErrCodeInvalidTransactionType),
		},
		{
			name:     "subsystem type",
			input:    CreateTransactionInput{AccountID: account.ID, Type: entity.TransactionTypeDebtPayment, Amount: amount("1")},
			wantCode: string(domainerror.ErrCodeTransactionTypeNotDirect),
		},
		{
			name:     "zero amount",
			input:    CreateTransactionInput{AccountID: account.ID, Type: entity.TransactionTypeIncome, Amount: amount("0")},
			wantCode: string(domainerror.ErrCodeInvalidTransactionAmount),
		},
		{
			name:     "sub-cent amount",
			input:    CreateTransactionInput{AccountID: account.ID, Type: entity.TransactionTypeExpense, Amount: amount("0.001")},
			wantCode: string(domainerror.ErrCodeInvalidTransactionAmount),
		},
		{
			name:     "missing account",
			input:    CreateTransactionInput{AccountID: uuid.New(), Type: entity.TransactionTypeIncome, Amount: amount("1")},
			wantCode: string(domainerror.ErrCodeAccountNotFound),
		},
		{
			name:     "account of another user",
			input:    CreateTransactionInput{AccountID: foreign.ID, Type: entity.TransactionTypeIncome, Amount: amount("1")},
			wantCode: string(domainerror.ErrCodeAccountNotFound),
		},
		{
			name:     "inactive account",
			input:    CreateTransactionInput{AccountID: inactive.ID, Type: entity.TransactionTypeIncome, Amount: amount("1")},
			wantCode: string(domainerror.ErrCodeAccountInactive),
		},
		{
			name: "subcategory without category",
			input: CreateTransactionInput{
				AccountID: account.ID, Type: entity.TransactionTypeExpense, Amount: amount("1"),
				SubcategoryID: func() *uuid.UUID { id := uuid.New(); return &id }(),
			},
			wantCode: string(domainerror.ErrCodeSubcategoryMismatch),
		},
		{
			name: "category of another user",
			input: CreateTransactionInput{
				AccountID: account.ID, Type: entity.TransactionTypeExpense, Amount: amount("1"),
				CategoryID: func() *uuid.UUID { id := uuid.New(); return &id }(),
			},
			wantCode: string(domainerror.ErrCodeTxnCategoryNotFound),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.input.UserID = userID

			_, err := uc.Execute(context.Background(), tt.input)

			require.Error(t, err)
			assert.Equal(t, tt.wantCode, domainerror.CodeOf(err))
		})
	}

	assert.True(t, env.Balance(t, account.ID).Equal(amount("100")), "rejected requests leave the balance untouched")
	assert.Equal(t, int64(2), persistencetest.CountRows(t, env.DB, "transactions", "deleted_at IS NULL"))
}
