package account

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finance-tracker/ledger/internal/domain/entity"
	domainerror "github.com/finance-tracker/ledger/internal/domain/error"
	"github.com/finance-tracker/ledger/internal/integration/persistence/persistencetest"
)

var testNow = time.Date(2024, time.March, 15, 12, 0, 0, 0, time.UTC)

func amount(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestCreateAccount_PostsOpeningBalance(t *testing.T) {
	tests := []struct {
		name        string
		accountType entity.AccountType
		opening     string
		expType     entity.TransactionType
		expRows     int64
	}{
		{name: "positive opening", accountType: entity.AccountTypeBank, opening: "1500.25", expType: entity.TransactionTypeIncome, expRows: 1},
		{name: "credit opens in debt", accountType: entity.AccountTypeCredit, opening: "-300", expType: entity.TransactionTypeExpense, expRows: 1},
		{name: "zero opening", accountType: entity.AccountTypeCash, opening: "0", expRows: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := persistencetest.NewEnv(t, testNow)
			uc := NewCreateAccountUseCase(env.UoW, env.Clock)

			output, err := uc.Execute(context.Background(), CreateAccountInput{
				UserID:         uuid.New(),
				Name:           "  Wallet  ",
				Type:           tt.accountType,
				OpeningBalance: amount(tt.opening),
			})
			require.NoError(t, err)

			assert.Equal(t, "Wallet", output.Account.Name)
			assert.True(t, env.Balance(t, output.Account.ID).Equal(amount(tt.opening)))
			assert.Equal(t, tt.expRows, persistencetest.CountRows(t, env.DB, "transactions", "account_id = ?", output.Account.ID))
			if tt.expRows == 0 {
				assert.Nil(t, output.OpeningTransaction)
				return
			}
			require.NotNil(t, output.OpeningTransaction)
			assert.Equal(t, tt.expType, output.OpeningTransaction.Type)
			assert.Equal(t, OpeningBalanceDescription, output.OpeningTransaction.Description)
		})
	}
}

func TestCreateAccount_Rejections(t *testing.T) {
	tests := []struct {
		name    string
		input   CreateAccountInput
		expCode domainerror.AccountErrorCode
	}{
		{
			name:    "blank name",
			input:   CreateAccountInput{Name: "   ", Type: entity.AccountTypeBank},
			expCode: domainerror.ErrCodeAccountNameRequired,
		},
		{
			name:    "unknown type",
			input:   CreateAccountInput{Name: "Crypto", Type: entity.AccountType("crypto")},
			expCode: domainerror.ErrCodeInvalidAccountType,
		},
		{
			name:    "sub-cent opening balance",
			input:   CreateAccountInput{Name: "Savings", Type: entity.AccountTypeSavings, OpeningBalance: amount("10.001")},
			expCode: domainerror.ErrCodeOpeningBalancePrecision,
		},
		{
			name:    "negative opening on debit account",
			input:   CreateAccountInput{Name: "Debit", Type: entity.AccountTypeDebit, OpeningBalance: amount("-1")},
			expCode: domainerror.ErrCodeNegativeOpeningBalance,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := persistencetest.NewEnv(t, testNow)
			tt.input.UserID = uuid.New()

			_, err := NewCreateAccountUseCase(env.UoW, env.Clock).Execute(context.Background(), tt.input)

			require.Error(t, err)
			assert.Equal(t, string(tt.expCode), domainerror.CodeOf(err))
			assert.Equal(t, domainerror.KindValidation, domainerror.KindOf(err))
			assert.Zero(t, persistencetest.CountRows(t, env.DB, "accounts"))
		})
	}
}

func TestGetAccount_Reconciliation(t *testing.T) {
	env := persistencetest.NewEnv(t, testNow)
	userID := uuid.New()
	account := env.OpenAccount(t, userID, "200")
	uc := NewGetAccountUseCase(env.Repos.Accounts)

	inSync, err := uc.Execute(context.Background(), GetAccountInput{UserID: userID, AccountID: account.ID})
	require.NoError(t, err)
	assert.True(t, inSync.Reconciliation.InSync())

	require.NoError(t, env.DB.Table("accounts").Where("id = ?", account.ID).Update("balance", "250").Error)

	drifted, err := uc.Execute(context.Background(), GetAccountInput{UserID: userID, AccountID: account.ID})
	require.NoError(t, err)
	assert.False(t, drifted.Reconciliation.InSync())
	assert.True(t, drifted.Reconciliation.StoredBalance.Equal(amount("250")))
	assert.True(t, drifted.Reconciliation.LedgerBalance.Equal(amount("200")))

	_, err = uc.Execute(context.Background(), GetAccountInput{UserID: uuid.New(), AccountID: account.ID})
	assert.ErrorIs(t, err, domainerror.ErrAccountNotFound)
}

func TestDeactivateAccount(t *testing.T) {
	env := persistencetest.NewEnv(t, testNow)
	userID := uuid.New()
	account := env.OpenAccount(t, userID, "50")
	uc := NewDeactivateAccountUseCase(env.UoW)

	_, err := uc.Execute(context.Background(), DeactivateAccountInput{UserID: uuid.New(), AccountID: account.ID})
	assert.Equal(t, domainerror.KindNotFound, domainerror.KindOf(err))

	output, err := uc.Execute(context.Background(), DeactivateAccountInput{UserID: userID, AccountID: account.ID})
	require.NoError(t, err)
	assert.False(t, output.Account.IsActive)

	_, err = uc.Execute(context.Background(), DeactivateAccountInput{UserID: userID, AccountID: account.ID})
	assert.Equal(t, string(domainerror.ErrCodeAccountInactive), domainerror.CodeOf(err))

	list := NewListAccountsUseCase(env.Repos.Accounts)
	active, err := list.Execute(context.Background(), ListAccountsInput{UserID: userID})
	require.NoError(t, err)
	assert.Empty(t, active.Accounts)

	all, err := list.Execute(context.Background(), ListAccountsInput{UserID: userID, IncludeInactive: true})
	require.NoError(t, err)
	require.Len(t, all.Accounts, 1)
	assert.True(t, all.Accounts[0].Balance.Equal(amount("50")))
}
