package debt

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finance-tracker/ledger/internal/application/usecase/transaction"
	"github.com/finance-tracker/ledger/internal/domain/entity"
	domainerror "github.com/finance-tracker/ledger/internal/domain/error"
	"github.com/finance-tracker/ledger/internal/integration/persistence/persistencetest"
)

var testNow = time.Date(2024, time.March, 15, 12, 0, 0, 0, time.UTC)

func amount(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func createDebt(t *testing.T, env *persistencetest.Env, userID uuid.UUID, original string, installments *int) *entity.Debt {
	t.Helper()

	output, err := NewCreateDebtUseCase(env.Repos.Debts, env.Clock).Execute(context.Background(), CreateDebtInput{
		UserID:           userID,
		Name:             "Car loan",
		Creditor:         "Bank",
		OriginalAmount:   amount(original),
		InstallmentCount: installments,
	})
	require.NoError(t, err)
	return output.Debt
}

func TestPayDebt_CapsAtRemaining(t *testing.T) {
	env := persistencetest.NewEnv(t, testNow)
	userID := uuid.New()
	account := env.OpenAccount(t, userID, "2000")
	debt := createDebt(t, env, userID, "1000", nil)
	uc := NewPayDebtUseCase(env.UoW, env.Clock)

	first, err := uc.Execute(context.Background(), PayDebtInput{UserID: userID, DebtID: debt.ID, AccountID: account.ID, Amount: amount("400")})
	require.NoError(t, err)
	assert.True(t, first.AppliedAmount.Equal(amount("400")))
	assert.Equal(t, entity.DebtStatusActive, first.Debt.Status)

	second, err := uc.Execute(context.Background(), PayDebtInput{UserID: userID, DebtID: debt.ID, AccountID: account.ID, Amount: amount("700")})
	require.NoError(t, err)
	assert.True(t, second.AppliedAmount.Equal(amount("600")))
	assert.True(t, second.OverpaymentAmount.Equal(amount("100")))
	assert.True(t, second.Debt.RemainingAmount.IsZero())
	assert.Equal(t, entity.DebtStatusPaid, second.Debt.Status)
	assert.True(t, second.Transaction.Amount.Equal(amount("600")), "only the applied part is debited")

	assert.True(t, env.Balance(t, account.ID).Equal(amount("1000")))

	_, err = uc.Execute(context.Background(), PayDebtInput{UserID: userID, DebtID: debt.ID, AccountID: account.ID, Amount: amount("1")})
	require.Error(t, err)
	assert.Equal(t, string(domainerror.ErrCodeDebtAlreadyPaid), domainerror.CodeOf(err))
	assert.Equal(t, domainerror.KindInvalidState, domainerror.KindOf(err))
}

func TestPayDebt_OverpaymentOnPartlyPaidDebt(t *testing.T) {
	env := persistencetest.NewEnv(t, testNow)
	userID := uuid.New()
	account := env.OpenAccount(t, userID, "1000")
	debt := createDebt(t, env, userID, "1000", nil)
	uc := NewPayDebtUseCase(env.UoW, env.Clock)

	_, err := uc.Execute(context.Background(), PayDebtInput{UserID: userID, DebtID: debt.ID, AccountID: account.ID, Amount: amount("700")})
	require.NoError(t, err)

	output, err := uc.Execute(context.Background(), PayDebtInput{UserID: userID, DebtID: debt.ID, AccountID: account.ID, Amount: amount("500")})
	require.NoError(t, err)

	assert.True(t, output.AppliedAmount.Equal(amount("300")), "got %s", output.AppliedAmount)
	assert.True(t, output.OverpaymentAmount.Equal(amount("200")), "got %s", output.OverpaymentAmount)
	assert.True(t, output.Debt.RemainingAmount.IsZero())
	assert.Equal(t, entity.DebtStatusPaid, output.Debt.Status)
	assert.True(t, output.AccountBalance.Equal(amount("0")))
	assert.True(t, env.Balance(t, account.ID).Equal(amount("0")))
}

func TestPayDebt_Rejections(t *testing.T) {
	env := persistencetest.NewEnv(t, testNow)
	userID := uuid.New()
	account := env.OpenAccount(t, userID, "100")
	foreignAccount := env.OpenAccount(t, uuid.New(), "100")
	debt := createDebt(t, env, userID, "50", nil)
	uc := NewPayDebtUseCase(env.UoW, env.Clock)

	tests := []struct {
		name     string
		input    PayDebtInput
		wantCode string
	}{
		{
			name:     "zero amount",
			input:    PayDebtInput{DebtID: debt.ID, AccountID: account.ID, Amount: amount("0")},
			wantCode: string(domainerror.ErrCodeInvalidDebtPayment),
		},
		{
			name:     "sub-cent amount",
			input:    PayDebtInput{DebtID: debt.ID, AccountID: account.ID, Amount: amount("0.001")},
			wantCode: string(domainerror.ErrCodeInvalidDebtPayment),
		},
		{
			name:     "fractional cents",
			input:    PayDebtInput{DebtID: debt.ID, AccountID: account.ID, Amount: amount("10.004")},
			wantCode: string(domainerror.ErrCodeInvalidDebtPayment),
		},
		{
			name:     "missing debt",
			input:    PayDebtInput{DebtID: uuid.New(), AccountID: account.ID, Amount: amount("10")},
			wantCode: string(domainerror.ErrCodeDebtNotFound),
		},
		{
			name:     "account of another user",
			input:    PayDebtInput{DebtID: debt.ID, AccountID: foreignAccount.ID, Amount: amount("10")},
			wantCode: string(domainerror.ErrCodeDebtInvalidAccount),
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

	stored, err := env.Repos.Debts.FindByID(context.Background(), debt.ID, userID)
	require.NoError(t, err)
	assert.True(t, stored.RemainingAmount.Equal(amount("50")))
	assert.True(t, env.Balance(t, account.ID).Equal(amount("100")))
}

func TestPayDebt_AllocatesInstallments(t *testing.T) {
	env := persistencetest.NewEnv(t, testNow)
	userID := uuid.New()
	account := env.OpenAccount(t, userID, "1000")
	count := 3
	debt := createDebt(t, env, userID, "300", &count)

	_, err := NewPayDebtUseCase(env.UoW, env.Clock).Execute(context.Background(), PayDebtInput{
		UserID:    userID,
		DebtID:    debt.ID,
		AccountID: account.ID,
		Amount:    amount("150"),
	})
	require.NoError(t, err)

	details, err := NewGetDebtUseCase(env.Repos.Debts, env.Repos.Transactions, env.Clock).Execute(context.Background(), GetDebtInput{
		UserID: userID,
		DebtID: debt.ID,
	})
	require.NoError(t, err)
	require.NotNil(t, details.Details.Installments)
	assert.Equal(t, 3, details.Details.Installments.Total)
	assert.Equal(t, 1, details.Details.Installments.Paid)
	assert.True(t, details.Details.Installments.NextAmount.Equal(amount("50")))
	assert.True(t, details.Details.LedgerRemaining.Equal(amount("150")))
	assert.Equal(t, 1, details.Details.Payments.Count)
}

func TestDeleteDebtPayment_RestoresDebt(t *testing.T) {
	env := persistencetest.NewEnv(t, testNow)
	userID := uuid.New()
	account := env.OpenAccount(t, userID, "500")
	debt := createDebt(t, env, userID, "200", nil)

	paid, err := NewPayDebtUseCase(env.UoW, env.Clock).Execute(context.Background(), PayDebtInput{
		UserID:    userID,
		DebtID:    debt.ID,
		AccountID: account.ID,
		Amount:    amount("200"),
	})
	require.NoError(t, err)
	require.Equal(t, entity.DebtStatusPaid, paid.Debt.Status)

	_, err = transaction.NewDeleteTransactionUseCase(env.UoW, env.Clock).Execute(context.Background(), transaction.DeleteTransactionInput{
		TransactionID: paid.Transaction.ID,
		UserID:        userID,
	})
	require.NoError(t, err)

	stored, err := env.Repos.Debts.FindByID(context.Background(), debt.ID, userID)
	require.NoError(t, err)
	assert.True(t, stored.RemainingAmount.Equal(amount("200")))
	assert.Equal(t, entity.DebtStatusActive, stored.Status)
	assert.True(t, env.Balance(t, account.ID).Equal(amount("500")))
}
