package loan

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

func createLoan(t *testing.T, env *persistencetest.Env, userID uuid.UUID, original string) *entity.Loan {
	t.Helper()

	output, err := NewCreateLoanUseCase(env.Repos.Loans, env.Clock).Execute(context.Background(), CreateLoanInput{
		UserID:         userID,
		Name:           "Loan to Bob",
		Borrower:       "Bob",
		OriginalAmount: amount(original),
	})
	require.NoError(t, err)
	return output.Loan
}

func TestPayLoan_CreditsAccount(t *testing.T) {
	env := persistencetest.NewEnv(t, testNow)
	userID := uuid.New()
	account := env.OpenAccount(t, userID, "1000")
	loan := createLoan(t, env, userID, "300")
	uc := NewPayLoanUseCase(env.UoW, env.Clock)

	partial, err := uc.Execute(context.Background(), PayLoanInput{UserID: userID, LoanID: loan.ID, AccountID: account.ID, Amount: amount("100")})
	require.NoError(t, err)
	assert.Equal(t, entity.LoanStatusPartial, partial.Loan.Status)
	assert.True(t, partial.AccountBalance.Equal(amount("1100")))

	paid, err := uc.Execute(context.Background(), PayLoanInput{UserID: userID, LoanID: loan.ID, AccountID: account.ID, Amount: amount("250")})
	require.NoError(t, err)
	assert.Equal(t, entity.LoanStatusPaid, paid.Loan.Status)
	assert.True(t, paid.AppliedAmount.Equal(amount("200")))
	assert.True(t, paid.OverpaymentAmount.Equal(amount("50")))
	assert.True(t, env.Balance(t, account.ID).Equal(amount("1300")))

	_, err = uc.Execute(context.Background(), PayLoanInput{UserID: userID, LoanID: loan.ID, AccountID: account.ID, Amount: amount("1")})
	require.Error(t, err)
	assert.Equal(t, string(domainerror.ErrCodeLoanAlreadyPaid), domainerror.CodeOf(err))
}

func TestPayLoan_RejectsSubCentAmount(t *testing.T) {
	env := persistencetest.NewEnv(t, testNow)
	userID := uuid.New()
	account := env.OpenAccount(t, userID, "1000")
	loan := createLoan(t, env, userID, "300")

	_, err := NewPayLoanUseCase(env.UoW, env.Clock).Execute(context.Background(), PayLoanInput{
		UserID:    userID,
		LoanID:    loan.ID,
		AccountID: account.ID,
		Amount:    amount("0.001"),
	})

	require.Error(t, err)
	assert.Equal(t, string(domainerror.ErrCodeInvalidLoanPayment), domainerror.CodeOf(err))
	assert.True(t, env.Balance(t, account.ID).Equal(amount("1000")))

	stored, err := env.Repos.Loans.FindByID(context.Background(), loan.ID, userID)
	require.NoError(t, err)
	assert.True(t, stored.RemainingAmount.Equal(amount("300")))
}

func TestDeleteLoanPayment_RestoresLoan(t *testing.T) {
	env := persistencetest.NewEnv(t, testNow)
	userID := uuid.New()
	account := env.OpenAccount(t, userID, "0")
	loan := createLoan(t, env, userID, "300")

	received, err := NewPayLoanUseCase(env.UoW, env.Clock).Execute(context.Background(), PayLoanInput{
		UserID:    userID,
		LoanID:    loan.ID,
		AccountID: account.ID,
		Amount:    amount("100"),
	})
	require.NoError(t, err)

	_, err = transaction.NewDeleteTransactionUseCase(env.UoW, env.Clock).Execute(context.Background(), transaction.DeleteTransactionInput{
		TransactionID: received.Transaction.ID,
		UserID:        userID,
	})
	require.NoError(t, err)

	stored, err := env.Repos.Loans.FindByID(context.Background(), loan.ID, userID)
	require.NoError(t, err)
	assert.True(t, stored.RemainingAmount.Equal(amount("300")))
	assert.Equal(t, entity.LoanStatusActive, stored.Status)
	assert.True(t, env.Balance(t, account.ID).IsZero())
}
