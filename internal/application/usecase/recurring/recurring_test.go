package recurring

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
	"github.com/finance-tracker/ledger/internal/domain/valueobject"
	"github.com/finance-tracker/ledger/internal/integration/persistence/persistencetest"
)

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}

func amount(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func createExpense(t *testing.T, env *persistencetest.Env, userID, accountID uuid.UUID, frequency valueobject.Frequency, chargeDay int) *entity.RecurringExpense {
	t.Helper()

	output, err := NewCreateRecurringExpenseUseCase(env.Repos.RecurringExpenses, env.Repos.Accounts, env.Repos.Categories, env.Clock).
		Execute(context.Background(), CreateRecurringExpenseInput{
			UserID:    userID,
			AccountID: accountID,
			Name:      "Rent",
			Amount:    amount("800"),
			Frequency: frequency,
			ChargeDay: chargeDay,
		})
	require.NoError(t, err)
	return output.RecurringExpense
}

func TestCreateRecurringExpense_Schedule(t *testing.T) {
	env := persistencetest.NewEnv(t, time.Date(2024, time.February, 10, 12, 0, 0, 0, time.UTC))
	userID := uuid.New()
	account := env.OpenAccount(t, userID, "0")
	uc := NewCreateRecurringExpenseUseCase(env.Repos.RecurringExpenses, env.Repos.Accounts, env.Repos.Categories, env.Clock)

	tests := []struct {
		name      string
		frequency valueobject.Frequency
		chargeDay int
		wantNext  time.Time
		wantCode  string
	}{
		{name: "monthly clamps to month end", frequency: valueobject.FrequencyMonthly, chargeDay: 31, wantNext: day(2024, time.February, 29)},
		{name: "weekly on sunday", frequency: valueobject.FrequencyWeekly, chargeDay: 7, wantNext: day(2024, time.February, 11)},
		{name: "weekly day out of range", frequency: valueobject.FrequencyWeekly, chargeDay: 8, wantCode: string(domainerror.ErrCodeChargeDayOutOfRange)},
		{name: "monthly day zero", frequency: valueobject.FrequencyMonthly, chargeDay: 0, wantCode: string(domainerror.ErrCodeChargeDayOutOfRange)},
		{name: "unknown frequency", frequency: "daily", chargeDay: 1, wantCode: string(domainerror.ErrCodeInvalidFrequency)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			output, err := uc.Execute(context.Background(), CreateRecurringExpenseInput{
				UserID:    userID,
				AccountID: account.ID,
				Name:      "Gym",
				Amount:    amount("30"),
				Frequency: tt.frequency,
				ChargeDay: tt.chargeDay,
			})

			if tt.wantCode != "" {
				require.Error(t, err)
				assert.Equal(t, tt.wantCode, domainerror.CodeOf(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantNext, output.RecurringExpense.NextChargeDate)
		})
	}
}

func TestCreateRecurringExpense_RejectsSubCentAmount(t *testing.T) {
	env := persistencetest.NewEnv(t, time.Date(2024, time.February, 10, 12, 0, 0, 0, time.UTC))
	userID := uuid.New()
	account := env.OpenAccount(t, userID, "0")

	_, err := NewCreateRecurringExpenseUseCase(env.Repos.RecurringExpenses, env.Repos.Accounts, env.Repos.Categories, env.Clock).Execute(context.Background(), CreateRecurringExpenseInput{
		UserID:    userID,
		AccountID: account.ID,
		Name:      "Gym",
		Amount:    amount("29.999"),
		Frequency: valueobject.FrequencyMonthly,
		ChargeDay: 1,
	})

	require.Error(t, err)
	assert.Equal(t, string(domainerror.ErrCodeInvalidRecurringAmount), domainerror.CodeOf(err))
	assert.Equal(t, int64(0), persistencetest.CountRows(t, env.DB, "recurring_expenses", "user_id = ?", userID))
}

func TestChargeDueExpenses_ChargesEachPeriodOnce(t *testing.T) {
	env := persistencetest.NewEnv(t, time.Date(2024, time.February, 10, 12, 0, 0, 0, time.UTC))
	userID := uuid.New()
	account := env.OpenAccount(t, userID, "2000")
	expense := createExpense(t, env, userID, account.ID, valueobject.FrequencyMonthly, 31)
	uc := NewChargeDueExpensesUseCase(env.Repos.RecurringExpenses, env.UoW, env.Clock)

	env.Clock.Set(time.Date(2024, time.March, 1, 12, 0, 0, 0, time.UTC))
	first, err := uc.Execute(context.Background(), ChargeDueExpensesInput{BatchSize: 10})
	require.NoError(t, err)
	assert.Equal(t, 1, first.Charged)
	assert.Zero(t, first.Failed)

	second, err := uc.Execute(context.Background(), ChargeDueExpensesInput{BatchSize: 10})
	require.NoError(t, err)
	assert.Zero(t, second.Charged)

	stored, err := env.Repos.RecurringExpenses.FindByID(context.Background(), expense.ID, userID)
	require.NoError(t, err)
	require.NotNil(t, stored.LastChargeDate)
	assert.Equal(t, day(2024, time.February, 29), stored.LastChargeDate.UTC())
	assert.Equal(t, day(2024, time.March, 31), stored.NextChargeDate.UTC())
	assert.True(t, env.Balance(t, account.ID).Equal(amount("1200")))
}

func TestChargeDueExpenses_CatchesUpMissedPeriods(t *testing.T) {
	env := persistencetest.NewEnv(t, time.Date(2024, time.January, 2, 12, 0, 0, 0, time.UTC))
	userID := uuid.New()
	account := env.OpenAccount(t, userID, "0")
	createExpense(t, env, userID, account.ID, valueobject.FrequencyMonthly, 1)

	env.Clock.Set(time.Date(2024, time.April, 15, 12, 0, 0, 0, time.UTC))
	output, err := NewChargeDueExpensesUseCase(env.Repos.RecurringExpenses, env.UoW, env.Clock).
		Execute(context.Background(), ChargeDueExpensesInput{BatchSize: 10})

	require.NoError(t, err)
	assert.Equal(t, 3, output.Charged, "february, march and april")
	assert.True(t, env.Balance(t, account.ID).Equal(amount("-2400")))
}

func TestChargeRecurringExpense_PausedAndResumed(t *testing.T) {
	env := persistencetest.NewEnv(t, time.Date(2024, time.February, 10, 12, 0, 0, 0, time.UTC))
	userID := uuid.New()
	account := env.OpenAccount(t, userID, "1000")
	expense := createExpense(t, env, userID, account.ID, valueobject.FrequencyMonthly, 15)
	status := NewUpdateRecurringStatusUseCase(env.UoW, env.Clock)
	charge := NewChargeRecurringExpenseUseCase(env.UoW)

	_, err := status.Execute(context.Background(), UpdateRecurringStatusInput{UserID: userID, RecurringExpenseID: expense.ID, Status: entity.RecurringStatusPaused})
	require.NoError(t, err)

	_, err = charge.Execute(context.Background(), ChargeRecurringExpenseInput{UserID: userID, RecurringExpenseID: expense.ID})
	require.Error(t, err)
	assert.Equal(t, string(domainerror.ErrCodeRecurringNotActive), domainerror.CodeOf(err))

	env.Clock.Set(time.Date(2024, time.May, 20, 12, 0, 0, 0, time.UTC))
	resumed, err := status.Execute(context.Background(), UpdateRecurringStatusInput{UserID: userID, RecurringExpenseID: expense.ID, Status: entity.RecurringStatusActive})
	require.NoError(t, err)
	assert.Equal(t, day(2024, time.June, 15), resumed.RecurringExpense.NextChargeDate, "missed periods are skipped")

	charged, err := charge.Execute(context.Background(), ChargeRecurringExpenseInput{UserID: userID, RecurringExpenseID: expense.ID})
	require.NoError(t, err)
	assert.Equal(t, day(2024, time.June, 15), charged.Transaction.TransactionDate)
	assert.Equal(t, day(2024, time.July, 15), charged.RecurringExpense.NextChargeDate)
	assert.True(t, charged.AccountBalance.Equal(amount("200")))
}

func TestUpdateRecurringStatus_CancelledIsTerminal(t *testing.T) {
	env := persistencetest.NewEnv(t, time.Date(2024, time.February, 10, 12, 0, 0, 0, time.UTC))
	userID := uuid.New()
	account := env.OpenAccount(t, userID, "0")
	expense := createExpense(t, env, userID, account.ID, valueobject.FrequencyAnnual, 45)
	uc := NewUpdateRecurringStatusUseCase(env.UoW, env.Clock)

	_, err := uc.Execute(context.Background(), UpdateRecurringStatusInput{UserID: userID, RecurringExpenseID: expense.ID, Status: entity.RecurringStatusCancelled})
	require.NoError(t, err)

	_, err = uc.Execute(context.Background(), UpdateRecurringStatusInput{UserID: userID, RecurringExpenseID: expense.ID, Status: entity.RecurringStatusActive})
	require.Error(t, err)
	assert.Equal(t, string(domainerror.ErrCodeRecurringCancelled), domainerror.CodeOf(err))

	_, err = uc.Execute(context.Background(), UpdateRecurringStatusInput{UserID: userID, RecurringExpenseID: expense.ID, Status: "stopped"})
	require.Error(t, err)
	assert.Equal(t, string(domainerror.ErrCodeInvalidRecurringStatus), domainerror.CodeOf(err))
}
