package worker

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finance-tracker/ledger/internal/application/usecase/recurring"
	"github.com/finance-tracker/ledger/internal/application/usecase/sweep"
	"github.com/finance-tracker/ledger/internal/domain/entity"
	"github.com/finance-tracker/ledger/internal/domain/valueobject"
	"github.com/finance-tracker/ledger/internal/integration/email"
	"github.com/finance-tracker/ledger/internal/integration/email/templates"
	"github.com/finance-tracker/ledger/internal/integration/persistence/persistencetest"
)

func newWorker(t *testing.T, env *persistencetest.Env, sender *email.MockEmailSender, config SweepConfig) *SweepWorker {
	t.Helper()

	var reminders *sweep.SendRemindersUseCase
	if sender != nil {
		renderer, err := templates.NewRenderer()
		require.NoError(t, err)
		notifier := email.NewReminderService(sender, renderer, "https://ledger.example.com")
		reminders = sweep.NewSendRemindersUseCase(env.Repos.PendingPayments, notifier, env.UoW, env.Clock)
	}

	return NewSweepWorker(
		sweep.NewRefreshOverdueUseCase(env.Repos.PendingPayments, env.Repos.Debts, env.Repos.Loans, env.UoW, env.Clock),
		recurring.NewChargeDueExpensesUseCase(env.Repos.RecurringExpenses, env.UoW, env.Clock),
		reminders,
		config,
	)
}

func seed(t *testing.T, env *persistencetest.Env) (*entity.Account, *entity.PendingPayment) {
	t.Helper()

	userID := uuid.New()
	account := env.OpenAccount(t, userID, "1000")

	next, err := valueobject.NextChargeDate(valueobject.FrequencyMonthly, 1, env.Clock.Now())
	require.NoError(t, err)
	expense := entity.NewRecurringExpense(userID, account.ID, nil, "Gym", decimal.RequireFromString("30"), valueobject.FrequencyMonthly, 1, next)
	require.NoError(t, env.Repos.RecurringExpenses.Create(context.Background(), expense))

	due := env.Clock.Now().AddDate(0, 0, 3)
	payment := entity.NewPendingPayment(userID, "Tax", decimal.RequireFromString("10"), &due, entity.PriorityLow, nil, nil, "bob@example.com", env.Clock.Now())
	require.NoError(t, env.Repos.PendingPayments.Create(context.Background(), payment))

	return account, payment
}

func TestSweepWorker_RunOnce(t *testing.T) {
	env := persistencetest.NewEnv(t, time.Date(2024, time.January, 20, 9, 0, 0, 0, time.UTC))
	account, payment := seed(t, env)
	sender := email.NewMockEmailSender()
	w := newWorker(t, env, sender, DefaultSweepConfig())

	env.Clock.Set(time.Date(2024, time.February, 2, 9, 0, 0, 0, time.UTC))
	w.RunOnce(context.Background())
	w.RunOnce(context.Background())

	assert.True(t, env.Balance(t, account.ID).Equal(decimal.RequireFromString("970")))
	stored, err := env.Repos.PendingPayments.FindByID(context.Background(), payment.ID, payment.UserID)
	require.NoError(t, err)
	assert.Equal(t, entity.PendingPaymentStatusOverdue, stored.Status)
	require.Len(t, sender.Sent(), 1)
	assert.Equal(t, "bob@example.com", sender.Sent()[0].To)
}

func TestSweepWorker_ChargingDisabledWithoutEmail(t *testing.T) {
	env := persistencetest.NewEnv(t, time.Date(2024, time.January, 20, 9, 0, 0, 0, time.UTC))
	account, payment := seed(t, env)
	config := DefaultSweepConfig()
	config.ChargeEnabled = false
	w := newWorker(t, env, nil, config)

	env.Clock.Set(time.Date(2024, time.February, 2, 9, 0, 0, 0, time.UTC))
	w.RunOnce(context.Background())

	assert.True(t, env.Balance(t, account.ID).Equal(decimal.RequireFromString("1000")))
	stored, err := env.Repos.PendingPayments.FindByID(context.Background(), payment.ID, payment.UserID)
	require.NoError(t, err)
	assert.Equal(t, entity.PendingPaymentStatusOverdue, stored.Status)
	assert.Nil(t, stored.ReminderSentAt)
}

func TestSweepWorker_StartStopsOnCancel(t *testing.T) {
	env := persistencetest.NewEnv(t, time.Date(2024, time.January, 20, 9, 0, 0, 0, time.UTC))
	w := newWorker(t, env, nil, SweepConfig{Interval: time.Millisecond, BatchSize: 10})
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		w.Start(ctx)
		close(done)
	}()
	cancel()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("worker did not stop after cancellation")
	}
}
