package email

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finance-tracker/ledger/internal/domain/entity"
	domainerror "github.com/finance-tracker/ledger/internal/domain/error"
	"github.com/finance-tracker/ledger/internal/integration/email/templates"
)

func newOverduePayment() *entity.PendingPayment {
	due := time.Date(2024, time.March, 5, 0, 0, 0, 0, time.UTC)
	return entity.NewPendingPayment(
		uuid.New(),
		"Electricity",
		decimal.RequireFromString("80.5"),
		&due,
		entity.PriorityHigh,
		nil,
		nil,
		"alice@example.com",
		time.Date(2024, time.March, 10, 0, 0, 0, 0, time.UTC),
	)
}

func TestReminderService_SendOverdueReminder(t *testing.T) {
	renderer, err := templates.NewRenderer()
	require.NoError(t, err)
	sender := NewMockEmailSender()
	service := NewReminderService(sender, renderer, "https://ledger.example.com")
	payment := newOverduePayment()

	require.NoError(t, service.SendOverdueReminder(context.Background(), payment))

	sent := sender.Sent()
	require.Len(t, sent, 1)
	assert.Equal(t, "alice@example.com", sent[0].To)
	assert.Equal(t, "Payment overdue: Electricity", sent[0].Subject)
	assert.Contains(t, sent[0].Text, "Amount: 80.50")
	assert.Contains(t, sent[0].Text, "Due date: 2024-03-05")
	assert.Contains(t, sent[0].Text, "https://ledger.example.com/pending-payments/"+payment.ID.String())
	assert.Contains(t, sent[0].HTML, "Electricity")
}

func TestReminderService_PropagatesFailureKind(t *testing.T) {
	renderer, err := templates.NewRenderer()
	require.NoError(t, err)

	for _, permanent := range []bool{true, false} {
		sender := NewMockEmailSender()
		sender.SetFailure(errors.New("provider said no"), permanent)
		service := NewReminderService(sender, renderer, "https://ledger.example.com")

		err := service.SendOverdueReminder(context.Background(), newOverduePayment())

		require.Error(t, err)
		assert.Equal(t, permanent, domainerror.IsPermanentEmailFailure(err))
		assert.Empty(t, sender.Sent())
	}
}
