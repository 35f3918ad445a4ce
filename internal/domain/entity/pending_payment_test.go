package entity

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPendingPayment_StatusLifecycle(t *testing.T) {
	due := date(2024, time.March, 5)
	payment := NewPendingPayment(uuid.New(), "Electricity", dec("80"), &due, PriorityHigh, nil, nil, "alice@example.com", date(2024, time.March, 1))
	assert.Equal(t, PendingPaymentStatusPending, payment.Status)
	assert.False(t, payment.NeedsReminder())

	assert.Equal(t, PendingPaymentStatusOverdue, payment.EffectiveStatus(date(2024, time.March, 6)))
	assert.Equal(t, PendingPaymentStatusPending, payment.Status)

	assert.True(t, payment.RefreshStatus(date(2024, time.March, 6)))
	assert.Equal(t, PendingPaymentStatusOverdue, payment.Status)
	assert.True(t, payment.NeedsReminder())
	assert.True(t, payment.IsOpen())

	payment.MarkReminded(date(2024, time.March, 6))
	assert.False(t, payment.NeedsReminder())

	txnID := uuid.New()
	payment.MarkPaid(txnID, date(2024, time.March, 7))
	assert.Equal(t, PendingPaymentStatusPaid, payment.Status)
	require.NotNil(t, payment.TransactionID)
	assert.Equal(t, txnID, *payment.TransactionID)
	assert.False(t, payment.IsOpen())
	assert.False(t, payment.RefreshStatus(date(2024, time.April, 1)), "paid payments never become overdue")
}

func TestPendingPayment_CreatedPastDue(t *testing.T) {
	due := date(2024, time.January, 1)

	payment := NewPendingPayment(uuid.New(), "Tax", dec("10"), &due, PriorityLow, nil, nil, "", date(2024, time.March, 1))

	assert.Equal(t, PendingPaymentStatusOverdue, payment.Status)
	assert.False(t, payment.NeedsReminder(), "no reminder without an address")
}

func TestPendingPayment_WithoutDueDateNeverOverdue(t *testing.T) {
	payment := NewPendingPayment(uuid.New(), "Sofa", dec("10"), nil, PriorityMedium, nil, nil, "", date(2024, time.March, 1))

	assert.False(t, payment.RefreshStatus(date(2030, time.January, 1)))
	payment.Cancel()
	assert.Equal(t, PendingPaymentStatusCancelled, payment.Status)
}
