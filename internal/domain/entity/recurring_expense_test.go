package entity

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finance-tracker/ledger/internal/domain/valueobject"
)

func newMonthlyRent(next time.Time) *RecurringExpense {
	return NewRecurringExpense(uuid.New(), uuid.New(), nil, "Rent", dec("800"), valueobject.FrequencyMonthly, 31, next)
}

func TestRecurringExpense_MarkCharged(t *testing.T) {
	expense := newMonthlyRent(date(2024, time.February, 29))

	assert.False(t, expense.IsDue(date(2024, time.February, 28)))
	assert.True(t, expense.IsDue(time.Date(2024, time.February, 29, 18, 0, 0, 0, time.UTC)))

	require.NoError(t, expense.MarkCharged())
	require.NotNil(t, expense.LastChargeDate)
	assert.Equal(t, date(2024, time.February, 29), *expense.LastChargeDate)
	assert.Equal(t, date(2024, time.March, 31), expense.NextChargeDate)
	assert.False(t, expense.IsDue(date(2024, time.March, 1)))
}

func TestRecurringExpense_Transitions(t *testing.T) {
	tests := []struct {
		name string
		from RecurringStatus
		to   RecurringStatus
		want bool
	}{
		{name: "pause active", from: RecurringStatusActive, to: RecurringStatusPaused, want: true},
		{name: "resume paused", from: RecurringStatusPaused, to: RecurringStatusActive, want: true},
		{name: "cancel paused", from: RecurringStatusPaused, to: RecurringStatusCancelled, want: true},
		{name: "activate active", from: RecurringStatusActive, to: RecurringStatusActive, want: false},
		{name: "resume cancelled", from: RecurringStatusCancelled, to: RecurringStatusActive, want: false},
		{name: "cancel cancelled", from: RecurringStatusCancelled, to: RecurringStatusCancelled, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			expense := &RecurringExpense{Status: tt.from}
			assert.Equal(t, tt.want, expense.CanTransitionTo(tt.to))
		})
	}
}

func TestRecurringExpense_ResumeReschedulesFromToday(t *testing.T) {
	expense := newMonthlyRent(date(2024, time.January, 31))
	require.NoError(t, expense.SetStatus(RecurringStatusPaused, date(2024, time.January, 10)))
	assert.False(t, expense.IsDue(date(2024, time.May, 1)), "paused expenses are never due")

	require.NoError(t, expense.SetStatus(RecurringStatusActive, date(2024, time.May, 10)))

	assert.Equal(t, RecurringStatusActive, expense.Status)
	assert.Equal(t, date(2024, time.May, 31), expense.NextChargeDate)
}
