package valueobject

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainerror "github.com/finance-tracker/ledger/internal/domain/error"
)

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}

func TestValidateChargeDay(t *testing.T) {
	tests := []struct {
		name      string
		frequency Frequency
		chargeDay int
		wantErr   error
	}{
		{name: "weekly monday", frequency: FrequencyWeekly, chargeDay: 1},
		{name: "weekly sunday", frequency: FrequencyWeekly, chargeDay: 7},
		{name: "weekly day 8", frequency: FrequencyWeekly, chargeDay: 8, wantErr: domainerror.ErrChargeDayOutOfRange},
		{name: "weekly day 0", frequency: FrequencyWeekly, chargeDay: 0, wantErr: domainerror.ErrChargeDayOutOfRange},
		{name: "biweekly day 8", frequency: FrequencyBiweekly, chargeDay: 8, wantErr: domainerror.ErrChargeDayOutOfRange},
		{name: "monthly day 31", frequency: FrequencyMonthly, chargeDay: 31},
		{name: "monthly day 32", frequency: FrequencyMonthly, chargeDay: 32, wantErr: domainerror.ErrChargeDayOutOfRange},
		{name: "annual day 365", frequency: FrequencyAnnual, chargeDay: 365},
		{name: "annual day 366", frequency: FrequencyAnnual, chargeDay: 366, wantErr: domainerror.ErrChargeDayOutOfRange},
		{name: "unknown frequency", frequency: "daily", chargeDay: 1, wantErr: domainerror.ErrInvalidFrequency},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateChargeDay(tt.frequency, tt.chargeDay)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
		})
	}
}

func TestNextChargeDate(t *testing.T) {
	tests := []struct {
		name      string
		frequency Frequency
		chargeDay int
		reference time.Time
		want      time.Time
	}{
		{
			name:      "weekly later this week",
			frequency: FrequencyWeekly,
			chargeDay: 5,                        // Friday
			reference: day(2024, time.March, 4), // Monday
			want:      day(2024, time.March, 8),
		},
		{
			name:      "weekly on the charge day moves a week ahead",
			frequency: FrequencyWeekly,
			chargeDay: 1,
			reference: day(2024, time.March, 4),
			want:      day(2024, time.March, 11),
		},
		{
			name:      "weekly sunday",
			frequency: FrequencyWeekly,
			chargeDay: 7,
			reference: day(2024, time.March, 6),
			want:      day(2024, time.March, 10),
		},
		{
			name:      "biweekly on the charge day moves two weeks ahead",
			frequency: FrequencyBiweekly,
			chargeDay: 1,
			reference: day(2024, time.March, 4),
			want:      day(2024, time.March, 18),
		},
		{
			name:      "monthly later this month",
			frequency: FrequencyMonthly,
			chargeDay: 15,
			reference: day(2024, time.March, 4),
			want:      day(2024, time.March, 15),
		},
		{
			name:      "monthly day already passed in a 30-day month",
			frequency: FrequencyMonthly,
			chargeDay: 15,
			reference: day(2024, time.April, 20),
			want:      day(2024, time.May, 15),
		},
		{
			name:      "monthly day 31 in a leap february",
			frequency: FrequencyMonthly,
			chargeDay: 31,
			reference: day(2024, time.February, 10),
			want:      day(2024, time.February, 29),
		},
		{
			name:      "monthly day 31 after the clamped february",
			frequency: FrequencyMonthly,
			chargeDay: 31,
			reference: day(2024, time.February, 29),
			want:      day(2024, time.March, 31),
		},
		{
			name:      "monthly day 31 in a 30-day month",
			frequency: FrequencyMonthly,
			chargeDay: 31,
			reference: day(2024, time.April, 1),
			want:      day(2024, time.April, 30),
		},
		{
			name:      "monthly across the year end",
			frequency: FrequencyMonthly,
			chargeDay: 5,
			reference: day(2024, time.December, 20),
			want:      day(2025, time.January, 5),
		},
		{
			name:      "annual later this year",
			frequency: FrequencyAnnual,
			chargeDay: 100,
			reference: day(2023, time.January, 1),
			want:      day(2023, time.April, 10),
		},
		{
			name:      "annual already passed",
			frequency: FrequencyAnnual,
			chargeDay: 1,
			reference: day(2024, time.June, 1),
			want:      day(2025, time.January, 1),
		},
		{
			name:      "time of day is ignored",
			frequency: FrequencyMonthly,
			chargeDay: 4,
			reference: time.Date(2024, time.March, 4, 23, 59, 0, 0, time.UTC),
			want:      day(2024, time.April, 4),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NextChargeDate(tt.frequency, tt.chargeDay, tt.reference)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.True(t, got.After(tt.reference))
		})
	}
}

func TestNextChargeDate_InvalidDay(t *testing.T) {
	_, err := NextChargeDate(FrequencyWeekly, 8, day(2024, time.March, 4))

	assert.True(t, errors.Is(err, domainerror.ErrChargeDayOutOfRange))
}

func TestAddMonths(t *testing.T) {
	assert.Equal(t, day(2024, time.February, 29), AddMonths(day(2024, time.January, 31), 1))
	assert.Equal(t, day(2023, time.February, 28), AddMonths(day(2023, time.January, 31), 1))
	assert.Equal(t, day(2025, time.January, 15), AddMonths(day(2024, time.November, 15), 2))
}

func TestDaysInMonth(t *testing.T) {
	assert.Equal(t, 29, DaysInMonth(2024, time.February))
	assert.Equal(t, 28, DaysInMonth(2100, time.February))
	assert.Equal(t, 30, DaysInMonth(2024, time.September))
	assert.Equal(t, 31, DaysInMonth(2024, time.December))
}
