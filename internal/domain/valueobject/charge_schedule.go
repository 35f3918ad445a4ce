// Package valueobject contains immutable domain values and the pure calculations built on them.
package valueobject

import (
	"time"

	domainerror "github.com/finance-tracker/ledger/internal/domain/error"
)

// Frequency is how often a recurring expense is charged.
type Frequency string

const (
	FrequencyWeekly   Frequency = "weekly"
	FrequencyBiweekly Frequency = "biweekly"
	FrequencyMonthly  Frequency = "monthly"
	FrequencyAnnual   Frequency = "annual"
)

// IsValid checks if the frequency is supported.
func (f Frequency) IsValid() bool {
	_, _, ok := ChargeDayDomain(f)
	return ok
}

// ChargeDayDomain returns the inclusive range of charge days allowed for f.
// Weekly and biweekly days are ISO weekdays (1 Monday to 7 Sunday), monthly days are days
// of the month and annual days are ordinal days of the year.
func ChargeDayDomain(f Frequency) (minDay, maxDay int, ok bool) {
	switch f {
	case FrequencyWeekly, FrequencyBiweekly:
		return 1, 7, true
	case FrequencyMonthly:
		return 1, 31, true
	case FrequencyAnnual:
		return 1, 365, true
	}
	return 0, 0, false
}

// ValidateChargeDay checks chargeDay against the domain of f. Out-of-range days are
// rejected, never clamped.
func ValidateChargeDay(f Frequency, chargeDay int) error {
	minDay, maxDay, ok := ChargeDayDomain(f)
	if !ok {
		return domainerror.ErrInvalidFrequency
	}
	if chargeDay < minDay || chargeDay > maxDay {
		return domainerror.ErrChargeDayOutOfRange
	}
	return nil
}

// NextChargeDate returns the first charge date strictly after reference.
//
// A monthly charge day beyond the length of the target month falls on that month's last
// day, so day 31 charges on Feb 28 (or 29) and on the 30th of 30-day months.
func NextChargeDate(f Frequency, chargeDay int, reference time.Time) (time.Time, error) {
	if err := ValidateChargeDay(f, chargeDay); err != nil {
		return time.Time{}, err
	}

	ref := truncateToDay(reference)

	switch f {
	case FrequencyWeekly:
		delta := (chargeDay - isoWeekday(ref) + 7) % 7
		if delta == 0 {
			delta = 7
		}
		return ref.AddDate(0, 0, delta), nil

	case FrequencyBiweekly:
		delta := (chargeDay - isoWeekday(ref) + 7) % 7
		if delta == 0 {
			delta = 14
		}
		return ref.AddDate(0, 0, delta), nil

	case FrequencyMonthly:
		candidate := dayOfMonth(ref.Year(), ref.Month(), chargeDay)
		if candidate.After(ref) {
			return candidate, nil
		}
		next := time.Date(ref.Year(), ref.Month()+1, 1, 0, 0, 0, 0, time.UTC)
		return dayOfMonth(next.Year(), next.Month(), chargeDay), nil

	default:
		candidate := dayOfYear(ref.Year(), chargeDay)
		if candidate.After(ref) {
			return candidate, nil
		}
		return dayOfYear(ref.Year()+1, chargeDay), nil
	}
}

// AddMonths adds n calendar months to t, keeping the day of month where possible and
// falling back to the last day of the target month.
func AddMonths(t time.Time, n int) time.Time {
	u := t.UTC()
	first := time.Date(u.Year(), u.Month()+time.Month(n), 1, 0, 0, 0, 0, time.UTC)
	return dayOfMonth(first.Year(), first.Month(), u.Day())
}

// DaysInMonth returns the number of days in the given month.
func DaysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func dayOfMonth(year int, month time.Month, day int) time.Time {
	if last := DaysInMonth(year, month); day > last {
		day = last
	}
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func dayOfYear(year, ordinal int) time.Time {
	return time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, ordinal-1)
}

func isoWeekday(t time.Time) int {
	if wd := int(t.Weekday()); wd != 0 {
		return wd
	}
	return 7
}

func truncateToDay(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}
