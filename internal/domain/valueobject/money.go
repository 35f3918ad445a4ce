package valueobject

import "github.com/shopspring/decimal"

// MoneyScale is the number of decimal places of every stored amount.
const MoneyScale = 2

// HasMoneyScale reports whether d is a whole number of cents. Trailing zeros do not
// count, so 1.500 is accepted and 0.004 is not.
func HasMoneyScale(d decimal.Decimal) bool {
	return d.Equal(d.Truncate(MoneyScale))
}

// IsValidAmount reports whether d is a positive amount of whole cents.
func IsValidAmount(d decimal.Decimal) bool {
	return d.IsPositive() && HasMoneyScale(d)
}
