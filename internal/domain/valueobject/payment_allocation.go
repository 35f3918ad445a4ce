package valueobject

import "github.com/shopspring/decimal"

// PaymentAllocation describes how a requested payment was applied against an outstanding
// amount. Applied never exceeds the outstanding amount; the excess is reported as
// Overpayment and is not posted anywhere.
type PaymentAllocation struct {
	Requested   decimal.Decimal
	Applied     decimal.Decimal
	Overpayment decimal.Decimal
}

// AllocatePayment caps requested at outstanding.
func AllocatePayment(requested, outstanding decimal.Decimal) PaymentAllocation {
	if outstanding.IsNegative() {
		outstanding = decimal.Zero
	}
	applied := decimal.Min(requested, outstanding)
	return PaymentAllocation{
		Requested:   requested,
		Applied:     applied,
		Overpayment: requested.Sub(applied),
	}
}

// ClampNonNegative returns v, or zero when v is negative.
func ClampNonNegative(v decimal.Decimal) decimal.Decimal {
	if v.IsNegative() {
		return decimal.Zero
	}
	return v
}
