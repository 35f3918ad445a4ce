package valueobject

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestAllocatePayment(t *testing.T) {
	tests := []struct {
		name            string
		requested       string
		outstanding     string
		wantApplied     string
		wantOverpayment string
	}{
		{name: "partial payment", requested: "400", outstanding: "1000", wantApplied: "400", wantOverpayment: "0"},
		{name: "exact payment", requested: "600", outstanding: "600", wantApplied: "600", wantOverpayment: "0"},
		{name: "overpayment is capped", requested: "700", outstanding: "600", wantApplied: "600", wantOverpayment: "100"},
		{name: "partly paid debt settles with overpayment", requested: "500", outstanding: "300", wantApplied: "300", wantOverpayment: "200"},
		{name: "nothing outstanding", requested: "50", outstanding: "0", wantApplied: "0", wantOverpayment: "50"},
		{name: "negative outstanding counts as zero", requested: "50", outstanding: "-10", wantApplied: "0", wantOverpayment: "50"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			allocation := AllocatePayment(decimal.RequireFromString(tt.requested), decimal.RequireFromString(tt.outstanding))

			assert.True(t, allocation.Applied.Equal(decimal.RequireFromString(tt.wantApplied)), "applied %s", allocation.Applied)
			assert.True(t, allocation.Overpayment.Equal(decimal.RequireFromString(tt.wantOverpayment)), "overpayment %s", allocation.Overpayment)
			assert.True(t, allocation.Applied.Add(allocation.Overpayment).Equal(allocation.Requested))
		})
	}
}

func TestClampNonNegative(t *testing.T) {
	assert.True(t, ClampNonNegative(decimal.NewFromInt(-5)).IsZero())
	assert.True(t, ClampNonNegative(decimal.NewFromInt(5)).Equal(decimal.NewFromInt(5)))
}
