package valueobject

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestIsValidAmount(t *testing.T) {
	tests := []struct {
		amount    string
		wantScale bool
		wantValid bool
	}{
		{amount: "100", wantScale: true, wantValid: true},
		{amount: "0.01", wantScale: true, wantValid: true},
		{amount: "1.500", wantScale: true, wantValid: true},
		{amount: "0.001", wantScale: false, wantValid: false},
		{amount: "0.004", wantScale: false, wantValid: false},
		{amount: "99.995", wantScale: false, wantValid: false},
		{amount: "0", wantScale: true, wantValid: false},
		{amount: "-12.50", wantScale: true, wantValid: false},
		{amount: "-0.005", wantScale: false, wantValid: false},
	}

	for _, tt := range tests {
		t.Run(tt.amount, func(t *testing.T) {
			d := decimal.RequireFromString(tt.amount)

			assert.Equal(t, tt.wantScale, HasMoneyScale(d))
			assert.Equal(t, tt.wantValid, IsValidAmount(d))
		})
	}
}
