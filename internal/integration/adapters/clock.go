package adapters

import (
	"time"

	"github.com/finance-tracker/ledger/internal/application/adapter"
)

type systemClock struct{}

// NewSystemClock returns a clock reading the current UTC time.
func NewSystemClock() adapter.Clock {
	return systemClock{}
}

func (systemClock) Now() time.Time {
	return time.Now().UTC()
}
