package adapter

import "time"

// Clock supplies the reference time for date-dependent rules.
type Clock interface {
	Now() time.Time
}
