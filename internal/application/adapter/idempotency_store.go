package adapter

import (
	"context"
	"time"
)

// IdempotencyStore remembers request keys for a limited time.
type IdempotencyStore interface {
	// Acquire claims key for ttl. It returns false if the key is already claimed.
	Acquire(ctx context.Context, key string, ttl time.Duration) (bool, error)

	// Release frees key so that the request can be retried.
	Release(ctx context.Context, key string) error
}
