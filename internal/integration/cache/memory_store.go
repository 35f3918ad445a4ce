package cache

import (
	"context"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/finance-tracker/ledger/internal/application/adapter"
)

// MemoryIdempotencyStore implements adapter.IdempotencyStore in process memory.
// It is used when Redis is disabled and only suits a single API instance.
type MemoryIdempotencyStore struct {
	items *gocache.Cache
}

// NewMemoryIdempotencyStore creates an in-memory idempotency store. Expired keys are
// purged every cleanupInterval.
func NewMemoryIdempotencyStore(cleanupInterval time.Duration) *MemoryIdempotencyStore {
	return &MemoryIdempotencyStore{
		items: gocache.New(gocache.NoExpiration, cleanupInterval),
	}
}

// Acquire claims key for ttl. Add fails when an unexpired item exists, which makes the
// claim atomic.
func (s *MemoryIdempotencyStore) Acquire(_ context.Context, key string, ttl time.Duration) (bool, error) {
	if err := s.items.Add(key, struct{}{}, ttl); err != nil {
		return false, nil
	}
	return true, nil
}

// Release deletes key.
func (s *MemoryIdempotencyStore) Release(_ context.Context, key string) error {
	s.items.Delete(key)
	return nil
}

// MemoryRevocationStore implements adapter.TokenRevocationStore in process memory.
type MemoryRevocationStore struct {
	items *gocache.Cache
}

// NewMemoryRevocationStore creates an in-memory revocation store.
func NewMemoryRevocationStore(cleanupInterval time.Duration) *MemoryRevocationStore {
	return &MemoryRevocationStore{
		items: gocache.New(gocache.NoExpiration, cleanupInterval),
	}
}

// Revoke stores tokenID until ttl elapses.
func (s *MemoryRevocationStore) Revoke(_ context.Context, tokenID string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	s.items.Set(tokenID, struct{}{}, ttl)
	return nil
}

// IsRevoked reports whether tokenID has been revoked.
func (s *MemoryRevocationStore) IsRevoked(_ context.Context, tokenID string) (bool, error) {
	_, found := s.items.Get(tokenID)
	return found, nil
}

var (
	_ adapter.IdempotencyStore     = (*MemoryIdempotencyStore)(nil)
	_ adapter.TokenRevocationStore = (*MemoryRevocationStore)(nil)
)
