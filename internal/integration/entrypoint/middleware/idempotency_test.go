package middleware

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	domainerror "github.com/finance-tracker/ledger/internal/domain/error"
	"github.com/finance-tracker/ledger/internal/integration/cache"
)

type failingStore struct{}

func (failingStore) Acquire(context.Context, string, time.Duration) (bool, error) {
	return false, errors.New("connection refused")
}

func (failingStore) Release(context.Context, string) error {
	return nil
}

func newIdempotentEngine(status *int) *gin.Engine {
	idem := NewIdempotency(cache.NewMemoryIdempotencyStore(time.Minute), time.Hour)
	engine := gin.New()
	engine.POST("/transactions", idem.Middleware(), func(c *gin.Context) {
		c.Status(*status)
	})
	return engine
}

func TestIdempotency_RejectsReplay(t *testing.T) {
	status := http.StatusCreated
	engine := newIdempotentEngine(&status)
	key := map[string]string{IdempotencyKeyHeader: "abc"}

	assert.Equal(t, http.StatusCreated, perform(engine, http.MethodPost, "/transactions", key).Code)

	w := perform(engine, http.MethodPost, "/transactions", key)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, string(domainerror.ErrCodeDuplicateRequest), decodeError(t, w).Code)

	other := map[string]string{IdempotencyKeyHeader: "def"}
	assert.Equal(t, http.StatusCreated, perform(engine, http.MethodPost, "/transactions", other).Code)
}

func TestIdempotency_ReleasesFailedRequest(t *testing.T) {
	status := http.StatusUnprocessableEntity
	engine := newIdempotentEngine(&status)
	key := map[string]string{IdempotencyKeyHeader: "abc"}

	assert.Equal(t, http.StatusUnprocessableEntity, perform(engine, http.MethodPost, "/transactions", key).Code)

	status = http.StatusCreated
	assert.Equal(t, http.StatusCreated, perform(engine, http.MethodPost, "/transactions", key).Code)
	assert.Equal(t, http.StatusConflict, perform(engine, http.MethodPost, "/transactions", key).Code)
}

func TestIdempotency_WithoutHeaderPassesThrough(t *testing.T) {
	status := http.StatusCreated
	engine := newIdempotentEngine(&status)

	assert.Equal(t, http.StatusCreated, perform(engine, http.MethodPost, "/transactions", nil).Code)
	assert.Equal(t, http.StatusCreated, perform(engine, http.MethodPost, "/transactions", nil).Code)
}

func TestIdempotency_ScopedPerUser(t *testing.T) {
	idem := NewIdempotency(cache.NewMemoryIdempotencyStore(time.Minute), time.Hour)
	engine := gin.New()
	users := map[string]uuid.UUID{"alice": uuid.New(), "bob": uuid.New()}
	engine.POST("/transactions", func(c *gin.Context) {
		c.Set(string(UserIDKey), users[c.GetHeader("X-User")])
		c.Next()
	}, idem.Middleware(), ok)

	alice := map[string]string{IdempotencyKeyHeader: "same", "X-User": "alice"}
	bob := map[string]string{IdempotencyKeyHeader: "same", "X-User": "bob"}

	assert.Equal(t, http.StatusOK, perform(engine, http.MethodPost, "/transactions", alice).Code)
	assert.Equal(t, http.StatusOK, perform(engine, http.MethodPost, "/transactions", bob).Code)
	assert.Equal(t, http.StatusConflict, perform(engine, http.MethodPost, "/transactions", alice).Code)
}

func TestIdempotency_StoreUnavailable(t *testing.T) {
	idem := NewIdempotency(failingStore{}, time.Hour)
	engine := gin.New()
	engine.POST("/transactions", idem.Middleware(), ok)

	w := perform(engine, http.MethodPost, "/transactions", map[string]string{IdempotencyKeyHeader: "abc"})

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}
