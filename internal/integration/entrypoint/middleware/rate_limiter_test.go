package middleware

import (
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	domainerror "github.com/finance-tracker/ledger/internal/domain/error"
)

func withUser(id uuid.UUID) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(string(UserIDKey), id)
		c.Next()
	}
}

func TestRateLimiter_BurstThenReject(t *testing.T) {
	limiter := NewRateLimiter(0.001, 2, time.Minute)
	engine := gin.New()
	engine.GET("/health", limiter.Middleware(), ok)

	assert.Equal(t, http.StatusOK, perform(engine, http.MethodGet, "/health", nil).Code)
	assert.Equal(t, http.StatusOK, perform(engine, http.MethodGet, "/health", nil).Code)

	w := perform(engine, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, string(domainerror.ErrCodeRateLimited), decodeError(t, w).Code)
}

func TestRateLimiter_KeysByUser(t *testing.T) {
	limiter := NewRateLimiter(0.001, 1, time.Minute)
	alice, bob := uuid.New(), uuid.New()
	engine := gin.New()
	engine.GET("/alice", withUser(alice), limiter.Middleware(), ok)
	engine.GET("/bob", withUser(bob), limiter.Middleware(), ok)

	assert.Equal(t, http.StatusOK, perform(engine, http.MethodGet, "/alice", nil).Code)
	assert.Equal(t, http.StatusOK, perform(engine, http.MethodGet, "/bob", nil).Code)
	assert.Equal(t, http.StatusTooManyRequests, perform(engine, http.MethodGet, "/alice", nil).Code)
}

func TestRateLimiter_CleanupAndReset(t *testing.T) {
	limiter := NewRateLimiter(0.001, 1, -time.Second)
	engine := gin.New()
	engine.GET("/health", limiter.Middleware(), ok)

	assert.Equal(t, http.StatusOK, perform(engine, http.MethodGet, "/health", nil).Code)
	assert.Equal(t, http.StatusTooManyRequests, perform(engine, http.MethodGet, "/health", nil).Code)

	limiter.Cleanup()
	assert.Equal(t, http.StatusOK, perform(engine, http.MethodGet, "/health", nil).Code)

	limiter.Reset()
	assert.Equal(t, http.StatusOK, perform(engine, http.MethodGet, "/health", nil).Code)
}
