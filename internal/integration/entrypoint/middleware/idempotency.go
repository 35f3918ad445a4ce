package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/finance-tracker/ledger/internal/application/adapter"
	domainerror "github.com/finance-tracker/ledger/internal/domain/error"
	"github.com/finance-tracker/ledger/internal/integration/entrypoint/dto"
)

// IdempotencyKeyHeader is the request header carrying the client-chosen idempotency key.
const IdempotencyKeyHeader = "Idempotency-Key"

// Idempotency rejects replays of a mutation that carries an already used key.
type Idempotency struct {
	store adapter.IdempotencyStore
	ttl   time.Duration
}

// NewIdempotency creates a new idempotency middleware instance.
func NewIdempotency(store adapter.IdempotencyStore, ttl time.Duration) *Idempotency {
	return &Idempotency{
		store: store,
		ttl:   ttl,
	}
}

// Middleware returns the Gin handler. Requests without the header pass through. A key is
// scoped to the user and route, and released again when the request fails so that the
// client can retry it.
func (m *Idempotency) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader(IdempotencyKeyHeader)
		if header == "" {
			c.Next()
			return
		}

		scope := c.ClientIP()
		if userID, ok := GetUserIDFromContext(c); ok {
			scope = userID.String()
		}
		key := scope + ":" + c.Request.Method + ":" + c.FullPath() + ":" + header

		acquired, err := m.store.Acquire(c.Request.Context(), key, m.ttl)
		if err != nil {
			slog.Error("Idempotency store unavailable", "error", err)
			c.AbortWithStatusJSON(http.StatusServiceUnavailable, dto.ErrorResponse{
				Error: "Service temporarily unavailable",
			})
			return
		}
		if !acquired {
			c.AbortWithStatusJSON(http.StatusConflict, dto.ErrorResponse{
				Error: "A request with this idempotency key was already processed",
				Code:  string(domainerror.ErrCodeDuplicateRequest),
			})
			return
		}

		c.Next()

		if c.Writer.Status() >= http.StatusBadRequest {
			// The request may already be cancelled, so release on a fresh context.
			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()
			if err := m.store.Release(ctx, key); err != nil {
				slog.Warn("Failed to release idempotency key", "error", err)
			}
		}
	}
}
