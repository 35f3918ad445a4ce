package controller

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainerror "github.com/finance-tracker/ledger/internal/domain/error"
	"github.com/finance-tracker/ledger/internal/integration/entrypoint/dto"
	"github.com/finance-tracker/ledger/internal/integration/entrypoint/middleware"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func serve(t *testing.T, path, target string, handler gin.HandlerFunc) (*httptest.ResponseRecorder, dto.ErrorResponse) {
	t.Helper()

	engine := gin.New()
	engine.GET(path, handler)
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, target, nil))

	var body dto.ErrorResponse
	if w.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	}
	return w, body
}

func TestRespondError(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		expStatus int
		expCode   string
		expError  string
	}{
		{
			name:      "validation",
			err:       domainerror.NewGoalError(domainerror.ErrCodeInvalidTargetAmount, "invalid target", domainerror.ErrInvalidTargetAmount),
			expStatus: http.StatusBadRequest,
			expCode:   "GOL-010001",
			expError:  "invalid target: target amount must be greater than zero",
		},
		{
			name:      "not found",
			err:       domainerror.NewTransactionError(domainerror.ErrCodeTransactionNotFound, "transaction not found", nil),
			expStatus: http.StatusNotFound,
			expCode:   "TXN-020001",
			expError:  "transaction not found",
		},
		{
			name:      "invalid state wrapped",
			err:       fmt.Errorf("contribute: %w", domainerror.NewGoalError(domainerror.ErrCodeGoalCancelled, "goal is cancelled", nil)),
			expStatus: http.StatusConflict,
			expCode:   "GOL-030001",
			expError:  "contribute: goal is cancelled",
		},
		{
			name:      "insufficient funds",
			err:       domainerror.NewAccountError(domainerror.ErrCodeInsufficientFunds, "insufficient funds", nil),
			expStatus: http.StatusUnprocessableEntity,
			expCode:   "ACC-040001",
			expError:  "insufficient funds",
		},
		{
			name:      "unclassified",
			err:       errors.New("database is locked"),
			expStatus: http.StatusInternalServerError,
			expCode:   codeInternalError,
			expError:  "Failed to create transaction",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, body := serve(t, "/x", "/x", func(c *gin.Context) {
				respondError(c, tt.err, "create transaction")
			})

			assert.Equal(t, tt.expStatus, w.Code)
			assert.Equal(t, tt.expCode, body.Code)
			assert.Equal(t, tt.expError, body.Error)
		})
	}
}

func TestRequireUser(t *testing.T) {
	w, body := serve(t, "/x", "/x", func(c *gin.Context) {
		if _, ok := requireUser(c); ok {
			c.Status(http.StatusOK)
		}
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, string(domainerror.ErrCodeMissingToken), body.Code)

	userID := uuid.New()
	var got uuid.UUID
	w, _ = serve(t, "/x", "/x", func(c *gin.Context) {
		c.Set(string(middleware.UserIDKey), userID)
		got, _ = requireUser(c)
		c.Status(http.StatusOK)
	})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, userID, got)
}

func TestParseIDParam(t *testing.T) {
	id := uuid.New()
	var got uuid.UUID
	w, _ := serve(t, "/goals/:id", "/goals/"+id.String(), func(c *gin.Context) {
		got, _ = parseIDParam(c, "id", "goal")
		c.Status(http.StatusOK)
	})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, id, got)

	w, body := serve(t, "/goals/:id", "/goals/not-a-uuid", func(c *gin.Context) {
		_, _ = parseIDParam(c, "id", "goal")
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Invalid goal ID format", body.Error)
	assert.Equal(t, codeInvalidRequest, body.Code)
}

func TestQueryEnum(t *testing.T) {
	tests := []struct {
		name      string
		target    string
		expStatus int
		expValue  string
	}{
		{name: "absent", target: "/x", expStatus: http.StatusOK},
		{name: "allowed", target: "/x?status=paid", expStatus: http.StatusOK, expValue: "paid"},
		{name: "rejected", target: "/x?status=lost", expStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var value string
			w, body := serve(t, "/x", tt.target, func(c *gin.Context) {
				v, ok := queryEnum(c, "status", "pending", "paid")
				if ok {
					value = v
					c.Status(http.StatusOK)
				}
			})

			assert.Equal(t, tt.expStatus, w.Code)
			assert.Equal(t, tt.expValue, value)
			if tt.expStatus == http.StatusBadRequest {
				assert.Equal(t, "status must be one of: pending paid", body.Error)
			}
		})
	}
}
