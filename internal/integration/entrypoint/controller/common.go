// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"log/slog"
	"net/http"
	"slices"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	domainerror "github.com/finance-tracker/ledger/internal/domain/error"
	"github.com/finance-tracker/ledger/internal/integration/entrypoint/dto"
	"github.com/finance-tracker/ledger/internal/integration/entrypoint/middleware"
)

const (
	codeInvalidRequest = "INVALID_REQUEST"
	codeInternalError  = "INTERNAL_ERROR"
)

// requireUser returns the authenticated user or writes a 401 response.
func requireUser(ctx *gin.Context) (uuid.UUID, bool) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return uuid.Nil, false
	}
	return userID, true
}

// bindJSON decodes and validates the request body or writes a 400 response.
func bindJSON(ctx *gin.Context, req any) bool {
	if err := ctx.ShouldBindJSON(req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "Invalid request body",
			Code:    codeInvalidRequest,
			Details: middleware.FormatValidationErrors(err),
		})
		return false
	}
	return true
}

// parseIDParam parses the named path parameter as a UUID or writes a 400 response.
func parseIDParam(ctx *gin.Context, name, label string) (uuid.UUID, bool) {
	id, err := uuid.Parse(ctx.Param(name))
	if err != nil {
		badRequest(ctx, "Invalid "+label+" ID format")
		return uuid.Nil, false
	}
	return id, true
}

// queryEnum reads an optional query parameter restricted to allowed values. It writes a
// 400 response and returns false when the value is not allowed.
func queryEnum(ctx *gin.Context, name string, allowed ...string) (string, bool) {
	value := ctx.Query(name)
	if value == "" || slices.Contains(allowed, value) {
		return value, true
	}
	badRequest(ctx, name+" must be one of: "+strings.Join(allowed, " "))
	return "", false
}

func badRequest(ctx *gin.Context, message string) {
	ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
		Error: message,
		Code:  codeInvalidRequest,
	})
}

// statusForKind maps a domain error kind to its HTTP status.
func statusForKind(kind domainerror.Kind) int {
	switch kind {
	case domainerror.KindValidation:
		return http.StatusBadRequest
	case domainerror.KindNotFound:
		return http.StatusNotFound
	case domainerror.KindInvalidState:
		return http.StatusConflict
	case domainerror.KindInsufficientFunds:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

// respondError writes the response for an error returned by a use case. Unclassified
// errors are logged and hidden behind a generic message.
func respondError(ctx *gin.Context, err error, operation string) {
	kind := domainerror.KindOf(err)
	if kind == domainerror.KindUnknown {
		slog.Error("Request failed",
			"operation", operation,
			"path", ctx.FullPath(),
			"error", err,
		)
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to " + operation,
			Code:  codeInternalError,
		})
		return
	}

	ctx.JSON(statusForKind(kind), dto.ErrorResponse{
		Error: err.Error(),
		Code:  domainerror.CodeOf(err),
	})
}
