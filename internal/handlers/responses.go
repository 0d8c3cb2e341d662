package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/craftscrm/crm_backend/internal/apperrors"
	"github.com/craftscrm/crm_backend/internal/dto"
	"github.com/craftscrm/crm_backend/internal/messages"
	"github.com/craftscrm/crm_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// ErrorResponse is a generic error response structure for handlers.
type ErrorResponse struct {
	Error string `json:"error"`
}

// writeSuccess emits the write-endpoint envelope with a success flash key.
func writeSuccess(c *gin.Context, status int, redirectTo, messageKey string) {
	c.JSON(status, dto.WriteOutcome{
		RedirectTo:     redirectTo,
		MessageSuccess: messageKey,
	})
}

// errOutcome builds the write envelope carrying an error flash key.
func errOutcome(redirectTo, messageKey string) dto.WriteOutcome {
	return dto.WriteOutcome{
		RedirectTo:   redirectTo,
		MessageError: messageKey,
	}
}

// writeFailure maps a command error onto its status code and error flash key.
// dependencyConflictKey is the entity-specific key for blocked deletions;
// callers pass messages.GenericError when the entity has no dependents.
func writeFailure(c *gin.Context, err error, redirectTo, dependencyConflictKey string) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	status := http.StatusInternalServerError
	key := messages.GenericError
	switch {
	case errors.Is(err, apperrors.ErrValidation):
		status, key = http.StatusBadRequest, messages.InvalidInput
	case errors.Is(err, apperrors.ErrNotFound):
		status, key = http.StatusNotFound, messages.RecordNotFound
	case errors.Is(err, apperrors.ErrDependencyConflict):
		status, key = http.StatusConflict, dependencyConflictKey
	case errors.Is(err, apperrors.ErrDuplicate):
		status, key = http.StatusConflict, messages.DuplicateRecord
	default:
		logger.Error("Command failed", slog.String("error", err.Error()))
	}

	c.JSON(status, dto.WriteOutcome{
		RedirectTo:   redirectTo,
		MessageError: key,
	})
}

// readFailure maps a query error onto a plain error response.
func readFailure(c *gin.Context, err error, logMsg string) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	if errors.Is(err, apperrors.ErrNotFound) {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "Record not found"})
		return
	}
	logger.Error(logMsg, slog.String("error", err.Error()))
	c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Internal server error"})
}

// requireUserID pulls the authenticated user from the request context set by
// the auth middleware. It aborts with 401 when absent.
func requireUserID(c *gin.Context) (string, bool) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return "", false
	}
	return userID, true
}
