package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/SscSPs/share_registry_app/internal/apperrors"
	"github.com/SscSPs/share_registry_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// ErrorResponse is a generic error response structure for handlers.
type ErrorResponse struct {
	Error string `json:"error"`
}

// respondError maps service errors to HTTP statuses. Unknown errors become
// opaque 500s; the details stay in the log.
func respondError(c *gin.Context, err error, msg string) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, apperrors.ErrValidation):
		status = http.StatusBadRequest
	case errors.Is(err, apperrors.ErrDuplicate):
		status = http.StatusConflict
	case errors.Is(err, apperrors.ErrForbidden):
		status = http.StatusForbidden
	case errors.Is(err, apperrors.ErrAuthentication):
		status = http.StatusUnauthorized
	case errors.Is(err, apperrors.ErrInsufficientShares),
		errors.Is(err, apperrors.ErrInsufficientAvailable):
		status = http.StatusUnprocessableEntity
	case errors.Is(err, apperrors.ErrAlreadyDecided),
		errors.Is(err, apperrors.ErrNotCancellable):
		status = http.StatusConflict
	case errors.Is(err, apperrors.ErrTransient):
		status = http.StatusServiceUnavailable
	}

	if status == http.StatusInternalServerError {
		logger.Error(msg, slog.String("error", err.Error()))
		c.JSON(status, ErrorResponse{Error: msg})
		return
	}

	logger.Warn(msg, slog.String("error", err.Error()))
	c.JSON(status, ErrorResponse{Error: err.Error()})
}
