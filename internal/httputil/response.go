// Package httputil provides HTTP utility functions for request and response handling.
package httputil

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "github.com/allisson/signup/internal/errors"
)

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// MessageResponse is the body of a successful request that only carries a message.
type MessageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// HandleErrorGin maps domain errors to HTTP status codes and writes a JSON response.
// Internal errors are logged with full detail and answered with a generic message.
func HandleErrorGin(c *gin.Context, err error, logger *slog.Logger) {
	if err == nil {
		return
	}

	var statusCode int
	var errorResponse ErrorResponse

	switch {
	case apperrors.Is(err, apperrors.ErrInvalidInput):
		statusCode = http.StatusBadRequest
		errorResponse = ErrorResponse{
			Error:   "invalid_parameter",
			Message: apperrors.Message(err, apperrors.ErrInvalidInput),
		}

	case apperrors.Is(err, apperrors.ErrNotFound):
		statusCode = http.StatusNotFound
		errorResponse = ErrorResponse{
			Error:   "not_found",
			Message: "The requested resource was not found",
		}

	case apperrors.Is(err, apperrors.ErrConflict):
		statusCode = http.StatusConflict
		errorResponse = ErrorResponse{
			Error:   "conflict",
			Message: apperrors.Message(err, apperrors.ErrConflict),
		}

	case apperrors.Is(err, apperrors.ErrUnauthorized):
		statusCode = http.StatusUnauthorized
		errorResponse = ErrorResponse{
			Error:   "Unauthorized",
			Message: "A valid bearer token is required",
		}

	case apperrors.Is(err, apperrors.ErrForbidden):
		statusCode = http.StatusForbidden
		errorResponse = ErrorResponse{
			Error:   "Access denied",
			Message: "Your address is not allowed to access this resource",
		}

	default:
		statusCode = http.StatusInternalServerError
		errorResponse = ErrorResponse{
			Error:   "internal_error",
			Message: "An internal error occurred",
		}
	}

	if logger != nil {
		level := slog.LevelWarn
		if statusCode >= http.StatusInternalServerError {
			level = slog.LevelError
		}
		logger.Log(c.Request.Context(), level, "request failed",
			slog.Int("status_code", statusCode),
			slog.String("error_code", errorResponse.Error),
			slog.Any("error", err),
		)
	}

	c.JSON(statusCode, errorResponse)
}

// HandleBadRequestGin writes a 400 response with the given caller-facing message,
// used for malformed JSON bodies and missing fields.
func HandleBadRequestGin(c *gin.Context, message string, err error, logger *slog.Logger) {
	if logger != nil {
		logger.Warn("bad request", slog.String("message", message), slog.Any("error", err))
	}

	c.JSON(http.StatusBadRequest, ErrorResponse{
		Error:   "bad_request",
		Message: message,
	})
}

// HandleInternalErrorGin writes a 500 response carrying only the supplied generic message.
func HandleInternalErrorGin(c *gin.Context, message string, err error, logger *slog.Logger) {
	if logger != nil {
		logger.Error(message, slog.Any("error", err))
	}

	c.JSON(http.StatusInternalServerError, ErrorResponse{
		Error:   "internal_error",
		Message: message,
	})
}

// HandleValidationErrorGin writes a 400 response for request binding and DTO validation failures.
func HandleValidationErrorGin(c *gin.Context, err error, logger *slog.Logger) {
	if logger != nil {
		logger.Debug("validation failed", slog.Any("error", err))
	}

	c.JSON(http.StatusBadRequest, ErrorResponse{
		Error:   "validation_error",
		Message: apperrors.Message(err, apperrors.ErrInvalidInput),
	})
}
