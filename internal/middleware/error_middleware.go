package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campusconnect/backend/internal/app/models/dto"
	"github.com/campusconnect/backend/internal/pkg/apperrors"
	"github.com/campusconnect/backend/internal/pkg/logger"
)

// HandleAPIError maps domain errors to HTTP responses. Unknown errors are
// logged and hidden behind a generic 500.
func HandleAPIError(c *gin.Context, err error) {
	status, message := classify(err)

	resp := dto.NewErrorResponse(message)
	var customErr *apperrors.CustomError
	if errors.As(err, &customErr) && len(customErr.Fields) > 0 {
		resp.Errors = customErr.Fields
	}

	if status == http.StatusInternalServerError {
		logger.Error().Err(err).
			Str("path", c.FullPath()).
			Str("method", c.Request.Method).
			Msg("Unhandled error")
	}

	c.JSON(status, resp)
}

func classify(err error) (int, string) {
	switch {
	case errors.Is(err, apperrors.ErrResourceNotFound),
		errors.Is(err, apperrors.ErrUserNotFound):
		return http.StatusNotFound, messageOr(err, "Resource not found")
	case errors.Is(err, apperrors.ErrPermissionDenied):
		return http.StatusForbidden, messageOr(err, "Permission denied")
	case errors.Is(err, apperrors.ErrInvalidCredentials):
		return http.StatusUnauthorized, "Invalid credentials"
	case errors.Is(err, apperrors.ErrEmailNotVerified):
		return http.StatusUnauthorized, "Email not verified"
	case errors.Is(err, apperrors.ErrTokenExpired):
		return http.StatusUnauthorized, "Token expired"
	case errors.Is(err, apperrors.ErrTokenInvalid):
		return http.StatusUnauthorized, "Invalid token"
	case errors.Is(err, apperrors.ErrConflict),
		errors.Is(err, apperrors.ErrEmailAlreadyExists):
		return http.StatusConflict, messageOr(err, "Conflict")
	case errors.Is(err, apperrors.ErrInvalidVerificationToken):
		return http.StatusBadRequest, "Invalid verification token"
	case errors.Is(err, apperrors.ErrValidationFailed),
		errors.Is(err, apperrors.ErrBadRequest):
		return http.StatusBadRequest, messageOr(err, "Bad request")
	default:
		return http.StatusInternalServerError, "Internal server error"
	}
}

// messageOr prefers the wrapped custom message when one was attached
func messageOr(err error, fallback string) string {
	var customErr *apperrors.CustomError
	if errors.As(err, &customErr) && customErr.Message != "" {
		return customErr.Message
	}
	return fallback
}
