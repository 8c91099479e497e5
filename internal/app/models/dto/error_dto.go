package dto

import (
	"errors"

	"github.com/go-playground/validator/v10"

	"github.com/campusconnect/backend/internal/pkg/apperrors"
)

// ErrorResponse is the standard error body: a message plus optional
// field-level validation errors.
type ErrorResponse struct {
	Message string                `json:"message"`
	Errors  []apperrors.FieldError `json:"errors,omitempty"`
}

// NewErrorResponse creates an error response with just a message
func NewErrorResponse(message string) *ErrorResponse {
	return &ErrorResponse{Message: message}
}

// NewValidationErrorResponse converts binding errors into the standard shape.
// validator.ValidationErrors become per-field messages; anything else is
// reported as a malformed request body.
func NewValidationErrorResponse(err error) *ErrorResponse {
	resp := &ErrorResponse{Message: "Validation failed"}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		for _, fe := range verrs {
			resp.Errors = append(resp.Errors, apperrors.FieldError{
				Field:   fe.Field(),
				Message: validationMessage(fe),
			})
		}
		return resp
	}

	resp.Message = "Invalid request body"
	return resp
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "min":
		return "must be at least " + fe.Param() + " characters"
	case "max":
		return "must be at most " + fe.Param() + " characters"
	case "gte":
		return "must be at least " + fe.Param()
	case "lte":
		return "must be at most " + fe.Param()
	case "oneof":
		return "must be one of: " + fe.Param()
	default:
		return "is invalid"
	}
}
