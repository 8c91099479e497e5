package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/campusconnect/backend/internal/pkg/apperrors"
)

type errorBody struct {
	Message string `json:"message"`
	Errors  []struct {
		Field   string `json:"field"`
		Message string `json:"message"`
	} `json:"errors"`
}

func handleError(t *testing.T, err error) (int, errorBody) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest("GET", "/test", nil)

	HandleAPIError(c, err)

	var body errorBody
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return rec.Code, body
}

func TestHandleAPIErrorStatusMapping(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		status  int
		message string
	}{
		{
			name:    "not found with custom message",
			err:     apperrors.NewResourceNotFoundError("Event not found"),
			status:  http.StatusNotFound,
			message: "Event not found",
		},
		{
			name:    "bare not found",
			err:     apperrors.ErrResourceNotFound,
			status:  http.StatusNotFound,
			message: "Resource not found",
		},
		{
			name:    "forbidden",
			err:     apperrors.NewForbiddenError("Only the creator can delete this event"),
			status:  http.StatusForbidden,
			message: "Only the creator can delete this event",
		},
		{
			name:    "invalid credentials",
			err:     apperrors.ErrInvalidCredentials,
			status:  http.StatusUnauthorized,
			message: "Invalid credentials",
		},
		{
			name:    "unverified email",
			err:     apperrors.ErrEmailNotVerified,
			status:  http.StatusUnauthorized,
			message: "Email not verified",
		},
		{
			name:    "conflict",
			err:     apperrors.NewConflictError("Email already registered"),
			status:  http.StatusConflict,
			message: "Email already registered",
		},
		{
			name:    "invalid verification token",
			err:     apperrors.ErrInvalidVerificationToken,
			status:  http.StatusBadRequest,
			message: "Invalid verification token",
		},
		{
			name:    "bad request",
			err:     apperrors.NewBadRequestError("Project is not open for new members"),
			status:  http.StatusBadRequest,
			message: "Project is not open for new members",
		},
		{
			name:    "unknown error hidden",
			err:     errors.New("pq: connection reset"),
			status:  http.StatusInternalServerError,
			message: "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, body := handleError(t, tt.err)
			if status != tt.status {
				t.Fatalf("expected status %d, got %d", tt.status, status)
			}
			if body.Message != tt.message {
				t.Fatalf("expected message %q, got %q", tt.message, body.Message)
			}
		})
	}
}

func TestHandleAPIErrorValidationFields(t *testing.T) {
	err := apperrors.NewValidationError("Validation failed",
		apperrors.FieldError{Field: "email", Message: "Invalid email format"},
		apperrors.FieldError{Field: "password", Message: "Too short"},
	)

	status, body := handleError(t, err)
	if status != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", status)
	}
	if len(body.Errors) != 2 {
		t.Fatalf("expected 2 field errors, got %d", len(body.Errors))
	}
	if body.Errors[0].Field != "email" || body.Errors[1].Field != "password" {
		t.Fatalf("unexpected field order: %+v", body.Errors)
	}
}
