package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/campusconnect/backend/internal/app/models"
	"github.com/campusconnect/backend/internal/app/models/dto"
	"github.com/campusconnect/backend/internal/middleware"
)

type fakeAuthService struct {
	profile dto.ProfileResponse
}

func (f *fakeAuthService) Register(ctx context.Context, req *dto.SignupRequest) (*dto.SignupResponse, error) {
	return nil, nil
}

func (f *fakeAuthService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	return nil, nil
}

func (f *fakeAuthService) VerifyEmail(ctx context.Context, token string) error {
	return nil
}

func (f *fakeAuthService) GetProfile(ctx context.Context, userID int64) (*dto.ProfileResponse, error) {
	resp := f.profile
	resp.ID = userID
	return &resp, nil
}

func (f *fakeAuthService) UpdateProfile(ctx context.Context, userID int64, req *dto.UpdateProfileRequest) (*dto.ProfileResponse, error) {
	return nil, nil
}

func TestGetProfileWrapsUser(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := NewAuthController(&fakeAuthService{profile: dto.ProfileResponse{
		Name:      "Ada",
		Role:      models.RoleStudent,
		Skills:    []string{},
		CreatedAt: time.Now(),
	}})

	router := gin.New()
	router.GET("/auth/me", func(c *gin.Context) {
		c.Set(middleware.ContextUserIDKey, int64(7))
		c.Set(middleware.ContextRoleKey, string(models.RoleStudent))
		ctrl.GetProfile(c)
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/auth/me", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var body struct {
		User *dto.ProfileResponse `json:"user"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decoding body: %v", err)
	}
	if body.User == nil {
		t.Fatalf("expected top-level user key, got %s", w.Body.String())
	}
	if body.User.ID != 7 || body.User.Name != "Ada" {
		t.Fatalf("unexpected profile: %+v", body.User)
	}
}
