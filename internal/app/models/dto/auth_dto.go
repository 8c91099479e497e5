package dto

import (
	"time"

	"github.com/campusconnect/backend/internal/app/models"
)

// SignupRequest is the payload for POST /auth/signup
type SignupRequest struct {
	Name       string `json:"name" binding:"required,min=2,max=100"`
	Email      string `json:"email" binding:"required,email"`
	Password   string `json:"password" binding:"required,min=6"`
	Role       string `json:"role" binding:"required"`
	Department string `json:"department" binding:"required"`
	Year       *int   `json:"year" binding:"omitempty,gte=1,lte=4"`
}

// SignupResponse reports the created account
type SignupResponse struct {
	Message string `json:"message"`
	UserID  int64  `json:"userId"`
}

// LoginRequest is the payload for POST /auth/login
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse carries the bearer token and a user summary
type LoginResponse struct {
	Token string    `json:"token"`
	User  LoginUser `json:"user"`
}

// LoginUser is the user shape embedded in a login response
type LoginUser struct {
	ID         int64           `json:"id"`
	Name       string          `json:"name"`
	Email      string          `json:"email"`
	Role       models.UserRole `json:"role"`
	Department string          `json:"department"`
	Year       *int            `json:"year,omitempty"`
}

// ProfileResponse is the full profile returned by GET /auth/me
type ProfileResponse struct {
	ID         int64           `json:"id"`
	Name       string          `json:"name"`
	Email      string          `json:"email"`
	Role       models.UserRole `json:"role"`
	Department string          `json:"department"`
	Year       *int            `json:"year,omitempty"`
	Bio        *string         `json:"bio,omitempty"`
	Skills     []string        `json:"skills"`
	IsVerified bool            `json:"isVerified"`
	CreatedAt  time.Time       `json:"createdAt"`
}

// MeResponse wraps the profile returned by GET /auth/me
type MeResponse struct {
	User ProfileResponse `json:"user"`
}

// UpdateProfileRequest is the payload for PUT /auth/profile
type UpdateProfileRequest struct {
	Name       string   `json:"name" binding:"required,min=2,max=100"`
	Department string   `json:"department" binding:"required"`
	Year       *int     `json:"year" binding:"omitempty,gte=1,lte=4"`
	Bio        *string  `json:"bio" binding:"omitempty,max=500"`
	Skills     []string `json:"skills"`
}

// UpdateProfileResponse wraps the updated profile
type UpdateProfileResponse struct {
	Message string          `json:"message"`
	User    ProfileResponse `json:"user"`
}

// NewProfileResponse maps a user to its full profile shape
func NewProfileResponse(u *models.User) ProfileResponse {
	skills := u.Skills
	if skills == nil {
		skills = []string{}
	}
	return ProfileResponse{
		ID:         u.ID,
		Name:       u.Name,
		Email:      u.Email,
		Role:       u.Role,
		Department: u.Department,
		Year:       u.Year,
		Bio:        u.Bio,
		Skills:     skills,
		IsVerified: u.IsVerified,
		CreatedAt:  u.CreatedAt,
	}
}
