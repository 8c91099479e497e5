package models

import (
	"time"
)

// User defines the user model based on the 'users' table
type User struct {
	ID                int64     `json:"id" db:"id"`
	Name              string    `json:"name" db:"name"`
	Email             string    `json:"email" db:"email"`
	Password          string    `json:"-" db:"password"` // bcrypt hash, excluded from JSON
	Role              UserRole  `json:"role" db:"role"`
	Department        string    `json:"department" db:"department"`
	Year              *int      `json:"year,omitempty" db:"year"` // only set for STUDENT
	Bio               *string   `json:"bio,omitempty" db:"bio"`
	Skills            []string  `json:"skills" db:"skills"`
	IsVerified        bool      `json:"isVerified" db:"is_verified"`
	VerificationToken *string   `json:"-" db:"verification_token"` // cleared on verification
	CreatedAt         time.Time `json:"createdAt" db:"created_at"`
}

// UserSummary is the trimmed user shape embedded in owned entities
type UserSummary struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	Department string `json:"department"`
	Year       *int   `json:"year,omitempty"`
}
