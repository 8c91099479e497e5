package seed

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/campusconnect/backend/internal/app/models"
	"github.com/campusconnect/backend/internal/pkg/auth"
)

// Default admin credentials, intended for first boot on a fresh database.
// The password must be rotated in any real deployment.
const (
	defaultAdminEmail    = "admin@campusconnect.app"
	defaultAdminPassword = "admin123"
	defaultAdminName     = "CampusConnect Admin"
)

// CreateDefaultData seeds the default admin account when none exists.
// Admin accounts cannot be self-registered, so a fresh install gets one here.
func CreateDefaultData(ctx context.Context, db *pgxpool.Pool, logger zerolog.Logger) error {
	var exists bool
	err := db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM users WHERE role = $1)`,
		models.RoleAdmin,
	).Scan(&exists)
	if err != nil {
		return fmt.Errorf("failed to check for admin account: %w", err)
	}
	if exists {
		logger.Debug().Msg("Admin account present, skipping seed")
		return nil
	}

	hashed, err := auth.HashPassword(defaultAdminPassword)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	_, err = db.Exec(ctx, `
		INSERT INTO users (name, email, password, role, department, is_verified)
		VALUES ($1, $2, $3, $4, $5, true)
	`, defaultAdminName, defaultAdminEmail, hashed, models.RoleAdmin, "Administration")
	if err != nil {
		return fmt.Errorf("failed to create admin account: %w", err)
	}

	logger.Info().Str("email", defaultAdminEmail).Msg("Default admin account created")
	return nil
}
