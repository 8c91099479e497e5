package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/campusconnect/backend/internal/app/models"
	"github.com/campusconnect/backend/internal/pkg/apperrors"
)

// ResourceRepository handles database operations for shared resources
type ResourceRepository struct {
	db *pgxpool.Pool
}

// NewResourceRepository creates a new ResourceRepository
func NewResourceRepository(db *pgxpool.Pool) *ResourceRepository {
	return &ResourceRepository{db: db}
}

// List retrieves resources with filtering and pagination, newest first
func (r *ResourceRepository) List(ctx context.Context, subject, fileType, search *string, page, limit int) ([]models.Resource, int64, error) {
	query := `
		SELECT
			res.id, res.title, res.description, res.subject, res.file_url,
			res.file_type, res.downloads, res.uploaded_by_id, res.created_at,
			u.id, u.name, u.department,
			COUNT(*) OVER() AS total_count
		FROM resources res
		JOIN users u ON u.id = res.uploaded_by_id
		WHERE 1=1
	`

	args := []interface{}{}
	argIndex := 1

	if subject != nil && *subject != "" {
		query += fmt.Sprintf(" AND res.subject ILIKE $%d", argIndex)
		args = append(args, "%"+*subject+"%")
		argIndex++
	}

	if fileType != nil && *fileType != "" {
		query += fmt.Sprintf(" AND res.file_type = $%d", argIndex)
		args = append(args, *fileType)
		argIndex++
	}

	if search != nil && *search != "" {
		pattern := "%" + *search + "%"
		query += fmt.Sprintf(" AND (res.title ILIKE $%d OR res.description ILIKE $%d)", argIndex, argIndex+1)
		args = append(args, pattern, pattern)
		argIndex += 2
	}

	query += fmt.Sprintf(" ORDER BY res.created_at DESC LIMIT $%d OFFSET $%d", argIndex, argIndex+1)
	args = append(args, limit, (page-1)*limit)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("error listing resources: %w", err)
	}
	defer rows.Close()

	var resources []models.Resource
	var total int64

	for rows.Next() {
		var res models.Resource
		var uploader models.UserSummary
		err := rows.Scan(
			&res.ID, &res.Title, &res.Description, &res.Subject, &res.FileURL,
			&res.FileType, &res.Downloads, &res.UploadedByID, &res.CreatedAt,
			&uploader.ID, &uploader.Name, &uploader.Department,
			&total,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("error scanning resource row: %w", err)
		}
		res.UploadedBy = &uploader
		resources = append(resources, res)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating resource rows: %w", err)
	}

	return resources, total, nil
}

// GetByID retrieves a resource by id
func (r *ResourceRepository) GetByID(ctx context.Context, id int64) (*models.Resource, error) {
	query := `
		SELECT id, title, description, subject, file_url, file_type,
			downloads, uploaded_by_id, created_at
		FROM resources
		WHERE id = $1
	`

	var res models.Resource
	err := r.db.QueryRow(ctx, query, id).Scan(
		&res.ID, &res.Title, &res.Description, &res.Subject, &res.FileURL,
		&res.FileType, &res.Downloads, &res.UploadedByID, &res.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewResourceNotFoundError("Resource not found")
		}
		return nil, fmt.Errorf("error loading resource: %w", err)
	}
	return &res, nil
}

// Create inserts a new resource
func (r *ResourceRepository) Create(ctx context.Context, res *models.Resource) error {
	query := `
		INSERT INTO resources (title, description, subject, file_url, file_type, uploaded_by_id)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, downloads, created_at
	`

	err := r.db.QueryRow(ctx, query,
		res.Title, res.Description, res.Subject, res.FileURL, res.FileType, res.UploadedByID,
	).Scan(&res.ID, &res.Downloads, &res.CreatedAt)
	if err != nil {
		return fmt.Errorf("error creating resource: %w", err)
	}
	return nil
}

// IncrementDownloads atomically bumps the download counter and returns the
// stored file URL.
func (r *ResourceRepository) IncrementDownloads(ctx context.Context, id int64) (string, error) {
	var fileURL string
	err := r.db.QueryRow(ctx,
		`UPDATE resources SET downloads = downloads + 1 WHERE id = $1 RETURNING file_url`,
		id,
	).Scan(&fileURL)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", apperrors.NewResourceNotFoundError("Resource not found")
		}
		return "", fmt.Errorf("error incrementing downloads: %w", err)
	}
	return fileURL, nil
}

// Delete removes a resource
func (r *ResourceRepository) Delete(ctx context.Context, id int64) error {
	query := squirrel.Delete("resources").
		Where("id = ?", id).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("error building SQL: %w", err)
	}

	result, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("error deleting resource: %w", err)
	}
	if result.RowsAffected() == 0 {
		return apperrors.NewResourceNotFoundError("Resource not found")
	}
	return nil
}
