package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/campusconnect/backend/internal/app/models"
	"github.com/campusconnect/backend/internal/pkg/apperrors"
)

// MentorshipRepository handles database operations for mentorship requests
type MentorshipRepository struct {
	db *pgxpool.Pool
}

// NewMentorshipRepository creates a new MentorshipRepository
func NewMentorshipRepository(db *pgxpool.Pool) *MentorshipRepository {
	return &MentorshipRepository{db: db}
}

const mentorshipSelect = `
	SELECT m.id, m.title, m.description, m.status, m.student_id, m.mentor_id, m.created_at,
		u.id, u.name, u.department, u.year
	FROM mentorship_requests m
	JOIN users u ON u.id = m.student_id
`

func scanMentorship(row pgx.Row) (*models.MentorshipRequest, error) {
	var req models.MentorshipRequest
	var student models.UserSummary
	err := row.Scan(
		&req.ID, &req.Title, &req.Description, &req.Status,
		&req.StudentID, &req.MentorID, &req.CreatedAt,
		&student.ID, &student.Name, &student.Department, &student.Year,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewResourceNotFoundError("Mentorship request not found")
		}
		return nil, fmt.Errorf("error scanning mentorship request: %w", err)
	}
	req.Student = &student
	return &req, nil
}

// ListForStudent retrieves the requests the student opened, newest first
func (r *MentorshipRepository) ListForStudent(ctx context.Context, studentID int64, page, limit int) ([]models.MentorshipRequest, int64, error) {
	query := mentorshipSelect + `
		WHERE m.student_id = $1
		ORDER BY m.created_at DESC
		LIMIT $2 OFFSET $3
	`
	return r.listWithCount(ctx, query,
		`SELECT COUNT(*) FROM mentorship_requests WHERE student_id = $1`,
		[]interface{}{studentID}, page, limit)
}

// ListForMentor retrieves the requests an alumni mentor can see: the ones
// they already mentor plus every unclaimed pending request, newest first.
func (r *MentorshipRepository) ListForMentor(ctx context.Context, mentorID int64, page, limit int) ([]models.MentorshipRequest, int64, error) {
	cond := `WHERE m.mentor_id = $1 OR (m.status = 'PENDING' AND m.mentor_id IS NULL)`
	query := mentorshipSelect + cond + `
		ORDER BY m.created_at DESC
		LIMIT $2 OFFSET $3
	`
	countQuery := `SELECT COUNT(*) FROM mentorship_requests m ` + cond
	return r.listWithCount(ctx, query, countQuery, []interface{}{mentorID}, page, limit)
}

// ListAll retrieves every request, newest first
func (r *MentorshipRepository) ListAll(ctx context.Context, page, limit int) ([]models.MentorshipRequest, int64, error) {
	query := mentorshipSelect + `
		ORDER BY m.created_at DESC
		LIMIT $1 OFFSET $2
	`
	return r.listWithCount(ctx, query,
		`SELECT COUNT(*) FROM mentorship_requests`,
		nil, page, limit)
}

func (r *MentorshipRepository) listWithCount(ctx context.Context, query, countQuery string, args []interface{}, page, limit int) ([]models.MentorshipRequest, int64, error) {
	var total int64
	if err := r.db.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("error counting mentorship requests: %w", err)
	}

	args = append(args, limit, (page-1)*limit)
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("error listing mentorship requests: %w", err)
	}
	defer rows.Close()

	var requests []models.MentorshipRequest
	for rows.Next() {
		var req models.MentorshipRequest
		var student models.UserSummary
		err := rows.Scan(
			&req.ID, &req.Title, &req.Description, &req.Status,
			&req.StudentID, &req.MentorID, &req.CreatedAt,
			&student.ID, &student.Name, &student.Department, &student.Year,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("error scanning mentorship row: %w", err)
		}
		req.Student = &student
		requests = append(requests, req)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating mentorship rows: %w", err)
	}

	return requests, total, nil
}

// GetByID retrieves a mentorship request by id
func (r *MentorshipRepository) GetByID(ctx context.Context, id int64) (*models.MentorshipRequest, error) {
	query := mentorshipSelect + ` WHERE m.id = $1`
	return scanMentorship(r.db.QueryRow(ctx, query, id))
}

// Create inserts a new pending request
func (r *MentorshipRepository) Create(ctx context.Context, req *models.MentorshipRequest) error {
	query := `
		INSERT INTO mentorship_requests (title, description, status, student_id)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`

	err := r.db.QueryRow(ctx, query,
		req.Title, req.Description, req.Status, req.StudentID,
	).Scan(&req.ID, &req.CreatedAt)
	if err != nil {
		return fmt.Errorf("error creating mentorship request: %w", err)
	}
	return nil
}

// Claim atomically moves a pending unclaimed request to ACCEPTED under the
// given mentor. Reports false when another mentor got there first or the
// request already left PENDING.
func (r *MentorshipRepository) Claim(ctx context.Context, id, mentorID int64) (bool, error) {
	result, err := r.db.Exec(ctx, `
		UPDATE mentorship_requests
		SET status = $1, mentor_id = $2
		WHERE id = $3 AND status = $4 AND mentor_id IS NULL
	`, models.MentorshipAccepted, mentorID, id, models.MentorshipPending)
	if err != nil {
		return false, fmt.Errorf("error claiming mentorship request: %w", err)
	}
	return result.RowsAffected() > 0, nil
}

// UpdateStatus conditionally moves a request from one status to another.
// Reports false when the request was no longer in fromStatus.
func (r *MentorshipRepository) UpdateStatus(ctx context.Context, id int64, fromStatus, toStatus models.MentorshipStatus) (bool, error) {
	result, err := r.db.Exec(ctx, `
		UPDATE mentorship_requests
		SET status = $1
		WHERE id = $2 AND status = $3
	`, toStatus, id, fromStatus)
	if err != nil {
		return false, fmt.Errorf("error updating mentorship status: %w", err)
	}
	return result.RowsAffected() > 0, nil
}
