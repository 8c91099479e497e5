package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/campusconnect/backend/internal/app/models"
	"github.com/campusconnect/backend/internal/db"
	"github.com/campusconnect/backend/internal/pkg/apperrors"
	"github.com/campusconnect/backend/internal/pkg/dberrors"
)

// ProjectRepository handles database operations for projects and memberships
type ProjectRepository struct {
	db *pgxpool.Pool
}

// NewProjectRepository creates a new ProjectRepository
func NewProjectRepository(db *pgxpool.Pool) *ProjectRepository {
	return &ProjectRepository{db: db}
}

// List retrieves projects with filtering and pagination, newest first.
// Each project carries its full member list.
func (r *ProjectRepository) List(ctx context.Context, status *string, skills []string, search *string, page, limit int) ([]models.Project, int64, error) {
	query := `
		SELECT
			p.id, p.title, p.description, p.skills, p.status,
			p.created_by_id, p.created_at,
			u.id, u.name, u.department,
			COUNT(*) OVER() AS total_count
		FROM projects p
		JOIN users u ON u.id = p.created_by_id
		WHERE 1=1
	`

	args := []interface{}{}
	argIndex := 1

	if status != nil && *status != "" {
		query += fmt.Sprintf(" AND p.status = $%d", argIndex)
		args = append(args, *status)
		argIndex++
	}

	if len(skills) > 0 {
		// match-any: project skills overlap the requested list
		query += fmt.Sprintf(" AND p.skills && $%d", argIndex)
		args = append(args, skills)
		argIndex++
	}

	if search != nil && *search != "" {
		pattern := "%" + *search + "%"
		query += fmt.Sprintf(" AND (p.title ILIKE $%d OR p.description ILIKE $%d)", argIndex, argIndex+1)
		args = append(args, pattern, pattern)
		argIndex += 2
	}

	query += fmt.Sprintf(" ORDER BY p.created_at DESC LIMIT $%d OFFSET $%d", argIndex, argIndex+1)
	args = append(args, limit, (page-1)*limit)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("error listing projects: %w", err)
	}
	defer rows.Close()

	var projects []models.Project
	var total int64

	for rows.Next() {
		var p models.Project
		var creator models.UserSummary
		err := rows.Scan(
			&p.ID, &p.Title, &p.Description, &p.Skills, &p.Status,
			&p.CreatedByID, &p.CreatedAt,
			&creator.ID, &creator.Name, &creator.Department,
			&total,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("error scanning project row: %w", err)
		}
		p.CreatedBy = &creator
		projects = append(projects, p)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating project rows: %w", err)
	}

	// Attach member lists
	for i := range projects {
		members, err := r.GetMembers(ctx, projects[i].ID)
		if err != nil {
			return nil, 0, err
		}
		projects[i].Members = members
	}

	return projects, total, nil
}

// GetByID retrieves a project by id, including its members
func (r *ProjectRepository) GetByID(ctx context.Context, id int64) (*models.Project, error) {
	query := `
		SELECT p.id, p.title, p.description, p.skills, p.status,
			p.created_by_id, p.created_at,
			u.id, u.name, u.department
		FROM projects p
		JOIN users u ON u.id = p.created_by_id
		WHERE p.id = $1
	`

	var p models.Project
	var creator models.UserSummary
	err := r.db.QueryRow(ctx, query, id).Scan(
		&p.ID, &p.Title, &p.Description, &p.Skills, &p.Status,
		&p.CreatedByID, &p.CreatedAt,
		&creator.ID, &creator.Name, &creator.Department,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewResourceNotFoundError("Project not found")
		}
		return nil, fmt.Errorf("error loading project: %w", err)
	}
	p.CreatedBy = &creator

	members, err := r.GetMembers(ctx, id)
	if err != nil {
		return nil, err
	}
	p.Members = members

	return &p, nil
}

// GetMembers retrieves the member list of a project with user summaries
func (r *ProjectRepository) GetMembers(ctx context.Context, projectID int64) ([]models.ProjectMember, error) {
	query := `
		SELECT m.id, m.user_id, m.project_id, m.role, m.joined_at,
			u.id, u.name, u.department
		FROM project_members m
		JOIN users u ON u.id = m.user_id
		WHERE m.project_id = $1
		ORDER BY m.joined_at ASC
	`

	rows, err := r.db.Query(ctx, query, projectID)
	if err != nil {
		return nil, fmt.Errorf("error listing project members: %w", err)
	}
	defer rows.Close()

	members := []models.ProjectMember{}
	for rows.Next() {
		var m models.ProjectMember
		var user models.UserSummary
		err := rows.Scan(
			&m.ID, &m.UserID, &m.ProjectID, &m.Role, &m.JoinedAt,
			&user.ID, &user.Name, &user.Department,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning member row: %w", err)
		}
		m.User = &user
		members = append(members, m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating member rows: %w", err)
	}

	return members, nil
}

// Create inserts a project and its leader membership in one transaction, so
// a project can never exist without a leader.
func (r *ProjectRepository) Create(ctx context.Context, p *models.Project) error {
	return db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		err := tx.QueryRow(ctx, `
			INSERT INTO projects (title, description, skills, status, created_by_id)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING id, created_at
		`, p.Title, p.Description, p.Skills, p.Status, p.CreatedByID).Scan(&p.ID, &p.CreatedAt)
		if err != nil {
			return fmt.Errorf("error creating project: %w", err)
		}

		_, err = tx.Exec(ctx, `
			INSERT INTO project_members (user_id, project_id, role)
			VALUES ($1, $2, $3)
		`, p.CreatedByID, p.ID, models.MemberRoleLeader)
		if err != nil {
			return fmt.Errorf("error creating leader membership: %w", err)
		}
		return nil
	})
}

// Update persists the mutable project fields
func (r *ProjectRepository) Update(ctx context.Context, p *models.Project) error {
	query := `
		UPDATE projects
		SET title = $1, description = $2, skills = $3, status = $4
		WHERE id = $5
	`

	result, err := r.db.Exec(ctx, query, p.Title, p.Description, p.Skills, p.Status, p.ID)
	if err != nil {
		return fmt.Errorf("error updating project: %w", err)
	}
	if result.RowsAffected() == 0 {
		return apperrors.NewResourceNotFoundError("Project not found")
	}
	return nil
}

// Delete removes a project; memberships cascade
func (r *ProjectRepository) Delete(ctx context.Context, id int64) error {
	query := squirrel.Delete("projects").
		Where("id = ?", id).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("error building SQL: %w", err)
	}

	result, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("error deleting project: %w", err)
	}
	if result.RowsAffected() == 0 {
		return apperrors.NewResourceNotFoundError("Project not found")
	}
	return nil
}

// AddMember inserts a membership row. A duplicate maps to a conflict error.
func (r *ProjectRepository) AddMember(ctx context.Context, projectID, userID int64, role string) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO project_members (user_id, project_id, role)
		VALUES ($1, $2, $3)
	`, userID, projectID, role)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.NewConflictError("Already a member of this project")
		}
		return fmt.Errorf("error adding project member: %w", err)
	}
	return nil
}
