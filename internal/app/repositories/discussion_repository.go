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

// DiscussionRepository handles database operations for discussions and comments
type DiscussionRepository struct {
	db *pgxpool.Pool
}

// NewDiscussionRepository creates a new DiscussionRepository
func NewDiscussionRepository(db *pgxpool.Pool) *DiscussionRepository {
	return &DiscussionRepository{db: db}
}

// DiscussionListRow is a discussion annotated with its comment count and the
// few most recent comments shown in list views.
type DiscussionListRow struct {
	Discussion   models.Discussion
	CommentCount int
}

// List retrieves discussions with filtering and pagination, newest first.
// Each row carries its total comment count and up to previewLimit of the
// newest comments.
func (r *DiscussionRepository) List(ctx context.Context, department, search *string, page, limit, previewLimit int) ([]DiscussionListRow, int64, error) {
	query := `
		SELECT
			d.id, d.title, d.content, d.department, d.upvotes, d.author_id, d.created_at,
			u.id, u.name, u.department,
			(SELECT COUNT(*) FROM comments c WHERE c.discussion_id = d.id) AS comment_count,
			COUNT(*) OVER() AS total_count
		FROM discussions d
		JOIN users u ON u.id = d.author_id
		WHERE 1=1
	`

	args := []interface{}{}
	argIndex := 1

	if department != nil && *department != "" {
		query += fmt.Sprintf(" AND d.department = $%d", argIndex)
		args = append(args, *department)
		argIndex++
	}

	if search != nil && *search != "" {
		pattern := "%" + *search + "%"
		query += fmt.Sprintf(" AND (d.title ILIKE $%d OR d.content ILIKE $%d)", argIndex, argIndex+1)
		args = append(args, pattern, pattern)
		argIndex += 2
	}

	query += fmt.Sprintf(" ORDER BY d.created_at DESC LIMIT $%d OFFSET $%d", argIndex, argIndex+1)
	args = append(args, limit, (page-1)*limit)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("error listing discussions: %w", err)
	}
	defer rows.Close()

	var list []DiscussionListRow
	var total int64

	for rows.Next() {
		var row DiscussionListRow
		var author models.UserSummary
		err := rows.Scan(
			&row.Discussion.ID, &row.Discussion.Title, &row.Discussion.Content,
			&row.Discussion.Department, &row.Discussion.Upvotes, &row.Discussion.AuthorID,
			&row.Discussion.CreatedAt,
			&author.ID, &author.Name, &author.Department,
			&row.CommentCount, &total,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("error scanning discussion row: %w", err)
		}
		row.Discussion.Author = &author
		list = append(list, row)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating discussion rows: %w", err)
	}

	for i := range list {
		comments, err := r.latestComments(ctx, list[i].Discussion.ID, previewLimit)
		if err != nil {
			return nil, 0, err
		}
		list[i].Discussion.Comments = comments
	}

	return list, total, nil
}

// latestComments loads the newest comments on a discussion, newest first
func (r *DiscussionRepository) latestComments(ctx context.Context, discussionID int64, limit int) ([]models.Comment, error) {
	query := `
		SELECT c.id, c.content, c.discussion_id, c.author_id, c.created_at,
			u.id, u.name, u.department
		FROM comments c
		JOIN users u ON u.id = c.author_id
		WHERE c.discussion_id = $1
		ORDER BY c.created_at DESC
		LIMIT $2
	`
	return r.queryComments(ctx, query, discussionID, limit)
}

// CommentsAsc loads every comment on a discussion, oldest first
func (r *DiscussionRepository) CommentsAsc(ctx context.Context, discussionID int64) ([]models.Comment, error) {
	query := `
		SELECT c.id, c.content, c.discussion_id, c.author_id, c.created_at,
			u.id, u.name, u.department
		FROM comments c
		JOIN users u ON u.id = c.author_id
		WHERE c.discussion_id = $1
		ORDER BY c.created_at ASC
	`
	return r.queryComments(ctx, query, discussionID)
}

func (r *DiscussionRepository) queryComments(ctx context.Context, query string, args ...interface{}) ([]models.Comment, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing comments: %w", err)
	}
	defer rows.Close()

	comments := []models.Comment{}
	for rows.Next() {
		var c models.Comment
		var author models.UserSummary
		err := rows.Scan(
			&c.ID, &c.Content, &c.DiscussionID, &c.AuthorID, &c.CreatedAt,
			&author.ID, &author.Name, &author.Department,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning comment row: %w", err)
		}
		c.Author = &author
		comments = append(comments, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating comment rows: %w", err)
	}

	return comments, nil
}

// GetByID retrieves a discussion with its full comment thread, oldest first
func (r *DiscussionRepository) GetByID(ctx context.Context, id int64) (*models.Discussion, error) {
	query := `
		SELECT d.id, d.title, d.content, d.department, d.upvotes, d.author_id, d.created_at,
			u.id, u.name, u.department
		FROM discussions d
		JOIN users u ON u.id = d.author_id
		WHERE d.id = $1
	`

	var d models.Discussion
	var author models.UserSummary
	err := r.db.QueryRow(ctx, query, id).Scan(
		&d.ID, &d.Title, &d.Content, &d.Department, &d.Upvotes, &d.AuthorID, &d.CreatedAt,
		&author.ID, &author.Name, &author.Department,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewResourceNotFoundError("Discussion not found")
		}
		return nil, fmt.Errorf("error loading discussion: %w", err)
	}
	d.Author = &author

	comments, err := r.CommentsAsc(ctx, id)
	if err != nil {
		return nil, err
	}
	d.Comments = comments

	return &d, nil
}

// Create inserts a new discussion
func (r *DiscussionRepository) Create(ctx context.Context, d *models.Discussion) error {
	query := `
		INSERT INTO discussions (title, content, department, author_id)
		VALUES ($1, $2, $3, $4)
		RETURNING id, upvotes, created_at
	`

	err := r.db.QueryRow(ctx, query,
		d.Title, d.Content, d.Department, d.AuthorID,
	).Scan(&d.ID, &d.Upvotes, &d.CreatedAt)
	if err != nil {
		return fmt.Errorf("error creating discussion: %w", err)
	}
	return nil
}

// CreateComment inserts a comment on a discussion
func (r *DiscussionRepository) CreateComment(ctx context.Context, c *models.Comment) error {
	query := `
		INSERT INTO comments (content, discussion_id, author_id)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`

	err := r.db.QueryRow(ctx, query,
		c.Content, c.DiscussionID, c.AuthorID,
	).Scan(&c.ID, &c.CreatedAt)
	if err != nil {
		return fmt.Errorf("error creating comment: %w", err)
	}
	return nil
}

// IncrementUpvotes atomically bumps the upvote counter and returns the new value
func (r *DiscussionRepository) IncrementUpvotes(ctx context.Context, id int64) (int, error) {
	var upvotes int
	err := r.db.QueryRow(ctx,
		`UPDATE discussions SET upvotes = upvotes + 1 WHERE id = $1 RETURNING upvotes`,
		id,
	).Scan(&upvotes)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, apperrors.NewResourceNotFoundError("Discussion not found")
		}
		return 0, fmt.Errorf("error incrementing upvotes: %w", err)
	}
	return upvotes, nil
}

// Delete removes a discussion; comments cascade
func (r *DiscussionRepository) Delete(ctx context.Context, id int64) error {
	query := squirrel.Delete("discussions").
		Where("id = ?", id).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("error building SQL: %w", err)
	}

	result, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("error deleting discussion: %w", err)
	}
	if result.RowsAffected() == 0 {
		return apperrors.NewResourceNotFoundError("Discussion not found")
	}
	return nil
}
