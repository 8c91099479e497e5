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

// EventRepository handles database operations for events and RSVPs
type EventRepository struct {
	db *pgxpool.Pool
}

// NewEventRepository creates a new EventRepository
func NewEventRepository(db *pgxpool.Pool) *EventRepository {
	return &EventRepository{db: db}
}

// EventListRow is an event annotated with per-requester RSVP state
type EventListRow struct {
	Event     models.Event
	RSVPCount int
	IsRSVPed  bool
}

// List retrieves events with filtering and pagination, annotated with the
// RSVP count and whether requesterID has RSVPed. Ordered by date ascending.
func (r *EventRepository) List(ctx context.Context, category, search *string, page, limit int, requesterID int64) ([]EventListRow, int64, error) {
	query := `
		SELECT
			e.id, e.title, e.description, e.category, e.date, e.location,
			e.max_attendees, e.image_url, e.created_by_id, e.created_at,
			u.id, u.name, u.department,
			(SELECT COUNT(*) FROM event_rsvps r WHERE r.event_id = e.id) AS rsvp_count,
			EXISTS(SELECT 1 FROM event_rsvps r WHERE r.event_id = e.id AND r.user_id = $1) AS is_rsvped,
			COUNT(*) OVER() AS total_count
		FROM events e
		JOIN users u ON u.id = e.created_by_id
		WHERE 1=1
	`

	args := []interface{}{requesterID}
	argIndex := 2

	if category != nil && *category != "" {
		query += fmt.Sprintf(" AND e.category = $%d", argIndex)
		args = append(args, *category)
		argIndex++
	}

	if search != nil && *search != "" {
		pattern := "%" + *search + "%"
		query += fmt.Sprintf(" AND (e.title ILIKE $%d OR e.description ILIKE $%d)", argIndex, argIndex+1)
		args = append(args, pattern, pattern)
		argIndex += 2
	}

	query += fmt.Sprintf(" ORDER BY e.date ASC LIMIT $%d OFFSET $%d", argIndex, argIndex+1)
	args = append(args, limit, (page-1)*limit)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("error listing events: %w", err)
	}
	defer rows.Close()

	var list []EventListRow
	var total int64

	for rows.Next() {
		var row EventListRow
		var creator models.UserSummary
		err := rows.Scan(
			&row.Event.ID, &row.Event.Title, &row.Event.Description, &row.Event.Category,
			&row.Event.Date, &row.Event.Location, &row.Event.MaxAttendees, &row.Event.ImageURL,
			&row.Event.CreatedByID, &row.Event.CreatedAt,
			&creator.ID, &creator.Name, &creator.Department,
			&row.RSVPCount, &row.IsRSVPed, &total,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("error scanning event row: %w", err)
		}
		row.Event.CreatedBy = &creator
		list = append(list, row)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating event rows: %w", err)
	}

	return list, total, nil
}

// GetByID retrieves an event by id
func (r *EventRepository) GetByID(ctx context.Context, id int64) (*models.Event, error) {
	query := `
		SELECT e.id, e.title, e.description, e.category, e.date, e.location,
			e.max_attendees, e.image_url, e.created_by_id, e.created_at,
			u.id, u.name, u.department
		FROM events e
		JOIN users u ON u.id = e.created_by_id
		WHERE e.id = $1
	`

	var event models.Event
	var creator models.UserSummary
	err := r.db.QueryRow(ctx, query, id).Scan(
		&event.ID, &event.Title, &event.Description, &event.Category,
		&event.Date, &event.Location, &event.MaxAttendees, &event.ImageURL,
		&event.CreatedByID, &event.CreatedAt,
		&creator.ID, &creator.Name, &creator.Department,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewResourceNotFoundError("Event not found")
		}
		return nil, fmt.Errorf("error loading event: %w", err)
	}
	event.CreatedBy = &creator
	return &event, nil
}

// Create inserts a new event
func (r *EventRepository) Create(ctx context.Context, event *models.Event) error {
	query := `
		INSERT INTO events (title, description, category, date, location, max_attendees, image_url, created_by_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at
	`

	err := r.db.QueryRow(ctx, query,
		event.Title, event.Description, event.Category, event.Date,
		event.Location, event.MaxAttendees, event.ImageURL, event.CreatedByID,
	).Scan(&event.ID, &event.CreatedAt)
	if err != nil {
		return fmt.Errorf("error creating event: %w", err)
	}
	return nil
}

// Update persists the mutable event fields
func (r *EventRepository) Update(ctx context.Context, event *models.Event) error {
	query := `
		UPDATE events
		SET title = $1, description = $2, category = $3, date = $4,
			location = $5, max_attendees = $6
		WHERE id = $7
	`

	result, err := r.db.Exec(ctx, query,
		event.Title, event.Description, event.Category, event.Date,
		event.Location, event.MaxAttendees, event.ID,
	)
	if err != nil {
		return fmt.Errorf("error updating event: %w", err)
	}
	if result.RowsAffected() == 0 {
		return apperrors.NewResourceNotFoundError("Event not found")
	}
	return nil
}

// Delete removes an event; RSVPs cascade
func (r *EventRepository) Delete(ctx context.Context, id int64) error {
	query := squirrel.Delete("events").
		Where("id = ?", id).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("error building SQL: %w", err)
	}

	result, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("error deleting event: %w", err)
	}
	if result.RowsAffected() == 0 {
		return apperrors.NewResourceNotFoundError("Event not found")
	}
	return nil
}

// DeleteRSVP removes the requester's RSVP if present. Reports whether a row
// was deleted.
func (r *EventRepository) DeleteRSVP(ctx context.Context, eventID, userID int64) (bool, error) {
	result, err := r.db.Exec(ctx,
		`DELETE FROM event_rsvps WHERE event_id = $1 AND user_id = $2`,
		eventID, userID,
	)
	if err != nil {
		return false, fmt.Errorf("error deleting RSVP: %w", err)
	}
	return result.RowsAffected() > 0, nil
}

// CreateRSVP inserts an RSVP, enforcing the event's capacity. The event row
// is locked for the duration of the check so two concurrent inserts cannot
// both pass a full capacity check.
func (r *EventRepository) CreateRSVP(ctx context.Context, eventID, userID int64) error {
	return db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		var maxAttendees *int
		err := tx.QueryRow(ctx,
			`SELECT max_attendees FROM events WHERE id = $1 FOR UPDATE`,
			eventID,
		).Scan(&maxAttendees)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return apperrors.NewResourceNotFoundError("Event not found")
			}
			return fmt.Errorf("error locking event: %w", err)
		}

		if maxAttendees != nil {
			var count int
			err := tx.QueryRow(ctx,
				`SELECT COUNT(*) FROM event_rsvps WHERE event_id = $1`,
				eventID,
			).Scan(&count)
			if err != nil {
				return fmt.Errorf("error counting RSVPs: %w", err)
			}
			if count >= *maxAttendees {
				return apperrors.NewConflictError("Event is full")
			}
		}

		_, err = tx.Exec(ctx,
			`INSERT INTO event_rsvps (event_id, user_id) VALUES ($1, $2)`,
			eventID, userID,
		)
		if err != nil {
			if dberrors.IsUniqueViolation(err) {
				return apperrors.NewConflictError("Already RSVPed to this event")
			}
			return fmt.Errorf("error creating RSVP: %w", err)
		}
		return nil
	})
}
