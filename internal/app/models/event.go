package models

import "time"

// Event defines the event model based on the 'events' table
type Event struct {
	ID           int64         `json:"id" db:"id"`
	Title        string        `json:"title" db:"title"`
	Description  string        `json:"description" db:"description"`
	Category     EventCategory `json:"category" db:"category"`
	Date         time.Time     `json:"date" db:"date"`
	Location     string        `json:"location" db:"location"`
	MaxAttendees *int          `json:"maxAttendees,omitempty" db:"max_attendees"`
	ImageURL     *string       `json:"imageUrl,omitempty" db:"image_url"`
	CreatedByID  int64         `json:"createdById" db:"created_by_id"`
	CreatedAt    time.Time     `json:"createdAt" db:"created_at"`

	// Related entities
	CreatedBy *UserSummary `json:"createdBy,omitempty"`
}

// EventRSVP represents a user's commitment to attend an event.
// Unique per (user, event).
type EventRSVP struct {
	ID        int64     `json:"id" db:"id"`
	UserID    int64     `json:"userId" db:"user_id"`
	EventID   int64     `json:"eventId" db:"event_id"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}
