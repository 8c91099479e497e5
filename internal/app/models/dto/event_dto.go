package dto

import (
	"github.com/campusconnect/backend/internal/app/models"
)

// EventFilter carries list filters for events
type EventFilter struct {
	Category *string
	Search   *string
	Page     int
	Limit    int
}

// CreateEventRequest is the payload for POST /events.
// Sent as JSON or as multipart form fields next to an optional image.
type CreateEventRequest struct {
	Title        string `json:"title" form:"title" binding:"required,min=3"`
	Description  string `json:"description" form:"description" binding:"required,min=10"`
	Category     string `json:"category" form:"category" binding:"required"`
	Date         string `json:"date" form:"date" binding:"required"`
	Location     string `json:"location" form:"location" binding:"required"`
	MaxAttendees *int   `json:"maxAttendees" form:"maxAttendees" binding:"omitempty,gte=1"`
}

// UpdateEventRequest is the payload for PUT /events/:id. All fields optional.
type UpdateEventRequest struct {
	Title        *string `json:"title" binding:"omitempty,min=3"`
	Description  *string `json:"description" binding:"omitempty,min=10"`
	Category     *string `json:"category"`
	Date         *string `json:"date"`
	Location     *string `json:"location"`
	MaxAttendees *int    `json:"maxAttendees" binding:"omitempty,gte=1"`
}

// EventResponse is an event annotated with RSVP state for the requester
type EventResponse struct {
	models.Event
	RSVPCount int  `json:"rsvpCount"`
	IsRSVPed  bool `json:"isRSVPed"`
}

// RSVPResponse reports the outcome of an RSVP toggle
type RSVPResponse struct {
	Message string `json:"message"`
	RSVPed  bool   `json:"rsvped"`
}
