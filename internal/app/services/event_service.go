package services

import (
	"context"
	"mime/multipart"
	"time"

	"github.com/rs/zerolog"

	"github.com/campusconnect/backend/internal/app/models"
	"github.com/campusconnect/backend/internal/app/models/dto"
	"github.com/campusconnect/backend/internal/app/repositories"
	"github.com/campusconnect/backend/internal/pkg/apperrors"
	"github.com/campusconnect/backend/internal/pkg/filestorage"
	"github.com/campusconnect/backend/internal/pkg/helpers"
)

// EventService defines the interface for event operations
type EventService interface {
	List(ctx context.Context, filter *dto.EventFilter, requesterID int64) (*dto.ListResponse, error)
	Create(ctx context.Context, req *dto.CreateEventRequest, image *multipart.FileHeader, creatorID int64) (*models.Event, error)
	Update(ctx context.Context, id int64, req *dto.UpdateEventRequest, requesterID int64, requesterRole models.UserRole) (*models.Event, error)
	Delete(ctx context.Context, id, requesterID int64, requesterRole models.UserRole) error
	ToggleRSVP(ctx context.Context, eventID, userID int64) (*dto.RSVPResponse, error)
}

// eventRepository is the persistence surface the event service needs
type eventRepository interface {
	List(ctx context.Context, category, search *string, page, limit int, requesterID int64) ([]repositories.EventListRow, int64, error)
	GetByID(ctx context.Context, id int64) (*models.Event, error)
	Create(ctx context.Context, event *models.Event) error
	Update(ctx context.Context, event *models.Event) error
	Delete(ctx context.Context, id int64) error
	DeleteRSVP(ctx context.Context, eventID, userID int64) (bool, error)
	CreateRSVP(ctx context.Context, eventID, userID int64) error
}

// eventServiceImpl implements EventService
type eventServiceImpl struct {
	eventRepo   eventRepository
	fileStorage filestorage.Uploader
	logger      zerolog.Logger
}

// NewEventService creates a new EventService
func NewEventService(eventRepo eventRepository, fileStorage filestorage.Uploader, logger zerolog.Logger) EventService {
	return &eventServiceImpl{
		eventRepo:   eventRepo,
		fileStorage: fileStorage,
		logger:      logger,
	}
}

// List retrieves events annotated with RSVP state for the requester
func (s *eventServiceImpl) List(ctx context.Context, filter *dto.EventFilter, requesterID int64) (*dto.ListResponse, error) {
	rows, total, err := s.eventRepo.List(ctx, filter.Category, filter.Search, filter.Page, filter.Limit, requesterID)
	if err != nil {
		return nil, err
	}

	events := make([]dto.EventResponse, 0, len(rows))
	for _, row := range rows {
		events = append(events, dto.EventResponse{
			Event:     row.Event,
			RSVPCount: row.RSVPCount,
			IsRSVPed:  row.IsRSVPed,
		})
	}

	return &dto.ListResponse{
		Data:       events,
		Pagination: helpers.NewPaginationInfo(total, filter.Page, filter.Limit),
	}, nil
}

// Create validates and persists a new event owned by the creator
func (s *eventServiceImpl) Create(ctx context.Context, req *dto.CreateEventRequest, image *multipart.FileHeader, creatorID int64) (*models.Event, error) {
	if !models.ValidEventCategory(req.Category) {
		return nil, apperrors.NewValidationError("Invalid category", apperrors.FieldError{
			Field:   "category",
			Message: "Category must be one of TECHNICAL, CULTURAL, SPORTS, ACADEMIC, OTHER",
		})
	}

	date, err := parseEventDate(req.Date)
	if err != nil {
		return nil, err
	}

	event := &models.Event{
		Title:        req.Title,
		Description:  req.Description,
		Category:     models.EventCategory(req.Category),
		Date:         date,
		Location:     req.Location,
		MaxAttendees: req.MaxAttendees,
		CreatedByID:  creatorID,
	}

	if image != nil {
		url, err := s.fileStorage.UploadFile(ctx, image, "events")
		if err != nil {
			s.logger.Error().Err(err).Msg("Failed to upload event image")
			return nil, apperrors.NewBadRequestError("Failed to upload image")
		}
		event.ImageURL = &url
	}

	if err := s.eventRepo.Create(ctx, event); err != nil {
		return nil, err
	}

	s.logger.Info().Int64("eventId", event.ID).Int64("creatorId", creatorID).Msg("Event created")
	return event, nil
}

// Update applies partial changes; only the creator or an admin may update
func (s *eventServiceImpl) Update(ctx context.Context, id int64, req *dto.UpdateEventRequest, requesterID int64, requesterRole models.UserRole) (*models.Event, error) {
	event, err := s.eventRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if event.CreatedByID != requesterID && requesterRole != models.RoleAdmin {
		return nil, apperrors.NewForbiddenError("Not allowed to modify this event")
	}

	if req.Title != nil {
		event.Title = *req.Title
	}
	if req.Description != nil {
		event.Description = *req.Description
	}
	if req.Category != nil {
		if !models.ValidEventCategory(*req.Category) {
			return nil, apperrors.NewValidationError("Invalid category", apperrors.FieldError{
				Field:   "category",
				Message: "Category must be one of TECHNICAL, CULTURAL, SPORTS, ACADEMIC, OTHER",
			})
		}
		event.Category = models.EventCategory(*req.Category)
	}
	if req.Date != nil {
		date, err := parseEventDate(*req.Date)
		if err != nil {
			return nil, err
		}
		event.Date = date
	}
	if req.Location != nil {
		event.Location = *req.Location
	}
	if req.MaxAttendees != nil {
		event.MaxAttendees = req.MaxAttendees
	}

	if err := s.eventRepo.Update(ctx, event); err != nil {
		return nil, err
	}
	return event, nil
}

// Delete removes an event; only the creator or an admin may delete
func (s *eventServiceImpl) Delete(ctx context.Context, id, requesterID int64, requesterRole models.UserRole) error {
	event, err := s.eventRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if event.CreatedByID != requesterID && requesterRole != models.RoleAdmin {
		return apperrors.NewForbiddenError("Not allowed to delete this event")
	}

	return s.eventRepo.Delete(ctx, id)
}

// ToggleRSVP cancels an existing RSVP or creates one, enforcing capacity
func (s *eventServiceImpl) ToggleRSVP(ctx context.Context, eventID, userID int64) (*dto.RSVPResponse, error) {
	deleted, err := s.eventRepo.DeleteRSVP(ctx, eventID, userID)
	if err != nil {
		return nil, err
	}
	if deleted {
		return &dto.RSVPResponse{Message: "RSVP cancelled", RSVPed: false}, nil
	}

	if err := s.eventRepo.CreateRSVP(ctx, eventID, userID); err != nil {
		return nil, err
	}
	return &dto.RSVPResponse{Message: "RSVP confirmed", RSVPed: true}, nil
}

func parseEventDate(value string) (time.Time, error) {
	date, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, apperrors.NewValidationError("Invalid date", apperrors.FieldError{
			Field:   "date",
			Message: "Date must be an ISO 8601 timestamp",
		})
	}
	return date, nil
}
