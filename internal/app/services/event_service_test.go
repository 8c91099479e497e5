package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/campusconnect/backend/internal/app/models"
	"github.com/campusconnect/backend/internal/app/models/dto"
	"github.com/campusconnect/backend/internal/app/repositories"
	"github.com/campusconnect/backend/internal/pkg/apperrors"
)

type rsvpKey struct {
	eventID int64
	userID  int64
}

type fakeEventRepo struct {
	events map[int64]*models.Event
	rsvps  map[rsvpKey]bool
	nextID int64
}

func newFakeEventRepo() *fakeEventRepo {
	return &fakeEventRepo{events: map[int64]*models.Event{}, rsvps: map[rsvpKey]bool{}, nextID: 1}
}

func (f *fakeEventRepo) List(ctx context.Context, category, search *string, page, limit int, requesterID int64) ([]repositories.EventListRow, int64, error) {
	var rows []repositories.EventListRow
	for _, e := range f.events {
		if category != nil && *category != "" && string(e.Category) != *category {
			continue
		}
		rows = append(rows, repositories.EventListRow{
			Event:     *e,
			RSVPCount: f.rsvpCount(e.ID),
			IsRSVPed:  f.rsvps[rsvpKey{e.ID, requesterID}],
		})
	}
	return rows, int64(len(rows)), nil
}

func (f *fakeEventRepo) GetByID(ctx context.Context, id int64) (*models.Event, error) {
	e, ok := f.events[id]
	if !ok {
		return nil, apperrors.NewResourceNotFoundError("Event not found")
	}
	clone := *e
	return &clone, nil
}

func (f *fakeEventRepo) Create(ctx context.Context, event *models.Event) error {
	event.ID = f.nextID
	event.CreatedAt = time.Now()
	f.nextID++
	clone := *event
	f.events[event.ID] = &clone
	return nil
}

func (f *fakeEventRepo) Update(ctx context.Context, event *models.Event) error {
	if _, ok := f.events[event.ID]; !ok {
		return apperrors.NewResourceNotFoundError("Event not found")
	}
	clone := *event
	f.events[event.ID] = &clone
	return nil
}

func (f *fakeEventRepo) Delete(ctx context.Context, id int64) error {
	if _, ok := f.events[id]; !ok {
		return apperrors.NewResourceNotFoundError("Event not found")
	}
	delete(f.events, id)
	return nil
}

func (f *fakeEventRepo) DeleteRSVP(ctx context.Context, eventID, userID int64) (bool, error) {
	key := rsvpKey{eventID, userID}
	if f.rsvps[key] {
		delete(f.rsvps, key)
		return true, nil
	}
	return false, nil
}

func (f *fakeEventRepo) CreateRSVP(ctx context.Context, eventID, userID int64) error {
	e, ok := f.events[eventID]
	if !ok {
		return apperrors.NewResourceNotFoundError("Event not found")
	}
	if f.rsvps[rsvpKey{eventID, userID}] {
		return apperrors.NewConflictError("Already RSVPed to this event")
	}
	if e.MaxAttendees != nil {
		if f.rsvpCount(eventID) >= *e.MaxAttendees {
			return apperrors.NewConflictError("Event is full")
		}
	}
	f.rsvps[rsvpKey{eventID, userID}] = true
	return nil
}

func (f *fakeEventRepo) rsvpCount(eventID int64) int {
	count := 0
	for key := range f.rsvps {
		if key.eventID == eventID {
			count++
		}
	}
	return count
}

func newEventService(repo *fakeEventRepo) EventService {
	return NewEventService(repo, nil, zerolog.Nop())
}

func createEventRequest() *dto.CreateEventRequest {
	return &dto.CreateEventRequest{
		Title:       "Hack Night",
		Description: "An evening of collaborative hacking",
		Category:    "TECHNICAL",
		Date:        "2026-10-01T18:00:00Z",
		Location:    "Lab 2",
	}
}

func TestCreateEventRejectsUnknownCategory(t *testing.T) {
	svc := newEventService(newFakeEventRepo())

	req := createEventRequest()
	req.Category = "PARTY"
	if _, err := svc.Create(context.Background(), req, nil, 1); !errors.Is(err, apperrors.ErrValidationFailed) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestCreateEventRejectsBadDate(t *testing.T) {
	svc := newEventService(newFakeEventRepo())

	req := createEventRequest()
	req.Date = "tomorrow"
	if _, err := svc.Create(context.Background(), req, nil, 1); !errors.Is(err, apperrors.ErrValidationFailed) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestRSVPToggle(t *testing.T) {
	repo := newFakeEventRepo()
	svc := newEventService(repo)

	event, err := svc.Create(context.Background(), createEventRequest(), nil, 1)
	if err != nil {
		t.Fatalf("create event: %v", err)
	}

	resp, err := svc.ToggleRSVP(context.Background(), event.ID, 7)
	if err != nil {
		t.Fatalf("first toggle: %v", err)
	}
	if !resp.RSVPed {
		t.Fatal("first toggle must RSVP")
	}

	resp, err = svc.ToggleRSVP(context.Background(), event.ID, 7)
	if err != nil {
		t.Fatalf("second toggle: %v", err)
	}
	if resp.RSVPed {
		t.Fatal("second toggle must cancel")
	}

	if count := repo.rsvpCount(event.ID); count != 0 {
		t.Fatalf("expected no RSVPs after cancel, got %d", count)
	}
}

func TestRSVPFullEvent(t *testing.T) {
	repo := newFakeEventRepo()
	svc := newEventService(repo)

	req := createEventRequest()
	one := 1
	req.MaxAttendees = &one
	event, err := svc.Create(context.Background(), req, nil, 1)
	if err != nil {
		t.Fatalf("create event: %v", err)
	}

	if _, err := svc.ToggleRSVP(context.Background(), event.ID, 10); err != nil {
		t.Fatalf("first RSVP: %v", err)
	}
	if _, err := svc.ToggleRSVP(context.Background(), event.ID, 11); !errors.Is(err, apperrors.ErrConflict) {
		t.Fatalf("expected conflict when full, got %v", err)
	}
}

func TestRSVPMissingEvent(t *testing.T) {
	svc := newEventService(newFakeEventRepo())

	if _, err := svc.ToggleRSVP(context.Background(), 99, 1); !errors.Is(err, apperrors.ErrResourceNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestUpdateEventForbiddenForStranger(t *testing.T) {
	svc := newEventService(newFakeEventRepo())

	event, err := svc.Create(context.Background(), createEventRequest(), nil, 1)
	if err != nil {
		t.Fatalf("create event: %v", err)
	}

	title := "New title"
	_, err = svc.Update(context.Background(), event.ID, &dto.UpdateEventRequest{Title: &title}, 2, models.RoleStudent)
	if !errors.Is(err, apperrors.ErrPermissionDenied) {
		t.Fatalf("expected forbidden, got %v", err)
	}
}

func TestUpdateEventAllowedForAdmin(t *testing.T) {
	svc := newEventService(newFakeEventRepo())

	event, err := svc.Create(context.Background(), createEventRequest(), nil, 1)
	if err != nil {
		t.Fatalf("create event: %v", err)
	}

	title := "Renamed"
	updated, err := svc.Update(context.Background(), event.ID, &dto.UpdateEventRequest{Title: &title}, 2, models.RoleAdmin)
	if err != nil {
		t.Fatalf("update as admin: %v", err)
	}
	if updated.Title != "Renamed" {
		t.Fatalf("expected renamed event, got %q", updated.Title)
	}
}

func TestDeleteEventByCreator(t *testing.T) {
	repo := newFakeEventRepo()
	svc := newEventService(repo)

	event, err := svc.Create(context.Background(), createEventRequest(), nil, 1)
	if err != nil {
		t.Fatalf("create event: %v", err)
	}

	if err := svc.Delete(context.Background(), event.ID, 1, models.RoleStudent); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := repo.GetByID(context.Background(), event.ID); !errors.Is(err, apperrors.ErrResourceNotFound) {
		t.Fatalf("expected not found after delete, got %v", err)
	}
}
