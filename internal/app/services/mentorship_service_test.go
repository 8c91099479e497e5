package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/campusconnect/backend/internal/app/models"
	"github.com/campusconnect/backend/internal/app/models/dto"
	"github.com/campusconnect/backend/internal/pkg/apperrors"
)

type fakeMentorshipRepo struct {
	requests map[int64]*models.MentorshipRequest
	nextID   int64
}

func newFakeMentorshipRepo() *fakeMentorshipRepo {
	return &fakeMentorshipRepo{requests: map[int64]*models.MentorshipRequest{}, nextID: 1}
}

func (f *fakeMentorshipRepo) ListForStudent(ctx context.Context, studentID int64, page, limit int) ([]models.MentorshipRequest, int64, error) {
	var out []models.MentorshipRequest
	for _, r := range f.requests {
		if r.StudentID == studentID {
			out = append(out, *r)
		}
	}
	return out, int64(len(out)), nil
}

func (f *fakeMentorshipRepo) ListForMentor(ctx context.Context, mentorID int64, page, limit int) ([]models.MentorshipRequest, int64, error) {
	var out []models.MentorshipRequest
	for _, r := range f.requests {
		mine := r.MentorID != nil && *r.MentorID == mentorID
		unclaimed := r.Status == models.MentorshipPending && r.MentorID == nil
		if mine || unclaimed {
			out = append(out, *r)
		}
	}
	return out, int64(len(out)), nil
}

func (f *fakeMentorshipRepo) ListAll(ctx context.Context, page, limit int) ([]models.MentorshipRequest, int64, error) {
	var out []models.MentorshipRequest
	for _, r := range f.requests {
		out = append(out, *r)
	}
	return out, int64(len(out)), nil
}

func (f *fakeMentorshipRepo) GetByID(ctx context.Context, id int64) (*models.MentorshipRequest, error) {
	r, ok := f.requests[id]
	if !ok {
		return nil, apperrors.NewResourceNotFoundError("Mentorship request not found")
	}
	clone := *r
	return &clone, nil
}

func (f *fakeMentorshipRepo) Create(ctx context.Context, req *models.MentorshipRequest) error {
	req.ID = f.nextID
	req.CreatedAt = time.Now()
	f.nextID++
	clone := *req
	f.requests[req.ID] = &clone
	return nil
}

func (f *fakeMentorshipRepo) Claim(ctx context.Context, id, mentorID int64) (bool, error) {
	r, ok := f.requests[id]
	if !ok {
		return false, nil
	}
	if r.Status != models.MentorshipPending || r.MentorID != nil {
		return false, nil
	}
	r.Status = models.MentorshipAccepted
	r.MentorID = &mentorID
	return true, nil
}

func (f *fakeMentorshipRepo) UpdateStatus(ctx context.Context, id int64, fromStatus, toStatus models.MentorshipStatus) (bool, error) {
	r, ok := f.requests[id]
	if !ok || r.Status != fromStatus {
		return false, nil
	}
	r.Status = toStatus
	return true, nil
}

func newMentorshipService(repo *fakeMentorshipRepo) MentorshipService {
	return NewMentorshipService(repo, zerolog.Nop())
}

func createMentorshipReq() *dto.CreateMentorshipRequest {
	return &dto.CreateMentorshipRequest{
		Title:       "Career advice",
		Description: "Looking for guidance on backend roles",
	}
}

func TestCreateMentorshipRequiresStudent(t *testing.T) {
	svc := newMentorshipService(newFakeMentorshipRepo())

	if _, err := svc.Create(context.Background(), createMentorshipReq(), 1, models.RoleAlumni); !errors.Is(err, apperrors.ErrPermissionDenied) {
		t.Fatalf("expected forbidden for alumni, got %v", err)
	}

	req, err := svc.Create(context.Background(), createMentorshipReq(), 1, models.RoleStudent)
	if err != nil {
		t.Fatalf("create as student: %v", err)
	}
	if req.Status != models.MentorshipPending {
		t.Fatalf("expected PENDING, got %s", req.Status)
	}
	if req.MentorID != nil {
		t.Fatal("mentor must be unset on creation")
	}
}

func TestAcceptBindsMentor(t *testing.T) {
	repo := newFakeMentorshipRepo()
	svc := newMentorshipService(repo)

	req, err := svc.Create(context.Background(), createMentorshipReq(), 1, models.RoleStudent)
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	accepted, err := svc.Accept(context.Background(), req.ID, 20, models.RoleAlumni)
	if err != nil {
		t.Fatalf("accept: %v", err)
	}
	if accepted.Status != models.MentorshipAccepted {
		t.Fatalf("expected ACCEPTED, got %s", accepted.Status)
	}
	if accepted.MentorID == nil || *accepted.MentorID != 20 {
		t.Fatalf("expected mentor 20, got %v", accepted.MentorID)
	}
}

func TestAcceptRequiresAlumni(t *testing.T) {
	repo := newFakeMentorshipRepo()
	svc := newMentorshipService(repo)

	req, err := svc.Create(context.Background(), createMentorshipReq(), 1, models.RoleStudent)
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if _, err := svc.Accept(context.Background(), req.ID, 2, models.RoleStudent); !errors.Is(err, apperrors.ErrPermissionDenied) {
		t.Fatalf("expected forbidden for student, got %v", err)
	}
}

func TestAcceptLosesRace(t *testing.T) {
	repo := newFakeMentorshipRepo()
	svc := newMentorshipService(repo)

	req, err := svc.Create(context.Background(), createMentorshipReq(), 1, models.RoleStudent)
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if _, err := svc.Accept(context.Background(), req.ID, 20, models.RoleAlumni); err != nil {
		t.Fatalf("first accept: %v", err)
	}
	if _, err := svc.Accept(context.Background(), req.ID, 21, models.RoleAlumni); !errors.Is(err, apperrors.ErrBadRequest) {
		t.Fatalf("expected bad request for second accept, got %v", err)
	}

	final, _ := repo.GetByID(context.Background(), req.ID)
	if *final.MentorID != 20 {
		t.Fatalf("first mentor must keep the request, got %d", *final.MentorID)
	}
}

func TestUpdateStatusTransitions(t *testing.T) {
	tests := []struct {
		name    string
		from    models.MentorshipStatus
		to      string
		allowed bool
	}{
		{name: "pending to accepted", from: models.MentorshipPending, to: "ACCEPTED", allowed: true},
		{name: "pending to declined", from: models.MentorshipPending, to: "DECLINED", allowed: true},
		{name: "accepted to completed", from: models.MentorshipAccepted, to: "COMPLETED", allowed: true},
		{name: "pending to completed", from: models.MentorshipPending, to: "COMPLETED", allowed: false},
		{name: "accepted to pending", from: models.MentorshipAccepted, to: "PENDING", allowed: false},
		{name: "declined is terminal", from: models.MentorshipDeclined, to: "ACCEPTED", allowed: false},
		{name: "completed is terminal", from: models.MentorshipComplete, to: "PENDING", allowed: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newFakeMentorshipRepo()
			svc := newMentorshipService(repo)

			req, err := svc.Create(context.Background(), createMentorshipReq(), 1, models.RoleStudent)
			if err != nil {
				t.Fatalf("create: %v", err)
			}
			repo.requests[req.ID].Status = tt.from

			_, err = svc.UpdateStatus(context.Background(), req.ID, tt.to, 1, models.RoleStudent)
			if tt.allowed && err != nil {
				t.Fatalf("expected transition to succeed: %v", err)
			}
			if !tt.allowed && !errors.Is(err, apperrors.ErrBadRequest) {
				t.Fatalf("expected bad request, got %v", err)
			}
		})
	}
}

func TestUpdateStatusRequesterRules(t *testing.T) {
	repo := newFakeMentorshipRepo()
	svc := newMentorshipService(repo)

	req, err := svc.Create(context.Background(), createMentorshipReq(), 1, models.RoleStudent)
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	// a stranger cannot touch the request
	if _, err := svc.UpdateStatus(context.Background(), req.ID, "DECLINED", 99, models.RoleStudent); !errors.Is(err, apperrors.ErrPermissionDenied) {
		t.Fatalf("expected forbidden for stranger, got %v", err)
	}

	// the bound mentor can complete it
	if _, err := svc.Accept(context.Background(), req.ID, 20, models.RoleAlumni); err != nil {
		t.Fatalf("accept: %v", err)
	}
	updated, err := svc.UpdateStatus(context.Background(), req.ID, "COMPLETED", 20, models.RoleAlumni)
	if err != nil {
		t.Fatalf("mentor completing: %v", err)
	}
	if updated.Status != models.MentorshipComplete {
		t.Fatalf("expected COMPLETED, got %s", updated.Status)
	}
}

func TestListScoping(t *testing.T) {
	repo := newFakeMentorshipRepo()
	svc := newMentorshipService(repo)

	// student 1 opens two requests; one gets claimed by mentor 20
	first, _ := svc.Create(context.Background(), createMentorshipReq(), 1, models.RoleStudent)
	svc.Create(context.Background(), createMentorshipReq(), 1, models.RoleStudent)
	// student 2 opens one
	svc.Create(context.Background(), createMentorshipReq(), 2, models.RoleStudent)
	svc.Accept(context.Background(), first.ID, 20, models.RoleAlumni)

	studentView, err := svc.List(context.Background(), 1, models.RoleStudent, 1, 10)
	if err != nil {
		t.Fatalf("student list: %v", err)
	}
	if studentView.Pagination.Total != 2 {
		t.Fatalf("student must see own 2 requests, got %d", studentView.Pagination.Total)
	}

	// mentor 20 sees the claimed one plus the two unclaimed pending
	mentorView, err := svc.List(context.Background(), 20, models.RoleAlumni, 1, 10)
	if err != nil {
		t.Fatalf("mentor list: %v", err)
	}
	if mentorView.Pagination.Total != 3 {
		t.Fatalf("mentor must see 3 requests, got %d", mentorView.Pagination.Total)
	}

	adminView, err := svc.List(context.Background(), 99, models.RoleAdmin, 1, 10)
	if err != nil {
		t.Fatalf("admin list: %v", err)
	}
	if adminView.Pagination.Total != 3 {
		t.Fatalf("admin must see all 3 requests, got %d", adminView.Pagination.Total)
	}
}
