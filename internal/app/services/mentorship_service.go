package services

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/campusconnect/backend/internal/app/models"
	"github.com/campusconnect/backend/internal/app/models/dto"
	"github.com/campusconnect/backend/internal/pkg/apperrors"
	"github.com/campusconnect/backend/internal/pkg/helpers"
)

// MentorshipService defines the interface for mentorship request operations
type MentorshipService interface {
	List(ctx context.Context, requesterID int64, requesterRole models.UserRole, page, limit int) (*dto.ListResponse, error)
	Create(ctx context.Context, req *dto.CreateMentorshipRequest, requesterID int64, requesterRole models.UserRole) (*models.MentorshipRequest, error)
	Accept(ctx context.Context, requestID, requesterID int64, requesterRole models.UserRole) (*models.MentorshipRequest, error)
	UpdateStatus(ctx context.Context, requestID int64, newStatus string, requesterID int64, requesterRole models.UserRole) (*models.MentorshipRequest, error)
}

// mentorshipRepository is the persistence surface the mentorship service needs
type mentorshipRepository interface {
	ListForStudent(ctx context.Context, studentID int64, page, limit int) ([]models.MentorshipRequest, int64, error)
	ListForMentor(ctx context.Context, mentorID int64, page, limit int) ([]models.MentorshipRequest, int64, error)
	ListAll(ctx context.Context, page, limit int) ([]models.MentorshipRequest, int64, error)
	GetByID(ctx context.Context, id int64) (*models.MentorshipRequest, error)
	Create(ctx context.Context, req *models.MentorshipRequest) error
	Claim(ctx context.Context, id, mentorID int64) (bool, error)
	UpdateStatus(ctx context.Context, id int64, fromStatus, toStatus models.MentorshipStatus) (bool, error)
}

// mentorshipServiceImpl implements MentorshipService
type mentorshipServiceImpl struct {
	mentorshipRepo mentorshipRepository
	logger         zerolog.Logger
}

// NewMentorshipService creates a new MentorshipService
func NewMentorshipService(mentorshipRepo mentorshipRepository, logger zerolog.Logger) MentorshipService {
	return &mentorshipServiceImpl{
		mentorshipRepo: mentorshipRepo,
		logger:         logger,
	}
}

// List retrieves the requests visible to the requester. Students see their
// own, alumni see the ones they mentor plus unclaimed pending requests,
// admins see everything.
func (s *mentorshipServiceImpl) List(ctx context.Context, requesterID int64, requesterRole models.UserRole, page, limit int) (*dto.ListResponse, error) {
	var (
		requests []models.MentorshipRequest
		total    int64
		err      error
	)

	switch requesterRole {
	case models.RoleStudent:
		requests, total, err = s.mentorshipRepo.ListForStudent(ctx, requesterID, page, limit)
	case models.RoleAlumni:
		requests, total, err = s.mentorshipRepo.ListForMentor(ctx, requesterID, page, limit)
	default:
		requests, total, err = s.mentorshipRepo.ListAll(ctx, page, limit)
	}
	if err != nil {
		return nil, err
	}
	if requests == nil {
		requests = []models.MentorshipRequest{}
	}

	return &dto.ListResponse{
		Data:       requests,
		Pagination: helpers.NewPaginationInfo(total, page, limit),
	}, nil
}

// Create opens a new PENDING request. Only students may create requests.
func (s *mentorshipServiceImpl) Create(ctx context.Context, req *dto.CreateMentorshipRequest, requesterID int64, requesterRole models.UserRole) (*models.MentorshipRequest, error) {
	if requesterRole != models.RoleStudent {
		return nil, apperrors.NewForbiddenError("Only students can create mentorship requests")
	}

	request := &models.MentorshipRequest{
		Title:       req.Title,
		Description: req.Description,
		Status:      models.MentorshipPending,
		StudentID:   requesterID,
	}

	if err := s.mentorshipRepo.Create(ctx, request); err != nil {
		return nil, err
	}

	s.logger.Info().Int64("requestId", request.ID).Int64("studentId", requesterID).Msg("Mentorship request created")
	return s.mentorshipRepo.GetByID(ctx, request.ID)
}

// Accept claims a pending request for the alumni requester. The claim is a
// conditional update, so when two mentors race only one wins.
func (s *mentorshipServiceImpl) Accept(ctx context.Context, requestID, requesterID int64, requesterRole models.UserRole) (*models.MentorshipRequest, error) {
	if requesterRole != models.RoleAlumni {
		return nil, apperrors.NewForbiddenError("Only alumni can accept mentorship requests")
	}

	if _, err := s.mentorshipRepo.GetByID(ctx, requestID); err != nil {
		return nil, err
	}

	claimed, err := s.mentorshipRepo.Claim(ctx, requestID, requesterID)
	if err != nil {
		return nil, err
	}
	if !claimed {
		return nil, apperrors.NewBadRequestError("Request is no longer pending")
	}

	s.logger.Info().Int64("requestId", requestID).Int64("mentorId", requesterID).Msg("Mentorship request accepted")
	return s.mentorshipRepo.GetByID(ctx, requestID)
}

// UpdateStatus moves a request along the allowed transitions. The requester
// must be the student, the bound mentor, or an admin.
func (s *mentorshipServiceImpl) UpdateStatus(ctx context.Context, requestID int64, newStatus string, requesterID int64, requesterRole models.UserRole) (*models.MentorshipRequest, error) {
	if !models.ValidMentorshipStatus(newStatus) {
		return nil, apperrors.NewValidationError("Invalid status", apperrors.FieldError{
			Field:   "status",
			Message: "Status must be one of PENDING, ACCEPTED, COMPLETED, DECLINED",
		})
	}
	target := models.MentorshipStatus(newStatus)

	request, err := s.mentorshipRepo.GetByID(ctx, requestID)
	if err != nil {
		return nil, err
	}

	isStudent := request.StudentID == requesterID
	isMentor := request.MentorID != nil && *request.MentorID == requesterID
	if !isStudent && !isMentor && requesterRole != models.RoleAdmin {
		return nil, apperrors.NewForbiddenError("Not allowed to modify this request")
	}

	if !models.CanTransitionMentorship(request.Status, target) {
		return nil, apperrors.NewBadRequestError("Invalid status transition")
	}

	updated, err := s.mentorshipRepo.UpdateStatus(ctx, requestID, request.Status, target)
	if err != nil {
		return nil, err
	}
	if !updated {
		// the request moved under us; re-read would show the new state
		return nil, apperrors.NewBadRequestError("Invalid status transition")
	}

	return s.mentorshipRepo.GetByID(ctx, requestID)
}
