package services

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/campusconnect/backend/internal/app/models"
	"github.com/campusconnect/backend/internal/app/models/dto"
	"github.com/campusconnect/backend/internal/pkg/apperrors"
	"github.com/campusconnect/backend/internal/pkg/helpers"
)

// ProjectService defines the interface for project operations
type ProjectService interface {
	List(ctx context.Context, filter *dto.ProjectFilter) (*dto.ListResponse, error)
	GetByID(ctx context.Context, id int64) (*models.Project, error)
	Create(ctx context.Context, req *dto.CreateProjectRequest, creatorID int64) (*models.Project, error)
	Join(ctx context.Context, projectID, userID int64) (*models.Project, error)
	Update(ctx context.Context, id int64, req *dto.UpdateProjectRequest, requesterID int64, requesterRole models.UserRole) (*models.Project, error)
	Delete(ctx context.Context, id, requesterID int64, requesterRole models.UserRole) error
}

// projectRepository is the persistence surface the project service needs
type projectRepository interface {
	List(ctx context.Context, status *string, skills []string, search *string, page, limit int) ([]models.Project, int64, error)
	GetByID(ctx context.Context, id int64) (*models.Project, error)
	Create(ctx context.Context, p *models.Project) error
	Update(ctx context.Context, p *models.Project) error
	Delete(ctx context.Context, id int64) error
	AddMember(ctx context.Context, projectID, userID int64, role string) error
}

// projectServiceImpl implements ProjectService
type projectServiceImpl struct {
	projectRepo projectRepository
	logger      zerolog.Logger
}

// NewProjectService creates a new ProjectService
func NewProjectService(projectRepo projectRepository, logger zerolog.Logger) ProjectService {
	return &projectServiceImpl{
		projectRepo: projectRepo,
		logger:      logger,
	}
}

// List retrieves projects with filtering and pagination
func (s *projectServiceImpl) List(ctx context.Context, filter *dto.ProjectFilter) (*dto.ListResponse, error) {
	if filter.Status != nil && *filter.Status != "" && !models.ValidProjectStatus(*filter.Status) {
		return nil, apperrors.NewValidationError("Invalid status", apperrors.FieldError{
			Field:   "status",
			Message: "Status must be one of OPEN, IN_PROGRESS, COMPLETED, CANCELLED",
		})
	}

	projects, total, err := s.projectRepo.List(ctx, filter.Status, filter.Skills, filter.Search, filter.Page, filter.Limit)
	if err != nil {
		return nil, err
	}
	if projects == nil {
		projects = []models.Project{}
	}

	return &dto.ListResponse{
		Data:       projects,
		Pagination: helpers.NewPaginationInfo(total, filter.Page, filter.Limit),
	}, nil
}

// GetByID retrieves a project with its member list
func (s *projectServiceImpl) GetByID(ctx context.Context, id int64) (*models.Project, error) {
	return s.projectRepo.GetByID(ctx, id)
}

// Create persists a new OPEN project with the creator as its leader
func (s *projectServiceImpl) Create(ctx context.Context, req *dto.CreateProjectRequest, creatorID int64) (*models.Project, error) {
	project := &models.Project{
		Title:       req.Title,
		Description: req.Description,
		Skills:      req.Skills,
		Status:      models.ProjectOpen,
		CreatedByID: creatorID,
	}

	if err := s.projectRepo.Create(ctx, project); err != nil {
		return nil, err
	}

	s.logger.Info().Int64("projectId", project.ID).Int64("creatorId", creatorID).Msg("Project created")
	return s.projectRepo.GetByID(ctx, project.ID)
}

// Join adds the user as a member. The project must be OPEN; duplicate joins
// surface as a conflict from the membership constraint.
func (s *projectServiceImpl) Join(ctx context.Context, projectID, userID int64) (*models.Project, error) {
	project, err := s.projectRepo.GetByID(ctx, projectID)
	if err != nil {
		return nil, err
	}

	if project.Status != models.ProjectOpen {
		return nil, apperrors.NewBadRequestError("Project is not open for new members")
	}

	if err := s.projectRepo.AddMember(ctx, projectID, userID, models.MemberRoleMember); err != nil {
		return nil, err
	}

	return s.projectRepo.GetByID(ctx, projectID)
}

// Update applies partial changes; only the creator or an admin may update
func (s *projectServiceImpl) Update(ctx context.Context, id int64, req *dto.UpdateProjectRequest, requesterID int64, requesterRole models.UserRole) (*models.Project, error) {
	project, err := s.projectRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if project.CreatedByID != requesterID && requesterRole != models.RoleAdmin {
		return nil, apperrors.NewForbiddenError("Not allowed to modify this project")
	}

	if req.Title != nil {
		project.Title = *req.Title
	}
	if req.Description != nil {
		project.Description = *req.Description
	}
	if req.Skills != nil {
		project.Skills = req.Skills
	}
	if req.Status != nil {
		if !models.ValidProjectStatus(*req.Status) {
			return nil, apperrors.NewValidationError("Invalid status", apperrors.FieldError{
				Field:   "status",
				Message: "Status must be one of OPEN, IN_PROGRESS, COMPLETED, CANCELLED",
			})
		}
		project.Status = models.ProjectStatus(*req.Status)
	}

	if err := s.projectRepo.Update(ctx, project); err != nil {
		return nil, err
	}
	return project, nil
}

// Delete removes a project; only the creator or an admin may delete
func (s *projectServiceImpl) Delete(ctx context.Context, id, requesterID int64, requesterRole models.UserRole) error {
	project, err := s.projectRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if project.CreatedByID != requesterID && requesterRole != models.RoleAdmin {
		return apperrors.NewForbiddenError("Not allowed to delete this project")
	}

	return s.projectRepo.Delete(ctx, id)
}
