package services

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/campusconnect/backend/internal/app/models"
	"github.com/campusconnect/backend/internal/app/models/dto"
	"github.com/campusconnect/backend/internal/app/repositories"
	"github.com/campusconnect/backend/internal/pkg/apperrors"
	"github.com/campusconnect/backend/internal/pkg/helpers"
)

// commentPreviewLimit is how many recent comments a list item embeds
const commentPreviewLimit = 3

// DiscussionService defines the interface for discussion operations
type DiscussionService interface {
	List(ctx context.Context, filter *dto.DiscussionFilter) (*dto.ListResponse, error)
	GetByID(ctx context.Context, id int64) (*models.Discussion, error)
	Create(ctx context.Context, req *dto.CreateDiscussionRequest, authorID int64) (*models.Discussion, error)
	AddComment(ctx context.Context, discussionID int64, req *dto.CreateCommentRequest, authorID int64) (*models.Comment, error)
	Upvote(ctx context.Context, discussionID int64) (*dto.UpvoteResponse, error)
	Delete(ctx context.Context, id, requesterID int64, requesterRole models.UserRole) error
}

// discussionRepository is the persistence surface the discussion service needs
type discussionRepository interface {
	List(ctx context.Context, department, search *string, page, limit, previewLimit int) ([]repositories.DiscussionListRow, int64, error)
	GetByID(ctx context.Context, id int64) (*models.Discussion, error)
	Create(ctx context.Context, d *models.Discussion) error
	CreateComment(ctx context.Context, c *models.Comment) error
	IncrementUpvotes(ctx context.Context, id int64) (int, error)
	Delete(ctx context.Context, id int64) error
}

// discussionServiceImpl implements DiscussionService
type discussionServiceImpl struct {
	discussionRepo discussionRepository
	logger         zerolog.Logger
}

// NewDiscussionService creates a new DiscussionService
func NewDiscussionService(discussionRepo discussionRepository, logger zerolog.Logger) DiscussionService {
	return &discussionServiceImpl{
		discussionRepo: discussionRepo,
		logger:         logger,
	}
}

// List retrieves discussions with their newest comments and comment counts
func (s *discussionServiceImpl) List(ctx context.Context, filter *dto.DiscussionFilter) (*dto.ListResponse, error) {
	rows, total, err := s.discussionRepo.List(ctx, filter.Department, filter.Search, filter.Page, filter.Limit, commentPreviewLimit)
	if err != nil {
		return nil, err
	}

	items := make([]dto.DiscussionListItem, 0, len(rows))
	for _, row := range rows {
		items = append(items, dto.DiscussionListItem{
			Discussion:   row.Discussion,
			CommentCount: row.CommentCount,
		})
	}

	return &dto.ListResponse{
		Data:       items,
		Pagination: helpers.NewPaginationInfo(total, filter.Page, filter.Limit),
	}, nil
}

// GetByID retrieves a discussion with its full comment thread
func (s *discussionServiceImpl) GetByID(ctx context.Context, id int64) (*models.Discussion, error) {
	return s.discussionRepo.GetByID(ctx, id)
}

// Create persists a new discussion
func (s *discussionServiceImpl) Create(ctx context.Context, req *dto.CreateDiscussionRequest, authorID int64) (*models.Discussion, error) {
	discussion := &models.Discussion{
		Title:      req.Title,
		Content:    req.Content,
		Department: req.Department,
		AuthorID:   authorID,
	}

	if err := s.discussionRepo.Create(ctx, discussion); err != nil {
		return nil, err
	}

	s.logger.Info().Int64("discussionId", discussion.ID).Int64("authorId", authorID).Msg("Discussion created")
	return s.discussionRepo.GetByID(ctx, discussion.ID)
}

// AddComment appends a comment to an existing discussion
func (s *discussionServiceImpl) AddComment(ctx context.Context, discussionID int64, req *dto.CreateCommentRequest, authorID int64) (*models.Comment, error) {
	if _, err := s.discussionRepo.GetByID(ctx, discussionID); err != nil {
		return nil, err
	}

	comment := &models.Comment{
		Content:      req.Content,
		DiscussionID: discussionID,
		AuthorID:     authorID,
	}

	if err := s.discussionRepo.CreateComment(ctx, comment); err != nil {
		return nil, err
	}
	return comment, nil
}

// Upvote increments the counter. There is no per-user uniqueness; repeat
// upvotes all count.
func (s *discussionServiceImpl) Upvote(ctx context.Context, discussionID int64) (*dto.UpvoteResponse, error) {
	upvotes, err := s.discussionRepo.IncrementUpvotes(ctx, discussionID)
	if err != nil {
		return nil, err
	}
	return &dto.UpvoteResponse{Upvotes: upvotes}, nil
}

// Delete removes a discussion; only the author or an admin may delete
func (s *discussionServiceImpl) Delete(ctx context.Context, id, requesterID int64, requesterRole models.UserRole) error {
	discussion, err := s.discussionRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if discussion.AuthorID != requesterID && requesterRole != models.RoleAdmin {
		return apperrors.NewForbiddenError("Not allowed to delete this discussion")
	}

	return s.discussionRepo.Delete(ctx, id)
}
