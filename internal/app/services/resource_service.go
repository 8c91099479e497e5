package services

import (
	"context"
	"mime/multipart"

	"github.com/rs/zerolog"

	"github.com/campusconnect/backend/internal/app/models"
	"github.com/campusconnect/backend/internal/app/models/dto"
	"github.com/campusconnect/backend/internal/pkg/apperrors"
	"github.com/campusconnect/backend/internal/pkg/filestorage"
	"github.com/campusconnect/backend/internal/pkg/helpers"
)

// ResourceService defines the interface for shared resource operations
type ResourceService interface {
	List(ctx context.Context, filter *dto.ResourceFilter) (*dto.ListResponse, error)
	Upload(ctx context.Context, req *dto.CreateResourceRequest, file *multipart.FileHeader, uploaderID int64) (*models.Resource, error)
	Download(ctx context.Context, id int64) (*dto.DownloadResponse, error)
	Delete(ctx context.Context, id, requesterID int64, requesterRole models.UserRole) error
}

// resourceRepository is the persistence surface the resource service needs
type resourceRepository interface {
	List(ctx context.Context, subject, fileType, search *string, page, limit int) ([]models.Resource, int64, error)
	GetByID(ctx context.Context, id int64) (*models.Resource, error)
	Create(ctx context.Context, res *models.Resource) error
	IncrementDownloads(ctx context.Context, id int64) (string, error)
	Delete(ctx context.Context, id int64) error
}

// resourceServiceImpl implements ResourceService
type resourceServiceImpl struct {
	resourceRepo resourceRepository
	fileStorage  filestorage.Uploader
	logger       zerolog.Logger
}

// NewResourceService creates a new ResourceService
func NewResourceService(resourceRepo resourceRepository, fileStorage filestorage.Uploader, logger zerolog.Logger) ResourceService {
	return &resourceServiceImpl{
		resourceRepo: resourceRepo,
		fileStorage:  fileStorage,
		logger:       logger,
	}
}

// List retrieves resources with filtering and pagination
func (s *resourceServiceImpl) List(ctx context.Context, filter *dto.ResourceFilter) (*dto.ListResponse, error) {
	resources, total, err := s.resourceRepo.List(ctx, filter.Subject, filter.FileType, filter.Search, filter.Page, filter.Limit)
	if err != nil {
		return nil, err
	}
	if resources == nil {
		resources = []models.Resource{}
	}

	return &dto.ListResponse{
		Data:       resources,
		Pagination: helpers.NewPaginationInfo(total, filter.Page, filter.Limit),
	}, nil
}

// Upload stores the file and persists the resource metadata.
// The file part is mandatory.
func (s *resourceServiceImpl) Upload(ctx context.Context, req *dto.CreateResourceRequest, file *multipart.FileHeader, uploaderID int64) (*models.Resource, error) {
	if file == nil {
		return nil, apperrors.NewBadRequestError("File is required")
	}

	url, err := s.fileStorage.UploadFile(ctx, file, "resources")
	if err != nil {
		s.logger.Error().Err(err).Str("filename", file.Filename).Msg("Failed to upload resource file")
		return nil, apperrors.NewBadRequestError("Failed to upload file")
	}

	fileType := file.Header.Get("Content-Type")
	if fileType == "" {
		fileType = "application/octet-stream"
	}

	res := &models.Resource{
		Title:        req.Title,
		Description:  req.Description,
		Subject:      req.Subject,
		FileURL:      url,
		FileType:     fileType,
		UploadedByID: uploaderID,
	}

	if err := s.resourceRepo.Create(ctx, res); err != nil {
		return nil, err
	}

	s.logger.Info().Int64("resourceId", res.ID).Int64("uploaderId", uploaderID).Msg("Resource uploaded")
	return res, nil
}

// Download counts the download and returns the stored URL. Repeat downloads
// by the same user all count.
func (s *resourceServiceImpl) Download(ctx context.Context, id int64) (*dto.DownloadResponse, error) {
	url, err := s.resourceRepo.IncrementDownloads(ctx, id)
	if err != nil {
		return nil, err
	}
	return &dto.DownloadResponse{DownloadURL: url}, nil
}

// Delete removes a resource; only the uploader or an admin may delete
func (s *resourceServiceImpl) Delete(ctx context.Context, id, requesterID int64, requesterRole models.UserRole) error {
	res, err := s.resourceRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if res.UploadedByID != requesterID && requesterRole != models.RoleAdmin {
		return apperrors.NewForbiddenError("Not allowed to delete this resource")
	}

	return s.resourceRepo.Delete(ctx, id)
}
