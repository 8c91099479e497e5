package filestorage

import (
	"context"
	"fmt"
	"mime/multipart"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// CloudinaryStorage uploads files to the Cloudinary media host.
type CloudinaryStorage struct {
	cld    *cloudinary.Cloudinary
	logger zerolog.Logger
}

// NewCloudinaryStorage creates a CloudinaryStorage from account credentials.
func NewCloudinaryStorage(cloudName, apiKey, apiSecret string, logger zerolog.Logger) (*CloudinaryStorage, error) {
	cld, err := cloudinary.NewFromParams(cloudName, apiKey, apiSecret)
	if err != nil {
		return nil, fmt.Errorf("failed to create cloudinary client: %w", err)
	}
	return &CloudinaryStorage{cld: cld, logger: logger}, nil
}

// UploadFile streams the uploaded file to Cloudinary and returns its secure URL.
func (s *CloudinaryStorage) UploadFile(ctx context.Context, fileHeader *multipart.FileHeader, folder string) (string, error) {
	file, err := fileHeader.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer file.Close()

	res, err := s.cld.Upload.Upload(ctx, file, uploader.UploadParams{
		Folder:   folder,
		PublicID: uuid.New().String(),
	})
	if err != nil {
		s.logger.Error().Err(err).Str("filename", fileHeader.Filename).Msg("Cloudinary upload failed")
		return "", fmt.Errorf("upload failed: %w", err)
	}

	s.logger.Info().Str("filename", fileHeader.Filename).Str("url", res.SecureURL).Msg("File uploaded")
	return res.SecureURL, nil
}
