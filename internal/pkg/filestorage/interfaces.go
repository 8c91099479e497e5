package filestorage

import (
	"context"
	"mime/multipart"
)

// Uploader stores an uploaded file with an external or local backend and
// returns a URL the file can be fetched from.
type Uploader interface {
	UploadFile(ctx context.Context, fileHeader *multipart.FileHeader, folder string) (string, error)
}
