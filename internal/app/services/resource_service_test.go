package services

import (
	"context"
	"errors"
	"mime/multipart"
	"net/textproto"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/campusconnect/backend/internal/app/models"
	"github.com/campusconnect/backend/internal/app/models/dto"
	"github.com/campusconnect/backend/internal/pkg/apperrors"
)

type fakeResourceRepo struct {
	resources map[int64]*models.Resource
	nextID    int64
}

func newFakeResourceRepo() *fakeResourceRepo {
	return &fakeResourceRepo{resources: map[int64]*models.Resource{}, nextID: 1}
}

func (f *fakeResourceRepo) List(ctx context.Context, subject, fileType, search *string, page, limit int) ([]models.Resource, int64, error) {
	var out []models.Resource
	for _, r := range f.resources {
		if subject != nil && *subject != "" && r.Subject != *subject {
			continue
		}
		out = append(out, *r)
	}
	return out, int64(len(out)), nil
}

func (f *fakeResourceRepo) GetByID(ctx context.Context, id int64) (*models.Resource, error) {
	r, ok := f.resources[id]
	if !ok {
		return nil, apperrors.NewResourceNotFoundError("Resource not found")
	}
	clone := *r
	return &clone, nil
}

func (f *fakeResourceRepo) Create(ctx context.Context, res *models.Resource) error {
	res.ID = f.nextID
	res.CreatedAt = time.Now()
	f.nextID++
	clone := *res
	f.resources[res.ID] = &clone
	return nil
}

func (f *fakeResourceRepo) IncrementDownloads(ctx context.Context, id int64) (string, error) {
	r, ok := f.resources[id]
	if !ok {
		return "", apperrors.NewResourceNotFoundError("Resource not found")
	}
	r.Downloads++
	return r.FileURL, nil
}

func (f *fakeResourceRepo) Delete(ctx context.Context, id int64) error {
	if _, ok := f.resources[id]; !ok {
		return apperrors.NewResourceNotFoundError("Resource not found")
	}
	delete(f.resources, id)
	return nil
}

type fakeUploader struct {
	url string
	err error
}

func (f *fakeUploader) UploadFile(ctx context.Context, file *multipart.FileHeader, folder string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	return f.url, nil
}

func pdfFileHeader() *multipart.FileHeader {
	header := make(textproto.MIMEHeader)
	header.Set("Content-Type", "application/pdf")
	return &multipart.FileHeader{
		Filename: "notes.pdf",
		Header:   header,
		Size:     1024,
	}
}

func createResourceRequest() *dto.CreateResourceRequest {
	return &dto.CreateResourceRequest{
		Title:       "Algorithms notes",
		Description: "Summary of the graph algorithms lectures",
		Subject:     "Algorithms",
	}
}

func TestUploadRequiresFile(t *testing.T) {
	svc := NewResourceService(newFakeResourceRepo(), &fakeUploader{}, zerolog.Nop())

	_, err := svc.Upload(context.Background(), createResourceRequest(), nil, 1)
	if !errors.Is(err, apperrors.ErrBadRequest) {
		t.Fatalf("expected bad request, got %v", err)
	}
}

func TestUploadPersistsURLAndMIME(t *testing.T) {
	repo := newFakeResourceRepo()
	svc := NewResourceService(repo, &fakeUploader{url: "https://cdn.example.com/notes.pdf"}, zerolog.Nop())

	res, err := svc.Upload(context.Background(), createResourceRequest(), pdfFileHeader(), 3)
	if err != nil {
		t.Fatalf("upload: %v", err)
	}
	if res.FileURL != "https://cdn.example.com/notes.pdf" {
		t.Fatalf("unexpected file url %q", res.FileURL)
	}
	if res.FileType != "application/pdf" {
		t.Fatalf("unexpected file type %q", res.FileType)
	}
	if res.UploadedByID != 3 {
		t.Fatalf("unexpected uploader %d", res.UploadedByID)
	}
}

func TestUploadStorageFailure(t *testing.T) {
	svc := NewResourceService(newFakeResourceRepo(), &fakeUploader{err: errors.New("bucket down")}, zerolog.Nop())

	_, err := svc.Upload(context.Background(), createResourceRequest(), pdfFileHeader(), 1)
	if !errors.Is(err, apperrors.ErrBadRequest) {
		t.Fatalf("expected bad request on storage failure, got %v", err)
	}
}

func TestDownloadIncrementsCounter(t *testing.T) {
	repo := newFakeResourceRepo()
	svc := NewResourceService(repo, &fakeUploader{url: "https://cdn.example.com/notes.pdf"}, zerolog.Nop())

	res, err := svc.Upload(context.Background(), createResourceRequest(), pdfFileHeader(), 1)
	if err != nil {
		t.Fatalf("upload: %v", err)
	}

	for i := 1; i <= 2; i++ {
		resp, err := svc.Download(context.Background(), res.ID)
		if err != nil {
			t.Fatalf("download %d: %v", i, err)
		}
		if resp.DownloadURL != res.FileURL {
			t.Fatalf("unexpected download url %q", resp.DownloadURL)
		}
		if repo.resources[res.ID].Downloads != i {
			t.Fatalf("expected %d downloads, got %d", i, repo.resources[res.ID].Downloads)
		}
	}
}

func TestDownloadMissingResource(t *testing.T) {
	svc := NewResourceService(newFakeResourceRepo(), &fakeUploader{}, zerolog.Nop())

	if _, err := svc.Download(context.Background(), 404); !errors.Is(err, apperrors.ErrResourceNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestDeleteResourceAuthz(t *testing.T) {
	repo := newFakeResourceRepo()
	svc := NewResourceService(repo, &fakeUploader{url: "u"}, zerolog.Nop())

	res, err := svc.Upload(context.Background(), createResourceRequest(), pdfFileHeader(), 1)
	if err != nil {
		t.Fatalf("upload: %v", err)
	}

	if err := svc.Delete(context.Background(), res.ID, 2, models.RoleStudent); !errors.Is(err, apperrors.ErrPermissionDenied) {
		t.Fatalf("expected forbidden, got %v", err)
	}
	if err := svc.Delete(context.Background(), res.ID, 1, models.RoleStudent); err != nil {
		t.Fatalf("uploader delete: %v", err)
	}
}
