package services

import (
	"context"
	"errors"
	"sort"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/campusconnect/backend/internal/app/models"
	"github.com/campusconnect/backend/internal/app/models/dto"
	"github.com/campusconnect/backend/internal/app/repositories"
	"github.com/campusconnect/backend/internal/pkg/apperrors"
)

type fakeDiscussionRepo struct {
	discussions   map[int64]*models.Discussion
	comments      map[int64][]models.Comment
	nextID        int64
	nextCommentID int64
	now           time.Time
}

func newFakeDiscussionRepo() *fakeDiscussionRepo {
	return &fakeDiscussionRepo{
		discussions:   map[int64]*models.Discussion{},
		comments:      map[int64][]models.Comment{},
		nextID:        1,
		nextCommentID: 1,
		now:           time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
	}
}

// tick returns strictly increasing timestamps so ordering is deterministic
func (f *fakeDiscussionRepo) tick() time.Time {
	f.now = f.now.Add(time.Minute)
	return f.now
}

func (f *fakeDiscussionRepo) List(ctx context.Context, department, search *string, page, limit, previewLimit int) ([]repositories.DiscussionListRow, int64, error) {
	var rows []repositories.DiscussionListRow
	for _, d := range f.discussions {
		if department != nil && *department != "" && d.Department != *department {
			continue
		}
		clone := *d
		all := append([]models.Comment(nil), f.comments[d.ID]...)
		sort.Slice(all, func(i, j int) bool { return all[i].CreatedAt.After(all[j].CreatedAt) })
		if len(all) > previewLimit {
			all = all[:previewLimit]
		}
		clone.Comments = all
		rows = append(rows, repositories.DiscussionListRow{
			Discussion:   clone,
			CommentCount: len(f.comments[d.ID]),
		})
	}
	return rows, int64(len(rows)), nil
}

func (f *fakeDiscussionRepo) GetByID(ctx context.Context, id int64) (*models.Discussion, error) {
	d, ok := f.discussions[id]
	if !ok {
		return nil, apperrors.NewResourceNotFoundError("Discussion not found")
	}
	clone := *d
	all := append([]models.Comment(nil), f.comments[id]...)
	sort.Slice(all, func(i, j int) bool { return all[i].CreatedAt.Before(all[j].CreatedAt) })
	clone.Comments = all
	return &clone, nil
}

func (f *fakeDiscussionRepo) Create(ctx context.Context, d *models.Discussion) error {
	d.ID = f.nextID
	d.CreatedAt = f.tick()
	f.nextID++
	clone := *d
	f.discussions[d.ID] = &clone
	return nil
}

func (f *fakeDiscussionRepo) CreateComment(ctx context.Context, c *models.Comment) error {
	c.ID = f.nextCommentID
	c.CreatedAt = f.tick()
	f.nextCommentID++
	f.comments[c.DiscussionID] = append(f.comments[c.DiscussionID], *c)
	return nil
}

func (f *fakeDiscussionRepo) IncrementUpvotes(ctx context.Context, id int64) (int, error) {
	d, ok := f.discussions[id]
	if !ok {
		return 0, apperrors.NewResourceNotFoundError("Discussion not found")
	}
	d.Upvotes++
	return d.Upvotes, nil
}

func (f *fakeDiscussionRepo) Delete(ctx context.Context, id int64) error {
	if _, ok := f.discussions[id]; !ok {
		return apperrors.NewResourceNotFoundError("Discussion not found")
	}
	delete(f.discussions, id)
	delete(f.comments, id)
	return nil
}

func newDiscussionService(repo *fakeDiscussionRepo) DiscussionService {
	return NewDiscussionService(repo, zerolog.Nop())
}

func createDiscussionRequest() *dto.CreateDiscussionRequest {
	return &dto.CreateDiscussionRequest{
		Title:      "Best electives?",
		Content:    "Which electives pair well with distributed systems?",
		Department: "CS",
	}
}

func TestListEmbedsLatestThreeComments(t *testing.T) {
	repo := newFakeDiscussionRepo()
	svc := newDiscussionService(repo)

	d, err := svc.Create(context.Background(), createDiscussionRequest(), 1)
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	for i := 0; i < 5; i++ {
		if _, err := svc.AddComment(context.Background(), d.ID, &dto.CreateCommentRequest{Content: "comment"}, 2); err != nil {
			t.Fatalf("add comment %d: %v", i, err)
		}
	}

	resp, err := svc.List(context.Background(), &dto.DiscussionFilter{Page: 1, Limit: 10})
	if err != nil {
		t.Fatalf("list: %v", err)
	}

	items, ok := resp.Data.([]dto.DiscussionListItem)
	if !ok {
		t.Fatalf("unexpected list payload type %T", resp.Data)
	}
	if len(items) != 1 {
		t.Fatalf("expected 1 discussion, got %d", len(items))
	}
	item := items[0]
	if item.CommentCount != 5 {
		t.Fatalf("expected comment count 5, got %d", item.CommentCount)
	}
	if len(item.Comments) != 3 {
		t.Fatalf("expected 3 embedded comments, got %d", len(item.Comments))
	}
	// newest first: the 5th comment leads
	if item.Comments[0].ID != 5 {
		t.Fatalf("expected newest comment first, got id %d", item.Comments[0].ID)
	}
}

func TestGetOneReturnsAllCommentsOldestFirst(t *testing.T) {
	repo := newFakeDiscussionRepo()
	svc := newDiscussionService(repo)

	d, err := svc.Create(context.Background(), createDiscussionRequest(), 1)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	for i := 0; i < 4; i++ {
		if _, err := svc.AddComment(context.Background(), d.ID, &dto.CreateCommentRequest{Content: "c"}, 2); err != nil {
			t.Fatalf("add comment: %v", err)
		}
	}

	full, err := svc.GetByID(context.Background(), d.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if len(full.Comments) != 4 {
		t.Fatalf("expected all 4 comments, got %d", len(full.Comments))
	}
	for i := 1; i < len(full.Comments); i++ {
		if full.Comments[i].CreatedAt.Before(full.Comments[i-1].CreatedAt) {
			t.Fatal("comments must be ordered oldest first")
		}
	}
}

func TestAddCommentMissingDiscussion(t *testing.T) {
	svc := newDiscussionService(newFakeDiscussionRepo())

	_, err := svc.AddComment(context.Background(), 77, &dto.CreateCommentRequest{Content: "hi"}, 1)
	if !errors.Is(err, apperrors.ErrResourceNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestUpvoteRepeats(t *testing.T) {
	repo := newFakeDiscussionRepo()
	svc := newDiscussionService(repo)

	d, err := svc.Create(context.Background(), createDiscussionRequest(), 1)
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	// no per-user uniqueness: every call counts
	for i := 1; i <= 3; i++ {
		resp, err := svc.Upvote(context.Background(), d.ID)
		if err != nil {
			t.Fatalf("upvote %d: %v", i, err)
		}
		if resp.Upvotes != i {
			t.Fatalf("expected %d upvotes, got %d", i, resp.Upvotes)
		}
	}
}

func TestDeleteDiscussionAuthz(t *testing.T) {
	svc := newDiscussionService(newFakeDiscussionRepo())

	d, err := svc.Create(context.Background(), createDiscussionRequest(), 1)
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := svc.Delete(context.Background(), d.ID, 2, models.RoleStudent); !errors.Is(err, apperrors.ErrPermissionDenied) {
		t.Fatalf("expected forbidden for stranger, got %v", err)
	}
	if err := svc.Delete(context.Background(), d.ID, 1, models.RoleStudent); err != nil {
		t.Fatalf("author delete: %v", err)
	}
}
