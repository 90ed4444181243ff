package services

import (
	"context"
	"mime/multipart"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/e3mc/bschool-admin/internal/app/models"
	"github.com/e3mc/bschool-admin/internal/app/models/dto"
	"github.com/e3mc/bschool-admin/internal/pkg/apperrors"
)

type stubBlogStore struct {
	blog      *models.Blog
	getErr    error
	createErr error
	updateErr error
	deleteErr error
}

func (s *stubBlogStore) Create(ctx context.Context, b *models.Blog) (*models.Blog, error) {
	if s.createErr != nil {
		return nil, s.createErr
	}
	b.ID = 1
	return b, nil
}

func (s *stubBlogStore) GetAll(ctx context.Context) ([]models.Blog, error) { return nil, nil }

func (s *stubBlogStore) GetByID(ctx context.Context, id int64) (*models.Blog, error) {
	if s.getErr != nil {
		return nil, s.getErr
	}
	return s.blog, nil
}

func (s *stubBlogStore) Update(ctx context.Context, b *models.Blog) error { return s.updateErr }

func (s *stubBlogStore) Delete(ctx context.Context, id int64) error { return s.deleteErr }

type stubEventStore struct {
	event     *models.Event
	getErr    error
	deleteErr error
}

func (s *stubEventStore) Create(ctx context.Context, e *models.Event) (*models.Event, error) {
	e.ID = 1
	return e, nil
}

func (s *stubEventStore) GetAll(ctx context.Context) ([]models.Event, error) { return nil, nil }

func (s *stubEventStore) GetByID(ctx context.Context, id int64) (*models.Event, error) {
	if s.getErr != nil {
		return nil, s.getErr
	}
	return s.event, nil
}

func (s *stubEventStore) Update(ctx context.Context, e *models.Event) error { return nil }

func (s *stubEventStore) Delete(ctx context.Context, id int64) error { return s.deleteErr }

func TestBlogCreateRequiresImage(t *testing.T) {
	svc := &blogServiceImpl{blogRepo: &stubBlogStore{}, storage: &stubStorage{}}

	_, err := svc.Create(context.Background(), &dto.BlogCreateRequest{Title: "Admissions open"}, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestBlogCreateFailureRemovesImage(t *testing.T) {
	storage := &stubStorage{}
	svc := &blogServiceImpl{blogRepo: &stubBlogStore{createErr: assert.AnError}, storage: storage}

	_, err := svc.Create(context.Background(),
		&dto.BlogCreateRequest{Title: "Admissions open"},
		&multipart.FileHeader{Filename: "cover.png"})
	require.Error(t, err)

	assert.Equal(t, []string{"/uploads/content/cover.png"}, storage.removed)
}

func TestBlogUpdateReplacesImageAndRemovesOldFile(t *testing.T) {
	storage := &stubStorage{}
	store := &stubBlogStore{blog: &models.Blog{
		ID:        2,
		Title:     "Admissions open",
		BlogImage: fileMeta("/uploads/content/old_cover.png"),
	}}
	svc := &blogServiceImpl{blogRepo: store, storage: storage}

	blog, err := svc.Update(context.Background(), 2, &dto.BlogUpdateRequest{},
		&multipart.FileHeader{Filename: "new_cover.png"})
	require.NoError(t, err)

	assert.Equal(t, "/uploads/content/new_cover.png", blog.BlogImage.Path)
	assert.Equal(t, []string{"/uploads/content/old_cover.png"}, storage.removed)
}

func TestBlogUpdateWithoutUploadKeepsImage(t *testing.T) {
	storage := &stubStorage{}
	store := &stubBlogStore{blog: &models.Blog{
		ID:        2,
		Title:     "Admissions open",
		BlogImage: fileMeta("/uploads/content/cover.png"),
	}}
	svc := &blogServiceImpl{blogRepo: store, storage: storage}

	title := "Admissions closing soon"
	blog, err := svc.Update(context.Background(), 2, &dto.BlogUpdateRequest{Title: &title}, nil)
	require.NoError(t, err)

	assert.Equal(t, "Admissions closing soon", blog.Title)
	assert.Equal(t, "/uploads/content/cover.png", blog.BlogImage.Path)
	assert.Empty(t, storage.removed)
}

func TestBlogUpdateFailureRemovesNewImageKeepsOld(t *testing.T) {
	storage := &stubStorage{}
	store := &stubBlogStore{
		blog:      &models.Blog{ID: 2, BlogImage: fileMeta("/uploads/content/old_cover.png")},
		updateErr: assert.AnError,
	}
	svc := &blogServiceImpl{blogRepo: store, storage: storage}

	_, err := svc.Update(context.Background(), 2, &dto.BlogUpdateRequest{},
		&multipart.FileHeader{Filename: "new_cover.png"})
	require.Error(t, err)

	assert.Equal(t, []string{"/uploads/content/new_cover.png"}, storage.removed)
}

func TestEventDeleteRemovesImage(t *testing.T) {
	storage := &stubStorage{}
	store := &stubEventStore{event: &models.Event{
		ID:         3,
		EventTitle: "Open day",
		EventImage: fileMeta("/uploads/content/banner.png"),
	}}
	svc := &eventServiceImpl{eventRepo: store, storage: storage}

	warnings, err := svc.Delete(context.Background(), 3)
	require.NoError(t, err)

	assert.Empty(t, warnings)
	assert.Equal(t, []string{"/uploads/content/banner.png"}, storage.removed)
}

func TestEventDeleteCollectsRemovalWarnings(t *testing.T) {
	storage := &stubStorage{failRemove: map[string]error{
		"/uploads/content/banner.png": assert.AnError,
	}}
	store := &stubEventStore{event: &models.Event{
		ID:         3,
		EventImage: fileMeta("/uploads/content/banner.png"),
	}}
	svc := &eventServiceImpl{eventRepo: store, storage: storage}

	warnings, err := svc.Delete(context.Background(), 3)
	require.NoError(t, err)

	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], "/uploads/content/banner.png")
}
