package services

import (
	"context"
	"mime/multipart"

	"github.com/e3mc/bschool-admin/internal/app/models"
	"github.com/e3mc/bschool-admin/internal/app/models/dto"
	"github.com/e3mc/bschool-admin/internal/app/repositories"
	"github.com/e3mc/bschool-admin/internal/pkg/apperrors"
	"github.com/e3mc/bschool-admin/internal/pkg/filestorage"
	"github.com/e3mc/bschool-admin/internal/pkg/logger"
)

// BlogService defines blog post operations.
type BlogService interface {
	Create(ctx context.Context, req *dto.BlogCreateRequest, image *multipart.FileHeader) (*models.Blog, error)
	GetAll(ctx context.Context) ([]models.Blog, error)
	GetByID(ctx context.Context, id int64) (*models.Blog, error)
	Update(ctx context.Context, id int64, req *dto.BlogUpdateRequest, image *multipart.FileHeader) (*models.Blog, error)
	Delete(ctx context.Context, id int64) ([]string, error)
}

// blogStore is the persistence surface the service needs, satisfied by
// repositories.BlogRepository.
type blogStore interface {
	Create(ctx context.Context, b *models.Blog) (*models.Blog, error)
	GetAll(ctx context.Context) ([]models.Blog, error)
	GetByID(ctx context.Context, id int64) (*models.Blog, error)
	Update(ctx context.Context, b *models.Blog) error
	Delete(ctx context.Context, id int64) error
}

type blogServiceImpl struct {
	blogRepo blogStore
	storage  filestorage.Storage
}

// NewBlogService creates a new blog service instance.
func NewBlogService(blogRepo *repositories.BlogRepository, storage filestorage.Storage) BlogService {
	return &blogServiceImpl{
		blogRepo: blogRepo,
		storage:  storage,
	}
}

// Create stores the cover image, then the post. The image is required.
func (s *blogServiceImpl) Create(ctx context.Context, req *dto.BlogCreateRequest, image *multipart.FileHeader) (*models.Blog, error) {
	if image == nil {
		return nil, apperrors.NewValidationError("blog image is required")
	}

	meta, err := s.storage.Save(image, filestorage.KindImage, "content")
	if err != nil {
		return nil, err
	}

	blog := &models.Blog{
		MetaTitle:       req.MetaTitle,
		MetaDescription: req.MetaDescription,
		MetaKeywords:    req.MetaKeywords,
		Title:           req.Title,
		BlogURL:         req.BlogURL,
		AuthorName:      req.AuthorName,
		Category:        req.Category,
		BlogDate:        req.BlogDate,
		BlogDescription: req.BlogDescription,
		BlogImage:       &meta,
	}

	created, err := s.blogRepo.Create(ctx, blog)
	if err != nil {
		if removeErr := s.storage.Remove(meta.Path); removeErr != nil {
			logger.Warn().Err(removeErr).Str("path", meta.Path).Msg("Failed to remove blog image after insert failure")
		}
		return nil, err
	}
	return created, nil
}

// GetAll returns every blog post, newest first.
func (s *blogServiceImpl) GetAll(ctx context.Context) ([]models.Blog, error) {
	return s.blogRepo.GetAll(ctx)
}

// GetByID retrieves a single blog post.
func (s *blogServiceImpl) GetByID(ctx context.Context, id int64) (*models.Blog, error) {
	return s.blogRepo.GetByID(ctx, id)
}

// Update applies the provided fields. A new image replaces the stored
// file; the previous one is removed best-effort after the record write
// succeeds. No upload keeps the existing image.
func (s *blogServiceImpl) Update(ctx context.Context, id int64, req *dto.BlogUpdateRequest, image *multipart.FileHeader) (*models.Blog, error) {
	blog, err := s.blogRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	applyString(&blog.MetaTitle, req.MetaTitle)
	applyString(&blog.MetaDescription, req.MetaDescription)
	applyString(&blog.MetaKeywords, req.MetaKeywords)
	applyString(&blog.Title, req.Title)
	applyString(&blog.BlogURL, req.BlogURL)
	applyString(&blog.AuthorName, req.AuthorName)
	applyString(&blog.Category, req.Category)
	applyString(&blog.BlogDate, req.BlogDate)
	applyString(&blog.BlogDescription, req.BlogDescription)

	var superseded *models.FileMeta
	if image != nil {
		meta, err := s.storage.Save(image, filestorage.KindImage, "content")
		if err != nil {
			return nil, err
		}
		superseded = blog.BlogImage
		blog.BlogImage = &meta
	}

	if err := s.blogRepo.Update(ctx, blog); err != nil {
		if image != nil {
			if removeErr := s.storage.Remove(blog.BlogImage.Path); removeErr != nil {
				logger.Warn().Err(removeErr).Msg("Failed to remove blog image after update failure")
			}
		}
		return nil, err
	}

	if superseded != nil {
		if err := s.storage.Remove(superseded.Path); err != nil {
			logger.Warn().Err(err).Str("path", superseded.Path).Int64("blogId", id).Msg("Failed to remove superseded blog image")
		}
	}
	return blog, nil
}

// Delete removes the post and best-effort deletes its image.
func (s *blogServiceImpl) Delete(ctx context.Context, id int64) ([]string, error) {
	blog, err := s.blogRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.blogRepo.Delete(ctx, id); err != nil {
		return nil, err
	}

	var files []models.FileMeta
	if blog.BlogImage != nil {
		files = append(files, *blog.BlogImage)
	}
	return s.storage.RemoveAll(files), nil
}

// EventService defines event operations.
type EventService interface {
	Create(ctx context.Context, req *dto.EventCreateRequest, image *multipart.FileHeader) (*models.Event, error)
	GetAll(ctx context.Context) ([]models.Event, error)
	GetByID(ctx context.Context, id int64) (*models.Event, error)
	Update(ctx context.Context, id int64, req *dto.EventUpdateRequest, image *multipart.FileHeader) (*models.Event, error)
	Delete(ctx context.Context, id int64) ([]string, error)
}

// eventStore mirrors blogStore for repositories.EventRepository.
type eventStore interface {
	Create(ctx context.Context, e *models.Event) (*models.Event, error)
	GetAll(ctx context.Context) ([]models.Event, error)
	GetByID(ctx context.Context, id int64) (*models.Event, error)
	Update(ctx context.Context, e *models.Event) error
	Delete(ctx context.Context, id int64) error
}

type eventServiceImpl struct {
	eventRepo eventStore
	storage   filestorage.Storage
}

// NewEventService creates a new event service instance.
func NewEventService(eventRepo *repositories.EventRepository, storage filestorage.Storage) EventService {
	return &eventServiceImpl{
		eventRepo: eventRepo,
		storage:   storage,
	}
}

// Create stores the cover image, then the event. The image is required.
func (s *eventServiceImpl) Create(ctx context.Context, req *dto.EventCreateRequest, image *multipart.FileHeader) (*models.Event, error) {
	if image == nil {
		return nil, apperrors.NewValidationError("event image is required")
	}

	meta, err := s.storage.Save(image, filestorage.KindImage, "content")
	if err != nil {
		return nil, err
	}

	event := &models.Event{
		MetaTitle:        req.MetaTitle,
		MetaDescription:  req.MetaDescription,
		MetaKeywords:     req.MetaKeywords,
		EventTitle:       req.EventTitle,
		EventURL:         req.EventURL,
		AuthorName:       req.AuthorName,
		Category:         req.Category,
		EventDate:        req.EventDate,
		EventDescription: req.EventDescription,
		EventImage:       &meta,
	}

	created, err := s.eventRepo.Create(ctx, event)
	if err != nil {
		if removeErr := s.storage.Remove(meta.Path); removeErr != nil {
			logger.Warn().Err(removeErr).Str("path", meta.Path).Msg("Failed to remove event image after insert failure")
		}
		return nil, err
	}
	return created, nil
}

// GetAll returns every event, newest first.
func (s *eventServiceImpl) GetAll(ctx context.Context) ([]models.Event, error) {
	return s.eventRepo.GetAll(ctx)
}

// GetByID retrieves a single event.
func (s *eventServiceImpl) GetByID(ctx context.Context, id int64) (*models.Event, error) {
	return s.eventRepo.GetByID(ctx, id)
}

// Update applies the provided fields with the same image semantics as
// blog updates.
func (s *eventServiceImpl) Update(ctx context.Context, id int64, req *dto.EventUpdateRequest, image *multipart.FileHeader) (*models.Event, error) {
	event, err := s.eventRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	applyString(&event.MetaTitle, req.MetaTitle)
	applyString(&event.MetaDescription, req.MetaDescription)
	applyString(&event.MetaKeywords, req.MetaKeywords)
	applyString(&event.EventTitle, req.EventTitle)
	applyString(&event.EventURL, req.EventURL)
	applyString(&event.AuthorName, req.AuthorName)
	applyString(&event.Category, req.Category)
	applyString(&event.EventDate, req.EventDate)
	applyString(&event.EventDescription, req.EventDescription)

	var superseded *models.FileMeta
	if image != nil {
		meta, err := s.storage.Save(image, filestorage.KindImage, "content")
		if err != nil {
			return nil, err
		}
		superseded = event.EventImage
		event.EventImage = &meta
	}

	if err := s.eventRepo.Update(ctx, event); err != nil {
		if image != nil {
			if removeErr := s.storage.Remove(event.EventImage.Path); removeErr != nil {
				logger.Warn().Err(removeErr).Msg("Failed to remove event image after update failure")
			}
		}
		return nil, err
	}

	if superseded != nil {
		if err := s.storage.Remove(superseded.Path); err != nil {
			logger.Warn().Err(err).Str("path", superseded.Path).Int64("eventId", id).Msg("Failed to remove superseded event image")
		}
	}
	return event, nil
}

// Delete removes the event and best-effort deletes its image.
func (s *eventServiceImpl) Delete(ctx context.Context, id int64) ([]string, error) {
	event, err := s.eventRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.eventRepo.Delete(ctx, id); err != nil {
		return nil, err
	}

	var files []models.FileMeta
	if event.EventImage != nil {
		files = append(files, *event.EventImage)
	}
	return s.storage.RemoveAll(files), nil
}
