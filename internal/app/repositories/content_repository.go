package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/e3mc/bschool-admin/internal/app/models"
	"github.com/e3mc/bschool-admin/internal/pkg/apperrors"
	"github.com/e3mc/bschool-admin/internal/pkg/logger"
)

var blogColumns = []string{
	"id", "meta_title", "meta_description", "meta_keywords", "title",
	"blog_url", "author_name", "category", "blog_date", "blog_description",
	"blog_img", "created_at", "updated_at",
}

// BlogRepository handles blog post database operations.
type BlogRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewBlogRepository creates a new BlogRepository.
func NewBlogRepository(db *pgxpool.Pool) *BlogRepository {
	return &BlogRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

func scanBlog(row pgx.Row) (*models.Blog, error) {
	b := &models.Blog{}
	var imageData []byte
	err := row.Scan(
		&b.ID, &b.MetaTitle, &b.MetaDescription, &b.MetaKeywords, &b.Title,
		&b.BlogURL, &b.AuthorName, &b.Category, &b.BlogDate, &b.BlogDescription,
		&imageData, &b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if b.BlogImage, err = unmarshalFile(imageData); err != nil {
		return nil, err
	}
	return b, nil
}

// Create inserts a blog post and returns it with generated fields.
func (r *BlogRepository) Create(ctx context.Context, b *models.Blog) (*models.Blog, error) {
	image, err := marshalFile(b.BlogImage)
	if err != nil {
		return nil, err
	}

	sql, args, err := r.sb.Insert("blogs").
		Columns("meta_title", "meta_description", "meta_keywords", "title",
			"blog_url", "author_name", "category", "blog_date", "blog_description",
			"blog_img").
		Values(b.MetaTitle, b.MetaDescription, b.MetaKeywords, b.Title,
			b.BlogURL, b.AuthorName, b.Category, b.BlogDate, b.BlogDescription,
			image).
		Suffix("RETURNING " + joinColumns(blogColumns)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build create blog query: %w", err)
	}

	created, err := scanBlog(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		logger.Error().Err(err).Msg("Error executing create blog query")
		return nil, fmt.Errorf("error creating blog: %w", err)
	}
	return created, nil
}

// GetAll returns every blog post, newest first.
func (r *BlogRepository) GetAll(ctx context.Context) ([]models.Blog, error) {
	sql, args, err := r.sb.Select(blogColumns...).
		From("blogs").
		OrderBy("created_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list blogs query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list blogs query")
		return nil, fmt.Errorf("error listing blogs: %w", err)
	}
	defer rows.Close()

	blogs := []models.Blog{}
	for rows.Next() {
		b, err := scanBlog(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning blog row: %w", err)
		}
		blogs = append(blogs, *b)
	}
	return blogs, rows.Err()
}

// GetByID retrieves a blog post by ID.
func (r *BlogRepository) GetByID(ctx context.Context, id int64) (*models.Blog, error) {
	sql, args, err := r.sb.Select(blogColumns...).
		From("blogs").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get blog query: %w", err)
	}

	b, err := scanBlog(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		logger.Error().Err(err).Msg("Error executing get blog query")
		return nil, fmt.Errorf("error getting blog: %w", err)
	}
	return b, nil
}

// Update writes the full blog record back.
func (r *BlogRepository) Update(ctx context.Context, b *models.Blog) error {
	image, err := marshalFile(b.BlogImage)
	if err != nil {
		return err
	}

	sql, args, err := r.sb.Update("blogs").
		Set("meta_title", b.MetaTitle).
		Set("meta_description", b.MetaDescription).
		Set("meta_keywords", b.MetaKeywords).
		Set("title", b.Title).
		Set("blog_url", b.BlogURL).
		Set("author_name", b.AuthorName).
		Set("category", b.Category).
		Set("blog_date", b.BlogDate).
		Set("blog_description", b.BlogDescription).
		Set("blog_img", image).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": b.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update blog query: %w", err)
	}

	result, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing update blog query")
		return fmt.Errorf("error updating blog: %w", err)
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// Delete removes a blog post by ID.
func (r *BlogRepository) Delete(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Delete("blogs").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete blog query: %w", err)
	}

	result, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing delete blog query")
		return fmt.Errorf("error deleting blog: %w", err)
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// CountAll returns the total number of blog posts.
func (r *BlogRepository) CountAll(ctx context.Context) (int64, error) {
	return countTable(ctx, r.db, r.sb, "blogs")
}

// CountPerDay returns blog counts per day, preferring the editorial
// blog_date over the row timestamp when one was provided.
func (r *BlogRepository) CountPerDay(ctx context.Context) (map[string]int64, error) {
	return countPerDay(ctx, r.db, "blogs",
		"COALESCE(NULLIF(blog_date, ''), to_char(created_at, 'YYYY-MM-DD'))")
}

var eventColumns = []string{
	"id", "meta_title", "meta_description", "meta_keywords", "event_title",
	"event_url", "author_name", "category", "event_date", "event_description",
	"event_img", "created_at", "updated_at",
}

// EventRepository handles event database operations.
type EventRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewEventRepository creates a new EventRepository.
func NewEventRepository(db *pgxpool.Pool) *EventRepository {
	return &EventRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

func scanEvent(row pgx.Row) (*models.Event, error) {
	e := &models.Event{}
	var imageData []byte
	err := row.Scan(
		&e.ID, &e.MetaTitle, &e.MetaDescription, &e.MetaKeywords, &e.EventTitle,
		&e.EventURL, &e.AuthorName, &e.Category, &e.EventDate, &e.EventDescription,
		&imageData, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if e.EventImage, err = unmarshalFile(imageData); err != nil {
		return nil, err
	}
	return e, nil
}

// Create inserts an event and returns it with generated fields.
func (r *EventRepository) Create(ctx context.Context, e *models.Event) (*models.Event, error) {
	image, err := marshalFile(e.EventImage)
	if err != nil {
		return nil, err
	}

	sql, args, err := r.sb.Insert("events").
		Columns("meta_title", "meta_description", "meta_keywords", "event_title",
			"event_url", "author_name", "category", "event_date", "event_description",
			"event_img").
		Values(e.MetaTitle, e.MetaDescription, e.MetaKeywords, e.EventTitle,
			e.EventURL, e.AuthorName, e.Category, e.EventDate, e.EventDescription,
			image).
		Suffix("RETURNING " + joinColumns(eventColumns)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build create event query: %w", err)
	}

	created, err := scanEvent(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		logger.Error().Err(err).Msg("Error executing create event query")
		return nil, fmt.Errorf("error creating event: %w", err)
	}
	return created, nil
}

// GetAll returns every event, newest first.
func (r *EventRepository) GetAll(ctx context.Context) ([]models.Event, error) {
	sql, args, err := r.sb.Select(eventColumns...).
		From("events").
		OrderBy("created_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list events query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list events query")
		return nil, fmt.Errorf("error listing events: %w", err)
	}
	defer rows.Close()

	events := []models.Event{}
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning event row: %w", err)
		}
		events = append(events, *e)
	}
	return events, rows.Err()
}

// GetByID retrieves an event by ID.
func (r *EventRepository) GetByID(ctx context.Context, id int64) (*models.Event, error) {
	sql, args, err := r.sb.Select(eventColumns...).
		From("events").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get event query: %w", err)
	}

	e, err := scanEvent(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		logger.Error().Err(err).Msg("Error executing get event query")
		return nil, fmt.Errorf("error getting event: %w", err)
	}
	return e, nil
}

// Update writes the full event record back.
func (r *EventRepository) Update(ctx context.Context, e *models.Event) error {
	image, err := marshalFile(e.EventImage)
	if err != nil {
		return err
	}

	sql, args, err := r.sb.Update("events").
		Set("meta_title", e.MetaTitle).
		Set("meta_description", e.MetaDescription).
		Set("meta_keywords", e.MetaKeywords).
		Set("event_title", e.EventTitle).
		Set("event_url", e.EventURL).
		Set("author_name", e.AuthorName).
		Set("category", e.Category).
		Set("event_date", e.EventDate).
		Set("event_description", e.EventDescription).
		Set("event_img", image).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": e.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update event query: %w", err)
	}

	result, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing update event query")
		return fmt.Errorf("error updating event: %w", err)
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// Delete removes an event by ID.
func (r *EventRepository) Delete(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Delete("events").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete event query: %w", err)
	}

	result, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing delete event query")
		return fmt.Errorf("error deleting event: %w", err)
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// CountAll returns the total number of events.
func (r *EventRepository) CountAll(ctx context.Context) (int64, error) {
	return countTable(ctx, r.db, r.sb, "events")
}

// CountPerDay returns event counts per day, preferring the editorial
// event_date over the row timestamp when one was provided.
func (r *EventRepository) CountPerDay(ctx context.Context) (map[string]int64, error) {
	return countPerDay(ctx, r.db, "events",
		"COALESCE(NULLIF(event_date, ''), to_char(created_at, 'YYYY-MM-DD'))")
}
