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

var brochureColumns = []string{
	"id", "full_name", "email", "phone", "course_interest", "agree_to_updates",
	"created_at",
}

// BrochureRepository handles brochure request database operations.
type BrochureRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewBrochureRepository creates a new BrochureRepository.
func NewBrochureRepository(db *pgxpool.Pool) *BrochureRepository {
	return &BrochureRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

func scanBrochure(row pgx.Row) (*models.BrochureRequest, error) {
	b := &models.BrochureRequest{}
	err := row.Scan(
		&b.ID, &b.FullName, &b.Email, &b.Phone, &b.CourseInterest,
		&b.AgreeToUpdates, &b.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return b, nil
}

// Create inserts a brochure request and returns it with generated fields.
func (r *BrochureRepository) Create(ctx context.Context, b *models.BrochureRequest) (*models.BrochureRequest, error) {
	sql, args, err := r.sb.Insert("brochure_requests").
		Columns("full_name", "email", "phone", "course_interest", "agree_to_updates").
		Values(b.FullName, b.Email, b.Phone, b.CourseInterest, b.AgreeToUpdates).
		Suffix("RETURNING " + joinColumns(brochureColumns)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build create brochure request query: %w", err)
	}

	created, err := scanBrochure(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		logger.Error().Err(err).Msg("Error executing create brochure request query")
		return nil, fmt.Errorf("error creating brochure request: %w", err)
	}
	return created, nil
}

// List returns a page of brochure requests, newest first, optionally
// filtered by a case-insensitive substring over fullName, email and
// courseInterest.
func (r *BrochureRepository) List(ctx context.Context, search string, offset uint64, limit int) ([]models.BrochureRequest, int64, error) {
	applyFilter := func(b squirrel.SelectBuilder) squirrel.SelectBuilder {
		if search == "" {
			return b
		}
		pattern := "%" + search + "%"
		return b.Where(squirrel.Or{
			squirrel.ILike{"full_name": pattern},
			squirrel.ILike{"email": pattern},
			squirrel.ILike{"course_interest": pattern},
		})
	}

	countSQL, countArgs, err := applyFilter(r.sb.Select("COUNT(*)").From("brochure_requests")).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build count brochure requests query: %w", err)
	}
	var total int64
	if err := r.db.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		logger.Error().Err(err).Msg("Error executing count brochure requests query")
		return nil, 0, fmt.Errorf("error counting brochure requests: %w", err)
	}

	sql, args, err := applyFilter(r.sb.Select(brochureColumns...).From("brochure_requests")).
		OrderBy("created_at DESC").
		Offset(offset).
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build list brochure requests query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list brochure requests query")
		return nil, 0, fmt.Errorf("error listing brochure requests: %w", err)
	}
	defer rows.Close()

	requests := []models.BrochureRequest{}
	for rows.Next() {
		b, err := scanBrochure(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("error scanning brochure request row: %w", err)
		}
		requests = append(requests, *b)
	}
	return requests, total, rows.Err()
}

// GetByID retrieves a brochure request by ID.
func (r *BrochureRepository) GetByID(ctx context.Context, id int64) (*models.BrochureRequest, error) {
	sql, args, err := r.sb.Select(brochureColumns...).
		From("brochure_requests").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get brochure request query: %w", err)
	}

	b, err := scanBrochure(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		logger.Error().Err(err).Msg("Error executing get brochure request query")
		return nil, fmt.Errorf("error getting brochure request: %w", err)
	}
	return b, nil
}

// Delete removes a brochure request by ID and returns the deleted record.
func (r *BrochureRepository) Delete(ctx context.Context, id int64) (*models.BrochureRequest, error) {
	sql, args, err := r.sb.Delete("brochure_requests").
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING " + joinColumns(brochureColumns)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build delete brochure request query: %w", err)
	}

	b, err := scanBrochure(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		logger.Error().Err(err).Msg("Error executing delete brochure request query")
		return nil, fmt.Errorf("error deleting brochure request: %w", err)
	}
	return b, nil
}

// CountAll returns the total number of brochure requests.
func (r *BrochureRepository) CountAll(ctx context.Context) (int64, error) {
	return countTable(ctx, r.db, r.sb, "brochure_requests")
}

// CountByCourseInterest returns counts grouped by the raw courseInterest.
func (r *BrochureRepository) CountByCourseInterest(ctx context.Context) (map[string]int64, error) {
	return groupCount(ctx, r.db, r.sb, "brochure_requests", "course_interest")
}

// CountPerDay returns brochure request counts per calendar day.
func (r *BrochureRepository) CountPerDay(ctx context.Context) (map[string]int64, error) {
	return countPerDay(ctx, r.db, "brochure_requests", "to_char(created_at, 'YYYY-MM-DD')")
}

var counsellingColumns = []string{
	"id", "name", "email", "phone_code", "phone", "agreed_to_terms", "created_at",
}

// CounsellingRepository handles counselling request database operations.
type CounsellingRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewCounsellingRepository creates a new CounsellingRepository.
func NewCounsellingRepository(db *pgxpool.Pool) *CounsellingRepository {
	return &CounsellingRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

func scanCounselling(row pgx.Row) (*models.Counselling, error) {
	c := &models.Counselling{}
	err := row.Scan(
		&c.ID, &c.Name, &c.Email, &c.PhoneCode, &c.Phone, &c.AgreedToTerms,
		&c.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return c, nil
}

// Create inserts a counselling request and returns it with generated fields.
func (r *CounsellingRepository) Create(ctx context.Context, c *models.Counselling) (*models.Counselling, error) {
	sql, args, err := r.sb.Insert("counselling_requests").
		Columns("name", "email", "phone_code", "phone", "agreed_to_terms").
		Values(c.Name, c.Email, c.PhoneCode, c.Phone, c.AgreedToTerms).
		Suffix("RETURNING " + joinColumns(counsellingColumns)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build create counselling query: %w", err)
	}

	created, err := scanCounselling(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		logger.Error().Err(err).Msg("Error executing create counselling query")
		return nil, fmt.Errorf("error creating counselling request: %w", err)
	}
	return created, nil
}

// GetAll returns every counselling request, newest first.
func (r *CounsellingRepository) GetAll(ctx context.Context) ([]models.Counselling, error) {
	sql, args, err := r.sb.Select(counsellingColumns...).
		From("counselling_requests").
		OrderBy("created_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list counselling query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list counselling query")
		return nil, fmt.Errorf("error listing counselling requests: %w", err)
	}
	defer rows.Close()

	requests := []models.Counselling{}
	for rows.Next() {
		c, err := scanCounselling(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning counselling row: %w", err)
		}
		requests = append(requests, *c)
	}
	return requests, rows.Err()
}

// Delete removes a counselling request by ID and returns the deleted record.
func (r *CounsellingRepository) Delete(ctx context.Context, id int64) (*models.Counselling, error) {
	sql, args, err := r.sb.Delete("counselling_requests").
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING " + joinColumns(counsellingColumns)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build delete counselling query: %w", err)
	}

	c, err := scanCounselling(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		logger.Error().Err(err).Msg("Error executing delete counselling query")
		return nil, fmt.Errorf("error deleting counselling request: %w", err)
	}
	return c, nil
}

// CountAll returns the total number of counselling requests.
func (r *CounsellingRepository) CountAll(ctx context.Context) (int64, error) {
	return countTable(ctx, r.db, r.sb, "counselling_requests")
}

// CountPerDay returns counselling request counts per calendar day.
func (r *CounsellingRepository) CountPerDay(ctx context.Context) (map[string]int64, error) {
	return countPerDay(ctx, r.db, "counselling_requests", "to_char(created_at, 'YYYY-MM-DD')")
}

var partnerCounselingColumns = []string{
	"id", "full_name", "email_address", "phone_number", "user_message",
	"terms_accepted", "created_at",
}

// PartnerCounselingRepository handles partner counselling request database
// operations.
type PartnerCounselingRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewPartnerCounselingRepository creates a new PartnerCounselingRepository.
func NewPartnerCounselingRepository(db *pgxpool.Pool) *PartnerCounselingRepository {
	return &PartnerCounselingRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

func scanPartnerCounseling(row pgx.Row) (*models.PartnerCounseling, error) {
	p := &models.PartnerCounseling{}
	err := row.Scan(
		&p.ID, &p.FullName, &p.EmailAddress, &p.PhoneNumber, &p.UserMessage,
		&p.TermsAccepted, &p.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return p, nil
}

// Create inserts a partner counselling request.
func (r *PartnerCounselingRepository) Create(ctx context.Context, p *models.PartnerCounseling) (*models.PartnerCounseling, error) {
	sql, args, err := r.sb.Insert("partner_counseling_requests").
		Columns("full_name", "email_address", "phone_number", "user_message", "terms_accepted").
		Values(p.FullName, p.EmailAddress, p.PhoneNumber, p.UserMessage, p.TermsAccepted).
		Suffix("RETURNING " + joinColumns(partnerCounselingColumns)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build create partner counseling query: %w", err)
	}

	created, err := scanPartnerCounseling(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		logger.Error().Err(err).Msg("Error executing create partner counseling query")
		return nil, fmt.Errorf("error creating partner counseling request: %w", err)
	}
	return created, nil
}

// GetAll returns every partner counselling request, newest first.
func (r *PartnerCounselingRepository) GetAll(ctx context.Context) ([]models.PartnerCounseling, error) {
	sql, args, err := r.sb.Select(partnerCounselingColumns...).
		From("partner_counseling_requests").
		OrderBy("created_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list partner counseling query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list partner counseling query")
		return nil, fmt.Errorf("error listing partner counseling requests: %w", err)
	}
	defer rows.Close()

	requests := []models.PartnerCounseling{}
	for rows.Next() {
		p, err := scanPartnerCounseling(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning partner counseling row: %w", err)
		}
		requests = append(requests, *p)
	}
	return requests, rows.Err()
}

// Delete removes a partner counselling request by ID.
func (r *PartnerCounselingRepository) Delete(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Delete("partner_counseling_requests").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete partner counseling query: %w", err)
	}

	result, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing delete partner counseling query")
		return fmt.Errorf("error deleting partner counseling request: %w", err)
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// CountAll returns the total number of partner counselling requests.
func (r *PartnerCounselingRepository) CountAll(ctx context.Context) (int64, error) {
	return countTable(ctx, r.db, r.sb, "partner_counseling_requests")
}

// CountPerDay returns partner counselling request counts per calendar day.
func (r *PartnerCounselingRepository) CountPerDay(ctx context.Context) (map[string]int64, error) {
	return countPerDay(ctx, r.db, "partner_counseling_requests", "to_char(created_at, 'YYYY-MM-DD')")
}
