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

var partnerColumns = []string{
	"id", "ap_code", "institute_type", "contact_person", "contact_number",
	"country", "state", "address", "website", "email", "work_permit_area",
	"images", "created_at", "updated_at",
}

// PartnerRepository handles academic partner database operations.
type PartnerRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewPartnerRepository creates a new PartnerRepository.
func NewPartnerRepository(db *pgxpool.Pool) *PartnerRepository {
	return &PartnerRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

func scanPartner(row pgx.Row) (*models.AcademicPartner, error) {
	p := &models.AcademicPartner{}
	var imagesData []byte
	err := row.Scan(
		&p.ID, &p.APCode, &p.InstituteType, &p.ContactPerson, &p.ContactNumber,
		&p.Country, &p.State, &p.Address, &p.Website, &p.Email, &p.WorkPermitArea,
		&imagesData, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if p.Images, err = unmarshalFiles(imagesData); err != nil {
		return nil, err
	}
	return p, nil
}

// Create inserts a partner. A duplicate apCode maps to ErrDuplicateAPCode,
// whether detected by a prior lookup or by the unique constraint under a
// concurrent insert.
func (r *PartnerRepository) Create(ctx context.Context, p *models.AcademicPartner) (*models.AcademicPartner, error) {
	images, err := marshalFiles(p.Images)
	if err != nil {
		return nil, err
	}

	sql, args, err := r.sb.Insert("academic_partners").
		Columns("ap_code", "institute_type", "contact_person", "contact_number",
			"country", "state", "address", "website", "email", "work_permit_area",
			"images").
		Values(p.APCode, p.InstituteType, p.ContactPerson, p.ContactNumber,
			p.Country, p.State, p.Address, p.Website, p.Email, p.WorkPermitArea,
			images).
		Suffix("RETURNING " + joinColumns(partnerColumns)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build create partner query: %w", err)
	}

	created, err := scanPartner(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if isDuplicateKeyError(err) {
			return nil, apperrors.ErrDuplicateAPCode
		}
		logger.Error().Err(err).Msg("Error executing create partner query")
		return nil, fmt.Errorf("error creating partner: %w", err)
	}
	return created, nil
}

// GetAll returns every partner, newest first.
func (r *PartnerRepository) GetAll(ctx context.Context) ([]models.AcademicPartner, error) {
	sql, args, err := r.sb.Select(partnerColumns...).
		From("academic_partners").
		OrderBy("created_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list partners query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list partners query")
		return nil, fmt.Errorf("error listing partners: %w", err)
	}
	defer rows.Close()

	partners := []models.AcademicPartner{}
	for rows.Next() {
		p, err := scanPartner(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning partner row: %w", err)
		}
		partners = append(partners, *p)
	}
	return partners, rows.Err()
}

// GetByID retrieves a partner by ID.
func (r *PartnerRepository) GetByID(ctx context.Context, id int64) (*models.AcademicPartner, error) {
	sql, args, err := r.sb.Select(partnerColumns...).
		From("academic_partners").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get partner query: %w", err)
	}

	p, err := scanPartner(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		logger.Error().Err(err).Msg("Error executing get partner query")
		return nil, fmt.Errorf("error getting partner: %w", err)
	}
	return p, nil
}

// GetByAPCode retrieves a partner by its unique apCode.
func (r *PartnerRepository) GetByAPCode(ctx context.Context, apCode string) (*models.AcademicPartner, error) {
	sql, args, err := r.sb.Select(partnerColumns...).
		From("academic_partners").
		Where(squirrel.Eq{"ap_code": apCode}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build partner lookup query: %w", err)
	}

	p, err := scanPartner(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		logger.Error().Err(err).Msg("Error executing partner lookup query")
		return nil, fmt.Errorf("error looking up partner: %w", err)
	}
	return p, nil
}

// Update writes the full partner record back.
func (r *PartnerRepository) Update(ctx context.Context, p *models.AcademicPartner) error {
	images, err := marshalFiles(p.Images)
	if err != nil {
		return err
	}

	sql, args, err := r.sb.Update("academic_partners").
		Set("ap_code", p.APCode).
		Set("institute_type", p.InstituteType).
		Set("contact_person", p.ContactPerson).
		Set("contact_number", p.ContactNumber).
		Set("country", p.Country).
		Set("state", p.State).
		Set("address", p.Address).
		Set("website", p.Website).
		Set("email", p.Email).
		Set("work_permit_area", p.WorkPermitArea).
		Set("images", images).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": p.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update partner query: %w", err)
	}

	result, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		if isDuplicateKeyError(err) {
			return apperrors.ErrDuplicateAPCode
		}
		logger.Error().Err(err).Msg("Error executing update partner query")
		return fmt.Errorf("error updating partner: %w", err)
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// Delete removes a partner by ID.
func (r *PartnerRepository) Delete(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Delete("academic_partners").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete partner query: %w", err)
	}

	result, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing delete partner query")
		return fmt.Errorf("error deleting partner: %w", err)
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// CountAll returns the total number of partners.
func (r *PartnerRepository) CountAll(ctx context.Context) (int64, error) {
	return countTable(ctx, r.db, r.sb, "academic_partners")
}
