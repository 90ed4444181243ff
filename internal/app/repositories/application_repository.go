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

var applicationColumns = []string{
	"id", "name", "email", "date_of_birth", "phone", "zip_code", "status",
	"address", "created_at", "updated_at",
}

// ApplicationRepository handles apply-now submission database operations.
type ApplicationRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewApplicationRepository creates a new ApplicationRepository.
func NewApplicationRepository(db *pgxpool.Pool) *ApplicationRepository {
	return &ApplicationRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

func scanApplication(row pgx.Row) (*models.Application, error) {
	a := &models.Application{}
	err := row.Scan(
		&a.ID, &a.Name, &a.Email, &a.DateOfBirth, &a.Phone, &a.ZipCode,
		&a.Status, &a.Address, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return a, nil
}

// Create inserts an application and returns it with generated fields.
func (r *ApplicationRepository) Create(ctx context.Context, a *models.Application) (*models.Application, error) {
	sql, args, err := r.sb.Insert("applications").
		Columns("name", "email", "date_of_birth", "phone", "zip_code", "status", "address").
		Values(a.Name, a.Email, a.DateOfBirth, a.Phone, a.ZipCode, a.Status, a.Address).
		Suffix("RETURNING " + joinColumns(applicationColumns)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build create application query: %w", err)
	}

	created, err := scanApplication(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		logger.Error().Err(err).Msg("Error executing create application query")
		return nil, fmt.Errorf("error creating application: %w", err)
	}
	return created, nil
}

// GetAll returns every application, newest first.
func (r *ApplicationRepository) GetAll(ctx context.Context) ([]models.Application, error) {
	sql, args, err := r.sb.Select(applicationColumns...).
		From("applications").
		OrderBy("created_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list applications query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list applications query")
		return nil, fmt.Errorf("error listing applications: %w", err)
	}
	defer rows.Close()

	applications := []models.Application{}
	for rows.Next() {
		a, err := scanApplication(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning application row: %w", err)
		}
		applications = append(applications, *a)
	}
	return applications, rows.Err()
}

// GetByID retrieves an application by ID.
func (r *ApplicationRepository) GetByID(ctx context.Context, id int64) (*models.Application, error) {
	sql, args, err := r.sb.Select(applicationColumns...).
		From("applications").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get application query: %w", err)
	}

	a, err := scanApplication(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		logger.Error().Err(err).Msg("Error executing get application query")
		return nil, fmt.Errorf("error getting application: %w", err)
	}
	return a, nil
}

// Delete removes an application by ID.
func (r *ApplicationRepository) Delete(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Delete("applications").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete application query: %w", err)
	}

	result, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing delete application query")
		return fmt.Errorf("error deleting application: %w", err)
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// CountAll returns the total number of applications.
func (r *ApplicationRepository) CountAll(ctx context.Context) (int64, error) {
	return countTable(ctx, r.db, r.sb, "applications")
}

// CountByStatus returns application counts grouped by the raw status value.
func (r *ApplicationRepository) CountByStatus(ctx context.Context) (map[string]int64, error) {
	return groupCount(ctx, r.db, r.sb, "applications", "status")
}
