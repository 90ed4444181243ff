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

var formColumns = []string{
	"id", "first_name", "last_name", "email", "phone", "dob", "gender",
	"country", "father_name", "mother_name", "marital_status",
	"highest_qualifications", "address_line1", "address_line2", "city", "state",
	"education_type", "employment_type", "identification_type", "awards_type",
	"purpose_type", "education_documents", "employment_documents",
	"identification_documents", "awards_documents", "purpose_documents",
	"resume_documents", "created_at", "updated_at",
}

// FormRepository handles admission form database operations.
type FormRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewFormRepository creates a new FormRepository.
func NewFormRepository(db *pgxpool.Pool) *FormRepository {
	return &FormRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

func scanForm(row pgx.Row) (*models.Form, error) {
	f := &models.Form{}
	var education, employment, identification, awards, purpose, resume []byte
	err := row.Scan(
		&f.ID, &f.FirstName, &f.LastName, &f.Email, &f.Phone, &f.DOB, &f.Gender,
		&f.Country, &f.FatherName, &f.MotherName, &f.MaritalStatus,
		&f.HighestQualifications, &f.AddressLine1, &f.AddressLine2, &f.City, &f.State,
		&f.EducationType, &f.EmploymentType, &f.IdentificationType, &f.AwardsType,
		&f.PurposeType, &education, &employment, &identification, &awards, &purpose,
		&resume, &f.CreatedAt, &f.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if f.EducationDocuments, err = unmarshalFiles(education); err != nil {
		return nil, err
	}
	if f.EmploymentDocuments, err = unmarshalFiles(employment); err != nil {
		return nil, err
	}
	if f.IdentificationDocuments, err = unmarshalFiles(identification); err != nil {
		return nil, err
	}
	if f.AwardsDocuments, err = unmarshalFiles(awards); err != nil {
		return nil, err
	}
	if f.PurposeDocuments, err = unmarshalFiles(purpose); err != nil {
		return nil, err
	}
	if f.ResumeDocuments, err = unmarshalFiles(resume); err != nil {
		return nil, err
	}
	return f, nil
}

// Create inserts an admission form and returns it with generated fields.
func (r *FormRepository) Create(ctx context.Context, f *models.Form) (*models.Form, error) {
	lists := make([][]byte, 6)
	for i, files := range [][]models.FileMeta{
		f.EducationDocuments, f.EmploymentDocuments, f.IdentificationDocuments,
		f.AwardsDocuments, f.PurposeDocuments, f.ResumeDocuments,
	} {
		data, err := marshalFiles(files)
		if err != nil {
			return nil, err
		}
		lists[i] = data
	}

	sql, args, err := r.sb.Insert("forms").
		Columns("first_name", "last_name", "email", "phone", "dob", "gender",
			"country", "father_name", "mother_name", "marital_status",
			"highest_qualifications", "address_line1", "address_line2", "city", "state",
			"education_type", "employment_type", "identification_type", "awards_type",
			"purpose_type", "education_documents", "employment_documents",
			"identification_documents", "awards_documents", "purpose_documents",
			"resume_documents").
		Values(f.FirstName, f.LastName, f.Email, f.Phone, f.DOB, f.Gender,
			f.Country, f.FatherName, f.MotherName, f.MaritalStatus,
			f.HighestQualifications, f.AddressLine1, f.AddressLine2, f.City, f.State,
			f.EducationType, f.EmploymentType, f.IdentificationType, f.AwardsType,
			f.PurposeType, lists[0], lists[1], lists[2], lists[3], lists[4], lists[5]).
		Suffix("RETURNING " + joinColumns(formColumns)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build create form query: %w", err)
	}

	created, err := scanForm(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		logger.Error().Err(err).Msg("Error executing create form query")
		return nil, fmt.Errorf("error creating form: %w", err)
	}
	return created, nil
}

// List returns a page of forms, newest first, optionally filtered by a
// case-insensitive substring over firstName, lastName, email and phone.
func (r *FormRepository) List(ctx context.Context, q string, offset uint64, limit int) ([]models.Form, int64, error) {
	applyFilter := func(b squirrel.SelectBuilder) squirrel.SelectBuilder {
		if q == "" {
			return b
		}
		pattern := "%" + q + "%"
		return b.Where(squirrel.Or{
			squirrel.ILike{"first_name": pattern},
			squirrel.ILike{"last_name": pattern},
			squirrel.ILike{"email": pattern},
			squirrel.ILike{"phone": pattern},
		})
	}

	countSQL, countArgs, err := applyFilter(r.sb.Select("COUNT(*)").From("forms")).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build count forms query: %w", err)
	}
	var total int64
	if err := r.db.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		logger.Error().Err(err).Msg("Error executing count forms query")
		return nil, 0, fmt.Errorf("error counting forms: %w", err)
	}

	sql, args, err := applyFilter(r.sb.Select(formColumns...).From("forms")).
		OrderBy("created_at DESC").
		Offset(offset).
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build list forms query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list forms query")
		return nil, 0, fmt.Errorf("error listing forms: %w", err)
	}
	defer rows.Close()

	forms := []models.Form{}
	for rows.Next() {
		f, err := scanForm(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("error scanning form row: %w", err)
		}
		forms = append(forms, *f)
	}
	return forms, total, rows.Err()
}

// GetByID retrieves a form by ID.
func (r *FormRepository) GetByID(ctx context.Context, id int64) (*models.Form, error) {
	sql, args, err := r.sb.Select(formColumns...).
		From("forms").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get form query: %w", err)
	}

	f, err := scanForm(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		logger.Error().Err(err).Msg("Error executing get form query")
		return nil, fmt.Errorf("error getting form: %w", err)
	}
	return f, nil
}

// UpdateFields patches the given scalar columns. Document list columns are
// never touched here.
func (r *FormRepository) UpdateFields(ctx context.Context, id int64, fields map[string]interface{}) error {
	if len(fields) == 0 {
		return nil
	}

	builder := r.sb.Update("forms").
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id})
	for column, value := range fields {
		builder = builder.Set(column, value)
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		return fmt.Errorf("failed to build patch form query: %w", err)
	}

	result, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing patch form query")
		return fmt.Errorf("error patching form: %w", err)
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// Delete removes a form by ID.
func (r *FormRepository) Delete(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Delete("forms").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete form query: %w", err)
	}

	result, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing delete form query")
		return fmt.Errorf("error deleting form: %w", err)
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// CountAll returns the total number of forms.
func (r *FormRepository) CountAll(ctx context.Context) (int64, error) {
	return countTable(ctx, r.db, r.sb, "forms")
}
