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

var studentColumns = []string{
	"id", "image", "name", "father_name", "dob", "gender",
	"program_applied", "specialization", "session", "country", "doc_file",
	"academic_partner_code", "endorsement_code", "created_at", "updated_at",
}

// StudentRepository handles student verification record database operations.
type StudentRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewStudentRepository creates a new StudentRepository.
func NewStudentRepository(db *pgxpool.Pool) *StudentRepository {
	return &StudentRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

func scanStudent(row pgx.Row) (*models.Student, error) {
	s := &models.Student{}
	var imageData, docData []byte
	err := row.Scan(
		&s.ID, &imageData, &s.Name, &s.FatherName, &s.DOB, &s.Gender,
		&s.ProgramApplied, &s.Specialization, &s.Session, &s.Country, &docData,
		&s.AcademicPartnerCode, &s.EndorsementCode, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if s.Image, err = unmarshalFile(imageData); err != nil {
		return nil, err
	}
	if s.DocFile, err = unmarshalFile(docData); err != nil {
		return nil, err
	}
	return s, nil
}

// Create inserts a student record and returns it with generated fields.
func (r *StudentRepository) Create(ctx context.Context, s *models.Student) (*models.Student, error) {
	image, err := marshalFile(s.Image)
	if err != nil {
		return nil, err
	}
	docFile, err := marshalFile(s.DocFile)
	if err != nil {
		return nil, err
	}

	sql, args, err := r.sb.Insert("students").
		Columns("image", "name", "father_name", "dob", "gender",
			"program_applied", "specialization", "session", "country", "doc_file",
			"academic_partner_code", "endorsement_code").
		Values(image, s.Name, s.FatherName, s.DOB, s.Gender,
			s.ProgramApplied, s.Specialization, s.Session, s.Country, docFile,
			s.AcademicPartnerCode, s.EndorsementCode).
		Suffix("RETURNING " + joinColumns(studentColumns)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build create student query: %w", err)
	}

	created, err := scanStudent(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		logger.Error().Err(err).Msg("Error executing create student query")
		return nil, fmt.Errorf("error creating student: %w", err)
	}
	return created, nil
}

// GetAll returns every student, newest first.
func (r *StudentRepository) GetAll(ctx context.Context) ([]models.Student, error) {
	sql, args, err := r.sb.Select(studentColumns...).
		From("students").
		OrderBy("created_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list students query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list students query")
		return nil, fmt.Errorf("error listing students: %w", err)
	}
	defer rows.Close()

	students := []models.Student{}
	for rows.Next() {
		s, err := scanStudent(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning student row: %w", err)
		}
		students = append(students, *s)
	}
	return students, rows.Err()
}

// GetByID retrieves a student by ID.
func (r *StudentRepository) GetByID(ctx context.Context, id int64) (*models.Student, error) {
	sql, args, err := r.sb.Select(studentColumns...).
		From("students").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get student query: %w", err)
	}

	s, err := scanStudent(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		logger.Error().Err(err).Msg("Error executing get student query")
		return nil, fmt.Errorf("error getting student: %w", err)
	}
	return s, nil
}

// FindByCodes retrieves the student matching both verification codes.
func (r *StudentRepository) FindByCodes(ctx context.Context, apCode, endorsementCode string) (*models.Student, error) {
	sql, args, err := r.sb.Select(studentColumns...).
		From("students").
		Where(squirrel.Eq{
			"academic_partner_code": apCode,
			"endorsement_code":      endorsementCode,
		}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build student search query: %w", err)
	}

	s, err := scanStudent(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		logger.Error().Err(err).Msg("Error executing student search query")
		return nil, fmt.Errorf("error searching student: %w", err)
	}
	return s, nil
}

// Update writes the full student record back.
func (r *StudentRepository) Update(ctx context.Context, s *models.Student) error {
	image, err := marshalFile(s.Image)
	if err != nil {
		return err
	}
	docFile, err := marshalFile(s.DocFile)
	if err != nil {
		return err
	}

	sql, args, err := r.sb.Update("students").
		Set("image", image).
		Set("name", s.Name).
		Set("father_name", s.FatherName).
		Set("dob", s.DOB).
		Set("gender", s.Gender).
		Set("program_applied", s.ProgramApplied).
		Set("specialization", s.Specialization).
		Set("session", s.Session).
		Set("country", s.Country).
		Set("doc_file", docFile).
		Set("academic_partner_code", s.AcademicPartnerCode).
		Set("endorsement_code", s.EndorsementCode).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": s.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update student query: %w", err)
	}

	result, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing update student query")
		return fmt.Errorf("error updating student: %w", err)
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// Delete removes a student by ID.
func (r *StudentRepository) Delete(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Delete("students").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete student query: %w", err)
	}

	result, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing delete student query")
		return fmt.Errorf("error deleting student: %w", err)
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// CountAll returns the total number of students.
func (r *StudentRepository) CountAll(ctx context.Context) (int64, error) {
	return countTable(ctx, r.db, r.sb, "students")
}

// CountByGender returns student counts grouped by the raw gender value.
func (r *StudentRepository) CountByGender(ctx context.Context) (map[string]int64, error) {
	return groupCount(ctx, r.db, r.sb, "students", "gender")
}
