package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/e3mc/bschool-admin/internal/app/models"
)

// Repositories holds all the repository instances.
type Repositories struct {
	AdminRepository             *AdminRepository
	StudentRepository           *StudentRepository
	PartnerRepository           *PartnerRepository
	FormRepository              *FormRepository
	ApplicationRepository       *ApplicationRepository
	BrochureRepository          *BrochureRepository
	CounsellingRepository       *CounsellingRepository
	PartnerCounselingRepository *PartnerCounselingRepository
	BlogRepository              *BlogRepository
	EventRepository             *EventRepository
}

// NewRepositories initializes all repositories.
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		AdminRepository:             NewAdminRepository(db),
		StudentRepository:           NewStudentRepository(db),
		PartnerRepository:           NewPartnerRepository(db),
		FormRepository:              NewFormRepository(db),
		ApplicationRepository:       NewApplicationRepository(db),
		BrochureRepository:          NewBrochureRepository(db),
		CounsellingRepository:       NewCounsellingRepository(db),
		PartnerCounselingRepository: NewPartnerCounselingRepository(db),
		BlogRepository:              NewBlogRepository(db),
		EventRepository:             NewEventRepository(db),
	}
}

// isDuplicateKeyError checks if the error is a PostgreSQL unique violation.
func isDuplicateKeyError(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505" // unique_violation
}

// marshalFile encodes a nullable single-slot file reference for a JSONB
// column. A nil reference is stored as SQL NULL.
func marshalFile(f *models.FileMeta) (interface{}, error) {
	if f == nil {
		return nil, nil
	}
	data, err := json.Marshal(f)
	if err != nil {
		return nil, fmt.Errorf("failed to encode file metadata: %w", err)
	}
	return data, nil
}

// unmarshalFile decodes a nullable JSONB column into a file reference.
func unmarshalFile(data []byte) (*models.FileMeta, error) {
	if len(data) == 0 || string(data) == "null" {
		return nil, nil
	}
	f := &models.FileMeta{}
	if err := json.Unmarshal(data, f); err != nil {
		return nil, fmt.Errorf("failed to decode file metadata: %w", err)
	}
	return f, nil
}

// marshalFiles encodes a file list for a JSONB column. An empty or nil
// list is stored as an empty JSON array.
func marshalFiles(files []models.FileMeta) ([]byte, error) {
	if files == nil {
		files = []models.FileMeta{}
	}
	data, err := json.Marshal(files)
	if err != nil {
		return nil, fmt.Errorf("failed to encode file list: %w", err)
	}
	return data, nil
}

// joinColumns renders a column list for a RETURNING clause.
func joinColumns(cols []string) string {
	return strings.Join(cols, ", ")
}

// countTable returns the row count of a table.
func countTable(ctx context.Context, db *pgxpool.Pool, sb squirrel.StatementBuilderType, table string) (int64, error) {
	sql, args, err := sb.Select("COUNT(*)").From(table).ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build count query for %s: %w", table, err)
	}
	var count int64
	if err := db.QueryRow(ctx, sql, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("error counting %s: %w", table, err)
	}
	return count, nil
}

// groupCount returns row counts grouped by the raw value of a column.
func groupCount(ctx context.Context, db *pgxpool.Pool, sb squirrel.StatementBuilderType, table, column string) (map[string]int64, error) {
	sql, args, err := sb.Select(column, "COUNT(*)").
		From(table).
		GroupBy(column).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build group count query for %s: %w", table, err)
	}

	rows, err := db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error grouping %s by %s: %w", table, column, err)
	}
	defer rows.Close()

	counts := map[string]int64{}
	for rows.Next() {
		var label string
		var count int64
		if err := rows.Scan(&label, &count); err != nil {
			return nil, fmt.Errorf("error scanning group count row: %w", err)
		}
		counts[label] = count
	}
	return counts, rows.Err()
}

// countPerDay returns row counts bucketed by calendar day of a timestamp
// or date-string column, sorted ascending.
func countPerDay(ctx context.Context, db *pgxpool.Pool, table, expr string) (map[string]int64, error) {
	sql := fmt.Sprintf(
		"SELECT %s AS day, COUNT(*) FROM %s GROUP BY day ORDER BY day", expr, table)

	rows, err := db.Query(ctx, sql)
	if err != nil {
		return nil, fmt.Errorf("error counting %s per day: %w", table, err)
	}
	defer rows.Close()

	counts := map[string]int64{}
	for rows.Next() {
		var day string
		var count int64
		if err := rows.Scan(&day, &count); err != nil {
			return nil, fmt.Errorf("error scanning per-day count row: %w", err)
		}
		counts[day] = count
	}
	return counts, rows.Err()
}

// unmarshalFiles decodes a JSONB file list column.
func unmarshalFiles(data []byte) ([]models.FileMeta, error) {
	files := []models.FileMeta{}
	if len(data) == 0 || string(data) == "null" {
		return files, nil
	}
	if err := json.Unmarshal(data, &files); err != nil {
		return nil, fmt.Errorf("failed to decode file list: %w", err)
	}
	return files, nil
}
