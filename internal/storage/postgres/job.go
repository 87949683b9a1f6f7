package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"article_studio/internal/domain"
)

type JobStore struct {
	db   *sqlx.DB
	psql sq.StatementBuilderType
}

func NewJobStore(db *sqlx.DB) *JobStore {
	return &JobStore{
		db:   db,
		psql: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

type jobRow struct {
	JobID       string         `db:"job_id"`
	Topic       string         `db:"topic"`
	URLs        pq.StringArray `db:"urls"`
	Format      string         `db:"format"`
	Status      string         `db:"status"`
	Filename    sql.NullString `db:"filename"`
	Error       sql.NullString `db:"error"`
	SubmittedAt time.Time      `db:"submitted_at"`
	FinishedAt  sql.NullTime   `db:"finished_at"`
}

func (r jobRow) toDomain() domain.JobRecord {
	rec := domain.JobRecord{
		JobID:       r.JobID,
		Topic:       r.Topic,
		URLs:        []string(r.URLs),
		Format:      domain.OutputFormat(r.Format),
		Status:      domain.JobStatus(r.Status),
		SubmittedAt: r.SubmittedAt.UTC(),
	}
	if r.Filename.Valid {
		rec.Filename = &r.Filename.String
	}
	if r.Error.Valid {
		rec.Error = &r.Error.String
	}
	if r.FinishedAt.Valid {
		finished := r.FinishedAt.Time.UTC()
		rec.FinishedAt = &finished
	}
	return rec
}

var jobColumns = []string{
	"job_id", "topic", "urls", "format", "status", "filename", "error", "submitted_at", "finished_at",
}

// Save inserts or updates a job record. A terminal record is never moved back
// to a non-terminal status.
func (s *JobStore) Save(ctx context.Context, record *domain.JobRecord) error {
	query := `
		INSERT INTO generation_jobs (
			job_id, topic, urls, format, status, filename, error, submitted_at, finished_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9
		)
		ON CONFLICT (job_id) DO UPDATE SET
			status = EXCLUDED.status,
			filename = EXCLUDED.filename,
			error = EXCLUDED.error,
			finished_at = EXCLUDED.finished_at
		WHERE generation_jobs.status NOT IN ('completed', 'failed')`

	urls := record.URLs
	if urls == nil {
		urls = []string{}
	}

	_, err := GetExecutor(ctx, s.db).ExecContext(ctx, query,
		record.JobID,
		record.Topic,
		pq.Array(urls),
		string(record.Format),
		string(record.Status),
		record.Filename,
		record.Error,
		record.SubmittedAt,
		record.FinishedAt,
	)
	if err != nil {
		return fmt.Errorf("save job %s: %w", record.JobID, err)
	}
	return nil
}

func (s *JobStore) Get(ctx context.Context, jobID string) (*domain.JobRecord, error) {
	query, args, err := s.psql.
		Select(jobColumns...).
		From("generation_jobs").
		Where(sq.Eq{"job_id": jobID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build job query: %w", err)
	}

	var row jobRow
	err = sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &row, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, &domain.NotFoundError{Op: "get_job_record", Resource: jobID}
	}
	if err != nil {
		return nil, fmt.Errorf("get job %s: %w", jobID, err)
	}

	rec := row.toDomain()
	return &rec, nil
}

// JobFilter narrows List. Zero values mean no restriction.
type JobFilter struct {
	Status domain.JobStatus
	Since  time.Time
	Limit  uint64
}

// List returns job records, most recently submitted first.
func (s *JobStore) List(ctx context.Context, filter JobFilter) ([]domain.JobRecord, error) {
	builder := s.psql.
		Select(jobColumns...).
		From("generation_jobs").
		OrderBy("submitted_at DESC")

	if filter.Status != "" {
		builder = builder.Where(sq.Eq{"status": string(filter.Status)})
	}
	if !filter.Since.IsZero() {
		builder = builder.Where(sq.GtOrEq{"submitted_at": filter.Since})
	}
	if filter.Limit > 0 {
		builder = builder.Limit(filter.Limit)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build job list query: %w", err)
	}

	var rows []jobRow
	if err := sqlx.SelectContext(ctx, GetExecutor(ctx, s.db), &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list jobs: %w", err)
	}

	records := make([]domain.JobRecord, 0, len(rows))
	for _, r := range rows {
		records = append(records, r.toDomain())
	}
	return records, nil
}
