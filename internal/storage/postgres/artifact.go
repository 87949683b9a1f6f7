package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"

	"article_studio/internal/domain"
)

// ArtifactStore keeps a copy of every fetched article, keyed by job.
type ArtifactStore struct {
	db   *sqlx.DB
	psql sq.StatementBuilderType
}

func NewArtifactStore(db *sqlx.DB) *ArtifactStore {
	return &ArtifactStore{
		db:   db,
		psql: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

type artifactRow struct {
	JobID    string    `db:"job_id"`
	Filename string    `db:"filename"`
	Format   string    `db:"format"`
	Content  string    `db:"content"`
	StoredAt time.Time `db:"stored_at"`
}

func (s *ArtifactStore) Store(ctx context.Context, jobID string, artifact *domain.Artifact) error {
	query := `
		INSERT INTO artifacts (job_id, filename, format, content, stored_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (job_id) DO UPDATE SET
			filename = EXCLUDED.filename,
			format = EXCLUDED.format,
			content = EXCLUDED.content,
			stored_at = EXCLUDED.stored_at`

	_, err := GetExecutor(ctx, s.db).ExecContext(ctx, query,
		jobID,
		artifact.Filename,
		string(artifact.Format),
		artifact.Content,
		time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("store artifact for job %s: %w", jobID, err)
	}
	return nil
}

func (s *ArtifactStore) Get(ctx context.Context, jobID string) (*domain.Artifact, error) {
	query, args, err := s.psql.
		Select("job_id", "filename", "format", "content", "stored_at").
		From("artifacts").
		Where(sq.Eq{"job_id": jobID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build artifact query: %w", err)
	}

	var row artifactRow
	err = sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &row, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, &domain.NotFoundError{Op: "get_artifact", Resource: jobID}
	}
	if err != nil {
		return nil, fmt.Errorf("get artifact for job %s: %w", jobID, err)
	}

	return &domain.Artifact{
		Filename: row.Filename,
		Content:  row.Content,
		Format:   domain.ArtifactFormat(row.Format),
	}, nil
}
