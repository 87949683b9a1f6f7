//go:build integration

package postgres

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"article_studio/internal/domain"
	"article_studio/internal/testutil"
)

type PostgresIntegrationSuite struct {
	suite.Suite
	ctx       context.Context
	container *postgres.PostgresContainer
	db        *sqlx.DB
}

func (s *PostgresIntegrationSuite) SetupSuite() {
	s.ctx = context.Background()

	migrationsPath, err := filepath.Abs("../../../migrations")
	s.Require().NoError(err)

	container, err := postgres.Run(s.ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("test_db"),
		postgres.WithUsername("test"),
		postgres.WithPassword("test"),
		postgres.WithInitScripts(
			filepath.Join(migrationsPath, "001_create_generation_jobs.up.sql"),
			filepath.Join(migrationsPath, "002_create_artifacts.up.sql"),
		),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	s.Require().NoError(err)
	s.container = container

	connStr, err := container.ConnectionString(s.ctx, "sslmode=disable")
	s.Require().NoError(err)

	db, err := Open(s.ctx, connStr)
	s.Require().NoError(err)
	s.db = db
}

func (s *PostgresIntegrationSuite) TearDownSuite() {
	if s.db != nil {
		s.db.Close()
	}
	if s.container != nil {
		_ = s.container.Terminate(s.ctx)
	}
}

func (s *PostgresIntegrationSuite) SetupTest() {
	_, _ = s.db.ExecContext(s.ctx, "DELETE FROM artifacts")
	_, _ = s.db.ExecContext(s.ctx, "DELETE FROM generation_jobs")
}

func TestPostgresIntegrationSuite(t *testing.T) {
	suite.Run(t, new(PostgresIntegrationSuite))
}

func pendingRecord(jobID string, submitted time.Time) *domain.JobRecord {
	return &domain.JobRecord{
		JobID:       jobID,
		Topic:       "volcanoes",
		URLs:        []string{"https://a.example", "https://b.example"},
		Format:      domain.OutputDetailed,
		Status:      domain.JobPending,
		SubmittedAt: submitted,
	}
}

func (s *PostgresIntegrationSuite) TestJobStore_SaveAndGet() {
	store := NewJobStore(s.db)
	now := time.Now().UTC().Truncate(time.Microsecond)

	s.Require().NoError(store.Save(s.ctx, pendingRecord("job-1", now)))

	got, err := store.Get(s.ctx, "job-1")
	s.Require().NoError(err)
	s.Equal("volcanoes", got.Topic)
	s.Equal([]string{"https://a.example", "https://b.example"}, got.URLs)
	s.Equal(domain.JobPending, got.Status)
	s.Nil(got.Filename)
	s.Nil(got.FinishedAt)
	s.WithinDuration(now, got.SubmittedAt, time.Millisecond)
}

func (s *PostgresIntegrationSuite) TestJobStore_SaveCompletes() {
	store := NewJobStore(s.db)
	now := time.Now().UTC().Truncate(time.Microsecond)

	record := pendingRecord("job-1", now)
	s.Require().NoError(store.Save(s.ctx, record))

	record.Status = domain.JobCompleted
	record.Filename = testutil.Ptr("article_volcanoes_20240101.md")
	record.FinishedAt = testutil.Ptr(now.Add(time.Minute))
	s.Require().NoError(store.Save(s.ctx, record))

	got, err := store.Get(s.ctx, "job-1")
	s.Require().NoError(err)
	s.Equal(domain.JobCompleted, got.Status)
	s.Require().NotNil(got.Filename)
	s.Equal("article_volcanoes_20240101.md", *got.Filename)
	s.Require().NotNil(got.FinishedAt)
}

func (s *PostgresIntegrationSuite) TestJobStore_TerminalIsNotOverwritten() {
	store := NewJobStore(s.db)
	now := time.Now().UTC().Truncate(time.Microsecond)

	record := pendingRecord("job-1", now)
	record.Status = domain.JobFailed
	record.Error = testutil.Ptr("quota exceeded")
	s.Require().NoError(store.Save(s.ctx, record))

	s.Require().NoError(store.Save(s.ctx, pendingRecord("job-1", now)))

	got, err := store.Get(s.ctx, "job-1")
	s.Require().NoError(err)
	s.Equal(domain.JobFailed, got.Status)
	s.Equal("quota exceeded", *got.Error)
}

func (s *PostgresIntegrationSuite) TestJobStore_GetMissing() {
	store := NewJobStore(s.db)

	_, err := store.Get(s.ctx, "nope")

	var notFound *domain.NotFoundError
	s.True(errors.As(err, &notFound))
}

func (s *PostgresIntegrationSuite) TestJobStore_ListFilters() {
	store := NewJobStore(s.db)
	base := time.Now().UTC().Truncate(time.Microsecond)

	for i, status := range []domain.JobStatus{domain.JobCompleted, domain.JobFailed, domain.JobCompleted} {
		record := pendingRecord("job-"+string(rune('a'+i)), base.Add(time.Duration(i)*time.Hour))
		record.Status = status
		s.Require().NoError(store.Save(s.ctx, record))
	}

	all, err := store.List(s.ctx, JobFilter{})
	s.Require().NoError(err)
	s.Require().Len(all, 3)
	s.Equal("job-c", all[0].JobID)

	completed, err := store.List(s.ctx, JobFilter{Status: domain.JobCompleted, Limit: 1})
	s.Require().NoError(err)
	s.Require().Len(completed, 1)
	s.Equal("job-c", completed[0].JobID)

	recent, err := store.List(s.ctx, JobFilter{Since: base.Add(30 * time.Minute)})
	s.Require().NoError(err)
	s.Len(recent, 2)
}

func (s *PostgresIntegrationSuite) TestArtifactStore_StoreAndGet() {
	jobs := NewJobStore(s.db)
	artifacts := NewArtifactStore(s.db)
	now := time.Now().UTC()

	s.Require().NoError(jobs.Save(s.ctx, pendingRecord("job-1", now)))

	artifact := domain.NewArtifact("article_volcanoes_20240101.md", "# Volcanoes")
	s.Require().NoError(artifacts.Store(s.ctx, "job-1", artifact))

	artifact.Content = "# Volcanoes, revised"
	s.Require().NoError(artifacts.Store(s.ctx, "job-1", artifact))

	got, err := artifacts.Get(s.ctx, "job-1")
	s.Require().NoError(err)
	s.Equal("# Volcanoes, revised", got.Content)
	s.Equal(domain.FormatMarkup, got.Format)

	_, err = artifacts.Get(s.ctx, "job-2")
	var notFound *domain.NotFoundError
	s.ErrorAs(err, &notFound)
}

func (s *PostgresIntegrationSuite) TestTransaction_Commit() {
	tm := NewTransactionManager(s.db)
	jobs := NewJobStore(s.db)
	artifacts := NewArtifactStore(s.db)
	now := time.Now().UTC()

	err := tm.WithTransaction(s.ctx, func(ctx context.Context) error {
		if err := jobs.Save(ctx, pendingRecord("job-1", now)); err != nil {
			return err
		}
		return artifacts.Store(ctx, "job-1", domain.NewArtifact("a.md", "A"))
	})
	s.Require().NoError(err)

	var count int
	s.Require().NoError(s.db.GetContext(s.ctx, &count, "SELECT COUNT(*) FROM artifacts"))
	s.Equal(1, count)
}

func (s *PostgresIntegrationSuite) TestTransaction_Rollback() {
	tm := NewTransactionManager(s.db)
	jobs := NewJobStore(s.db)
	now := time.Now().UTC()

	err := tm.WithTransaction(s.ctx, func(ctx context.Context) error {
		if err := jobs.Save(ctx, pendingRecord("job-1", now)); err != nil {
			return err
		}
		return errors.New("abort")
	})
	s.Error(err)

	var count int
	s.Require().NoError(s.db.GetContext(s.ctx, &count, "SELECT COUNT(*) FROM generation_jobs"))
	s.Equal(0, count)
}

func (s *PostgresIntegrationSuite) TestTransaction_ArtifactWithoutJobFails() {
	tm := NewTransactionManager(s.db)
	artifacts := NewArtifactStore(s.db)

	err := tm.WithTransaction(s.ctx, func(ctx context.Context) error {
		return artifacts.Store(ctx, "missing-job", domain.NewArtifact("a.md", "A"))
	})
	s.Error(err)
}

func (s *PostgresIntegrationSuite) TestTransaction_NestedJoinsOuter() {
	tm := NewTransactionManager(s.db)
	jobs := NewJobStore(s.db)
	now := time.Now().UTC()

	err := tm.WithTransaction(s.ctx, func(ctx context.Context) error {
		if err := tm.WithTransaction(ctx, func(inner context.Context) error {
			return jobs.Save(inner, pendingRecord("job-1", now))
		}); err != nil {
			return err
		}
		return errors.New("abort")
	})
	s.Error(err)

	var count int
	s.Require().NoError(s.db.GetContext(s.ctx, &count, "SELECT COUNT(*) FROM generation_jobs"))
	s.Equal(0, count)
}
