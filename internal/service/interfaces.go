package service

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"
	"io"

	"article_studio/internal/domain"
)

type GenerationBackend interface {
	GenerateFromTopic(ctx context.Context, topic string, format domain.OutputFormat) (string, error)
	GenerateFromURLs(ctx context.Context, urls []string, label string, format domain.OutputFormat) (string, error)
}

type Tracker interface {
	Track(ctx context.Context, jobID string, onProgress func(domain.ProgressUpdate)) (*domain.Artifact, error)
	Reset()
}

type JobRecorder interface {
	Save(ctx context.Context, record *domain.JobRecord) error
}

type ArtifactArchive interface {
	Store(ctx context.Context, jobID string, artifact *domain.Artifact) error
}

type TransactionManager interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

type Publisher interface {
	Publish(ctx context.Context, jobID string, artifact *domain.Artifact) error
	Close() error
}

type ArticleBackend interface {
	ListArticles(ctx context.Context) ([]domain.ArticleListEntry, error)
	GetArticle(ctx context.Context, filename string) (*domain.Artifact, error)
	DeleteArticle(ctx context.Context, filename string) error
	GetSources(ctx context.Context) (string, error)
	PutSources(ctx context.Context, content string) error
	DeleteSources(ctx context.Context) error
}

type AdminBackend interface {
	ListUsers(ctx context.Context) ([]domain.AdminUser, error)
	ListAdminArticles(ctx context.Context) ([]domain.AdminArticle, error)
	DeleteUser(ctx context.Context, userID string) error
	DeleteAdminArticle(ctx context.Context, articleID string) error
}

type StyleBackend interface {
	GetWritingStyle(ctx context.Context) (*domain.WritingStyle, error)
	UploadWritingStyle(ctx context.Context, filename string, r io.Reader) error
	DeleteWritingStyle(ctx context.Context) error
}

type SessionSource interface {
	Current() *domain.Session
}
