package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"sync"

	"article_studio/internal/domain"
	"article_studio/internal/library"
	"article_studio/internal/render"
)

// Library lists, views and deletes stored articles and manages the sources
// document. Background refreshes keep the last good data on failure.
type Library struct {
	backend ArticleBackend
	perPage int
	logger  *slog.Logger

	mu       sync.Mutex
	articles []domain.ArticleListEntry
	sources  string
}

func NewLibrary(backend ArticleBackend, perPage int, logger *slog.Logger) *Library {
	if perPage <= 0 {
		perPage = library.DefaultPerPage
	}
	return &Library{
		backend: backend,
		perPage: perPage,
		logger:  logger.With("component", "library"),
	}
}

// List fetches the article list, newest first.
func (l *Library) List(ctx context.Context) ([]domain.ArticleListEntry, error) {
	entries, err := l.backend.ListArticles(ctx)
	if err != nil {
		return nil, fmt.Errorf("list articles: %w", err)
	}

	sorted := make([]domain.ArticleListEntry, len(entries))
	copy(sorted, entries)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Modified.After(sorted[j].Modified)
	})

	l.mu.Lock()
	l.articles = sorted
	l.mu.Unlock()
	return sorted, nil
}

// Refresh is List for background use: errors are logged and the last good
// list is returned.
func (l *Library) Refresh(ctx context.Context) []domain.ArticleListEntry {
	entries, err := l.List(ctx)
	if err != nil {
		l.logger.Warn("refresh articles", "error", err)
		l.mu.Lock()
		defer l.mu.Unlock()
		return l.articles
	}
	return entries
}

// Search lists articles and returns one page matching q by filename or title.
func (l *Library) Search(ctx context.Context, q library.Query) (library.Page[domain.ArticleListEntry], error) {
	entries, err := l.List(ctx)
	if err != nil {
		return library.Page[domain.ArticleListEntry]{}, err
	}
	return library.Select(entries, q, l.perPage,
		func(e domain.ArticleListEntry) string { return e.Filename },
		func(e domain.ArticleListEntry) string { return library.DisplayName(e.Filename) },
	), nil
}

// View fetches an article with its markdown wrapper removed.
func (l *Library) View(ctx context.Context, filename string) (*domain.Artifact, error) {
	artifact, err := l.backend.GetArticle(ctx, filename)
	if err != nil {
		return nil, fmt.Errorf("view article: %w", err)
	}
	return domain.NewArtifact(artifact.Filename, render.StripWrapper(artifact.Content)), nil
}

// Download saves an article under its own filename.
func (l *Library) Download(ctx context.Context, filename string, saver render.FileSaver) (string, error) {
	artifact, err := l.View(ctx, filename)
	if err != nil {
		return "", err
	}

	path, err := saver.Save(artifact.Filename, []byte(artifact.Content))
	if err != nil {
		return "", fmt.Errorf("save article: %w", err)
	}
	return path, nil
}

func (l *Library) Delete(ctx context.Context, filename string) error {
	if err := l.backend.DeleteArticle(ctx, filename); err != nil {
		return fmt.Errorf("delete article: %w", err)
	}
	l.logger.Info("article deleted", "filename", filename)
	l.Refresh(ctx)
	return nil
}

func (l *Library) Sources(ctx context.Context) (string, error) {
	content, err := l.backend.GetSources(ctx)
	if err != nil {
		return "", fmt.Errorf("get sources: %w", err)
	}

	l.mu.Lock()
	l.sources = content
	l.mu.Unlock()
	return content, nil
}

// RefreshSources keeps the last good sources text on failure.
func (l *Library) RefreshSources(ctx context.Context) string {
	content, err := l.Sources(ctx)
	if err != nil {
		l.logger.Warn("refresh sources", "error", err)
		l.mu.Lock()
		defer l.mu.Unlock()
		return l.sources
	}
	return content
}

// EditSources opens a draft of the sources document. A missing document
// yields an empty draft.
func (l *Library) EditSources(ctx context.Context) (*library.SourcesDraft, error) {
	content, err := l.Sources(ctx)
	var notFound *domain.NotFoundError
	if err != nil && !errors.As(err, &notFound) {
		return nil, err
	}
	return library.NewSourcesDraft(content), nil
}

func (l *Library) SaveSources(ctx context.Context, draft *library.SourcesDraft) error {
	if err := draft.Save(ctx, l.backend); err != nil {
		return err
	}

	l.mu.Lock()
	l.sources = draft.Text()
	l.mu.Unlock()
	l.logger.Info("sources saved", "bytes", len(draft.Text()))
	return nil
}

func (l *Library) ClearSources(ctx context.Context, draft *library.SourcesDraft) error {
	if err := draft.Clear(ctx, l.backend); err != nil {
		return err
	}

	l.mu.Lock()
	l.sources = ""
	l.mu.Unlock()
	l.logger.Info("sources cleared")
	return nil
}
