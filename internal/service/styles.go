package service

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"article_studio/internal/domain"
)

type Styles struct {
	backend StyleBackend
	logger  *slog.Logger
}

func NewStyles(backend StyleBackend, logger *slog.Logger) *Styles {
	return &Styles{
		backend: backend,
		logger:  logger.With("component", "styles"),
	}
}

func (s *Styles) Get(ctx context.Context) (*domain.WritingStyle, error) {
	style, err := s.backend.GetWritingStyle(ctx)
	if err != nil {
		return nil, fmt.Errorf("get writing style: %w", err)
	}
	return style, nil
}

// Upload sends a writing sample that later articles imitate.
func (s *Styles) Upload(ctx context.Context, filename string, r io.Reader) error {
	if strings.TrimSpace(filename) == "" {
		return &domain.ValidationError{Code: "MissingFilename", Field: "file", Message: "a writing sample file is required"}
	}

	if err := s.backend.UploadWritingStyle(ctx, filename, r); err != nil {
		return fmt.Errorf("upload writing style: %w", err)
	}
	s.logger.Info("writing style uploaded", "filename", filename)
	return nil
}

func (s *Styles) Clear(ctx context.Context) error {
	if err := s.backend.DeleteWritingStyle(ctx); err != nil {
		return fmt.Errorf("clear writing style: %w", err)
	}
	s.logger.Info("writing style cleared")
	return nil
}
