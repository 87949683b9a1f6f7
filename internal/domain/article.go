package domain

import (
	"strings"
	"time"
)

// ArtifactFormat decides how an article is rendered.
type ArtifactFormat string

const (
	FormatMarkup ArtifactFormat = "markup"
	FormatPlain  ArtifactFormat = "plain"
)

// FormatFor derives the rendering format from a filename extension.
func FormatFor(filename string) ArtifactFormat {
	if strings.HasSuffix(filename, ".md") {
		return FormatMarkup
	}
	return FormatPlain
}

// Artifact is a generated article as fetched from the backend.
type Artifact struct {
	Filename string         `json:"filename"`
	Content  string         `json:"content"`
	Format   ArtifactFormat `json:"format"`
}

// NewArtifact builds an artifact, deriving its format from the filename.
func NewArtifact(filename, content string) *Artifact {
	return &Artifact{
		Filename: filename,
		Content:  content,
		Format:   FormatFor(filename),
	}
}

type ArticleListEntry struct {
	Filename string    `json:"filename"`
	Modified time.Time `json:"modified"`
}

type AdminArticle struct {
	ID        string    `json:"id"`
	Filename  string    `json:"filename"`
	Title     string    `json:"title"`
	UserEmail string    `json:"user_email"`
	CreatedAt time.Time `json:"created_at"`
}

type AdminUser struct {
	ID           string     `json:"id"`
	Email        string     `json:"email"`
	Role         string     `json:"role"`
	CreatedAt    time.Time  `json:"created_at"`
	LastSignInAt *time.Time `json:"last_sign_in_at"`
}

// WritingStyle is the uploaded sample the backend imitates.
type WritingStyle struct {
	Filename string `json:"filename"`
	Content  string `json:"content"`
}
