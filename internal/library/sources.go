package library

import (
	"context"
	"fmt"
)

// SourcesStore persists the sources document.
type SourcesStore interface {
	PutSources(ctx context.Context, content string) error
	DeleteSources(ctx context.Context) error
}

// SourcesDraft tracks an edit of the sources document against the last
// saved text.
type SourcesDraft struct {
	original string
	edited   string
}

func NewSourcesDraft(content string) *SourcesDraft {
	return &SourcesDraft{original: content, edited: content}
}

func (d *SourcesDraft) Original() string { return d.original }
func (d *SourcesDraft) Text() string     { return d.edited }

func (d *SourcesDraft) Edit(content string) {
	d.edited = content
}

func (d *SourcesDraft) HasChanges() bool {
	return d.edited != d.original
}

// Reset discards the edit.
func (d *SourcesDraft) Reset() {
	d.edited = d.original
}

// Save writes the edited text. The draft is unchanged if the write fails.
func (d *SourcesDraft) Save(ctx context.Context, store SourcesStore) error {
	if err := store.PutSources(ctx, d.edited); err != nil {
		return fmt.Errorf("save sources: %w", err)
	}
	d.original = d.edited
	return nil
}

// Clear deletes the document and empties the draft.
func (d *SourcesDraft) Clear(ctx context.Context, store SourcesStore) error {
	if err := store.DeleteSources(ctx); err != nil {
		return fmt.Errorf("clear sources: %w", err)
	}
	d.original = ""
	d.edited = ""
	return nil
}
