package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"article_studio/internal/domain"
)

// ErrNoPreviousRequest is returned by Regenerate before any submission.
var ErrNoPreviousRequest = errors.New("no previous generation request to repeat")

// JobHandle identifies a submitted job.
type JobHandle struct {
	ID          string
	Request     domain.GenerationRequest
	SubmittedAt time.Time

	token uint64
}

// Generator validates submissions, starts jobs, and tracks them to an
// artifact. Only one job may be in flight at a time.
type Generator struct {
	backend   GenerationBackend
	tracker   Tracker
	history   JobRecorder
	archive   ArtifactArchive
	txManager TransactionManager
	publisher Publisher
	logger    *slog.Logger
	now       func() time.Time

	mu     sync.Mutex
	busy   bool
	token  uint64
	cancel context.CancelFunc
	last   *domain.GenerationRequest
}

// NewGenerator wires the generation flow. history, archive, txManager and
// publisher are optional and may be nil.
func NewGenerator(
	backend GenerationBackend,
	tracker Tracker,
	history JobRecorder,
	archive ArtifactArchive,
	txManager TransactionManager,
	publisher Publisher,
	logger *slog.Logger,
) *Generator {
	return &Generator{
		backend:   backend,
		tracker:   tracker,
		history:   history,
		archive:   archive,
		txManager: txManager,
		publisher: publisher,
		logger:    logger.With("component", "generator"),
		now:       time.Now,
	}
}

func (g *Generator) Busy() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.busy
}

// LastRequest returns the most recent validated request, if any.
func (g *Generator) LastRequest() (domain.GenerationRequest, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.last == nil {
		return domain.GenerationRequest{}, false
	}
	return *g.last, true
}

// acquire claims the busy flag and returns the token of the new submission.
func (g *Generator) acquire(req domain.GenerationRequest) (uint64, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.busy {
		return 0, false
	}
	g.token++
	g.busy = true
	g.cancel = nil
	g.last = &req
	return g.token, true
}

// attach registers the cancel func of the Await tracking token. It reports
// false when the submission was abandoned by Reset.
func (g *Generator) attach(token uint64, cancel context.CancelFunc) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	if !g.busy || g.token != token {
		return false
	}
	g.cancel = cancel
	return true
}

// release clears the busy flag if token still owns it.
func (g *Generator) release(token uint64) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.token != token {
		return
	}
	g.busy = false
	g.cancel = nil
}

// Reset abandons the in-flight job, if any, and re-enables submission. The
// abandoned Await stops polling and no longer owns the busy flag.
func (g *Generator) Reset() {
	g.mu.Lock()
	if g.cancel != nil {
		g.cancel()
	}
	g.token++
	g.busy = false
	g.cancel = nil
	g.mu.Unlock()

	g.tracker.Reset()
}

// Submit validates the input and starts a job. Validation failures make no
// network call. URL submissions take priority over a topic.
func (g *Generator) Submit(ctx context.Context, topic string, urls []string, format domain.OutputFormat) (*JobHandle, error) {
	req, err := domain.NewGenerationRequest(topic, urls, format)
	if err != nil {
		return nil, err
	}
	return g.submit(ctx, req)
}

func (g *Generator) submit(ctx context.Context, req domain.GenerationRequest) (*JobHandle, error) {
	token, ok := g.acquire(req)
	if !ok {
		return nil, domain.ErrBusy
	}
	g.tracker.Reset()

	var (
		jobID string
		err   error
	)
	if req.FromURLs() {
		jobID, err = g.backend.GenerateFromURLs(ctx, req.URLs, req.Label(), req.Format)
	} else {
		jobID, err = g.backend.GenerateFromTopic(ctx, req.Topic, req.Format)
	}
	if err != nil {
		g.release(token)
		g.logger.Error("submit generation", "from_urls", req.FromURLs(), "error", err)
		return nil, submissionError(err)
	}

	handle := &JobHandle{ID: jobID, Request: req, SubmittedAt: g.now().UTC(), token: token}
	g.logger.Info("generation submitted",
		"job_id", jobID,
		"from_urls", req.FromURLs(),
		"url_count", len(req.URLs),
		"format", req.Format,
	)

	if g.history != nil {
		if err := g.history.Save(ctx, newRecord(handle)); err != nil {
			g.logger.Warn("record submitted job", "job_id", jobID, "error", err)
		}
	}

	return handle, nil
}

// Await tracks the job until it finishes and re-enables submission. Reset
// cancels it.
func (g *Generator) Await(ctx context.Context, handle *JobHandle, onProgress func(domain.ProgressUpdate)) (*domain.Artifact, error) {
	defer g.release(handle.token)

	trackCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	if !g.attach(handle.token, cancel) {
		return nil, fmt.Errorf("track job %s: %w", handle.ID, context.Canceled)
	}

	artifact, err := g.tracker.Track(trackCtx, handle.ID, onProgress)

	var failed *domain.JobFailedError
	switch {
	case err == nil:
		g.complete(ctx, handle, artifact)
		return artifact, nil
	case errors.As(err, &failed):
		g.fail(ctx, handle, failed.Message)
		return nil, err
	default:
		return nil, fmt.Errorf("track job %s: %w", handle.ID, err)
	}
}

// Generate submits and waits for the article.
func (g *Generator) Generate(ctx context.Context, topic string, urls []string, format domain.OutputFormat, onProgress func(domain.ProgressUpdate)) (*domain.Artifact, error) {
	handle, err := g.Submit(ctx, topic, urls, format)
	if err != nil {
		return nil, err
	}
	return g.Await(ctx, handle, onProgress)
}

// Regenerate repeats the last validated request.
func (g *Generator) Regenerate(ctx context.Context, onProgress func(domain.ProgressUpdate)) (*domain.Artifact, error) {
	req, ok := g.LastRequest()
	if !ok {
		return nil, ErrNoPreviousRequest
	}

	handle, err := g.submit(ctx, req)
	if err != nil {
		return nil, err
	}
	return g.Await(ctx, handle, onProgress)
}

func (g *Generator) complete(ctx context.Context, handle *JobHandle, artifact *domain.Artifact) {
	if g.history != nil {
		record := newRecord(handle)
		record.Status = domain.JobCompleted
		record.Filename = &artifact.Filename
		finished := g.now().UTC()
		record.FinishedAt = &finished

		err := g.inTx(ctx, func(ctx context.Context) error {
			if err := g.history.Save(ctx, record); err != nil {
				return fmt.Errorf("save job record: %w", err)
			}
			if g.archive != nil {
				if err := g.archive.Store(ctx, handle.ID, artifact); err != nil {
					return fmt.Errorf("archive artifact: %w", err)
				}
			}
			return nil
		})
		if err != nil {
			g.logger.Warn("record completed job", "job_id", handle.ID, "error", err)
		}
	}

	if g.publisher != nil {
		if err := g.publisher.Publish(ctx, handle.ID, artifact); err != nil {
			g.logger.Warn("publish completed article", "job_id", handle.ID, "error", err)
		}
	}
}

func (g *Generator) fail(ctx context.Context, handle *JobHandle, message string) {
	if g.history == nil {
		return
	}

	record := newRecord(handle)
	record.Status = domain.JobFailed
	record.Error = &message
	finished := g.now().UTC()
	record.FinishedAt = &finished

	if err := g.history.Save(ctx, record); err != nil {
		g.logger.Warn("record failed job", "job_id", handle.ID, "error", err)
	}
}

func (g *Generator) inTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if g.txManager == nil {
		return fn(ctx)
	}
	return g.txManager.WithTransaction(ctx, fn)
}

func newRecord(handle *JobHandle) *domain.JobRecord {
	return &domain.JobRecord{
		JobID:       handle.ID,
		Topic:       handle.Request.Topic,
		URLs:        handle.Request.URLs,
		Format:      handle.Request.Format,
		Status:      domain.JobPending,
		SubmittedAt: handle.SubmittedAt,
	}
}

// submissionError keeps the backend's own message when it sent one.
func submissionError(err error) error {
	msg := domain.MsgSubmissionFailed

	var transportErr *domain.TransportError
	var authErr *domain.AuthError
	switch {
	case errors.As(err, &transportErr) && transportErr.Detail != "":
		msg = transportErr.Detail
	case errors.As(err, &authErr):
		msg = authErr.Message
	}

	return &domain.SubmissionError{Message: msg, Err: err}
}
