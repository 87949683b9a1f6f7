package poller

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"article_studio/internal/domain"
	"article_studio/internal/metrics"
	"article_studio/internal/render"
)

type State string

const (
	StateIdle      State = "idle"
	StatePolling   State = "polling"
	StateCompleted State = "completed"
	StateFailed    State = "failed"
)

// Backend is the part of the API the poller needs.
type Backend interface {
	GetJob(ctx context.Context, jobID string) (*domain.Job, error)
	GetArticle(ctx context.Context, filename string) (*domain.Artifact, error)
}

// Poller tracks one generation job at a time until it reaches a terminal status.
type Poller struct {
	backend  Backend
	interval time.Duration
	wait     func(ctx context.Context, d time.Duration) error
	metrics  *metrics.Metrics
	logger   *slog.Logger

	mu    sync.Mutex
	state State
}

func NewPoller(backend Backend, interval time.Duration, m *metrics.Metrics, logger *slog.Logger) *Poller {
	return &Poller{
		backend:  backend,
		interval: interval,
		wait:     waitContext,
		metrics:  m,
		logger:   logger.With("component", "poller"),
		state:    StateIdle,
	}
}

func (p *Poller) State() State {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state
}

func (p *Poller) setState(s State) {
	p.mu.Lock()
	p.state = s
	p.mu.Unlock()
}

// Reset returns a finished poller to idle.
func (p *Poller) Reset() {
	p.setState(StateIdle)
}

// Track polls jobID every interval until the job completes or fails, or ctx is
// done. Each status read is reported to onProgress. Poll errors are logged and
// the next cycle proceeds. On completion the stripped artifact is returned.
func (p *Poller) Track(ctx context.Context, jobID string, onProgress func(domain.ProgressUpdate)) (*domain.Artifact, error) {
	p.setState(StatePolling)
	logger := p.logger.With("job_id", jobID)
	logger.Info("polling started", "interval", p.interval)

	for {
		if err := p.wait(ctx, p.interval); err != nil {
			p.setState(StateIdle)
			logger.Info("polling stopped", "reason", err)
			return nil, err
		}

		artifact, done, err := p.Step(ctx, jobID, onProgress)
		if done {
			return artifact, err
		}
	}
}

// Step performs a single poll cycle. done reports whether polling must stop.
func (p *Poller) Step(ctx context.Context, jobID string, onProgress func(domain.ProgressUpdate)) (artifact *domain.Artifact, done bool, err error) {
	if p.State() != StatePolling {
		p.setState(StatePolling)
	}

	job, err := p.backend.GetJob(ctx, jobID)
	if err != nil {
		if ctx.Err() != nil {
			p.setState(StateIdle)
			return nil, true, ctx.Err()
		}
		p.metrics.ObservePoll("error")
		p.logger.Warn("job status poll failed", "job_id", jobID, "error", err)
		return nil, false, nil
	}
	p.metrics.ObservePoll("ok")

	if onProgress != nil {
		onProgress(domain.ProgressUpdate{Progress: job.Progress, Message: job.Message})
	}

	if !job.Status.Terminal() {
		return nil, false, nil
	}

	if job.Status == domain.JobFailed {
		p.setState(StateFailed)
		p.metrics.ObserveJob(string(domain.JobFailed))
		msg := job.Error
		if msg == "" {
			msg = domain.MsgGenerationFailed
		}
		p.logger.Warn("job failed", "job_id", jobID, "error", msg)
		return nil, true, &domain.JobFailedError{JobID: jobID, Message: msg}
	}

	p.setState(StateCompleted)
	p.metrics.ObserveJob(string(domain.JobCompleted))
	artifact, err = p.fetchResult(ctx, job)
	return artifact, true, err
}

func (p *Poller) fetchResult(ctx context.Context, job *domain.Job) (*domain.Artifact, error) {
	if job.Result == nil || job.Result.Filename == "" {
		return nil, fmt.Errorf("job %s completed without a result filename", job.ID)
	}

	artifact, err := p.backend.GetArticle(ctx, job.Result.Filename)
	if err != nil {
		return nil, fmt.Errorf("fetch result of job %s: %w", job.ID, err)
	}

	artifact.Content = render.StripWrapper(artifact.Content)
	p.logger.Info("job completed", "job_id", job.ID, "filename", artifact.Filename)
	return artifact, nil
}

func waitContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
