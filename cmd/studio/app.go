package main

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"os"
	"time"

	"article_studio/internal/backend"
	"article_studio/internal/config"
	"article_studio/internal/identity"
	"article_studio/internal/metrics"
	"article_studio/internal/output"
	"article_studio/internal/poller"
	"article_studio/internal/publisher"
	"article_studio/internal/render"
	"article_studio/internal/service"
	"article_studio/internal/session"
	"article_studio/internal/storage/postgres"
)

var errUsage = errors.New("usage")

// app holds the wired components for one CLI invocation.
type app struct {
	cfg    *config.Config
	logger *slog.Logger
	stdout io.Writer
	stderr io.Writer

	gate      *session.Gate
	generator *service.Generator
	library   *service.Library
	admin     *service.Admin
	styles    *service.Styles
	renderer  *render.Renderer
	clipboard render.Clipboard
	saver     render.FileSaver
	jobs      *postgres.JobStore

	closers []func() error
}

func newApp(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*app, error) {
	a := &app{
		cfg:       cfg,
		logger:    logger,
		stdout:    os.Stdout,
		stderr:    os.Stderr,
		renderer:  render.New(),
		clipboard: output.SystemClipboard{},
		saver:     output.NewDirSaver(cfg.Output.Dir),
	}

	m := metrics.New()
	if cfg.Metrics.Addr != "" {
		a.serveMetrics(m)
	}

	provider := identity.New(identity.Config{
		URL:     cfg.Identity.URL,
		AnonKey: cfg.Identity.AnonKey,
		Timeout: cfg.Backend.Timeout,
	}, identity.NewFileStorage(cfg.Identity.SessionFile), logger)

	a.gate = session.NewGate(provider, logger)
	a.gate.Start(ctx)
	a.closers = append(a.closers, func() error { a.gate.Close(); return nil })

	client := backend.New(backend.Config{
		BaseURL:         cfg.Backend.BaseURL,
		Timeout:         cfg.Backend.Timeout,
		AdminMaxRetries: cfg.Admin.MaxRetries,
		AdminRetryStep:  cfg.Admin.RetryStep,
	}, a.gate, m, logger)

	var (
		history   service.JobRecorder
		archive   service.ArtifactArchive
		txManager service.TransactionManager
		pub       service.Publisher
	)

	if cfg.Database.Enabled {
		db, err := postgres.Open(ctx, cfg.Database.DSN())
		if err != nil {
			a.Close()
			return nil, err
		}
		a.closers = append(a.closers, db.Close)
		logger.Info("connected to database")

		a.jobs = postgres.NewJobStore(db)
		history = a.jobs
		archive = postgres.NewArtifactStore(db)
		txManager = postgres.NewTransactionManager(db)
	}

	if cfg.RabbitMQ.Enabled {
		rabbitMQ, err := publisher.NewRabbitMQ(publisher.Config{
			URL:        cfg.RabbitMQ.URL,
			Exchange:   cfg.RabbitMQ.Exchange,
			RoutingKey: cfg.RabbitMQ.RoutingKey,
			QueueName:  cfg.RabbitMQ.QueueName,
		}, logger)
		if err != nil {
			a.Close()
			return nil, err
		}
		a.closers = append(a.closers, rabbitMQ.Close)
		pub = rabbitMQ
	}

	tracker := poller.NewPoller(client, cfg.Poll.Interval, m, logger)

	a.generator = service.NewGenerator(client, tracker, history, archive, txManager, pub, logger)
	a.library = service.NewLibrary(client, cfg.Admin.PageSize, logger)
	a.admin = service.NewAdmin(client, a.gate, cfg.Admin.PageSize, logger)
	a.styles = service.NewStyles(client, logger)

	return a, nil
}

func (a *app) serveMetrics(m *metrics.Metrics) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", m.Handler())

	srv := &http.Server{
		Addr:              a.cfg.Metrics.Addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.logger.Error("metrics server", "error", err)
		}
	}()

	a.closers = append(a.closers, func() error {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		return srv.Shutdown(ctx)
	})
	a.logger.Info("serving metrics", "addr", a.cfg.Metrics.Addr)
}

// Close releases resources in reverse order. It is safe to call twice.
func (a *app) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil {
			a.logger.Warn("close resource", "error", err)
		}
	}
	a.closers = nil
}

// ready waits for the startup session fetch.
func (a *app) ready(ctx context.Context) error {
	return a.gate.Wait(ctx)
}
