package session

import (
	"context"
	"log/slog"
	"net/http"
	"sync"
	"sync/atomic"

	"article_studio/internal/domain"
	"article_studio/internal/identity"
)

// Provider is the identity provider behind the gate.
type Provider interface {
	GetSession(ctx context.Context) (*domain.Session, error)
	SignInWithPassword(ctx context.Context, email, password string) (*domain.Session, error)
	SignUp(ctx context.Context, email, password string) (*domain.Session, error)
	SignOut(ctx context.Context) error
	OnAuthStateChange(fn identity.Listener) (unsubscribe func())
}

// Gate loads the existing session at startup, mirrors provider auth events
// into the Store, and refuses protected work without a session.
type Gate struct {
	provider Provider
	store    *Store
	logger   *slog.Logger

	loading     atomic.Bool
	ready       chan struct{}
	startOnce   sync.Once
	closeOnce   sync.Once
	unsubscribe func()
}

func NewGate(provider Provider, logger *slog.Logger) *Gate {
	g := &Gate{
		provider: provider,
		store:    NewStore(),
		logger:   logger.With("component", "session"),
		ready:    make(chan struct{}),
	}
	g.loading.Store(true)
	return g
}

// Start subscribes to the provider and fetches the existing session in the
// background. Calls after the first are no-ops.
func (g *Gate) Start(ctx context.Context) {
	g.startOnce.Do(func() {
		g.unsubscribe = g.provider.OnAuthStateChange(g.store.set)

		go func() {
			defer close(g.ready)
			defer g.loading.Store(false)

			session, err := g.provider.GetSession(ctx)
			if err != nil {
				g.logger.Warn("load existing session", "error", err)
				session = nil
			}
			g.store.setInitial(session)
		}()
	})
}

func (g *Gate) Loading() bool {
	return g.loading.Load()
}

// Ready is closed once the startup session fetch has settled.
func (g *Gate) Ready() <-chan struct{} {
	return g.ready
}

func (g *Gate) Wait(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-g.ready:
		return nil
	}
}

func (g *Gate) Current() *domain.Session {
	return g.store.Current()
}

func (g *Gate) Subscribe(fn Listener) (unsubscribe func()) {
	return g.store.Subscribe(fn)
}

// AccessToken returns the bearer token of the current session, or "".
func (g *Gate) AccessToken() string {
	if s := g.store.Current(); s != nil {
		return s.AccessToken
	}
	return ""
}

// Require returns the current session or an AuthError when signed out.
func (g *Gate) Require() (*domain.Session, error) {
	s := g.store.Current()
	if s == nil {
		return nil, &domain.AuthError{Op: "session", Status: http.StatusUnauthorized, Message: domain.MsgNotAuthenticated}
	}
	return s, nil
}

func (g *Gate) SignIn(ctx context.Context, email, password string) (*domain.Session, error) {
	return g.provider.SignInWithPassword(ctx, email, password)
}

// SignUp returns identity.ErrConfirmationRequired when no session is issued yet.
func (g *Gate) SignUp(ctx context.Context, email, password string) (*domain.Session, error) {
	return g.provider.SignUp(ctx, email, password)
}

func (g *Gate) SignOut(ctx context.Context) error {
	return g.provider.SignOut(ctx)
}

// Close stops mirroring provider events.
func (g *Gate) Close() {
	g.closeOnce.Do(func() {
		if g.unsubscribe != nil {
			g.unsubscribe()
		}
	})
}
