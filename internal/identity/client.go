// Package identity keeps a Supabase Auth session on top of auth-go: it
// persists the session between runs and reports auth state changes.
package identity

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"regexp"
	"strconv"
	"strings"
	"sync"
	"time"

	auth "github.com/supabase-community/auth-go"
	"github.com/supabase-community/auth-go/types"

	"article_studio/internal/domain"
)

// ErrConfirmationRequired is returned by SignUp when the account exists but the
// email address must be confirmed before a session is issued.
var ErrConfirmationRequired = errors.New("please check your email for verification link")

const refreshSkew = 30 * time.Second

// auth-go reports non-2xx replies as "response status code <n>: <body>".
var statusPattern = regexp.MustCompile(`(?s)status code (\d{3}):?\s?(.*)$`)

type Config struct {
	URL     string
	AnonKey string
	Timeout time.Duration
}

// Listener receives auth state changes.
type Listener func(event domain.AuthEvent, session *domain.Session)

type Client struct {
	auth    auth.Client
	storage Storage
	now     func() time.Time
	logger  *slog.Logger

	mu        sync.Mutex
	listeners map[int]Listener
	nextID    int
}

// New builds a client for the project at cfg.URL. A nil storage keeps the
// session in memory.
func New(cfg Config, storage Storage, logger *slog.Logger) *Client {
	if storage == nil {
		storage = &MemoryStorage{}
	}

	authClient := auth.New("", cfg.AnonKey).
		WithCustomAuthURL(strings.TrimSuffix(cfg.URL, "/") + "/auth/v1").
		WithClient(http.Client{Timeout: cfg.Timeout})

	return &Client{
		auth:      authClient,
		storage:   storage,
		now:       time.Now,
		logger:    logger.With("component", "identity"),
		listeners: make(map[int]Listener),
	}
}

// OnAuthStateChange registers fn for future auth events.
func (c *Client) OnAuthStateChange(fn Listener) (unsubscribe func()) {
	c.mu.Lock()
	id := c.nextID
	c.nextID++
	c.listeners[id] = fn
	c.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			c.mu.Lock()
			delete(c.listeners, id)
			c.mu.Unlock()
		})
	}
}

func (c *Client) emit(event domain.AuthEvent, session *domain.Session) {
	c.mu.Lock()
	listeners := make([]Listener, 0, len(c.listeners))
	for _, fn := range c.listeners {
		listeners = append(listeners, fn)
	}
	c.mu.Unlock()

	for _, fn := range listeners {
		fn(event, session)
	}
}

// GetSession returns the stored session, refreshing it first when the access
// token has expired. A rejected refresh clears the stored session.
func (c *Client) GetSession(ctx context.Context) (*domain.Session, error) {
	session, err := c.storage.Load()
	if err != nil {
		return nil, fmt.Errorf("load session: %w", err)
	}
	if session == nil || !session.Expired(c.now(), refreshSkew) {
		return session, nil
	}
	if session.RefreshToken == "" {
		c.forget()
		return nil, nil
	}

	refreshed, err := c.refresh(ctx, session.RefreshToken)
	if err != nil {
		var authErr *domain.AuthError
		if errors.As(err, &authErr) {
			c.logger.Warn("session refresh rejected", "error", err)
			c.forget()
			return nil, nil
		}
		return nil, err
	}

	c.store(refreshed)
	c.emit(domain.EventTokenRefreshed, refreshed)
	return refreshed, nil
}

func (c *Client) SignInWithPassword(ctx context.Context, email, password string) (*domain.Session, error) {
	var out *types.TokenResponse
	err := c.call(ctx, "sign_in", func() (err error) {
		out, err = c.auth.Token(types.TokenRequest{GrantType: grantPassword, Email: email, Password: password})
		return err
	})
	if err != nil {
		return nil, err
	}

	session := sessionFromToken(out, c.now())
	if session == nil {
		return nil, &domain.AuthError{Op: "sign_in", Message: "identity provider returned no session"}
	}

	c.store(session)
	c.logger.Info("signed in", "user_id", session.User.ID)
	c.emit(domain.EventSignedIn, session)
	return session, nil
}

// SignUp creates an account. It returns ErrConfirmationRequired when the
// provider withholds the session until the email is confirmed.
func (c *Client) SignUp(ctx context.Context, email, password string) (*domain.Session, error) {
	var out *types.SignupResponse
	err := c.call(ctx, "sign_up", func() (err error) {
		out, err = c.auth.Signup(types.SignupRequest{Email: email, Password: password})
		return err
	})
	if err != nil {
		return nil, err
	}

	issued := out.Session
	if session := newSession(issued.AccessToken, issued.RefreshToken, int64(issued.ExpiresIn), int64(issued.ExpiresAt), issued.User, c.now()); session != nil {
		c.store(session)
		c.logger.Info("signed up", "user_id", session.User.ID)
		c.emit(domain.EventSignedIn, session)
		return session, nil
	}

	c.logger.Info("sign up awaiting email confirmation", "user_id", out.User.ID.String())
	return nil, ErrConfirmationRequired
}

// SignOut revokes the stored session. The local session is dropped even when
// the provider cannot be reached.
func (c *Client) SignOut(ctx context.Context) error {
	session, err := c.storage.Load()
	if err != nil {
		c.logger.Warn("load session for sign out", "error", err)
	}

	var remoteErr error
	if session != nil && session.AccessToken != "" {
		remoteErr = c.call(ctx, "sign_out", func() error {
			return c.auth.WithToken(session.AccessToken).Logout()
		})
		if remoteErr != nil {
			c.logger.Warn("remote sign out failed", "error", remoteErr)
		}
	}

	c.forget()
	return remoteErr
}

func (c *Client) refresh(ctx context.Context, refreshToken string) (*domain.Session, error) {
	var out *types.TokenResponse
	err := c.call(ctx, "refresh", func() (err error) {
		out, err = c.auth.Token(types.TokenRequest{GrantType: grantRefreshToken, RefreshToken: refreshToken})
		return err
	})
	if err != nil {
		return nil, err
	}

	session := sessionFromToken(out, c.now())
	if session == nil {
		return nil, &domain.AuthError{Op: "refresh", Message: "identity provider returned no session"}
	}
	return session, nil
}

func (c *Client) store(session *domain.Session) {
	if err := c.storage.Save(session); err != nil {
		c.logger.Warn("persist session", "error", err)
	}
}

func (c *Client) forget() {
	if err := c.storage.Clear(); err != nil {
		c.logger.Warn("clear session", "error", err)
	}
	c.emit(domain.EventSignedOut, nil)
}

// call runs a blocking auth-go request and maps its error. auth-go takes no
// context, so call returns as soon as ctx is done and the request itself is
// bounded by the http.Client timeout.
func (c *Client) call(ctx context.Context, op string, fn func() error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	done := make(chan error, 1)
	go func() { done <- fn() }()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case err := <-done:
		if err != nil {
			return providerError(op, err)
		}
		return nil
	}
}

// providerError maps client errors (bad credentials, weak password, expired
// refresh token) to AuthError and everything else to TransportError.
func providerError(op string, err error) error {
	m := statusPattern.FindStringSubmatch(err.Error())
	if m == nil {
		return &domain.TransportError{Op: op, Message: err.Error(), Err: err}
	}
	status, _ := strconv.Atoi(m[1])

	var body errorBody
	msg := ""
	if jsonErr := json.Unmarshal([]byte(strings.TrimSpace(m[2])), &body); jsonErr == nil {
		msg = body.text()
	}
	if msg == "" {
		msg = http.StatusText(status)
	}

	if status >= 400 && status < 500 && status != http.StatusTooManyRequests {
		return &domain.AuthError{Op: op, Status: status, Message: msg}
	}
	return &domain.TransportError{Op: op, Status: status, Message: msg, Err: err}
}
