package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"mime"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"article_studio/internal/domain"
	"article_studio/internal/metrics"
)

// TokenSource yields the bearer token of the current session, or "".
type TokenSource interface {
	AccessToken() string
}

// Config holds backend client configuration.
type Config struct {
	BaseURL         string
	Timeout         time.Duration
	AdminMaxRetries int
	AdminRetryStep  time.Duration
}

// Client is the facade over the article-generation REST API. Every call is a
// fresh request; nothing is cached.
type Client struct {
	httpClient      *http.Client
	baseURL         string
	tokens          TokenSource
	adminMaxRetries int
	adminRetryStep  time.Duration
	sleep           func(ctx context.Context, d time.Duration) error
	metrics         *metrics.Metrics
	logger          *slog.Logger
}

// New creates a backend client. tokens and m may be nil.
func New(cfg Config, tokens TokenSource, m *metrics.Metrics, logger *slog.Logger) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		baseURL:         strings.TrimSuffix(cfg.BaseURL, "/"),
		tokens:          tokens,
		adminMaxRetries: cfg.AdminMaxRetries,
		adminRetryStep:  cfg.AdminRetryStep,
		sleep:           sleepContext,
		metrics:         m,
		logger:          logger.With("component", "backend"),
	}
}

type response struct {
	status int
	header http.Header
	body   []byte
}

func (c *Client) token() string {
	if c.tokens == nil {
		return ""
	}
	return c.tokens.AccessToken()
}

// doJSON marshals payload (if any) and performs the request.
func (c *Client) doJSON(ctx context.Context, op, method, path string, payload any, protected bool) (*response, error) {
	var body io.Reader
	contentType := ""
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("%s: marshal payload: %w", op, err)
		}
		body = bytes.NewReader(raw)
		contentType = "application/json"
	}
	return c.do(ctx, op, method, path, contentType, body, protected)
}

func (c *Client) do(ctx context.Context, op, method, path, contentType string, body io.Reader, protected bool) (*response, error) {
	token := c.token()
	if protected && token == "" {
		return nil, &domain.AuthError{Op: op, Status: http.StatusUnauthorized, Message: domain.MsgNotAuthenticated}
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("%s: create request: %w", op, err)
	}

	req.Header.Set("Accept", "application/json, text/plain, */*")
	req.Header.Set("User-Agent", "ArticleStudio/1.0")
	req.Header.Set("X-Request-ID", uuid.NewString())
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.metrics.ObserveRequest(op, 0)
		return nil, &domain.TransportError{Op: op, Message: err.Error(), Err: err}
	}
	defer resp.Body.Close()

	c.metrics.ObserveRequest(op, resp.StatusCode)

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &domain.TransportError{Op: op, Status: resp.StatusCode, Message: "read response body", Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, statusError(op, path, resp.StatusCode, payload)
	}

	return &response{status: resp.StatusCode, header: resp.Header, body: payload}, nil
}

func statusError(op, path string, status int, payload []byte) error {
	detail := errorDetail(payload)

	switch status {
	case http.StatusUnauthorized, http.StatusForbidden:
		msg := domain.MsgUnauthenticated
		if status == http.StatusForbidden {
			msg = domain.MsgForbidden
		}
		if detail != "" {
			msg = detail
		}
		return &domain.AuthError{Op: op, Status: status, Message: msg}
	case http.StatusNotFound:
		return &domain.NotFoundError{Op: op, Resource: path}
	case http.StatusServiceUnavailable:
		if detail == "" {
			return &domain.TransportError{Op: op, Status: status, Message: domain.MsgUnavailable}
		}
	}

	msg := detail
	if msg == "" {
		msg = http.StatusText(status)
	}
	return &domain.TransportError{Op: op, Status: status, Message: msg, Detail: detail}
}

// errorDetail pulls a human message out of an error body: the FastAPI
// "detail" field, then "error"/"message", then a short plain-text body.
func errorDetail(payload []byte) string {
	payload = bytes.TrimSpace(payload)
	if len(payload) == 0 {
		return ""
	}

	var body errorBody
	if err := json.Unmarshal(payload, &body); err == nil {
		if len(body.Detail) > 0 {
			var s string
			if err := json.Unmarshal(body.Detail, &s); err == nil {
				return s
			}
			return string(body.Detail)
		}
		if body.Error != "" {
			return body.Error
		}
		if body.Message != "" {
			return body.Message
		}
		return ""
	}

	if len(payload) > 512 {
		payload = payload[:512]
	}
	return string(payload)
}

// decodeText returns a text body, unwrapping a JSON string if the server sent one.
func decodeText(resp *response) string {
	mediaType, _, _ := mime.ParseMediaType(resp.header.Get("Content-Type"))
	if mediaType == "application/json" {
		var s string
		if err := json.Unmarshal(resp.body, &s); err == nil {
			return s
		}
		var body contentBody
		if err := json.Unmarshal(resp.body, &body); err == nil {
			return body.Content
		}
	}
	return string(resp.body)
}

// withRetry retries fn while it fails with 503, sleeping step, 2*step, ...
func (c *Client) withRetry(ctx context.Context, op string, fn func() error) error {
	for attempt := 0; ; attempt++ {
		err := fn()
		if err == nil || domain.StatusOf(err) != http.StatusServiceUnavailable || attempt >= c.adminMaxRetries {
			return err
		}

		backoff := time.Duration(attempt+1) * c.adminRetryStep
		c.logger.Warn("backend unavailable, retrying",
			"operation", op,
			"attempt", attempt+1,
			"backoff", backoff,
		)

		if err := c.sleep(ctx, backoff); err != nil {
			return err
		}
	}
}

func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
