package backend

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"article_studio/internal/domain"
	"article_studio/internal/metrics"
)

type staticToken string

func (t staticToken) AccessToken() string { return string(t) }

type ClientTestSuite struct {
	suite.Suite

	mux    *http.ServeMux
	server *httptest.Server
	client *Client
	sleeps []time.Duration
	logger *slog.Logger
}

func (s *ClientTestSuite) SetupTest() {
	s.mux = http.NewServeMux()
	s.server = httptest.NewServer(s.mux)
	s.sleeps = nil
	s.logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
	s.client = s.newClient(staticToken("tok-123"))
}

func (s *ClientTestSuite) TearDownTest() {
	s.server.Close()
}

func (s *ClientTestSuite) newClient(tokens TokenSource) *Client {
	c := New(Config{
		BaseURL:         s.server.URL + "/",
		Timeout:         5 * time.Second,
		AdminMaxRetries: 2,
		AdminRetryStep:  2 * time.Second,
	}, tokens, metrics.New(), s.logger)
	c.sleep = func(_ context.Context, d time.Duration) error {
		s.sleeps = append(s.sleeps, d)
		return nil
	}
	return c
}

func TestClientTestSuite(t *testing.T) {
	suite.Run(t, new(ClientTestSuite))
}

func (s *ClientTestSuite) TestGenerateFromTopic() {
	s.mux.HandleFunc("POST /api/generate", func(w http.ResponseWriter, r *http.Request) {
		s.Equal("Bearer tok-123", r.Header.Get("Authorization"))
		s.Equal("application/json", r.Header.Get("Content-Type"))
		s.NotEmpty(r.Header.Get("X-Request-ID"))

		var body map[string]any
		s.Require().NoError(json.NewDecoder(r.Body).Decode(&body))
		s.Equal("volcanoes", body["query"])
		s.Equal("detailed", body["article_type"])
		s.Equal(false, body["skip_search"])

		_, _ = w.Write([]byte(`{"job_id":"job-1"}`))
	})

	id, err := s.client.GenerateFromTopic(context.Background(), "volcanoes", domain.OutputDetailed)
	s.NoError(err)
	s.Equal("job-1", id)
}

func (s *ClientTestSuite) TestGenerateFromURLs() {
	s.mux.HandleFunc("POST /api/generate/from-urls", func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			URLs        []string `json:"urls"`
			Query       string   `json:"query"`
			ArticleType string   `json:"article_type"`
		}
		s.Require().NoError(json.NewDecoder(r.Body).Decode(&body))
		s.Equal([]string{"https://a.example"}, body.URLs)
		s.Equal(domain.DefaultURLLabel, body.Query)
		s.Equal("points", body.ArticleType)

		_, _ = w.Write([]byte(`{"job_id":"job-2"}`))
	})

	id, err := s.client.GenerateFromURLs(context.Background(), []string{"https://a.example"}, domain.DefaultURLLabel, domain.OutputPoints)
	s.NoError(err)
	s.Equal("job-2", id)
}

func (s *ClientTestSuite) TestGenerate_SurfacesDetail() {
	s.mux.HandleFunc("POST /api/generate", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"detail":"Query too long"}`))
	})

	_, err := s.client.GenerateFromTopic(context.Background(), "x", domain.OutputDetailed)

	var te *domain.TransportError
	s.Require().True(errors.As(err, &te))
	s.Equal(http.StatusBadRequest, te.Status)
	s.Equal("Query too long", te.Message)
}

func (s *ClientTestSuite) TestGenerate_MissingJobID() {
	s.mux.HandleFunc("POST /api/generate", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{}`))
	})

	_, err := s.client.GenerateFromTopic(context.Background(), "x", domain.OutputDetailed)
	s.Error(err)
	s.Contains(err.Error(), "job_id")
}

func (s *ClientTestSuite) TestGetJob() {
	s.mux.HandleFunc("GET /api/jobs/job-7", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"status":"completed","progress":100,"message":"done","result":{"filename":"article_cats.md"}}`))
	})

	job, err := s.client.GetJob(context.Background(), "job-7")
	s.Require().NoError(err)
	s.Equal("job-7", job.ID)
	s.Equal(domain.JobCompleted, job.Status)
	s.Equal(100, job.Progress)
	s.Require().NotNil(job.Result)
	s.Equal("article_cats.md", job.Result.Filename)
}

func (s *ClientTestSuite) TestGetArticle_PlainText() {
	s.mux.HandleFunc("GET /api/articles/article_cats.txt", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte("Cats are great."))
	})

	art, err := s.client.GetArticle(context.Background(), "article_cats.txt")
	s.Require().NoError(err)
	s.Equal("Cats are great.", art.Content)
	s.Equal(domain.FormatPlain, art.Format)
}

func (s *ClientTestSuite) TestGetArticle_JSONString() {
	s.mux.HandleFunc("GET /api/articles/article_cats.md", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`"# Cats\n\nGreat."`))
	})

	art, err := s.client.GetArticle(context.Background(), "article_cats.md")
	s.Require().NoError(err)
	s.Equal("# Cats\n\nGreat.", art.Content)
	s.Equal(domain.FormatMarkup, art.Format)
}

func (s *ClientTestSuite) TestGetArticle_NotFound() {
	_, err := s.client.GetArticle(context.Background(), "missing.md")

	var nf *domain.NotFoundError
	s.True(errors.As(err, &nf))
}

func (s *ClientTestSuite) TestListArticles_SortedNewestFirst() {
	s.mux.HandleFunc("GET /api/articles", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"articles":[
			{"filename":"old.md","modified":"2025-01-01T10:00:00"},
			{"filename":"new.md","modified":1735900000},
			{"filename":"mid.txt","modified":"2025-01-02T00:00:00Z"}
		]}`))
	})

	entries, err := s.client.ListArticles(context.Background())
	s.Require().NoError(err)
	s.Require().Len(entries, 3)
	s.Equal("new.md", entries[0].Filename)
	s.Equal("mid.txt", entries[1].Filename)
	s.Equal("old.md", entries[2].Filename)
}

func (s *ClientTestSuite) TestDeleteArticle() {
	var called atomic.Bool
	s.mux.HandleFunc("DELETE /api/articles/a.md", func(w http.ResponseWriter, r *http.Request) {
		called.Store(true)
		w.WriteHeader(http.StatusNoContent)
	})

	s.NoError(s.client.DeleteArticle(context.Background(), "a.md"))
	s.True(called.Load())
}

func (s *ClientTestSuite) TestGetSources_Primary() {
	s.mux.HandleFunc("GET /api/sources", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"content":"## Topic\n- [a](https://a)"}`))
	})

	content, err := s.client.GetSources(context.Background())
	s.NoError(err)
	s.Equal("## Topic\n- [a](https://a)", content)
}

func (s *ClientTestSuite) TestGetSources_LegacyFallback() {
	s.mux.HandleFunc("GET /api/articles/sources.txt", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		_, _ = w.Write([]byte("legacy sources"))
	})

	content, err := s.client.GetSources(context.Background())
	s.NoError(err)
	s.Equal("legacy sources", content)
}

func (s *ClientTestSuite) TestGetSources_AllMissing() {
	_, err := s.client.GetSources(context.Background())

	var nf *domain.NotFoundError
	s.True(errors.As(err, &nf))
}

func (s *ClientTestSuite) TestPutSources() {
	s.mux.HandleFunc("PUT /api/sources", func(w http.ResponseWriter, r *http.Request) {
		var body map[string]string
		s.Require().NoError(json.NewDecoder(r.Body).Decode(&body))
		s.Equal("new content", body["content"])
		_, _ = w.Write([]byte(`{"ok":true}`))
	})

	s.NoError(s.client.PutSources(context.Background(), "new content"))
}

func (s *ClientTestSuite) TestUploadWritingStyle() {
	s.mux.HandleFunc("PUT /api/writing-style", func(w http.ResponseWriter, r *http.Request) {
		file, header, err := r.FormFile("file")
		s.Require().NoError(err)
		defer file.Close()

		data, err := io.ReadAll(file)
		s.Require().NoError(err)
		s.Equal("sample.txt", header.Filename)
		s.Equal("I write tersely.", string(data))
		_, _ = w.Write([]byte(`{"ok":true}`))
	})

	err := s.client.UploadWritingStyle(context.Background(), "/tmp/sample.txt", strings.NewReader("I write tersely."))
	s.NoError(err)
}

func (s *ClientTestSuite) TestGetWritingStyle() {
	s.mux.HandleFunc("GET /api/writing-style", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"filename":"style.txt","content":"short sentences"}`))
	})

	style, err := s.client.GetWritingStyle(context.Background())
	s.Require().NoError(err)
	s.Equal("style.txt", style.Filename)
	s.Equal("short sentences", style.Content)
}

func (s *ClientTestSuite) TestAdmin_RequiresSession() {
	var hits atomic.Int32
	s.mux.HandleFunc("GET /api/admin/users", func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
	})

	client := s.newClient(staticToken(""))
	_, err := client.ListUsers(context.Background())

	var ae *domain.AuthError
	s.Require().True(errors.As(err, &ae))
	s.Equal(domain.MsgNotAuthenticated, ae.Message)
	s.Equal(int32(0), hits.Load())
}

func (s *ClientTestSuite) TestAdmin_Forbidden() {
	s.mux.HandleFunc("GET /api/admin/users", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	})

	_, err := s.client.ListUsers(context.Background())

	var ae *domain.AuthError
	s.Require().True(errors.As(err, &ae))
	s.Equal(http.StatusForbidden, ae.Status)
	s.Equal(domain.MsgForbidden, ae.Message)
	s.Empty(s.sleeps)
}

func (s *ClientTestSuite) TestListUsers_RetriesThenSucceeds() {
	var hits atomic.Int32
	s.mux.HandleFunc("GET /api/admin/users", func(w http.ResponseWriter, r *http.Request) {
		if hits.Add(1) <= 2 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		_, _ = w.Write([]byte(`{"users":[{"id":"u1","email":"a@b.c","app_metadata":{"role":"admin"},"created_at":"2025-03-01T12:00:00.123456+00:00"}]}`))
	})

	users, err := s.client.ListUsers(context.Background())
	s.Require().NoError(err)
	s.Require().Len(users, 1)
	s.Equal("admin", users[0].Role)
	s.Equal(int32(3), hits.Load())
	s.Equal([]time.Duration{2 * time.Second, 4 * time.Second}, s.sleeps)
}

func (s *ClientTestSuite) TestListUsers_GivesUpAfterTwoRetries() {
	var hits atomic.Int32
	s.mux.HandleFunc("GET /api/admin/users", func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.WriteHeader(http.StatusServiceUnavailable)
	})

	_, err := s.client.ListUsers(context.Background())

	var te *domain.TransportError
	s.Require().True(errors.As(err, &te))
	s.Equal(http.StatusServiceUnavailable, te.Status)
	s.Equal(domain.MsgUnavailable, te.Message)
	s.Equal(int32(3), hits.Load())
	s.Equal([]time.Duration{2 * time.Second, 4 * time.Second}, s.sleeps)
}

func (s *ClientTestSuite) TestListAdminArticles_NoRetryOnOtherErrors() {
	var hits atomic.Int32
	s.mux.HandleFunc("GET /api/admin/articles", func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	})

	_, err := s.client.ListAdminArticles(context.Background())
	s.Error(err)
	s.Equal(int32(1), hits.Load())
	s.Empty(s.sleeps)
}

func (s *ClientTestSuite) TestListAdminArticles() {
	s.mux.HandleFunc("GET /api/admin/articles", func(w http.ResponseWriter, r *http.Request) {
		s.Equal("Bearer tok-123", r.Header.Get("Authorization"))
		_, _ = w.Write([]byte(`{"articles":[{"id":42,"filename":"a.md","title":"A","user_email":"x@y.z","created_at":"2025-01-01T00:00:00Z"}]}`))
	})

	articles, err := s.client.ListAdminArticles(context.Background())
	s.Require().NoError(err)
	s.Require().Len(articles, 1)
	s.Equal("42", articles[0].ID)
	s.Equal("x@y.z", articles[0].UserEmail)
}

func (s *ClientTestSuite) TestGeneralCallsDoNotRetry503() {
	var hits atomic.Int32
	s.mux.HandleFunc("GET /api/articles", func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.WriteHeader(http.StatusServiceUnavailable)
	})

	_, err := s.client.ListArticles(context.Background())
	s.Equal(http.StatusServiceUnavailable, domain.StatusOf(err))
	s.Equal(int32(1), hits.Load())
}

func (s *ClientTestSuite) TestNetworkError() {
	s.server.Close()

	_, err := s.client.GetJob(context.Background(), "job-1")

	var te *domain.TransportError
	s.Require().True(errors.As(err, &te))
	s.Equal(0, te.Status)
}

func TestFlexTime(t *testing.T) {
	cases := map[string]time.Time{
		`"2025-01-02T03:04:05Z"`:      time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC),
		`"2025-01-02T03:04:05.5"`:     time.Date(2025, 1, 2, 3, 4, 5, 500000000, time.UTC),
		`1735787045`:                  time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC),
		`1735787045000`:               time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC),
		`"2025-01-02T05:04:05+02:00"`: time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC),
	}

	for raw, want := range cases {
		var ft flexTime
		if err := json.Unmarshal([]byte(raw), &ft); err != nil {
			t.Fatalf("unmarshal %s: %v", raw, err)
		}
		if !ft.Equal(want) {
			t.Fatalf("unmarshal %s: got %v, want %v", raw, ft.Time, want)
		}
	}

	var ft flexTime
	if err := json.Unmarshal([]byte(`"yesterday"`), &ft); err == nil {
		t.Fatalf("expected error for unparseable timestamp")
	}
}

func TestErrorDetail(t *testing.T) {
	cases := map[string]string{
		``:                                      "",
		`{"detail":"nope"}`:                     "nope",
		`{"detail":[{"msg":"field required"}]}`: `[{"msg":"field required"}]`,
		`{"error":"boom"}`:                      "boom",
		`Internal Server Error`:                 "Internal Server Error",
	}
	for in, want := range cases {
		if got := errorDetail([]byte(in)); got != want {
			t.Fatalf("errorDetail(%q) = %q, want %q", in, got, want)
		}
	}
}
