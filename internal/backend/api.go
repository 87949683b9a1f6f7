package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"path/filepath"
	"sort"

	"article_studio/internal/domain"
)

var legacySourcePaths = []string{
	"/api/articles/sources.md",
	"/api/articles/sources.txt",
}

// GenerateFromTopic starts a job that researches and writes about topic.
func (c *Client) GenerateFromTopic(ctx context.Context, topic string, format domain.OutputFormat) (string, error) {
	return c.startJob(ctx, "generate", "/api/generate", generateRequest{
		Query:       topic,
		ArticleType: format,
		SkipSearch:  false,
	})
}

// GenerateFromURLs starts a job that writes from the given source URLs.
func (c *Client) GenerateFromURLs(ctx context.Context, urls []string, label string, format domain.OutputFormat) (string, error) {
	return c.startJob(ctx, "generate_from_urls", "/api/generate/from-urls", generateFromURLsRequest{
		URLs:        urls,
		Query:       label,
		ArticleType: format,
	})
}

func (c *Client) startJob(ctx context.Context, op, path string, payload any) (string, error) {
	resp, err := c.doJSON(ctx, op, http.MethodPost, path, payload, false)
	if err != nil {
		return "", err
	}

	var out jobResponse
	if err := json.Unmarshal(resp.body, &out); err != nil {
		return "", fmt.Errorf("%s: decode response: %w", op, err)
	}
	if out.JobID == "" {
		return "", &domain.TransportError{Op: op, Status: resp.status, Message: "response carried no job_id"}
	}
	return out.JobID, nil
}

func (c *Client) GetJob(ctx context.Context, jobID string) (*domain.Job, error) {
	resp, err := c.doJSON(ctx, "get_job", http.MethodGet, "/api/jobs/"+url.PathEscape(jobID), nil, false)
	if err != nil {
		return nil, err
	}

	var job domain.Job
	if err := json.Unmarshal(resp.body, &job); err != nil {
		return nil, fmt.Errorf("get_job: decode response: %w", err)
	}
	if job.ID == "" {
		job.ID = jobID
	}
	return &job, nil
}

// GetArticle returns the raw article text; no wrapper stripping is applied.
func (c *Client) GetArticle(ctx context.Context, filename string) (*domain.Artifact, error) {
	resp, err := c.doJSON(ctx, "get_article", http.MethodGet, "/api/articles/"+url.PathEscape(filename), nil, false)
	if err != nil {
		return nil, err
	}
	return domain.NewArtifact(filename, decodeText(resp)), nil
}

// ListArticles returns article metadata, newest first.
func (c *Client) ListArticles(ctx context.Context) ([]domain.ArticleListEntry, error) {
	resp, err := c.doJSON(ctx, "list_articles", http.MethodGet, "/api/articles", nil, false)
	if err != nil {
		return nil, err
	}

	var out articleListResponse
	if err := json.Unmarshal(resp.body, &out); err != nil {
		return nil, fmt.Errorf("list_articles: decode response: %w", err)
	}

	entries := make([]domain.ArticleListEntry, 0, len(out.Articles))
	for _, a := range out.Articles {
		entries = append(entries, domain.ArticleListEntry{Filename: a.Filename, Modified: a.Modified.Time})
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Modified.After(entries[j].Modified)
	})
	return entries, nil
}

func (c *Client) DeleteArticle(ctx context.Context, filename string) error {
	_, err := c.doJSON(ctx, "delete_article", http.MethodDelete, "/api/articles/"+url.PathEscape(filename), nil, false)
	return err
}

// GetSources reads the sources document, falling back to the legacy
// sources.md / sources.txt article paths when /api/sources is absent.
func (c *Client) GetSources(ctx context.Context) (string, error) {
	resp, err := c.doJSON(ctx, "get_sources", http.MethodGet, "/api/sources", nil, false)
	if err == nil {
		return decodeText(resp), nil
	}

	var nf *domain.NotFoundError
	if !errors.As(err, &nf) {
		return "", err
	}

	for _, path := range legacySourcePaths {
		resp, err = c.doJSON(ctx, "get_sources_legacy", http.MethodGet, path, nil, false)
		if err == nil {
			return decodeText(resp), nil
		}
		if !errors.As(err, &nf) {
			return "", err
		}
	}
	return "", err
}

func (c *Client) PutSources(ctx context.Context, content string) error {
	_, err := c.doJSON(ctx, "put_sources", http.MethodPut, "/api/sources", contentBody{Content: content}, false)
	return err
}

func (c *Client) DeleteSources(ctx context.Context) error {
	_, err := c.doJSON(ctx, "delete_sources", http.MethodDelete, "/api/sources", nil, false)
	return err
}

func (c *Client) GetWritingStyle(ctx context.Context) (*domain.WritingStyle, error) {
	resp, err := c.doJSON(ctx, "get_writing_style", http.MethodGet, "/api/writing-style", nil, false)
	if err != nil {
		return nil, err
	}

	var out writingStyleResponse
	if err := json.Unmarshal(resp.body, &out); err != nil {
		return &domain.WritingStyle{Content: string(resp.body)}, nil
	}
	return &domain.WritingStyle{Filename: out.Filename, Content: out.Content}, nil
}

// UploadWritingStyle sends the sample as a multipart "file" field.
func (c *Client) UploadWritingStyle(ctx context.Context, filename string, r io.Reader) error {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	part, err := mw.CreateFormFile("file", filepath.Base(filename))
	if err != nil {
		return fmt.Errorf("upload_writing_style: create form file: %w", err)
	}
	if _, err := io.Copy(part, r); err != nil {
		return fmt.Errorf("upload_writing_style: copy sample: %w", err)
	}
	if err := mw.Close(); err != nil {
		return fmt.Errorf("upload_writing_style: close form: %w", err)
	}

	_, err = c.do(ctx, "upload_writing_style", http.MethodPut, "/api/writing-style", mw.FormDataContentType(), &buf, false)
	return err
}

func (c *Client) DeleteWritingStyle(ctx context.Context) error {
	_, err := c.doJSON(ctx, "delete_writing_style", http.MethodDelete, "/api/writing-style", nil, false)
	return err
}

// ListUsers is admin-only and retries transient 503s.
func (c *Client) ListUsers(ctx context.Context) ([]domain.AdminUser, error) {
	var out adminUsersResponse
	err := c.withRetry(ctx, "list_users", func() error {
		resp, err := c.doJSON(ctx, "list_users", http.MethodGet, "/api/admin/users", nil, true)
		if err != nil {
			return err
		}
		if err := json.Unmarshal(resp.body, &out); err != nil {
			return fmt.Errorf("list_users: decode response: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	users := make([]domain.AdminUser, 0, len(out.Users))
	for _, u := range out.Users {
		users = append(users, u.toDomain())
	}
	return users, nil
}

// ListAdminArticles is admin-only and retries transient 503s.
func (c *Client) ListAdminArticles(ctx context.Context) ([]domain.AdminArticle, error) {
	var out adminArticlesResponse
	err := c.withRetry(ctx, "list_admin_articles", func() error {
		resp, err := c.doJSON(ctx, "list_admin_articles", http.MethodGet, "/api/admin/articles", nil, true)
		if err != nil {
			return err
		}
		if err := json.Unmarshal(resp.body, &out); err != nil {
			return fmt.Errorf("list_admin_articles: decode response: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	articles := make([]domain.AdminArticle, 0, len(out.Articles))
	for _, a := range out.Articles {
		articles = append(articles, a.toDomain())
	}
	return articles, nil
}

func (c *Client) DeleteUser(ctx context.Context, userID string) error {
	_, err := c.doJSON(ctx, "delete_user", http.MethodDelete, "/api/admin/users/"+url.PathEscape(userID), nil, true)
	return err
}

func (c *Client) DeleteAdminArticle(ctx context.Context, articleID string) error {
	_, err := c.doJSON(ctx, "delete_admin_article", http.MethodDelete, "/api/admin/articles/"+url.PathEscape(articleID), nil, true)
	return err
}
