package backend

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"article_studio/internal/domain"
)

type generateRequest struct {
	Query       string              `json:"query"`
	ArticleType domain.OutputFormat `json:"article_type"`
	SkipSearch  bool                `json:"skip_search"`
}

type generateFromURLsRequest struct {
	URLs        []string            `json:"urls"`
	Query       string              `json:"query"`
	ArticleType domain.OutputFormat `json:"article_type"`
}

type jobResponse struct {
	JobID string `json:"job_id"`
}

type contentBody struct {
	Content string `json:"content"`
}

type articleListResponse struct {
	Articles []articleEntry `json:"articles"`
}

type articleEntry struct {
	Filename string   `json:"filename"`
	Modified flexTime `json:"modified"`
}

type writingStyleResponse struct {
	Filename string `json:"filename"`
	Content  string `json:"content"`
}

type adminUsersResponse struct {
	Users []adminUser `json:"users"`
}

type adminUser struct {
	ID           string         `json:"id"`
	Email        string         `json:"email"`
	Role         string         `json:"role"`
	AppMetadata  map[string]any `json:"app_metadata"`
	CreatedAt    flexTime       `json:"created_at"`
	LastSignInAt *flexTime      `json:"last_sign_in_at"`
}

type adminArticlesResponse struct {
	Articles []adminArticle `json:"articles"`
}

type adminArticle struct {
	ID        flexString `json:"id"`
	Filename  string     `json:"filename"`
	Title     string     `json:"title"`
	UserEmail string     `json:"user_email"`
	CreatedAt flexTime   `json:"created_at"`
}

type errorBody struct {
	Detail  json.RawMessage `json:"detail"`
	Error   string          `json:"error"`
	Message string          `json:"message"`
}

func (u adminUser) toDomain() domain.AdminUser {
	role := u.Role
	if role == "" {
		if r, ok := u.AppMetadata["role"].(string); ok {
			role = r
		}
	}
	out := domain.AdminUser{
		ID:        u.ID,
		Email:     u.Email,
		Role:      role,
		CreatedAt: u.CreatedAt.Time,
	}
	if u.LastSignInAt != nil && !u.LastSignInAt.IsZero() {
		t := u.LastSignInAt.Time
		out.LastSignInAt = &t
	}
	return out
}

func (a adminArticle) toDomain() domain.AdminArticle {
	return domain.AdminArticle{
		ID:        string(a.ID),
		Filename:  a.Filename,
		Title:     a.Title,
		UserEmail: a.UserEmail,
		CreatedAt: a.CreatedAt.Time,
	}
}

var timeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999",
	"2006-01-02 15:04:05.999999",
	"2006-01-02",
}

// flexTime accepts ISO timestamps with or without zone, and unix epochs in
// seconds or milliseconds.
type flexTime struct {
	time.Time
}

func (t *flexTime) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		return nil
	}

	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		if s == "" {
			return nil
		}
		for _, layout := range timeLayouts {
			if parsed, err := time.Parse(layout, s); err == nil {
				t.Time = parsed.UTC()
				return nil
			}
		}
		return fmt.Errorf("unrecognised timestamp %q", s)
	}

	f, err := strconv.ParseFloat(string(b), 64)
	if err != nil {
		return fmt.Errorf("unrecognised timestamp %s", b)
	}
	if f > 1e12 {
		t.Time = time.UnixMilli(int64(f)).UTC()
		return nil
	}
	sec := int64(f)
	t.Time = time.Unix(sec, int64((f-float64(sec))*1e9)).UTC()
	return nil
}

// flexString accepts either a JSON string or number.
type flexString string

func (s *flexString) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var v string
		if err := json.Unmarshal(b, &v); err != nil {
			return err
		}
		*s = flexString(v)
		return nil
	}
	*s = flexString(b)
	return nil
}
