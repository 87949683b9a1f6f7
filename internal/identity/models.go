package identity

import (
	"encoding/json"
	"time"

	"github.com/supabase-community/auth-go/types"

	"article_studio/internal/domain"
)

const (
	grantPassword     = "password"
	grantRefreshToken = "refresh_token"
)

// roleOf prefers app_metadata.role over user_metadata.role.
func roleOf(u types.User) string {
	if r, ok := u.AppMetadata["role"].(string); ok && r != "" {
		return r
	}
	if r, ok := u.UserMetadata["role"].(string); ok {
		return r
	}
	return ""
}

func userFrom(u types.User) domain.User {
	return domain.User{ID: u.ID.String(), Email: u.Email, Role: roleOf(u)}
}

// newSession builds a session from token endpoint fields. expiresAt wins over
// expiresIn. An empty access token means no session was issued.
func newSession(accessToken, refreshToken string, expiresIn, expiresAt int64, user types.User, now time.Time) *domain.Session {
	if accessToken == "" {
		return nil
	}

	expires := time.Time{}
	switch {
	case expiresAt > 0:
		expires = time.Unix(expiresAt, 0).UTC()
	case expiresIn > 0:
		expires = now.Add(time.Duration(expiresIn) * time.Second).UTC()
	}

	return &domain.Session{
		User:         userFrom(user),
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresAt:    expires,
	}
}

func sessionFromToken(t *types.TokenResponse, now time.Time) *domain.Session {
	return newSession(t.AccessToken, t.RefreshToken, int64(t.ExpiresIn), int64(t.ExpiresAt), t.User, now)
}

type errorBody struct {
	Error            string          `json:"error"`
	ErrorDescription string          `json:"error_description"`
	Msg              string          `json:"msg"`
	Message          string          `json:"message"`
	Code             json.RawMessage `json:"code"`
}

func (e errorBody) text() string {
	for _, s := range []string{e.ErrorDescription, e.Msg, e.Message, e.Error} {
		if s != "" {
			return s
		}
	}
	return ""
}
