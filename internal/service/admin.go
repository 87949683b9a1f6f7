package service

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"article_studio/internal/domain"
	"article_studio/internal/library"
)

// RequireAdmin rejects a missing session and a non-admin one.
func RequireAdmin(session *domain.Session) error {
	if session == nil {
		return &domain.AuthError{Op: "admin", Status: http.StatusUnauthorized, Message: domain.MsgNotAuthenticated}
	}
	if !session.IsAdmin() {
		return &domain.AuthError{Op: "admin", Status: http.StatusForbidden, Message: domain.MsgForbidden}
	}
	return nil
}

var (
	userFields = []func(domain.AdminUser) string{
		func(u domain.AdminUser) string { return u.Email },
		func(u domain.AdminUser) string { return u.ID },
	}
	adminArticleFields = []func(domain.AdminArticle) string{
		func(a domain.AdminArticle) string { return a.Filename },
		func(a domain.AdminArticle) string { return a.Title },
		func(a domain.AdminArticle) string { return a.UserEmail },
	}
)

// Admin serves the user and article management views.
type Admin struct {
	backend  AdminBackend
	sessions SessionSource
	perPage  int
	logger   *slog.Logger
}

func NewAdmin(backend AdminBackend, sessions SessionSource, perPage int, logger *slog.Logger) *Admin {
	if perPage <= 0 {
		perPage = library.DefaultPerPage
	}
	return &Admin{
		backend:  backend,
		sessions: sessions,
		perPage:  perPage,
		logger:   logger.With("component", "admin"),
	}
}

func (a *Admin) authorize() error {
	return RequireAdmin(a.sessions.Current())
}

// Users lists users matching q by email or id.
func (a *Admin) Users(ctx context.Context, q library.Query) (library.Page[domain.AdminUser], error) {
	if err := a.authorize(); err != nil {
		return library.Page[domain.AdminUser]{}, err
	}

	users, err := a.backend.ListUsers(ctx)
	if err != nil {
		return library.Page[domain.AdminUser]{}, fmt.Errorf("list users: %w", err)
	}
	return library.Select(users, q, a.perPage, userFields...), nil
}

// Articles lists articles matching q by filename, title or owner email.
func (a *Admin) Articles(ctx context.Context, q library.Query) (library.Page[domain.AdminArticle], error) {
	if err := a.authorize(); err != nil {
		return library.Page[domain.AdminArticle]{}, err
	}

	articles, err := a.backend.ListAdminArticles(ctx)
	if err != nil {
		return library.Page[domain.AdminArticle]{}, fmt.Errorf("list articles: %w", err)
	}
	return library.Select(articles, q, a.perPage, adminArticleFields...), nil
}

// DeleteUser removes a user and returns the refreshed page for q.
func (a *Admin) DeleteUser(ctx context.Context, userID string, q library.Query) (library.Page[domain.AdminUser], error) {
	if err := a.authorize(); err != nil {
		return library.Page[domain.AdminUser]{}, err
	}

	if err := a.backend.DeleteUser(ctx, userID); err != nil {
		return library.Page[domain.AdminUser]{}, fmt.Errorf("delete user: %w", err)
	}
	a.logger.Info("user deleted", "user_id", userID)
	return a.Users(ctx, q)
}

// DeleteArticle removes an article and returns the refreshed page for q.
func (a *Admin) DeleteArticle(ctx context.Context, articleID string, q library.Query) (library.Page[domain.AdminArticle], error) {
	if err := a.authorize(); err != nil {
		return library.Page[domain.AdminArticle]{}, err
	}

	if err := a.backend.DeleteAdminArticle(ctx, articleID); err != nil {
		return library.Page[domain.AdminArticle]{}, fmt.Errorf("delete article: %w", err)
	}
	a.logger.Info("article deleted", "article_id", articleID)
	return a.Articles(ctx, q)
}
