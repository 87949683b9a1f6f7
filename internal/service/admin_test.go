package service

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"article_studio/internal/domain"
	"article_studio/internal/library"
	"article_studio/internal/service/mocks"
)

type AdminTestSuite struct {
	suite.Suite
	ctrl *gomock.Controller

	backend  *mocks.MockAdminBackend
	sessions *mocks.MockSessionSource
	admin    *Admin
	ctx      context.Context
}

func (s *AdminTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.backend = mocks.NewMockAdminBackend(s.ctrl)
	s.sessions = mocks.NewMockSessionSource(s.ctrl)
	s.admin = NewAdmin(s.backend, s.sessions, 0, slog.New(slog.NewTextHandler(io.Discard, nil)))
	s.ctx = context.Background()
}

func (s *AdminTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestAdminTestSuite(t *testing.T) {
	suite.Run(t, new(AdminTestSuite))
}

func (s *AdminTestSuite) asAdmin() {
	s.sessions.EXPECT().Current().Return(&domain.Session{
		AccessToken: "tok",
		User:        domain.User{ID: "admin-1", Role: domain.RoleAdmin},
	}).AnyTimes()
}

func users(n int) []domain.AdminUser {
	out := make([]domain.AdminUser, n)
	for i := range out {
		out[i] = domain.AdminUser{ID: string(rune('a'+i)) + "-id", Email: string(rune('a'+i)) + "@example.com"}
	}
	return out
}

func (s *AdminTestSuite) TestRequireAdmin() {
	var authErr *domain.AuthError

	s.Require().ErrorAs(RequireAdmin(nil), &authErr)
	s.Equal(domain.MsgNotAuthenticated, authErr.Message)
	s.Equal(http.StatusUnauthorized, authErr.Status)

	s.Require().ErrorAs(RequireAdmin(&domain.Session{User: domain.User{Role: "user"}}), &authErr)
	s.Equal(domain.MsgForbidden, authErr.Message)
	s.Equal(http.StatusForbidden, authErr.Status)

	s.NoError(RequireAdmin(&domain.Session{User: domain.User{Role: domain.RoleAdmin}}))
}

func (s *AdminTestSuite) TestUsers_NonAdminMakesNoCall() {
	s.sessions.EXPECT().Current().Return(&domain.Session{User: domain.User{Role: "user"}})

	_, err := s.admin.Users(s.ctx, library.Query{})

	var authErr *domain.AuthError
	s.Require().ErrorAs(err, &authErr)
	s.Equal(domain.MsgForbidden, authErr.Message)
}

func (s *AdminTestSuite) TestUsers_FilterAndPaginate() {
	s.asAdmin()
	s.backend.EXPECT().ListUsers(s.ctx).Return(users(25), nil).Times(2)

	page, err := s.admin.Users(s.ctx, library.Query{Page: 3})
	s.Require().NoError(err)
	s.Equal(3, page.TotalPages)
	s.Len(page.Items, 5)

	page, err = s.admin.Users(s.ctx, library.Query{Search: "C@EXAMPLE"})
	s.Require().NoError(err)
	s.Equal(1, page.Total)
	s.Equal("c-id", page.Items[0].ID)
}

func (s *AdminTestSuite) TestUsers_Unavailable() {
	s.asAdmin()
	s.backend.EXPECT().ListUsers(s.ctx).Return(nil, &domain.TransportError{Op: "list_users", Status: 503, Message: domain.MsgUnavailable})

	_, err := s.admin.Users(s.ctx, library.Query{})

	s.Equal(http.StatusServiceUnavailable, domain.StatusOf(err))
	s.Contains(err.Error(), domain.MsgUnavailable)
}

func (s *AdminTestSuite) TestArticles_FilterByOwner() {
	s.asAdmin()
	s.backend.EXPECT().ListAdminArticles(s.ctx).Return([]domain.AdminArticle{
		{ID: "1", Filename: "article_volcanoes.md", Title: "Volcanoes", UserEmail: "ada@example.com"},
		{ID: "2", Filename: "article_reefs.md", Title: "Reefs", UserEmail: "bob@example.com"},
	}, nil)

	page, err := s.admin.Articles(s.ctx, library.Query{Search: "bob@"})

	s.Require().NoError(err)
	s.Require().Len(page.Items, 1)
	s.Equal("2", page.Items[0].ID)
}

func (s *AdminTestSuite) TestDeleteUser_Relists() {
	s.asAdmin()
	gomock.InOrder(
		s.backend.EXPECT().DeleteUser(s.ctx, "b-id").Return(nil),
		s.backend.EXPECT().ListUsers(s.ctx).Return(users(1), nil),
	)

	page, err := s.admin.DeleteUser(s.ctx, "b-id", library.Query{})

	s.Require().NoError(err)
	s.Equal(1, page.Total)
}

func (s *AdminTestSuite) TestDeleteArticle_Failure() {
	s.asAdmin()
	s.backend.EXPECT().DeleteAdminArticle(s.ctx, "7").Return(&domain.AuthError{Op: "delete_admin_article", Status: 403, Message: domain.MsgForbidden})

	_, err := s.admin.DeleteArticle(s.ctx, "7", library.Query{})

	s.Equal(http.StatusForbidden, domain.StatusOf(err))
}

func (s *AdminTestSuite) TestDeleteArticle_Relists() {
	s.asAdmin()
	gomock.InOrder(
		s.backend.EXPECT().DeleteAdminArticle(s.ctx, "7").Return(nil),
		s.backend.EXPECT().ListAdminArticles(s.ctx).Return(nil, nil),
	)

	page, err := s.admin.DeleteArticle(s.ctx, "7", library.Query{})

	s.Require().NoError(err)
	s.Equal(0, page.Total)
	s.Equal(1, page.TotalPages)
}
