package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/newscurator/curator-web/internal/api/middleware"
	"github.com/newscurator/curator-web/internal/core/domain"
	"github.com/newscurator/curator-web/internal/web"
)

type loginCall struct {
	sessionID, username, password string
}

type stubAuthService struct {
	loginFn  func(ctx context.Context, sessionID, username, password string) domain.LoginOutcome
	logoutFn func(ctx context.Context, sessionID string) error
	logins   []loginCall
	logouts  []string
}

func (s *stubAuthService) Login(ctx context.Context, sessionID, username, password string) domain.LoginOutcome {
	s.logins = append(s.logins, loginCall{sessionID, username, password})
	return s.loginFn(ctx, sessionID, username, password)
}

func (s *stubAuthService) Logout(ctx context.Context, sessionID string) error {
	s.logouts = append(s.logouts, sessionID)
	if s.logoutFn == nil {
		return nil
	}
	return s.logoutFn(ctx, sessionID)
}

type stubUserService struct {
	listFn func(ctx context.Context, s domain.Session) ([]domain.Member, error)
	calls  int
}

func (s *stubUserService) ListUsers(ctx context.Context, sess domain.Session) ([]domain.Member, error) {
	s.calls++
	return s.listFn(ctx, sess)
}

func newTestEcho(t *testing.T) *echo.Echo {
	t.Helper()
	r, err := web.NewRenderer(zerolog.Nop())
	if err != nil {
		t.Fatalf("renderer: %v", err)
	}
	e := echo.New()
	e.Renderer = r
	e.Validator = NewValidator()
	return e
}

func newContext(e *echo.Echo, req *http.Request, s domain.Session) (echo.Context, *httptest.ResponseRecorder) {
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(middleware.ContextKeySessionID, testSID)
	c.Set(middleware.ContextKeySession, s)
	return c, rec
}

const testSID = "9d0c8d0e-6f1a-4a57-8d0e-3b1f7c2b9a11"

var (
	alice = domain.User{Name: "alice", Email: "alice@news.com", Role: domain.RoleReader}
	root  = domain.User{Name: "root", Email: "root@news.com", Role: domain.RoleSuperuser}
)
