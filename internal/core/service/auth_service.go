package service

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/newscurator/curator-web/internal/api/metrics"
	"github.com/newscurator/curator-web/internal/core/domain"
	"github.com/newscurator/curator-web/internal/core/ports"
)

// DefaultLoginDomain is appended to the typed username to form the login email.
const DefaultLoginDomain = "news.com"

// AuthService implements the login gateway against the backend.
type AuthService struct {
	backend     ports.Backend
	sessions    ports.SessionStore
	loginDomain string
	pending     *inFlight
	log         zerolog.Logger
}

func NewAuthService(backend ports.Backend, sessions ports.SessionStore, loginDomain string, log zerolog.Logger) *AuthService {
	loginDomain = strings.TrimPrefix(strings.TrimSpace(loginDomain), "@")
	if loginDomain == "" {
		loginDomain = DefaultLoginDomain
	}
	return &AuthService{
		backend:     backend,
		sessions:    sessions,
		loginDomain: loginDomain,
		pending:     newInFlight(),
		log:         log,
	}
}

// LoginIdentifier turns a typed username into the backend login email.
func (s *AuthService) LoginIdentifier(username string) string {
	return username + "@" + s.loginDomain
}

// Login performs one login exchange for the session. The session is only
// touched on success; failures carry the message for the sign-in form.
func (s *AuthService) Login(ctx context.Context, sessionID, username, password string) domain.LoginOutcome {
	if username == "" || password == "" {
		return s.fail(domain.LoginFailure{Reason: domain.ReasonValidation, Message: domain.MsgMissingField})
	}

	if !s.pending.acquire(sessionID) {
		return s.fail(domain.LoginFailure{Reason: domain.ReasonInFlight, Message: domain.MsgLoginInFlight})
	}
	defer s.pending.release(sessionID)

	// Once issued, a login runs to completion even if the browser goes away.
	ctx = context.WithoutCancel(ctx)

	email := s.LoginIdentifier(username)
	reply, err := s.backend.LoginUser(ctx, email, password)
	if err != nil {
		s.log.Warn().Err(err).Str("email", email).Msg("login request failed")
		return s.fail(domain.NetworkFailure())
	}

	if reply == nil || len(reply.Reports) == 0 {
		s.log.Warn().Str("email", email).Msg("login reply without reports")
		return s.fail(domain.AuthFailure(""))
	}

	report := reply.Reports[0]
	if !report.Success {
		return s.fail(domain.AuthFailure(report.Message))
	}
	if report.User == nil {
		s.log.Warn().Str("email", email).Msg("successful login reply without user record")
		return s.fail(domain.AuthFailure(""))
	}

	user := *report.User
	if err := s.sessions.SetAuthenticated(ctx, sessionID, user); err != nil {
		s.log.Error().Err(err).Str("email", email).Msg("failed to store session")
		return s.fail(domain.LoginFailure{Reason: domain.ReasonSession, Message: domain.MsgSessionStore})
	}

	metrics.LoginAttemptsTotal.WithLabelValues("success").Inc()
	return domain.LoginSuccess{User: user}
}

// Logout resets the session to anonymous.
func (s *AuthService) Logout(ctx context.Context, sessionID string) error {
	return s.sessions.Clear(ctx, sessionID)
}

func (s *AuthService) fail(f domain.LoginFailure) domain.LoginOutcome {
	metrics.LoginAttemptsTotal.WithLabelValues(string(f.Reason)).Inc()
	s.log.Debug().Str("reason", string(f.Reason)).Str("message", f.Message).Msg("login failed")
	return f
}
