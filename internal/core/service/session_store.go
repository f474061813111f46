package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/newscurator/curator-web/internal/api/metrics"
	"github.com/newscurator/curator-web/internal/core/domain"
	"github.com/newscurator/curator-web/internal/core/ports"
)

// SessionStore is the single writer of session state. Every mutation replaces
// the stored Session value whole, so readers only ever observe complete snapshots.
type SessionStore struct {
	repo ports.SessionRepository
	log  zerolog.Logger
}

// NewSessionStore returns a SessionStore persisting through repo.
func NewSessionStore(repo ports.SessionRepository, log zerolog.Logger) *SessionStore {
	return &SessionStore{repo: repo, log: log}
}

// Snapshot returns the current session for id. Repository failures degrade to
// an anonymous session so a broken store never takes the page down.
func (s *SessionStore) Snapshot(ctx context.Context, id string) domain.Session {
	if id == "" {
		return domain.Anonymous()
	}
	sess, err := s.repo.Get(ctx, id)
	if err != nil {
		s.log.Warn().Err(err).Str("session", shortID(id)).Msg("session lookup failed, treating as anonymous")
		return domain.Anonymous()
	}
	if !sess.Valid() {
		s.log.Warn().Str("session", shortID(id)).Msg("inconsistent session discarded")
		return domain.Anonymous()
	}
	return sess
}

// SetAuthenticated replaces the session with the authenticated state for user.
// Calling it again with the same user leaves the observable session unchanged;
// a different user overwrites the previous one.
func (s *SessionStore) SetAuthenticated(ctx context.Context, id string, user domain.User) error {
	if err := s.repo.Put(ctx, id, domain.Authenticated(user)); err != nil {
		return fmt.Errorf("set authenticated: %w", err)
	}
	s.log.Info().
		Str("session", shortID(id)).
		Str("email", user.Email).
		Str("role", user.Role).
		Msg("session authenticated")
	return nil
}

// Clear resets the session to anonymous. Clearing an anonymous session is a no-op
// on state; callers still run their navigation side effect.
func (s *SessionStore) Clear(ctx context.Context, id string) error {
	prev := s.Snapshot(ctx, id)
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	metrics.LogoutsTotal.Inc()
	if prev.Authenticated {
		s.log.Info().Str("session", shortID(id)).Str("email", prev.Email()).Msg("session cleared")
	}
	return nil
}

// AuthenticatedCount reports how many authenticated sessions the repository
// still holds. Sessions that expire in the store drop out without a Clear.
func (s *SessionStore) AuthenticatedCount(ctx context.Context) (int, error) {
	n, err := s.repo.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count sessions: %w", err)
	}
	return n, nil
}

// shortID keeps session ids out of logs in full.
func shortID(id string) string {
	if len(id) <= 8 {
		return id
	}
	return id[:8]
}
