package ports

import (
	"context"

	"github.com/newscurator/curator-web/internal/core/domain"
)

// SessionStore is the only mutation path for sessions.
type SessionStore interface {
	Snapshot(ctx context.Context, sessionID string) domain.Session
	SetAuthenticated(ctx context.Context, sessionID string, user domain.User) error
	Clear(ctx context.Context, sessionID string) error
}
