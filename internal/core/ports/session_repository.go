package ports

import (
	"context"

	"github.com/newscurator/curator-web/internal/core/domain"
)

// SessionRepository holds Session values keyed by client session id.
// Get returns domain.Anonymous() when nothing is stored for id.
// Count reports the authenticated sessions still held, after expiry.
type SessionRepository interface {
	Get(ctx context.Context, id string) (domain.Session, error)
	Put(ctx context.Context, id string, s domain.Session) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int, error)
}
