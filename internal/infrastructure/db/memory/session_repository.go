// Package memory keeps sessions in process memory only. Nothing survives a restart.
package memory

import (
	"context"
	"time"

	"github.com/jellydator/ttlcache/v3"

	"github.com/newscurator/curator-web/internal/core/domain"
)

const defaultTTL = 12 * time.Hour

// SessionRepository maps session ids to Session values that expire ttl after
// their last write. Stored values are never mutated, only replaced, so a Get
// never observes a partial write.
type SessionRepository struct {
	cache *ttlcache.Cache[string, domain.Session]
}

// NewSessionRepository starts the expiry loop; a non-positive ttl selects
// defaultTTL. Call Close to stop it.
func NewSessionRepository(ttl time.Duration) *SessionRepository {
	if ttl <= 0 {
		ttl = defaultTTL
	}
	cache := ttlcache.New[string, domain.Session](
		ttlcache.WithTTL[string, domain.Session](ttl),
		ttlcache.WithDisableTouchOnHit[string, domain.Session](),
	)
	go cache.Start()
	return &SessionRepository{cache: cache}
}

func (r *SessionRepository) Get(_ context.Context, id string) (domain.Session, error) {
	item := r.cache.Get(id)
	if item == nil || item.IsExpired() {
		return domain.Anonymous(), nil
	}
	return clone(item.Value()), nil
}

func (r *SessionRepository) Put(_ context.Context, id string, s domain.Session) error {
	r.cache.Set(id, clone(s), ttlcache.DefaultTTL)
	return nil
}

func (r *SessionRepository) Delete(_ context.Context, id string) error {
	r.cache.Delete(id)
	return nil
}

// Len reports how many sessions are held, dropping expired ones first.
func (r *SessionRepository) Len() int {
	r.cache.DeleteExpired()
	return r.cache.Len()
}

// Count reports the authenticated sessions that have not yet expired.
func (r *SessionRepository) Count(_ context.Context) (int, error) {
	n := 0
	for _, item := range r.cache.Items() {
		if !item.IsExpired() && item.Value().Authenticated {
			n++
		}
	}
	return n, nil
}

// Close stops the expiry loop.
func (r *SessionRepository) Close() {
	r.cache.Stop()
}

func clone(s domain.Session) domain.Session {
	if s.User != nil {
		u := *s.User
		s.User = &u
	}
	return s
}
