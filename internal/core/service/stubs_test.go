package service

import (
	"context"
	"sync"

	"github.com/newscurator/curator-web/internal/core/domain"
	"github.com/newscurator/curator-web/internal/core/ports"
)

// ---------------------------------------------------------------------------
// Stubs shared by the service tests
// ---------------------------------------------------------------------------

type loginCall struct {
	email    string
	password string
}

type stubBackend struct {
	mu        sync.Mutex
	loginFn   func(ctx context.Context, email, password string) (*ports.LoginReply, error)
	usersFn   func(ctx context.Context, adminEmail string) (*ports.UserListReply, error)
	logins    []loginCall
	userCalls []string
}

func (b *stubBackend) LoginUser(ctx context.Context, email, password string) (*ports.LoginReply, error) {
	b.mu.Lock()
	b.logins = append(b.logins, loginCall{email: email, password: password})
	b.mu.Unlock()
	return b.loginFn(ctx, email, password)
}

func (b *stubBackend) GetAllUsers(ctx context.Context, adminEmail string) (*ports.UserListReply, error) {
	b.mu.Lock()
	b.userCalls = append(b.userCalls, adminEmail)
	b.mu.Unlock()
	return b.usersFn(ctx, adminEmail)
}

func (b *stubBackend) loginCount() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.logins)
}

type stubSessionRepo struct {
	mu       sync.Mutex
	sessions map[string]domain.Session
	putErr   error
	getErr   error
}

func newStubSessionRepo() *stubSessionRepo {
	return &stubSessionRepo{sessions: make(map[string]domain.Session)}
}

func (r *stubSessionRepo) Get(_ context.Context, id string) (domain.Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.getErr != nil {
		return domain.Session{}, r.getErr
	}
	s, ok := r.sessions[id]
	if !ok {
		return domain.Anonymous(), nil
	}
	return s, nil
}

func (r *stubSessionRepo) Put(_ context.Context, id string, s domain.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.putErr != nil {
		return r.putErr
	}
	r.sessions[id] = s
	return nil
}

func (r *stubSessionRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, id)
	return nil
}

func (r *stubSessionRepo) Count(_ context.Context) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, s := range r.sessions {
		if s.Authenticated {
			n++
		}
	}
	return n, nil
}

func successReply(user domain.User) *ports.LoginReply {
	u := user
	return &ports.LoginReply{Reports: []ports.LoginReport{{Success: true, User: &u}}}
}
