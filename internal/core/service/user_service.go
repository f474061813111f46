package service

import (
	"context"

	"github.com/rs/zerolog"
	"golang.org/x/sync/singleflight"

	"github.com/newscurator/curator-web/internal/api/metrics"
	"github.com/newscurator/curator-web/internal/core/domain"
	"github.com/newscurator/curator-web/internal/core/ports"
)

// UserService fetches the account listing for the user-management page.
type UserService struct {
	backend ports.Backend
	group   singleflight.Group
	log     zerolog.Logger
}

func NewUserService(backend ports.Backend, log zerolog.Logger) *UserService {
	return &UserService{backend: backend, log: log}
}

// ListUsers returns the accounts visible to the session's user. No request is
// issued unless the session is authenticated. Concurrent calls for the same
// admin share the request in flight; results are not cached.
func (s *UserService) ListUsers(ctx context.Context, sess domain.Session) ([]domain.Member, error) {
	if !sess.Authenticated || sess.Email() == "" {
		metrics.UserListFetchTotal.WithLabelValues("denied").Inc()
		return nil, domain.ErrNotAuthenticated
	}
	adminEmail := sess.Email()

	v, err, _ := s.group.Do(adminEmail, func() (any, error) {
		return s.backend.GetAllUsers(context.WithoutCancel(ctx), adminEmail)
	})
	if err != nil {
		s.log.Warn().Err(err).Str("admin", adminEmail).Msg("user listing request failed")
		metrics.UserListFetchTotal.WithLabelValues("network").Inc()
		return nil, &domain.MessageError{Kind: domain.ErrNetwork, Message: domain.MsgUsersNetwork}
	}

	reply, _ := v.(*ports.UserListReply)
	if reply == nil || !reply.Success {
		msg := domain.MsgUsersLoadFailed
		if reply != nil && reply.Message != "" {
			msg = reply.Message
		}
		metrics.UserListFetchTotal.WithLabelValues("data_load").Inc()
		return nil, &domain.MessageError{Kind: domain.ErrDataLoad, Message: msg}
	}

	metrics.UserListFetchTotal.WithLabelValues("success").Inc()
	if reply.Users == nil {
		return []domain.Member{}, nil
	}
	members := make([]domain.Member, len(reply.Users))
	copy(members, reply.Users)
	return members, nil
}
