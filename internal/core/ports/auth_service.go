package ports

import (
	"context"

	"github.com/newscurator/curator-web/internal/core/domain"
)

// AuthService is the login gateway: one backend exchange per call, normalized
// into a LoginOutcome and applied to the session on success.
type AuthService interface {
	Login(ctx context.Context, sessionID, username, password string) domain.LoginOutcome
	Logout(ctx context.Context, sessionID string) error
}
