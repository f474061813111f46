package ports

import (
	"context"

	"github.com/newscurator/curator-web/internal/core/domain"
)

// UserService lists accounts for the user-management page.
type UserService interface {
	ListUsers(ctx context.Context, s domain.Session) ([]domain.Member, error)
}
