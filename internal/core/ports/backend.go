package ports

import (
	"context"

	"github.com/newscurator/curator-web/internal/core/domain"
)

// LoginReport is one element of the backend's login "reports" list.
type LoginReport struct {
	Success bool         `json:"success"`
	Message string       `json:"message,omitempty"`
	User    *domain.User `json:"user,omitempty"`
}

// LoginReply is the decoded body of the backend login endpoint.
type LoginReply struct {
	Reports []LoginReport `json:"reports"`
}

// UserListReply is the decoded body of the backend user-listing endpoint.
type UserListReply struct {
	Success bool            `json:"success"`
	Users   []domain.Member `json:"users,omitempty"`
	Message string          `json:"message,omitempty"`
}

// Backend is the opaque news-analysis backend. An error means no usable
// response was obtained (transport failure or undecodable body).
type Backend interface {
	LoginUser(ctx context.Context, email, password string) (*LoginReply, error)
	GetAllUsers(ctx context.Context, adminEmail string) (*UserListReply, error)
}
