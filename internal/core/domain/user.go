package domain

import "unicode"

const (
	RoleSuperuser     = "superuser"
	RoleAdministrator = "administrator"
	RoleReader        = "reader"
)

// User is the account record returned by the backend on a successful login.
type User struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	CreatedAt string `json:"created_at,omitempty"`
}

// Initial returns the upper-cased first letter of the user's name, used as avatar.
func (u User) Initial() string {
	for _, r := range u.Name {
		return string(unicode.ToUpper(r))
	}
	return "?"
}

// MemberSince returns CreatedAt, or "N/A" when the backend did not report one.
func (u User) MemberSince() string {
	if u.CreatedAt == "" {
		return "N/A"
	}
	return u.CreatedAt
}

// Member is a row of the user-management listing.
type Member struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Role     string `json:"role"`
	IsActive bool   `json:"is_active"`
}

// StatusLabel renders the account state the way the management table shows it.
func (m Member) StatusLabel() string {
	if m.IsActive {
		return "Active"
	}
	return "Disabled"
}
