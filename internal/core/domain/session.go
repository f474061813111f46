package domain

// Session is the authentication state of one client instance.
// Values are replaced whole, never modified in place.
type Session struct {
	Authenticated bool   `json:"authenticated"`
	User          *User  `json:"user,omitempty"`
	Role          string `json:"role"`
}

// Anonymous returns the empty, unauthenticated session.
func Anonymous() Session {
	return Session{}
}

// Authenticated builds the session for user. The user record is copied so the
// caller cannot reach into stored state.
func Authenticated(user User) Session {
	u := user
	return Session{Authenticated: true, User: &u, Role: u.Role}
}

// Valid reports whether s satisfies authenticated <=> user != nil and role == user.role.
func (s Session) Valid() bool {
	if s.Authenticated != (s.User != nil) {
		return false
	}
	if s.User == nil {
		return s.Role == ""
	}
	return s.Role == s.User.Role
}

// Email returns the authenticated user's email, or "" when anonymous.
func (s Session) Email() string {
	if s.User == nil {
		return ""
	}
	return s.User.Email
}

// Equal compares two sessions by value.
func (s Session) Equal(o Session) bool {
	if s.Authenticated != o.Authenticated || s.Role != o.Role {
		return false
	}
	if s.User == nil || o.User == nil {
		return s.User == nil && o.User == nil
	}
	return *s.User == *o.User
}
