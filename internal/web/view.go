package web

import (
	"github.com/newscurator/curator-web/internal/core/access"
	"github.com/newscurator/curator-web/internal/core/domain"
)

// Template names.
const (
	PageHome          = "home"
	PagePlaceholder   = "placeholder"
	PageUsers         = "users"
	PageProfile       = "profile"
	PageLogin         = "login"
	PageLoginRequired = "login_required"
	PageError         = "error"
)

// View is the data every page receives. Content holds the page-specific part.
type View struct {
	Title   string
	Nav     []access.NavLink
	Session domain.Session
	Content any
}

// NewView builds the header navigation for session at currentPath.
func NewView(title string, s domain.Session, currentPath string, content any) View {
	return View{
		Title:   title,
		Nav:     access.Navigation(s, currentPath),
		Session: s,
		Content: content,
	}
}

// Placeholder is the content of pages that are not built yet.
type Placeholder struct {
	Heading string
	Lead    string
	Notice  string
}

type UsersContent struct {
	Users []domain.Member
	Error string
}

type LoginContent struct {
	Username string
	Error    string
}

type ErrorContent struct {
	Code    int
	Message string
}
