// Package access derives what a session may see: header links and protected pages.
// Every view and the JSON API consult this table instead of checking roles themselves.
package access

import "github.com/newscurator/curator-web/internal/core/domain"

// LinkID identifies a header navigation link.
type LinkID string

const (
	LinkHome       LinkID = "home"
	LinkSources    LinkID = "sources"
	LinkArticles   LinkID = "articles"
	LinkBiasChart  LinkID = "bias-chart"
	LinkAIAnalyzer LinkID = "ai-analyzer"
	LinkUsers      LinkID = "users"
	LinkProfile    LinkID = "profile"
	LinkSignIn     LinkID = "sign-in"
)

// PageID identifies a routed page.
type PageID string

const (
	PageHome       PageID = "home"
	PageSources    PageID = "sources"
	PageArticles   PageID = "articles"
	PageBiasChart  PageID = "bias-chart"
	PageAIAnalyzer PageID = "ai-analyzer"
	PageUsers      PageID = "users"
	PageProfile    PageID = "profile"
	PageLogin      PageID = "login"
)

type condition func(domain.Session) bool

func always(domain.Session) bool { return true }

func authenticated(s domain.Session) bool { return s.Authenticated }

func anonymous(s domain.Session) bool { return !s.Authenticated }

func superuser(s domain.Session) bool {
	return s.Authenticated && s.Role == domain.RoleSuperuser
}

type link struct {
	id      LinkID
	label   string
	path    string
	visible condition
}

// links is the header in display order.
var links = []link{
	{LinkHome, "Home", "/", always},
	{LinkSources, "Sources", "/sources", always},
	{LinkArticles, "Articles", "/articles", always},
	{LinkBiasChart, "Bias Chart", "/bias-chart", always},
	{LinkAIAnalyzer, "AI Analyzer", "/ai-analyzer", always},
	{LinkUsers, "Users", "/users", superuser},
	{LinkProfile, "Profile", "/profile", authenticated},
	{LinkSignIn, "Sign In", "/login", anonymous},
}

var protectedPages = map[PageID]condition{
	PageUsers:   authenticated,
	PageProfile: authenticated,
}

// IsLinkVisible reports whether the header shows linkID for session s.
// Unknown links are never shown.
func IsLinkVisible(linkID LinkID, s domain.Session) bool {
	for _, l := range links {
		if l.id == linkID {
			return l.visible(s)
		}
	}
	return false
}

// IsPageAccessible reports whether pageID may render its protected content for s.
// Pages without a guard are public.
func IsPageAccessible(pageID PageID, s domain.Session) bool {
	guard, ok := protectedPages[pageID]
	if !ok {
		return true
	}
	return guard(s)
}

// ActiveLinkHighlight reports whether linkPath is the current route.
// Matching is exact: a sub-path never highlights its parent.
func ActiveLinkHighlight(currentPath, linkPath string) bool {
	return currentPath == linkPath
}

// NavLink is one rendered header entry.
type NavLink struct {
	ID     LinkID `json:"id"`
	Label  string `json:"label"`
	Path   string `json:"path"`
	Active bool   `json:"active"`
}

// Navigation returns the visible header links for s, in display order.
func Navigation(s domain.Session, currentPath string) []NavLink {
	out := make([]NavLink, 0, len(links))
	for _, l := range links {
		if !l.visible(s) {
			continue
		}
		out = append(out, NavLink{
			ID:     l.id,
			Label:  l.label,
			Path:   l.path,
			Active: ActiveLinkHighlight(currentPath, l.path),
		})
	}
	return out
}
