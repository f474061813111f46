package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/newscurator/curator-web/internal/core/access"
	"github.com/newscurator/curator-web/internal/core/domain"
	"github.com/newscurator/curator-web/internal/core/ports"
	"github.com/newscurator/curator-web/internal/web"
)

const (
	msgProfileLogin = "Please log in to view your profile"
	msgUsersLogin   = "Please log in to manage users"
)

// PageHandler serves the server-rendered pages.
type PageHandler struct {
	auth  ports.AuthService
	users ports.UserService
	log   zerolog.Logger
}

func NewPageHandler(auth ports.AuthService, users ports.UserService, log zerolog.Logger) *PageHandler {
	return &PageHandler{auth: auth, users: users, log: log}
}

func (h *PageHandler) Home(c echo.Context) error {
	_, s := ctxSession(c)
	return c.Render(http.StatusOK, web.PageHome, web.NewView("", s, c.Request().URL.Path, nil))
}

// Placeholder serves a page that only announces upcoming content.
func (h *PageHandler) Placeholder(title string, p web.Placeholder) echo.HandlerFunc {
	return func(c echo.Context) error {
		_, s := ctxSession(c)
		return c.Render(http.StatusOK, web.PagePlaceholder, web.NewView(title, s, c.Request().URL.Path, p))
	}
}

// Users lists accounts. Anonymous visitors get the sign-in prompt and no
// listing request is made.
func (h *PageHandler) Users(c echo.Context) error {
	_, s := ctxSession(c)
	path := c.Request().URL.Path
	if !access.IsPageAccessible(access.PageUsers, s) {
		return c.Render(http.StatusOK, web.PageLoginRequired, web.NewView("Users", s, path, msgUsersLogin))
	}

	var content web.UsersContent
	users, err := h.users.ListUsers(c.Request().Context(), s)
	if err != nil {
		content.Error = domain.UserMessage(err)
	} else {
		content.Users = users
	}
	return c.Render(http.StatusOK, web.PageUsers, web.NewView("Users", s, path, content))
}

func (h *PageHandler) Profile(c echo.Context) error {
	_, s := ctxSession(c)
	path := c.Request().URL.Path
	if !access.IsPageAccessible(access.PageProfile, s) {
		return c.Render(http.StatusOK, web.PageLoginRequired, web.NewView("Profile", s, path, msgProfileLogin))
	}
	return c.Render(http.StatusOK, web.PageProfile, web.NewView("Profile", s, path, nil))
}

// LoginForm renders the sign-in form. Its header is always the anonymous one.
func (h *PageHandler) LoginForm(c echo.Context) error {
	return h.renderLogin(c, http.StatusOK, web.LoginContent{})
}

type loginForm struct {
	Username string `form:"username"`
	Password string `form:"password"`
}

// Login submits the sign-in form. Success redirects home; a failure re-renders
// the form with the message and the username kept.
func (h *PageHandler) Login(c echo.Context) error {
	var f loginForm
	if err := c.Bind(&f); err != nil {
		return h.renderLogin(c, http.StatusBadRequest, web.LoginContent{Error: domain.MsgMissingField})
	}

	sid, _ := ctxSession(c)
	switch out := h.auth.Login(c.Request().Context(), sid, f.Username, f.Password).(type) {
	case domain.LoginSuccess:
		return c.Redirect(http.StatusSeeOther, "/")
	case domain.LoginFailure:
		code, _ := StatusCode(out)
		return h.renderLogin(c, code, web.LoginContent{Username: f.Username, Error: out.Message})
	default:
		h.log.Error().Msgf("unexpected login outcome %T", out)
		return h.renderLogin(c, http.StatusInternalServerError, web.LoginContent{Username: f.Username, Error: domain.MsgLoginFailed})
	}
}

// Logout clears the session and always lands on the home page.
func (h *PageHandler) Logout(c echo.Context) error {
	sid, _ := ctxSession(c)
	if err := h.auth.Logout(c.Request().Context(), sid); err != nil {
		h.log.Warn().Err(err).Msg("logout failed")
	}
	return c.Redirect(http.StatusSeeOther, "/")
}

func (h *PageHandler) renderLogin(c echo.Context, code int, content web.LoginContent) error {
	return c.Render(code, web.PageLogin, web.NewView("Sign In", domain.Anonymous(), c.Request().URL.Path, content))
}

// Placeholders are the pages routed before their content exists.
var Placeholders = []struct {
	Path  string
	Title string
	Page  web.Placeholder
}{
	{"/sources", "Sources", web.Placeholder{Heading: "News Sources", Lead: "Browse and manage your news sources here.", Notice: "Source management coming soon..."}},
	{"/articles", "Articles", web.Placeholder{Heading: "Articles", Lead: "View and analyze news articles.", Notice: "Article list coming soon..."}},
	{"/bias-chart", "Bias Chart", web.Placeholder{Heading: "Bias Chart", Lead: "Visualize media bias across different sources.", Notice: "Bias visualization coming soon..."}},
	{"/ai-analyzer", "AI Analyzer", web.Placeholder{Heading: "AI Analyzer", Lead: "Use AI to analyze article bias and credibility.", Notice: "AI analyzer coming soon..."}},
}
