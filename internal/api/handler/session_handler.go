package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/newscurator/curator-web/internal/core/access"
	"github.com/newscurator/curator-web/internal/core/domain"
	"github.com/newscurator/curator-web/internal/core/ports"
)

type SessionHandler struct {
	authService ports.AuthService
}

func NewSessionHandler(authService ports.AuthService) *SessionHandler {
	return &SessionHandler{authService: authService}
}

type loginRequest struct {
	Username string `json:"username" validate:"required,max=128"`
	Password string `json:"password" validate:"required"`
}

type loginResponse struct {
	Success bool         `json:"success"`
	User    *domain.User `json:"user,omitempty"`
	Error   string       `json:"error,omitempty"`
}

type sessionResponse struct {
	Authenticated bool             `json:"authenticated"`
	Role          string           `json:"role"`
	User          *domain.User     `json:"user,omitempty"`
	Links         []access.NavLink `json:"links"`
}

type logoutResponse struct {
	Redirect string `json:"redirect"`
}

// Get returns the caller's session and the header links it may see.
//
// @Summary      Current session
// @Tags         session
// @Produce      json
// @Param        path  query     string  false  "Path used to mark the active link"
// @Success      200   {object}  sessionResponse
// @Router       /api/v1/session [get]
func (h *SessionHandler) Get(c echo.Context) error {
	_, s := ctxSession(c)
	path := c.QueryParam("path")
	if path == "" {
		path = "/"
	}
	return c.JSON(http.StatusOK, sessionResponse{
		Authenticated: s.Authenticated,
		Role:          s.Role,
		User:          s.User,
		Links:         access.Navigation(s, path),
	})
}

// Login signs the session in through the backend.
//
// @Summary      Login
// @Tags         session
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  loginResponse
// @Failure      401   {object}  loginResponse
// @Failure      409   {object}  loginResponse
// @Failure      422   {object}  loginResponse
// @Failure      502   {object}  loginResponse
// @Router       /api/v1/login [post]
func (h *SessionHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, loginResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		code, _ := StatusCode(err)
		return c.JSON(code, loginResponse{Error: domain.UserMessage(err)})
	}

	sid, _ := ctxSession(c)
	switch out := h.authService.Login(c.Request().Context(), sid, req.Username, req.Password).(type) {
	case domain.LoginSuccess:
		user := out.User
		return c.JSON(http.StatusOK, loginResponse{Success: true, User: &user})
	case domain.LoginFailure:
		code, _ := StatusCode(out)
		return c.JSON(code, loginResponse{Error: out.Message})
	default:
		return echo.NewHTTPError(http.StatusInternalServerError, domain.MsgLoginFailed)
	}
}

// Logout clears the session. Clearing an anonymous session is not an error.
//
// @Summary      Logout
// @Tags         session
// @Produce      json
// @Success      200  {object}  logoutResponse
// @Failure      500  {object}  map[string]string
// @Router       /api/v1/logout [post]
func (h *SessionHandler) Logout(c echo.Context) error {
	sid, _ := ctxSession(c)
	if err := h.authService.Logout(c.Request().Context(), sid); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, logoutResponse{Redirect: "/"})
}
