package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/newscurator/curator-web/internal/api/middleware"
	"github.com/newscurator/curator-web/internal/core/domain"
)

// ctxSession returns the session id and snapshot loaded by the Session
// middleware. Outside it the id is empty and the session anonymous, which
// every handler treats as a signed-out visitor.
func ctxSession(c echo.Context) (string, domain.Session) {
	return middleware.SessionID(c), middleware.CurrentSession(c)
}
