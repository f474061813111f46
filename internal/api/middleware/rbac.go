package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/newscurator/curator-web/internal/core/access"
)

// RequirePage rejects JSON requests whose session may not open page.
// HTML pages do not use it; they render their own fallback.
func RequirePage(page access.PageID) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !access.IsPageAccessible(page, CurrentSession(c)) {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "authentication required"})
			}
			return next(c)
		}
	}
}
