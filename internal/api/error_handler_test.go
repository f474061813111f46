package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/newscurator/curator-web/internal/core/domain"
	"github.com/newscurator/curator-web/internal/web"
)

func TestHTTPErrorHandler_JSON(t *testing.T) {
	tests := []struct {
		err  error
		code int
		msg  string
	}{
		{domain.ErrNotAuthenticated, http.StatusUnauthorized, domain.ErrNotAuthenticated.Error()},
		{&domain.MessageError{Kind: domain.ErrNetwork, Message: domain.MsgUsersNetwork}, http.StatusBadGateway, domain.MsgUsersNetwork},
		{&domain.MessageError{Kind: domain.ErrDataLoad, Message: domain.MsgUsersLoadFailed}, http.StatusBadGateway, domain.MsgUsersLoadFailed},
		{echo.NewHTTPError(http.StatusNotFound, "Not Found"), http.StatusNotFound, "Not Found"},
		{errors.New("db exploded"), http.StatusInternalServerError, "internal server error"},
	}

	for _, tt := range tests {
		e := echo.New()
		rec := httptest.NewRecorder()
		c := e.NewContext(httptest.NewRequest(http.MethodGet, "/api/v1/users", nil), rec)

		NewHTTPErrorHandler(zerolog.Nop())(tt.err, c)

		if rec.Code != tt.code {
			t.Fatalf("%v: expected %d, got %d", tt.err, tt.code, rec.Code)
		}
		var resp errorResponse
		if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid json: %v", err)
		}
		if resp.Error != tt.msg {
			t.Fatalf("expected %q, got %q", tt.msg, resp.Error)
		}
	}
}

func TestHTTPErrorHandler_HTMLPage(t *testing.T) {
	r, err := web.NewRenderer(zerolog.Nop())
	if err != nil {
		t.Fatalf("renderer: %v", err)
	}
	e := echo.New()
	e.Renderer = r
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/nowhere", nil), rec)

	NewHTTPErrorHandler(zerolog.Nop())(echo.ErrNotFound, c)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Back to Home") {
		t.Fatalf("expected error page, got %s", rec.Body.String())
	}
}
