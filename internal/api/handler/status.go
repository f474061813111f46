package handler

import (
	"errors"
	"net/http"

	"github.com/newscurator/curator-web/internal/core/domain"
)

// StatusCode maps a domain error onto its HTTP status. ok is false for
// errors outside the domain taxonomy.
func StatusCode(err error) (code int, ok bool) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		return http.StatusUnprocessableEntity, true
	case errors.Is(err, domain.ErrAuthFailure), errors.Is(err, domain.ErrNotAuthenticated):
		return http.StatusUnauthorized, true
	case errors.Is(err, domain.ErrLoginInFlight):
		return http.StatusConflict, true
	case errors.Is(err, domain.ErrNetwork), errors.Is(err, domain.ErrDataLoad):
		return http.StatusBadGateway, true
	case errors.Is(err, domain.ErrSessionStore):
		return http.StatusInternalServerError, true
	}
	return http.StatusInternalServerError, false
}
