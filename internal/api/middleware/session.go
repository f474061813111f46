package middleware

import (
	"errors"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/newscurator/curator-web/internal/core/domain"
	"github.com/newscurator/curator-web/internal/core/ports"
)

// Context keys set by Session.
const (
	ContextKeySessionID = "sid"
	ContextKeySession   = "session"
)

// SessionConfig configures the cookie-backed session middleware.
type SessionConfig struct {
	Secret     []byte
	CookieName string
	TTL        time.Duration
	// Secure marks the cookie HTTPS-only.
	Secure bool
	Store  ports.SessionStore
	Log    zerolog.Logger
}

type sessionClaims struct {
	SID string `json:"sid"`
	jwt.RegisteredClaims
}

// Session resolves the browser's session id from a signed cookie, issuing a
// fresh one when the cookie is missing, tampered with or expired, and loads
// the session snapshot into the echo context.
func Session(cfg SessionConfig) echo.MiddlewareFunc {
	if cfg.CookieName == "" {
		cfg.CookieName = "curator_session"
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			sid, err := readSessionID(c, cfg)
			if err != nil {
				sid = uuid.NewString()
				if err := issueCookie(c, cfg, sid); err != nil {
					return err
				}
				cfg.Log.Debug().Err(err).Str("request_id", c.Response().Header().Get(echo.HeaderXRequestID)).Msg("session cookie issued")
			}

			c.Set(ContextKeySessionID, sid)
			c.Set(ContextKeySession, cfg.Store.Snapshot(c.Request().Context(), sid))
			return next(c)
		}
	}
}

var errNoCookie = errors.New("no session cookie")

func readSessionID(c echo.Context, cfg SessionConfig) (string, error) {
	ck, err := c.Cookie(cfg.CookieName)
	if err != nil || ck.Value == "" {
		return "", errNoCookie
	}

	claims := &sessionClaims{}
	tkn, err := jwt.ParseWithClaims(ck.Value, claims, func(token *jwt.Token) (interface{}, error) {
		if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return cfg.Secret, nil
	})
	if err != nil {
		return "", err
	}
	if !tkn.Valid {
		return "", jwt.ErrTokenInvalidClaims
	}
	if _, err := uuid.Parse(claims.SID); err != nil {
		return "", err
	}
	return claims.SID, nil
}

func issueCookie(c echo.Context, cfg SessionConfig, sid string) error {
	now := time.Now()
	claims := sessionClaims{
		SID:              sid,
		RegisteredClaims: jwt.RegisteredClaims{IssuedAt: jwt.NewNumericDate(now)},
	}
	if cfg.TTL > 0 {
		claims.ExpiresAt = jwt.NewNumericDate(now.Add(cfg.TTL))
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(cfg.Secret)
	if err != nil {
		return err
	}

	// No MaxAge: the cookie dies with the browser session, exp bounds it server-side.
	ck := &http.Cookie{
		Name:     cfg.CookieName,
		Value:    signed,
		Path:     "/",
		HttpOnly: true,
		Secure:   cfg.Secure,
		SameSite: http.SameSiteLaxMode,
	}
	c.SetCookie(ck)
	return nil
}

// SessionID returns the id resolved by Session, or "" outside it.
func SessionID(c echo.Context) string {
	sid, _ := c.Get(ContextKeySessionID).(string)
	return sid
}

// CurrentSession returns the snapshot loaded by Session, anonymous outside it.
func CurrentSession(c echo.Context) domain.Session {
	s, ok := c.Get(ContextKeySession).(domain.Session)
	if !ok {
		return domain.Anonymous()
	}
	return s
}
