package api

import (
	"fmt"
	"net/url"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/newscurator/curator-web/docs"
	"github.com/newscurator/curator-web/internal/api/handler"
	"github.com/newscurator/curator-web/internal/api/middleware"
	"github.com/newscurator/curator-web/internal/core/access"
	"github.com/newscurator/curator-web/internal/core/ports"
)

// Deps is everything the router wires into handlers.
type Deps struct {
	Log      zerolog.Logger
	Renderer echo.Renderer
	Session  middleware.SessionConfig
	Auth     ports.AuthService
	Users    ports.UserService
	Checks   map[string]handler.Check
	// BackendProxy, when set, forwards /walker/* to this URL.
	BackendProxy string
	// Registry receives the HTTP metrics. Defaults to the prometheus default registry.
	Registry *prometheus.Registry
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(d Deps) (*echo.Echo, error) {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Renderer = d.Renderer
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(d.Log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(requestLogger(d.Log))
	var (
		registerer prometheus.Registerer = prometheus.DefaultRegisterer
		gatherer   prometheus.Gatherer   = prometheus.DefaultGatherer
	)
	if d.Registry != nil {
		registerer, gatherer = d.Registry, d.Registry
	}
	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Namespace:  "curator_web",
		Subsystem:  "http",
		Registerer: registerer,
		Skipper: func(c echo.Context) bool {
			return c.Path() == "/metrics"
		},
	}))

	// --- Ops endpoints (no session) ---
	e.GET("/metrics", echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{Gatherer: gatherer}))
	e.GET("/swagger/*", echoSwagger.WrapHandler)
	e.GET("/health", handler.NewHealthHandler().Liveness)                   // liveness  – is the process alive?
	e.GET("/health/ready", handler.NewReadinessHandler(d.Checks).Readiness) // readiness – are dependencies up?

	if d.BackendProxy != "" {
		if err := registerBackendProxy(e, d.BackendProxy); err != nil {
			return nil, err
		}
	}

	sessions := middleware.Session(d.Session)

	// --- Pages ---
	pages := handler.NewPageHandler(d.Auth, d.Users, d.Log.With().Str("component", "pages").Logger())
	site := e.Group("", sessions)
	site.GET("/", pages.Home)
	for _, p := range handler.Placeholders {
		site.GET(p.Path, pages.Placeholder(p.Title, p.Page))
	}
	site.GET("/users", pages.Users)
	site.GET("/profile", pages.Profile)
	site.GET("/login", pages.LoginForm)
	site.POST("/login", pages.Login)
	site.POST("/logout", pages.Logout)

	// --- JSON API ---
	sessionHandler := handler.NewSessionHandler(d.Auth)
	userHandler := handler.NewUserHandler(d.Users)
	v1 := e.Group("/api/v1", sessions)
	v1.GET("/session", sessionHandler.Get)
	v1.POST("/login", sessionHandler.Login)
	v1.POST("/logout", sessionHandler.Logout)
	v1.GET("/users", userHandler.List, middleware.RequirePage(access.PageUsers))

	return e, nil
}

// registerBackendProxy forwards the backend's walker endpoints so a browser
// talking to this server can reach them on the same origin.
func registerBackendProxy(e *echo.Echo, backendURL string) error {
	target, err := url.Parse(backendURL)
	if err != nil || target.Host == "" {
		return fmt.Errorf("invalid backend proxy url %q", backendURL)
	}

	balancer := echomiddleware.NewRoundRobinBalancer([]*echomiddleware.ProxyTarget{{Name: "backend", URL: target}})
	proxy := echomiddleware.ProxyWithConfig(echomiddleware.ProxyConfig{Balancer: balancer})
	rewriteHost := func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Request().Host = target.Host
			return next(c)
		}
	}

	e.Any("/walker/*", echo.NotFoundHandler, rewriteHost, proxy)
	return nil
}

func requestLogger(log zerolog.Logger) echo.MiddlewareFunc {
	return echomiddleware.RequestLoggerWithConfig(echomiddleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(_ echo.Context, v echomiddleware.RequestLoggerValues) error {
			ev := log.Info()
			if v.Error != nil {
				ev = log.Warn().Err(v.Error)
			}
			ev.Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Dur("latency", v.Latency).
				Str("request_id", v.RequestID).
				Msg("request")
			return nil
		},
	})
}
