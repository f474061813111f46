// @title        curator-web API
// @version      1.0
// @description  Session and access-control API of the News Curator web client.
// @BasePath     /
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	goredis "github.com/redis/go-redis/v9"

	"github.com/newscurator/curator-web/internal/api"
	"github.com/newscurator/curator-web/internal/api/handler"
	"github.com/newscurator/curator-web/internal/api/metrics"
	"github.com/newscurator/curator-web/internal/api/middleware"
	"github.com/newscurator/curator-web/internal/core/ports"
	"github.com/newscurator/curator-web/internal/core/service"
	"github.com/newscurator/curator-web/internal/infrastructure/db/memory"
	redisdb "github.com/newscurator/curator-web/internal/infrastructure/db/redis"
	"github.com/newscurator/curator-web/internal/infrastructure/walker"
	"github.com/newscurator/curator-web/internal/pkg/config"
	"github.com/newscurator/curator-web/internal/web"
	"github.com/newscurator/curator-web/pkg/logger"
)

func main() {
	// .env is optional; real environment variables win.
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		boot := logger.Init(logger.Options{})
		boot.Fatal().Err(err).Msg("load config")
	}

	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  cfg.IsDevelopment(),
		Service: "curator-web",
	})

	secret := []byte(cfg.Session.Secret)
	if len(secret) == 0 {
		if secret, err = config.RandomSecret(); err != nil {
			log.Fatal().Err(err).Msg("generate session secret")
		}
		log.Warn().Msg("SESSION_SECRET not set, sessions will not survive a restart")
	}

	repo, rdb, closeRepo, err := buildSessionRepository(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("setup session store")
	}
	defer closeRepo()

	backend := walker.NewClient(cfg.Backend.URL, nil, logger.Component("walker"))
	sessions := service.NewSessionStore(repo, logger.Component("sessions"))
	if err := metrics.RegisterAuthenticatedSessions(prometheus.DefaultRegisterer, sessions.AuthenticatedCount); err != nil {
		log.Fatal().Err(err).Msg("register session gauge")
	}
	authService := service.NewAuthService(backend, sessions, cfg.Backend.LoginDomain, logger.Component("auth"))
	userService := service.NewUserService(backend, logger.Component("users"))

	renderer, err := web.NewRenderer(logger.Component("web"))
	if err != nil {
		log.Fatal().Err(err).Msg("load templates")
	}

	checks := map[string]handler.Check{"backend": backend.Ping}
	if rdb != nil {
		checks["redis"] = func(ctx context.Context) error { return rdb.Ping(ctx).Err() }
	}

	deps := api.Deps{
		Log:      logger.Component("http"),
		Renderer: renderer,
		Session: middleware.SessionConfig{
			Secret:     secret,
			CookieName: cfg.Session.CookieName,
			TTL:        cfg.Session.TTL,
			Secure:     !cfg.IsDevelopment(),
			Store:      sessions,
			Log:        logger.Component("sessions"),
		},
		Auth:   authService,
		Users:  userService,
		Checks: checks,
	}
	if cfg.Backend.Proxy {
		deps.BackendProxy = cfg.Backend.URL
	}

	router, err := api.NewRouter(deps)
	if err != nil {
		log.Fatal().Err(err).Msg("build router")
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info().
			Str("addr", srv.Addr).
			Str("backend", cfg.Backend.URL).
			Str("session_store", cfg.Session.Store).
			Bool("backend_proxy", cfg.Backend.Proxy).
			Msg("listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("http server")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Warn().Err(err).Msg("http shutdown")
	}
	log.Info().Msg("bye")
}

// buildSessionRepository picks the store named by SESSION_STORE. Both expire
// sessions SESSION_TTL after login.
func buildSessionRepository(ctx context.Context, cfg *config.Config) (ports.SessionRepository, *goredis.Client, func(), error) {
	if cfg.Session.Store != config.SessionStoreRedis {
		repo := memory.NewSessionRepository(cfg.Session.TTL)
		return repo, nil, repo.Close, nil
	}

	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		return nil, nil, nil, err
	}
	return redisdb.NewSessionRepository(rdb, cfg.Session.TTL), rdb, func() { _ = rdb.Close() }, nil
}
