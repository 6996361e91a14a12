package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"

	"github.com/99minutos/social-api/internal/api"
	"github.com/99minutos/social-api/internal/api/handler"
	"github.com/99minutos/social-api/internal/core/ports"
	"github.com/99minutos/social-api/internal/core/service"
	redisstore "github.com/99minutos/social-api/internal/infrastructure/db/redis"
	"github.com/99minutos/social-api/internal/infrastructure/http/handlers"
	"github.com/99minutos/social-api/internal/infrastructure/store"
	"github.com/99minutos/social-api/internal/pkg/config"
	"github.com/99minutos/social-api/pkg/logger"
)

// @title                       Social API
// @version                     1.0
// @description                 Users, sessions and posts with owner-or-admin authorization.
// @BasePath                    /
// @securityDefinitions.apikey  SessionCookie
// @in                          cookie
// @name                        session_id
func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  cfg.IsDevelopment(),
		Service: "social-api",
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	backend, err := store.Open(ctx, cfg.Store)
	if err != nil {
		log.Fatal().Err(err).Str("driver", cfg.Store.Driver).Msg("failed to open store")
	}
	defer backend.Close()
	log.Info().Str("driver", backend.Name).Msg("store ready")

	sessions, err := redisstore.Open(ctx, redisstore.Config{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
		Prefix:   cfg.Redis.SessionPrefix,
		TTL:      cfg.Session.TTL,
	})
	if err != nil {
		log.Fatal().Err(err).Str("addr", cfg.Redis.Addr).Msg("failed to connect to redis")
	}
	defer sessions.Close()

	if err := bootstrapAdmin(ctx, backend.Users, cfg.Admin, log); err != nil {
		log.Fatal().Err(err).Msg("failed to bootstrap admin")
	}

	e := api.NewRouter(api.Dependencies{
		Users:    backend.Users,
		Posts:    backend.Posts,
		Sessions: sessions,
		Pingers: map[string]handlers.Pinger{
			"store":    backend,
			"sessions": sessions,
		},
		Cookie: handler.CookieConfig{
			Name:   cfg.Session.CookieName,
			TTL:    cfg.Session.TTL,
			Secure: cfg.Session.CookieSecure,
		},
		Log: log,
	})

	go func() {
		log.Info().Str("port", cfg.Port).Msg("http server listening")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error().Err(err).Msg("http server stopped")
			stop()
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}

// bootstrapAdmin seeds the configured administrator. An existing account with
// the same name is left untouched, and a warning is logged when it is not an
// admin. An empty password disables the bootstrap.
func bootstrapAdmin(ctx context.Context, repo ports.UserRepository, cfg config.AdminConfig, log zerolog.Logger) error {
	if cfg.Password == "" {
		return nil
	}

	admin, created, err := service.NewUserService(repo, log).EnsureAdmin(ctx, cfg.Username, cfg.Password)
	if err != nil {
		return err
	}
	if !admin.IsAdmin {
		log.Warn().Int64("user_id", admin.ID).Str("username", admin.Username).
			Msg("admin username belongs to a non-admin account; no admin was bootstrapped")
		return nil
	}
	log.Info().Int64("user_id", admin.ID).Bool("created", created).Msg("admin account ready")
	return nil
}
