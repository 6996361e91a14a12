// Command create-admin creates an administrator account, or reports the
// existing one, in the configured store.
package main

import (
	"context"
	"flag"

	"github.com/99minutos/social-api/internal/core/service"
	"github.com/99minutos/social-api/internal/infrastructure/store"
	"github.com/99minutos/social-api/internal/pkg/config"
	"github.com/99minutos/social-api/pkg/logger"
)

func main() {
	username := flag.String("username", "admin", "admin username")
	password := flag.String("password", "admin", "admin password")
	flag.Parse()

	cfg := config.Load()
	log := logger.Init(logger.Options{Level: cfg.LogLevel, Pretty: true, Service: "create-admin"})

	ctx := context.Background()
	backend, err := store.Open(ctx, cfg.Store)
	if err != nil {
		log.Fatal().Err(err).Str("driver", cfg.Store.Driver).Msg("failed to open store")
	}
	defer backend.Close()

	admin, created, err := service.NewUserService(backend.Users, log).EnsureAdmin(ctx, *username, *password)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create admin")
	}
	if !created {
		log.Warn().Str("username", admin.Username).Int64("user_id", admin.ID).Bool("is_admin", admin.IsAdmin).Msg("user already exists")
		return
	}
	log.Info().Str("username", admin.Username).Int64("user_id", admin.ID).Msg("admin created")
}
