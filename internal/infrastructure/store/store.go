// Package store opens the persistence engine selected by configuration.
package store

import (
	"context"
	"fmt"

	"github.com/99minutos/social-api/internal/core/ports"
	"github.com/99minutos/social-api/internal/infrastructure/db/mongo"
	"github.com/99minutos/social-api/internal/infrastructure/db/postgres"
	"github.com/99minutos/social-api/internal/infrastructure/db/sqlite"
	"github.com/99minutos/social-api/internal/pkg/config"
)

// Backend is an opened engine exposed through the repository ports.
type Backend struct {
	Name  string
	Users ports.UserRepository
	Posts ports.PostRepository

	ping  func(ctx context.Context) error
	close func() error
}

func (b *Backend) Ping(ctx context.Context) error { return b.ping(ctx) }

func (b *Backend) Close() error { return b.close() }

// Open connects to cfg.Driver, applying migrations or indexes before returning.
func Open(ctx context.Context, cfg config.StoreConfig) (*Backend, error) {
	switch cfg.Driver {
	case config.DriverSQLite:
		s, err := sqlite.Open(ctx, cfg.SQLite.Path)
		if err != nil {
			return nil, err
		}
		return &Backend{Name: cfg.Driver, Users: s.Users(), Posts: s.Posts(), ping: s.Ping, close: s.Close}, nil

	case config.DriverPostgres:
		s, err := postgres.Open(ctx, cfg.Postgres.DSN, cfg.Postgres.MaxConns)
		if err != nil {
			return nil, err
		}
		return &Backend{Name: cfg.Driver, Users: s.Users(), Posts: s.Posts(), ping: s.Ping, close: s.Close}, nil

	case config.DriverMongo:
		s, err := mongo.Open(ctx, mongo.Config{URI: cfg.Mongo.URI, Database: cfg.Mongo.Database})
		if err != nil {
			return nil, err
		}
		return &Backend{Name: cfg.Driver, Users: s.Users(), Posts: s.Posts(), ping: s.Ping, close: s.Close}, nil

	default:
		return nil, fmt.Errorf("store: unknown driver %q", cfg.Driver)
	}
}
