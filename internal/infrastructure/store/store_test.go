package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/99minutos/social-api/internal/core/domain"
	"github.com/99minutos/social-api/internal/infrastructure/db/sqlite"
	"github.com/99minutos/social-api/internal/pkg/config"
)

func TestOpen_SQLiteMemory(t *testing.T) {
	ctx := context.Background()

	b, err := Open(ctx, config.StoreConfig{
		Driver: config.DriverSQLite,
		SQLite: config.SQLiteConfig{Path: sqlite.MemoryPath},
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = b.Close() })

	require.Equal(t, config.DriverSQLite, b.Name)
	require.NoError(t, b.Ping(ctx))

	now := time.Now().UTC()
	u, err := b.Users.Create(ctx, &domain.User{Username: "alice", PasswordHash: "x", CreatedAt: now, UpdatedAt: now})
	require.NoError(t, err)

	p, err := b.Posts.Create(ctx, &domain.Post{Content: "hi", AuthorID: u.ID, CreatedAt: now, UpdatedAt: now})
	require.NoError(t, err)
	require.Equal(t, "alice", p.Author.Username)
}

func TestOpen_UnknownDriver(t *testing.T) {
	_, err := Open(context.Background(), config.StoreConfig{Driver: "cassandra"})
	require.Error(t, err)
}
