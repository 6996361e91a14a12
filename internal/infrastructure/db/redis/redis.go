package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	defaultTimeout = 5 * time.Second
	defaultPrefix  = "session:"
)

// Config captures the Redis connection and session keyspace settings.
type Config struct {
	Addr     string
	Password string
	DB       int
	// Prefix namespaces session keys; defaults to "session:".
	Prefix string
	// TTL is how long a session lives after login.
	TTL     time.Duration
	Timeout time.Duration
}

// Open connects to Redis, verifies connectivity with a ping and returns a
// SessionStore that owns the client. A default timeout is applied when none
// is provided.
func Open(ctx context.Context, cfg Config) (*SessionStore, error) {
	if cfg.TTL <= 0 {
		return nil, fmt.Errorf("redis: session ttl must be positive, got %s", cfg.TTL)
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	return NewSessionStore(client, cfg.Prefix, cfg.TTL), nil
}
