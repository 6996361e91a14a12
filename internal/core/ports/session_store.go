package ports

import (
	"context"

	"github.com/99minutos/social-api/internal/core/domain"
)

// SessionStore keeps server-side session state keyed by an opaque id.
type SessionStore interface {
	Create(ctx context.Context, userID int64, isAdmin bool) (*domain.Session, error)
	// Get returns domain.ErrSessionNotFound for unknown or expired ids.
	Get(ctx context.Context, id string) (*domain.Session, error)
	// Delete is idempotent: deleting an unknown id is not an error.
	Delete(ctx context.Context, id string) error
}
