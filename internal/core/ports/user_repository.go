package ports

import (
	"context"

	"github.com/99minutos/social-api/internal/core/domain"
)

// UserRepository defines persistence operations for user records.
//
// Implementations translate engine-specific "not found" and "unique
// violation" conditions into domain.ErrUserNotFound and domain.ErrUserExists.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByID(ctx context.Context, id int64) (*domain.User, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	// List returns every user ordered by id.
	List(ctx context.Context) ([]*domain.User, error)
	// Update overwrites username, password hash and admin flag of an existing user.
	Update(ctx context.Context, user *domain.User) (*domain.User, error)
	// Delete removes the user together with the posts they authored.
	Delete(ctx context.Context, id int64) error
}
