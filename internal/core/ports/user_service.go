package ports

import (
	"context"

	"github.com/99minutos/social-api/internal/core/domain"
)

// UpdateUserInput carries the optional fields of a user edit. Nil means
// "leave unchanged".
type UpdateUserInput struct {
	Username *string
	Password *string
}

// UserService defines use-case operations for user accounts.
type UserService interface {
	Create(ctx context.Context, username, password string) (*domain.User, error)
	Get(ctx context.Context, caller domain.Caller, id int64) (*domain.User, error)
	List(ctx context.Context, caller domain.Caller) ([]*domain.User, error)
	Update(ctx context.Context, caller domain.Caller, id int64, input UpdateUserInput) (*domain.User, error)
	Delete(ctx context.Context, caller domain.Caller, id int64) error
}
