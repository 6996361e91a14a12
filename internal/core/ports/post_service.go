package ports

import (
	"context"

	"github.com/99minutos/social-api/internal/core/domain"
)

// PostService defines use-case operations for posts.
type PostService interface {
	Create(ctx context.Context, caller domain.Caller, content string) (*domain.Post, error)
	Get(ctx context.Context, caller domain.Caller, id int64) (*domain.Post, error)
	List(ctx context.Context, caller domain.Caller) ([]*domain.Post, error)
	ListByUser(ctx context.Context, caller domain.Caller, userID int64) ([]*domain.Post, error)
	Update(ctx context.Context, caller domain.Caller, id int64, content string) (*domain.Post, error)
	Delete(ctx context.Context, caller domain.Caller, id int64) error
}
