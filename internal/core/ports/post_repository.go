package ports

import (
	"context"

	"github.com/99minutos/social-api/internal/core/domain"
)

// PostRepository defines persistence operations for posts. Every read
// returns posts with Author populated.
type PostRepository interface {
	// Create fails with domain.ErrUserNotFound when AuthorID does not exist.
	Create(ctx context.Context, post *domain.Post) (*domain.Post, error)
	FindByID(ctx context.Context, id int64) (*domain.Post, error)
	List(ctx context.Context) ([]*domain.Post, error)
	ListByAuthor(ctx context.Context, authorID int64) ([]*domain.Post, error)
	// Update overwrites the content of an existing post.
	Update(ctx context.Context, post *domain.Post) (*domain.Post, error)
	Delete(ctx context.Context, id int64) error
}
