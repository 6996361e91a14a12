package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/99minutos/social-api/internal/core/domain"
	"github.com/99minutos/social-api/internal/core/ports"
)

type PostService struct {
	posts  ports.PostRepository
	users  ports.UserRepository
	logger zerolog.Logger
}

func NewPostService(posts ports.PostRepository, users ports.UserRepository, logger zerolog.Logger) *PostService {
	return &PostService{posts: posts, users: users, logger: logger}
}

// Create stores a post authored by the caller.
func (s *PostService) Create(ctx context.Context, caller domain.Caller, content string) (*domain.Post, error) {
	if !caller.Authenticated() {
		return nil, domain.ErrUnauthenticated
	}
	if content == "" {
		return nil, fmt.Errorf("%w: content is required", domain.ErrInvalidInput)
	}

	now := time.Now().UTC()
	post, err := s.posts.Create(ctx, &domain.Post{
		Content:   content,
		AuthorID:  caller.ID,
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().Int64("post_id", post.ID).Int64("author_id", caller.ID).Msg("post created")
	return post, nil
}

func (s *PostService) Get(ctx context.Context, caller domain.Caller, id int64) (*domain.Post, error) {
	if !caller.Authenticated() {
		return nil, domain.ErrUnauthenticated
	}
	return s.posts.FindByID(ctx, id)
}

func (s *PostService) List(ctx context.Context, caller domain.Caller) ([]*domain.Post, error) {
	if !caller.Authenticated() {
		return nil, domain.ErrUnauthenticated
	}
	return s.posts.List(ctx)
}

// ListByUser returns the posts of userID, or domain.ErrUserNotFound when no
// such user exists. A user without posts yields an empty slice.
func (s *PostService) ListByUser(ctx context.Context, caller domain.Caller, userID int64) ([]*domain.Post, error) {
	if !caller.Authenticated() {
		return nil, domain.ErrUnauthenticated
	}
	if _, err := s.users.FindByID(ctx, userID); err != nil {
		return nil, err
	}
	return s.posts.ListByAuthor(ctx, userID)
}

func (s *PostService) Update(ctx context.Context, caller domain.Caller, id int64, content string) (*domain.Post, error) {
	if !caller.Authenticated() {
		return nil, domain.ErrUnauthenticated
	}

	post, err := s.posts.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !domain.CanModify(caller, post.AuthorID) {
		return nil, domain.ErrForbidden
	}
	if content == "" {
		return nil, fmt.Errorf("%w: content is required", domain.ErrInvalidInput)
	}

	post.Content = content
	post.UpdatedAt = time.Now().UTC()

	updated, err := s.posts.Update(ctx, post)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Int64("post_id", id).Int64("caller_id", caller.ID).Msg("post updated")
	return updated, nil
}

func (s *PostService) Delete(ctx context.Context, caller domain.Caller, id int64) error {
	if !caller.Authenticated() {
		return domain.ErrUnauthenticated
	}

	post, err := s.posts.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if !domain.CanModify(caller, post.AuthorID) {
		return domain.ErrForbidden
	}

	if err := s.posts.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info().Int64("post_id", id).Int64("caller_id", caller.ID).Msg("post deleted")
	return nil
}
