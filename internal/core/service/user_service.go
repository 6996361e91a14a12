package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/99minutos/social-api/internal/core/domain"
	"github.com/99minutos/social-api/internal/core/ports"
)

type UserService struct {
	repo   ports.UserRepository
	logger zerolog.Logger
}

func NewUserService(repo ports.UserRepository, logger zerolog.Logger) *UserService {
	return &UserService{repo: repo, logger: logger}
}

// Create registers a new, non-admin account.
func (s *UserService) Create(ctx context.Context, username, password string) (*domain.User, error) {
	return s.create(ctx, username, password, false)
}

func (s *UserService) create(ctx context.Context, username, password string, isAdmin bool) (*domain.User, error) {
	if username == "" || password == "" {
		return nil, fmt.Errorf("%w: username and password are required", domain.ErrInvalidInput)
	}

	hash, err := hashPassword(password)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	created, err := s.repo.Create(ctx, &domain.User{
		Username:     username,
		PasswordHash: hash,
		IsAdmin:      isAdmin,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().Int64("user_id", created.ID).Str("username", created.Username).Bool("is_admin", isAdmin).Msg("user created")
	return created, nil
}

func (s *UserService) Get(ctx context.Context, caller domain.Caller, id int64) (*domain.User, error) {
	if !caller.Authenticated() {
		return nil, domain.ErrUnauthenticated
	}
	return s.repo.FindByID(ctx, id)
}

func (s *UserService) List(ctx context.Context, caller domain.Caller) ([]*domain.User, error) {
	if !caller.Authenticated() {
		return nil, domain.ErrUnauthenticated
	}
	return s.repo.List(ctx)
}

// Update applies the supplied fields to user id. The target must exist
// before ownership is checked, so strangers learn 404 before 403.
func (s *UserService) Update(ctx context.Context, caller domain.Caller, id int64, input ports.UpdateUserInput) (*domain.User, error) {
	if !caller.Authenticated() {
		return nil, domain.ErrUnauthenticated
	}

	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !domain.CanModify(caller, user.ID) {
		return nil, domain.ErrForbidden
	}

	if input.Username != nil {
		if *input.Username == "" {
			return nil, fmt.Errorf("%w: username must not be empty", domain.ErrInvalidInput)
		}
		user.Username = *input.Username
	}
	if input.Password != nil {
		if *input.Password == "" {
			return nil, fmt.Errorf("%w: password must not be empty", domain.ErrInvalidInput)
		}
		hash, err := hashPassword(*input.Password)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = hash
	}
	user.UpdatedAt = time.Now().UTC()

	updated, err := s.repo.Update(ctx, user)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Int64("user_id", id).Int64("caller_id", caller.ID).Msg("user updated")
	return updated, nil
}

func (s *UserService) Delete(ctx context.Context, caller domain.Caller, id int64) error {
	if !caller.Authenticated() {
		return domain.ErrUnauthenticated
	}

	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if !domain.CanModify(caller, user.ID) {
		return domain.ErrForbidden
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info().Int64("user_id", id).Int64("caller_id", caller.ID).Msg("user deleted")
	return nil
}

// EnsureAdmin creates an administrator named username unless an account
// with that name already exists. The boolean reports whether one was created.
func (s *UserService) EnsureAdmin(ctx context.Context, username, password string) (*domain.User, bool, error) {
	existing, err := s.repo.FindByUsername(ctx, username)
	if err == nil {
		return existing, false, nil
	}
	if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, false, fmt.Errorf("ensure admin: %w", err)
	}

	created, err := s.create(ctx, username, password, true)
	if err != nil {
		return nil, false, fmt.Errorf("ensure admin: %w", err)
	}
	return created, true, nil
}
