package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/99minutos/social-api/internal/core/domain"
	"github.com/99minutos/social-api/internal/core/ports"
)

// AuthService implements login, logout and session resolution.
type AuthService struct {
	users    ports.UserRepository
	sessions ports.SessionStore
	log      zerolog.Logger
}

func NewAuthService(users ports.UserRepository, sessions ports.SessionStore, log zerolog.Logger) *AuthService {
	return &AuthService{users: users, sessions: sessions, log: log}
}

// Login verifies the credentials and opens a new session. Unknown usernames
// and wrong passwords are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, username, password string) (*domain.Session, *domain.User, error) {
	if username == "" || password == "" {
		return nil, nil, domain.ErrInvalidCredentials
	}

	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			// Burn the same bcrypt work as a real comparison.
			_ = bcrypt.CompareHashAndPassword(dummyHash(), []byte(password))
			return nil, nil, domain.ErrInvalidCredentials
		}
		return nil, nil, fmt.Errorf("login: %w", err)
	}

	if !checkPassword(user.PasswordHash, password) {
		return nil, nil, domain.ErrInvalidCredentials
	}

	session, err := s.sessions.Create(ctx, user.ID, user.IsAdmin)
	if err != nil {
		return nil, nil, fmt.Errorf("login: create session: %w", err)
	}

	s.log.Info().Int64("user_id", user.ID).Msg("user logged in")
	return session, user, nil
}

// Logout drops the session. Unknown or empty ids are not an error.
func (s *AuthService) Logout(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return nil
	}
	if err := s.sessions.Delete(ctx, sessionID); err != nil {
		return fmt.Errorf("logout: %w", err)
	}
	return nil
}

// Authenticate resolves a session id to the caller it belongs to. The user
// is re-read on every call so that deleted accounts and revoked admin flags
// take effect immediately.
func (s *AuthService) Authenticate(ctx context.Context, sessionID string) (domain.Caller, error) {
	if sessionID == "" {
		return domain.Caller{}, domain.ErrUnauthenticated
	}

	session, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		if errors.Is(err, domain.ErrSessionNotFound) {
			return domain.Caller{}, domain.ErrUnauthenticated
		}
		return domain.Caller{}, fmt.Errorf("authenticate: %w", err)
	}

	user, err := s.users.FindByID(ctx, session.UserID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			if delErr := s.sessions.Delete(ctx, sessionID); delErr != nil {
				s.log.Warn().Err(delErr).Int64("user_id", session.UserID).Msg("failed to drop orphaned session")
			}
			return domain.Caller{}, domain.ErrUnauthenticated
		}
		return domain.Caller{}, fmt.Errorf("authenticate: %w", err)
	}

	return domain.Caller{ID: user.ID, Username: user.Username, IsAdmin: user.IsAdmin}, nil
}
