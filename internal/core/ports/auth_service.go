package ports

import (
	"context"

	"github.com/99minutos/social-api/internal/core/domain"
)

type AuthService interface {
	Login(ctx context.Context, username, password string) (*domain.Session, *domain.User, error)
	Logout(ctx context.Context, sessionID string) error
	Authenticate(ctx context.Context, sessionID string) (domain.Caller, error)
}
