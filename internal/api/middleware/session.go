package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/99minutos/social-api/internal/api/handler"
	"github.com/99minutos/social-api/internal/core/domain"
	"github.com/99minutos/social-api/internal/core/ports"
)

// Session resolves the session cookie into a domain.Caller and injects it
// into the context. Requests without a live session stop here with
// domain.ErrUnauthenticated.
func Session(auth ports.AuthService, cookieName string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ck, err := c.Cookie(cookieName)
			if err != nil || ck.Value == "" {
				return domain.ErrUnauthenticated
			}

			caller, err := auth.Authenticate(c.Request().Context(), ck.Value)
			if err != nil {
				return err
			}

			c.Set(handler.CallerKey, caller)
			return next(c)
		}
	}
}
