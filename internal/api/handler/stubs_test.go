package handler

import (
	"context"
	"io"
	"net/http/httptest"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/99minutos/social-api/internal/core/domain"
	"github.com/99minutos/social-api/internal/core/ports"
)

// ---------------------------------------------------------------------------
// Stubs
// ---------------------------------------------------------------------------

type stubAuthService struct {
	loginFn        func(ctx context.Context, username, password string) (*domain.Session, *domain.User, error)
	logoutFn       func(ctx context.Context, sessionID string) error
	authenticateFn func(ctx context.Context, sessionID string) (domain.Caller, error)
}

func (s *stubAuthService) Login(ctx context.Context, username, password string) (*domain.Session, *domain.User, error) {
	return s.loginFn(ctx, username, password)
}

func (s *stubAuthService) Logout(ctx context.Context, sessionID string) error {
	return s.logoutFn(ctx, sessionID)
}

func (s *stubAuthService) Authenticate(ctx context.Context, sessionID string) (domain.Caller, error) {
	return s.authenticateFn(ctx, sessionID)
}

type stubUserService struct {
	createFn func(ctx context.Context, username, password string) (*domain.User, error)
	getFn    func(ctx context.Context, caller domain.Caller, id int64) (*domain.User, error)
	listFn   func(ctx context.Context, caller domain.Caller) ([]*domain.User, error)
	updateFn func(ctx context.Context, caller domain.Caller, id int64, input ports.UpdateUserInput) (*domain.User, error)
	deleteFn func(ctx context.Context, caller domain.Caller, id int64) error
}

func (s *stubUserService) Create(ctx context.Context, username, password string) (*domain.User, error) {
	return s.createFn(ctx, username, password)
}

func (s *stubUserService) Get(ctx context.Context, caller domain.Caller, id int64) (*domain.User, error) {
	return s.getFn(ctx, caller, id)
}

func (s *stubUserService) List(ctx context.Context, caller domain.Caller) ([]*domain.User, error) {
	return s.listFn(ctx, caller)
}

func (s *stubUserService) Update(ctx context.Context, caller domain.Caller, id int64, input ports.UpdateUserInput) (*domain.User, error) {
	return s.updateFn(ctx, caller, id, input)
}

func (s *stubUserService) Delete(ctx context.Context, caller domain.Caller, id int64) error {
	return s.deleteFn(ctx, caller, id)
}

type stubPostService struct {
	createFn     func(ctx context.Context, caller domain.Caller, content string) (*domain.Post, error)
	getFn        func(ctx context.Context, caller domain.Caller, id int64) (*domain.Post, error)
	listFn       func(ctx context.Context, caller domain.Caller) ([]*domain.Post, error)
	listByUserFn func(ctx context.Context, caller domain.Caller, userID int64) ([]*domain.Post, error)
	updateFn     func(ctx context.Context, caller domain.Caller, id int64, content string) (*domain.Post, error)
	deleteFn     func(ctx context.Context, caller domain.Caller, id int64) error
}

func (s *stubPostService) Create(ctx context.Context, caller domain.Caller, content string) (*domain.Post, error) {
	return s.createFn(ctx, caller, content)
}

func (s *stubPostService) Get(ctx context.Context, caller domain.Caller, id int64) (*domain.Post, error) {
	return s.getFn(ctx, caller, id)
}

func (s *stubPostService) List(ctx context.Context, caller domain.Caller) ([]*domain.Post, error) {
	return s.listFn(ctx, caller)
}

func (s *stubPostService) ListByUser(ctx context.Context, caller domain.Caller, userID int64) ([]*domain.Post, error) {
	return s.listByUserFn(ctx, caller, userID)
}

func (s *stubPostService) Update(ctx context.Context, caller domain.Caller, id int64, content string) (*domain.Post, error) {
	return s.updateFn(ctx, caller, id, content)
}

func (s *stubPostService) Delete(ctx context.Context, caller domain.Caller, id int64) error {
	return s.deleteFn(ctx, caller, id)
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

var alice = domain.Caller{ID: 1, Username: "alice"}

// newContext builds an echo.Context for a JSON request. id, when non-empty,
// is bound to the :id path parameter. caller, when authenticated, is stored
// the way the session middleware stores it.
func newContext(method, target, body, id string, caller domain.Caller) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = NewValidator()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if id != "" {
		c.SetParamNames("id")
		c.SetParamValues(id)
	}
	if caller.Authenticated() {
		c.Set(CallerKey, caller)
	}
	return c, rec
}

// httpStatus extracts the status code of an *echo.HTTPError, or 0.
func httpStatus(err error) int {
	if he, ok := err.(*echo.HTTPError); ok {
		return he.Code
	}
	return 0
}
