package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/99minutos/social-api/internal/core/domain"
)

func TestHTTPErrorHandler_Mapping(t *testing.T) {
	cases := []struct {
		name string
		err  error
		code int
		msg  string
	}{
		{"unauthenticated", domain.ErrUnauthenticated, http.StatusUnauthorized, "Login required"},
		{"bad credentials", domain.ErrInvalidCredentials, http.StatusUnauthorized, "Invalid credentials"},
		{"forbidden", domain.ErrForbidden, http.StatusForbidden, "Permission denied"},
		{"user missing", fmt.Errorf("find user: %w", domain.ErrUserNotFound), http.StatusNotFound, "user not found"},
		{"post missing", domain.ErrPostNotFound, http.StatusNotFound, "post not found"},
		{"duplicate", domain.ErrUserExists, http.StatusBadRequest, "username already exists"},
		{"invalid input", fmt.Errorf("%w: content is required", domain.ErrInvalidInput), http.StatusBadRequest, "invalid input: content is required"},
		{"echo error", echo.NewHTTPError(http.StatusBadRequest, "invalid payload"), http.StatusBadRequest, "invalid payload"},
		{"unknown", errors.New("disk on fire"), http.StatusInternalServerError, "internal server error"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			NewHTTPErrorHandler(zerolog.Nop())(tc.err, c)

			if rec.Code != tc.code {
				t.Fatalf("expected %d, got %d", tc.code, rec.Code)
			}
			var resp errorResponse
			if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
				t.Fatalf("invalid json: %v", err)
			}
			if resp.Error != tc.msg {
				t.Fatalf("expected %q, got %q", tc.msg, resp.Error)
			}
		})
	}
}

func TestHTTPErrorHandler_LogsUnexpectedErrorsOnly(t *testing.T) {
	var buf bytes.Buffer
	handler := NewHTTPErrorHandler(zerolog.New(&buf))
	e := echo.New()

	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
	handler(domain.ErrForbidden, c)
	if buf.Len() != 0 {
		t.Fatalf("expected domain errors to stay out of the error log, got %q", buf.String())
	}

	c = e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
	handler(errors.New("disk on fire"), c)
	if !strings.Contains(buf.String(), "disk on fire") {
		t.Fatalf("expected cause to be logged, got %q", buf.String())
	}
}
