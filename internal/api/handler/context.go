package handler

import (
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/99minutos/social-api/internal/core/domain"
)

// CallerKey is the echo.Context key under which the session middleware
// stores the authenticated domain.Caller.
const CallerKey = "caller"

// ctxCaller returns the caller injected by the session middleware. A missing
// caller yields the zero value, which services reject as unauthenticated.
func ctxCaller(c echo.Context) domain.Caller {
	caller, _ := c.Get(CallerKey).(domain.Caller)
	return caller
}

// pathID parses the :id path parameter. Anything that is not a positive
// integer can never match a record, so it is reported as notFound.
func pathID(c echo.Context, notFound error) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, notFound
	}
	return id, nil
}
