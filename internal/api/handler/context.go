package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/careerpilot/advisor-api/internal/api/middleware"
)

// ctxUserID extracts the user id injected by the Auth middleware. An empty
// id means the middleware did not run on this route; reject rather than fall
// through to a service call with no identity.
func ctxUserID(c echo.Context) (string, error) {
	id, _ := c.Get(middleware.UserIDKey).(string)
	if id == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return id, nil
}
