package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/careerpilot/advisor-api/internal/core/domain"
)

// errorResponse is the canonical error envelope for all API errors.
type errorResponse struct {
	Error string `json:"error"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps known domain errors to their appropriate HTTP status codes.
//   - Logs unexpected errors internally without leaking details to the client.
//   - Renders a consistent JSON envelope: {"error": "<message>"}.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, msg := resolveError(err, log, c)
		_ = c.JSON(code, errorResponse{Error: msg})
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, string) {
	// Echo's own errors (bind failures, 404 from router, etc.)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, fmt.Sprintf("%v", he.Message)
	}

	// Known domain errors → deterministic HTTP codes.
	switch {
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized, "Invalid credentials"
	case errors.Is(err, domain.ErrUserNotFound):
		return http.StatusNotFound, "User not found"
	case errors.Is(err, domain.ErrDuplicateEmail):
		return http.StatusBadRequest, "User with this email already exists"
	case errors.Is(err, domain.ErrUnsupportedFormat):
		return http.StatusUnsupportedMediaType, "unsupported document format"
	case errors.Is(err, domain.ErrPDFParse):
		return http.StatusUnprocessableEntity, "could not read PDF document"
	case errors.Is(err, domain.ErrOCR):
		return http.StatusUnprocessableEntity, "could not recognize text in image"
	case errors.Is(err, domain.ErrUpstream), errors.Is(err, domain.ErrInvalidResponseShape):
		log.Error().
			Err(err).
			Str("path", c.Path()).
			Msg("advice backend failure")
		return http.StatusBadGateway, "advice backend unavailable"
	case errors.Is(err, domain.ErrMailNotConfigured):
		// Operators see the real cause in the log, callers only a generic relay error.
		log.Error().Err(err).Msg("contact relay misconfigured")
		return http.StatusInternalServerError, "Failed to send message."
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, "internal server error"
}
