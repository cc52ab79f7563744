package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// HealthHandler answers liveness probes.
type HealthHandler struct{}

func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

// Liveness reports that the process is up.
//
// @Summary      Health check
// @Tags         health
// @Produce      plain
// @Success      200  {string}  string
// @Router       /health [get]
func (h *HealthHandler) Liveness(c echo.Context) error {
	return c.String(http.StatusOK, "Career Advisor API is running")
}
