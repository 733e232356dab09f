package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/RuanParreira/arquitetura-cebola/internal/core/ports"
)

// HealthHandler serves the liveness and readiness probes.
type HealthHandler struct {
	gw ports.Gateway
}

func NewHealthHandler(gw ports.Gateway) *HealthHandler {
	return &HealthHandler{gw: gw}
}

// Liveness reports that the process is up. It touches no dependencies.
func (h *HealthHandler) Liveness(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status":  "OK",
		"message": "Project Management API is running",
	})
}

// Readiness reports whether the storage backend is reachable.
func (h *HealthHandler) Readiness(c echo.Context) error {
	if err := h.gw.Ping(c.Request().Context()); err != nil {
		return c.JSON(http.StatusServiceUnavailable, map[string]string{
			"status": "unavailable",
			"error":  "database unreachable",
		})
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "ready"})
}
