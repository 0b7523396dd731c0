package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"nutritrack/internal/delivery/http/response"

	"github.com/labstack/echo/v4"
)

const healthCheckTimeout = 2 * time.Second

// Pinger checks that a backing store is reachable.
type Pinger func(ctx context.Context) error

// HealthHandler serves liveness and readiness checks
type HealthHandler struct {
	ping   Pinger
	logger *slog.Logger
}

// NewHealthHandler creates a new HealthHandler instance
func NewHealthHandler(ping Pinger, logger *slog.Logger) *HealthHandler {
	return &HealthHandler{
		ping:   ping,
		logger: logger,
	}
}

// Live reports that the process is up
func (h *HealthHandler) Live(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// Ready reports whether the database is reachable
func (h *HealthHandler) Ready(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), healthCheckTimeout)
	defer cancel()

	if err := h.ping(ctx); err != nil {
		h.logger.WarnContext(ctx, "Readiness check failed", slog.Any("error", err))

		return response.ServiceUnavailable(c, "DATABASE_UNAVAILABLE", "Database is unreachable")
	}

	return c.JSON(http.StatusOK, map[string]string{"status": "ready"})
}
