package http

import (
	"context"
	"net/http"

	"stock-intel/pkg/logger"

	"github.com/labstack/echo/v4"
)

// Pinger is satisfied by *sql.DB.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// HealthHandler reports whether the database pool is reachable.
type HealthHandler struct {
	db     Pinger
	logger *logger.Logger
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler(db Pinger, logger *logger.Logger) *HealthHandler {
	return &HealthHandler{db: db, logger: logger}
}

// Health godoc
// @Summary Health check
// @Tags health
// @Produce  json
// @Success 200 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /health [get]
func (h *HealthHandler) Health(c echo.Context) error {
	if err := h.db.PingContext(c.Request().Context()); err != nil {
		h.logger.Warn("Database ping failed", logger.ErrorField(err))
		return c.JSON(http.StatusServiceUnavailable, echo.Map{"status": "unavailable"})
	}
	return c.JSON(http.StatusOK, echo.Map{"status": "ok"})
}
