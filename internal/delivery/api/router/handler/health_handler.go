package handler

import (
	"context"
	"net/http"
	"time"

	"expatmart/internal/delivery/api/response"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

const readinessTimeout = 2 * time.Second

// HealthCheck reports liveness.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"})
}

// HealthHandler reports readiness of the backing database.
type HealthHandler struct {
	db *gorm.DB
}

func NewHealthHandler(db *gorm.DB) *HealthHandler {
	return &HealthHandler{db: db}
}

// Ready pings the primary database.
func (h *HealthHandler) Ready(c echo.Context) error {
	sqlDB, err := h.db.DB()
	if err != nil {
		return response.Error(c, http.StatusServiceUnavailable, "NOT_READY", "Database handle unavailable", nil)
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), readinessTimeout)
	defer cancel()

	if err := sqlDB.PingContext(ctx); err != nil {
		return response.Error(c, http.StatusServiceUnavailable, "NOT_READY", "Database is unreachable", nil)
	}

	return response.Success(c, http.StatusOK, map[string]string{"status": "ready"})
}
