package api

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// healthCheck handles GET /api/health
func (h *Handlers) healthCheck(c echo.Context) error {
	if err := h.db.Ping(); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"status":   "error",
			"database": "disconnected",
		})
	}
	return c.JSON(http.StatusOK, map[string]string{
		"status":   "ok",
		"database": "connected",
	})
}
