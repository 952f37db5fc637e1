package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"stockroom-backend/internal/auth"
	"stockroom-backend/internal/database"
)

// protectedDataHandler handles GET /api/protected/data. RequireAuth has
// already resolved the session; the user row is re-fetched here because it
// may have been removed while the session was still live. That case is a 404,
// not an auth failure, and the session is left to expire on its own.
func (h *Handlers) protectedDataHandler(c echo.Context) error {
	session := auth.GetSessionFromContext(c)
	if session == nil {
		return c.JSON(http.StatusUnauthorized, map[string]string{
			"error": "unauthorized",
		})
	}

	user, err := h.users.GetByID(session.UserID)
	if err != nil {
		if errors.Is(err, database.ErrUserNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{
				"error": "user not found",
			})
		}
		c.Logger().Error("protected data error: ", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "failed to load user",
		})
	}

	return c.JSON(http.StatusOK, map[string]string{
		"message": fmt.Sprintf("Welcome %s! This is protected content.", user.Username),
	})
}
