package api

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"stockroom-backend/internal/auth"
	"stockroom-backend/internal/database"
	"stockroom-backend/internal/models"
)

// registerHandler handles POST /api/auth/register
func (h *Handlers) registerHandler(c echo.Context) error {
	var req models.RegisterRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": "invalid request body",
		})
	}

	user, err := h.authSvc.Register(req.Username, req.Password)
	if err != nil {
		var ve *auth.ValidationError
		switch {
		case errors.As(err, &ve):
			return c.JSON(http.StatusBadRequest, map[string]string{
				"error": ve.Message,
			})
		case errors.Is(err, database.ErrUserAlreadyExists):
			return c.JSON(http.StatusBadRequest, map[string]string{
				"error": "username already exists",
			})
		default:
			c.Logger().Error("register error: ", err)
			return c.JSON(http.StatusInternalServerError, map[string]string{
				"error": "registration failed",
			})
		}
	}

	return c.JSON(http.StatusCreated, models.RegisterResponse{
		ID:        user.ID,
		Username:  user.Username,
		CreatedAt: user.CreatedAt,
	})
}

// loginHandler handles POST /api/auth/login
func (h *Handlers) loginHandler(c echo.Context) error {
	var req models.LoginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": "invalid request body",
		})
	}

	// Empty credentials fall through to the generic failure below: the login
	// response never says which part of the pair was wrong, or missing
	token, session, err := h.authSvc.Login(req.Username, req.Password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			return c.JSON(http.StatusUnauthorized, map[string]string{
				"error": "invalid username or password",
			})
		}
		c.Logger().Error("login error: ", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "authentication failed",
		})
	}

	// Set token in cookie (HttpOnly for security)
	cookie := &http.Cookie{
		Name:     auth.CookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		Secure:   c.Request().TLS != nil, // Secure if HTTPS
		SameSite: http.SameSiteStrictMode,
		MaxAge:   int(auth.SessionTTL.Seconds()),
	}
	c.SetCookie(cookie)

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message":    "logged in successfully",
		"expires_at": session.ExpiresAt,
	})
}

// logoutHandler handles POST /api/auth/logout. Logging out with no session,
// or with one that is already gone, still succeeds.
func (h *Handlers) logoutHandler(c echo.Context) error {
	token := auth.TokenFromRequest(c)
	if token != "" {
		if err := h.authSvc.Logout(token); err != nil {
			c.Logger().Error("logout error: ", err)
			return c.JSON(http.StatusInternalServerError, map[string]string{
				"error": "logout failed",
			})
		}
	}

	// Clear cookie
	cookie := &http.Cookie{
		Name:     auth.CookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		MaxAge:   -1,
	}
	c.SetCookie(cookie)

	return c.JSON(http.StatusOK, map[string]string{
		"message": "logged out successfully",
	})
}
