package auth

import (
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"stockroom-backend/internal/models"
)

// SessionTTL is the fixed validity window of a session
const SessionTTL = 24 * time.Hour

// CookieName is the cookie carrying the session token
const CookieName = "session_token"

// ContextKeySession is the echo context key holding the resolved session
const ContextKeySession = "session"

// RequireAuth middleware checks for a valid session before the handler runs.
// Every rejection path returns the same body: whether the cookie is missing,
// malformed or expired is not disclosed to the client. The middleware gates
// on the session only; whether the owning user still exists is the protected
// handler's concern.
func RequireAuth(authSvc *Service) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := TokenFromRequest(c)
			if token == "" {
				return unauthorized(c)
			}

			session, err := authSvc.ResolveSession(token)
			if err != nil {
				return unauthorized(c)
			}

			c.Set(ContextKeySession, session)

			return next(c)
		}
	}
}

func unauthorized(c echo.Context) error {
	return c.JSON(http.StatusUnauthorized, map[string]string{
		"error": "unauthorized",
	})
}

// TokenFromRequest extracts the session token from the request
func TokenFromRequest(c echo.Context) string {
	// Try cookie first
	cookie, err := c.Cookie(CookieName)
	if err == nil && cookie.Value != "" {
		return cookie.Value
	}

	// Fall back to Authorization header (Bearer token)
	authHeader := c.Request().Header.Get("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimPrefix(authHeader, "Bearer ")
	}

	return ""
}

// GetSessionFromContext retrieves the current session from the context
func GetSessionFromContext(c echo.Context) *models.Session {
	session, ok := c.Get(ContextKeySession).(*models.Session)
	if !ok {
		return nil
	}
	return session
}
