package middleware

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
)

// AuthMiddleware guards the API with the master API key. Clients send the
// key either as an X-API-Key header or as a Bearer token. With no master
// key configured, every request is rejected.
func AuthMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		app := c.(*AppContext).App
		if app.MasterAPIKey == "" {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Unauthorized"})
		}

		key := c.Request().Header.Get("X-API-Key")
		if key == "" {
			authHeader := c.Request().Header.Get("Authorization")
			key = strings.TrimPrefix(authHeader, "Bearer ")
		}

		if subtle.ConstantTimeCompare([]byte(key), []byte(app.MasterAPIKey)) != 1 {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Unauthorized"})
		}

		return next(c)
	}
}
