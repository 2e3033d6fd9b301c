package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
)

// RequireSelf enforces that the email query parameter matches the
// authenticated identity. It runs before any role lookup or store access, so
// a caller probing another identity's resources is rejected without touching
// that identity's data.
func RequireSelf() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			requested := c.QueryParam("email")
			if requested == "" {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "email query parameter is required"})
			}

			authenticated, ok := c.Get(ContextKeyUserEmail).(string)
			if !ok || !strings.EqualFold(requested, authenticated) {
				return c.JSON(http.StatusForbidden, map[string]string{"error": "forbidden access"})
			}

			return next(c)
		}
	}
}
