package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// RequireAdmin rejects callers whose verified claims lack the admin flag.
// It must run after Auth.
func RequireAdmin() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			isAdmin, _ := c.Get(ContextIsAdmin).(bool)
			if !isAdmin {
				return c.JSON(http.StatusForbidden, map[string]string{"error": "Admin access required"})
			}
			return next(c)
		}
	}
}
