package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// RequireRole lets the request through only when the token role set by JWT
// is one of roles. It must run after JWT.
func RequireRole(roles ...string) echo.MiddlewareFunc {
	allowed := make(map[string]struct{}, len(roles))
	for _, r := range roles {
		allowed[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, _ := c.Get(ContextKeyUserRole).(string)
			if role == "" {
				return c.JSON(http.StatusForbidden, reject("Missing role"))
			}
			if _, ok := allowed[role]; !ok {
				return c.JSON(http.StatusForbidden, reject("Insufficient permissions"))
			}
			return next(c)
		}
	}
}
