package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/praktyka/records-api/internal/core/token"
)

// Auth validates the bearer token and injects the caller identity into the
// request context. It performs no database access; handlers downstream read
// the identity via c.Get("user_id") / c.Get("is_admin").
func Auth(tokens *token.Manager) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "Access denied")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return echo.NewHTTPError(http.StatusUnauthorized, "Access denied")
			}

			claims, err := tokens.Verify(parts[1])
			if err != nil {
				if errors.Is(err, token.ErrMalformed) {
					return echo.NewHTTPError(http.StatusForbidden, "Invalid token")
				}
				return echo.NewHTTPError(http.StatusForbidden, "Invalid or expired token")
			}

			c.Set("user_id", claims.UserID)
			c.Set("is_admin", claims.IsAdmin)

			return next(c)
		}
	}
}
