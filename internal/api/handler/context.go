package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// ctxIdentity extracts the caller identity injected by the Auth middleware.
// A missing user_id means the middleware did not run; reject with 401
// rather than proceed with an empty caller.
func ctxIdentity(c echo.Context) (userID string, isAdmin bool, err error) {
	userID, _ = c.Get("user_id").(string)
	if userID == "" {
		return "", false, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}

	isAdmin, _ = c.Get("is_admin").(bool)
	return userID, isAdmin, nil
}
