// Package middleware provides shared request processing: session
// validation, role enforcement, the Redis response cache and the login
// rate limiter.
package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/vehicle-workshop/internal/utils"
)

// SessionAuth returns middleware that reads the session cookie, validates
// the signed role token and stores the role in the request context under
// "role" (and "user_id", since the account name is the role name).
// Requests without a valid session get a 401; the client is expected to
// send the user back to the login surface.
func SessionAuth(secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ck, err := c.Cookie(utils.SessionCookieName)
			if err != nil || ck.Value == "" {
				return c.JSON(http.StatusUnauthorized, echo.Map{"success": false, "message": "Not logged in"})
			}
			role, err := utils.ParseSessionToken(secret, ck.Value)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, echo.Map{"success": false, "message": "Invalid session"})
			}
			c.Set("role", role)
			c.Set("user_id", role)
			return next(c)
		}
	}
}
