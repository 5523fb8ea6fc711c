package middleware // middleware provides shared request processing for handlers

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/skyward/flight-seat-booking/internal/utils"
)

// SessionValidator checks that a session token hash resolves to a live
// (unexpired, unrevoked) admin session and returns the admin it belongs to.
type SessionValidator interface {
	Validate(ctx context.Context, tokenHash string) (string, error)
}

// AdminSession returns a middleware that gates admin routes.  It reads the
// session cookie, verifies the JWT signature and then confirms the token
// still maps to a live row in the session store.  Any failure redirects to
// the login form; an unauthenticated visit is a gate, not an error surfaced
// to the user.  On success the admin username is stored in the context
// under "admin_username".
func AdminSession(secret string, sessions SessionValidator) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Cookie(utils.SessionCookie)
			if err != nil || cookie.Value == "" {
				return c.Redirect(http.StatusFound, "/admin/login")
			}
			username, err := utils.ParseSessionToken(secret, cookie.Value)
			if err != nil {
				return c.Redirect(http.StatusFound, "/admin/login")
			}
			stored, err := sessions.Validate(c.Request().Context(), utils.HashSessionRaw(cookie.Value))
			if err != nil || stored != username {
				return c.Redirect(http.StatusFound, "/admin/login")
			}
			c.Set("admin_username", username)
			return next(c)
		}
	}
}
