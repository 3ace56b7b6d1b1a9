package middleware

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/carepath/learning-platform/internal/core/auth"
	"github.com/carepath/learning-platform/internal/core/domain"
)

const loginPath = "/login"

// PageGuard is the page-mode role guard: it never returns an envelope, it
// redirects. Anonymous callers land on the login page; callers with a missing
// profile land on the login page; callers with the wrong role land on their
// own role's home. On success the resolved profile is stored under the
// "profile" context key for the page handler.
//
// Its action-mode counterpart is auth.Guard, which always returns. Keep the
// two apart: a redirect inside a data action would break non-navigational
// callers.
func PageGuard(guard *auth.Guard, role domain.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			profile, err := guard.Resolve(c.Request().Context())
			if err != nil {
				// Both "no session" and "no profile" land on login.
				if errors.Is(err, domain.ErrNotAuthenticated) || errors.Is(err, domain.ErrAccessDenied) {
					return c.Redirect(http.StatusFound, loginPath)
				}
				return err
			}
			if profile.Role != role {
				return c.Redirect(http.StatusFound, profile.Role.HomePath())
			}

			c.Set("profile", profile)
			return next(c)
		}
	}
}
