package handler

import (
	"fmt"
	"html"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/carepath/learning-platform/internal/core/domain"
)

// PageHandler renders the minimal server-side pages. The real frontends live
// elsewhere; these exist so the page-mode guard has destinations to protect
// and redirect to.
type PageHandler struct{}

func NewPageHandler() *PageHandler {
	return &PageHandler{}
}

// Login handles GET /login. Always public.
func (h *PageHandler) Login(c echo.Context) error {
	return c.HTML(http.StatusOK, `<!doctype html><title>Sign in</title><h1>Sign in</h1><p>POST /auth/login with your credentials.</p>`)
}

// Admin handles GET /admin, protected by the admin page guard.
func (h *PageHandler) Admin(c echo.Context) error {
	profile := c.Get("profile").(*domain.Profile)
	return c.HTML(http.StatusOK, fmt.Sprintf(
		`<!doctype html><title>Admin</title><h1>Admin dashboard</h1><p>Signed in as %s %s.</p>`,
		html.EscapeString(profile.FirstName), html.EscapeString(profile.LastName)))
}

// Home handles GET /home, protected by the patient page guard.
func (h *PageHandler) Home(c echo.Context) error {
	profile := c.Get("profile").(*domain.Profile)
	return c.HTML(http.StatusOK, fmt.Sprintf(
		`<!doctype html><title>Home</title><h1>Welcome back, %s</h1><p>Your programs and mood log live under /v1.</p>`,
		html.EscapeString(profile.FirstName)))
}
