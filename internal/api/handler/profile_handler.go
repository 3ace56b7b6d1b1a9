package handler

import (
	"time"

	"github.com/labstack/echo/v4"

	"github.com/carepath/learning-platform/internal/core/ports"
)

// ProfileHandler exposes the caller's own profile.
type ProfileHandler struct {
	service ports.ProfileService
}

func NewProfileHandler(service ports.ProfileService) *ProfileHandler {
	return &ProfileHandler{service: service}
}

// Me handles GET /v1/me.
//
// @Summary      Current profile
// @Tags         profiles
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]any
// @Failure      401  {object}  map[string]any
// @Router       /v1/me [get]
func (h *ProfileHandler) Me(c echo.Context) error {
	start := time.Now()
	return respond(c, "profile.me", start, h.service.Me(c.Request().Context()))
}
