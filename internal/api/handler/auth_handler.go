package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/carepath/learning-platform/internal/api/metrics"
	"github.com/carepath/learning-platform/internal/core/ports"
)

// AuthHandler handles registration and login.
type AuthHandler struct {
	service ports.AuthService
}

func NewAuthHandler(service ports.AuthService) *AuthHandler {
	return &AuthHandler{service: service}
}

// Register creates a new profile.
//
// @Summary      Register a new profile
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      ports.RegisterInput  true  "Registration details"
// @Success      201   {object}  map[string]any
// @Failure      400   {object}  map[string]any
// @Failure      409   {object}  map[string]any
// @Router       /auth/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var in ports.RegisterInput
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	start := time.Now()
	resp := h.service.Register(c.Request().Context(), in)
	return respond(c, "auth.register", start, resp)
}

// Login authenticates a profile and returns a JWT token.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      ports.LoginInput  true  "Login credentials"
// @Success      200   {object}  map[string]any
// @Failure      400   {object}  map[string]any
// @Failure      401   {object}  map[string]any
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var in ports.LoginInput
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	start := time.Now()
	resp := h.service.Login(c.Request().Context(), in)
	if !resp.Success && resp.Status == http.StatusUnauthorized {
		metrics.AuthFailuresTotal.WithLabelValues("invalid_credentials").Inc()
	}
	return respond(c, "auth.login", start, resp)
}
