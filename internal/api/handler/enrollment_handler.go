package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/carepath/learning-platform/internal/api/metrics"
	"github.com/carepath/learning-platform/internal/core/ports"
)

// EnrollmentHandler handles enrollment routes.
type EnrollmentHandler struct {
	service ports.EnrollmentService
}

func NewEnrollmentHandler(service ports.EnrollmentService) *EnrollmentHandler {
	return &EnrollmentHandler{service: service}
}

// Enroll handles POST /v1/enrollments (patient).
//
// @Summary      Enroll in a program
// @Tags         enrollments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      ports.EnrollInput  true  "Enrollment request"
// @Success      201   {object}  map[string]any
// @Failure      401   {object}  map[string]any
// @Failure      404   {object}  map[string]any
// @Failure      409   {object}  map[string]any
// @Router       /v1/enrollments [post]
func (h *EnrollmentHandler) Enroll(c echo.Context) error {
	var in ports.EnrollInput
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	start := time.Now()
	resp := h.service.Enroll(c.Request().Context(), in)
	if resp.Success {
		metrics.EnrollmentsCreatedTotal.Inc()
	}
	return respond(c, "enrollment.enroll", start, resp)
}

// Mine handles GET /v1/enrollments (patient).
func (h *EnrollmentHandler) Mine(c echo.Context) error {
	start := time.Now()
	return respond(c, "enrollment.mine", start, h.service.Mine(c.Request().Context()))
}

// Stats handles GET /v1/admin/enrollments/stats?days=N (admin).
//
// @Summary      Enrollment statistics over a trailing window
// @Tags         enrollments
// @Produce      json
// @Security     BearerAuth
// @Param        days  query     int  false  "Window size in days (default 7, cap 90)"
// @Success      200   {object}  map[string]any
// @Failure      401   {object}  map[string]any
// @Failure      403   {object}  map[string]any
// @Router       /v1/admin/enrollments/stats [get]
func (h *EnrollmentHandler) Stats(c echo.Context) error {
	days, _ := strconv.Atoi(c.QueryParam("days"))

	start := time.Now()
	return respond(c, "enrollment.stats", start, h.service.Stats(c.Request().Context(), days))
}
