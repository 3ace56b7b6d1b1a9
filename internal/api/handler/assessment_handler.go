package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/carepath/learning-platform/internal/core/ports"
)

// AssessmentHandler handles assessment and question routes.
type AssessmentHandler struct {
	service ports.AssessmentService
}

func NewAssessmentHandler(service ports.AssessmentService) *AssessmentHandler {
	return &AssessmentHandler{service: service}
}

// Create handles POST /v1/modules/:id/assessments (admin).
func (h *AssessmentHandler) Create(c echo.Context) error {
	var in ports.CreateAssessmentInput
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	in.ModuleID = c.Param("id")

	start := time.Now()
	return respond(c, "assessment.create", start, h.service.Create(c.Request().Context(), in))
}

// Delete handles DELETE /v1/assessments/:id (admin).
func (h *AssessmentHandler) Delete(c echo.Context) error {
	start := time.Now()
	return respond(c, "assessment.delete", start, h.service.Delete(c.Request().Context(), c.Param("id")))
}

// List handles GET /v1/modules/:id/assessments.
func (h *AssessmentHandler) List(c echo.Context) error {
	start := time.Now()
	return respond(c, "assessment.list", start, h.service.ListByModule(c.Request().Context(), c.Param("id")))
}

// CreateQuestion handles POST /v1/assessments/:id/questions (admin).
func (h *AssessmentHandler) CreateQuestion(c echo.Context) error {
	var in ports.CreateQuestionInput
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	in.AssessmentID = c.Param("id")

	start := time.Now()
	return respond(c, "question.create", start, h.service.CreateQuestion(c.Request().Context(), in))
}

// UpdateQuestion handles PUT /v1/questions/:id (admin).
func (h *AssessmentHandler) UpdateQuestion(c echo.Context) error {
	var in ports.UpdateQuestionInput
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	in.ID = c.Param("id")

	start := time.Now()
	return respond(c, "question.update", start, h.service.UpdateQuestion(c.Request().Context(), in))
}

// DeleteQuestion handles DELETE /v1/questions/:id (admin).
func (h *AssessmentHandler) DeleteQuestion(c echo.Context) error {
	start := time.Now()
	return respond(c, "question.delete", start, h.service.DeleteQuestion(c.Request().Context(), c.Param("id")))
}

// ListQuestions handles GET /v1/assessments/:id/questions.
func (h *AssessmentHandler) ListQuestions(c echo.Context) error {
	start := time.Now()
	return respond(c, "question.list", start, h.service.ListQuestions(c.Request().Context(), c.Param("id")))
}
