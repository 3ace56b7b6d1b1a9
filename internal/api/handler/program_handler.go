package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/carepath/learning-platform/internal/core/ports"
)

// ProgramHandler handles program and category routes.
type ProgramHandler struct {
	service ports.ProgramService
}

func NewProgramHandler(service ports.ProgramService) *ProgramHandler {
	return &ProgramHandler{service: service}
}

// Create handles POST /v1/programs (admin).
//
// @Summary      Create a program
// @Tags         programs
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      ports.CreateProgramInput  true  "Program details"
// @Success      201   {object}  map[string]any
// @Failure      400   {object}  map[string]any
// @Failure      401   {object}  map[string]any
// @Failure      403   {object}  map[string]any
// @Router       /v1/programs [post]
func (h *ProgramHandler) Create(c echo.Context) error {
	var in ports.CreateProgramInput
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	start := time.Now()
	return respond(c, "program.create", start, h.service.Create(c.Request().Context(), in))
}

// Update handles PUT /v1/programs/:id (admin).
func (h *ProgramHandler) Update(c echo.Context) error {
	var in ports.UpdateProgramInput
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	in.ID = c.Param("id")

	start := time.Now()
	return respond(c, "program.update", start, h.service.Update(c.Request().Context(), in))
}

// Delete handles DELETE /v1/programs/:id (admin).
func (h *ProgramHandler) Delete(c echo.Context) error {
	start := time.Now()
	return respond(c, "program.delete", start, h.service.Delete(c.Request().Context(), c.Param("id")))
}

// Get handles GET /v1/programs/:id.
//
// @Summary      Get a program
// @Tags         programs
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Program id"
// @Success      200  {object}  map[string]any
// @Failure      401  {object}  map[string]any
// @Failure      404  {object}  map[string]any
// @Router       /v1/programs/{id} [get]
func (h *ProgramHandler) Get(c echo.Context) error {
	start := time.Now()
	return respond(c, "program.get", start, h.service.Get(c.Request().Context(), c.Param("id")))
}

// List handles GET /v1/programs?category=<id>.
func (h *ProgramHandler) List(c echo.Context) error {
	start := time.Now()
	return respond(c, "program.list", start, h.service.List(c.Request().Context(), c.QueryParam("category")))
}

// AssignCategories handles PUT /v1/programs/:id/categories (admin).
func (h *ProgramHandler) AssignCategories(c echo.Context) error {
	var in ports.AssignCategoriesInput
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	in.ProgramID = c.Param("id")

	start := time.Now()
	return respond(c, "program.assign_categories", start, h.service.AssignCategories(c.Request().Context(), in))
}

// CreateCategory handles POST /v1/categories (admin).
func (h *ProgramHandler) CreateCategory(c echo.Context) error {
	var in ports.CreateCategoryInput
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	start := time.Now()
	return respond(c, "category.create", start, h.service.CreateCategory(c.Request().Context(), in))
}

// ListCategories handles GET /v1/categories.
func (h *ProgramHandler) ListCategories(c echo.Context) error {
	start := time.Now()
	return respond(c, "category.list", start, h.service.ListCategories(c.Request().Context()))
}
