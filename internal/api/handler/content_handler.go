package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/carepath/learning-platform/internal/core/ports"
)

// ContentHandler handles module and content item routes.
type ContentHandler struct {
	modules  ports.ModuleService
	contents ports.ContentService
}

func NewContentHandler(modules ports.ModuleService, contents ports.ContentService) *ContentHandler {
	return &ContentHandler{modules: modules, contents: contents}
}

// CreateModule handles POST /v1/programs/:id/modules (admin).
func (h *ContentHandler) CreateModule(c echo.Context) error {
	var in ports.CreateModuleInput
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	in.ProgramID = c.Param("id")

	start := time.Now()
	return respond(c, "module.create", start, h.modules.Create(c.Request().Context(), in))
}

// UpdateModule handles PUT /v1/modules/:id (admin).
func (h *ContentHandler) UpdateModule(c echo.Context) error {
	var in ports.UpdateModuleInput
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	in.ID = c.Param("id")

	start := time.Now()
	return respond(c, "module.update", start, h.modules.Update(c.Request().Context(), in))
}

// DeleteModule handles DELETE /v1/modules/:id (admin).
func (h *ContentHandler) DeleteModule(c echo.Context) error {
	start := time.Now()
	return respond(c, "module.delete", start, h.modules.Delete(c.Request().Context(), c.Param("id")))
}

// ListModules handles GET /v1/programs/:id/modules.
func (h *ContentHandler) ListModules(c echo.Context) error {
	start := time.Now()
	return respond(c, "module.list", start, h.modules.ListByProgram(c.Request().Context(), c.Param("id")))
}

// CreateContent handles POST /v1/modules/:id/contents (admin).
//
// @Summary      Create a content item
// @Tags         contents
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                    true  "Module id"
// @Param        body  body      ports.CreateContentInput  true  "Content details"
// @Success      201   {object}  map[string]any
// @Failure      400   {object}  map[string]any
// @Failure      403   {object}  map[string]any
// @Router       /v1/modules/{id}/contents [post]
func (h *ContentHandler) CreateContent(c echo.Context) error {
	var in ports.CreateContentInput
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	in.ModuleID = c.Param("id")

	start := time.Now()
	return respond(c, "content.create", start, h.contents.Create(c.Request().Context(), in))
}

// UpdateContent handles PUT /v1/contents/:id (admin).
func (h *ContentHandler) UpdateContent(c echo.Context) error {
	var in ports.UpdateContentInput
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	in.ID = c.Param("id")

	start := time.Now()
	return respond(c, "content.update", start, h.contents.Update(c.Request().Context(), in))
}

// DeleteContent handles DELETE /v1/contents/:id (admin).
func (h *ContentHandler) DeleteContent(c echo.Context) error {
	start := time.Now()
	return respond(c, "content.delete", start, h.contents.Delete(c.Request().Context(), c.Param("id")))
}

// GetContent handles GET /v1/contents/:id.
func (h *ContentHandler) GetContent(c echo.Context) error {
	start := time.Now()
	return respond(c, "content.get", start, h.contents.Get(c.Request().Context(), c.Param("id")))
}

// ListContents handles GET /v1/modules/:id/contents.
func (h *ContentHandler) ListContents(c echo.Context) error {
	start := time.Now()
	return respond(c, "content.list", start, h.contents.ListByModule(c.Request().Context(), c.Param("id")))
}
