package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/carepath/learning-platform/internal/api/metrics"
	"github.com/carepath/learning-platform/internal/core/auth"
	"github.com/carepath/learning-platform/internal/core/ports"
)

// ViewCache stores rendered view payloads between mutations. Mutating actions
// emit revalidation hints carrying the same keys, so a cached payload lives at
// most until the next write that touches it evicts it.
type ViewCache interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, payload string) error
}

// MoodHandler handles patient mood routes.
type MoodHandler struct {
	service ports.MoodService
	cache   ViewCache
}

func NewMoodHandler(service ports.MoodService, cache ViewCache) *MoodHandler {
	return &MoodHandler{service: service, cache: cache}
}

// Log handles POST /v1/moods (patient).
//
// @Summary      Log a mood entry
// @Tags         moods
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      ports.LogMoodInput  true  "Mood entry"
// @Success      201   {object}  map[string]any
// @Failure      400   {object}  map[string]any
// @Failure      401   {object}  map[string]any
// @Failure      403   {object}  map[string]any
// @Router       /v1/moods [post]
func (h *MoodHandler) Log(c echo.Context) error {
	var in ports.LogMoodInput
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	start := time.Now()
	resp := h.service.Log(c.Request().Context(), in)
	if resp.Success {
		metrics.MoodEntriesRecordedTotal.WithLabelValues(in.MoodType).Inc()
	}
	return respond(c, "mood.log", start, resp)
}

// Recent handles GET /v1/moods?limit=N (patient).
//
// @Summary      List recent mood entries
// @Tags         moods
// @Produce      json
// @Security     BearerAuth
// @Param        limit  query     int  false  "Max entries (default 30, cap 100)"
// @Success      200    {object}  map[string]any
// @Failure      401    {object}  map[string]any
// @Router       /v1/moods [get]
func (h *MoodHandler) Recent(c echo.Context) error {
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	start := time.Now()
	ctx := c.Request().Context()

	// Only the default-shaped request is served from the cache: its key is
	// the one mood mutations hint for eviction. The key is scoped to the
	// caller, so a hit can only replay that caller's own previous success.
	key := ""
	if h.cache != nil && limit <= 0 {
		if id, ok := auth.IdentityFromContext(ctx); ok {
			key = "moods:" + id.ID
			if payload, hit, err := h.cache.Get(ctx, key); err == nil && hit {
				metrics.ActionsTotal.WithLabelValues("mood.recent", "success").Inc()
				metrics.ActionDuration.WithLabelValues("mood.recent").Observe(time.Since(start).Seconds())
				return c.JSONBlob(http.StatusOK, []byte(payload))
			}
		}
	}

	resp := h.service.Recent(ctx, limit)
	if key != "" && resp.Success {
		if payload, err := json.Marshal(resp); err == nil {
			_ = h.cache.Set(ctx, key, string(payload))
		}
	}
	return respond(c, "mood.recent", start, resp)
}
