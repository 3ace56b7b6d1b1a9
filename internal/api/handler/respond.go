package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/carepath/learning-platform/internal/api/metrics"
	"github.com/carepath/learning-platform/internal/core/action"
)

// respond writes an action envelope as JSON, mirroring its status on the
// HTTP response, and records the action metrics.
func respond[T any](c echo.Context, name string, started time.Time, resp action.Response[T]) error {
	metrics.ActionsTotal.WithLabelValues(name, resultLabel(resp.Success, resp.Status)).Inc()
	metrics.ActionDuration.WithLabelValues(name).Observe(time.Since(started).Seconds())
	return c.JSON(resp.HTTPStatus(), resp)
}

func resultLabel(success bool, status int) string {
	switch {
	case success:
		return "success"
	case status == http.StatusBadRequest:
		return "invalid"
	case status == http.StatusUnauthorized:
		return "unauthenticated"
	case status == http.StatusForbidden:
		return "denied"
	default:
		return "error"
	}
}
