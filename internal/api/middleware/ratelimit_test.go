package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"golang.org/x/time/rate"
)

func rateLimitedRequest(rl *RateLimiter, remoteAddr string) error {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/v1/programs", nil)
	req.RemoteAddr = remoteAddr
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := rl.Middleware()(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	return handler(c)
}

func TestRateLimiter_EnforcesBurstPerClient(t *testing.T) {
	rl := NewRateLimiter(RateLimitConfig{
		Rate:            rate.Limit(1.0 / 60.0),
		Burst:           2,
		CleanupInterval: time.Minute,
	})
	defer rl.Stop()

	for i := 0; i < 2; i++ {
		if err := rateLimitedRequest(rl, "10.0.0.1:1234"); err != nil {
			t.Fatalf("request %d within burst rejected: %v", i+1, err)
		}
	}

	err := rateLimitedRequest(rl, "10.0.0.1:1234")
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusTooManyRequests {
		t.Fatalf("expected 429 past the burst, got %v", err)
	}

	// A different client keeps its own bucket.
	if err := rateLimitedRequest(rl, "10.0.0.2:1234"); err != nil {
		t.Fatalf("separate client must not share the exhausted bucket: %v", err)
	}
}

func TestRateLimiter_StopEndsCleanup(t *testing.T) {
	rl := NewRateLimiter(RateLimitConfig{
		Rate:            rate.Limit(1),
		Burst:           1,
		CleanupInterval: time.Millisecond,
	})
	rl.Stop()

	// The limiter still answers after Stop; only the reaper is gone.
	if err := rateLimitedRequest(rl, "10.0.0.3:1234"); err != nil {
		t.Fatalf("stopped limiter must still serve: %v", err)
	}
}
