package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/carepath/learning-platform/internal/core/action"
	"github.com/carepath/learning-platform/internal/core/auth"
	"github.com/carepath/learning-platform/internal/core/domain"
	"github.com/carepath/learning-platform/internal/core/ports"
)

type stubMoodService struct {
	logResp     action.Response[domain.MoodEntry]
	recentResp  action.Response[[]domain.MoodEntry]
	lastInput   ports.LogMoodInput
	lastLimit   int
	recentCalls int
}

func (s *stubMoodService) Log(_ context.Context, in ports.LogMoodInput) action.Response[domain.MoodEntry] {
	s.lastInput = in
	return s.logResp
}

func (s *stubMoodService) Recent(_ context.Context, limit int) action.Response[[]domain.MoodEntry] {
	s.lastLimit = limit
	s.recentCalls++
	return s.recentResp
}

type stubViewCache struct {
	store map[string]string
	sets  []string
}

func newStubViewCache() *stubViewCache {
	return &stubViewCache{store: make(map[string]string)}
}

func (s *stubViewCache) Get(_ context.Context, key string) (string, bool, error) {
	v, ok := s.store[key]
	return v, ok, nil
}

func (s *stubViewCache) Set(_ context.Context, key, payload string) error {
	s.store[key] = payload
	s.sets = append(s.sets, key)
	return nil
}

func TestMoodHandler_Log_Success(t *testing.T) {
	entry := domain.MoodEntry{ID: "m1", PatientID: "p1", MoodType: domain.MoodCalm, MoodScore: 8}
	svc := &stubMoodService{logResp: action.Created(entry)}
	h := NewMoodHandler(svc, nil)

	body := `{"moodType":"calm","moodScore":8,"note":"quiet evening"}`
	req := httptest.NewRequest(http.MethodPost, "/v1/moods", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(req, rec)

	if err := h.Log(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	if svc.lastInput.MoodType != "calm" || svc.lastInput.MoodScore != 8 {
		t.Fatalf("input not bound: %+v", svc.lastInput)
	}

	var resp struct {
		Success bool             `json:"success"`
		Data    domain.MoodEntry `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if !resp.Success || resp.Data.ID != "m1" {
		t.Fatalf("unexpected envelope: %s", rec.Body.String())
	}
}

func TestMoodHandler_Log_EnvelopeStatusDrivesHTTPStatus(t *testing.T) {
	svc := &stubMoodService{logResp: action.Denied[domain.MoodEntry]()}
	h := NewMoodHandler(svc, nil)

	req := httptest.NewRequest(http.MethodPost, "/v1/moods", strings.NewReader(`{"moodType":"calm","moodScore":8}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(req, rec)

	if err := h.Log(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}

	var resp struct {
		Success bool          `json:"success"`
		Error   *action.Fault `json:"error"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if resp.Success || resp.Error == nil {
		t.Fatalf("unexpected envelope: %s", rec.Body.String())
	}
}

func TestMoodHandler_Log_MalformedBody(t *testing.T) {
	h := NewMoodHandler(&stubMoodService{}, nil)

	req := httptest.NewRequest(http.MethodPost, "/v1/moods", strings.NewReader(`{not json`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(req, rec)

	err := h.Log(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 HTTPError, got %v", err)
	}
}

func TestMoodHandler_Recent_ParsesLimit(t *testing.T) {
	svc := &stubMoodService{recentResp: action.OK([]domain.MoodEntry{})}
	h := NewMoodHandler(svc, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/moods?limit=15", nil)
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(req, rec)

	if err := h.Recent(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if svc.lastLimit != 15 {
		t.Fatalf("expected limit 15, got %d", svc.lastLimit)
	}
}

func recentRequest(identityID, query string) (*httptest.ResponseRecorder, echo.Context) {
	req := httptest.NewRequest(http.MethodGet, "/v1/moods"+query, nil)
	if identityID != "" {
		ctx := auth.WithIdentity(req.Context(), &domain.Identity{ID: identityID})
		req = req.WithContext(ctx)
	}
	rec := httptest.NewRecorder()
	return rec, echo.New().NewContext(req, rec)
}

func TestMoodHandler_Recent_PopulatesAndServesViewCache(t *testing.T) {
	entries := []domain.MoodEntry{{ID: "m1", PatientID: "p1", MoodType: domain.MoodHappy, MoodScore: 8}}
	svc := &stubMoodService{recentResp: action.OK(entries)}
	cache := newStubViewCache()
	h := NewMoodHandler(svc, cache)

	rec, c := recentRequest("p1", "")
	if err := h.Recent(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	// The cache key must match the hint the mood write emits, or the
	// revalidation worker would never evict this payload.
	if len(cache.sets) != 1 || cache.sets[0] != "moods:p1" {
		t.Fatalf("expected payload cached under moods:p1, got %v", cache.sets)
	}
	firstBody := rec.Body.String()

	rec2, c2 := recentRequest("p1", "")
	if err := h.Recent(c2); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if svc.recentCalls != 1 {
		t.Fatalf("expected second request served from cache, service called %d times", svc.recentCalls)
	}
	if rec2.Body.String() != firstBody {
		t.Fatalf("cached payload differs from original:\n%s\n%s", firstBody, rec2.Body.String())
	}

	// A mood write hints moods:p1; once the worker drops that key the next
	// read must reach the store again instead of replaying the stale view.
	delete(cache.store, "moods:p1")
	_, c3 := recentRequest("p1", "")
	if err := h.Recent(c3); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if svc.recentCalls != 2 {
		t.Fatalf("expected invalidated key to fall through to the service, got %d calls", svc.recentCalls)
	}
}

func TestMoodHandler_Recent_ExplicitLimitBypassesCache(t *testing.T) {
	svc := &stubMoodService{recentResp: action.OK([]domain.MoodEntry{})}
	cache := newStubViewCache()
	cache.store["moods:p1"] = `{"success":true,"data":[{"id":"stale"}],"status":200}`
	h := NewMoodHandler(svc, cache)

	_, c := recentRequest("p1", "?limit=5")
	if err := h.Recent(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if svc.recentCalls != 1 {
		t.Fatalf("explicit limit must skip the cache, service called %d times", svc.recentCalls)
	}
	if len(cache.sets) != 0 {
		t.Fatalf("explicit-limit response must not be cached, got sets %v", cache.sets)
	}
}

func TestMoodHandler_Recent_AnonymousAndFailuresNotCached(t *testing.T) {
	svc := &stubMoodService{recentResp: action.Denied[[]domain.MoodEntry]()}
	cache := newStubViewCache()
	h := NewMoodHandler(svc, cache)

	// Anonymous caller: no key to cache under.
	_, c := recentRequest("", "")
	if err := h.Recent(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	// Authenticated but unsuccessful: failure envelopes are never cached.
	_, c2 := recentRequest("p1", "")
	if err := h.Recent(c2); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if len(cache.sets) != 0 {
		t.Fatalf("expected nothing cached, got %v", cache.sets)
	}
}

func TestMoodHandler_Recent_BadLimitFallsThrough(t *testing.T) {
	svc := &stubMoodService{recentResp: action.OK([]domain.MoodEntry{})}
	h := NewMoodHandler(svc, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/moods?limit=abc", nil)
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(req, rec)

	if err := h.Recent(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	// Unparseable limit reads as zero; the service applies its default.
	if svc.lastLimit != 0 {
		t.Fatalf("expected limit 0 for bad input, got %d", svc.lastLimit)
	}
}
