package action

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/carepath/learning-platform/internal/core/domain"
)

type payload struct {
	Name string `json:"name"`
}

func TestEnvelopeExclusivity(t *testing.T) {
	ok := OK(payload{Name: "x"})
	if !ok.Success || ok.Data == nil || ok.Error != nil {
		t.Fatalf("success envelope malformed: %+v", ok)
	}

	fail := Fail[payload](http.StatusNotFound, "missing")
	if fail.Success || fail.Data != nil || fail.Error == nil {
		t.Fatalf("failure envelope malformed: %+v", fail)
	}
}

func TestEnvelopeJSONShape(t *testing.T) {
	b, err := json.Marshal(OK(payload{Name: "x"}))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var m map[string]any
	if err := json.Unmarshal(b, &m); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if _, present := m["error"]; present {
		t.Fatalf("success envelope must omit error, got %s", b)
	}

	b, _ = json.Marshal(Fail[payload](http.StatusConflict, "dup"))
	m = map[string]any{}
	_ = json.Unmarshal(b, &m)
	if _, present := m["data"]; present {
		t.Fatalf("failure envelope must omit data, got %s", b)
	}
}

func TestInvalidCarriesFieldErrors(t *testing.T) {
	resp := Invalid[payload](map[string][]string{"name": {"name is required"}})
	if resp.Status != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.Status)
	}
	if resp.Error.Message != "Validation failed" {
		t.Fatalf("unexpected message: %q", resp.Error.Message)
	}
	if len(resp.Error.FieldErrors["name"]) != 1 {
		t.Fatalf("expected field errors, got %v", resp.Error.FieldErrors)
	}
}

func TestFromError(t *testing.T) {
	cases := []struct {
		err    error
		status int
	}{
		{domain.ErrNotAuthenticated, http.StatusUnauthorized},
		{domain.ErrAccessDenied, http.StatusForbidden},
		{domain.ErrProgramNotFound, http.StatusNotFound},
		{domain.ErrModuleNotFound, http.StatusNotFound},
		{domain.ErrAlreadyEnrolled, http.StatusConflict},
		{domain.ErrProfileExists, http.StatusConflict},
		{domain.ErrInvalidCredentials, http.StatusUnauthorized},
		{errors.New("disk on fire"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		resp := FromError[payload](tc.err)
		if resp.Status != tc.status {
			t.Fatalf("FromError(%v) status = %d, want %d", tc.err, resp.Status, tc.status)
		}
		if resp.Success {
			t.Fatalf("FromError(%v) must not succeed", tc.err)
		}
	}
}

func TestFromError_WrappedSentinel(t *testing.T) {
	wrapped := errors.Join(errors.New("context"), domain.ErrProgramNotFound)
	if resp := FromError[payload](wrapped); resp.Status != http.StatusNotFound {
		t.Fatalf("wrapped sentinel lost: %+v", resp)
	}
}

func TestFromError_NeverLeaksCause(t *testing.T) {
	resp := FromError[payload](errors.New("pq: connection refused at 10.0.0.3"))
	if resp.Error.Message != "internal error" {
		t.Fatalf("backend fault leaked to caller: %q", resp.Error.Message)
	}
}

func TestHTTPStatus(t *testing.T) {
	if got := OK(payload{}).HTTPStatus(); got != http.StatusOK {
		t.Fatalf("expected 200, got %d", got)
	}
	if got := Created(payload{}).HTTPStatus(); got != http.StatusCreated {
		t.Fatalf("expected 201, got %d", got)
	}
	if got := (Response[payload]{Success: false}).HTTPStatus(); got != http.StatusInternalServerError {
		t.Fatalf("expected 500 fallback, got %d", got)
	}
}
