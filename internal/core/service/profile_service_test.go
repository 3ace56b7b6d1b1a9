package service

import (
	"context"
	"net/http"
	"testing"
)

func TestProfileService_Me(t *testing.T) {
	svc := NewProfileService(testGuard(patientProfile("p1")))

	resp := svc.Me(identityCtx("p1"))
	if !resp.Success {
		t.Fatalf("expected success, got %+v", resp)
	}
	if resp.Data.ID != "p1" {
		t.Fatalf("expected caller's own profile, got %+v", resp.Data)
	}
}

func TestProfileService_Me_Anonymous(t *testing.T) {
	svc := NewProfileService(testGuard())

	resp := svc.Me(context.Background())
	if resp.Status != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", resp.Status)
	}
}
