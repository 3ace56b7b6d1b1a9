package service

import (
	"net/http"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/carepath/learning-platform/internal/core/domain"
	"github.com/carepath/learning-platform/internal/core/ports"
)

func publishedProgram(id string, categoryIDs ...string) *domain.Program {
	return &domain.Program{ID: id, Title: "Program " + id, Published: true, CategoryIDs: categoryIDs}
}

func TestEnrollmentService_Enroll_Success(t *testing.T) {
	enrollments := &stubEnrollmentRepo{}
	programs := newStubProgramRepo(publishedProgram("prog1"))
	reval := &stubRevalidator{}
	svc := NewEnrollmentService(testGuard(patientProfile("p1")), enrollments, programs, newStubCategoryRepo(), reval, zerolog.Nop())

	resp := svc.Enroll(identityCtx("p1"), ports.EnrollInput{ProgramID: "prog1"})

	if !resp.Success || resp.Status != http.StatusCreated {
		t.Fatalf("expected 201 success, got success=%v status=%d", resp.Success, resp.Status)
	}
	if resp.Data.PatientID != "p1" || resp.Data.ProgramID != "prog1" {
		t.Fatalf("unexpected enrollment: %+v", resp.Data)
	}
	if resp.Data.Status != domain.EnrollmentActive {
		t.Fatalf("expected active status, got %s", resp.Data.Status)
	}
	if len(reval.hints) != 1 {
		t.Fatalf("expected one revalidation hint, got %v", reval.hints)
	}
}

func TestEnrollmentService_Enroll_Duplicate(t *testing.T) {
	enrollments := &stubEnrollmentRepo{}
	programs := newStubProgramRepo(publishedProgram("prog1"))
	svc := NewEnrollmentService(testGuard(patientProfile("p1")), enrollments, programs, newStubCategoryRepo(), &stubRevalidator{}, zerolog.Nop())
	ctx := identityCtx("p1")

	if resp := svc.Enroll(ctx, ports.EnrollInput{ProgramID: "prog1"}); !resp.Success {
		t.Fatalf("first enrollment failed: %+v", resp)
	}

	resp := svc.Enroll(ctx, ports.EnrollInput{ProgramID: "prog1"})
	if resp.Success || resp.Status != http.StatusConflict {
		t.Fatalf("expected 409 on duplicate, got success=%v status=%d", resp.Success, resp.Status)
	}
	if len(enrollments.enrollments) != 1 {
		t.Fatalf("expected single stored enrollment, got %d", len(enrollments.enrollments))
	}
}

func TestEnrollmentService_Enroll_DraftInvisible(t *testing.T) {
	draft := &domain.Program{ID: "draft1", Title: "Draft", Published: false}
	svc := NewEnrollmentService(testGuard(patientProfile("p1")), &stubEnrollmentRepo{}, newStubProgramRepo(draft), newStubCategoryRepo(), &stubRevalidator{}, zerolog.Nop())

	resp := svc.Enroll(identityCtx("p1"), ports.EnrollInput{ProgramID: "draft1"})
	if resp.Status != http.StatusNotFound {
		t.Fatalf("expected draft to read as 404, got %d", resp.Status)
	}
}

func TestEnrollmentService_Enroll_AdminDenied(t *testing.T) {
	svc := NewEnrollmentService(testGuard(adminProfile("a1")), &stubEnrollmentRepo{}, newStubProgramRepo(publishedProgram("prog1")), newStubCategoryRepo(), &stubRevalidator{}, zerolog.Nop())

	resp := svc.Enroll(identityCtx("a1"), ports.EnrollInput{ProgramID: "prog1"})
	if resp.Status != http.StatusForbidden {
		t.Fatalf("expected 403 for admin caller, got %d", resp.Status)
	}
}

func TestEnrollmentService_Stats_Window(t *testing.T) {
	now := time.Date(2026, 8, 23, 15, 30, 0, 0, time.UTC)

	enrollments := &stubEnrollmentRepo{enrollments: []*domain.Enrollment{
		{ID: "e1", PatientID: "p1", ProgramID: "prog1", EnrolledAt: now.Add(-2 * time.Hour)},
		{ID: "e2", PatientID: "p2", ProgramID: "prog1", EnrolledAt: now.AddDate(0, 0, -1)},
		{ID: "e3", PatientID: "p3", ProgramID: "prog2", EnrolledAt: now.AddDate(0, 0, -1)},
		// Outside the 3-day window, must not be counted.
		{ID: "e4", PatientID: "p4", ProgramID: "prog1", EnrolledAt: now.AddDate(0, 0, -5)},
	}}
	programs := newStubProgramRepo(
		publishedProgram("prog1", "cat1"),
		publishedProgram("prog2", "cat1", "cat2"),
	)
	categories := newStubCategoryRepo(
		&domain.Category{ID: "cat1", Name: "Anxiety"},
		&domain.Category{ID: "cat2", Name: "Sleep"},
	)

	svc := NewEnrollmentService(testGuard(adminProfile("a1")), enrollments, programs, categories, &stubRevalidator{}, zerolog.Nop())
	svc.now = func() time.Time { return now }

	resp := svc.Stats(identityCtx("a1"), 3)
	if !resp.Success {
		t.Fatalf("expected success, got %+v", resp)
	}
	stats := *resp.Data

	if stats.Days != 3 {
		t.Fatalf("expected 3-day window, got %d", stats.Days)
	}
	if stats.Total != 3 {
		t.Fatalf("expected total 3 inside window, got %d", stats.Total)
	}
	if len(stats.Series) != 3 {
		t.Fatalf("expected one bucket per day, got %d", len(stats.Series))
	}

	// Exact trailing window, today inclusive, zero days present.
	want := []ports.DailyCount{
		{Date: "2026-08-21", Count: 0},
		{Date: "2026-08-22", Count: 2},
		{Date: "2026-08-23", Count: 1},
	}
	for i, w := range want {
		if stats.Series[i] != w {
			t.Fatalf("series[%d] = %+v, want %+v", i, stats.Series[i], w)
		}
	}

	// cat1 collects all 3 enrollments, cat2 only prog2's one.
	if len(stats.Categories) != 2 {
		t.Fatalf("expected 2 categories, got %+v", stats.Categories)
	}
	if stats.Categories[0].Name != "Anxiety" || stats.Categories[0].Count != 3 {
		t.Fatalf("unexpected top category: %+v", stats.Categories[0])
	}
	if stats.Categories[1].Name != "Sleep" || stats.Categories[1].Count != 1 {
		t.Fatalf("unexpected second category: %+v", stats.Categories[1])
	}
}

func TestEnrollmentService_Stats_DaysBounds(t *testing.T) {
	svc := NewEnrollmentService(testGuard(adminProfile("a1")), &stubEnrollmentRepo{}, newStubProgramRepo(), newStubCategoryRepo(), &stubRevalidator{}, zerolog.Nop())
	ctx := identityCtx("a1")

	if resp := svc.Stats(ctx, 0); resp.Data.Days != 7 {
		t.Fatalf("expected default 7 days, got %d", resp.Data.Days)
	}
	if resp := svc.Stats(ctx, 365); resp.Data.Days != 90 {
		t.Fatalf("expected days capped at 90, got %d", resp.Data.Days)
	}
}

func TestEnrollmentService_Stats_PatientDenied(t *testing.T) {
	svc := NewEnrollmentService(testGuard(patientProfile("p1")), &stubEnrollmentRepo{}, newStubProgramRepo(), newStubCategoryRepo(), &stubRevalidator{}, zerolog.Nop())

	resp := svc.Stats(identityCtx("p1"), 7)
	if resp.Status != http.StatusForbidden {
		t.Fatalf("expected 403 for patient caller, got %d", resp.Status)
	}
}

func TestEnrollmentService_Mine(t *testing.T) {
	enrollments := &stubEnrollmentRepo{enrollments: []*domain.Enrollment{
		{ID: "e1", PatientID: "p1", ProgramID: "prog1"},
		{ID: "e2", PatientID: "p2", ProgramID: "prog1"},
	}}
	svc := NewEnrollmentService(testGuard(patientProfile("p1")), enrollments, newStubProgramRepo(), newStubCategoryRepo(), &stubRevalidator{}, zerolog.Nop())

	resp := svc.Mine(identityCtx("p1"))
	if !resp.Success {
		t.Fatalf("expected success, got %+v", resp)
	}
	if len(*resp.Data) != 1 || (*resp.Data)[0].ID != "e1" {
		t.Fatalf("expected only the caller's enrollment, got %+v", *resp.Data)
	}
}
