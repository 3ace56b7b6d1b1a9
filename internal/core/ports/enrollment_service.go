package ports

import (
	"context"

	"github.com/carepath/learning-platform/internal/core/action"
	"github.com/carepath/learning-platform/internal/core/domain"
)

// EnrollInput carries a patient's enrollment request.
type EnrollInput struct {
	ProgramID string `json:"programId" validate:"required"`
}

// DailyCount is one bucket of the enrollment stats series.
type DailyCount struct {
	Date  string `json:"date"` // YYYY-MM-DD
	Count int    `json:"count"`
}

// CategoryCount is the per-category breakdown of recent enrollments.
type CategoryCount struct {
	CategoryID string `json:"category_id"`
	Name       string `json:"name"`
	Count      int    `json:"count"`
}

// EnrollmentStats covers exactly the trailing N-day window, one DailyCount
// per day. Categories is non-empty only when enrollments exist in the window.
type EnrollmentStats struct {
	Days       int             `json:"days"`
	Series     []DailyCount    `json:"series"`
	Categories []CategoryCount `json:"categories"`
	Total      int             `json:"total"`
}

// EnrollmentService defines enrollment actions. Enroll and Mine are
// patient-only; Stats is admin-only.
type EnrollmentService interface {
	Enroll(ctx context.Context, in EnrollInput) action.Response[domain.Enrollment]
	Mine(ctx context.Context) action.Response[[]domain.Enrollment]
	Stats(ctx context.Context, days int) action.Response[EnrollmentStats]
}
