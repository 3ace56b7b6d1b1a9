package ports

import (
	"context"
	"time"

	"github.com/carepath/learning-platform/internal/core/domain"
)

// EnrollmentRepository defines persistence operations for enrollments.
type EnrollmentRepository interface {
	// Create inserts an enrollment; returns domain.ErrAlreadyEnrolled when the
	// (patient, program) pair already exists.
	Create(ctx context.Context, e *domain.Enrollment) error
	ListByPatient(ctx context.Context, patientID string) ([]*domain.Enrollment, error)
	// ListSince returns all enrollments with EnrolledAt >= from, used for the
	// admin stats window.
	ListSince(ctx context.Context, from time.Time) ([]*domain.Enrollment, error)
}
