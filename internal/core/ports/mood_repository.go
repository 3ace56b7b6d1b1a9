package ports

import (
	"context"

	"github.com/carepath/learning-platform/internal/core/domain"
)

// MoodRepository defines persistence operations for mood entries.
type MoodRepository interface {
	Insert(ctx context.Context, e *domain.MoodEntry) error
	// ListByPatient returns the patient's entries newest-first, at most limit.
	ListByPatient(ctx context.Context, patientID string, limit int) ([]*domain.MoodEntry, error)
}
