package ports

import (
	"context"

	"github.com/carepath/learning-platform/internal/core/action"
	"github.com/carepath/learning-platform/internal/core/domain"
)

// LogMoodInput carries a patient's mood log request. MoodType must be one of
// the fixed seven values; MoodScore is an integer in [1,10]. Both are
// rejected before any store write.
type LogMoodInput struct {
	MoodType  string `json:"moodType" validate:"required,oneof=happy calm neutral sad anxious angry stressed"`
	MoodScore int    `json:"moodScore" validate:"required,gte=1,lte=10"`
	Note      string `json:"note" validate:"max=1000"`
}

// MoodService defines the patient-facing mood actions.
type MoodService interface {
	Log(ctx context.Context, in LogMoodInput) action.Response[domain.MoodEntry]
	// Recent returns the caller's entries newest-first. limit <= 0 applies the
	// default; values above the cap are clamped.
	Recent(ctx context.Context, limit int) action.Response[[]domain.MoodEntry]
}
