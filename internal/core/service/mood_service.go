package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/carepath/learning-platform/internal/core/action"
	"github.com/carepath/learning-platform/internal/core/auth"
	"github.com/carepath/learning-platform/internal/core/domain"
	"github.com/carepath/learning-platform/internal/core/ports"
	"github.com/carepath/learning-platform/internal/core/validate"
)

const (
	defaultMoodLimit = 30
	maxMoodLimit     = 100
)

// MoodService implements the patient mood actions.
type MoodService struct {
	guard *auth.Guard
	moods ports.MoodRepository
	reval ports.Revalidator
	log   zerolog.Logger
}

func NewMoodService(guard *auth.Guard, moods ports.MoodRepository, reval ports.Revalidator, log zerolog.Logger) *MoodService {
	return &MoodService{guard: guard, moods: moods, reval: reval, log: log}
}

// Log records a mood entry for the calling patient. Validation runs before
// the guard and before any store access; the entry timestamp is set here, at
// call time.
func (s *MoodService) Log(ctx context.Context, in ports.LogMoodInput) action.Response[domain.MoodEntry] {
	if fe := validate.Struct(in); fe != nil {
		return action.Invalid[domain.MoodEntry](fe)
	}

	profile, err := s.guard.Require(ctx, domain.RolePatient)
	if err != nil {
		return action.FromError[domain.MoodEntry](err)
	}

	entry := &domain.MoodEntry{
		ID:             uuid.NewString(),
		PatientID:      profile.ID,
		MoodType:       domain.MoodType(in.MoodType),
		MoodScore:      in.MoodScore,
		Note:           in.Note,
		EntryTimestamp: time.Now().UTC(),
	}

	if err := s.moods.Insert(ctx, entry); err != nil {
		s.log.Error().Err(err).Str("patient_id", profile.ID).Msg("failed to insert mood entry")
		return action.FromError[domain.MoodEntry](err)
	}

	s.log.Info().
		Str("patient_id", profile.ID).
		Str("mood_type", in.MoodType).
		Int("mood_score", in.MoodScore).
		Msg("mood entry recorded")

	s.reval.Hint("moods:" + profile.ID)
	return action.Created(*entry)
}

// Recent returns the caller's mood entries, newest first.
func (s *MoodService) Recent(ctx context.Context, limit int) action.Response[[]domain.MoodEntry] {
	profile, err := s.guard.Require(ctx, domain.RolePatient)
	if err != nil {
		return action.FromError[[]domain.MoodEntry](err)
	}

	if limit <= 0 {
		limit = defaultMoodLimit
	}
	if limit > maxMoodLimit {
		limit = maxMoodLimit
	}

	entries, err := s.moods.ListByPatient(ctx, profile.ID, limit)
	if err != nil {
		s.log.Error().Err(err).Str("patient_id", profile.ID).Msg("failed to list mood entries")
		return action.FromError[[]domain.MoodEntry](err)
	}

	out := make([]domain.MoodEntry, len(entries))
	for i, e := range entries {
		out[i] = *e
	}
	return action.OK(out)
}
