package service

import (
	"context"
	"errors"
	"sort"
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
	defaultStatsDays = 7
	maxStatsDays     = 90
	statsDateFormat  = "2006-01-02"
)

// EnrollmentService implements enrollment actions and the admin stats view.
type EnrollmentService struct {
	guard       *auth.Guard
	enrollments ports.EnrollmentRepository
	programs    ports.ProgramRepository
	categories  ports.CategoryRepository
	reval       ports.Revalidator
	now         func() time.Time
	log         zerolog.Logger
}

func NewEnrollmentService(
	guard *auth.Guard,
	enrollments ports.EnrollmentRepository,
	programs ports.ProgramRepository,
	categories ports.CategoryRepository,
	reval ports.Revalidator,
	log zerolog.Logger,
) *EnrollmentService {
	return &EnrollmentService{
		guard:       guard,
		enrollments: enrollments,
		programs:    programs,
		categories:  categories,
		reval:       reval,
		now:         time.Now,
		log:         log,
	}
}

// Enroll enrolls the calling patient in a published program. Duplicate
// enrollments surface as a 409 envelope.
func (s *EnrollmentService) Enroll(ctx context.Context, in ports.EnrollInput) action.Response[domain.Enrollment] {
	if fe := validate.Struct(in); fe != nil {
		return action.Invalid[domain.Enrollment](fe)
	}

	profile, err := s.guard.Require(ctx, domain.RolePatient)
	if err != nil {
		return action.FromError[domain.Enrollment](err)
	}

	program, err := s.programs.FindByID(ctx, in.ProgramID)
	if err != nil {
		return action.FromError[domain.Enrollment](err)
	}
	if !program.Published {
		// Drafts are invisible to patients.
		return action.FromError[domain.Enrollment](domain.ErrProgramNotFound)
	}

	enrollment := &domain.Enrollment{
		ID:         uuid.NewString(),
		PatientID:  profile.ID,
		ProgramID:  program.ID,
		Status:     domain.EnrollmentActive,
		EnrolledAt: s.now().UTC(),
	}

	if err := s.enrollments.Create(ctx, enrollment); err != nil {
		if !errors.Is(err, domain.ErrAlreadyEnrolled) {
			s.log.Error().Err(err).Str("patient_id", profile.ID).Str("program_id", program.ID).Msg("failed to create enrollment")
		}
		return action.FromError[domain.Enrollment](err)
	}

	s.log.Info().Str("patient_id", profile.ID).Str("program_id", program.ID).Msg("patient enrolled")
	s.reval.Hint("enrollments:"+profile.ID, "enrollments:stats")
	return action.Created(*enrollment)
}

// Mine returns the calling patient's enrollments.
func (s *EnrollmentService) Mine(ctx context.Context) action.Response[[]domain.Enrollment] {
	profile, err := s.guard.Require(ctx, domain.RolePatient)
	if err != nil {
		return action.FromError[[]domain.Enrollment](err)
	}

	enrollments, err := s.enrollments.ListByPatient(ctx, profile.ID)
	if err != nil {
		s.log.Error().Err(err).Str("patient_id", profile.ID).Msg("failed to list enrollments")
		return action.FromError[[]domain.Enrollment](err)
	}

	out := make([]domain.Enrollment, len(enrollments))
	for i, e := range enrollments {
		out[i] = *e
	}
	return action.OK(out)
}

// Stats returns daily enrollment counts for exactly the trailing days-day
// window (today inclusive), plus a per-category breakdown. Every day in the
// window appears in the series, zero or not.
func (s *EnrollmentService) Stats(ctx context.Context, days int) action.Response[ports.EnrollmentStats] {
	if _, err := s.guard.Require(ctx, domain.RoleAdmin); err != nil {
		return action.FromError[ports.EnrollmentStats](err)
	}

	if days <= 0 {
		days = defaultStatsDays
	}
	if days > maxStatsDays {
		days = maxStatsDays
	}

	now := s.now().UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	from := today.AddDate(0, 0, -(days - 1))

	enrollments, err := s.enrollments.ListSince(ctx, from)
	if err != nil {
		s.log.Error().Err(err).Msg("failed to load enrollments for stats")
		return action.FromError[ports.EnrollmentStats](err)
	}

	byDay := make(map[string]int, days)
	byProgram := make(map[string]int)
	for _, e := range enrollments {
		byDay[e.EnrolledAt.UTC().Format(statsDateFormat)]++
		byProgram[e.ProgramID]++
	}

	series := make([]ports.DailyCount, 0, days)
	for d := 0; d < days; d++ {
		date := from.AddDate(0, 0, d).Format(statsDateFormat)
		series = append(series, ports.DailyCount{Date: date, Count: byDay[date]})
	}

	categories, err := s.categoryBreakdown(ctx, byProgram)
	if err != nil {
		s.log.Error().Err(err).Msg("failed to build category breakdown")
		return action.FromError[ports.EnrollmentStats](err)
	}

	return action.OK(ports.EnrollmentStats{
		Days:       days,
		Series:     series,
		Categories: categories,
		Total:      len(enrollments),
	})
}

// categoryBreakdown folds per-program enrollment counts into per-category
// counts via each program's category assignment. Empty input yields an empty
// breakdown.
func (s *EnrollmentService) categoryBreakdown(ctx context.Context, byProgram map[string]int) ([]ports.CategoryCount, error) {
	if len(byProgram) == 0 {
		return []ports.CategoryCount{}, nil
	}

	byCategory := make(map[string]int)
	for programID, count := range byProgram {
		program, err := s.programs.FindByID(ctx, programID)
		if err != nil {
			if errors.Is(err, domain.ErrProgramNotFound) {
				// Program deleted after enrollment; skip it in the breakdown.
				continue
			}
			return nil, err
		}
		for _, catID := range program.CategoryIDs {
			byCategory[catID] += count
		}
	}

	if len(byCategory) == 0 {
		return []ports.CategoryCount{}, nil
	}

	ids := make([]string, 0, len(byCategory))
	for id := range byCategory {
		ids = append(ids, id)
	}
	found, err := s.categories.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	names := make(map[string]string, len(found))
	for _, c := range found {
		names[c.ID] = c.Name
	}

	out := make([]ports.CategoryCount, 0, len(byCategory))
	for id, count := range byCategory {
		out = append(out, ports.CategoryCount{CategoryID: id, Name: names[id], Count: count})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Name < out[j].Name
	})
	return out, nil
}
