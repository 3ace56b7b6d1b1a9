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

// AssessmentService implements assessment and question actions.
type AssessmentService struct {
	guard       *auth.Guard
	assessments ports.AssessmentRepository
	questions   ports.QuestionRepository
	modules     ports.ModuleRepository
	reval       ports.Revalidator
	log         zerolog.Logger
}

func NewAssessmentService(
	guard *auth.Guard,
	assessments ports.AssessmentRepository,
	questions ports.QuestionRepository,
	modules ports.ModuleRepository,
	reval ports.Revalidator,
	log zerolog.Logger,
) *AssessmentService {
	return &AssessmentService{
		guard:       guard,
		assessments: assessments,
		questions:   questions,
		modules:     modules,
		reval:       reval,
		log:         log,
	}
}

func (s *AssessmentService) Create(ctx context.Context, in ports.CreateAssessmentInput) action.Response[domain.Assessment] {
	if fe := validate.Struct(in); fe != nil {
		return action.Invalid[domain.Assessment](fe)
	}
	if _, err := s.guard.Require(ctx, domain.RoleAdmin); err != nil {
		return action.FromError[domain.Assessment](err)
	}

	if _, err := s.modules.FindByID(ctx, in.ModuleID); err != nil {
		return action.FromError[domain.Assessment](err)
	}

	assessment := &domain.Assessment{
		ID:           uuid.NewString(),
		ModuleID:     in.ModuleID,
		Title:        in.Title,
		Instructions: in.Instructions,
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.assessments.Create(ctx, assessment); err != nil {
		s.log.Error().Err(err).Str("module_id", in.ModuleID).Msg("failed to create assessment")
		return action.FromError[domain.Assessment](err)
	}

	s.reval.Hint("modules:" + in.ModuleID)
	return action.Created(*assessment)
}

func (s *AssessmentService) Delete(ctx context.Context, id string) action.Response[ports.Deleted] {
	if id == "" {
		return action.Invalid[ports.Deleted](map[string][]string{"id": {"id is required"}})
	}
	if _, err := s.guard.Require(ctx, domain.RoleAdmin); err != nil {
		return action.FromError[ports.Deleted](err)
	}

	assessment, err := s.assessments.FindByID(ctx, id)
	if err != nil {
		return action.FromError[ports.Deleted](err)
	}
	if err := s.assessments.Delete(ctx, id); err != nil {
		s.log.Error().Err(err).Str("assessment_id", id).Msg("failed to delete assessment")
		return action.FromError[ports.Deleted](err)
	}

	s.reval.Hint("modules:" + assessment.ModuleID)
	return action.OK(ports.Deleted{ID: id})
}

func (s *AssessmentService) ListByModule(ctx context.Context, moduleID string) action.Response[[]domain.Assessment] {
	if _, err := s.guard.RequireAny(ctx); err != nil {
		return action.FromError[[]domain.Assessment](err)
	}

	assessments, err := s.assessments.ListByModule(ctx, moduleID)
	if err != nil {
		s.log.Error().Err(err).Str("module_id", moduleID).Msg("failed to list assessments")
		return action.FromError[[]domain.Assessment](err)
	}

	out := make([]domain.Assessment, len(assessments))
	for i, a := range assessments {
		out[i] = *a
	}
	return action.OK(out)
}

// questionFieldErrors applies the kind-specific constraints tag validation
// cannot express: choice count for multiple_choice, scale bounds for scale.
func questionFieldErrors(kind domain.QuestionKind, choices []string, scaleMin, scaleMax int) map[string][]string {
	fe := map[string][]string{}
	switch kind {
	case domain.QuestionMultipleChoice:
		if len(choices) < 2 {
			fe["choices"] = append(fe["choices"], "choices must contain at least 2 entries")
		}
	case domain.QuestionScale:
		if scaleMin < domain.MoodScoreMin || scaleMax > domain.MoodScoreMax || scaleMin >= scaleMax {
			fe["scaleMin"] = append(fe["scaleMin"], "scale bounds must satisfy 1 <= min < max <= 10")
		}
	}
	if len(fe) == 0 {
		return nil
	}
	return fe
}

func (s *AssessmentService) CreateQuestion(ctx context.Context, in ports.CreateQuestionInput) action.Response[domain.Question] {
	if fe := validate.Struct(in); fe != nil {
		return action.Invalid[domain.Question](fe)
	}
	kind := domain.QuestionKind(in.Kind)
	if fe := questionFieldErrors(kind, in.Choices, in.ScaleMin, in.ScaleMax); fe != nil {
		return action.Invalid[domain.Question](fe)
	}
	if _, err := s.guard.Require(ctx, domain.RoleAdmin); err != nil {
		return action.FromError[domain.Question](err)
	}

	if _, err := s.assessments.FindByID(ctx, in.AssessmentID); err != nil {
		return action.FromError[domain.Question](err)
	}

	question := &domain.Question{
		ID:           uuid.NewString(),
		AssessmentID: in.AssessmentID,
		Prompt:       in.Prompt,
		Kind:         kind,
		Choices:      in.Choices,
		ScaleMin:     in.ScaleMin,
		ScaleMax:     in.ScaleMax,
		Position:     in.Position,
	}

	if err := s.questions.Create(ctx, question); err != nil {
		s.log.Error().Err(err).Str("assessment_id", in.AssessmentID).Msg("failed to create question")
		return action.FromError[domain.Question](err)
	}

	s.reval.Hint("assessments:" + in.AssessmentID)
	return action.Created(*question)
}

func (s *AssessmentService) UpdateQuestion(ctx context.Context, in ports.UpdateQuestionInput) action.Response[domain.Question] {
	if fe := validate.Struct(in); fe != nil {
		return action.Invalid[domain.Question](fe)
	}
	if _, err := s.guard.Require(ctx, domain.RoleAdmin); err != nil {
		return action.FromError[domain.Question](err)
	}

	question, err := s.questions.FindByID(ctx, in.ID)
	if err != nil {
		return action.FromError[domain.Question](err)
	}
	if fe := questionFieldErrors(question.Kind, in.Choices, question.ScaleMin, question.ScaleMax); fe != nil {
		return action.Invalid[domain.Question](fe)
	}

	question.Prompt = in.Prompt
	question.Choices = in.Choices
	question.Position = in.Position

	if err := s.questions.Update(ctx, question); err != nil {
		s.log.Error().Err(err).Str("question_id", in.ID).Msg("failed to update question")
		return action.FromError[domain.Question](err)
	}

	s.reval.Hint("assessments:" + question.AssessmentID)
	return action.OK(*question)
}

func (s *AssessmentService) DeleteQuestion(ctx context.Context, id string) action.Response[ports.Deleted] {
	if id == "" {
		return action.Invalid[ports.Deleted](map[string][]string{"id": {"id is required"}})
	}
	if _, err := s.guard.Require(ctx, domain.RoleAdmin); err != nil {
		return action.FromError[ports.Deleted](err)
	}

	question, err := s.questions.FindByID(ctx, id)
	if err != nil {
		return action.FromError[ports.Deleted](err)
	}
	if err := s.questions.Delete(ctx, id); err != nil {
		s.log.Error().Err(err).Str("question_id", id).Msg("failed to delete question")
		return action.FromError[ports.Deleted](err)
	}

	s.reval.Hint("assessments:" + question.AssessmentID)
	return action.OK(ports.Deleted{ID: id})
}

func (s *AssessmentService) ListQuestions(ctx context.Context, assessmentID string) action.Response[[]domain.Question] {
	if _, err := s.guard.RequireAny(ctx); err != nil {
		return action.FromError[[]domain.Question](err)
	}

	questions, err := s.questions.ListByAssessment(ctx, assessmentID)
	if err != nil {
		s.log.Error().Err(err).Str("assessment_id", assessmentID).Msg("failed to list questions")
		return action.FromError[[]domain.Question](err)
	}

	out := make([]domain.Question, len(questions))
	for i, q := range questions {
		out[i] = *q
	}
	return action.OK(out)
}
