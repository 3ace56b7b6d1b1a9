package ports

import (
	"context"

	"github.com/carepath/learning-platform/internal/core/action"
	"github.com/carepath/learning-platform/internal/core/domain"
)

// CreateAssessmentInput carries the fields to create an assessment.
type CreateAssessmentInput struct {
	ModuleID     string `json:"-" validate:"required"`
	Title        string `json:"title" validate:"required"`
	Instructions string `json:"instructions"`
}

// CreateQuestionInput carries the fields to create a question.
// Kind-specific constraints (choice count, scale bounds) are enforced by the
// service on top of the tag validation.
type CreateQuestionInput struct {
	AssessmentID string   `json:"-" validate:"required"`
	Prompt       string   `json:"prompt" validate:"required"`
	Kind         string   `json:"kind" validate:"required,oneof=scale multiple_choice free_text"`
	Choices      []string `json:"choices"`
	ScaleMin     int      `json:"scaleMin"`
	ScaleMax     int      `json:"scaleMax"`
	Position     int      `json:"position" validate:"gte=0"`
}

// UpdateQuestionInput carries the fields to update a question.
type UpdateQuestionInput struct {
	ID       string   `json:"-" validate:"required"`
	Prompt   string   `json:"prompt" validate:"required"`
	Choices  []string `json:"choices"`
	Position int      `json:"position" validate:"gte=0"`
}

// AssessmentService defines assessment and question actions. Writes are
// admin-only; reads admit any authenticated caller.
type AssessmentService interface {
	Create(ctx context.Context, in CreateAssessmentInput) action.Response[domain.Assessment]
	Delete(ctx context.Context, id string) action.Response[Deleted]
	ListByModule(ctx context.Context, moduleID string) action.Response[[]domain.Assessment]

	CreateQuestion(ctx context.Context, in CreateQuestionInput) action.Response[domain.Question]
	UpdateQuestion(ctx context.Context, in UpdateQuestionInput) action.Response[domain.Question]
	DeleteQuestion(ctx context.Context, id string) action.Response[Deleted]
	ListQuestions(ctx context.Context, assessmentID string) action.Response[[]domain.Question]
}
