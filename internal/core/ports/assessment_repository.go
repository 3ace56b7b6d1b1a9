package ports

import (
	"context"

	"github.com/carepath/learning-platform/internal/core/domain"
)

// AssessmentRepository defines persistence operations for assessments.
type AssessmentRepository interface {
	Create(ctx context.Context, a *domain.Assessment) error
	Delete(ctx context.Context, id string) error
	FindByID(ctx context.Context, id string) (*domain.Assessment, error)
	ListByModule(ctx context.Context, moduleID string) ([]*domain.Assessment, error)
}

// QuestionRepository defines persistence operations for assessment questions.
type QuestionRepository interface {
	Create(ctx context.Context, q *domain.Question) error
	Update(ctx context.Context, q *domain.Question) error
	Delete(ctx context.Context, id string) error
	FindByID(ctx context.Context, id string) (*domain.Question, error)
	ListByAssessment(ctx context.Context, assessmentID string) ([]*domain.Question, error)
}
