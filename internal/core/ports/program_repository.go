package ports

import (
	"context"

	"github.com/carepath/learning-platform/internal/core/domain"
)

// ListProgramsFilter carries query parameters for listing programs.
// PublishedOnly is always forced on by the service layer for patient callers.
type ListProgramsFilter struct {
	PublishedOnly bool
	CategoryID    string // optional: only programs carrying this category
}

// ProgramRepository defines persistence operations for programs.
type ProgramRepository interface {
	Create(ctx context.Context, p *domain.Program) error
	Update(ctx context.Context, p *domain.Program) error
	Delete(ctx context.Context, id string) error
	FindByID(ctx context.Context, id string) (*domain.Program, error)
	List(ctx context.Context, filter ListProgramsFilter) ([]*domain.Program, error)
	// SetCategories replaces the program's category assignment.
	SetCategories(ctx context.Context, programID string, categoryIDs []string) error
}

// CategoryRepository defines persistence operations for program categories.
type CategoryRepository interface {
	Create(ctx context.Context, c *domain.Category) error
	List(ctx context.Context) ([]*domain.Category, error)
	FindByIDs(ctx context.Context, ids []string) ([]*domain.Category, error)
}
