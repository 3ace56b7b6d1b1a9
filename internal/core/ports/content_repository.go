package ports

import (
	"context"

	"github.com/carepath/learning-platform/internal/core/domain"
)

// ModuleRepository defines persistence operations for program modules.
type ModuleRepository interface {
	Create(ctx context.Context, m *domain.Module) error
	Update(ctx context.Context, m *domain.Module) error
	Delete(ctx context.Context, id string) error
	FindByID(ctx context.Context, id string) (*domain.Module, error)
	ListByProgram(ctx context.Context, programID string) ([]*domain.Module, error)
}

// ContentRepository defines persistence operations for content items.
type ContentRepository interface {
	Create(ctx context.Context, c *domain.ContentItem) error
	Update(ctx context.Context, c *domain.ContentItem) error
	Delete(ctx context.Context, id string) error
	FindByID(ctx context.Context, id string) (*domain.ContentItem, error)
	ListByModule(ctx context.Context, moduleID string) ([]*domain.ContentItem, error)
}
