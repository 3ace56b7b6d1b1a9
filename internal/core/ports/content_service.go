package ports

import (
	"context"

	"github.com/carepath/learning-platform/internal/core/action"
	"github.com/carepath/learning-platform/internal/core/domain"
)

// CreateModuleInput carries the fields to create a module under a program.
type CreateModuleInput struct {
	ProgramID string `json:"-" validate:"required"`
	Title     string `json:"title" validate:"required"`
	Position  int    `json:"position" validate:"gte=0"`
}

// UpdateModuleInput carries the fields to update a module.
type UpdateModuleInput struct {
	ID       string `json:"-" validate:"required"`
	Title    string `json:"title" validate:"required"`
	Position int    `json:"position" validate:"gte=0"`
}

// ModuleService defines module actions. Writes are admin-only.
type ModuleService interface {
	Create(ctx context.Context, in CreateModuleInput) action.Response[domain.Module]
	Update(ctx context.Context, in UpdateModuleInput) action.Response[domain.Module]
	Delete(ctx context.Context, id string) action.Response[Deleted]
	ListByProgram(ctx context.Context, programID string) action.Response[[]domain.Module]
}

// CreateContentInput carries the fields to create a content item. The body is
// markdown; the service renders and sanitizes it into HTML before persisting.
type CreateContentInput struct {
	ModuleID     string `json:"-" validate:"required"`
	Title        string `json:"title" validate:"required"`
	Kind         string `json:"kind" validate:"required,oneof=article video exercise"`
	BodyMarkdown string `json:"bodyMarkdown" validate:"required"`
	MediaURL     string `json:"mediaUrl" validate:"omitempty,url"`
	Position     int    `json:"position" validate:"gte=0"`
}

// UpdateContentInput carries the fields to update a content item.
type UpdateContentInput struct {
	ID           string `json:"-" validate:"required"`
	Title        string `json:"title" validate:"required"`
	Kind         string `json:"kind" validate:"required,oneof=article video exercise"`
	BodyMarkdown string `json:"bodyMarkdown" validate:"required"`
	MediaURL     string `json:"mediaUrl" validate:"omitempty,url"`
	Position     int    `json:"position" validate:"gte=0"`
}

// ContentService defines content actions. Writes are admin-only; reads admit
// any authenticated caller.
type ContentService interface {
	Create(ctx context.Context, in CreateContentInput) action.Response[domain.ContentItem]
	Update(ctx context.Context, in UpdateContentInput) action.Response[domain.ContentItem]
	Delete(ctx context.Context, id string) action.Response[Deleted]
	Get(ctx context.Context, id string) action.Response[domain.ContentItem]
	ListByModule(ctx context.Context, moduleID string) action.Response[[]domain.ContentItem]
}
