package ports

import (
	"context"

	"github.com/carepath/learning-platform/internal/core/action"
	"github.com/carepath/learning-platform/internal/core/domain"
)

// CreateProgramInput carries the fields to create a program.
type CreateProgramInput struct {
	Title       string   `json:"title" validate:"required"`
	Description string   `json:"description" validate:"required"`
	CategoryIDs []string `json:"categoryIds"`
	Published   bool     `json:"published"`
}

// UpdateProgramInput carries the fields to update a program.
type UpdateProgramInput struct {
	ID          string `json:"-" validate:"required"`
	Title       string `json:"title" validate:"required"`
	Description string `json:"description" validate:"required"`
	Published   bool   `json:"published"`
}

// AssignCategoriesInput replaces a program's category assignment.
type AssignCategoriesInput struct {
	ProgramID   string   `json:"-" validate:"required"`
	CategoryIDs []string `json:"categoryIds" validate:"required"`
}

// CreateCategoryInput carries the fields to create a category.
type CreateCategoryInput struct {
	Name string `json:"name" validate:"required"`
}

// Deleted is the data payload for successful delete actions.
type Deleted struct {
	ID string `json:"id"`
}

// ProgramService defines the admin- and patient-facing program actions.
// Admin-only mutations enforce RoleAdmin via the guard; reads admit any
// authenticated caller but scope patients to published programs.
type ProgramService interface {
	Create(ctx context.Context, in CreateProgramInput) action.Response[domain.Program]
	Update(ctx context.Context, in UpdateProgramInput) action.Response[domain.Program]
	Delete(ctx context.Context, id string) action.Response[Deleted]
	Get(ctx context.Context, id string) action.Response[domain.Program]
	List(ctx context.Context, categoryID string) action.Response[[]domain.Program]
	AssignCategories(ctx context.Context, in AssignCategoriesInput) action.Response[domain.Program]

	CreateCategory(ctx context.Context, in CreateCategoryInput) action.Response[domain.Category]
	ListCategories(ctx context.Context) action.Response[[]domain.Category]
}
