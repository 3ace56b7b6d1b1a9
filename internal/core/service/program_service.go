package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/carepath/learning-platform/internal/core/action"
	"github.com/carepath/learning-platform/internal/core/auth"
	"github.com/carepath/learning-platform/internal/core/domain"
	"github.com/carepath/learning-platform/internal/core/ports"
	"github.com/carepath/learning-platform/internal/core/validate"
)

// ProgramService implements program and category actions.
type ProgramService struct {
	guard      *auth.Guard
	programs   ports.ProgramRepository
	categories ports.CategoryRepository
	reval      ports.Revalidator
	log        zerolog.Logger
}

func NewProgramService(
	guard *auth.Guard,
	programs ports.ProgramRepository,
	categories ports.CategoryRepository,
	reval ports.Revalidator,
	log zerolog.Logger,
) *ProgramService {
	return &ProgramService{guard: guard, programs: programs, categories: categories, reval: reval, log: log}
}

func (s *ProgramService) Create(ctx context.Context, in ports.CreateProgramInput) action.Response[domain.Program] {
	if fe := validate.Struct(in); fe != nil {
		return action.Invalid[domain.Program](fe)
	}
	if _, err := s.guard.Require(ctx, domain.RoleAdmin); err != nil {
		return action.FromError[domain.Program](err)
	}

	if len(in.CategoryIDs) > 0 {
		if resp := s.checkCategories(ctx, in.CategoryIDs); resp != nil {
			return *resp
		}
	}

	now := time.Now().UTC()
	program := &domain.Program{
		ID:          uuid.NewString(),
		Title:       in.Title,
		Description: in.Description,
		CategoryIDs: in.CategoryIDs,
		Published:   in.Published,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.programs.Create(ctx, program); err != nil {
		s.log.Error().Err(err).Msg("failed to create program")
		return action.FromError[domain.Program](err)
	}

	s.log.Info().Str("program_id", program.ID).Str("title", program.Title).Msg("program created")
	s.reval.Hint("programs")
	return action.Created(*program)
}

func (s *ProgramService) Update(ctx context.Context, in ports.UpdateProgramInput) action.Response[domain.Program] {
	if fe := validate.Struct(in); fe != nil {
		return action.Invalid[domain.Program](fe)
	}
	if _, err := s.guard.Require(ctx, domain.RoleAdmin); err != nil {
		return action.FromError[domain.Program](err)
	}

	program, err := s.programs.FindByID(ctx, in.ID)
	if err != nil {
		return action.FromError[domain.Program](err)
	}

	program.Title = in.Title
	program.Description = in.Description
	program.Published = in.Published
	program.UpdatedAt = time.Now().UTC()

	if err := s.programs.Update(ctx, program); err != nil {
		s.log.Error().Err(err).Str("program_id", in.ID).Msg("failed to update program")
		return action.FromError[domain.Program](err)
	}

	s.reval.Hint("programs", "programs:"+program.ID)
	return action.OK(*program)
}

func (s *ProgramService) Delete(ctx context.Context, id string) action.Response[ports.Deleted] {
	if id == "" {
		return action.Invalid[ports.Deleted](map[string][]string{"id": {"id is required"}})
	}
	if _, err := s.guard.Require(ctx, domain.RoleAdmin); err != nil {
		return action.FromError[ports.Deleted](err)
	}

	if err := s.programs.Delete(ctx, id); err != nil {
		if !errors.Is(err, domain.ErrProgramNotFound) {
			s.log.Error().Err(err).Str("program_id", id).Msg("failed to delete program")
		}
		return action.FromError[ports.Deleted](err)
	}

	s.log.Info().Str("program_id", id).Msg("program deleted")
	s.reval.Hint("programs", "programs:"+id)
	return action.OK(ports.Deleted{ID: id})
}

// Get returns a program. Patients only see published programs; the
// unpublished case reads as not-found rather than forbidden so drafts stay
// invisible.
func (s *ProgramService) Get(ctx context.Context, id string) action.Response[domain.Program] {
	profile, err := s.guard.RequireAny(ctx)
	if err != nil {
		return action.FromError[domain.Program](err)
	}

	program, err := s.programs.FindByID(ctx, id)
	if err != nil {
		return action.FromError[domain.Program](err)
	}
	if profile.Role != domain.RoleAdmin && !program.Published {
		return action.FromError[domain.Program](domain.ErrProgramNotFound)
	}
	return action.OK(*program)
}

func (s *ProgramService) List(ctx context.Context, categoryID string) action.Response[[]domain.Program] {
	profile, err := s.guard.RequireAny(ctx)
	if err != nil {
		return action.FromError[[]domain.Program](err)
	}

	filter := ports.ListProgramsFilter{
		PublishedOnly: profile.Role != domain.RoleAdmin,
		CategoryID:    categoryID,
	}
	programs, err := s.programs.List(ctx, filter)
	if err != nil {
		s.log.Error().Err(err).Msg("failed to list programs")
		return action.FromError[[]domain.Program](err)
	}

	out := make([]domain.Program, len(programs))
	for i, p := range programs {
		out[i] = *p
	}
	return action.OK(out)
}

func (s *ProgramService) AssignCategories(ctx context.Context, in ports.AssignCategoriesInput) action.Response[domain.Program] {
	if fe := validate.Struct(in); fe != nil {
		return action.Invalid[domain.Program](fe)
	}
	if _, err := s.guard.Require(ctx, domain.RoleAdmin); err != nil {
		return action.FromError[domain.Program](err)
	}

	if resp := s.checkCategories(ctx, in.CategoryIDs); resp != nil {
		return *resp
	}

	if _, err := s.programs.FindByID(ctx, in.ProgramID); err != nil {
		return action.FromError[domain.Program](err)
	}
	if err := s.programs.SetCategories(ctx, in.ProgramID, in.CategoryIDs); err != nil {
		s.log.Error().Err(err).Str("program_id", in.ProgramID).Msg("failed to assign categories")
		return action.FromError[domain.Program](err)
	}

	program, err := s.programs.FindByID(ctx, in.ProgramID)
	if err != nil {
		return action.FromError[domain.Program](err)
	}

	s.reval.Hint("programs", "programs:"+in.ProgramID)
	return action.OK(*program)
}

// checkCategories verifies every referenced category exists. Returns a
// failure envelope, or nil when all ids resolve.
func (s *ProgramService) checkCategories(ctx context.Context, ids []string) *action.Response[domain.Program] {
	found, err := s.categories.FindByIDs(ctx, ids)
	if err != nil {
		s.log.Error().Err(err).Msg("failed to resolve categories")
		resp := action.FromError[domain.Program](err)
		return &resp
	}
	if len(found) != len(ids) {
		resp := action.FromError[domain.Program](domain.ErrCategoryNotFound)
		return &resp
	}
	return nil
}

func (s *ProgramService) CreateCategory(ctx context.Context, in ports.CreateCategoryInput) action.Response[domain.Category] {
	if fe := validate.Struct(in); fe != nil {
		return action.Invalid[domain.Category](fe)
	}
	if _, err := s.guard.Require(ctx, domain.RoleAdmin); err != nil {
		return action.FromError[domain.Category](err)
	}

	category := &domain.Category{ID: uuid.NewString(), Name: in.Name}
	if err := s.categories.Create(ctx, category); err != nil {
		s.log.Error().Err(err).Msg("failed to create category")
		return action.FromError[domain.Category](err)
	}

	s.reval.Hint("categories")
	return action.Created(*category)
}

func (s *ProgramService) ListCategories(ctx context.Context) action.Response[[]domain.Category] {
	if _, err := s.guard.RequireAny(ctx); err != nil {
		return action.FromError[[]domain.Category](err)
	}

	categories, err := s.categories.List(ctx)
	if err != nil {
		s.log.Error().Err(err).Msg("failed to list categories")
		return action.FromError[[]domain.Category](err)
	}

	out := make([]domain.Category, len(categories))
	for i, c := range categories {
		out[i] = *c
	}
	return action.OK(out)
}
