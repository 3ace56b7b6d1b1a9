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

// ModuleService implements module actions.
type ModuleService struct {
	guard    *auth.Guard
	modules  ports.ModuleRepository
	programs ports.ProgramRepository
	reval    ports.Revalidator
	log      zerolog.Logger
}

func NewModuleService(
	guard *auth.Guard,
	modules ports.ModuleRepository,
	programs ports.ProgramRepository,
	reval ports.Revalidator,
	log zerolog.Logger,
) *ModuleService {
	return &ModuleService{guard: guard, modules: modules, programs: programs, reval: reval, log: log}
}

func (s *ModuleService) Create(ctx context.Context, in ports.CreateModuleInput) action.Response[domain.Module] {
	if fe := validate.Struct(in); fe != nil {
		return action.Invalid[domain.Module](fe)
	}
	if _, err := s.guard.Require(ctx, domain.RoleAdmin); err != nil {
		return action.FromError[domain.Module](err)
	}

	// The parent must exist before a module can hang off it.
	if _, err := s.programs.FindByID(ctx, in.ProgramID); err != nil {
		return action.FromError[domain.Module](err)
	}

	module := &domain.Module{
		ID:        uuid.NewString(),
		ProgramID: in.ProgramID,
		Title:     in.Title,
		Position:  in.Position,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.modules.Create(ctx, module); err != nil {
		s.log.Error().Err(err).Str("program_id", in.ProgramID).Msg("failed to create module")
		return action.FromError[domain.Module](err)
	}

	s.reval.Hint("programs:" + in.ProgramID)
	return action.Created(*module)
}

func (s *ModuleService) Update(ctx context.Context, in ports.UpdateModuleInput) action.Response[domain.Module] {
	if fe := validate.Struct(in); fe != nil {
		return action.Invalid[domain.Module](fe)
	}
	if _, err := s.guard.Require(ctx, domain.RoleAdmin); err != nil {
		return action.FromError[domain.Module](err)
	}

	module, err := s.modules.FindByID(ctx, in.ID)
	if err != nil {
		return action.FromError[domain.Module](err)
	}

	module.Title = in.Title
	module.Position = in.Position

	if err := s.modules.Update(ctx, module); err != nil {
		s.log.Error().Err(err).Str("module_id", in.ID).Msg("failed to update module")
		return action.FromError[domain.Module](err)
	}

	s.reval.Hint("programs:" + module.ProgramID)
	return action.OK(*module)
}

func (s *ModuleService) Delete(ctx context.Context, id string) action.Response[ports.Deleted] {
	if id == "" {
		return action.Invalid[ports.Deleted](map[string][]string{"id": {"id is required"}})
	}
	if _, err := s.guard.Require(ctx, domain.RoleAdmin); err != nil {
		return action.FromError[ports.Deleted](err)
	}

	module, err := s.modules.FindByID(ctx, id)
	if err != nil {
		return action.FromError[ports.Deleted](err)
	}
	if err := s.modules.Delete(ctx, id); err != nil {
		s.log.Error().Err(err).Str("module_id", id).Msg("failed to delete module")
		return action.FromError[ports.Deleted](err)
	}

	s.reval.Hint("programs:" + module.ProgramID)
	return action.OK(ports.Deleted{ID: id})
}

func (s *ModuleService) ListByProgram(ctx context.Context, programID string) action.Response[[]domain.Module] {
	if _, err := s.guard.RequireAny(ctx); err != nil {
		return action.FromError[[]domain.Module](err)
	}

	modules, err := s.modules.ListByProgram(ctx, programID)
	if err != nil {
		s.log.Error().Err(err).Str("program_id", programID).Msg("failed to list modules")
		return action.FromError[[]domain.Module](err)
	}

	out := make([]domain.Module, len(modules))
	for i, m := range modules {
		out[i] = *m
	}
	return action.OK(out)
}
