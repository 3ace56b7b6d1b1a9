package service

import (
	"context"

	"github.com/carepath/learning-platform/internal/core/action"
	"github.com/carepath/learning-platform/internal/core/auth"
	"github.com/carepath/learning-platform/internal/core/domain"
)

// ProfileService exposes the caller's own profile.
type ProfileService struct {
	guard *auth.Guard
}

func NewProfileService(guard *auth.Guard) *ProfileService {
	return &ProfileService{guard: guard}
}

func (s *ProfileService) Me(ctx context.Context) action.Response[domain.Profile] {
	profile, err := s.guard.RequireAny(ctx)
	if err != nil {
		return action.FromError[domain.Profile](err)
	}
	return action.OK(*profile)
}
