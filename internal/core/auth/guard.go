package auth

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/carepath/learning-platform/internal/core/domain"
)

// ProfileLoader fetches the role-bearing profile for an identity.
type ProfileLoader interface {
	FindByID(ctx context.Context, id string) (*domain.Profile, error)
}

// Guard composes the session resolver and profile loader into the action-mode
// authorization predicate. It always returns; it never redirects. The
// page-mode counterpart lives in the transport layer (middleware.PageGuard)
// so the failure behavior is visible at the call site.
type Guard struct {
	profiles ProfileLoader
	log      zerolog.Logger
}

func NewGuard(profiles ProfileLoader, log zerolog.Logger) *Guard {
	return &Guard{profiles: profiles, log: log}
}

// Resolve returns the caller's profile, or ErrNotAuthenticated when no
// identity is present, or ErrAccessDenied when the profile cannot be loaded.
// A store error and a missing profile both fail closed as ErrAccessDenied;
// the store error is logged so the two cases stay distinguishable to
// operators.
func (g *Guard) Resolve(ctx context.Context) (*domain.Profile, error) {
	id, ok := IdentityFromContext(ctx)
	if !ok {
		return nil, domain.ErrNotAuthenticated
	}

	profile, err := g.profiles.FindByID(ctx, id.ID)
	if err != nil {
		if !errors.Is(err, domain.ErrProfileNotFound) {
			g.log.Warn().Err(err).Str("identity_id", id.ID).Msg("profile lookup failed, failing closed")
		}
		return nil, domain.ErrAccessDenied
	}
	return profile, nil
}

// Require resolves the caller and enforces an exact role.
func (g *Guard) Require(ctx context.Context, role domain.Role) (*domain.Profile, error) {
	profile, err := g.Resolve(ctx)
	if err != nil {
		return nil, err
	}
	if profile.Role != role {
		return nil, domain.ErrAccessDenied
	}
	return profile, nil
}

// RequireAny resolves the caller and admits any known role.
func (g *Guard) RequireAny(ctx context.Context) (*domain.Profile, error) {
	return g.Resolve(ctx)
}
