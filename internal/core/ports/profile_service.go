package ports

import (
	"context"

	"github.com/carepath/learning-platform/internal/core/action"
	"github.com/carepath/learning-platform/internal/core/domain"
)

// ProfileService exposes the caller's own profile.
type ProfileService interface {
	Me(ctx context.Context) action.Response[domain.Profile]
}
