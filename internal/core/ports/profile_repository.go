package ports

import (
	"context"

	"github.com/carepath/learning-platform/internal/core/domain"
)

// ProfileRepository defines persistence for application profiles.
type ProfileRepository interface {
	Create(ctx context.Context, p *domain.Profile) (*domain.Profile, error)
	FindByID(ctx context.Context, id string) (*domain.Profile, error)
	FindByEmail(ctx context.Context, email string) (*domain.Profile, error)
}
