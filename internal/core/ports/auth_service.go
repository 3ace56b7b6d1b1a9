package ports

import (
	"context"

	"github.com/carepath/learning-platform/internal/core/action"
	"github.com/carepath/learning-platform/internal/core/domain"
)

// RegisterInput carries a sign-up request.
type RegisterInput struct {
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=8"`
	Role      string `json:"role" validate:"required,oneof=admin patient"`
	FirstName string `json:"firstName" validate:"required"`
	LastName  string `json:"lastName" validate:"required"`
}

// LoginInput carries a sign-in request.
type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// AuthResult is returned on successful login (token set) or registration
// (token empty, profile set).
type AuthResult struct {
	Token   string          `json:"token,omitempty"`
	Profile *domain.Profile `json:"profile"`
}

// AuthService implements registration and login. Both are domain actions and
// return the envelope.
type AuthService interface {
	Register(ctx context.Context, in RegisterInput) action.Response[AuthResult]
	Login(ctx context.Context, in LoginInput) action.Response[AuthResult]
}
