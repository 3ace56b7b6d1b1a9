package service

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/carepath/learning-platform/internal/core/action"
	"github.com/carepath/learning-platform/internal/core/domain"
	"github.com/carepath/learning-platform/internal/core/ports"
	"github.com/carepath/learning-platform/internal/core/validate"
)

// AuthService implements registration and login.
type AuthService struct {
	profiles  ports.ProfileRepository
	jwtSecret string
	tokenTTL  time.Duration
	log       zerolog.Logger
}

func NewAuthService(profiles ports.ProfileRepository, jwtSecret string, tokenTTL time.Duration, log zerolog.Logger) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &AuthService{profiles: profiles, jwtSecret: jwtSecret, tokenTTL: tokenTTL, log: log}
}

// Register creates a profile with a hashed password. The role is parsed
// against the closed enumeration; unknown roles never reach the store.
func (s *AuthService) Register(ctx context.Context, in ports.RegisterInput) action.Response[ports.AuthResult] {
	if fe := validate.Struct(in); fe != nil {
		return action.Invalid[ports.AuthResult](fe)
	}

	role, err := domain.ParseRole(in.Role)
	if err != nil {
		return action.Invalid[ports.AuthResult](map[string][]string{"role": {"role must be one of: admin patient"}})
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		s.log.Error().Err(err).Msg("failed to hash password")
		return action.FromError[ports.AuthResult](err)
	}

	now := time.Now().UTC()
	profile := &domain.Profile{
		Role:         role,
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		Email:        in.Email,
		PasswordHash: string(hash),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.profiles.Create(ctx, profile)
	if err != nil {
		if !errors.Is(err, domain.ErrProfileExists) {
			s.log.Error().Err(err).Str("email", in.Email).Msg("failed to create profile")
		}
		return action.FromError[ports.AuthResult](err)
	}

	s.log.Info().Str("profile_id", created.ID).Str("role", string(created.Role)).Msg("profile registered")
	return action.Created(ports.AuthResult{Profile: created})
}

// Login verifies credentials and issues an HS256 token carrying the profile
// id, email, and role.
func (s *AuthService) Login(ctx context.Context, in ports.LoginInput) action.Response[ports.AuthResult] {
	if fe := validate.Struct(in); fe != nil {
		return action.Invalid[ports.AuthResult](fe)
	}

	profile, err := s.profiles.FindByEmail(ctx, in.Email)
	if err != nil {
		// Missing profile and bad password are indistinguishable to the caller.
		return action.FromError[ports.AuthResult](domain.ErrInvalidCredentials)
	}

	if bcrypt.CompareHashAndPassword([]byte(profile.PasswordHash), []byte(in.Password)) != nil {
		return action.FromError[ports.AuthResult](domain.ErrInvalidCredentials)
	}

	token, err := s.generateToken(profile)
	if err != nil {
		s.log.Error().Err(err).Msg("failed to sign token")
		return action.FromError[ports.AuthResult](err)
	}

	s.log.Info().Str("profile_id", profile.ID).Msg("login")
	return action.OK(ports.AuthResult{Token: token, Profile: profile})
}

func (s *AuthService) generateToken(p *domain.Profile) (string, error) {
	claims := jwt.MapClaims{
		"sub":   p.ID,
		"email": p.Email,
		"role":  string(p.Role),
		"exp":   time.Now().Add(s.tokenTTL).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}
