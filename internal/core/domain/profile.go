package domain

import (
	"fmt"
	"time"
)

// Role is the closed set of roles a profile can carry. Free-string role
// comparisons are not allowed anywhere; parse once at the boundary.
type Role string

const (
	RoleAdmin   Role = "admin"
	RolePatient Role = "patient"
)

// ParseRole validates a raw role string against the closed enumeration.
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleAdmin:
		return RoleAdmin, nil
	case RolePatient:
		return RolePatient, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownRole, s)
}

// Identity is the authenticated caller as known to the auth layer. It is
// borrowed per request and carries no application data beyond the reference.
type Identity struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// Profile is the application-level user record. Exactly one exists per
// completed sign-up; when absent, every role check fails closed.
type Profile struct {
	ID           string    `json:"id"`
	Role         Role      `json:"role"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// HomePath returns the landing page for the profile's role, used by the
// page-mode guard when redirecting a caller with the wrong role.
func (r Role) HomePath() string {
	if r == RoleAdmin {
		return "/admin"
	}
	return "/home"
}
