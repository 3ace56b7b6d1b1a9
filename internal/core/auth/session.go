// Package auth resolves caller identity and enforces roles for domain
// actions. The transport layer (JWT middleware) injects the identity into the
// request context; nothing in this package knows about HTTP.
package auth

import (
	"context"

	"github.com/carepath/learning-platform/internal/core/domain"
)

type identityKey struct{}

// WithIdentity returns a context carrying the caller's identity.
func WithIdentity(ctx context.Context, id *domain.Identity) context.Context {
	return context.WithValue(ctx, identityKey{}, id)
}

// IdentityFromContext resolves the current caller. Absence is a normal
// outcome (anonymous caller), not a fault.
func IdentityFromContext(ctx context.Context) (*domain.Identity, bool) {
	id, ok := ctx.Value(identityKey{}).(*domain.Identity)
	if !ok || id == nil {
		return nil, false
	}
	return id, true
}
