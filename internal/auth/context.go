package auth

import (
	"context"

	"github.com/osse101/UrbanPark_Go/internal/domain"
)

type principalKey struct{}

// WithPrincipal returns a context carrying the authenticated principal
func WithPrincipal(ctx context.Context, p domain.Principal) context.Context {
	return context.WithValue(ctx, principalKey{}, p)
}

// PrincipalFromContext returns the principal set by WithPrincipal
func PrincipalFromContext(ctx context.Context) (domain.Principal, bool) {
	p, ok := ctx.Value(principalKey{}).(domain.Principal)
	return p, ok
}
