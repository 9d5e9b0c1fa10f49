package httpx

import (
	"context"

	"github.com/agrisense/agrisense/pkg/jwtx"
)

type claimsKey struct{}

// WithClaims stores verified access token claims in ctx.
func WithClaims(ctx context.Context, claims jwtx.Claims) context.Context {
	return context.WithValue(ctx, claimsKey{}, claims)
}

// ClaimsFromContext returns the claims stored by the authentication
// middleware, if any.
func ClaimsFromContext(ctx context.Context) (jwtx.Claims, bool) {
	claims, ok := ctx.Value(claimsKey{}).(jwtx.Claims)
	return claims, ok
}
