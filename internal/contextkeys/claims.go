package contextkeys

import (
	"context"
	"listings-service/internal/core/domain"
)

type claimsKeyType struct{}

var claimsKey = claimsKeyType{}

// ContextWithClaims places the authenticated identity into the context.
func ContextWithClaims(ctx context.Context, claims *domain.Claims) context.Context {
	return context.WithValue(ctx, claimsKey, claims)
}

// ClaimsFromContext returns the authenticated identity, or nil for
// anonymous requests.
func ClaimsFromContext(ctx context.Context) *domain.Claims {
	if claims, ok := ctx.Value(claimsKey).(*domain.Claims); ok {
		return claims
	}
	return nil
}
