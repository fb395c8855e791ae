package rest

import (
	"net/http"
	"strings"

	"listings-service/internal/contextkeys"
	"listings-service/internal/core/domain"
	"listings-service/internal/core/port"
)

func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return parts[1]
}

// OptionalAuth validates the bearer token when one is present and places
// the claims into the context; anonymous requests pass through untouched.
func OptionalAuth(tokens port.TokenServicePort) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := bearerToken(r)
			if token == "" {
				next.ServeHTTP(w, r)
				return
			}

			claims, err := tokens.ValidateToken(r.Context(), token)
			if err != nil {
				WriteJSONError(w, http.StatusUnauthorized, "Invalid or expired token")
				return
			}

			ctx := contextkeys.ContextWithClaims(r.Context(), claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireAuth rejects requests without a valid bearer token.
func RequireAuth(tokens port.TokenServicePort) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := bearerToken(r)
			if token == "" {
				WriteJSONError(w, http.StatusUnauthorized, "Authorization header is missing")
				return
			}

			claims, err := tokens.ValidateToken(r.Context(), token)
			if err != nil {
				WriteJSONError(w, http.StatusUnauthorized, "Invalid or expired token")
				return
			}

			ctx := contextkeys.ContextWithClaims(r.Context(), claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireRole allows only authenticated users whose role is in the list.
// Must run after RequireAuth.
func RequireRole(roles ...domain.Role) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims := contextkeys.ClaimsFromContext(r.Context())
			if claims == nil {
				WriteJSONError(w, http.StatusUnauthorized, "Authentication required")
				return
			}
			for _, role := range roles {
				if claims.Role == role {
					next.ServeHTTP(w, r)
					return
				}
			}
			WriteJSONError(w, http.StatusForbidden, "Insufficient permissions")
		})
	}
}
