package http

import (
	"context"
	"net/http"
	"strings"

	"communityhub-backend/internal/domain"
	"communityhub-backend/internal/security"
)

type contextKey string

const claimsKey contextKey = "claims"

// AuthMiddleware validates the Bearer token and stores the claims on
// the request context.
func AuthMiddleware(tokens security.TokenManager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			tokenString, found := strings.CutPrefix(header, "Bearer ")
			if !found {
				writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "missing bearer token"})
				return
			}
			claims, err := tokens.ValidateToken(tokenString)
			if err != nil {
				writeJSON(w, http.StatusUnauthorized, errorResponse{Error: err.Error()})
				return
			}
			next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), claimsKey, claims)))
		})
	}
}

// ClaimsFromContext returns the authenticated caller's claims.
func ClaimsFromContext(ctx context.Context) (*security.UserClaims, bool) {
	claims, ok := ctx.Value(claimsKey).(*security.UserClaims)
	return claims, ok
}

func hasRole(claims *security.UserClaims, roles ...domain.UserOrgRole) bool {
	for _, have := range claims.Roles {
		for _, want := range roles {
			if have == string(want) {
				return true
			}
		}
	}
	return false
}

// RequireRole rejects callers whose token carries none of the roles.
func RequireRole(roles ...domain.UserOrgRole) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, ok := ClaimsFromContext(r.Context())
			if !ok || !hasRole(claims, roles...) {
				writeJSON(w, http.StatusForbidden, errorResponse{Error: "insufficient role"})
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
