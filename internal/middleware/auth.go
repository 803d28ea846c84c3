package middleware

import (
	"net/http"
	"strings"

	"github.com/pkordes/travel-agency/backend/internal/auth"
)

// TokenParser verifies a bearer token.
type TokenParser interface {
	Parse(token string) (auth.Identity, error)
}

// RequireAuth rejects requests without a valid bearer token with 401 and
// stores the caller's identity in the request context.
func RequireAuth(tokens TokenParser) func(http.Handler) http.Handler {
	return gate(tokens, false)
}

// RequireAdmin is RequireAuth plus a 403 for callers without an admin role.
func RequireAdmin(tokens TokenParser) func(http.Handler) http.Handler {
	return gate(tokens, true)
}

func gate(tokens TokenParser, admin bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw, ok := bearerToken(r)
			if !ok {
				writeError(w, http.StatusUnauthorized, "authentication required")
				return
			}
			id, err := tokens.Parse(raw)
			if err != nil {
				writeError(w, http.StatusUnauthorized, "invalid or expired token")
				return
			}
			if admin && !id.IsAdmin() {
				writeError(w, http.StatusForbidden, "admin access required")
				return
			}
			next.ServeHTTP(w, r.WithContext(auth.WithIdentity(r.Context(), id)))
		})
	}
}

func bearerToken(r *http.Request) (string, bool) {
	scheme, token, ok := strings.Cut(r.Header.Get("Authorization"), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}
