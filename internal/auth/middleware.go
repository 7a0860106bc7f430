package auth

import (
	"context"
	"net/http"

	"github.com/golang-jwt/jwt/v5"
)

type ctxKey struct{}

// IdentityFrom returns the verified claims attached by Verify.
func IdentityFrom(ctx context.Context) (jwt.MapClaims, bool) {
	claims, ok := ctx.Value(ctxKey{}).(jwt.MapClaims)
	return claims, ok
}

// Verify guards a route with the session cookie. Missing cookie -> 401,
// invalid or expired token -> 403. Failure short-circuits: the wrapped
// handler only ever runs with a verified identity in the context.
func (m *Manager) Verify(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(CookieName)
		if err != nil {
			reject(w, http.StatusUnauthorized, "unauthorized")
			return
		}
		claims, err := m.Parse(cookie.Value)
		if err != nil {
			reject(w, http.StatusForbidden, "forbidden")
			return
		}
		ctx := context.WithValue(r.Context(), ctxKey{}, claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func reject(w http.ResponseWriter, code int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_, _ = w.Write([]byte(`{"error":"` + msg + `"}`))
}
