package httpx

import (
	"net/http"
	"strings"

	"github.com/agrisense/agrisense/pkg/jwtx"
)

// TokenVerifier validates a compact access token.
type TokenVerifier interface {
	Verify(token string) (jwtx.Claims, error)
}

// AuthnMiddleware requires a valid bearer token and stores its claims in the
// request context. Missing or invalid tokens short-circuit with 401.
func AuthnMiddleware(verifier TokenVerifier) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := bearerToken(r)
			if !ok {
				WriteError(w, r, http.StatusUnauthorized, "Authentication credentials were not provided")
				return
			}

			claims, err := verifier.Verify(token)
			if err != nil {
				WriteError(w, r, http.StatusUnauthorized, "Token is invalid or expired")
				return
			}

			next.ServeHTTP(w, r.WithContext(WithClaims(r.Context(), claims)))
		})
	}
}

func bearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	const prefix = "Bearer "
	if len(header) <= len(prefix) || !strings.EqualFold(header[:len(prefix)], prefix) {
		return "", false
	}
	return header[len(prefix):], true
}
