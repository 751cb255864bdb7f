package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"boardhub/internal/auth"
	"boardhub/internal/httputil"
)

// Auth resolves the bearer token into an identity on the request context.
//
// A request without an Authorization header passes through unauthenticated:
// board reads are public, and the service layer rejects unauthenticated
// mutations itself. A present-but-invalid token is rejected here with 401 so
// a caller with a bad credential never looks merely anonymous.
func Auth(resolver auth.IdentityResolver, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" {
				next.ServeHTTP(w, r)
				return
			}

			tokenString, ok := strings.CutPrefix(header, "Bearer ")
			if !ok {
				httputil.RespondError(w, http.StatusUnauthorized, "malformed Authorization header")
				return
			}

			ident, err := resolver.Resolve(tokenString)
			if err != nil {
				logger.Debug("token rejected",
					"path", r.URL.Path,
					"error", err,
				)
				httputil.RespondError(w, http.StatusUnauthorized, "invalid or expired token")
				return
			}

			next.ServeHTTP(w, httputil.WithIdentity(r, ident))
		})
	}
}
