package middleware

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/sales-dashboard-api/internal/auth"
	"github.com/sales-dashboard-api/internal/domain"
)

type ctxKey int

const claimsKey ctxKey = iota

// TokenParser verifies session tokens
type TokenParser interface {
	Parse(token string) (*auth.Claims, error)
}

// Authenticate requires a valid bearer token. A missing token is answered
// with 401, an invalid or expired one with 403.
func Authenticate(parser TokenParser, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, err := auth.BearerToken(r.Header.Get("Authorization"))
			if err != nil {
				writeError(w, http.StatusUnauthorized, "access token required")
				return
			}

			claims, err := parser.Parse(token)
			if err != nil {
				logger.Debug("rejected token", slog.String("path", r.URL.Path), slog.Any("error", err))
				writeError(w, http.StatusForbidden, "invalid or expired token")
				return
			}

			next.ServeHTTP(w, r.WithContext(WithClaims(r.Context(), claims)))
		})
	}
}

// RequireRole lets the request through only for the given roles.
// It must run after Authenticate.
func RequireRole(roles ...domain.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, ok := ClaimsFromContext(r.Context())
			if !ok {
				writeError(w, http.StatusUnauthorized, "access token required")
				return
			}

			for _, role := range roles {
				if claims.Role == role {
					next.ServeHTTP(w, r)
					return
				}
			}
			writeError(w, http.StatusForbidden, "insufficient permissions")
		})
	}
}

// WithClaims stores the authenticated claims in ctx
func WithClaims(ctx context.Context, claims *auth.Claims) context.Context {
	return context.WithValue(ctx, claimsKey, claims)
}

// ClaimsFromContext returns the claims stored by Authenticate
func ClaimsFromContext(ctx context.Context) (*auth.Claims, bool) {
	claims, ok := ctx.Value(claimsKey).(*auth.Claims)
	return claims, ok && claims != nil
}
