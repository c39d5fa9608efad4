package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/saulo-duarte/chronos-planner/internal/config"
)

type contextKey string

const claimsKey contextKey = "user_claims"

// AuthMiddleware rejects requests without a valid bearer token and stores the
// token's claims in the request context.
func AuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := config.WithContext(r.Context())

		header := r.Header.Get("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			log.Debug("Request without bearer token")
			config.Fail(w, http.StatusUnauthorized, "No token provided")
			return
		}

		claims, err := ValidateJWT(strings.TrimSpace(strings.TrimPrefix(header, "Bearer ")))
		if err != nil {
			log.WithError(err).Warn("Rejected invalid token")
			config.Fail(w, http.StatusUnauthorized, "Invalid or expired token")
			return
		}

		ctx := ContextWithClaims(r.Context(), claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func ContextWithClaims(ctx context.Context, claims *Claims) context.Context {
	ctx = context.WithValue(ctx, claimsKey, claims)
	return config.ContextWithUserID(ctx, claims.UserID)
}

func GetUserClaimsFromContext(ctx context.Context) (*Claims, error) {
	claims, ok := ctx.Value(claimsKey).(*Claims)
	if !ok || claims == nil || claims.UserID == "" {
		return nil, ErrUnauthenticated
	}
	return claims, nil
}
