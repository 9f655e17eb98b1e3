package middlewares

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/jmartinezl/game-leaderboard/internal/jwt"
	"github.com/jmartinezl/game-leaderboard/internal/logger"
)

// Tokener defines the token operations needed by the middleware.
type Tokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// RevocationChecker reports whether a token has been revoked by logout.
type RevocationChecker interface {
	IsRevoked(ctx context.Context, token string) (bool, error)
}

type errorResponse struct {
	Error string `json:"error"`
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(errorResponse{Error: msg})
}

// AuthMiddleware authenticates requests via the X-Auth-Token header.
//
// A missing token is 401; a token that is present but unverifiable (or
// revoked by logout) is 400. On success the claims are attached to the
// request context for downstream stages and handlers.
func AuthMiddleware(tokener Tokener, revoker RevocationChecker) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			tokenString, err := tokener.GetTokenFromRequest(ctx, r)
			if err != nil {
				writeError(w, http.StatusUnauthorized, "Access denied: no token provided")
				return
			}

			claims, err := tokener.GetClaims(ctx, tokenString)
			if err != nil {
				logger.Log.Errorw("token verification failed", "err", err)
				writeError(w, http.StatusBadRequest, "Invalid token")
				return
			}

			if revoker != nil {
				revoked, err := revoker.IsRevoked(ctx, tokenString)
				if err != nil {
					logger.Log.Errorw("revocation check failed", "err", err)
					writeError(w, http.StatusInternalServerError, "Internal server error")
					return
				}
				if revoked {
					writeError(w, http.StatusBadRequest, "Invalid token")
					return
				}
			}

			next.ServeHTTP(w, r.WithContext(setClaimsToContext(ctx, claims)))
		})
	}
}

type claimsKeyType struct{}

var claimsKey = claimsKeyType{}

func setClaimsToContext(ctx context.Context, claims *jwt.Claims) context.Context {
	return context.WithValue(ctx, claimsKey, claims)
}

// GetClaimsFromContext returns the authenticated identity attached by
// AuthMiddleware, or nil when the request was not authenticated.
func GetClaimsFromContext(ctx context.Context) *jwt.Claims {
	claims, _ := ctx.Value(claimsKey).(*jwt.Claims)
	return claims
}
