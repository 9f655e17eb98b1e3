package handlers

import (
	"context"
	"net/http"

	"github.com/jmartinezl/game-leaderboard/internal/jwt"
	"github.com/jmartinezl/game-leaderboard/internal/logger"
)

// Logouter defines the interface that the logout service must implement.
type Logouter interface {
	Logout(ctx context.Context, token string) error
}

// NewLogoutHandler returns an HTTP handler for player logout.
// Logout always answers 204: revocation is best-effort and a client
// without a token has nothing to revoke.
// @Summary Player logout
// @Description Revokes the presented session token. Always returns 204.
// @Tags auth
// @Success 204 "Logged out"
// @Router /auth/players-logout [post]
func NewLogoutHandler(svc Logouter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token := r.Header.Get(jwt.HeaderName)
		if err := svc.Logout(r.Context(), token); err != nil {
			logger.Log.Errorw("logout revocation failed", "err", err)
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
