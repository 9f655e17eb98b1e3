package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/jmartinezl/game-leaderboard/internal/logger"
	"github.com/jmartinezl/game-leaderboard/internal/middlewares"
	"github.com/jmartinezl/game-leaderboard/internal/services"
)

// PlayerRemover defines the interface that the player service must implement.
type PlayerRemover interface {
	Remove(ctx context.Context, playerID uuid.UUID) error
}

// PlayerDeleteErrorResponse represents an error response for player deletion
// swagger:model PlayerDeleteErrorResponse
type PlayerDeleteErrorResponse struct {
	// Error message
	// default: The player with the given ID was not found
	Error string `json:"error"`
}

// NewPlayerDeleteHandler returns an HTTP handler for DELETE /players/{playerId}.
// Authentication, the admin check and the id format check all happen in
// the middleware chain before this runs.
// @Summary Delete a player
// @Description Permanently deletes a player account. Admin only.
// @Tags players
// @Produce json
// @Param playerId path string true "Player id"
// @Success 204 "Player deleted"
// @Failure 401 {object} handlers.PlayerDeleteErrorResponse "Missing token"
// @Failure 403 {object} handlers.PlayerDeleteErrorResponse "Not an admin"
// @Failure 404 {object} handlers.PlayerDeleteErrorResponse "No such player"
// @Router /players/{playerId} [delete]
// @Security XAuthToken
func NewPlayerDeleteHandler(svc PlayerRemover) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		playerID := middlewares.GetPlayerIDFromContext(r.Context())

		if err := svc.Remove(r.Context(), playerID); err != nil {
			switch {
			case errors.Is(err, services.ErrPlayerNotFound):
				writeJSON(w, http.StatusNotFound, PlayerDeleteErrorResponse{Error: "The player with the given ID was not found"})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeJSON(w, http.StatusInternalServerError, PlayerDeleteErrorResponse{Error: "Internal server error"})
			}
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
