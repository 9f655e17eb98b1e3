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

// ScoreRemover defines the interface that the score service must implement.
type ScoreRemover interface {
	Remove(ctx context.Context, scoreID uuid.UUID) error
}

// ScoreDeleteErrorResponse represents an error response for score deletion
// swagger:model ScoreDeleteErrorResponse
type ScoreDeleteErrorResponse struct {
	// Error message
	// default: The score with the given ID was not found.
	Error string `json:"error"`
}

// NewScoreDeleteHandler returns an HTTP handler for DELETE /scores/{scoreId}.
// @Summary Delete a score
// @Description Permanently deletes a score. Admin only.
// @Tags scores
// @Produce json
// @Param scoreId path string true "Score id"
// @Success 204 "Score deleted"
// @Failure 400 {object} handlers.ScoreDeleteErrorResponse "Malformed id"
// @Failure 401 {object} handlers.ScoreDeleteErrorResponse "Missing token"
// @Failure 403 {object} handlers.ScoreDeleteErrorResponse "Not an admin"
// @Failure 404 {object} handlers.ScoreDeleteErrorResponse "No such score"
// @Router /scores/{scoreId} [delete]
// @Security XAuthToken
func NewScoreDeleteHandler(svc ScoreRemover) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		scoreID := middlewares.GetScoreIDFromContext(r.Context())

		if err := svc.Remove(r.Context(), scoreID); err != nil {
			switch {
			case errors.Is(err, services.ErrScoreNotFound):
				writeJSON(w, http.StatusNotFound, ScoreDeleteErrorResponse{Error: "The score with the given ID was not found."})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeJSON(w, http.StatusInternalServerError, ScoreDeleteErrorResponse{Error: "Internal server error"})
			}
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
