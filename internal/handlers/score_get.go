package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/jmartinezl/game-leaderboard/internal/logger"
	"github.com/jmartinezl/game-leaderboard/internal/middlewares"
	"github.com/jmartinezl/game-leaderboard/internal/models"
	"github.com/jmartinezl/game-leaderboard/internal/services"
)

// ScoreGetter defines the interface that the score service must implement.
type ScoreGetter interface {
	GetByID(ctx context.Context, scoreID uuid.UUID) (*models.ScoreDB, error)
}

// ScoreResponse represents a single score
// swagger:model ScoreResponse
type ScoreResponse struct {
	// Score id
	ScoreID uuid.UUID `json:"score_id"`

	// Display name
	Author string `json:"author"`

	// Score value
	Score int64 `json:"score"`

	// Difficulty mode
	Mode string `json:"mode"`

	// Creation timestamp
	CreatedAt time.Time `json:"created_at"`
}

// ScoreGetErrorResponse represents an error response for fetching a score
// swagger:model ScoreGetErrorResponse
type ScoreGetErrorResponse struct {
	// Error message
	// default: The score with the given ID was not found.
	Error string `json:"error"`
}

// NewScoreGetHandler returns an HTTP handler for GET /scores/{scoreId}.
// @Summary Get a score
// @Description Returns a single score by id.
// @Tags scores
// @Produce json
// @Param scoreId path string true "Score id"
// @Success 200 {object} handlers.ScoreResponse "The score"
// @Failure 400 {object} handlers.ScoreGetErrorResponse "Malformed id"
// @Failure 404 {object} handlers.ScoreGetErrorResponse "No such score"
// @Router /scores/{scoreId} [get]
func NewScoreGetHandler(svc ScoreGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		scoreID := middlewares.GetScoreIDFromContext(r.Context())

		score, err := svc.GetByID(r.Context(), scoreID)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrScoreNotFound):
				writeJSON(w, http.StatusNotFound, ScoreGetErrorResponse{Error: "The score with the given ID was not found."})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeJSON(w, http.StatusInternalServerError, ScoreGetErrorResponse{Error: "Internal server error"})
			}
			return
		}

		writeJSON(w, http.StatusOK, ScoreResponse{
			ScoreID:   score.ScoreID,
			Author:    score.Author,
			Score:     score.Score,
			Mode:      score.Mode,
			CreatedAt: score.CreatedAt,
		})
	}
}
