package handlers

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/jmartinezl/game-leaderboard/internal/logger"
	"github.com/jmartinezl/game-leaderboard/internal/models"
)

// ScoreLister defines the interface that the score service must implement.
type ScoreLister interface {
	List(ctx context.Context) ([]models.ScoreDB, error)
}

// ScoreListItem is a single leaderboard entry
// swagger:model ScoreListItem
type ScoreListItem struct {
	// Score id
	ScoreID uuid.UUID `json:"score_id"`

	// Display name
	Author string `json:"author"`

	// Score value
	Score int64 `json:"score"`

	// Difficulty mode
	Mode string `json:"mode"`
}

// ScoreListErrorResponse represents an error response for the score list
// swagger:model ScoreListErrorResponse
type ScoreListErrorResponse struct {
	// Error message
	// default: Internal server error
	Error string `json:"error"`
}

// NewScoreListHandler returns an HTTP handler for GET /scores.
// @Summary List all scores
// @Description Returns every score ordered by score value descending.
// @Tags scores
// @Produce json
// @Success 200 {array} handlers.ScoreListItem "Scores, highest first"
// @Failure 500 {object} handlers.ScoreListErrorResponse "Internal server error"
// @Router /scores [get]
func NewScoreListHandler(svc ScoreLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		scores, err := svc.List(r.Context())
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			writeJSON(w, http.StatusInternalServerError, ScoreListErrorResponse{Error: "Internal server error"})
			return
		}

		items := make([]ScoreListItem, 0, len(scores))
		for _, s := range scores {
			items = append(items, ScoreListItem{
				ScoreID: s.ScoreID,
				Author:  s.Author,
				Score:   s.Score,
				Mode:    s.Mode,
			})
		}

		writeJSON(w, http.StatusOK, items)
	}
}
