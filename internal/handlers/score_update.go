package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/jmartinezl/game-leaderboard/internal/logger"
	"github.com/jmartinezl/game-leaderboard/internal/middlewares"
	"github.com/jmartinezl/game-leaderboard/internal/models"
	"github.com/jmartinezl/game-leaderboard/internal/services"
	"github.com/jmartinezl/game-leaderboard/internal/validation"
)

// ScorePointsUpdater defines the interface that the score service must implement.
type ScorePointsUpdater interface {
	UpdatePoints(ctx context.Context, scoreID uuid.UUID, points int64) (*models.ScoreDB, error)
}

// ScoreUpdateRequest represents the JSON body for a score value update
// swagger:model ScoreUpdateRequest
type ScoreUpdateRequest struct {
	// New score value
	// required: true
	// default: 200
	Score int64 `json:"score"`
}

// ScoreUpdateResponse represents the updated score
// swagger:model ScoreUpdateResponse
type ScoreUpdateResponse struct {
	// Score id
	ScoreID uuid.UUID `json:"score_id"`

	// Display name
	Author string `json:"author"`

	// Score value
	Score int64 `json:"score"`

	// Difficulty mode
	Mode string `json:"mode"`

	// Update timestamp
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}

// ScoreUpdateErrorResponse represents an error response for a score update
// swagger:model ScoreUpdateErrorResponse
type ScoreUpdateErrorResponse struct {
	// Error message
	// default: The score with the given ID was not found.
	Error string `json:"error"`
}

// NewScoreUpdateHandler returns an HTTP handler for PATCH /scores/{scoreId}.
// Only the score value and updated_at change; the embedded player
// snapshot is never re-synced.
// @Summary Update a score value
// @Description Replaces the score value of an existing record. Admin only.
// @Tags scores
// @Accept json
// @Produce json
// @Param scoreId path string true "Score id"
// @Param request body handlers.ScoreUpdateRequest true "New score value"
// @Success 200 {object} handlers.ScoreUpdateResponse "The updated score"
// @Failure 400 {object} handlers.ScoreUpdateErrorResponse "Invalid payload or id"
// @Failure 401 {object} handlers.ScoreUpdateErrorResponse "Missing token"
// @Failure 403 {object} handlers.ScoreUpdateErrorResponse "Not an admin"
// @Failure 404 {object} handlers.ScoreUpdateErrorResponse "No such score"
// @Router /scores/{scoreId} [patch]
// @Security XAuthToken
func NewScoreUpdateHandler(svc ScorePointsUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		scoreID := middlewares.GetScoreIDFromContext(r.Context())

		payload, body, err := decodePayload(r)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, ScoreUpdateErrorResponse{Error: "invalid request body"})
			return
		}

		if err := validation.Evaluate(validation.ScorePointsSchema, payload); err != nil {
			writeJSON(w, http.StatusBadRequest, ScoreUpdateErrorResponse{Error: err.Error()})
			return
		}

		var req ScoreUpdateRequest
		if err := json.Unmarshal(body, &req); err != nil {
			writeJSON(w, http.StatusBadRequest, ScoreUpdateErrorResponse{Error: "invalid request body"})
			return
		}

		score, err := svc.UpdatePoints(r.Context(), scoreID, req.Score)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrScoreNotFound):
				writeJSON(w, http.StatusNotFound, ScoreUpdateErrorResponse{Error: "The score with the given ID was not found."})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeJSON(w, http.StatusInternalServerError, ScoreUpdateErrorResponse{Error: "Internal server error"})
			}
			return
		}

		writeJSON(w, http.StatusOK, ScoreUpdateResponse{
			ScoreID:   score.ScoreID,
			Author:    score.Author,
			Score:     score.Score,
			Mode:      score.Mode,
			UpdatedAt: score.UpdatedAt,
		})
	}
}
