package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/jmartinezl/game-leaderboard/internal/jwt"
	"github.com/jmartinezl/game-leaderboard/internal/logger"
	"github.com/jmartinezl/game-leaderboard/internal/middlewares"
	"github.com/jmartinezl/game-leaderboard/internal/models"
	"github.com/jmartinezl/game-leaderboard/internal/validation"
)

// ScoreSubmitter defines the interface that the score service must implement.
type ScoreSubmitter interface {
	Submit(ctx context.Context, claims *jwt.Claims, author string, points int64, mode string) (*models.ScoreDB, error)
}

// ScoreSubmitRequest represents the JSON body for a score submission
// swagger:model ScoreSubmitRequest
type ScoreSubmitRequest struct {
	// Display name on the board
	// required: true
	// default: mrs
	Author string `json:"author"`

	// Score value
	// required: true
	// default: 100
	Score int64 `json:"score"`

	// Difficulty mode: easy, normal, hard or lunatic
	// required: true
	// default: easy
	Mode string `json:"mode"`
}

// ScoreSubmitErrorResponse represents an error response for score submission
// swagger:model ScoreSubmitErrorResponse
type ScoreSubmitErrorResponse struct {
	// Error message
	Error string `json:"error"`
}

// NewScoreSubmitHandler returns an HTTP handler for POST /scores.
// @Summary Submit a score
// @Description Persists a new score for the authenticated player. The player snapshot embedded in the score is stamped from the session token.
// @Tags scores
// @Accept json
// @Produce json
// @Param request body handlers.ScoreSubmitRequest true "Score submission"
// @Success 201 {object} handlers.ScoreResponse "The created score"
// @Failure 400 {object} handlers.ScoreSubmitErrorResponse "Invalid payload"
// @Failure 401 {object} handlers.ScoreSubmitErrorResponse "Missing token"
// @Router /scores [post]
// @Security XAuthToken
func NewScoreSubmitHandler(svc ScoreSubmitter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := middlewares.GetClaimsFromContext(r.Context())
		if claims == nil {
			writeJSON(w, http.StatusUnauthorized, ScoreSubmitErrorResponse{Error: "Access denied: no token provided"})
			return
		}

		payload, body, err := decodePayload(r)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, ScoreSubmitErrorResponse{Error: "invalid request body"})
			return
		}

		if err := validation.Evaluate(validation.ScoreSchema, payload); err != nil {
			writeJSON(w, http.StatusBadRequest, ScoreSubmitErrorResponse{Error: err.Error()})
			return
		}

		var req ScoreSubmitRequest
		if err := json.Unmarshal(body, &req); err != nil {
			writeJSON(w, http.StatusBadRequest, ScoreSubmitErrorResponse{Error: "invalid request body"})
			return
		}

		score, err := svc.Submit(r.Context(), claims, req.Author, req.Score, req.Mode)
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			writeJSON(w, http.StatusInternalServerError, ScoreSubmitErrorResponse{Error: "Internal server error"})
			return
		}

		writeJSON(w, http.StatusCreated, ScoreResponse{
			ScoreID:   score.ScoreID,
			Author:    score.Author,
			Score:     score.Score,
			Mode:      score.Mode,
			CreatedAt: score.CreatedAt,
		})
	}
}
