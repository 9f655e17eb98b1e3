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

// PlayerUpdater defines the interface that the player service must implement.
type PlayerUpdater interface {
	ChangePassword(ctx context.Context, playerID uuid.UUID, newPassword string) (*models.PlayerDB, error)
	AddGameTime(ctx context.Context, playerID uuid.UUID, delta int64) (*models.PlayerDB, error)
}

// PlayerUpdateRequest represents the JSON body for PATCH /players/me.
// Exactly one of password or gameTime must be present.
// swagger:model PlayerUpdateRequest
type PlayerUpdateRequest struct {
	// New password
	Password string `json:"password,omitempty"`

	// Game time to add to the stored value, in seconds
	GameTime int64 `json:"gameTime,omitempty"`
}

// PlayerUpdateResponse represents the updated player fields
// swagger:model PlayerUpdateResponse
type PlayerUpdateResponse struct {
	// Email of the player
	Email string `json:"email"`

	// Updated game time, present for gameTime updates
	GameTime *int64 `json:"gameTime,omitempty"`

	// Update timestamp
	UpdatedAt *time.Time `json:"updatedAt,omitempty"`
}

// PlayerUpdateErrorResponse represents an error response for player updates
// swagger:model PlayerUpdateErrorResponse
type PlayerUpdateErrorResponse struct {
	// Error message
	// default: The player with the given ID was not found
	Error string `json:"error"`
}

// NewPlayerUpdateHandler returns an HTTP handler for PATCH /players/me.
// The body shape selects the operation: a password key changes the
// password, a gameTime key adds to the stored game time.
// @Summary Update the current player
// @Description Change the authenticated player's password, or add to its accumulated game time. Exactly one of the two fields must be present.
// @Tags players
// @Accept json
// @Produce json
// @Param request body handlers.PlayerUpdateRequest true "Update request"
// @Success 200 {object} handlers.PlayerUpdateResponse "Updated player fields"
// @Failure 400 {object} handlers.PlayerUpdateErrorResponse "Invalid payload"
// @Failure 401 {object} handlers.PlayerUpdateErrorResponse "Missing token"
// @Failure 404 {object} handlers.PlayerUpdateErrorResponse "Player no longer exists"
// @Router /players/me [patch]
// @Security XAuthToken
func NewPlayerUpdateHandler(svc PlayerUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := middlewares.GetClaimsFromContext(r.Context())
		if claims == nil {
			writeJSON(w, http.StatusUnauthorized, PlayerUpdateErrorResponse{Error: "Access denied: no token provided"})
			return
		}

		payload, body, err := decodePayload(r)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, PlayerUpdateErrorResponse{Error: "invalid request body"})
			return
		}

		_, hasPassword := payload["password"]
		_, hasGameTime := payload["gameTime"]
		if hasPassword == hasGameTime {
			writeJSON(w, http.StatusBadRequest, PlayerUpdateErrorResponse{Error: "exactly one of \"password\" or \"gameTime\" is required"})
			return
		}

		schema := validation.PasswordSchema
		if hasGameTime {
			schema = validation.GameTimeSchema
		}
		if err := validation.Evaluate(schema, payload); err != nil {
			writeJSON(w, http.StatusBadRequest, PlayerUpdateErrorResponse{Error: err.Error()})
			return
		}

		var req PlayerUpdateRequest
		if err := json.Unmarshal(body, &req); err != nil {
			writeJSON(w, http.StatusBadRequest, PlayerUpdateErrorResponse{Error: "invalid request body"})
			return
		}

		var player *models.PlayerDB
		if hasPassword {
			player, err = svc.ChangePassword(r.Context(), claims.PlayerID, req.Password)
		} else {
			player, err = svc.AddGameTime(r.Context(), claims.PlayerID, req.GameTime)
		}
		if err != nil {
			switch {
			case errors.Is(err, services.ErrPlayerNotFound):
				writeJSON(w, http.StatusNotFound, PlayerUpdateErrorResponse{Error: "The player with the given ID was not found"})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeJSON(w, http.StatusInternalServerError, PlayerUpdateErrorResponse{Error: "Internal server error"})
			}
			return
		}

		resp := PlayerUpdateResponse{
			Email:     player.Email,
			UpdatedAt: player.UpdatedAt,
		}
		if hasGameTime {
			gameTime := player.GameTime
			resp.GameTime = &gameTime
		}
		writeJSON(w, http.StatusOK, resp)
	}
}
