package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/jmartinezl/game-leaderboard/internal/jwt"
	"github.com/jmartinezl/game-leaderboard/internal/logger"
	"github.com/jmartinezl/game-leaderboard/internal/models"
	"github.com/jmartinezl/game-leaderboard/internal/services"
	"github.com/jmartinezl/game-leaderboard/internal/validation"
)

// Registerer defines the interface that the service must implement.
type Registerer interface {
	Register(ctx context.Context, email, password string, gameTime int64) (*models.PlayerDB, string, error)
}

// RegisterRequest represents the JSON body for player registration
// swagger:model RegisterRequest
type RegisterRequest struct {
	// Email
	// required: true
	// default: marisa@example.com
	Email string `json:"email"`

	// Password
	// required: true
	// default: secret123!
	Password string `json:"password"`

	// Accumulated game time in seconds
	// required: true
	// default: 0
	GameTime int64 `json:"gameTime"`
}

// RegisterResponse represents a successful registration response
// swagger:model RegisterResponse
type RegisterResponse struct {
	// Email of the new player
	Email string `json:"email"`

	// Game time of the new player
	GameTime int64 `json:"gameTime"`

	// Creation timestamp
	CreatedAt time.Time `json:"createdAt"`
}

// RegisterErrorResponse represents an error response for registration
// swagger:model RegisterErrorResponse
type RegisterErrorResponse struct {
	// Error message
	// default: Email already registered
	Error string `json:"error"`
}

// NewRegisterHandler returns an HTTP handler for player registration.
// @Summary Register a new player
// @Description Creates a new player account with a unique email. The password is hashed before storing. A session token is returned in the X-Auth-Token response header.
// @Tags players
// @Accept json
// @Produce json
// @Param registerRequest body handlers.RegisterRequest true "Player registration request"
// @Success 201 {object} handlers.RegisterResponse "Player successfully registered"
// @Failure 400 {object} handlers.RegisterErrorResponse "Invalid payload"
// @Failure 409 {object} handlers.RegisterErrorResponse "Email already registered"
// @Router /players [post]
func NewRegisterHandler(svc Registerer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		payload, body, err := decodePayload(r)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, RegisterErrorResponse{Error: "invalid request body"})
			return
		}

		if err := validation.Evaluate(validation.RegisterSchema, payload); err != nil {
			writeJSON(w, http.StatusBadRequest, RegisterErrorResponse{Error: err.Error()})
			return
		}

		var req RegisterRequest
		if err := json.Unmarshal(body, &req); err != nil {
			writeJSON(w, http.StatusBadRequest, RegisterErrorResponse{Error: "invalid request body"})
			return
		}

		player, token, err := svc.Register(r.Context(), req.Email, req.Password, req.GameTime)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrEmailAlreadyExists):
				writeJSON(w, http.StatusConflict, RegisterErrorResponse{Error: "Email already registered"})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeJSON(w, http.StatusInternalServerError, RegisterErrorResponse{Error: "Internal server error"})
			}
			return
		}

		w.Header().Set(jwt.HeaderName, token)
		writeJSON(w, http.StatusCreated, RegisterResponse{
			Email:     player.Email,
			GameTime:  player.GameTime,
			CreatedAt: player.CreatedAt,
		})
	}
}
