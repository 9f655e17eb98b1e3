package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/jmartinezl/game-leaderboard/internal/logger"
	"github.com/jmartinezl/game-leaderboard/internal/services"
	"github.com/jmartinezl/game-leaderboard/internal/validation"
)

// Loginer defines the interface that the login service must implement.
type Loginer interface {
	Login(ctx context.Context, email, password string) (string, error)
}

// LoginRequest represents the JSON body for player login
// swagger:model LoginRequest
type LoginRequest struct {
	// Email
	// required: true
	// default: marisa@example.com
	Email string `json:"email"`

	// Password
	// required: true
	// default: secret123!
	Password string `json:"password"`
}

// LoginErrorResponse represents an error response for login
// swagger:model LoginErrorResponse
type LoginErrorResponse struct {
	// Error message
	// default: Invalid email or password
	Error string `json:"error"`
}

// NewLoginHandler returns an HTTP handler for player login.
// @Summary Player login
// @Description Authenticate a player and return the session token as plain text. Unknown emails and wrong passwords produce the same error.
// @Tags auth
// @Accept json
// @Produce plain
// @Param loginRequest body handlers.LoginRequest true "Login Request"
// @Success 200 {string} string "Session token"
// @Failure 400 {object} handlers.LoginErrorResponse "Invalid payload or credentials"
// @Router /auth/players-login [post]
func NewLoginHandler(svc Loginer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		payload, body, err := decodePayload(r)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, LoginErrorResponse{Error: "invalid request body"})
			return
		}

		if err := validation.Evaluate(validation.LoginSchema, payload); err != nil {
			writeJSON(w, http.StatusBadRequest, LoginErrorResponse{Error: err.Error()})
			return
		}

		var req LoginRequest
		if err := json.Unmarshal(body, &req); err != nil {
			writeJSON(w, http.StatusBadRequest, LoginErrorResponse{Error: "invalid request body"})
			return
		}

		token, err := svc.Login(r.Context(), req.Email, req.Password)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrInvalidCredentials):
				writeJSON(w, http.StatusBadRequest, LoginErrorResponse{Error: "Invalid email or password"})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeJSON(w, http.StatusInternalServerError, LoginErrorResponse{Error: "Internal server error"})
			}
			return
		}

		// The token travels as an opaque string, not wrapped in JSON.
		w.Header().Set("Content-Type", "text/plain")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(token))
	}
}
