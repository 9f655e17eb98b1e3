package middlewares

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type playerIDKeyType struct{}
type scoreIDKeyType struct{}

var (
	playerIDKey = playerIDKeyType{}
	scoreIDKey  = scoreIDKeyType{}
)

// PlayerIDMiddleware validates the {playerId} path parameter before any
// lookup runs. A malformed player id is reported as 404, matching the
// historical contract for this resource.
func PlayerIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, err := uuid.Parse(chi.URLParam(r, "playerId"))
		if err != nil {
			writeError(w, http.StatusNotFound, "Invalid id.")
			return
		}

		ctx := context.WithValue(r.Context(), playerIDKey, id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// ScoreIDMiddleware validates the {scoreId} path parameter. Unlike
// player ids, a malformed score id is reported as 400.
func ScoreIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, err := uuid.Parse(chi.URLParam(r, "scoreId"))
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid id.")
			return
		}

		ctx := context.WithValue(r.Context(), scoreIDKey, id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetPlayerIDFromContext returns the validated {playerId} path parameter.
func GetPlayerIDFromContext(ctx context.Context) uuid.UUID {
	id, _ := ctx.Value(playerIDKey).(uuid.UUID)
	return id
}

// GetScoreIDFromContext returns the validated {scoreId} path parameter.
func GetScoreIDFromContext(ctx context.Context) uuid.UUID {
	id, _ := ctx.Value(scoreIDKey).(uuid.UUID)
	return id
}
