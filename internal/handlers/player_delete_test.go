package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/jmartinezl/game-leaderboard/internal/middlewares"
	"github.com/jmartinezl/game-leaderboard/internal/services"
	"github.com/stretchr/testify/assert"
)

func TestPlayerDeleteHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	playerID := uuid.New()

	tests := []struct {
		name          string
		pathID        string
		mockSetup     func(m *MockPlayerRemover)
		expectedCode  int
		expectedError string
	}{
		{
			name:   "success",
			pathID: playerID.String(),
			mockSetup: func(m *MockPlayerRemover) {
				m.EXPECT().Remove(gomock.Any(), playerID).Return(nil)
			},
			expectedCode: http.StatusNoContent,
		},
		{
			name:   "player not found",
			pathID: playerID.String(),
			mockSetup: func(m *MockPlayerRemover) {
				m.EXPECT().Remove(gomock.Any(), playerID).Return(services.ErrPlayerNotFound)
			},
			expectedCode:  http.StatusNotFound,
			expectedError: "The player with the given ID was not found",
		},
		{
			name:          "malformed id",
			pathID:        "not-a-uuid",
			expectedCode:  http.StatusNotFound,
			expectedError: "Invalid id.",
		},
		{
			name:   "internal server error",
			pathID: playerID.String(),
			mockSetup: func(m *MockPlayerRemover) {
				m.EXPECT().Remove(gomock.Any(), playerID).Return(errors.New("database failure"))
			},
			expectedCode:  http.StatusInternalServerError,
			expectedError: "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockPlayerRemover(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockSvc)
			}

			r := chi.NewRouter()
			r.With(middlewares.PlayerIDMiddleware).
				Delete("/players/{playerId}", NewPlayerDeleteHandler(mockSvc))

			req := httptest.NewRequest(http.MethodDelete, "/players/"+tt.pathID, nil)
			rr := httptest.NewRecorder()
			r.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			if tt.expectedError != "" {
				var resp map[string]string
				assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
				assert.Equal(t, tt.expectedError, resp["error"])
			}
		})
	}
}
