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
	"github.com/jmartinezl/game-leaderboard/internal/models"
	"github.com/jmartinezl/game-leaderboard/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScoreGetHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	scoreID := uuid.New()
	createdAt := mustParseTime(t, "2026-03-01T10:00:00Z")

	tests := []struct {
		name          string
		pathID        string
		mockSetup     func(m *MockScoreGetter)
		expectedCode  int
		expectedError string
	}{
		{
			name:   "success",
			pathID: scoreID.String(),
			mockSetup: func(m *MockScoreGetter) {
				m.EXPECT().GetByID(gomock.Any(), scoreID).Return(&models.ScoreDB{
					ScoreID:   scoreID,
					Author:    "mrs",
					Score:     900,
					Mode:      models.ModeHard,
					CreatedAt: createdAt,
				}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:   "score not found",
			pathID: scoreID.String(),
			mockSetup: func(m *MockScoreGetter) {
				m.EXPECT().GetByID(gomock.Any(), scoreID).Return(nil, services.ErrScoreNotFound)
			},
			expectedCode:  http.StatusNotFound,
			expectedError: "The score with the given ID was not found.",
		},
		{
			name:          "malformed id",
			pathID:        "not-a-uuid",
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid id.",
		},
		{
			name:   "internal server error",
			pathID: scoreID.String(),
			mockSetup: func(m *MockScoreGetter) {
				m.EXPECT().GetByID(gomock.Any(), scoreID).Return(nil, errors.New("database failure"))
			},
			expectedCode:  http.StatusInternalServerError,
			expectedError: "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockScoreGetter(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockSvc)
			}

			r := chi.NewRouter()
			r.With(middlewares.ScoreIDMiddleware).
				Get("/scores/{scoreId}", NewScoreGetHandler(mockSvc))

			req := httptest.NewRequest(http.MethodGet, "/scores/"+tt.pathID, nil)
			rr := httptest.NewRecorder()
			r.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			if tt.expectedError != "" {
				var resp map[string]string
				assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
				assert.Equal(t, tt.expectedError, resp["error"])
				return
			}

			var resp ScoreResponse
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
			assert.Equal(t, scoreID, resp.ScoreID)
			assert.Equal(t, "mrs", resp.Author)
			assert.Equal(t, int64(900), resp.Score)
			assert.Equal(t, models.ModeHard, resp.Mode)
			assert.True(t, resp.CreatedAt.Equal(createdAt))
		})
	}
}
