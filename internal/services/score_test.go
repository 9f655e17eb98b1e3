package services

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/jmartinezl/game-leaderboard/internal/jwt"
	"github.com/jmartinezl/game-leaderboard/internal/models"
	kafka "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScoreServiceList(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		reader := NewMockScoreReader(ctrl)
		reader.EXPECT().List(gomock.Any()).Return([]models.ScoreDB{
			{Author: "mrs", Score: 900},
			{Author: "rmu", Score: 500},
		}, nil)

		svc := NewScoreService(reader, nil, nil)

		scores, err := svc.List(ctx)
		require.NoError(t, err)
		assert.Len(t, scores, 2)
	})

	t.Run("read failure", func(t *testing.T) {
		reader := NewMockScoreReader(ctrl)
		reader.EXPECT().List(gomock.Any()).Return(nil, errors.New("database failure"))

		svc := NewScoreService(reader, nil, nil)

		_, err := svc.List(ctx)
		assert.Error(t, err)
	})
}

func TestScoreServiceGetByID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	scoreID := uuid.New()

	t.Run("success", func(t *testing.T) {
		reader := NewMockScoreReader(ctrl)
		reader.EXPECT().GetByID(gomock.Any(), scoreID).Return(&models.ScoreDB{ScoreID: scoreID}, nil)

		svc := NewScoreService(reader, nil, nil)

		score, err := svc.GetByID(ctx, scoreID)
		require.NoError(t, err)
		assert.Equal(t, scoreID, score.ScoreID)
	})

	t.Run("not found", func(t *testing.T) {
		reader := NewMockScoreReader(ctrl)
		reader.EXPECT().GetByID(gomock.Any(), scoreID).Return(nil, nil)

		svc := NewScoreService(reader, nil, nil)

		_, err := svc.GetByID(ctx, scoreID)
		assert.ErrorIs(t, err, ErrScoreNotFound)
	})
}

func TestScoreServiceSubmit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	playerID := uuid.New()
	claims := &jwt.Claims{PlayerID: playerID, Email: "marisa@example.com"}

	t.Run("stamps snapshot and publishes event", func(t *testing.T) {
		writer := NewMockScoreWriter(ctrl)
		kw := NewMockKafkaWriter(ctrl)

		var saved models.ScoreDB
		writer.EXPECT().
			Save(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, score *models.ScoreDB) (*models.ScoreDB, error) {
				assert.Equal(t, "mrs", score.Author)
				assert.Equal(t, int64(100), score.Score)
				assert.Equal(t, models.ModeEasy, score.Mode)
				assert.Equal(t, playerID, score.PlayerID)
				assert.Equal(t, "marisa@example.com", score.PlayerEmail)
				assert.Equal(t, "mrs", score.PlayerNickname)
				saved = *score
				return score, nil
			})
		kw.EXPECT().
			WriteMessages(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, msgs ...kafka.Message) error {
				require.Len(t, msgs, 1)

				var event models.ScoreEvent
				require.NoError(t, json.Unmarshal(msgs[0].Value, &event))
				assert.Equal(t, "score_submitted", event.Event)
				assert.Equal(t, saved.ScoreID.String(), event.ScoreID)
				assert.Equal(t, playerID.String(), event.PlayerID)
				assert.Equal(t, int64(100), event.Score)
				assert.Equal(t, string(msgs[0].Key), event.ScoreID)
				return nil
			})

		svc := NewScoreService(nil, writer, kw)

		score, err := svc.Submit(ctx, claims, " mrs ", 100, " EASY ")
		require.NoError(t, err)
		assert.Equal(t, models.ModeEasy, score.Mode)
	})

	t.Run("nil kafka writer skips publishing", func(t *testing.T) {
		writer := NewMockScoreWriter(ctrl)
		writer.EXPECT().
			Save(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, score *models.ScoreDB) (*models.ScoreDB, error) {
				return score, nil
			})

		svc := NewScoreService(nil, writer, nil)

		_, err := svc.Submit(ctx, claims, "mrs", 100, "easy")
		assert.NoError(t, err)
	})

	t.Run("publish failure does not fail the submission", func(t *testing.T) {
		writer := NewMockScoreWriter(ctrl)
		kw := NewMockKafkaWriter(ctrl)

		writer.EXPECT().
			Save(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, score *models.ScoreDB) (*models.ScoreDB, error) {
				return score, nil
			})
		kw.EXPECT().
			WriteMessages(gomock.Any(), gomock.Any()).
			Return(errors.New("broker down"))

		svc := NewScoreService(nil, writer, kw)

		_, err := svc.Submit(ctx, claims, "mrs", 100, "easy")
		assert.NoError(t, err)
	})

	t.Run("save failure", func(t *testing.T) {
		writer := NewMockScoreWriter(ctrl)
		writer.EXPECT().
			Save(gomock.Any(), gomock.Any()).
			Return(nil, errors.New("database failure"))

		svc := NewScoreService(nil, writer, nil)

		_, err := svc.Submit(ctx, claims, "mrs", 100, "easy")
		assert.Error(t, err)
	})
}

func TestScoreServiceUpdatePoints(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	scoreID := uuid.New()
	playerID := uuid.New()

	t.Run("success publishes score_updated", func(t *testing.T) {
		writer := NewMockScoreWriter(ctrl)
		kw := NewMockKafkaWriter(ctrl)

		writer.EXPECT().
			UpdatePoints(gomock.Any(), scoreID, int64(200)).
			Return(&models.ScoreDB{ScoreID: scoreID, PlayerID: playerID, Score: 200, Mode: models.ModeHard}, nil)
		kw.EXPECT().
			WriteMessages(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, msgs ...kafka.Message) error {
				var event models.ScoreEvent
				require.NoError(t, json.Unmarshal(msgs[0].Value, &event))
				assert.Equal(t, "score_updated", event.Event)
				assert.Equal(t, int64(200), event.Score)
				return nil
			})

		svc := NewScoreService(nil, writer, kw)

		score, err := svc.UpdatePoints(ctx, scoreID, 200)
		require.NoError(t, err)
		assert.Equal(t, int64(200), score.Score)
	})

	t.Run("not found", func(t *testing.T) {
		writer := NewMockScoreWriter(ctrl)
		writer.EXPECT().UpdatePoints(gomock.Any(), scoreID, int64(200)).Return(nil, nil)

		svc := NewScoreService(nil, writer, nil)

		_, err := svc.UpdatePoints(ctx, scoreID, 200)
		assert.ErrorIs(t, err, ErrScoreNotFound)
	})
}

func TestScoreServiceRemove(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	scoreID := uuid.New()

	t.Run("success publishes score_deleted", func(t *testing.T) {
		writer := NewMockScoreWriter(ctrl)
		kw := NewMockKafkaWriter(ctrl)

		writer.EXPECT().Delete(gomock.Any(), scoreID).Return(true, nil)
		kw.EXPECT().
			WriteMessages(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, msgs ...kafka.Message) error {
				var event models.ScoreEvent
				require.NoError(t, json.Unmarshal(msgs[0].Value, &event))
				assert.Equal(t, "score_deleted", event.Event)
				assert.Equal(t, scoreID.String(), event.ScoreID)
				return nil
			})

		svc := NewScoreService(nil, writer, kw)
		assert.NoError(t, svc.Remove(ctx, scoreID))
	})

	t.Run("not found", func(t *testing.T) {
		writer := NewMockScoreWriter(ctrl)
		writer.EXPECT().Delete(gomock.Any(), scoreID).Return(false, nil)

		svc := NewScoreService(nil, writer, nil)
		assert.ErrorIs(t, svc.Remove(ctx, scoreID), ErrScoreNotFound)
	})

	t.Run("delete failure", func(t *testing.T) {
		writer := NewMockScoreWriter(ctrl)
		writer.EXPECT().Delete(gomock.Any(), scoreID).Return(false, errors.New("database failure"))

		svc := NewScoreService(nil, writer, nil)
		assert.Error(t, svc.Remove(ctx, scoreID))
	})
}
