package services

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmartinezl/game-leaderboard/internal/jwt"
	"github.com/jmartinezl/game-leaderboard/internal/logger"
	"github.com/jmartinezl/game-leaderboard/internal/models"
	"github.com/segmentio/kafka-go"
)

// ErrScoreNotFound is returned when the targeted score record is absent.
var ErrScoreNotFound = errors.New("score not found")

// ScoreReader defines read operations for scores.
type ScoreReader interface {
	List(ctx context.Context) ([]models.ScoreDB, error)
	GetByID(ctx context.Context, scoreID uuid.UUID) (*models.ScoreDB, error)
}

// ScoreWriter defines write operations for scores.
type ScoreWriter interface {
	Save(ctx context.Context, score *models.ScoreDB) (*models.ScoreDB, error)
	UpdatePoints(ctx context.Context, scoreID uuid.UUID, points int64) (*models.ScoreDB, error)
	Delete(ctx context.Context, scoreID uuid.UUID) (bool, error)
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// ScoreService handles score operations and event publishing.
type ScoreService struct {
	reader      ScoreReader
	writer      ScoreWriter
	kafkaWriter KafkaWriter
}

// NewScoreService creates a new ScoreService. kafkaWriter may be nil,
// in which case events are not published.
func NewScoreService(reader ScoreReader, writer ScoreWriter, kafkaWriter KafkaWriter) *ScoreService {
	return &ScoreService{
		reader:      reader,
		writer:      writer,
		kafkaWriter: kafkaWriter,
	}
}

// publishEvent publishes a score event to Kafka on a best-effort basis.
func (svc *ScoreService) publishEvent(ctx context.Context, event models.ScoreEvent) {
	if svc.kafkaWriter == nil {
		logger.Log.Warnw("Kafka writer not configured, skipping publishing", "event", event.Event, "score_id", event.ScoreID)
		return
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("failed to marshal score event", "event", event.Event, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(event.ScoreID),
		Value: data,
	}

	if err := svc.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("failed to publish score event", "event", event.Event, "score_id", event.ScoreID, "error", err)
	} else {
		logger.Log.Infow("score event published", "event", event.Event, "score_id", event.ScoreID)
	}
}

// List returns all scores ordered by score value descending.
func (svc *ScoreService) List(ctx context.Context) ([]models.ScoreDB, error) {
	scores, err := svc.reader.List(ctx)
	if err != nil {
		logger.Log.Errorw("failed to list scores", "err", err)
		return nil, err
	}
	return scores, nil
}

// GetByID returns a single score.
func (svc *ScoreService) GetByID(ctx context.Context, scoreID uuid.UUID) (*models.ScoreDB, error) {
	score, err := svc.reader.GetByID(ctx, scoreID)
	if err != nil {
		logger.Log.Errorw("failed to get score", "score_id", scoreID, "err", err)
		return nil, err
	}
	if score == nil {
		return nil, ErrScoreNotFound
	}
	return score, nil
}

// Submit persists a new score for the authenticated player. The player
// snapshot is stamped from the current identity at write time; the
// submitted author name doubles as the snapshot nickname.
func (svc *ScoreService) Submit(ctx context.Context, claims *jwt.Claims, author string, points int64, mode string) (*models.ScoreDB, error) {
	score := &models.ScoreDB{
		ScoreID:        uuid.New(),
		Author:         strings.TrimSpace(author),
		Score:          points,
		Mode:           strings.ToLower(strings.TrimSpace(mode)),
		PlayerID:       claims.PlayerID,
		PlayerEmail:    claims.Email,
		PlayerNickname: strings.TrimSpace(author),
	}

	saved, err := svc.writer.Save(ctx, score)
	if err != nil {
		logger.Log.Errorw("failed to save score", "err", err)
		return nil, err
	}

	svc.publishEvent(ctx, models.ScoreEvent{
		EventID:   uuid.NewString(),
		Event:     "score_submitted",
		ScoreID:   saved.ScoreID.String(),
		PlayerID:  saved.PlayerID.String(),
		Score:     saved.Score,
		Mode:      saved.Mode,
		Timestamp: time.Now().Unix(),
	})

	return saved, nil
}

// UpdatePoints replaces a score's value. The embedded player snapshot is
// never re-synced by an update.
func (svc *ScoreService) UpdatePoints(ctx context.Context, scoreID uuid.UUID, points int64) (*models.ScoreDB, error) {
	score, err := svc.writer.UpdatePoints(ctx, scoreID, points)
	if err != nil {
		logger.Log.Errorw("failed to update score", "score_id", scoreID, "err", err)
		return nil, err
	}
	if score == nil {
		return nil, ErrScoreNotFound
	}

	svc.publishEvent(ctx, models.ScoreEvent{
		EventID:   uuid.NewString(),
		Event:     "score_updated",
		ScoreID:   score.ScoreID.String(),
		PlayerID:  score.PlayerID.String(),
		Score:     score.Score,
		Mode:      score.Mode,
		Timestamp: time.Now().Unix(),
	})

	return score, nil
}

// Remove deletes a score.
func (svc *ScoreService) Remove(ctx context.Context, scoreID uuid.UUID) error {
	deleted, err := svc.writer.Delete(ctx, scoreID)
	if err != nil {
		logger.Log.Errorw("failed to delete score", "score_id", scoreID, "err", err)
		return err
	}
	if !deleted {
		return ErrScoreNotFound
	}

	svc.publishEvent(ctx, models.ScoreEvent{
		EventID:   uuid.NewString(),
		Event:     "score_deleted",
		ScoreID:   scoreID.String(),
		Timestamp: time.Now().Unix(),
	})

	return nil
}
