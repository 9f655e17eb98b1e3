package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/jmartinezl/game-leaderboard/internal/logger"
	"github.com/jmartinezl/game-leaderboard/internal/models"
	"github.com/jmoiron/sqlx"
)

const scoreColumns = "score_id, author, score, mode, created_at, updated_at, player_id, player_email, player_nickname"

// ScoreReadRepository handles score read operations.
type ScoreReadRepository struct {
	db *sqlx.DB
}

func NewScoreReadRepository(db *sqlx.DB) *ScoreReadRepository {
	return &ScoreReadRepository{db: db}
}

// List returns all scores ordered by score value descending. Tie order
// is whatever the database returns.
func (r *ScoreReadRepository) List(ctx context.Context) ([]models.ScoreDB, error) {
	query := `SELECT ` + scoreColumns + ` FROM scores ORDER BY score DESC`

	var scores []models.ScoreDB
	err := r.db.SelectContext(ctx, &scores, query)

	logger.Log.Infow("query executed",
		"query", query,
		"rows", len(scores),
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return scores, nil
}

// GetByID returns the score with the given id, or nil when absent.
func (r *ScoreReadRepository) GetByID(ctx context.Context, scoreID uuid.UUID) (*models.ScoreDB, error) {
	query := `SELECT ` + scoreColumns + ` FROM scores WHERE score_id = $1`

	var score models.ScoreDB
	err := r.db.GetContext(ctx, &score, query, scoreID)

	logger.Log.Infow("query executed",
		"query", query,
		"args", []any{scoreID},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &score, nil
}

// ScoreWriteRepository handles score write operations.
type ScoreWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewScoreWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *ScoreWriteRepository {
	return &ScoreWriteRepository{db: db, txGetter: txGetter}
}

func (r *ScoreWriteRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

// Save inserts a new score with its player snapshot and returns the
// persisted record.
func (r *ScoreWriteRepository) Save(ctx context.Context, score *models.ScoreDB) (*models.ScoreDB, error) {
	query := `
		INSERT INTO scores (score_id, author, score, mode, created_at, player_id, player_email, player_nickname)
		VALUES ($1, $2, $3, $4, NOW(), $5, $6, $7)
		RETURNING ` + scoreColumns
	args := []any{score.ScoreID, score.Author, score.Score, score.Mode, score.PlayerID, score.PlayerEmail, score.PlayerNickname}

	var saved models.ScoreDB
	err := sqlx.GetContext(ctx, r.executor(ctx), &saved, query, args...)

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return &saved, nil
}

// UpdatePoints replaces the score value and stamps updated_at. The
// player snapshot columns are deliberately untouched. Returns nil when
// the score no longer exists.
func (r *ScoreWriteRepository) UpdatePoints(ctx context.Context, scoreID uuid.UUID, points int64) (*models.ScoreDB, error) {
	query := `
		UPDATE scores
		SET score = $2, updated_at = NOW()
		WHERE score_id = $1
		RETURNING ` + scoreColumns

	var score models.ScoreDB
	err := sqlx.GetContext(ctx, r.executor(ctx), &score, query, scoreID, points)

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{scoreID, points},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &score, nil
}

// Delete removes a score. Returns false when no such score exists.
func (r *ScoreWriteRepository) Delete(ctx context.Context, scoreID uuid.UUID) (bool, error) {
	query := `DELETE FROM scores WHERE score_id = $1`

	res, err := r.executor(ctx).ExecContext(ctx, query, scoreID)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow("query executed",
		"query", query,
		"args", []any{scoreID},
		"rows_affected", rowsAffected,
		"error", err,
	)

	if err != nil {
		return false, err
	}
	return rowsAffected > 0, nil
}
