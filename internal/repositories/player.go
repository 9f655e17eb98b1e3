package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmartinezl/game-leaderboard/internal/logger"
	"github.com/jmartinezl/game-leaderboard/internal/models"
	"github.com/jmoiron/sqlx"
)

const playerColumns = "player_id, email, nickname, password_hash, game_time, is_admin, created_at, updated_at"

// ErrEmailTaken is returned by Save when the email unique index rejects
// an insert. The index is the actual uniqueness guarantee for
// registration; there is no racy pre-read.
var ErrEmailTaken = errors.New("email already taken")

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation
}

// PlayerReadRepository handles player read operations.
type PlayerReadRepository struct {
	db *sqlx.DB
}

func NewPlayerReadRepository(db *sqlx.DB) *PlayerReadRepository {
	return &PlayerReadRepository{db: db}
}

// GetByEmail returns the player with the given email, or nil when absent.
func (r *PlayerReadRepository) GetByEmail(ctx context.Context, email string) (*models.PlayerDB, error) {
	query := `SELECT ` + playerColumns + ` FROM players WHERE email = $1`

	var player models.PlayerDB
	err := r.db.GetContext(ctx, &player, query, email)

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{email},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &player, nil
}

// GetByID returns the player with the given id, or nil when absent.
func (r *PlayerReadRepository) GetByID(ctx context.Context, playerID uuid.UUID) (*models.PlayerDB, error) {
	query := `SELECT ` + playerColumns + ` FROM players WHERE player_id = $1`

	var player models.PlayerDB
	err := r.db.GetContext(ctx, &player, query, playerID)

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{playerID},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &player, nil
}

// PlayerWriteRepository handles player write operations.
type PlayerWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewPlayerWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *PlayerWriteRepository {
	return &PlayerWriteRepository{db: db, txGetter: txGetter}
}

func (r *PlayerWriteRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

// Save inserts a new player. A duplicate email surfaces as
// ErrEmailTaken via the unique index on the email column.
func (r *PlayerWriteRepository) Save(ctx context.Context, playerID uuid.UUID, email, passwordHash string, gameTime int64) (*models.PlayerDB, error) {
	query := `
		INSERT INTO players (player_id, email, password_hash, game_time, created_at)
		VALUES ($1, $2, $3, $4, NOW())
		RETURNING ` + playerColumns
	args := []any{playerID, email, passwordHash, gameTime}

	var player models.PlayerDB
	err := sqlx.GetContext(ctx, r.executor(ctx), &player, query, args...)

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{playerID, email, gameTime},
		"error", err,
	)

	if isUniqueViolation(err) {
		return nil, ErrEmailTaken
	}
	if err != nil {
		return nil, err
	}
	return &player, nil
}

// UpdatePassword replaces the stored password hash and stamps updated_at.
// Returns nil when the player no longer exists.
func (r *PlayerWriteRepository) UpdatePassword(ctx context.Context, playerID uuid.UUID, passwordHash string) (*models.PlayerDB, error) {
	query := `
		UPDATE players
		SET password_hash = $2, updated_at = NOW()
		WHERE player_id = $1
		RETURNING ` + playerColumns

	var player models.PlayerDB
	err := sqlx.GetContext(ctx, r.executor(ctx), &player, query, playerID, passwordHash)

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{playerID},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &player, nil
}

// AddGameTime adds delta to the stored game time in a single statement,
// so concurrent increments cannot lose updates. Returns nil when the
// player no longer exists.
func (r *PlayerWriteRepository) AddGameTime(ctx context.Context, playerID uuid.UUID, delta int64) (*models.PlayerDB, error) {
	query := `
		UPDATE players
		SET game_time = game_time + $2, updated_at = NOW()
		WHERE player_id = $1
		RETURNING ` + playerColumns

	var player models.PlayerDB
	err := sqlx.GetContext(ctx, r.executor(ctx), &player, query, playerID, delta)

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{playerID, delta},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &player, nil
}

// Delete removes a player. Returns false when no such player exists.
func (r *PlayerWriteRepository) Delete(ctx context.Context, playerID uuid.UUID) (bool, error) {
	query := `DELETE FROM players WHERE player_id = $1`

	res, err := r.executor(ctx).ExecContext(ctx, query, playerID)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow("query executed",
		"query", query,
		"args", []any{playerID},
		"rows_affected", rowsAffected,
		"error", err,
	)

	if err != nil {
		return false, err
	}
	return rowsAffected > 0, nil
}
