package repositories

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jmartinezl/game-leaderboard/internal/models"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var scoreColumnList = []string{
	"score_id", "author", "score", "mode", "created_at", "updated_at",
	"player_id", "player_email", "player_nickname",
}

func newScoreMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return sqlx.NewDb(db, "sqlmock"), mock
}

func scoreRow(score models.ScoreDB) *sqlmock.Rows {
	return sqlmock.NewRows(scoreColumnList).AddRow(
		score.ScoreID, score.Author, score.Score, score.Mode,
		score.CreatedAt, score.UpdatedAt,
		score.PlayerID, score.PlayerEmail, score.PlayerNickname,
	)
}

func TestScoreReadRepository_List(t *testing.T) {
	db, mock := newScoreMockDB(t)
	repo := NewScoreReadRepository(db)
	ctx := context.Background()

	first := models.ScoreDB{
		ScoreID: uuid.New(), Author: "mrs", Score: 900, Mode: models.ModeLunatic,
		CreatedAt: time.Now(), PlayerID: uuid.New(), PlayerEmail: "marisa@example.com", PlayerNickname: "mrs",
	}
	second := models.ScoreDB{
		ScoreID: uuid.New(), Author: "rmu", Score: 500, Mode: models.ModeEasy,
		CreatedAt: time.Now(), PlayerID: uuid.New(), PlayerEmail: "reimu@example.com", PlayerNickname: "rmu",
	}

	rows := sqlmock.NewRows(scoreColumnList).
		AddRow(first.ScoreID, first.Author, first.Score, first.Mode, first.CreatedAt, first.UpdatedAt, first.PlayerID, first.PlayerEmail, first.PlayerNickname).
		AddRow(second.ScoreID, second.Author, second.Score, second.Mode, second.CreatedAt, second.UpdatedAt, second.PlayerID, second.PlayerEmail, second.PlayerNickname)

	mock.ExpectQuery(`SELECT .+ FROM scores ORDER BY score DESC`).WillReturnRows(rows)

	scores, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, scores, 2)
	assert.Equal(t, first.ScoreID, scores[0].ScoreID)
	assert.Equal(t, second.ScoreID, scores[1].ScoreID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestScoreReadRepository_GetByID(t *testing.T) {
	db, mock := newScoreMockDB(t)
	repo := NewScoreReadRepository(db)
	ctx := context.Background()

	stored := models.ScoreDB{
		ScoreID: uuid.New(), Author: "mrs", Score: 900, Mode: models.ModeHard,
		CreatedAt: time.Now(), PlayerID: uuid.New(), PlayerEmail: "marisa@example.com", PlayerNickname: "mrs",
	}

	t.Run("found", func(t *testing.T) {
		mock.ExpectQuery(`SELECT .+ FROM scores WHERE score_id = \$1`).
			WithArgs(stored.ScoreID).
			WillReturnRows(scoreRow(stored))

		score, err := repo.GetByID(ctx, stored.ScoreID)
		require.NoError(t, err)
		require.NotNil(t, score)
		assert.Equal(t, stored.Author, score.Author)
	})

	t.Run("missing", func(t *testing.T) {
		missingID := uuid.New()
		mock.ExpectQuery(`SELECT .+ FROM scores WHERE score_id = \$1`).
			WithArgs(missingID).
			WillReturnRows(sqlmock.NewRows(scoreColumnList))

		score, err := repo.GetByID(ctx, missingID)
		assert.NoError(t, err)
		assert.Nil(t, score)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestScoreWriteRepository_Save(t *testing.T) {
	db, mock := newScoreMockDB(t)
	repo := NewScoreWriteRepository(db, nil)
	ctx := context.Background()

	score := &models.ScoreDB{
		ScoreID: uuid.New(), Author: "mrs", Score: 100, Mode: models.ModeEasy,
		PlayerID: uuid.New(), PlayerEmail: "marisa@example.com", PlayerNickname: "mrs",
	}
	stored := *score
	stored.CreatedAt = time.Now()

	mock.ExpectQuery(`(?s)INSERT INTO scores.+RETURNING`).
		WithArgs(score.ScoreID, score.Author, score.Score, score.Mode, score.PlayerID, score.PlayerEmail, score.PlayerNickname).
		WillReturnRows(scoreRow(stored))

	saved, err := repo.Save(ctx, score)
	require.NoError(t, err)
	assert.Equal(t, score.ScoreID, saved.ScoreID)
	assert.False(t, saved.CreatedAt.IsZero())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestScoreWriteRepository_UpdatePoints(t *testing.T) {
	db, mock := newScoreMockDB(t)
	repo := NewScoreWriteRepository(db, nil)
	ctx := context.Background()

	scoreID := uuid.New()
	updatedAt := time.Now()
	stored := models.ScoreDB{
		ScoreID: scoreID, Author: "mrs", Score: 200, Mode: models.ModeNormal,
		CreatedAt: time.Now().Add(-time.Hour), UpdatedAt: &updatedAt,
		PlayerID: uuid.New(), PlayerEmail: "marisa@example.com", PlayerNickname: "mrs",
	}

	t.Run("found", func(t *testing.T) {
		mock.ExpectQuery(`(?s)UPDATE scores\s+SET score = \$2, updated_at = NOW\(\)\s+WHERE score_id = \$1\s+RETURNING`).
			WithArgs(scoreID, int64(200)).
			WillReturnRows(scoreRow(stored))

		score, err := repo.UpdatePoints(ctx, scoreID, 200)
		require.NoError(t, err)
		require.NotNil(t, score)
		assert.Equal(t, int64(200), score.Score)
		require.NotNil(t, score.UpdatedAt)
	})

	t.Run("missing", func(t *testing.T) {
		missingID := uuid.New()
		mock.ExpectQuery(`(?s)UPDATE scores\s+SET score = \$2, updated_at = NOW\(\)\s+WHERE score_id = \$1\s+RETURNING`).
			WithArgs(missingID, int64(200)).
			WillReturnRows(sqlmock.NewRows(scoreColumnList))

		score, err := repo.UpdatePoints(ctx, missingID, 200)
		assert.NoError(t, err)
		assert.Nil(t, score)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestScoreWriteRepository_Delete(t *testing.T) {
	db, mock := newScoreMockDB(t)
	repo := NewScoreWriteRepository(db, nil)
	ctx := context.Background()

	scoreID := uuid.New()

	t.Run("found", func(t *testing.T) {
		mock.ExpectExec(`DELETE FROM scores WHERE score_id = \$1`).
			WithArgs(scoreID).
			WillReturnResult(sqlmock.NewResult(0, 1))

		deleted, err := repo.Delete(ctx, scoreID)
		require.NoError(t, err)
		assert.True(t, deleted)
	})

	t.Run("missing", func(t *testing.T) {
		mock.ExpectExec(`DELETE FROM scores WHERE score_id = \$1`).
			WithArgs(scoreID).
			WillReturnResult(sqlmock.NewResult(0, 0))

		deleted, err := repo.Delete(ctx, scoreID)
		require.NoError(t, err)
		assert.False(t, deleted)
	})

	t.Run("exec failure", func(t *testing.T) {
		mock.ExpectExec(`DELETE FROM scores WHERE score_id = \$1`).
			WithArgs(scoreID).
			WillReturnError(errors.New("connection reset"))

		deleted, err := repo.Delete(ctx, scoreID)
		assert.Error(t, err)
		assert.False(t, deleted)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}
