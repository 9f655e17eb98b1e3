package repositories

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func setupPlayerPostgresContainer(t *testing.T) (*sqlx.DB, func()) {
	t.Helper()

	req := tc.ContainerRequest{
		Image:        "postgres:15-alpine",
		Env:          map[string]string{"POSTGRES_PASSWORD": "password", "POSTGRES_DB": "testdb", "POSTGRES_USER": "postgres"},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor:   wait.ForListeningPort("5432/tcp"),
	}

	container, err := tc.GenericContainer(context.Background(), tc.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)

	host, _ := container.Host(context.Background())
	port, _ := container.MappedPort(context.Background(), "5432")

	dsn := fmt.Sprintf("postgres://postgres:password@%s:%d/testdb?sslmode=disable", host, port.Int())

	var db *sqlx.DB
	for i := 0; i < 10; i++ {
		db, err = sqlx.Connect("pgx", dsn)
		if err == nil {
			break
		}
		time.Sleep(time.Second)
	}
	require.NoError(t, err)

	schema := `
	CREATE TABLE IF NOT EXISTS players (
		player_id UUID PRIMARY KEY,
		email VARCHAR(100) NOT NULL,
		nickname VARCHAR(50),
		password_hash VARCHAR(255) NOT NULL,
		game_time BIGINT NOT NULL DEFAULT 0 CHECK (game_time >= 0),
		is_admin BOOLEAN NOT NULL DEFAULT FALSE,
		created_at TIMESTAMP NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMP
	);
	CREATE UNIQUE INDEX IF NOT EXISTS players_email_idx ON players (email);
	`
	_, err = db.Exec(schema)
	require.NoError(t, err)

	teardown := func() {
		db.Close()
		container.Terminate(context.Background())
	}

	return db, teardown
}

func TestPlayerWriteRepository_Save(t *testing.T) {
	db, teardown := setupPlayerPostgresContainer(t)
	defer teardown()

	repo := NewPlayerWriteRepository(db, nil)
	ctx := context.Background()

	playerID := uuid.New()
	player, err := repo.Save(ctx, playerID, "marisa@example.com", "hashed-password", 30)
	require.NoError(t, err)
	require.NotNil(t, player)

	assert.Equal(t, playerID, player.PlayerID)
	assert.Equal(t, "marisa@example.com", player.Email)
	assert.Equal(t, "hashed-password", player.PasswordHash)
	assert.Equal(t, int64(30), player.GameTime)
	assert.False(t, player.IsAdmin)
	assert.False(t, player.CreatedAt.IsZero())
	assert.Nil(t, player.UpdatedAt)
}

func TestPlayerWriteRepository_SaveDuplicateEmail(t *testing.T) {
	db, teardown := setupPlayerPostgresContainer(t)
	defer teardown()

	repo := NewPlayerWriteRepository(db, nil)
	ctx := context.Background()

	_, err := repo.Save(ctx, uuid.New(), "marisa@example.com", "hash-one", 0)
	require.NoError(t, err)

	_, err = repo.Save(ctx, uuid.New(), "marisa@example.com", "hash-two", 0)
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestPlayerReadRepository(t *testing.T) {
	db, teardown := setupPlayerPostgresContainer(t)
	defer teardown()

	writeRepo := NewPlayerWriteRepository(db, nil)
	readRepo := NewPlayerReadRepository(db)
	ctx := context.Background()

	playerID := uuid.New()
	_, err := writeRepo.Save(ctx, playerID, "marisa@example.com", "hashed-password", 0)
	require.NoError(t, err)

	t.Run("GetByEmail", func(t *testing.T) {
		player, err := readRepo.GetByEmail(ctx, "marisa@example.com")
		require.NoError(t, err)
		require.NotNil(t, player)
		assert.Equal(t, playerID, player.PlayerID)
	})

	t.Run("GetByEmail missing", func(t *testing.T) {
		player, err := readRepo.GetByEmail(ctx, "nobody@example.com")
		assert.NoError(t, err)
		assert.Nil(t, player)
	})

	t.Run("GetByID", func(t *testing.T) {
		player, err := readRepo.GetByID(ctx, playerID)
		require.NoError(t, err)
		require.NotNil(t, player)
		assert.Equal(t, "marisa@example.com", player.Email)
	})

	t.Run("GetByID missing", func(t *testing.T) {
		player, err := readRepo.GetByID(ctx, uuid.New())
		assert.NoError(t, err)
		assert.Nil(t, player)
	})
}

func TestPlayerWriteRepository_UpdatePassword(t *testing.T) {
	db, teardown := setupPlayerPostgresContainer(t)
	defer teardown()

	repo := NewPlayerWriteRepository(db, nil)
	ctx := context.Background()

	playerID := uuid.New()
	_, err := repo.Save(ctx, playerID, "marisa@example.com", "old-hash", 0)
	require.NoError(t, err)

	player, err := repo.UpdatePassword(ctx, playerID, "new-hash")
	require.NoError(t, err)
	require.NotNil(t, player)
	assert.Equal(t, "new-hash", player.PasswordHash)
	assert.NotNil(t, player.UpdatedAt)

	t.Run("missing player", func(t *testing.T) {
		player, err := repo.UpdatePassword(ctx, uuid.New(), "new-hash")
		assert.NoError(t, err)
		assert.Nil(t, player)
	})
}

func TestPlayerWriteRepository_AddGameTime(t *testing.T) {
	db, teardown := setupPlayerPostgresContainer(t)
	defer teardown()

	repo := NewPlayerWriteRepository(db, nil)
	ctx := context.Background()

	playerID := uuid.New()
	_, err := repo.Save(ctx, playerID, "marisa@example.com", "hashed-password", 100)
	require.NoError(t, err)

	player, err := repo.AddGameTime(ctx, playerID, 20)
	require.NoError(t, err)
	require.NotNil(t, player)
	assert.Equal(t, int64(120), player.GameTime)

	// Sequential increments accumulate.
	player, err = repo.AddGameTime(ctx, playerID, 30)
	require.NoError(t, err)
	assert.Equal(t, int64(150), player.GameTime)

	t.Run("missing player", func(t *testing.T) {
		player, err := repo.AddGameTime(ctx, uuid.New(), 10)
		assert.NoError(t, err)
		assert.Nil(t, player)
	})
}

func TestPlayerWriteRepository_Delete(t *testing.T) {
	db, teardown := setupPlayerPostgresContainer(t)
	defer teardown()

	repo := NewPlayerWriteRepository(db, nil)
	ctx := context.Background()

	playerID := uuid.New()
	_, err := repo.Save(ctx, playerID, "marisa@example.com", "hashed-password", 0)
	require.NoError(t, err)

	deleted, err := repo.Delete(ctx, playerID)
	require.NoError(t, err)
	assert.True(t, deleted)

	// Second delete finds nothing.
	deleted, err = repo.Delete(ctx, playerID)
	require.NoError(t, err)
	assert.False(t, deleted)
}
