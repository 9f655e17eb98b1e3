package services

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jmartinezl/game-leaderboard/internal/logger"
	"github.com/jmartinezl/game-leaderboard/internal/models"
	"golang.org/x/crypto/bcrypt"
)

// ErrPlayerNotFound is returned when the targeted player record is gone,
// including when a valid token refers to a deleted account.
var ErrPlayerNotFound = errors.New("player not found")

// PlayerMutator defines the write operations on existing players.
type PlayerMutator interface {
	UpdatePassword(ctx context.Context, playerID uuid.UUID, passwordHash string) (*models.PlayerDB, error)
	AddGameTime(ctx context.Context, playerID uuid.UUID, delta int64) (*models.PlayerDB, error)
	Delete(ctx context.Context, playerID uuid.UUID) (bool, error)
}

// PlayerService handles mutations on existing player accounts.
type PlayerService struct {
	mutator PlayerMutator
}

// NewPlayerService creates a new PlayerService instance.
func NewPlayerService(mutator PlayerMutator) *PlayerService {
	return &PlayerService{mutator: mutator}
}

// ChangePassword hashes and stores a new password for the current player.
func (svc *PlayerService) ChangePassword(ctx context.Context, playerID uuid.UUID, newPassword string) (*models.PlayerDB, error) {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return nil, err
	}

	player, err := svc.mutator.UpdatePassword(ctx, playerID, string(hashedPassword))
	if err != nil {
		logger.Log.Errorw("failed to update password", "player_id", playerID, "err", err)
		return nil, err
	}
	if player == nil {
		return nil, ErrPlayerNotFound
	}
	return player, nil
}

// AddGameTime adds delta to the player's accumulated game time. The
// increment is applied in the database, so two sequential increments of
// a and b end up identical to one increment of a+b.
func (svc *PlayerService) AddGameTime(ctx context.Context, playerID uuid.UUID, delta int64) (*models.PlayerDB, error) {
	player, err := svc.mutator.AddGameTime(ctx, playerID, delta)
	if err != nil {
		logger.Log.Errorw("failed to add game time", "player_id", playerID, "err", err)
		return nil, err
	}
	if player == nil {
		return nil, ErrPlayerNotFound
	}
	return player, nil
}

// Remove deletes a player account. Admin authorization happens in the
// middleware chain before this is reached.
func (svc *PlayerService) Remove(ctx context.Context, playerID uuid.UUID) error {
	deleted, err := svc.mutator.Delete(ctx, playerID)
	if err != nil {
		logger.Log.Errorw("failed to delete player", "player_id", playerID, "err", err)
		return err
	}
	if !deleted {
		return ErrPlayerNotFound
	}
	return nil
}
