package repositories

import (
	"context"
	"time"

	"github.com/jmartinezl/game-leaderboard/internal/logger"
	"github.com/redis/go-redis/v9"
)

const revokedKeyPrefix = "revoked_token:"

// TokenRevocationRepository stores logged-out tokens in Redis until
// they can no longer be presented. Tokens have no server-side session,
// so logout is implemented as a denylist with a TTL.
type TokenRevocationRepository struct {
	client *redis.Client
	ttl    time.Duration
}

// NewTokenRevocationRepository creates a new repository with the given
// denylist TTL.
func NewTokenRevocationRepository(client *redis.Client, ttl time.Duration) *TokenRevocationRepository {
	return &TokenRevocationRepository{client: client, ttl: ttl}
}

// Revoke marks a token as logged out for the configured TTL.
func (r *TokenRevocationRepository) Revoke(ctx context.Context, token string) error {
	key := revokedKeyPrefix + token
	err := r.client.Set(ctx, key, "1", r.ttl).Err()

	logger.Log.Infow("token revoked",
		"ttl", r.ttl,
		"error", err,
	)

	return err
}

// IsRevoked reports whether a token has been revoked.
func (r *TokenRevocationRepository) IsRevoked(ctx context.Context, token string) (bool, error) {
	n, err := r.client.Exists(ctx, revokedKeyPrefix+token).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
