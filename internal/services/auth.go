package services

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jmartinezl/game-leaderboard/internal/logger"
	"github.com/jmartinezl/game-leaderboard/internal/models"
	"github.com/jmartinezl/game-leaderboard/internal/repositories"
	"golang.org/x/crypto/bcrypt"
)

// Error variables
var (
	ErrEmailAlreadyExists = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// PlayerReader defines read-only operations for players.
type PlayerReader interface {
	GetByEmail(ctx context.Context, email string) (*models.PlayerDB, error)
	GetByID(ctx context.Context, playerID uuid.UUID) (*models.PlayerDB, error)
}

// PlayerWriter defines the write operation needed for registration.
type PlayerWriter interface {
	Save(ctx context.Context, playerID uuid.UUID, email, passwordHash string, gameTime int64) (*models.PlayerDB, error)
}

// TokenGenerator issues signed session tokens.
type TokenGenerator interface {
	Generate(ctx context.Context, playerID uuid.UUID, email string, isAdmin bool) (string, error)
}

// TokenRevoker invalidates tokens at logout.
type TokenRevoker interface {
	Revoke(ctx context.Context, token string) error
}

// AuthService handles registration, login and logout.
type AuthService struct {
	reader  PlayerReader
	writer  PlayerWriter
	jwt     TokenGenerator
	revoker TokenRevoker
}

// NewAuthService creates a new AuthService instance. revoker may be nil,
// in which case logout is a no-op.
func NewAuthService(reader PlayerReader, writer PlayerWriter, jwt TokenGenerator, revoker TokenRevoker) *AuthService {
	return &AuthService{
		reader:  reader,
		writer:  writer,
		jwt:     jwt,
		revoker: revoker,
	}
}

// Register creates a new player and issues a session token so the
// client does not have to log in right after. Email uniqueness is
// enforced by the database, not by a pre-read.
func (svc *AuthService) Register(ctx context.Context, email, password string, gameTime int64) (*models.PlayerDB, string, error) {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return nil, "", err
	}

	player, err := svc.writer.Save(ctx, uuid.New(), email, string(hashedPassword), gameTime)
	if errors.Is(err, repositories.ErrEmailTaken) {
		logger.Log.Errorw("email already registered", "email", email)
		return nil, "", ErrEmailAlreadyExists
	}
	if err != nil {
		logger.Log.Errorw("failed to save player", "err", err)
		return nil, "", err
	}

	token, err := svc.jwt.Generate(ctx, player.PlayerID, player.Email, player.IsAdmin)
	if err != nil {
		logger.Log.Errorw("failed to generate token", "err", err)
		return nil, "", err
	}

	return player, token, nil
}

// Login authenticates a player and returns a session token. A missing
// account and a wrong password are indistinguishable to the caller.
func (svc *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	player, err := svc.reader.GetByEmail(ctx, email)
	if err != nil {
		logger.Log.Errorw("failed to get player", "err", err)
		return "", err
	}
	if player == nil {
		logger.Log.Errorw("login for unknown email", "email", email)
		return "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(player.PasswordHash), []byte(password)); err != nil {
		logger.Log.Errorw("invalid credentials", "email", email)
		return "", ErrInvalidCredentials
	}

	token, err := svc.jwt.Generate(ctx, player.PlayerID, player.Email, player.IsAdmin)
	if err != nil {
		logger.Log.Errorw("failed to generate token", "err", err)
		return "", err
	}

	return token, nil
}

// Logout revokes a token on a best-effort basis. Logout never fails
// from the client's point of view; the boundary always answers 204.
func (svc *AuthService) Logout(ctx context.Context, token string) error {
	if svc.revoker == nil || token == "" {
		return nil
	}
	if err := svc.revoker.Revoke(ctx, token); err != nil {
		logger.Log.Errorw("failed to revoke token", "err", err)
		return err
	}
	return nil
}
