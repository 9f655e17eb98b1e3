package models

import (
	"time"

	"github.com/google/uuid"
)

// PlayerDB represents a player record in the database.
type PlayerDB struct {
	PlayerID     uuid.UUID  `json:"player_id" db:"player_id"`        // Primary key
	Email        string     `json:"email" db:"email"`                // Unique email
	Nickname     *string    `json:"nickname,omitempty" db:"nickname"`
	PasswordHash string     `json:"-" db:"password_hash"`            // Never serialized
	GameTime     int64      `json:"game_time" db:"game_time"`        // Accumulated play time
	IsAdmin      bool       `json:"is_admin" db:"is_admin"`
	CreatedAt    time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt    *time.Time `json:"updated_at,omitempty" db:"updated_at"`
}
