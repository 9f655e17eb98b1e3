package models

import (
	"time"

	"github.com/google/uuid"
)

// Game difficulty modes accepted for a score submission.
const (
	ModeEasy    = "easy"
	ModeNormal  = "normal"
	ModeHard    = "hard"
	ModeLunatic = "lunatic"
)

// Modes lists all valid difficulty modes.
var Modes = []string{ModeEasy, ModeNormal, ModeHard, ModeLunatic}

// ScoreDB represents a score record in the database.
//
// The player_* columns are a snapshot of the submitting player taken at
// write time. They are never re-synced afterwards, so a score keeps its
// author information even if the player is later deleted.
type ScoreDB struct {
	ScoreID   uuid.UUID  `json:"score_id" db:"score_id"` // Primary key
	Author    string     `json:"author" db:"author"`     // Display name on the board
	Score     int64      `json:"score" db:"score"`       // 0..999_999_999
	Mode      string     `json:"mode" db:"mode"`
	CreatedAt time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt *time.Time `json:"updated_at,omitempty" db:"updated_at"`

	PlayerID       uuid.UUID `json:"player_id" db:"player_id"`
	PlayerEmail    string    `json:"player_email" db:"player_email"`
	PlayerNickname string    `json:"player_nickname" db:"player_nickname"`
}
