package models

// ScoreEvent is the message published to Kafka on score mutations.
type ScoreEvent struct {
	EventID   string `json:"event_id"`           // Unique event id
	Event     string `json:"event"`              // score_submitted, score_updated, score_deleted
	ScoreID   string `json:"score_id"`
	PlayerID  string `json:"player_id,omitempty"`
	Score     int64  `json:"score,omitempty"`
	Mode      string `json:"mode,omitempty"`
	Timestamp int64  `json:"timestamp"` // Unix seconds
}
