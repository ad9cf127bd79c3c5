package model

import "time"

// GameRecord is the immutable result of a single completed play.
type GameRecord struct {
	ID           string    `json:"id"`
	PlayerHand   Hand      `json:"player_hand"`
	OpponentHand Hand      `json:"opponent_hand"`
	Outcome      Outcome   `json:"outcome"`
	OccurredAt   time.Time `json:"occurred_at"`
}
