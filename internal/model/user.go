package model

import (
	"strings"
	"time"
	"unicode/utf8"
)

// Username length bounds, shared by registration and play.
const (
	MinUsernameLength = 3
	MaxUsernameLength = 50
)

// User is a registered player. The username is the natural key.
type User struct {
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"created_at"`
}

// UserStatistics is the durable per-user aggregate of game results.
// GamesPlayed always equals Wins + Losses + Draws.
type UserStatistics struct {
	Username         string     `json:"username"`
	GamesPlayed      int        `json:"games_played"`
	Wins             int        `json:"wins"`
	Losses           int        `json:"losses"`
	Draws            int        `json:"draws"`
	LastGameID       string     `json:"last_game_id,omitempty"`
	LastGamePlayedAt *time.Time `json:"last_game_played_at,omitempty"`
}

// NewUserStatistics returns a zeroed aggregate for username.
func NewUserStatistics(username string) *UserStatistics {
	return &UserStatistics{Username: username}
}

// Apply folds a completed game into the aggregate.
func (s *UserStatistics) Apply(rec *GameRecord) {
	s.GamesPlayed++
	switch rec.Outcome {
	case OutcomeWin:
		s.Wins++
	case OutcomeLose:
		s.Losses++
	case OutcomeDraw:
		s.Draws++
	}
	s.LastGameID = rec.ID
	playedAt := rec.OccurredAt
	s.LastGamePlayedAt = &playedAt
}

// ValidateUsername checks the shared username rule: non-empty after
// trimming, length between 3 and 50 characters.
func ValidateUsername(username string) error {
	if strings.TrimSpace(username) == "" {
		return InvalidUsername("username cannot be empty")
	}
	if n := utf8.RuneCountInString(username); n < MinUsernameLength || n > MaxUsernameLength {
		return InvalidUsername("username must be between 3 and 50 characters")
	}
	return nil
}
