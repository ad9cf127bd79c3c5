package response

import (
	"fmt"
	"time"

	"github.com/techub/rps/internal/model"
)

// Game is a completed game in API responses
type Game struct {
	GameID       string    `json:"game_id"`
	PlayerHand   string    `json:"player_hand"`
	OpponentHand string    `json:"opponent_hand"`
	Outcome      string    `json:"outcome"`
	Timestamp    time.Time `json:"timestamp"`
}

// GameFromModel converts a model.GameRecord to a response Game
func GameFromModel(rec *model.GameRecord) Game {
	return Game{
		GameID:       rec.ID,
		PlayerHand:   string(rec.PlayerHand),
		OpponentHand: string(rec.OpponentHand),
		Outcome:      string(rec.Outcome),
		Timestamp:    rec.OccurredAt,
	}
}

// User is a registered user in API responses
type User struct {
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"created_at"`
}

// UserFromModel converts a model.User to a response User
func UserFromModel(u *model.User) User {
	return User{
		Username:  u.Username,
		CreatedAt: u.CreatedAt,
	}
}

// UserStatistics is a per-user aggregate in API responses
type UserStatistics struct {
	Username         string     `json:"username"`
	GamesPlayed      int        `json:"games_played"`
	Wins             int        `json:"wins"`
	Losses           int        `json:"losses"`
	Draws            int        `json:"draws"`
	LastGameID       string     `json:"last_game_id,omitempty"`
	LastGamePlayedAt *time.Time `json:"last_game_played_at,omitempty"`
}

// UserStatisticsFromModel converts a model.UserStatistics
func UserStatisticsFromModel(st *model.UserStatistics) UserStatistics {
	return UserStatistics{
		Username:         st.Username,
		GamesPlayed:      st.GamesPlayed,
		Wins:             st.Wins,
		Losses:           st.Losses,
		Draws:            st.Draws,
		LastGameID:       st.LastGameID,
		LastGamePlayedAt: st.LastGamePlayedAt,
	}
}

// Health is the operational health report
type Health struct {
	Status     string `json:"status"`
	TotalGames int64  `json:"total_games"`
	Wins       int64  `json:"wins"`
	Losses     int64  `json:"losses"`
	Draws      int64  `json:"draws"`
	WinRate    string `json:"win_rate"`
}

// NewHealth builds a Health report from running totals
func NewHealth(games, wins, losses, draws int64, winRate float64) Health {
	return Health{
		Status:     "UP",
		TotalGames: games,
		Wins:       wins,
		Losses:     losses,
		Draws:      draws,
		WinRate:    fmt.Sprintf("%.2f%%", winRate),
	}
}
