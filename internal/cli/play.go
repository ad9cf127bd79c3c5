package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"
)

// GameResult is a completed game as returned by the API
type GameResult struct {
	GameID       string    `json:"game_id"`
	PlayerHand   string    `json:"player_hand"`
	OpponentHand string    `json:"opponent_hand"`
	Outcome      string    `json:"outcome"`
	Timestamp    time.Time `json:"timestamp"`
}

func newPlayCmd() *cobra.Command {
	var username string

	cmd := &cobra.Command{
		Use:   "play <rock|paper|scissors>",
		Short: "Play a game against the server",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			hand := strings.ToUpper(args[0])

			req := map[string]string{"player_hand": hand}
			if username != "" {
				req["username"] = username
			}

			var result GameResult
			if err := client.Post("/api/v1/game/play", req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Printf(result, "You played %s, opponent played %s: %s",
				result.PlayerHand, result.OpponentHand, result.Outcome)
			return nil
		},
	}

	cmd.Flags().StringVarP(&username, "user", "u", "", "Username to record the game against")

	return cmd
}

func newRegisterCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "register <username>",
		Short: "Register a new user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]string{"username": args[0]}

			var result struct {
				Username  string    `json:"username"`
				CreatedAt time.Time `json:"created_at"`
			}
			if err := client.Post("/api/v1/users/register", req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Printf(result, "Registered %s", result.Username)
			return nil
		},
	}

	return cmd
}

func newStatsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats <username>",
		Short: "Show a user's game statistics",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result struct {
				Username    string `json:"username"`
				GamesPlayed int    `json:"games_played"`
				Wins        int    `json:"wins"`
				Losses      int    `json:"losses"`
				Draws       int    `json:"draws"`
			}
			path := fmt.Sprintf("/api/v1/users/%s/statistics", args[0])
			if err := client.Get(path, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Printf(result, "%s: %d played, %d won, %d lost, %d drawn",
				result.Username, result.GamesPlayed, result.Wins, result.Losses, result.Draws)
			return nil
		},
	}

	return cmd
}
