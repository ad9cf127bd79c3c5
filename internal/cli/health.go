package cli

import (
	"github.com/spf13/cobra"
)

func newHealthCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "health",
		Short: "Check service health",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result struct {
				Status     string `json:"status"`
				TotalGames int64  `json:"total_games"`
				Wins       int64  `json:"wins"`
				Losses     int64  `json:"losses"`
				Draws      int64  `json:"draws"`
				WinRate    string `json:"win_rate"`
			}
			if err := client.Get("/health", &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Printf(result, "%s: %d games (%d/%d/%d), win rate %s",
				result.Status, result.TotalGames, result.Wins, result.Losses, result.Draws, result.WinRate)
			return nil
		},
	}

	return cmd
}
