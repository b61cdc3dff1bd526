package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/vidya/internal/leaderboard"
	"github.com/abhisek/vidya/internal/ui/theme"
)

var leaderboardCmd = &cobra.Command{
	Use:   "leaderboard",
	Short: "Show top students",
	RunE: func(cmd *cobra.Command, args []string) error {
		metric, _ := cmd.Flags().GetString("metric")
		limit, _ := cmd.Flags().GetInt("limit")

		b, st, err := openBackend(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		entries := b.GetLeaderboard(cmd.Context(), metric, limit)
		if len(entries) == 0 {
			fmt.Println(theme.Hint.Render("No students yet. Take a quiz to get on the board!"))
			return nil
		}

		fmt.Println(theme.Title.Render("Leaderboard"), theme.Subtitle.Render("by "+metric))
		for _, e := range entries {
			fmt.Printf("%3d. %-20s %s\n", e.Rank, e.DisplayName,
				theme.Coin.Render(fmt.Sprintf("%d", e.Score)))
		}
		return nil
	},
}

func init() {
	leaderboardCmd.Flags().StringP("metric", "m", leaderboard.DefaultMetric,
		"Ranking metric (total_coins, level, streak_days, total_quizzes)")
	leaderboardCmd.Flags().IntP("limit", "n", leaderboard.DefaultLimit, "Number of entries")
}
