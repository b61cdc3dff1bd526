package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/vidya/internal/ui/theme"
)

var statsCmd = &cobra.Command{
	Use:   "stats <student-id>",
	Short: "Show a student's progress and coins",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		b, st, err := openBackend(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		s := b.GetStudentStats(cmd.Context(), args[0])

		lines := []string{
			theme.Title.Render(s.DisplayName),
			fmt.Sprintf("Level %d (%.0f%% to next)", s.Level, s.LevelProgress),
			theme.Coin.Render(fmt.Sprintf("%d coins (%d lifetime)", s.CurrentCoins, s.TotalCoins)),
			"",
			fmt.Sprintf("Quizzes:    %d (%d perfect)", s.TotalQuizzes, s.PerfectQuizzes),
			fmt.Sprintf("Videos:     %d", s.TotalVideos),
			fmt.Sprintf("Study time: %d min", s.StudyMinutes),
			fmt.Sprintf("Streak:     %d days (best %d)", s.StreakDays, s.LongestStreak),
			"",
			fmt.Sprintf("Achievements: %d/%d (%.0f%%)",
				s.Achievements.Unlocked, s.Achievements.Total, s.Achievements.Progress),
			fmt.Sprintf("Perks owned:  %d", s.PerksOwned),
		}
		fmt.Println(theme.Card.Render(strings.Join(lines, "\n")))
		return nil
	},
}
