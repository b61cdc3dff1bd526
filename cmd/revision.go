package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/vidya/internal/ui/theme"
)

var revisionCmd = &cobra.Command{
	Use:   "revision <student-id>",
	Short: "Print a revision summary for weak topics",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		grade, _ := cmd.Flags().GetString("grade")
		board, _ := cmd.Flags().GetString("board")
		subject, _ := cmd.Flags().GetString("subject")
		topics, _ := cmd.Flags().GetStringSlice("topics")

		b, st, err := openBackend(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		s, err := b.RevisionSummary(cmd.Context(), args[0], grade, board, subject, topics)
		if err != nil {
			return err
		}

		fmt.Println(theme.Title.Render("Revision: " + strings.Join(s.FocusTopics, ", ")))
		fmt.Println(theme.Subtitle.Render(fmt.Sprintf("%s, %s — about %s", subject, grade, s.RecommendedStudyTime)))
		fmt.Println()
		for _, topic := range s.FocusTopics {
			if text, ok := s.TopicSummaries[topic]; ok {
				fmt.Println(theme.Body.Render(topic + ": " + text))
			}
		}
		if len(s.KeyPoints) > 0 {
			fmt.Println()
			fmt.Println(theme.Title.Render("Key points"))
			for _, p := range s.KeyPoints {
				fmt.Println("  - " + p)
			}
		}
		if len(s.PracticeTips) > 0 {
			fmt.Println()
			fmt.Println(theme.Title.Render("Practice tips"))
			for _, p := range s.PracticeTips {
				fmt.Println("  - " + p)
			}
		}
		return nil
	},
}

func init() {
	revisionCmd.Flags().StringP("grade", "g", "6th", "Grade level")
	revisionCmd.Flags().StringP("board", "b", "CBSE", "Education board")
	revisionCmd.Flags().String("subject", "math", "Subject")
	revisionCmd.Flags().StringSlice("topics", nil, "Focus topics (defaults to the student's weak topics)")
}
