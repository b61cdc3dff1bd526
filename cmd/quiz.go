package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/abhisek/vidya/internal/backend"
	"github.com/abhisek/vidya/internal/ui/theme"
)

var quizCmd = &cobra.Command{
	Use:   "quiz",
	Short: "Take a quiz in the terminal",
	RunE: func(cmd *cobra.Command, args []string) error {
		student, _ := cmd.Flags().GetString("student")
		grade, _ := cmd.Flags().GetString("grade")
		board, _ := cmd.Flags().GetString("board")
		subject, _ := cmd.Flags().GetString("subject")
		difficulty, _ := cmd.Flags().GetString("difficulty")
		count, _ := cmd.Flags().GetInt("questions")

		b, st, err := openBackend(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		ctx := cmd.Context()
		view, err := b.CreateQuiz(ctx, student, backend.CreateQuizRequest{
			Grade:        grade,
			Board:        board,
			Subject:      subject,
			Difficulty:   difficulty,
			NumQuestions: count,
		})
		if err != nil {
			return err
		}

		fmt.Println(theme.Title.Render(fmt.Sprintf("%s quiz (%s, %s)", capitalize(view.Subject), view.Grade, view.Difficulty)))
		fmt.Println()

		reader := bufio.NewReader(os.Stdin)
		answers := make([]int, 0, len(view.Questions))
		start := time.Now()

		for i, q := range view.Questions {
			fmt.Println(theme.Body.Render(fmt.Sprintf("Q%d. %s", i+1, q.Question)))
			for j, opt := range q.Options {
				fmt.Printf("  %d) %s\n", j+1, opt)
			}
			answers = append(answers, readAnswer(reader, len(q.Options)))
			fmt.Println()
		}

		result, err := b.SubmitQuiz(ctx, student, answers, time.Since(start).Seconds())
		if err != nil {
			return err
		}

		lines := []string{
			fmt.Sprintf("Score: %d/%d (%.0f%%)", result.Score, result.Total, result.Percentage),
			theme.Coin.Render(fmt.Sprintf("+%d coins", result.Award.CoinsAwarded)),
			theme.Subtitle.Render(result.Feedback),
		}
		for _, u := range result.NewAchievements {
			lines = append(lines, theme.Good.Render("Achievement unlocked: "+u.Name))
		}
		if result.Award.LeveledUp {
			lines = append(lines, theme.Good.Render(fmt.Sprintf("Level up! Now level %d", result.Award.Level)))
		}
		fmt.Println(theme.Card.Render(strings.Join(lines, "\n")))
		return nil
	},
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// readAnswer reads a 1-based option number from stdin, reprompting until
// valid. EOF counts as option 1.
func readAnswer(r *bufio.Reader, options int) int {
	for {
		fmt.Print(theme.Hint.Render("Your answer: "))
		line, err := r.ReadString('\n')
		if err != nil {
			return 0
		}
		n, err := strconv.Atoi(strings.TrimSpace(line))
		if err == nil && n >= 1 && n <= options {
			return n - 1
		}
		fmt.Println(theme.Bad.Render(fmt.Sprintf("Enter a number from 1 to %d.", options)))
	}
}

func init() {
	quizCmd.Flags().StringP("student", "s", "student", "Student id")
	quizCmd.Flags().StringP("grade", "g", "6th", "Grade level")
	quizCmd.Flags().StringP("board", "b", "CBSE", "Education board")
	quizCmd.Flags().String("subject", "math", "Subject")
	quizCmd.Flags().StringP("difficulty", "d", "auto", "Difficulty (easy, medium, hard, auto)")
	quizCmd.Flags().IntP("questions", "n", 5, "Number of questions")
}
