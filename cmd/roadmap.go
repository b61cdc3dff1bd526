package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var roadmapCmd = &cobra.Command{
	Use:   "roadmap <student-id>",
	Short: "Print a personalized study roadmap",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		grade, _ := cmd.Flags().GetString("grade")
		board, _ := cmd.Flags().GetString("board")
		subject, _ := cmd.Flags().GetString("subject")

		b, st, err := openBackend(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		roadmap, err := b.GenerateRoadmap(cmd.Context(), args[0], grade, board, subject)
		if err != nil {
			return err
		}
		fmt.Println(roadmap)
		return nil
	},
}

func init() {
	roadmapCmd.Flags().StringP("grade", "g", "6th", "Grade level")
	roadmapCmd.Flags().StringP("board", "b", "CBSE", "Education board")
	roadmapCmd.Flags().String("subject", "math", "Subject")
}
