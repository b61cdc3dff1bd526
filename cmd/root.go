package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/vidya/internal/backend"
	"github.com/abhisek/vidya/internal/llm"
	"github.com/abhisek/vidya/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "vidya",
	Short: "AI study buddy for school students",
	Long:  "Vidya — adaptive quizzes, revision plans, and a coin economy for students of grades 5-8.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides VIDYA_DB env var)")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(quizCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(leaderboardCmd)
	rootCmd.AddCommand(shopCmd)
	rootCmd.AddCommand(roadmapCmd)
	rootCmd.AddCommand(revisionCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then VIDYA_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// openBackend opens the store and wires the backend. The LLM provider is
// optional; without one, revision summaries fall back to curriculum
// templates.
func openBackend(cmd *cobra.Command) (*backend.Backend, *store.Store, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, nil, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, nil, fmt.Errorf("open store: %w", err)
	}

	opts := backend.Options{Store: st}
	provider, err := llm.NewProviderFromEnv(cmd.Context(), "", st.EventRepo())
	if err == nil {
		opts.Provider = provider
	}

	return backend.New(opts), st, nil
}
