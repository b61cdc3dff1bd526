package cmd

import (
	"fmt"
	"net/http"
	"os"

	"github.com/spf13/cobra"

	"github.com/abhisek/vidya/internal/api"
	"github.com/abhisek/vidya/internal/backend"
	"github.com/abhisek/vidya/internal/config"
	"github.com/abhisek/vidya/internal/llm"
	"github.com/abhisek/vidya/internal/store"
	"github.com/abhisek/vidya/internal/ui/theme"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd)
	},
}

func init() {
	serveCmd.Flags().String("addr", "", "Listen address (overrides config file and VIDYA_ADDR)")
	serveCmd.Flags().String("config", "", "Path to config file (overrides VIDYA_CONFIG)")
}

func runServe(cmd *cobra.Command) error {
	cfgPath, _ := cmd.Flags().GetString("config")
	if cfgPath == "" {
		cfgPath = config.DefaultPath()
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return err
	}
	if addr, _ := cmd.Flags().GetString("addr"); addr != "" {
		cfg.Server.Addr = addr
	}

	dbPath := cfg.Database.Path
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		dbPath = p
	}
	if err := store.EnsureDir(dbPath); err != nil {
		return fmt.Errorf("prepare DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	opts := backend.Options{Store: st}
	provider, err := llm.NewProviderFromEnv(cmd.Context(), cfg.LLM.Provider, st.EventRepo())
	if err != nil {
		fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
		fmt.Fprintln(os.Stderr, "AI revision summaries will use curriculum templates.")
	} else {
		opts.Provider = provider
	}

	server := api.NewServer(backend.New(opts))

	fmt.Println(theme.Title.Render("Vidya"), theme.Subtitle.Render("listening on "+cfg.Server.Addr))
	fmt.Println(theme.Hint.Render("database: " + dbPath))

	return http.ListenAndServe(cfg.Server.Addr, server.Router())
}
