package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/vidya/internal/llm"
	"github.com/abhisek/vidya/internal/store"
	"github.com/abhisek/vidya/internal/ui/theme"
)

var llmCmd = &cobra.Command{
	Use:   "llm",
	Short: "Inspect the model calls behind generated study content",
	Long: `Every call the revision generator makes to a hosted model is recorded
in the local database. These commands list the calls, show a single
request and response in full, and total up token usage and cost.`,
}

// openStore opens the database for commands that read events directly,
// without wiring a backend.
func openStore(cmd *cobra.Command) (*store.Store, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, fmt.Errorf("resolve database path: %w", err)
	}
	s, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	return s, nil
}

var llmListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent model calls",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		purpose, _ := cmd.Flags().GetString("purpose")

		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		events, err := s.EventRepo().QueryLLMEvents(cmd.Context(), store.QueryOpts{Limit: limit})
		if err != nil {
			return fmt.Errorf("query events: %w", err)
		}

		if len(events) == 0 {
			fmt.Println(theme.Hint.Render("No model calls recorded yet. Generate a revision summary first."))
			return nil
		}

		fmt.Println(theme.Subtitle.Render(fmt.Sprintf("%-5s  %-19s  %-16s  %-28s  %6s  %6s  %7s  %s",
			"ID", "When", "Purpose", "Model", "In", "Out", "Ms", "OK")))

		for _, e := range events {
			if purpose != "" && e.Purpose != purpose {
				continue
			}
			mark := theme.Good.Render("✓")
			if !e.Success {
				mark = theme.Bad.Render("✗")
			}
			fmt.Printf("%-5d  %-19s  %-16s  %-28s  %6d  %6d  %7d  %s\n",
				e.ID,
				e.Timestamp.Local().Format("2006-01-02 15:04:05"),
				e.Purpose,
				clip(e.Model, 28),
				e.InputTokens,
				e.OutputTokens,
				e.LatencyMs,
				mark,
			)
		}
		return nil
	},
}

var llmViewCmd = &cobra.Command{
	Use:   "view <id>",
	Short: "Show one model call in full",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid event ID %q", args[0])
		}

		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		e, err := s.EventRepo().GetLLMEvent(cmd.Context(), id)
		if err != nil {
			return fmt.Errorf("get event: %w", err)
		}
		if e == nil {
			return fmt.Errorf("no model call with ID %d", id)
		}

		header := []string{
			theme.Title.Render(fmt.Sprintf("Call #%d", e.ID)),
			fmt.Sprintf("Time:      %s", e.Timestamp.Local().Format("2006-01-02 15:04:05")),
			fmt.Sprintf("Provider:  %s", e.Provider),
			fmt.Sprintf("Model:     %s", e.Model),
			fmt.Sprintf("Purpose:   %s", e.Purpose),
			fmt.Sprintf("Tokens:    %d in / %d out", e.InputTokens, e.OutputTokens),
			fmt.Sprintf("Latency:   %dms", e.LatencyMs),
		}
		if e.ErrorMessage != "" {
			header = append(header, theme.Bad.Render("Error:     "+e.ErrorMessage))
		}
		fmt.Println(theme.Card.Render(strings.Join(header, "\n")))

		printBody("Request", e.RequestBody)
		printBody("Response", e.ResponseBody)
		return nil
	},
}

func printBody(label, body string) {
	fmt.Println(theme.Subtitle.Render(label))
	if body == "" {
		fmt.Println(theme.Hint.Render("(not captured)"))
		return
	}
	fmt.Println(body)
}

var llmStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Total token usage and estimated cost",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		ctx := cmd.Context()
		byPurpose, err := s.EventRepo().LLMUsageByPurpose(ctx)
		if err != nil {
			return fmt.Errorf("query usage: %w", err)
		}
		if len(byPurpose) == 0 {
			fmt.Println(theme.Hint.Render("No model usage recorded yet."))
			return nil
		}

		fmt.Println(theme.Title.Render("Usage by purpose"))
		fmt.Println(theme.Subtitle.Render(fmt.Sprintf("%-16s  %6s  %10s  %10s  %8s",
			"Purpose", "Calls", "Input", "Output", "Avg Ms")))
		var totalCalls, totalIn, totalOut int
		for _, st := range byPurpose {
			fmt.Printf("%-16s  %6d  %10d  %10d  %8d\n",
				st.Purpose, st.Calls, st.InputTokens, st.OutputTokens, st.AvgLatencyMs)
			totalCalls += st.Calls
			totalIn += st.InputTokens
			totalOut += st.OutputTokens
		}
		fmt.Printf("%-16s  %6d  %10d  %10d\n", "TOTAL", totalCalls, totalIn, totalOut)

		byModel, err := s.EventRepo().LLMUsageByModel(ctx)
		if err != nil {
			return fmt.Errorf("query model usage: %w", err)
		}
		if len(byModel) == 0 {
			return nil
		}

		fmt.Println()
		fmt.Println(theme.Title.Render("Estimated cost (USD)"))
		fmt.Println(theme.Subtitle.Render(fmt.Sprintf("%-32s  %6s  %10s  %10s  %10s",
			"Model", "Calls", "Input", "Output", "Cost")))

		var totalCost float64
		var unpriced []string
		for _, mu := range byModel {
			cost := llm.LookupCost(mu.Model)
			if cost == nil {
				unpriced = append(unpriced, mu.Model)
				fmt.Printf("%-32s  %6d  %10d  %10d  %10s\n",
					clip(mu.Model, 32), mu.Calls, mu.InputTokens, mu.OutputTokens, "?")
				continue
			}
			c := cost.Cost(mu.InputTokens, mu.OutputTokens)
			totalCost += c
			fmt.Printf("%-32s  %6d  %10d  %10d  %10s\n",
				clip(mu.Model, 32), mu.Calls, mu.InputTokens, mu.OutputTokens, formatCost(c))
		}

		label := "TOTAL"
		if len(unpriced) > 0 {
			label = "TOTAL (partial)"
		}
		fmt.Printf("%-32s  %6s  %10s  %10s  %10s\n", label, "", "", "", formatCost(totalCost))
		if len(unpriced) > 0 {
			fmt.Println(theme.Hint.Render("No pricing for: " + strings.Join(unpriced, ", ")))
		}
		return nil
	},
}

func clip(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max]
}

func formatCost(usd float64) string {
	if usd < 0.01 {
		return fmt.Sprintf("$%.4f", usd)
	}
	return fmt.Sprintf("$%.2f", usd)
}

func init() {
	llmListCmd.Flags().IntP("limit", "n", 20, "Number of calls to show")
	llmListCmd.Flags().StringP("purpose", "p", "", "Filter by purpose (e.g. revision_summary)")

	llmCmd.AddCommand(llmListCmd)
	llmCmd.AddCommand(llmViewCmd)
	llmCmd.AddCommand(llmStatsCmd)
}
