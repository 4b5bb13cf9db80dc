package cmd

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/abstractlab/yayi/internal/llm"
	"github.com/abstractlab/yayi/internal/store"
)

const timeFormat = "2006-01-02 15:04:05"

var llmCmd = &cobra.Command{
	Use:   "llm",
	Short: "Inspect logged commentary requests (needs --db or YAYI_DB)",
}

var llmListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent LLM events",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		purpose, _ := cmd.Flags().GetString("purpose")
		since, _ := cmd.Flags().GetDuration("since")

		s, err := requireStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		opts := store.QueryOpts{Limit: limit, Purpose: purpose}
		if since > 0 {
			opts.From = time.Now().Add(-since)
		}
		events, err := s.EventRepo().QueryLLMEvents(cmd.Context(), opts)
		if err != nil {
			return fmt.Errorf("query events: %w", err)
		}

		printEvents(cmd.OutOrStdout(), events)
		return nil
	},
}

var llmViewCmd = &cobra.Command{
	Use:   "view <id>",
	Short: "View full request/response for an LLM event",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid ID %q: %w", args[0], err)
		}

		s, err := requireStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		e, err := s.EventRepo().GetLLMEvent(cmd.Context(), id)
		if err != nil {
			return fmt.Errorf("get event: %w", err)
		}
		if e == nil {
			return fmt.Errorf("event %d not found", id)
		}

		printEvent(cmd.OutOrStdout(), e)
		return nil
	},
}

var llmStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show aggregated LLM token usage and estimated cost",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := requireStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		ctx := cmd.Context()
		stats, err := s.EventRepo().LLMUsageByPurpose(ctx)
		if err != nil {
			return fmt.Errorf("query usage: %w", err)
		}
		models, err := s.EventRepo().LLMUsageByModel(ctx)
		if err != nil {
			return fmt.Errorf("query model usage: %w", err)
		}

		out := cmd.OutOrStdout()
		if len(stats) == 0 {
			fmt.Fprintln(out, "No LLM usage recorded yet.")
			return nil
		}
		printUsage(out, stats)
		if len(models) > 0 {
			fmt.Fprintln(out)
			printCost(out, models)
		}
		return nil
	},
}

func printEvents(w io.Writer, events []store.LLMEventRecord) {
	if len(events) == 0 {
		fmt.Fprintln(w, "No LLM events found.")
		return
	}

	fmt.Fprintf(w, "%-5s  %-19s  %-12s  %-28s  %-6s  %-6s  %-7s  %s\n",
		"ID", "Timestamp", "Purpose", "Model", "In", "Out", "Ms", "Result")
	fmt.Fprintln(w, rule(100))

	for _, e := range events {
		fmt.Fprintf(w, "%-5d  %-19s  %-12s  %-28s  %-6d  %-6d  %-7d  %s\n",
			e.ID,
			e.Timestamp.Local().Format(timeFormat),
			e.Purpose,
			truncate(e.Model, 28),
			e.InputTokens,
			e.OutputTokens,
			e.LatencyMs,
			outcome(e.Success, e.Reached, e.StatusCode),
		)
	}
}

func printEvent(w io.Writer, e *store.LLMEventRecord) {
	fmt.Fprintf(w, "ID:        %d\n", e.ID)
	fmt.Fprintf(w, "Time:      %s\n", e.Timestamp.Local().Format(timeFormat))
	fmt.Fprintf(w, "Provider:  %s\n", e.Provider)
	fmt.Fprintf(w, "Model:     %s\n", e.Model)
	if e.SessionID != "" {
		fmt.Fprintf(w, "Session:   %s\n", e.SessionID)
	}
	fmt.Fprintf(w, "Purpose:   %s\n", e.Purpose)
	fmt.Fprintf(w, "Tokens:    %d in / %d out\n", e.InputTokens, e.OutputTokens)
	fmt.Fprintf(w, "Latency:   %dms\n", e.LatencyMs)
	fmt.Fprintf(w, "Result:    %s\n", outcome(e.Success, e.Reached, e.StatusCode))
	if e.ErrorMessage != "" {
		fmt.Fprintf(w, "Error:     %s\n", e.ErrorMessage)
	}

	for _, section := range []struct{ title, body string }{
		{"REQUEST", e.RequestBody},
		{"RESPONSE", e.ResponseBody},
	} {
		fmt.Fprintln(w)
		fmt.Fprintln(w, rule(60))
		fmt.Fprintln(w, section.title)
		fmt.Fprintln(w, rule(60))
		if section.body == "" {
			fmt.Fprintln(w, "(not captured)")
			continue
		}
		fmt.Fprintln(w, section.body)
	}
}

func printUsage(w io.Writer, stats []store.LLMUsageStat) {
	fmt.Fprintln(w, "Usage by Purpose")
	fmt.Fprintln(w, rule(80))
	fmt.Fprintf(w, "%-16s  %6s  %6s  %10s  %10s  %10s  %8s\n",
		"Purpose", "Calls", "Failed", "Input", "Output", "Total", "Avg Ms")
	fmt.Fprintln(w, rule(80))

	var calls, failures, in, out int
	for _, st := range stats {
		fmt.Fprintf(w, "%-16s  %6d  %6d  %10d  %10d  %10d  %8d\n",
			st.Purpose, st.Calls, st.Failures, st.InputTokens, st.OutputTokens,
			st.InputTokens+st.OutputTokens, st.AvgLatencyMs)
		calls += st.Calls
		failures += st.Failures
		in += st.InputTokens
		out += st.OutputTokens
	}

	fmt.Fprintln(w, rule(80))
	fmt.Fprintf(w, "%-16s  %6d  %6d  %10d  %10d  %10d\n",
		"TOTAL", calls, failures, in, out, in+out)
}

func printCost(w io.Writer, models []store.LLMModelUsage) {
	fmt.Fprintln(w, "Estimated Cost (USD)")
	fmt.Fprintln(w, rule(76))
	fmt.Fprintf(w, "%-32s  %6s  %10s  %10s  %10s\n", "Model", "Calls", "Input", "Output", "Cost")
	fmt.Fprintln(w, rule(76))

	var total float64
	var unpriced []string
	for _, mu := range models {
		cost := "?"
		if price := llm.LookupCost(mu.Model); price != nil {
			c := price.Cost(mu.InputTokens, mu.OutputTokens)
			total += c
			cost = formatCost(c)
		} else {
			unpriced = append(unpriced, mu.Model)
		}
		fmt.Fprintf(w, "%-32s  %6d  %10d  %10d  %10s\n",
			truncate(mu.Model, 32), mu.Calls, mu.InputTokens, mu.OutputTokens, cost)
	}

	fmt.Fprintln(w, rule(76))
	label := "TOTAL"
	if len(unpriced) > 0 {
		label = "TOTAL (partial)"
	}
	fmt.Fprintf(w, "%-32s  %6s  %10s  %10s  %10s\n", label, "", "", "", formatCost(total))
	if len(unpriced) > 0 {
		fmt.Fprintf(w, "\nPricing unavailable for: %s\n", strings.Join(unpriced, ", "))
	}
}

func rule(n int) string {
	return strings.Repeat("─", n)
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}

func formatCost(usd float64) string {
	if usd < 0.01 {
		return fmt.Sprintf("$%.4f", usd)
	}
	return fmt.Sprintf("$%.2f", usd)
}

// outcome summarises a logged call: ok, the HTTP status the service
// answered with, or unreached.
func outcome(success, reached bool, status int) string {
	switch {
	case success:
		return "ok"
	case !reached:
		return "unreached"
	case status > 0:
		return fmt.Sprintf("http %d", status)
	default:
		return "bad reply"
	}
}

func init() {
	llmListCmd.Flags().IntP("limit", "n", 20, "Number of events to show")
	llmListCmd.Flags().StringP("purpose", "p", "", "Filter by purpose (e.g. commentary)")
	llmListCmd.Flags().Duration("since", 0, "Only show events newer than this, e.g. 24h")

	llmCmd.AddCommand(llmListCmd)
	llmCmd.AddCommand(llmViewCmd)
	llmCmd.AddCommand(llmStatsCmd)
}
