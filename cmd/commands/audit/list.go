package audit

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/bluestero/ythandle/internal/auditlog"
	"github.com/bluestero/ythandle/internal/tui/styles"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// ListCommand returns the "audit list" command.
func ListCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List recent audit entries",
		Long: `List recent audit entries stored locally.

Examples:
  ythandle audit list
  ythandle audit list --limit 50
  ythandle audit list --command "ythandle channel resolve" --outcome no_match
  ythandle audit list -o json`,
		Args:         cobra.NoArgs,
		RunE:         runList,
		SilenceUsage: true,
	}

	cmd.Flags().Int("limit", 25, "Number of entries to display")
	cmd.Flags().String("command", "", "Filter by exact command path")
	cmd.Flags().String("outcome", "", "Filter by outcome (matched, no_match, success, error)")
	cmd.Flags().StringP("output", "o", "table", "Output format: table or json")

	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	limit, _ := cmd.Flags().GetInt("limit")
	if limit <= 0 {
		return fmt.Errorf("limit must be greater than 0")
	}

	command, _ := cmd.Flags().GetString("command")
	outcome, _ := cmd.Flags().GetString("outcome")
	if err := validateOutcome(outcome); err != nil {
		return err
	}
	output, _ := cmd.Flags().GetString("output")
	if output == "" {
		output = "table"
	}
	if output != "table" && output != "json" {
		return fmt.Errorf("unsupported output format %q", output)
	}

	repo, err := auditlog.Open(cmd.Context())
	if err != nil {
		return err
	}
	defer repo.Close()

	entries, err := repo.List(cmd.Context(), auditlog.Filter{Command: command, Outcome: outcome, Limit: limit})
	if err != nil {
		return err
	}

	if output == "json" {
		encoder := json.NewEncoder(cmd.OutOrStdout())
		encoder.SetIndent("", "  ")
		return encoder.Encode(entries)
	}

	if len(entries) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No audit entries found.")
		return nil
	}

	styled := interactive(cmd)
	rows := make([][]string, 0, len(entries))
	for _, entry := range entries {
		detail := entry.Detail
		if detail == "" {
			detail = "-"
		}
		outcome := entry.Outcome
		if styled {
			outcome = styles.OutcomeIndicator(entry.Outcome)
		}

		rows = append(rows, []string{
			entry.Timestamp.Local().Format("2006-01-02 15:04:05"),
			entry.Command,
			outcome,
			formatDuration(entry.DurationMs),
			formatLookup(entry),
			detail,
		})
	}

	writeTable(cmd.OutOrStdout(),
		[]string{"TIME", "COMMAND", "OUTCOME", "DURATION", "LOOKUP", "DETAIL"},
		rows,
	)
	return nil
}

// interactive reports whether stdout is a terminal and table output was
// not explicitly requested.
func interactive(cmd *cobra.Command) bool {
	return !cmd.Flags().Changed("output") && term.IsTerminal(int(os.Stdout.Fd()))
}

// writeTable prints left-aligned columns separated by two spaces. Widths are
// measured without ANSI escapes, so styled cells line up with plain ones.
func writeTable(w io.Writer, header []string, rows [][]string) {
	widths := make([]int, len(header))
	measure := func(cells []string) {
		for i, c := range cells {
			widths[i] = max(widths[i], lipgloss.Width(c))
		}
	}
	measure(header)
	for _, r := range rows {
		measure(r)
	}

	rule := make([]string, len(header))
	for i, h := range header {
		rule[i] = strings.Repeat("-", len(h))
	}

	for _, cells := range append([][]string{header, rule}, rows...) {
		var b strings.Builder
		for i, c := range cells {
			b.WriteString(c)
			if i < len(cells)-1 {
				b.WriteString(strings.Repeat(" ", widths[i]-lipgloss.Width(c)+2))
			}
		}
		fmt.Fprintln(w, b.String())
	}
}

func formatDuration(ms int64) string {
	if ms < 1000 {
		return fmt.Sprintf("%dms", ms)
	}
	d := time.Duration(ms) * time.Millisecond
	if d < time.Minute {
		return fmt.Sprintf("%.1fs", d.Seconds())
	}
	if d < time.Hour {
		return fmt.Sprintf("%dm", int(d.Minutes()))
	}
	return fmt.Sprintf("%dh", int(d.Hours()))
}

// formatLookup renders "provider:handle -> channel" with missing parts elided.
func formatLookup(entry auditlog.AuditEntry) string {
	if entry.Handle == "" && entry.ChannelID == "" {
		return "-"
	}

	lookup := entry.Handle
	if entry.Provider != "" && lookup != "" {
		lookup = entry.Provider + ":" + lookup
	}
	if entry.ChannelID != "" {
		if lookup != "" {
			lookup += " -> " + entry.ChannelID
		} else {
			lookup = entry.ChannelID
		}
	}
	return lookup
}
