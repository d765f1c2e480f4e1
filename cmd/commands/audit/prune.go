package audit

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/bluestero/ythandle/internal/auditlog"

	"github.com/spf13/cobra"
)

// PruneCommand returns the "audit prune" command.
func PruneCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "prune",
		Short: "Delete audit entries older than a duration",
		Long: `Delete audit entries older than a duration.

Use --outcome to prune only one kind of entry, for example failed lookups,
and --dry-run to see how many entries would be removed.

Examples:
  ythandle audit prune --older-than 30d
  ythandle audit prune --older-than 72h --outcome error
  ythandle audit prune --older-than 7d --dry-run`,
		Args:         cobra.NoArgs,
		RunE:         runPrune,
		SilenceUsage: true,
	}

	cmd.Flags().String("older-than", "", "Remove entries older than this duration (e.g. 30d, 72h)")
	cmd.Flags().String("outcome", "", "Only remove entries with this outcome (matched, no_match, success, error)")
	cmd.Flags().Bool("dry-run", false, "Report how many entries would be removed without deleting them")
	_ = cmd.MarkFlagRequired("older-than")

	return cmd
}

func runPrune(cmd *cobra.Command, args []string) error {
	raw, _ := cmd.Flags().GetString("older-than")
	olderThan, err := parseDuration(strings.TrimSpace(raw))
	if err != nil {
		return err
	}

	outcome, _ := cmd.Flags().GetString("outcome")
	if err := validateOutcome(outcome); err != nil {
		return err
	}
	dryRun, _ := cmd.Flags().GetBool("dry-run")

	repo, err := auditlog.Open(cmd.Context())
	if err != nil {
		return err
	}
	defer repo.Close()

	n, err := repo.Prune(cmd.Context(), auditlog.PruneOptions{
		OlderThan: olderThan,
		Outcome:   outcome,
		DryRun:    dryRun,
	})
	if err != nil {
		return err
	}

	verb := "Removed"
	if dryRun {
		verb = "Would remove"
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s %d audit %s.\n", verb, n, pluralEntry(n))
	return nil
}

func pluralEntry(n int64) string {
	if n == 1 {
		return "entry"
	}
	return "entries"
}

// parseDuration accepts Go durations plus a whole-day "Nd" form. Zero and
// negative windows are rejected.
func parseDuration(input string) (time.Duration, error) {
	var d time.Duration
	if days, ok := strings.CutSuffix(input, "d"); ok {
		n, err := strconv.Atoi(days)
		if err != nil {
			return 0, fmt.Errorf("invalid duration %q", input)
		}
		d = time.Duration(n) * 24 * time.Hour
	} else {
		var err error
		if d, err = time.ParseDuration(input); err != nil {
			return 0, fmt.Errorf("invalid duration %q", input)
		}
	}

	if d <= 0 {
		return 0, fmt.Errorf("duration must be positive, got %q", input)
	}
	return d, nil
}
