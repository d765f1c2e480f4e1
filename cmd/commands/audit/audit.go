// Package audit implements the "audit" commands over the local lookup
// history.
package audit

import (
	"fmt"
	"slices"
	"strings"

	"github.com/bluestero/ythandle/internal/auditlog"

	"github.com/spf13/cobra"
)

// NewCommand returns the "audit" parent command.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "audit",
		Short: "View and manage lookup history",
		Long: `View and prune the local history of ythandle commands.

Every command run is recorded with its provider, handle, matched channel
and outcome. History lives in ythandle.db under the user config directory.`,
		SilenceUsage: true,
	}

	cmd.AddCommand(ListCommand())
	cmd.AddCommand(PruneCommand())

	return cmd
}

// validateOutcome accepts an empty value or one of auditlog.Outcomes.
func validateOutcome(outcome string) error {
	if outcome == "" || slices.Contains(auditlog.Outcomes, outcome) {
		return nil
	}
	return fmt.Errorf("unknown outcome %q (want %s)", outcome, strings.Join(auditlog.Outcomes, ", "))
}
