package channel

import (
	"fmt"

	"github.com/bluestero/ythandle/internal/auditlog"
	"github.com/bluestero/ythandle/internal/channel/domain"

	"github.com/spf13/cobra"
)

// SearchCommand returns the "channel search" command.
func SearchCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "List channels a handle search returns",
		Long: `Run the same channel search resolve uses and list the candidates in
search order, without fetching any of them.

Examples:
  ythandle channel search @google
  ythandle channel search google -o json`,
		Args:         cobra.ExactArgs(1),
		RunE:         runSearch,
		SilenceUsage: true,
	}

	return cmd
}

func runSearch(cmd *cobra.Command, args []string) error {
	output, err := outputFormat(cmd)
	if err != nil {
		return err
	}

	svc, _, err := newService(cmd, false)
	if err != nil {
		return err
	}

	cmd.SetContext(auditlog.WithMetadata(cmd.Context(), auditlog.Metadata{Handle: domain.NormalizeHandle(args[0])}))

	candidates, err := svc.Search(cmd.Context(), args[0])
	if err != nil {
		return err
	}

	if output == "json" {
		return printJSON(cmd, candidates)
	}
	if len(candidates) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No channels found.")
		return nil
	}
	printCandidatesTable(cmd, candidates)
	return nil
}
