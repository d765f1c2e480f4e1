package channel

import (
	"fmt"

	"github.com/bluestero/ythandle/internal/auditlog"
	"github.com/bluestero/ythandle/internal/channel/domain"
	"github.com/bluestero/ythandle/internal/tui"

	"github.com/spf13/cobra"
)

// ShowCommand returns the "channel show" command.
func ShowCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <channel-id>",
		Short: "Show a channel by ID",
		Long: `Fetch a single channel by its ID.

Examples:
  ythandle channel show UC_x5XG1OV2P6uZZ5FSM9Ttw
  ythandle channel show UC_x5XG1OV2P6uZZ5FSM9Ttw -o json
  ythandle channel show UC_x5XG1OV2P6uZZ5FSM9Ttw --cache --refresh`,
		Args:         cobra.ExactArgs(1),
		RunE:         runShow,
		SilenceUsage: true,
	}

	cmd.Flags().Bool("cache", false, "Serve the snippet from the local cache when fresh")
	cmd.Flags().Bool("refresh", false, "Drop any cached snippet and fetch it again")

	return cmd
}

func runShow(cmd *cobra.Command, args []string) error {
	output, err := outputFormat(cmd)
	if err != nil {
		return err
	}

	useCache, _ := cmd.Flags().GetBool("cache")
	refresh, _ := cmd.Flags().GetBool("refresh")

	svc, _, err := newService(cmd, useCache)
	if err != nil {
		return err
	}
	// Let stale-entry refreshes finish writing before the process exits.
	defer svc.Wait()

	channelID := args[0]
	cmd.SetContext(auditlog.WithMetadata(cmd.Context(), auditlog.Metadata{ChannelID: channelID}))

	var snippet *domain.Snippet
	if refresh {
		snippet, err = svc.Refresh(cmd.Context(), channelID)
	} else {
		snippet, err = svc.FetchByID(cmd.Context(), channelID)
	}
	if err != nil {
		return fmt.Errorf("failed to fetch channel: %w", err)
	}

	switch {
	case output == "json":
		return printJSON(cmd, snippet)
	case interactive(cmd):
		fmt.Fprintln(cmd.OutOrStdout(), tui.RenderChannelCard(snippet, cardWidth))
	default:
		printSnippetDetail(cmd, snippet)
	}
	return nil
}
