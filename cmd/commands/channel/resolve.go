package channel

import (
	"context"
	"fmt"
	"os"

	"github.com/bluestero/ythandle/internal/auditlog"
	"github.com/bluestero/ythandle/internal/channel/domain"
	"github.com/bluestero/ythandle/internal/channel/services"
	"github.com/bluestero/ythandle/internal/tui"

	"github.com/charmbracelet/huh/spinner"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

const cardWidth = 72

// ResolveCommand returns the "channel resolve" command.
func ResolveCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "resolve <handle>",
		Short: "Resolve an @handle to its channel",
		Long: `Resolve an @handle to the channel that owns it.

The handle is searched once; each channel in the results is then fetched
by ID in order until one whose custom URL ends in the handle is found.
The leading "@" is optional and matching is case-sensitive.

Exits with status 2 when no channel owns the handle.

Examples:
  ythandle channel resolve @google
  ythandle channel resolve google -o json
  ythandle channel resolve @google --cache`,
		Args:         cobra.ExactArgs(1),
		RunE:         runResolve,
		SilenceUsage: true,
	}

	cmd.Flags().Bool("cache", false, "Serve channel snippets from the local cache when fresh")

	return cmd
}

func runResolve(cmd *cobra.Command, args []string) error {
	output, err := outputFormat(cmd)
	if err != nil {
		return err
	}

	handle := args[0]
	useCache, _ := cmd.Flags().GetBool("cache")

	svc, _, err := newService(cmd, useCache)
	if err != nil {
		return err
	}
	// Let stale-entry refreshes finish writing before the process exits.
	defer svc.Wait()

	cmd.SetContext(auditlog.WithMetadata(cmd.Context(), auditlog.Metadata{
		Handle: domain.NormalizeHandle(handle),
	}))

	snippet, err := resolveWithSpinner(cmd, svc, handle)
	if err != nil {
		return err
	}

	if snippet == nil {
		cmd.SetContext(auditlog.WithMetadata(cmd.Context(), auditlog.Metadata{Outcome: auditlog.OutcomeNoMatch}))
		fmt.Fprintf(cmd.OutOrStdout(), "No channel found for handle %q.\n", domain.NormalizeHandle(handle))
		return ErrNoMatch
	}

	cmd.SetContext(auditlog.WithMetadata(cmd.Context(), auditlog.Metadata{
		ChannelID: snippet.ChannelID,
		Outcome:   auditlog.OutcomeMatched,
	}))

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

func resolveWithSpinner(cmd *cobra.Command, svc *services.Service, handle string) (*domain.Snippet, error) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	if !term.IsTerminal(int(os.Stderr.Fd())) {
		return svc.Resolve(ctx, handle)
	}

	var snippet *domain.Snippet
	err := spinner.New().
		Title("Resolving " + domain.NormalizeHandle(handle) + "...").
		Accessible(os.Getenv("ACCESSIBLE") != "").
		Output(cmd.ErrOrStderr()).
		Context(ctx).
		ActionWithErr(func(ctx context.Context) error {
			var err error
			snippet, err = svc.Resolve(ctx, handle)
			return err
		}).
		Run()
	if err != nil {
		return nil, err
	}
	return snippet, nil
}
