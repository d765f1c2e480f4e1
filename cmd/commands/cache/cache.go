package cache

import (
	"fmt"

	"github.com/bluestero/ythandle/internal/swrcache"
	"github.com/bluestero/ythandle/internal/tui/styles"

	"github.com/spf13/cobra"
)

// NewCommand returns the "cache" parent command.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Manage the local channel snippet cache",
		Long: "Manage the on-disk cache used by --cache and the cache setting.\n\n" +
			"Only fetch-by-ID results are cached; searches always hit the provider.",
		SilenceUsage: true,
	}

	cmd.AddCommand(ClearCommand(swrcache.NewDefault))

	return cmd
}

// ClearCommand returns the "cache clear" command. open builds the cache to clear.
func ClearCommand(open func(...swrcache.Option) *swrcache.Cache) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Remove all cached channel snippets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c := open()
			removed, err := c.Clear()
			if err != nil {
				return fmt.Errorf("failed to clear cache: %w", err)
			}
			msg := fmt.Sprintf("Removed %d cached snippet(s) from %s", removed, c.Dir())
			fmt.Fprintln(cmd.OutOrStdout(), styles.SuccessText.Render(msg))
			return nil
		},
		SilenceUsage: true,
	}
}
