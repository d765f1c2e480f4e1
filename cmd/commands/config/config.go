// Package config implements the "config" commands.
package config

import (
	"fmt"

	"github.com/bluestero/ythandle/internal/config"
	"github.com/bluestero/ythandle/internal/database"
	"github.com/bluestero/ythandle/internal/swrcache"

	"github.com/spf13/cobra"
)

// NewCommand returns the "config" parent command.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage ythandle configuration",
		Long: `View and change persistent ythandle settings.

Settings live in config.json under the user config directory; run
"ythandle config path" to see where.

` + config.KeysHelp(),
	}

	cmd.AddCommand(SetCommand())
	cmd.AddCommand(GetCommand())
	cmd.AddCommand(PathCommand())

	return cmd
}

// PathCommand returns the "config path" command, which prints where
// ythandle keeps its files.
func PathCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Show where settings, history and cache are stored",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfgPath, err := config.Path()
			if err != nil {
				return err
			}
			dbPath, err := database.DefaultPath()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "config: %s\n", cfgPath)
			fmt.Fprintf(out, "audit:  %s\n", dbPath)
			fmt.Fprintf(out, "cache:  %s\n", swrcache.DefaultDir())
			return nil
		},
		SilenceUsage: true,
	}
}
