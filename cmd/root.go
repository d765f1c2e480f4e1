package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/bluestero/ythandle/cmd/commands/audit"
	"github.com/bluestero/ythandle/cmd/commands/auth"
	"github.com/bluestero/ythandle/cmd/commands/cache"
	"github.com/bluestero/ythandle/cmd/commands/channel"
	cfgcmd "github.com/bluestero/ythandle/cmd/commands/config"
	"github.com/bluestero/ythandle/internal/channel/providers"
	"github.com/bluestero/ythandle/internal/config"

	"github.com/spf13/cobra"
)

const (
	exitError   = 1
	exitNoMatch = 2
)

// rootCmd represents the base command when called without any subcommands.
func rootCmd() *cobra.Command {
	var cmd = &cobra.Command{
		Use:   "ythandle",
		Short: "Resolve video-platform @handles to channels",
		Long: `ythandle resolves a channel's public @handle to the channel that owns it.

A handle is searched once, then each channel in the results is fetched by
ID in order until one whose custom URL ends in the handle is found.

Supported providers: YouTube.

Quick start:
  ythandle auth login                    # Store your YouTube Data API key
  ythandle channel resolve @google       # Resolve a handle
  ythandle channel search @google        # See the search candidates
  ythandle audit list                    # Review past lookups`,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level, _ := cmd.Flags().GetString("log-level")
			return setupLogging(cmd, level)
		},
	}

	cmd.PersistentFlags().String("log-level", "warn", "Log level: debug, info, warn or error")

	cmd.AddCommand(channel.NewCommand())
	cmd.AddCommand(auth.NewCommand())
	cmd.AddCommand(cfgcmd.NewCommand())
	cmd.AddCommand(audit.NewCommand())
	cmd.AddCommand(cache.NewCommand())

	return cmd
}

// setupLogging installs a text handler on stderr at the given level.
func setupLogging(cmd *cobra.Command, level string) error {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return fmt.Errorf("invalid --log-level %q", level)
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: lvl})))
	return nil
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := config.LoadEnvFile(".env"); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}
	providers.RegisterYouTube()

	root := rootCmd()
	start := time.Now()
	executed, err := root.ExecuteContextC(context.Background())
	recordAudit(executed, os.Args[1:], start, err)

	switch {
	case err == nil:
	case errors.Is(err, channel.ErrNoMatch):
		os.Exit(exitNoMatch)
	default:
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(exitError)
	}
}
