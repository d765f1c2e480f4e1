package channel

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/bluestero/ythandle/internal/auditlog"
	"github.com/bluestero/ythandle/internal/channel/providers"
	"github.com/bluestero/ythandle/internal/channel/services"
	"github.com/bluestero/ythandle/internal/config"
	"github.com/bluestero/ythandle/internal/retry"
	"github.com/bluestero/ythandle/internal/services/auth"
	"github.com/bluestero/ythandle/internal/swrcache"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// ErrNoMatch is returned by resolve when no candidate owns the handle. The
// message has already been printed, so callers only need the exit status.
var ErrNoMatch = errors.New("no matching channel")

// NewCommand returns the "channel" parent command.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "channel",
		Short: "Look up channels by handle or ID",
		Long: `Look up video-platform channels.

Use "resolve" to turn an @handle into its channel, "search" to see the
candidates a handle search returns, and "show" to fetch a channel by ID.`,
		SilenceUsage: true,
	}

	cmd.PersistentFlags().String("provider", "", "Channel provider (defaults to the default-provider setting)")
	cmd.PersistentFlags().StringP("output", "o", "table", "Output format: table or json")

	cmd.AddCommand(ResolveCommand())
	cmd.AddCommand(SearchCommand())
	cmd.AddCommand(ShowCommand())

	return cmd
}

// newService builds a channel service for the selected provider. useCache
// turns on the snippet cache regardless of the cache setting.
func newService(cmd *cobra.Command, useCache bool) (*services.Service, string, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, "", fmt.Errorf("failed to load config: %w", err)
	}

	providerName, _ := cmd.Flags().GetString("provider")
	if providerName == "" {
		providerName = cfg.Provider()
	}

	logger := slog.Default().With("provider", providerName)
	retryCfg := retry.WithAttempts(cfg.Attempts())
	retryCfg.OnRetry = func(attempt int, err error, delay time.Duration) {
		logger.Info("retrying request", "attempt", attempt, "delay", delay, "error", err)
	}

	provider, err := providers.Get(providerName, auth.DefaultStore(), providers.Settings{
		MaxResults: int64(cfg.SearchMaxResults()),
		Retry:      retryCfg,
	})
	if err != nil {
		return nil, "", err
	}

	cmd.SetContext(auditlog.WithMetadata(cmd.Context(), auditlog.Metadata{Provider: providerName}))

	opts := []services.Option{services.WithLogger(logger)}
	if useCache || cfg.Cache {
		opts = append(opts, services.WithCache(swrcache.NewDefault(swrcache.WithLogger(logger))))
	}
	return services.New(provider, opts...), providerName, nil
}

func outputFormat(cmd *cobra.Command) (string, error) {
	output, _ := cmd.Flags().GetString("output")
	switch output {
	case "", "table":
		return "table", nil
	case "json":
		return "json", nil
	}
	return "", fmt.Errorf("unsupported output format %q", output)
}

// interactive reports whether stdout is a terminal and no explicit output
// format was requested.
func interactive(cmd *cobra.Command) bool {
	return !cmd.Flags().Changed("output") && term.IsTerminal(int(os.Stdout.Fd()))
}
