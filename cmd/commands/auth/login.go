package auth

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/bluestero/ythandle/internal/services/auth"
	"github.com/bluestero/ythandle/internal/tui"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

func LoginCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "login [provider]",
		Short: "Store an API key for a provider",
		Long: `Store an API key for a provider using the local keychain.

In a terminal an interactive prompt is shown; otherwise the key is read
from --token or the first line of stdin.

Examples:
  ythandle auth login
  ythandle auth login youtube --token AIza...
  echo "$KEY" | ythandle auth login youtube`,
		Args:         cobra.MaximumNArgs(1),
		RunE:         runLogin,
		SilenceUsage: true,
	}

	cmd.Flags().String("token", "", "API key (optional, overrides prompt)")

	return cmd
}

func runLogin(cmd *cobra.Command, args []string) error {
	spec, err := lookupSpec(args)
	if err != nil {
		return err
	}

	store := auth.NewKeyringStore(auth.ServiceName)

	token, _ := cmd.Flags().GetString("token")
	token = strings.TrimSpace(token)

	if token == "" && term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd())) {
		result, err := tui.RunAuthLogin(*spec, store)
		if err != nil {
			return err
		}
		if result == nil || !result.Saved {
			fmt.Fprintln(cmd.ErrOrStderr(), "Login cancelled.")
			return nil
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Saved API key for %s\n", spec.DisplayName)
		return nil
	}

	if token == "" {
		line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
		if err != nil && line == "" {
			return fmt.Errorf("failed to read API key: %w", err)
		}
		token = strings.TrimSpace(line)
	}
	if token == "" {
		return fmt.Errorf("API key cannot be empty")
	}

	if err := store.SetToken(spec.Provider, token); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Saved API key for %s\n", spec.DisplayName)
	return nil
}
