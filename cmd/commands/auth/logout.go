package auth

import (
	"errors"
	"fmt"
	"os"

	"github.com/bluestero/ythandle/internal/services/auth"
	"github.com/bluestero/ythandle/internal/tui"
	"github.com/bluestero/ythandle/internal/tui/styles"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

func LogoutCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "logout [provider]",
		Short: "Remove a stored API key",
		Long: `Remove a provider's API key from the local keychain.

Keys supplied through environment variables are not affected.

Examples:
  ythandle auth logout
  ythandle auth logout youtube --yes`,
		Args:         cobra.MaximumNArgs(1),
		RunE:         runLogout,
		SilenceUsage: true,
	}

	cmd.Flags().BoolP("yes", "y", false, "Skip the confirmation prompt")

	return cmd
}

func runLogout(cmd *cobra.Command, args []string) error {
	spec, err := lookupSpec(args)
	if err != nil {
		return err
	}

	yes, _ := cmd.Flags().GetBool("yes")
	if !yes && term.IsTerminal(int(os.Stdin.Fd())) {
		ok, err := tui.ConfirmLogout(spec.DisplayName, os.Getenv("ACCESSIBLE") != "")
		if err != nil && !errors.Is(err, tui.ErrAborted) {
			return err
		}
		if !ok {
			fmt.Fprintln(cmd.ErrOrStderr(), "Logout cancelled.")
			return nil
		}
	}

	store := auth.NewKeyringStore(auth.ServiceName)
	if err := store.DeleteToken(spec.Provider); err != nil {
		if errors.Is(err, auth.ErrTokenNotFound) {
			fmt.Fprintf(cmd.OutOrStdout(), "No stored API key for %s\n", spec.DisplayName)
			return nil
		}
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), styles.SuccessText.Render("Removed API key for "+spec.DisplayName))
	return nil
}
