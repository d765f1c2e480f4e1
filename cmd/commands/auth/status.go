package auth

import (
	"errors"
	"fmt"
	"text/tabwriter"

	"github.com/bluestero/ythandle/internal/platform/providers"
	"github.com/bluestero/ythandle/internal/services/auth"

	"github.com/spf13/cobra"
)

func StatusCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show authentication status for providers",
		Long: `Show which providers have an API key and where it comes from.

Example:
  ythandle auth status`,
		Args:         cobra.NoArgs,
		RunE:         runStatus,
		SilenceUsage: true,
	}

	return cmd
}

func runStatus(cmd *cobra.Command, args []string) error {
	keyring := auth.NewKeyringStore(auth.ServiceName)
	env := auth.NewEnvStore(providers.EnvVars())

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "PROVIDER\tSTATUS")
	for _, spec := range providers.All() {
		fmt.Fprintf(w, "%s\t%s\n", spec.Provider, credentialStatus(spec, keyring, env))
	}
	return w.Flush()
}

func credentialStatus(spec providers.CredentialSpec, keyring, env auth.Store) string {
	_, err := keyring.GetToken(spec.Provider)
	switch {
	case err == nil:
		return "logged in (keychain)"
	case !errors.Is(err, auth.ErrTokenNotFound):
		if _, envErr := env.GetToken(spec.Provider); envErr == nil {
			return fmt.Sprintf("logged in (%s)", spec.EnvVar)
		}
		return fmt.Sprintf("error (%v)", err)
	}

	if _, err := env.GetToken(spec.Provider); err == nil {
		return fmt.Sprintf("logged in (%s)", spec.EnvVar)
	}
	return "not logged in"
}
