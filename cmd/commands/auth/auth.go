package auth

import (
	"fmt"

	"github.com/bluestero/ythandle/internal/platform/providers"
	"github.com/bluestero/ythandle/internal/services/auth"

	"github.com/spf13/cobra"
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "auth",
		Short: "Manage API keys for providers",
		Long: `Manage API keys for providers.

Keys are stored in the OS keychain. A key can also be supplied through the
provider's environment variable (for example YOUTUBE_API_KEY), either
exported or placed in a .env file in the working directory.`,
	}

	cmd.AddCommand(LoginCommand())
	cmd.AddCommand(StatusCommand())
	cmd.AddCommand(LogoutCommand())

	return cmd
}

// lookupSpec resolves the provider argument, defaulting to youtube.
func lookupSpec(args []string) (*providers.CredentialSpec, error) {
	name := "youtube"
	if len(args) > 0 {
		name = auth.NormalizeProvider(args[0])
	}
	spec := providers.Lookup(name)
	if spec == nil {
		return nil, fmt.Errorf("unknown provider %q", name)
	}
	return spec, nil
}
