package config

import (
	"fmt"
	"slices"
	"strings"

	"github.com/bluestero/ythandle/internal/channel/providers"
	"github.com/bluestero/ythandle/internal/config"
	"github.com/bluestero/ythandle/internal/util"

	"github.com/spf13/cobra"
)

// SetCommand returns the "config set" command.
func SetCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Set a configuration value",
		Long: "Set a persistent configuration value.\n\n" +
			config.KeysHelp() +
			"\nExamples:\n" +
			"  ythandle config set default-provider youtube\n" +
			"  ythandle config set max-results 10\n" +
			"  ythandle config set cache on",
		Args:         cobra.ExactArgs(2),
		RunE:         runSet,
		SilenceUsage: true,
	}

	return cmd
}

// validators maps key names to optional pre-save validation functions.
// Keys not present in this map rely on KeySpec.Set alone.
var validators = map[string]func(value string) error{
	"default-provider": validateProvider,
}

func runSet(cmd *cobra.Command, args []string) error {
	spec := config.Lookup(util.NormalizeKey(args[0]))
	if spec == nil {
		return fmt.Errorf("unknown configuration key %q (valid: %s)", args[0], strings.Join(config.KeyNames(), ", "))
	}

	value := util.NormalizeKey(args[1])
	if validate, ok := validators[spec.Name]; ok {
		if err := validate(value); err != nil {
			return err
		}
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if err := spec.Set(cfg, value); err != nil {
		return fmt.Errorf("invalid value for %s: %w", spec.Name, err)
	}
	if err := cfg.Save(); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s set to %q\n", spec.Name, value)
	return nil
}

// validateProvider checks that the given name is a registered provider.
func validateProvider(name string) error {
	known := providers.List()
	if slices.Contains(known, name) {
		return nil
	}
	return fmt.Errorf("unknown provider %q (registered: %s)", name, strings.Join(known, ", "))
}
