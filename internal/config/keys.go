package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/bluestero/ythandle/internal/util"
)

// KeySpec describes a single configuration key.
type KeySpec struct {
	// Name is the CLI-facing key name (e.g. "default-provider").
	Name string

	// Description is a short human-readable explanation shown in help text.
	Description string

	// Get returns the current value for this key from a loaded Config.
	// Unset keys return "".
	Get func(cfg *Config) string

	// Set validates value and applies it to the given Config (in memory only;
	// the caller is responsible for calling Save).
	Set func(cfg *Config, value string) error
}

// Keys is the authoritative list of all supported configuration keys.
// To add a new option: add a field to Config and append a KeySpec here.
var Keys = []KeySpec{
	{
		Name:        "default-provider",
		Description: "Channel provider used when --provider is not specified",
		Get:         func(cfg *Config) string { return cfg.DefaultProvider },
		Set: func(cfg *Config, v string) error {
			cfg.DefaultProvider = v
			return nil
		},
	},
	{
		Name:        "max-results",
		Description: "Channel candidates requested per search (1-50)",
		Get:         func(cfg *Config) string { return formatInt(cfg.MaxResults) },
		Set: func(cfg *Config, v string) error {
			n, err := parseIntInRange(v, 1, 50)
			if err != nil {
				return err
			}
			cfg.MaxResults = n
			return nil
		},
	},
	{
		Name:        "retry-attempts",
		Description: "Attempts per API call on transient failures (1 disables retry)",
		Get:         func(cfg *Config) string { return formatInt(cfg.RetryAttempts) },
		Set: func(cfg *Config, v string) error {
			n, err := parseIntInRange(v, 1, 10)
			if err != nil {
				return err
			}
			cfg.RetryAttempts = n
			return nil
		},
	},
	{
		Name:        "cache",
		Description: "Cache channel snippets on disk (on or off)",
		Get: func(cfg *Config) string {
			if cfg.Cache {
				return "on"
			}
			return ""
		},
		Set: func(cfg *Config, v string) error {
			on, err := util.ParseToggle(v)
			if err != nil {
				return err
			}
			cfg.Cache = on
			return nil
		},
	},
}

// Lookup returns the KeySpec for the given name, or nil if not found.
// The name is matched case-insensitively after trimming whitespace.
func Lookup(name string) *KeySpec {
	normalized := util.NormalizeKey(name)
	for i := range Keys {
		if Keys[i].Name == normalized {
			return &Keys[i]
		}
	}
	return nil
}

// KeyNames returns the names of all registered keys.
func KeyNames() []string {
	names := make([]string, len(Keys))
	for i, k := range Keys {
		names[i] = k.Name
	}
	return names
}

// KeysHelp builds a formatted block listing all available keys and their
// descriptions, suitable for inclusion in Cobra Long help text.
func KeysHelp() string {
	if len(Keys) == 0 {
		return ""
	}

	maxLen := 0
	for _, k := range Keys {
		if len(k.Name) > maxLen {
			maxLen = len(k.Name)
		}
	}

	var b strings.Builder
	b.WriteString("Available keys:\n")
	for _, k := range Keys {
		fmt.Fprintf(&b, "  %-*s   %s\n", maxLen, k.Name, k.Description)
	}
	return b.String()
}

func formatInt(n int) string {
	if n == 0 {
		return ""
	}
	return strconv.Itoa(n)
}

func parseIntInRange(v string, min, max int) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return 0, fmt.Errorf("invalid number %q", v)
	}
	if n < min || n > max {
		return 0, fmt.Errorf("value %d out of range (%d-%d)", n, min, max)
	}
	return n, nil
}
