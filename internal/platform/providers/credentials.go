// Package providers holds cross-domain provider metadata shared between
// the channel providers and the auth subsystem.
package providers

import "github.com/bluestero/ythandle/internal/util"

// CredentialSpec describes how a provider's API key is stored and prompted for.
type CredentialSpec struct {
	// Provider is the normalized provider name, also used as the keychain key.
	Provider string

	// DisplayName is the human-readable provider name (e.g. "YouTube").
	DisplayName string

	// Prompt is the label shown when asking the user for the key.
	Prompt string

	// EnvVar is the environment variable consulted when the keychain has no entry.
	EnvVar string
}

// knownSpecs is the authoritative list of provider credential specs.
// The auth commands iterate it to know what to prompt for and report on.
var knownSpecs = []CredentialSpec{
	{
		Provider:    "youtube",
		DisplayName: "YouTube",
		Prompt:      "YouTube Data API v3 key",
		EnvVar:      "YOUTUBE_API_KEY",
	},
}

// Lookup returns the CredentialSpec for the given provider name,
// or nil if no spec is registered for that provider.
func Lookup(providerName string) *CredentialSpec {
	normalized := util.NormalizeKey(providerName)
	for i := range knownSpecs {
		if knownSpecs[i].Provider == normalized {
			return &knownSpecs[i]
		}
	}
	return nil
}

// All returns a copy of all registered credential specs.
func All() []CredentialSpec {
	out := make([]CredentialSpec, len(knownSpecs))
	copy(out, knownSpecs)
	return out
}

// EnvVars maps each provider name to its environment variable.
func EnvVars() map[string]string {
	vars := make(map[string]string, len(knownSpecs))
	for _, spec := range knownSpecs {
		if spec.EnvVar != "" {
			vars[spec.Provider] = spec.EnvVar
		}
	}
	return vars
}
