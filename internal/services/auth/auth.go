// Package auth stores provider API keys. Keys are looked up by provider
// name, case-insensitively.
package auth

import (
	"errors"
	"strings"

	"github.com/bluestero/ythandle/internal/platform/providers"
	"github.com/bluestero/ythandle/internal/util"
)

// ServiceName is the keychain service ythandle stores keys under.
const ServiceName = "ythandle"

var (
	ErrTokenNotFound = errors.New("auth token not found")
	ErrEmptyToken    = errors.New("auth token is empty")
)

// Store reads and writes one API key per provider.
type Store interface {
	SetToken(provider string, token string) error
	GetToken(provider string) (string, error)
	DeleteToken(provider string) error
}

// DefaultStore returns the standard auth store: the OS keychain first, then
// the provider's environment variable (which may come from a .env file).
func DefaultStore() Store {
	return NewChainStore(NewKeyringStore(ServiceName), NewEnvStore(providers.EnvVars()))
}

// NormalizeProvider normalizes a provider name for consistent key lookup.
func NormalizeProvider(provider string) string {
	return util.NormalizeKey(provider)
}

// cleanToken strips whitespace a pasted key often carries, such as a
// trailing newline, and rejects what is left if it is empty.
func cleanToken(token string) (string, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return "", ErrEmptyToken
	}
	return token, nil
}
