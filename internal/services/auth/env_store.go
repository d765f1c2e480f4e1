package auth

import (
	"errors"
	"os"
	"strings"
)

// ErrReadOnlyStore is returned when writing to a store backed by the environment.
var ErrReadOnlyStore = errors.New("auth store is read-only")

// EnvStore reads tokens from environment variables. It never writes.
type EnvStore struct {
	vars map[string]string
}

// NewEnvStore returns a store mapping normalized keychain keys to environment
// variable names (e.g. "youtube" -> "YOUTUBE_API_KEY").
func NewEnvStore(vars map[string]string) *EnvStore {
	normalized := make(map[string]string, len(vars))
	for key, name := range vars {
		normalized[NormalizeProvider(key)] = name
	}
	return &EnvStore{vars: normalized}
}

func (e *EnvStore) GetToken(provider string) (string, error) {
	name, ok := e.vars[NormalizeProvider(provider)]
	if !ok {
		return "", ErrTokenNotFound
	}
	token := strings.TrimSpace(os.Getenv(name))
	if token == "" {
		return "", ErrTokenNotFound
	}
	return token, nil
}

func (e *EnvStore) SetToken(string, string) error { return ErrReadOnlyStore }

func (e *EnvStore) DeleteToken(string) error { return ErrReadOnlyStore }
