package auth

import (
	"errors"
	"fmt"

	"github.com/zalando/go-keyring"
)

// KeyringStore keeps API keys in the OS keychain. Each provider is one
// account under the store's service name.
type KeyringStore struct {
	serviceName string
}

// NewKeyringStore returns a store for serviceName, or ServiceName when empty.
func NewKeyringStore(serviceName string) *KeyringStore {
	if serviceName == "" {
		serviceName = ServiceName
	}
	return &KeyringStore{serviceName: serviceName}
}

// SetToken stores token for provider after trimming surrounding whitespace.
func (k *KeyringStore) SetToken(provider string, token string) error {
	token, err := cleanToken(token)
	if err != nil {
		return err
	}
	if err := keyring.Set(k.serviceName, NormalizeProvider(provider), token); err != nil {
		return fmt.Errorf("keyring: failed to store token for %s: %w", provider, err)
	}
	return nil
}

// GetToken returns ErrTokenNotFound when the keychain has no entry.
func (k *KeyringStore) GetToken(provider string) (string, error) {
	token, err := keyring.Get(k.serviceName, NormalizeProvider(provider))
	switch {
	case errors.Is(err, keyring.ErrNotFound):
		return "", ErrTokenNotFound
	case err != nil:
		return "", fmt.Errorf("keyring: failed to read token for %s: %w", provider, err)
	case token == "":
		return "", ErrTokenNotFound
	}
	return token, nil
}

// DeleteToken returns ErrTokenNotFound when there was nothing to delete.
func (k *KeyringStore) DeleteToken(provider string) error {
	err := keyring.Delete(k.serviceName, NormalizeProvider(provider))
	switch {
	case errors.Is(err, keyring.ErrNotFound):
		return ErrTokenNotFound
	case err != nil:
		return fmt.Errorf("keyring: failed to delete token for %s: %w", provider, err)
	}
	return nil
}
