package auth

import "errors"

// ChainStore reads from each store in order and writes to the first one.
type ChainStore struct {
	stores []Store
}

// NewChainStore returns a store that consults stores in order. The first
// store receives all writes and deletes.
func NewChainStore(stores ...Store) *ChainStore {
	return &ChainStore{stores: stores}
}

func (c *ChainStore) SetToken(provider string, token string) error {
	if len(c.stores) == 0 {
		return ErrReadOnlyStore
	}
	return c.stores[0].SetToken(provider, token)
}

// GetToken returns the first token found. A store failing with anything
// other than ErrTokenNotFound (e.g. no keychain daemon) is skipped, and its
// error is returned only if no later store has the token.
func (c *ChainStore) GetToken(provider string) (string, error) {
	var firstErr error
	for _, s := range c.stores {
		token, err := s.GetToken(provider)
		if err == nil {
			return token, nil
		}
		if !errors.Is(err, ErrTokenNotFound) && firstErr == nil {
			firstErr = err
		}
	}
	if firstErr != nil {
		return "", firstErr
	}
	return "", ErrTokenNotFound
}

func (c *ChainStore) DeleteToken(provider string) error {
	if len(c.stores) == 0 {
		return ErrReadOnlyStore
	}
	return c.stores[0].DeleteToken(provider)
}
