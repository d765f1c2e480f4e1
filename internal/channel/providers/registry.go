package providers

import (
	"fmt"
	"sort"
	"sync"

	"github.com/bluestero/ythandle/internal/channel/domain"
	"github.com/bluestero/ythandle/internal/retry"
	"github.com/bluestero/ythandle/internal/services/auth"
	"github.com/bluestero/ythandle/internal/util"
)

// Settings carries the user-tunable knobs a factory applies to the provider
// it builds.
type Settings struct {
	// MaxResults bounds the single search page. Zero means the provider default.
	MaxResults int64

	// Retry controls transport retries inside the provider. The zero value
	// makes exactly one attempt.
	Retry retry.Config
}

// Factory is a constructor function that builds a channel Provider given an
// auth store and settings.
type Factory func(store auth.Store, settings Settings) (domain.Provider, error)

var (
	mu       sync.RWMutex
	registry = map[string]Factory{}
)

// Register adds a provider factory to the channel registry.
// It panics on empty name, nil factory, or duplicate registration
// (programmer errors detected at startup).
func Register(name string, factory Factory) {
	normalizedName := util.NormalizeKey(name)
	if normalizedName == "" {
		panic("channel/providers: empty provider name")
	}
	if factory == nil {
		panic("channel/providers: nil factory")
	}

	mu.Lock()
	defer mu.Unlock()
	if _, exists := registry[normalizedName]; exists {
		panic(fmt.Sprintf("channel/providers: provider %q already registered", name))
	}

	registry[normalizedName] = factory
}

// Get constructs and returns the Provider for the given name, using the
// store to retrieve credentials.
func Get(name string, store auth.Store, settings Settings) (domain.Provider, error) {
	normalizedName := util.NormalizeKey(name)
	mu.RLock()
	factory, ok := registry[normalizedName]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("channel/providers: unknown provider %q", name)
	}

	return factory(store, settings)
}

// List returns the sorted names of all registered providers.
func List() []string {
	mu.RLock()
	defer mu.RUnlock()

	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Reset clears the registry. Intended for use in tests only.
func Reset() {
	mu.Lock()
	defer mu.Unlock()
	registry = map[string]Factory{}
}
