// Package config handles persistent user configuration for ythandle.
//
// Configuration is stored as JSON at ~/.config/ythandle/config.json (or the
// platform-equivalent path returned by os.UserConfigDir).
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

const (
	appDir   = "ythandle"
	fileName = "config.json"
)

// Defaults applied when a key is unset.
const (
	DefaultProvider      = "youtube"
	DefaultMaxResults    = 5
	DefaultRetryAttempts = 1
)

// pathOverride, when non-empty, replaces the default config file path.
// Intended for testing. Use SetPath / ResetPath to manage.
var pathOverride string

// SetPath overrides the config file path. Intended for testing.
func SetPath(p string) { pathOverride = p }

// ResetPath clears the path override, reverting to the default. Intended for testing.
func ResetPath() { pathOverride = "" }

// Config holds user preferences that persist across invocations.
// Zero values mean "use the default".
type Config struct {
	DefaultProvider string `json:"default_provider,omitempty"`
	MaxResults      int    `json:"max_results,omitempty"`
	RetryAttempts   int    `json:"retry_attempts,omitempty"`
	Cache           bool   `json:"cache,omitempty"`
}

// Provider returns the configured provider name or DefaultProvider.
func (c *Config) Provider() string {
	if c.DefaultProvider == "" {
		return DefaultProvider
	}
	return c.DefaultProvider
}

// SearchMaxResults returns the configured search page size or DefaultMaxResults.
func (c *Config) SearchMaxResults() int {
	if c.MaxResults <= 0 {
		return DefaultMaxResults
	}
	return c.MaxResults
}

// Attempts returns the configured attempts per provider call or DefaultRetryAttempts.
func (c *Config) Attempts() int {
	if c.RetryAttempts <= 0 {
		return DefaultRetryAttempts
	}
	return c.RetryAttempts
}

// Path returns the absolute path to the config file.
// If SetPath has been called, that value is returned instead.
func Path() (string, error) {
	if pathOverride != "" {
		return pathOverride, nil
	}
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("config: unable to determine config directory: %w", err)
	}
	return filepath.Join(base, appDir, fileName), nil
}

// Load reads the config file from disk and returns the parsed Config.
// If the file does not exist, a zero-value Config is returned (not an error).
func Load() (*Config, error) {
	return loadFrom("")
}

func loadFrom(path string) (*Config, error) {
	if path == "" {
		var err error
		path, err = Path()
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("config: failed to read %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("config: failed to parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}

	return &cfg, nil
}

// Validate re-applies every set key through its KeySpec so that values
// edited by hand obey the same rules as "config set".
func (c *Config) Validate() error {
	scratch := *c
	for _, spec := range Keys {
		v := spec.Get(c)
		if v == "" {
			continue
		}
		if err := spec.Set(&scratch, v); err != nil {
			return fmt.Errorf("key %q: %w", spec.Name, err)
		}
	}
	return nil
}

// Save writes the config to disk, creating the parent directory if needed.
func (c *Config) Save() error {
	return c.saveTo("")
}

func (c *Config) saveTo(path string) error {
	if path == "" {
		var err error
		path, err = Path()
		if err != nil {
			return err
		}
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("config: failed to create directory %s: %w", dir, err)
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("config: failed to marshal config: %w", err)
	}
	data = append(data, '\n')

	// Write then rename so an interrupted save never truncates the file.
	tmp, err := os.CreateTemp(dir, fileName+".tmp-*")
	if err != nil {
		return fmt.Errorf("config: failed to write %s: %w", path, err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("config: failed to write %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("config: failed to write %s: %w", path, err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("config: failed to write %s: %w", path, err)
	}

	return nil
}

// LoadFrom reads the config from the given path. Intended for testing.
func LoadFrom(path string) (*Config, error) {
	return loadFrom(path)
}

// SaveTo writes the config to the given path. Intended for testing.
func (c *Config) SaveTo(path string) error {
	return c.saveTo(path)
}
