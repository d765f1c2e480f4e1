package config

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/bluestero/ythandle/internal/channel/domain"
	"github.com/bluestero/ythandle/internal/channel/providers"
	"github.com/bluestero/ythandle/internal/config"
	"github.com/bluestero/ythandle/internal/services/auth"
)

// setupTestConfig points the config package at a temp file.
func setupTestConfig(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	config.SetPath(path)
	t.Cleanup(config.ResetPath)
	return path
}

// registerTestProvider registers a no-op provider in the global registry.
func registerTestProvider(t *testing.T, name string) {
	t.Helper()
	providers.Reset()
	t.Cleanup(providers.Reset)
	providers.Register(name, func(auth.Store, providers.Settings) (domain.Provider, error) {
		return nil, nil
	})
}

// execConfig creates the config command, wires up output buffers, runs with the
// given args, and returns what was written to stdout and stderr.
func execConfig(t *testing.T, args ...string) (stdout, stderr string) {
	t.Helper()
	var outBuf, errBuf bytes.Buffer
	cmd := NewCommand()
	cmd.SetOut(&outBuf)
	cmd.SetErr(&errBuf)
	cmd.SetArgs(args)
	_ = cmd.Execute()
	return outBuf.String(), errBuf.String()
}

func TestSet_DefaultProvider(t *testing.T) {
	setupTestConfig(t)
	registerTestProvider(t, "youtube")

	stdout, stderr := execConfig(t, "set", "default-provider", "youtube")

	if stderr != "" {
		t.Errorf("unexpected stderr: %s", stderr)
	}
	if !strings.Contains(stdout, `"youtube"`) {
		t.Errorf("expected confirmation with provider name, got: %s", stdout)
	}

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}
	if cfg.DefaultProvider != "youtube" {
		t.Errorf("expected DefaultProvider %q, got %q", "youtube", cfg.DefaultProvider)
	}
}

func TestSet_DefaultProvider_UnknownProvider(t *testing.T) {
	setupTestConfig(t)
	registerTestProvider(t, "youtube")

	_, stderr := execConfig(t, "set", "default-provider", "nonexistent")

	if !strings.Contains(stderr, "unknown provider") {
		t.Errorf("expected 'unknown provider' error, got: %s", stderr)
	}
}

func TestSet_DefaultProvider_CaseInsensitive(t *testing.T) {
	setupTestConfig(t)
	registerTestProvider(t, "youtube")

	stdout, stderr := execConfig(t, "set", "default-provider", "YouTube")

	if stderr != "" {
		t.Errorf("unexpected stderr: %s", stderr)
	}
	if !strings.Contains(stdout, `"youtube"`) {
		t.Errorf("expected normalized provider name, got: %s", stdout)
	}
}

func TestSet_UnknownKey(t *testing.T) {
	setupTestConfig(t)

	_, stderr := execConfig(t, "set", "bogus-key", "value")

	if !strings.Contains(stderr, "unknown configuration key") {
		t.Errorf("expected 'unknown configuration key' error, got: %s", stderr)
	}
}

func TestSet_MaxResults(t *testing.T) {
	setupTestConfig(t)

	if _, stderr := execConfig(t, "set", "max-results", "25"); stderr != "" {
		t.Fatalf("unexpected stderr: %s", stderr)
	}

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}
	if cfg.MaxResults != 25 {
		t.Errorf("MaxResults = %d, want 25", cfg.MaxResults)
	}
}

func TestSet_InvalidValueNotSaved(t *testing.T) {
	path := setupTestConfig(t)

	_, stderr := execConfig(t, "set", "max-results", "500")
	if !strings.Contains(stderr, "out of range") {
		t.Errorf("expected range error, got: %s", stderr)
	}

	cfg, err := config.LoadFrom(path)
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}
	if cfg.MaxResults != 0 {
		t.Errorf("expected MaxResults to stay unset, got %d", cfg.MaxResults)
	}
}

func TestSet_Cache(t *testing.T) {
	setupTestConfig(t)

	execConfig(t, "set", "cache", "ON")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}
	if !cfg.Cache {
		t.Error("expected cache to be enabled")
	}
}
