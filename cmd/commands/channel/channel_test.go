package channel

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"testing"

	"github.com/bluestero/ythandle/internal/auditlog"
	"github.com/bluestero/ythandle/internal/channel/domain"
	"github.com/bluestero/ythandle/internal/channel/providers"
	"github.com/bluestero/ythandle/internal/config"
	"github.com/bluestero/ythandle/internal/services/auth"

	"github.com/google/go-cmp/cmp"
	"github.com/spf13/cobra"
)

// --- Mock provider ---

type mockProvider struct {
	candidates []domain.Candidate
	snippets   map[string]*domain.Snippet
	searchErr  error

	queries  []string
	fetchIDs []string
}

func (m *mockProvider) GetDisplayName() string { return "Mock" }

func (m *mockProvider) SearchChannels(_ context.Context, query string) ([]domain.Candidate, error) {
	m.queries = append(m.queries, query)
	return m.candidates, m.searchErr
}

func (m *mockProvider) GetChannelSnippet(_ context.Context, id string) (*domain.Snippet, error) {
	m.fetchIDs = append(m.fetchIDs, id)
	if s, ok := m.snippets[id]; ok {
		return s, nil
	}
	return nil, fmt.Errorf("channel %q: %w", id, domain.ErrChannelNotFound)
}

func googleMock() *mockProvider {
	return &mockProvider{
		candidates: []domain.Candidate{
			{ChannelID: "UC_x5XG1OV2P6uZZ5FSM9Ttw", Title: "Google"},
			{ChannelID: "UC_other", Title: "Google Fan"},
		},
		snippets: map[string]*domain.Snippet{
			"UC_x5XG1OV2P6uZZ5FSM9Ttw": {ChannelID: "UC_x5XG1OV2P6uZZ5FSM9Ttw", Title: "Google", CustomURL: "@google", Country: "US"},
			"UC_other":                 {ChannelID: "UC_other", Title: "Google Fan", CustomURL: "@googlefan"},
		},
	}
}

// registerMockProvider points config at a temp file, resets the global
// registry and registers mock under name. Settings seen by the factory are
// written to gotSettings when non-nil.
func registerMockProvider(t *testing.T, name string, mock *mockProvider, gotSettings *providers.Settings) {
	t.Helper()
	config.SetPath(filepath.Join(t.TempDir(), "config.json"))
	t.Cleanup(config.ResetPath)

	providers.Reset()
	t.Cleanup(providers.Reset)
	providers.Register(name, func(_ auth.Store, settings providers.Settings) (domain.Provider, error) {
		if gotSettings != nil {
			*gotSettings = settings
		}
		return mock, nil
	})
}

// execChannel creates the channel command, wires up output buffers, runs it
// with args, and returns stdout, stderr and the execution error.
func execChannel(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	var outBuf, errBuf bytes.Buffer
	cmd := NewCommand()
	cmd.SetOut(&outBuf)
	cmd.SetErr(&errBuf)
	cmd.SetArgs(args)
	err = cmd.Execute()
	return outBuf.String(), errBuf.String(), err
}

// --- resolve ---

func TestResolve_TableOutput(t *testing.T) {
	mock := googleMock()
	registerMockProvider(t, "mock", mock, nil)

	stdout, _, err := execChannel(t, "resolve", "@google", "--provider", "mock")
	if err != nil {
		t.Fatalf("resolve error: %v", err)
	}

	for _, want := range []string{"UC_x5XG1OV2P6uZZ5FSM9Ttw", "Google", "@google", "US"} {
		if !strings.Contains(stdout, want) {
			t.Errorf("expected %q in output, got:\n%s", want, stdout)
		}
	}
	if diff := cmp.Diff([]string{"UC_x5XG1OV2P6uZZ5FSM9Ttw"}, mock.fetchIDs); diff != "" {
		t.Errorf("fetches mismatch (-want +got):\n%s", diff)
	}
}

func TestResolve_JSONOutput(t *testing.T) {
	registerMockProvider(t, "mock", googleMock(), nil)

	stdout, _, err := execChannel(t, "resolve", "google", "--provider", "mock", "-o", "json")
	if err != nil {
		t.Fatalf("resolve error: %v", err)
	}

	var got domain.Snippet
	if err := json.Unmarshal([]byte(stdout), &got); err != nil {
		t.Fatalf("invalid JSON output: %v\n%s", err, stdout)
	}
	want := domain.Snippet{ChannelID: "UC_x5XG1OV2P6uZZ5FSM9Ttw", Title: "Google", CustomURL: "@google", Country: "US"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("snippet mismatch (-want +got):\n%s", diff)
	}
}

func TestResolve_NoMatch(t *testing.T) {
	mock := googleMock()
	registerMockProvider(t, "mock", mock, nil)

	stdout, _, err := execChannel(t, "resolve", "nobody", "--provider", "mock")
	if !errors.Is(err, ErrNoMatch) {
		t.Fatalf("expected ErrNoMatch, got %v", err)
	}
	if !strings.Contains(stdout, `No channel found for handle "@nobody".`) {
		t.Errorf("unexpected output: %s", stdout)
	}
	if len(mock.fetchIDs) != 2 {
		t.Errorf("expected every candidate fetched once, got %v", mock.fetchIDs)
	}
}

func TestResolve_ProviderError(t *testing.T) {
	mock := &mockProvider{searchErr: domain.ErrRateLimited}
	registerMockProvider(t, "mock", mock, nil)

	_, _, err := execChannel(t, "resolve", "@google", "--provider", "mock")
	if !errors.Is(err, domain.ErrRateLimited) {
		t.Fatalf("expected ErrRateLimited, got %v", err)
	}
}

func TestResolve_UsesDefaultProviderAndSettings(t *testing.T) {
	var got providers.Settings
	registerMockProvider(t, "youtube", googleMock(), &got)

	cfg := &config.Config{MaxResults: 12, RetryAttempts: 3}
	if err := cfg.Save(); err != nil {
		t.Fatalf("failed to save config: %v", err)
	}

	if _, _, err := execChannel(t, "resolve", "@google"); err != nil {
		t.Fatalf("resolve error: %v", err)
	}
	if got.MaxResults != 12 {
		t.Errorf("MaxResults = %d, want 12", got.MaxResults)
	}
	if got.Retry.MaxAttempts != 3 {
		t.Errorf("Retry.MaxAttempts = %d, want 3", got.Retry.MaxAttempts)
	}
}

func TestResolve_UnknownProvider(t *testing.T) {
	registerMockProvider(t, "mock", googleMock(), nil)

	_, _, err := execChannel(t, "resolve", "@google", "--provider", "vimeo")
	if err == nil || !strings.Contains(err.Error(), "unknown provider") {
		t.Fatalf("expected unknown provider error, got %v", err)
	}
}

func TestResolve_BadOutputFormat(t *testing.T) {
	mock := googleMock()
	registerMockProvider(t, "mock", mock, nil)

	_, _, err := execChannel(t, "resolve", "@google", "--provider", "mock", "-o", "yaml")
	if err == nil {
		t.Fatal("expected error for unsupported output format")
	}
	if len(mock.queries) != 0 {
		t.Errorf("expected no provider calls, got %v", mock.queries)
	}
}

// --- search ---

func TestSearch_ListsCandidatesInOrder(t *testing.T) {
	mock := googleMock()
	registerMockProvider(t, "mock", mock, nil)

	stdout, _, err := execChannel(t, "search", "@google", "--provider", "mock")
	if err != nil {
		t.Fatalf("search error: %v", err)
	}

	first := strings.Index(stdout, "UC_x5XG1OV2P6uZZ5FSM9Ttw")
	second := strings.Index(stdout, "UC_other")
	if first < 0 || second < 0 || first > second {
		t.Errorf("expected candidates in search order, got:\n%s", stdout)
	}
	if len(mock.fetchIDs) != 0 {
		t.Errorf("search must not fetch candidates, got %v", mock.fetchIDs)
	}
}

func TestSearch_JSON(t *testing.T) {
	registerMockProvider(t, "mock", googleMock(), nil)

	stdout, _, err := execChannel(t, "search", "google", "--provider", "mock", "-o", "json")
	if err != nil {
		t.Fatalf("search error: %v", err)
	}

	var got []domain.Candidate
	if err := json.Unmarshal([]byte(stdout), &got); err != nil {
		t.Fatalf("invalid JSON output: %v", err)
	}
	if len(got) != 2 || got[0].ChannelID != "UC_x5XG1OV2P6uZZ5FSM9Ttw" {
		t.Errorf("unexpected candidates: %+v", got)
	}
}

func TestSearch_Empty(t *testing.T) {
	registerMockProvider(t, "mock", &mockProvider{}, nil)

	stdout, _, err := execChannel(t, "search", "@nobody", "--provider", "mock")
	if err != nil {
		t.Fatalf("search error: %v", err)
	}
	if !strings.Contains(stdout, "No channels found.") {
		t.Errorf("unexpected output: %s", stdout)
	}
}

func TestSearch_RecordsNormalizedAuditHandle(t *testing.T) {
	registerMockProvider(t, "mock", googleMock(), nil)

	var got auditlog.Metadata
	cmd := NewCommand()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.PersistentPostRunE = func(c *cobra.Command, _ []string) error {
		got = auditlog.MetadataFromContext(c.Context())
		return nil
	}
	cmd.SetArgs([]string{"search", "google", "--provider", "mock"})
	if err := cmd.ExecuteContext(context.Background()); err != nil {
		t.Fatalf("search error: %v", err)
	}

	if got.Handle != "@google" {
		t.Errorf("audit handle = %q, want %q", got.Handle, "@google")
	}
}

// --- show ---

func TestShow_TableOutput(t *testing.T) {
	mock := googleMock()
	registerMockProvider(t, "mock", mock, nil)

	stdout, _, err := execChannel(t, "show", "UC_other", "--provider", "mock")
	if err != nil {
		t.Fatalf("show error: %v", err)
	}
	if !strings.Contains(stdout, "@googlefan") {
		t.Errorf("expected custom URL in output, got:\n%s", stdout)
	}
	if len(mock.queries) != 0 {
		t.Errorf("show must not search, got %v", mock.queries)
	}
}

func TestShow_NotFound(t *testing.T) {
	registerMockProvider(t, "mock", googleMock(), nil)

	_, _, err := execChannel(t, "show", "UC_gone", "--provider", "mock")
	if !errors.Is(err, domain.ErrChannelNotFound) {
		t.Fatalf("expected ErrChannelNotFound, got %v", err)
	}
}
