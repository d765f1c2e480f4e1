package cmd

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/bluestero/ythandle/internal/auditlog"

	"github.com/google/go-cmp/cmp"
	"github.com/spf13/cobra"
)

func TestSetupLogging(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	var errBuf bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetErr(&errBuf)

	if err := setupLogging(cmd, "debug"); err != nil {
		t.Fatalf("setupLogging error: %v", err)
	}
	slog.Debug("hello", "k", "v")
	if !strings.Contains(errBuf.String(), "msg=hello") {
		t.Errorf("expected debug line on stderr, got %q", errBuf.String())
	}

	if err := setupLogging(cmd, "loud"); err == nil {
		t.Error("expected error for invalid level")
	}
}

func TestRootCmd_HasCommandGroups(t *testing.T) {
	root := rootCmd()
	var names []string
	for _, c := range root.Commands() {
		names = append(names, c.Name())
	}
	for _, want := range []string{"audit", "auth", "cache", "channel", "config"} {
		found := false
		for _, n := range names {
			if n == want {
				found = true
			}
		}
		if !found {
			t.Errorf("missing %q command, have %v", want, names)
		}
	}
}

func TestShouldAudit(t *testing.T) {
	root := rootCmd()
	resolve, _, err := root.Find([]string{"channel", "resolve"})
	if err != nil {
		t.Fatalf("Find error: %v", err)
	}
	group, _, _ := root.Find([]string{"channel"})

	if !shouldAudit(resolve) {
		t.Error("expected channel resolve to be audited")
	}
	if shouldAudit(group) {
		t.Error("expected non-runnable group not to be audited")
	}
	if shouldAudit(root) || shouldAudit(nil) {
		t.Error("expected root and nil not to be audited")
	}
}

func TestBuildAuditEntry(t *testing.T) {
	root := rootCmd()
	resolve, _, _ := root.Find([]string{"channel", "resolve"})
	start := time.Now().Add(-time.Second)

	tests := []struct {
		name       string
		meta       auditlog.Metadata
		runErr     error
		wantOut    string
		wantDetail string
	}{
		{"matched", auditlog.Metadata{Outcome: auditlog.OutcomeMatched, ChannelID: "UC1"}, nil, auditlog.OutcomeMatched, ""},
		{"no match keeps outcome", auditlog.Metadata{Outcome: auditlog.OutcomeNoMatch}, errors.New("no matching channel"), auditlog.OutcomeNoMatch, ""},
		{"error", auditlog.Metadata{}, errors.New("quota"), auditlog.OutcomeError, "quota"},
		{"plain success", auditlog.Metadata{}, nil, auditlog.OutcomeSuccess, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resolve.SetContext(auditlog.WithMetadata(context.Background(), tt.meta))
			entry := buildAuditEntry(resolve, []string{"channel", "resolve", "@x", "--token", "secret"}, start, tt.runErr)

			if entry.Command != "ythandle channel resolve" {
				t.Errorf("Command = %q", entry.Command)
			}
			if diff := cmp.Diff([]string{tt.wantOut, tt.wantDetail}, []string{entry.Outcome, entry.Detail}); diff != "" {
				t.Errorf("outcome/detail mismatch (-want +got):\n%s", diff)
			}
			if strings.Contains(entry.Args, "secret") {
				t.Errorf("expected token to be redacted, got %q", entry.Args)
			}
			if entry.DurationMs < 1000 {
				t.Errorf("DurationMs = %d, want >= 1000", entry.DurationMs)
			}
		})
	}
}
