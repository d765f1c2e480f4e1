package cmd

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/bluestero/ythandle/internal/auditlog"

	"github.com/spf13/cobra"
)

// recordAudit stores one audit entry for an executed command. Failures are
// logged and never change the command's outcome.
func recordAudit(executed *cobra.Command, args []string, start time.Time, runErr error) {
	if !shouldAudit(executed) {
		return
	}

	entry := buildAuditEntry(executed, args, start, runErr)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	repo, err := auditlog.Open(ctx)
	if err != nil {
		slog.Debug("audit log unavailable", "error", err)
		return
	}
	defer repo.Close()

	if err := repo.Save(ctx, entry); err != nil {
		slog.Debug("audit log write failed", "error", err)
	}
}

func shouldAudit(cmd *cobra.Command) bool {
	if cmd == nil || !cmd.Runnable() || !cmd.HasParent() {
		return false
	}
	switch cmd.Name() {
	case "help", cobra.ShellCompRequestCmd, cobra.ShellCompNoDescRequestCmd:
		return false
	}
	return true
}

func buildAuditEntry(cmd *cobra.Command, args []string, start time.Time, runErr error) *auditlog.AuditEntry {
	meta := auditlog.MetadataFromContext(cmd.Context())

	outcome := meta.Outcome
	detail := ""
	switch {
	case outcome == auditlog.OutcomeNoMatch:
	case runErr != nil:
		outcome = auditlog.OutcomeError
		detail = runErr.Error()
	case outcome == "":
		outcome = auditlog.OutcomeSuccess
	}

	return &auditlog.AuditEntry{
		Timestamp:  start.UTC(),
		Command:    cmd.CommandPath(),
		Args:       strings.Join(auditlog.SanitizeArgs(args), " "),
		Provider:   meta.Provider,
		Handle:     meta.Handle,
		ChannelID:  meta.ChannelID,
		Outcome:    outcome,
		Detail:     detail,
		DurationMs: time.Since(start).Milliseconds(),
	}
}
