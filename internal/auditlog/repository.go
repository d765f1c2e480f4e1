package auditlog

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/bluestero/ythandle/internal/database"
)

const defaultListLimit = 20

// timestampLayout is fixed width so that text ordering of the timestamp
// column matches time ordering. Timestamps are always stored in UTC.
const timestampLayout = "2006-01-02T15:04:05.000000000Z07:00"

// Repository defines the persistence interface for audit entries.
type Repository interface {
	Save(ctx context.Context, entry *AuditEntry) error
	List(ctx context.Context, filter Filter) ([]AuditEntry, error)
	Prune(ctx context.Context, opts PruneOptions) (int64, error)
	Close() error
}

// SQLiteRepository implements Repository backed by a local SQLite database.
type SQLiteRepository struct {
	db *sql.DB
}

// Open creates or opens the audit repository at the default path.
func Open(ctx context.Context) (*SQLiteRepository, error) {
	path, err := database.DefaultPath()
	if err != nil {
		return nil, fmt.Errorf("auditlog: %w", err)
	}
	return OpenAt(ctx, path)
}

// schema holds one migration per schema version; append, never edit.
var schema = []string{
	`CREATE TABLE lookup_audit (
        id          INTEGER PRIMARY KEY AUTOINCREMENT,
        timestamp   TEXT    NOT NULL,
        command     TEXT    NOT NULL,
        args        TEXT    NOT NULL DEFAULT '',
        provider    TEXT    NOT NULL DEFAULT '',
        handle      TEXT    NOT NULL DEFAULT '',
        channel_id  TEXT    NOT NULL DEFAULT '',
        outcome     TEXT    NOT NULL DEFAULT '',
        detail      TEXT    NOT NULL DEFAULT '',
        duration_ms INTEGER NOT NULL DEFAULT 0
    );
    CREATE INDEX idx_lookup_audit_timestamp ON lookup_audit(timestamp);
    CREATE INDEX idx_lookup_audit_handle ON lookup_audit(handle);`,
	`CREATE INDEX idx_lookup_audit_command_outcome ON lookup_audit(command, outcome);`,
	// Pad RFC3339Nano values written before timestampLayout to nine
	// fractional digits.
	`UPDATE lookup_audit SET timestamp =
        substr(timestamp, 1, 19) || '.' ||
        substr(CASE WHEN instr(timestamp, '.') > 0
                    THEN substr(timestamp, 21, length(timestamp) - 21)
                    ELSE '' END || '000000000', 1, 9) || 'Z'
    WHERE length(timestamp) != 30 AND timestamp LIKE '%Z';`,
}

// OpenAt creates or opens the audit database at path and migrates it to the
// current schema.
func OpenAt(ctx context.Context, path string) (*SQLiteRepository, error) {
	db, err := database.Open(ctx, path, schema...)
	if err != nil {
		return nil, fmt.Errorf("auditlog: %w", err)
	}
	return &SQLiteRepository{db: db}, nil
}

// Save inserts a new audit entry.
func (r *SQLiteRepository) Save(ctx context.Context, entry *AuditEntry) error {
	if entry.Timestamp.IsZero() {
		entry.Timestamp = time.Now().UTC()
	}

	result, err := r.db.ExecContext(ctx, `
        INSERT INTO lookup_audit (timestamp, command, args, provider, handle, channel_id, outcome, detail, duration_ms)
        VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		formatTimestamp(entry.Timestamp), entry.Command, entry.Args, entry.Provider,
		entry.Handle, entry.ChannelID, entry.Outcome, entry.Detail, entry.DurationMs,
	)
	if err != nil {
		return fmt.Errorf("auditlog: insert failed: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("auditlog: failed to get last insert ID: %w", err)
	}
	entry.ID = id
	return nil
}

// List returns the most recent entries matching filter, newest first.
func (r *SQLiteRepository) List(ctx context.Context, filter Filter) ([]AuditEntry, error) {
	var (
		where []string
		args  []any
	)
	if filter.Command != "" {
		where = append(where, "command = ?")
		args = append(args, filter.Command)
	}
	if filter.Outcome != "" {
		where = append(where, "outcome = ?")
		args = append(args, filter.Outcome)
	}
	limit := filter.Limit
	if limit <= 0 {
		limit = defaultListLimit
	}

	query := `
        SELECT id, timestamp, command, args, provider, handle, channel_id, outcome, detail, duration_ms
        FROM lookup_audit`
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	query += " ORDER BY timestamp DESC, id DESC LIMIT ?"
	args = append(args, limit)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("auditlog: query failed: %w", err)
	}
	defer rows.Close()
	return scanRows(rows)
}

// Prune deletes entries selected by opts and returns how many matched.
// With DryRun set nothing is deleted.
func (r *SQLiteRepository) Prune(ctx context.Context, opts PruneOptions) (int64, error) {
	if opts.OlderThan <= 0 {
		return 0, fmt.Errorf("auditlog: prune window must be positive")
	}

	where := "timestamp < ?"
	args := []any{formatTimestamp(time.Now().Add(-opts.OlderThan))}
	if opts.Outcome != "" {
		where += " AND outcome = ?"
		args = append(args, opts.Outcome)
	}

	if opts.DryRun {
		var n int64
		if err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM lookup_audit WHERE "+where, args...).Scan(&n); err != nil {
			return 0, fmt.Errorf("auditlog: count failed: %w", err)
		}
		return n, nil
	}

	result, err := r.db.ExecContext(ctx, "DELETE FROM lookup_audit WHERE "+where, args...)
	if err != nil {
		return 0, fmt.Errorf("auditlog: delete failed: %w", err)
	}
	return result.RowsAffected()
}

// Close releases database resources.
func (r *SQLiteRepository) Close() error {
	return r.db.Close()
}

func formatTimestamp(t time.Time) string {
	return t.UTC().Format(timestampLayout)
}

func scanRows(rows *sql.Rows) ([]AuditEntry, error) {
	var entries []AuditEntry
	for rows.Next() {
		var entry AuditEntry
		var timestampStr string
		err := rows.Scan(
			&entry.ID, &timestampStr, &entry.Command, &entry.Args, &entry.Provider,
			&entry.Handle, &entry.ChannelID, &entry.Outcome, &entry.Detail, &entry.DurationMs,
		)
		if err != nil {
			return nil, fmt.Errorf("auditlog: scan failed: %w", err)
		}
		entry.Timestamp, _ = time.Parse(time.RFC3339Nano, timestampStr)
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}
