// Package database opens the local SQLite file that backs the audit trail and
// applies versioned schema migrations to it.
package database

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

const (
	appDir = "ythandle"
	dbFile = "ythandle.db"

	// busyTimeoutMs lets a second ythandle process wait for the audit
	// writer instead of failing with SQLITE_BUSY.
	busyTimeoutMs = 5000
)

var pathOverride string

// SetPath overrides the default database path. Intended for testing.
func SetPath(p string) { pathOverride = p }

// ResetPath clears the path override. Intended for testing.
func ResetPath() { pathOverride = "" }

// DefaultPath returns the database path: the override when set, otherwise
// ythandle/ythandle.db under the user config directory.
func DefaultPath() (string, error) {
	if pathOverride != "" {
		return pathOverride, nil
	}
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("database: unable to determine config directory: %w", err)
	}
	return filepath.Join(base, appDir, dbFile), nil
}

// Open opens the SQLite database at path in WAL mode, creating parent
// directories as needed, and applies migrations when any are given.
func Open(ctx context.Context, path string, migrations ...string) (*sql.DB, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("database: create %s: %w", dir, err)
		}
	}

	db, err := sql.Open("sqlite", dsn(path))
	if err != nil {
		return nil, fmt.Errorf("database: open %s: %w", path, err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("database: connect %s: %w", path, err)
	}

	if len(migrations) > 0 {
		if err := Migrate(ctx, db, migrations); err != nil {
			db.Close()
			return nil, err
		}
	}
	return db, nil
}

func dsn(path string) string {
	return fmt.Sprintf("%s?_pragma=journal_mode(WAL)&_pragma=busy_timeout(%d)", path, busyTimeoutMs)
}
