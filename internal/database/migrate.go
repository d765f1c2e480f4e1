package database

import (
	"context"
	"database/sql"
	"fmt"
)

// Migrate brings db up to len(steps) using PRAGMA user_version as the schema
// version. Step i moves the schema from version i to i+1. Each step runs in
// its own transaction together with the version bump.
func Migrate(ctx context.Context, db *sql.DB, steps []string) error {
	current, err := SchemaVersion(ctx, db)
	if err != nil {
		return fmt.Errorf("database: read schema version: %w", err)
	}
	if current > len(steps) {
		return fmt.Errorf("database: schema version %d is newer than this binary (%d)", current, len(steps))
	}

	for v := current; v < len(steps); v++ {
		if err := applyStep(ctx, db, steps[v], v+1); err != nil {
			return fmt.Errorf("database: migrate to version %d: %w", v+1, err)
		}
	}
	return nil
}

func applyStep(ctx context.Context, db *sql.DB, ddl string, version int) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, ddl); err != nil {
		return err
	}
	// PRAGMA does not accept bound parameters.
	if _, err := tx.ExecContext(ctx, fmt.Sprintf("PRAGMA user_version = %d", version)); err != nil {
		return err
	}
	return tx.Commit()
}

// SchemaVersion reports the current PRAGMA user_version of db.
func SchemaVersion(ctx context.Context, db *sql.DB) (int, error) {
	var v int
	err := db.QueryRowContext(ctx, "PRAGMA user_version").Scan(&v)
	return v, err
}
