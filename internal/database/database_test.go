package database

import (
	"context"
	"path/filepath"
	"testing"
)

func TestDefaultPathOverride(t *testing.T) {
	t.Cleanup(ResetPath)

	path := filepath.Join(t.TempDir(), "ythandle.db")
	SetPath(path)

	got, err := DefaultPath()
	if err != nil {
		t.Fatalf("DefaultPath error: %v", err)
	}
	if got != path {
		t.Fatalf("DefaultPath = %q, want %q", got, path)
	}
}

func TestDefaultPathUsesAppDir(t *testing.T) {
	ResetPath()

	got, err := DefaultPath()
	if err != nil {
		t.Skipf("no user config dir: %v", err)
	}
	if filepath.Base(got) != dbFile || filepath.Base(filepath.Dir(got)) != appDir {
		t.Fatalf("DefaultPath = %q, want .../%s/%s", got, appDir, dbFile)
	}
}

func TestOpenCreatesDatabaseInNestedDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "ythandle.db")

	db, err := Open(context.Background(), path)
	if err != nil {
		t.Fatalf("Open error: %v", err)
	}
	t.Cleanup(func() {
		_ = db.Close()
	})

	var mode string
	if err := db.QueryRow("PRAGMA journal_mode").Scan(&mode); err != nil {
		t.Fatalf("journal_mode query error: %v", err)
	}
	if mode != "wal" {
		t.Errorf("journal_mode = %q, want %q", mode, "wal")
	}
}

func TestMigrateAppliesOnlyNewSteps(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "ythandle.db")

	v1 := []string{`CREATE TABLE lookups (handle TEXT NOT NULL);`}
	db, err := Open(ctx, path, v1...)
	if err != nil {
		t.Fatalf("Open v1 error: %v", err)
	}
	if _, err := db.Exec(`INSERT INTO lookups (handle) VALUES ('@google')`); err != nil {
		t.Fatalf("insert error: %v", err)
	}
	db.Close()

	v2 := append(v1, `ALTER TABLE lookups ADD COLUMN channel_id TEXT NOT NULL DEFAULT '';`)
	db, err = Open(ctx, path, v2...)
	if err != nil {
		t.Fatalf("Open v2 error: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	version, err := SchemaVersion(ctx, db)
	if err != nil {
		t.Fatalf("SchemaVersion error: %v", err)
	}
	if version != 2 {
		t.Errorf("schema version = %d, want 2", version)
	}

	var handle, channelID string
	if err := db.QueryRow(`SELECT handle, channel_id FROM lookups`).Scan(&handle, &channelID); err != nil {
		t.Fatalf("select error: %v", err)
	}
	if handle != "@google" || channelID != "" {
		t.Errorf("row = (%q, %q), want (%q, %q)", handle, channelID, "@google", "")
	}

	// Reopening at the same version is a no-op.
	if err := Migrate(ctx, db, v2); err != nil {
		t.Fatalf("second Migrate error: %v", err)
	}
}

func TestMigrateFailedStepRollsBack(t *testing.T) {
	ctx := context.Background()
	db, err := Open(ctx, filepath.Join(t.TempDir(), "ythandle.db"))
	if err != nil {
		t.Fatalf("Open error: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	steps := []string{
		`CREATE TABLE lookups (handle TEXT);`,
		`CREATE TABLE broken (;`,
	}
	if err := Migrate(ctx, db, steps); err == nil {
		t.Fatal("expected error from invalid step")
	}

	version, err := SchemaVersion(ctx, db)
	if err != nil {
		t.Fatalf("SchemaVersion error: %v", err)
	}
	if version != 1 {
		t.Errorf("schema version = %d, want 1 (first step kept, second rolled back)", version)
	}
}

func TestMigrateRejectsNewerSchema(t *testing.T) {
	ctx := context.Background()
	db, err := Open(ctx, filepath.Join(t.TempDir(), "ythandle.db"))
	if err != nil {
		t.Fatalf("Open error: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	if _, err := db.Exec(`PRAGMA user_version = 5`); err != nil {
		t.Fatalf("set user_version error: %v", err)
	}
	if err := Migrate(ctx, db, []string{`CREATE TABLE t (x INTEGER);`}); err == nil {
		t.Fatal("expected error for schema newer than steps")
	}
}
