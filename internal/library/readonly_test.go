package library

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"testing"

	_ "modernc.org/sqlite"
)

// The scan must be unable to write even by accident, so the read-only mode has
// to hold at the storage layer, not just by API discipline.
func TestOpenedConnectionRejectsWrites(t *testing.T) {
	configDir := t.TempDir()
	seedFixture(t, filepath.Join(configDir, "library.db"),
		`CREATE TABLE film_rolls (id INTEGER PRIMARY KEY, folder VARCHAR NOT NULL)`,
		`CREATE TABLE images (id INTEGER PRIMARY KEY, film_id INTEGER, filename VARCHAR, version INTEGER DEFAULT 0, flags INTEGER DEFAULT 0, position INTEGER, history_end INTEGER DEFAULT 0, datetime_taken INTEGER)`,
		`CREATE TABLE tagged_images (imgid INTEGER, tagid INTEGER, position INTEGER)`,
		`CREATE TABLE color_labels (imgid INTEGER, color INTEGER)`,
	)
	seedFixture(t, filepath.Join(configDir, "data.db"),
		`CREATE TABLE tags (id INTEGER PRIMARY KEY, name VARCHAR NOT NULL)`,
	)

	ctx := context.Background()
	lib, err := Open(ctx, configDir)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer lib.Close()

	if _, err := lib.db.ExecContext(ctx, `INSERT INTO film_rolls (folder) VALUES ('/tmp')`); err == nil {
		t.Fatal("expected write on library.db to fail")
	}
	if _, err := lib.db.ExecContext(ctx, `INSERT INTO data.tags (name) VALUES ('x')`); err == nil {
		t.Fatal("expected write on data.db to fail")
	}
}

func seedFixture(t *testing.T, path string, statements ...string) {
	t.Helper()

	db, err := sql.Open("sqlite", path)
	if err != nil {
		t.Fatalf("open fixture %s: %v", path, err)
	}
	defer db.Close()
	for _, stmt := range statements {
		if _, err := db.Exec(stmt); err != nil {
			t.Fatalf("exec %q: %v", stmt, err)
		}
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("fixture not created: %v", err)
	}
}
