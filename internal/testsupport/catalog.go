package testsupport

import (
	"database/sql"
	"os"
	"path/filepath"
	"testing"

	_ "modernc.org/sqlite"
)

// PhotoFixture describes one catalog row for a fixture library.
type PhotoFixture struct {
	Filename    string // relative to the images directory
	Version     int
	Rating      int // -1 rejected, 0 unrated, 1..5 stars
	Tags        []string
	ColorLabels []int
	HistoryEnd  int
}

// Catalog is a miniature darktable configuration directory built for a test.
type Catalog struct {
	ConfigDir string
	ImagesDir string
}

// NewCatalog materializes library.db, data.db, and the referenced image files
// inside temp directories. The schema covers only the subset of darktable's
// tables the reader queries.
func NewCatalog(t testing.TB, photos ...PhotoFixture) Catalog {
	t.Helper()

	base := t.TempDir()
	configDir := filepath.Join(base, "darktable")
	imagesDir := filepath.Join(base, "images")
	for _, dir := range []string{configDir, imagesDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			t.Fatalf("mkdir %s: %v", dir, err)
		}
	}

	buildDataDB(t, filepath.Join(configDir, "data.db"), photos)
	buildLibraryDB(t, filepath.Join(configDir, "library.db"), imagesDir, photos)

	for _, photo := range photos {
		target := filepath.Join(imagesDir, photo.Filename)
		if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
			t.Fatalf("mkdir for %s: %v", target, err)
		}
		if err := os.WriteFile(target, []byte("raw"), 0o644); err != nil {
			t.Fatalf("write image %s: %v", target, err)
		}
	}

	return Catalog{ConfigDir: configDir, ImagesDir: imagesDir}
}

func buildDataDB(t testing.TB, path string, photos []PhotoFixture) {
	t.Helper()

	db := openFixtureDB(t, path)
	defer db.Close()

	mustExec(t, db, `CREATE TABLE tags (id INTEGER PRIMARY KEY, name VARCHAR NOT NULL UNIQUE)`)

	id := int64(1)
	seen := map[string]struct{}{}
	for _, photo := range photos {
		for _, tag := range photo.Tags {
			if _, ok := seen[tag]; ok {
				continue
			}
			seen[tag] = struct{}{}
			mustExec(t, db, `INSERT INTO tags (id, name) VALUES (?, ?)`, id, tag)
			id++
		}
	}
}

func buildLibraryDB(t testing.TB, path, imagesDir string, photos []PhotoFixture) {
	t.Helper()

	db := openFixtureDB(t, path)
	defer db.Close()

	mustExec(t, db, `CREATE TABLE film_rolls (id INTEGER PRIMARY KEY, folder VARCHAR(1024) NOT NULL)`)
	mustExec(t, db, `CREATE TABLE images (
        id INTEGER PRIMARY KEY,
        film_id INTEGER NOT NULL,
        filename VARCHAR NOT NULL,
        version INTEGER NOT NULL DEFAULT 0,
        flags INTEGER NOT NULL DEFAULT 0,
        position INTEGER,
        history_end INTEGER NOT NULL DEFAULT 0,
        datetime_taken INTEGER)`)
	mustExec(t, db, `CREATE TABLE tagged_images (imgid INTEGER, tagid INTEGER, position INTEGER, PRIMARY KEY (imgid, tagid))`)
	mustExec(t, db, `CREATE TABLE color_labels (imgid INTEGER, color INTEGER, PRIMARY KEY (imgid, color))`)

	mustExec(t, db, `INSERT INTO film_rolls (id, folder) VALUES (1, ?)`, imagesDir)

	tagIDs := map[string]int64{}
	nextTag := int64(1)
	for _, photo := range photos {
		for _, tag := range photo.Tags {
			if _, ok := tagIDs[tag]; !ok {
				tagIDs[tag] = nextTag
				nextTag++
			}
		}
	}

	for i, photo := range photos {
		imgID := int64(i + 1)
		mustExec(t, db,
			`INSERT INTO images (id, film_id, filename, version, flags, position, history_end) VALUES (?, 1, ?, ?, ?, ?, ?)`,
			imgID, photo.Filename, photo.Version, ratingFlags(photo.Rating), imgID, photo.HistoryEnd,
		)
		for pos, tag := range photo.Tags {
			mustExec(t, db, `INSERT INTO tagged_images (imgid, tagid, position) VALUES (?, ?, ?)`, imgID, tagIDs[tag], pos)
		}
		for _, color := range photo.ColorLabels {
			mustExec(t, db, `INSERT INTO color_labels (imgid, color) VALUES (?, ?)`, imgID, color)
		}
	}
}

func ratingFlags(rating int) int {
	if rating < 0 {
		return 6
	}
	if rating > 5 {
		return 5
	}
	return rating
}

func openFixtureDB(t testing.TB, path string) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite", path)
	if err != nil {
		t.Fatalf("open fixture db %s: %v", path, err)
	}
	return db
}

func mustExec(t testing.TB, db *sql.DB, query string, args ...any) {
	t.Helper()

	if _, err := db.Exec(query, args...); err != nil {
		t.Fatalf("exec %q: %v", query, err)
	}
}
