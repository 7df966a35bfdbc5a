package library

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

const (
	libraryDBName = "library.db"
	dataDBName    = "data.db"
)

// Library is a read-only view over a darktable configuration directory's
// catalog databases.
type Library struct {
	db          *sql.DB
	configDir   string
	libraryPath string
	dataPath    string
}

// Open locates library.db and data.db inside configDir and opens them
// read-only. The caller must Close the returned Library on every exit path.
func Open(ctx context.Context, configDir string) (*Library, error) {
	info, err := os.Stat(configDir)
	if err != nil {
		return nil, fmt.Errorf("%w: config directory %q: %v", ErrConfigPath, configDir, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %q is not a directory", ErrConfigPath, configDir)
	}

	libraryPath := filepath.Join(configDir, libraryDBName)
	dataPath := filepath.Join(configDir, dataDBName)
	for _, path := range []string{libraryPath, dataPath} {
		if info, err := os.Stat(path); err != nil || info.IsDir() {
			return nil, fmt.Errorf("%w: expected database file %s in %q", ErrConfigPath, filepath.Base(path), configDir)
		}
	}

	// mode=ro rejects writes at the storage layer, not merely by convention.
	db, err := sql.Open("sqlite", "file:"+libraryPath+"?mode=ro")
	if err != nil {
		return nil, fmt.Errorf("%w: open %s: %v", ErrDatabaseOpen, libraryPath, err)
	}
	// The data.db attachment lives on the connection, so the pool must not
	// hand out a second one.
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("%w: %s: %v", ErrDatabaseOpen, libraryPath, err)
	}

	if _, err := db.ExecContext(ctx, `ATTACH DATABASE ? AS data`, "file:"+dataPath+"?mode=ro"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("%w: attach %s: %v", ErrDatabaseOpen, dataPath, err)
	}

	return &Library{
		db:          db,
		configDir:   configDir,
		libraryPath: libraryPath,
		dataPath:    dataPath,
	}, nil
}

// Close releases the underlying database connection.
func (l *Library) Close() error {
	if l == nil || l.db == nil {
		return nil
	}
	return l.db.Close()
}

// ConfigDir returns the darktable configuration directory the library was
// opened from.
func (l *Library) ConfigDir() string {
	return l.configDir
}

// CountPhotos returns the number of images in the catalog.
func (l *Library) CountPhotos(ctx context.Context) (int, error) {
	var count int
	row := l.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM images`)
	if err := row.Scan(&count); err != nil {
		return 0, fmt.Errorf("count photos: %w", err)
	}
	return count, nil
}
