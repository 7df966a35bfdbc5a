package library

import "errors"

var (
	// ErrConfigPath marks a missing or unusable darktable configuration
	// directory, including absent database files.
	ErrConfigPath = errors.New("config path error")

	// ErrDatabaseOpen marks database files that exist but cannot be opened or
	// queried (corruption, permissions, locks).
	ErrDatabaseOpen = errors.New("database open error")
)
