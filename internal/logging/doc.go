// Package logging assembles the structured slog loggers used by dtcheck.
//
// It owns the console and JSON handlers, centralizes level parsing, and keeps
// diagnostic output on stderr so the scan report remains the only thing
// written to stdout. A no-op logger is provided for tests.
package logging
