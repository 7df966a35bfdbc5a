// Package library reads a darktable library catalog.
//
// It locates library.db and data.db inside a darktable configuration
// directory, opens both strictly read-only at the SQLite driver level
// (mode=ro URIs), and exposes typed photo, tag, and film roll records.
// data.db is attached to the library connection so tag names resolve in a
// single query; the connection pool is capped at one connection to keep the
// attachment visible everywhere.
//
// The package never writes: no INSERT, UPDATE, DELETE, or schema statement
// exists here, and the read-only open mode makes accidental writes fail at
// the storage layer.
package library
