// Package testsupport builds fixture darktable libraries for tests: a
// configuration directory with real SQLite catalogs, the referenced image
// files, and darktable-shaped XMP sidecars.
package testsupport
