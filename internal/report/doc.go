// Package report collects scan findings and renders them for the user.
//
// The text renderer writes one finding per line followed by a summary block
// and is byte-for-byte deterministic for identical input. The JSON renderer
// additionally carries a run identifier and timestamp for correlating with
// logs. Both write to a caller-supplied writer and never touch the
// filesystem.
package report
