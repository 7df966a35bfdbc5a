// Package scan runs the consistency pass: catalog reader, sidecar locator,
// comparator, and report collection wired into one sequential loop.
//
// The pass is strictly linear with no retries and no parallelism. Fatal
// errors (bad config directory, unopenable database) abort the run before any
// output; per-photo sidecar problems become warning findings and the scan
// continues. A file lock keeps two concurrent scans from interleaving their
// reports.
package scan
