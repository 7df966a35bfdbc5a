package report

import (
	"fmt"
	"io"

	"dtcheck/internal/compare"
)

// WriteText renders the report as human-readable lines: one finding per line,
// then the summary. Output depends only on the findings, so two scans over
// identical input render identically.
func WriteText(w io.Writer, r *Report) error {
	for _, f := range r.Findings {
		if _, err := fmt.Fprintln(w, FormatFinding(f)); err != nil {
			return err
		}
	}
	return writeSummary(w, r.Summary)
}

// FormatFinding renders one finding with enough context to resolve it by hand.
func FormatFinding(f compare.Finding) string {
	prefix := fmt.Sprintf("photo %d %s (v%d)", f.PhotoID, f.Path, f.Version)
	switch f.Kind {
	case compare.KindNoSidecar:
		return fmt.Sprintf("%s: no sidecar file (expected %s)", prefix, f.SidecarPath)
	case compare.KindSidecarUnreadable:
		return fmt.Sprintf("%s: sidecar unreadable: %s", prefix, f.Detail)
	case compare.KindMalformedField:
		return fmt.Sprintf("%s: %s malformed: %s", prefix, f.Field, f.Detail)
	case compare.KindMismatch:
		return fmt.Sprintf("%s: %s differs: %s (catalog) vs %s (sidecar)", prefix, f.Field, f.CatalogValue, f.SidecarValue)
	case compare.KindMissingInSidecar:
		return fmt.Sprintf("%s: %s missing in sidecar (catalog: %s)", prefix, f.Field, f.CatalogValue)
	case compare.KindMissingInCatalog:
		return fmt.Sprintf("%s: %s missing in catalog (sidecar: %s)", prefix, f.Field, f.SidecarValue)
	default:
		return fmt.Sprintf("%s: %s %s", prefix, f.Field, f.Kind)
	}
}

func writeSummary(w io.Writer, s Summary) error {
	lines := []string{
		fmt.Sprintf("%d photos scanned", s.Photos),
	}
	if s.Skipped > 0 {
		lines = append(lines, fmt.Sprintf("%d photos skipped by rating filter", s.Skipped))
	}
	lines = append(lines,
		fmt.Sprintf("%d photos clean", s.Clean),
		fmt.Sprintf("%d photos without a sidecar file", s.NoSidecar),
		fmt.Sprintf("%d value mismatches", s.Mismatches),
		fmt.Sprintf("%d fields missing in catalog", s.MissingInCatalog),
		fmt.Sprintf("%d fields missing in sidecar", s.MissingInSidecar),
		fmt.Sprintf("%d warnings", s.Warnings),
	)
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
