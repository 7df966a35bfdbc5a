package report

import (
	"time"

	"github.com/google/uuid"

	"dtcheck/internal/compare"
)

// Summary aggregates scan counts.
type Summary struct {
	Photos           int `json:"photos"`
	Skipped          int `json:"skipped"`
	Clean            int `json:"clean"`
	NoSidecar        int `json:"no_sidecar"`
	Mismatches       int `json:"mismatches"`
	MissingInCatalog int `json:"missing_in_catalog"`
	MissingInSidecar int `json:"missing_in_sidecar"`
	Warnings         int `json:"warnings"`
}

// Report is the complete outcome of one scan.
type Report struct {
	RunID       string            `json:"run_id"`
	ConfigDir   string            `json:"config_dir"`
	GeneratedAt time.Time         `json:"generated_at"`
	Findings    []compare.Finding `json:"findings"`
	Summary     Summary           `json:"summary"`
}

// New creates an empty report with a fresh run identifier.
func New(configDir string) *Report {
	return &Report{
		RunID:       uuid.NewString(),
		ConfigDir:   configDir,
		GeneratedAt: time.Now().UTC(),
	}
}

// RecordPhoto adds one scanned photo and its findings. A photo with no
// findings counts as clean.
func (r *Report) RecordPhoto(findings []compare.Finding) {
	r.Summary.Photos++
	if len(findings) == 0 {
		r.Summary.Clean++
		return
	}
	r.Findings = append(r.Findings, findings...)
	for _, f := range findings {
		switch f.Kind {
		case compare.KindNoSidecar:
			r.Summary.NoSidecar++
		case compare.KindMismatch:
			r.Summary.Mismatches++
		case compare.KindMissingInCatalog:
			r.Summary.MissingInCatalog++
		case compare.KindMissingInSidecar:
			r.Summary.MissingInSidecar++
		case compare.KindSidecarUnreadable, compare.KindMalformedField:
			r.Summary.Warnings++
		}
	}
}

// RecordSkipped counts a photo excluded by the rating floor.
func (r *Report) RecordSkipped() {
	r.Summary.Skipped++
}
