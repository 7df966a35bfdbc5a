package compare

// Kind classifies a finding.
type Kind string

const (
	// KindMismatch is a value disagreement between catalog and sidecar.
	KindMismatch Kind = "mismatch"
	// KindMissingInCatalog is a field the sidecar has but the catalog lacks.
	KindMissingInCatalog Kind = "missing-in-catalog"
	// KindMissingInSidecar is a field the catalog has but the sidecar lacks.
	KindMissingInSidecar Kind = "missing-in-sidecar"
	// KindNoSidecar means no sidecar file exists for the photo.
	KindNoSidecar Kind = "no-sidecar"
	// KindSidecarUnreadable means the sidecar exists but could not be read or
	// parsed. Reported as a warning; the scan continues.
	KindSidecarUnreadable Kind = "sidecar-unreadable"
	// KindMalformedField means one field value could not be interpreted and was
	// skipped. Reported as a warning; the remaining fields are still compared.
	KindMalformedField Kind = "malformed-field"
)

// Finding is one detected inconsistency, produced for reporting only.
type Finding struct {
	PhotoID      int64  `json:"photo_id"`
	Path         string `json:"path"`
	Version      int    `json:"version"`
	SidecarPath  string `json:"sidecar_path,omitempty"`
	Field        string `json:"field,omitempty"`
	Kind         Kind   `json:"kind"`
	CatalogValue string `json:"catalog_value,omitempty"`
	SidecarValue string `json:"sidecar_value,omitempty"`
	Detail       string `json:"detail,omitempty"`
}

// Warning reports whether the finding is diagnostic rather than a metadata
// inconsistency between the two sources.
func (f Finding) Warning() bool {
	return f.Kind == KindSidecarUnreadable || f.Kind == KindMalformedField
}
