package compare

import (
	"fmt"
	"strings"

	"dtcheck/internal/library"
	"dtcheck/internal/sidecar"
)

// Comparator applies the comparison schema to photo/sidecar pairs.
type Comparator struct {
	fields []fieldComparer
}

// New builds a comparator over the named fields, or the full schema when no
// names are given. Unknown names are an error.
func New(fields ...string) (*Comparator, error) {
	if len(fields) == 0 {
		return &Comparator{fields: schema}, nil
	}

	enabled := make(map[string]struct{}, len(fields))
	for _, name := range fields {
		name = strings.ToLower(strings.TrimSpace(name))
		found := false
		for _, fc := range schema {
			if fc.name == name {
				found = true
				break
			}
		}
		if !found {
			return nil, fmt.Errorf("unknown comparison field %q (known: %s)", name, strings.Join(FieldNames(), ", "))
		}
		enabled[name] = struct{}{}
	}

	selected := make([]fieldComparer, 0, len(enabled))
	for _, fc := range schema {
		if _, ok := enabled[fc.name]; ok {
			selected = append(selected, fc)
		}
	}
	return &Comparator{fields: selected}, nil
}

// Compare produces the findings for one photo. A nil sidecar with an absent
// resolution yields a single no-sidecar finding; value comparisons never run
// without sidecar content, so absence is never conflated with a mismatch.
func (c *Comparator) Compare(photo *library.Photo, res sidecar.Resolution, sc *sidecar.Sidecar) []Finding {
	if !res.Found || sc == nil {
		return []Finding{stamp(photo, res, Finding{Kind: KindNoSidecar})}
	}

	var findings []Finding
	for _, issue := range sc.Issues {
		// Issues on fields outside the selection are dropped with the field.
		if !c.enabled(issue.Field) {
			continue
		}
		findings = append(findings, stamp(photo, res, Finding{
			Field:  issue.Field,
			Kind:   KindMalformedField,
			Detail: issue.Detail,
		}))
	}
	for _, fc := range c.fields {
		for _, finding := range fc.compare(photo, sc) {
			findings = append(findings, stamp(photo, res, finding))
		}
	}
	return findings
}

func (c *Comparator) enabled(field string) bool {
	for _, fc := range c.fields {
		if fc.name == field {
			return true
		}
	}
	return false
}

func stamp(photo *library.Photo, res sidecar.Resolution, f Finding) Finding {
	f.PhotoID = photo.ID
	f.Path = photo.Filepath
	f.Version = photo.Version
	f.SidecarPath = res.Path
	return f
}
