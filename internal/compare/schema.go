package compare

import (
	"fmt"
	"sort"
	"strings"

	"golang.org/x/text/cases"

	"dtcheck/internal/library"
	"dtcheck/internal/sidecar"
)

// Field names of the comparison schema.
const (
	FieldRating      = "rating"
	FieldTags        = "tags"
	FieldColorLabels = "color_labels"
	FieldHistory     = "history"
)

// FieldNames returns the schema fields in comparison order.
func FieldNames() []string {
	return []string{FieldRating, FieldTags, FieldColorLabels, FieldHistory}
}

type fieldComparer struct {
	name    string
	compare func(*library.Photo, *sidecar.Sidecar) []Finding
}

// schema fixes the field set and the normalization rule per field. Order is
// part of the contract: findings come out in this order per photo.
var schema = []fieldComparer{
	{FieldRating, compareRating},
	{FieldTags, compareTags},
	{FieldColorLabels, compareColorLabels},
	{FieldHistory, compareHistory},
}

// compareRating compares star ratings as integers. The catalog value arrives
// already normalized (rejected = -1). An absent xmp:Rating counts as unrated
// per XMP semantics, so it is only reported when the catalog has a rating.
func compareRating(photo *library.Photo, sc *sidecar.Sidecar) []Finding {
	if sc.Rating == nil {
		if photo.Rating == 0 {
			return nil
		}
		return []Finding{{
			Field:        FieldRating,
			Kind:         KindMissingInSidecar,
			CatalogValue: fmt.Sprintf("%d", photo.Rating),
		}}
	}
	if photo.Rating == *sc.Rating {
		return nil
	}
	return []Finding{{
		Field:        FieldRating,
		Kind:         KindMismatch,
		CatalogValue: fmt.Sprintf("%d", photo.Rating),
		SidecarValue: fmt.Sprintf("%d", *sc.Rating),
	}}
}

// compareTags compares tag names as sets: whitespace trimmed, Unicode case
// folded, darktable-internal tags (the "darktable|" hierarchy) excluded.
func compareTags(photo *library.Photo, sc *sidecar.Sidecar) []Finding {
	catalog := normalizeTags(photo.Tags)
	side := normalizeTags(sc.Tags)

	switch {
	case len(catalog) == 0 && len(side) == 0:
		return nil
	case len(side) == 0:
		return []Finding{{
			Field:        FieldTags,
			Kind:         KindMissingInSidecar,
			CatalogValue: joinValues(catalog),
		}}
	case len(catalog) == 0:
		return []Finding{{
			Field:        FieldTags,
			Kind:         KindMissingInCatalog,
			SidecarValue: joinValues(side),
		}}
	case !sameValues(catalog, side):
		return []Finding{{
			Field:        FieldTags,
			Kind:         KindMismatch,
			CatalogValue: joinValues(catalog),
			SidecarValue: joinValues(side),
		}}
	}
	return nil
}

// compareColorLabels compares the five label names as sets. Sidecar indices
// outside the label range are skipped with a malformed-field warning.
func compareColorLabels(photo *library.Photo, sc *sidecar.Sidecar) []Finding {
	var findings []Finding

	catalog := make([]string, 0, len(photo.ColorLabels))
	for _, label := range photo.ColorLabels {
		catalog = append(catalog, label.String())
	}
	sort.Strings(catalog)

	side := make([]string, 0, len(sc.ColorLabels))
	for _, index := range sc.ColorLabels {
		label, ok := library.ColorLabelFromIndex(index)
		if !ok {
			findings = append(findings, Finding{
				Field:  FieldColorLabels,
				Kind:   KindMalformedField,
				Detail: fmt.Sprintf("color label index %d out of range", index),
			})
			continue
		}
		side = append(side, label.String())
	}
	sort.Strings(side)

	switch {
	case len(catalog) == 0 && len(side) == 0:
	case len(side) == 0:
		findings = append(findings, Finding{
			Field:        FieldColorLabels,
			Kind:         KindMissingInSidecar,
			CatalogValue: joinValues(catalog),
		})
	case len(catalog) == 0:
		findings = append(findings, Finding{
			Field:        FieldColorLabels,
			Kind:         KindMissingInCatalog,
			SidecarValue: joinValues(side),
		})
	case !sameValues(catalog, side):
		findings = append(findings, Finding{
			Field:        FieldColorLabels,
			Kind:         KindMismatch,
			CatalogValue: joinValues(catalog),
			SidecarValue: joinValues(side),
		})
	}
	return findings
}

// compareHistory compares presence only: whether each side records an edit
// history for the photo. The history content itself is out of scope.
func compareHistory(photo *library.Photo, sc *sidecar.Sidecar) []Finding {
	catalogHas := photo.HasHistory()
	sideHas := sc.HistoryEnd != nil && *sc.HistoryEnd > 0

	switch {
	case catalogHas && !sideHas:
		return []Finding{{
			Field:        FieldHistory,
			Kind:         KindMissingInSidecar,
			CatalogValue: fmt.Sprintf("history_end=%d", photo.HistoryEnd),
		}}
	case !catalogHas && sideHas:
		return []Finding{{
			Field:        FieldHistory,
			Kind:         KindMissingInCatalog,
			SidecarValue: fmt.Sprintf("history_end=%d", *sc.HistoryEnd),
		}}
	}
	return nil
}

var tagFolder = cases.Fold()

func normalizeTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	for _, tag := range tags {
		tag = strings.TrimSpace(tag)
		if tag == "" {
			continue
		}
		folded := tagFolder.String(tag)
		if strings.HasPrefix(folded, "darktable|") {
			continue
		}
		out = append(out, folded)
	}
	sort.Strings(out)
	return dedupe(out)
}

func dedupe(sorted []string) []string {
	out := sorted[:0]
	var last string
	for i, v := range sorted {
		if i > 0 && v == last {
			continue
		}
		out = append(out, v)
		last = v
	}
	return out
}

func sameValues(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func joinValues(values []string) string {
	return strings.Join(values, ", ")
}
