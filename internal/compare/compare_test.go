package compare_test

import (
	"testing"

	"dtcheck/internal/compare"
	"dtcheck/internal/library"
	"dtcheck/internal/sidecar"
)

func mustComparator(t *testing.T, fields ...string) *compare.Comparator {
	t.Helper()
	c, err := compare.New(fields...)
	if err != nil {
		t.Fatalf("compare.New: %v", err)
	}
	return c
}

func found(path string) sidecar.Resolution {
	return sidecar.Resolution{Path: path, Found: true}
}

func intPtr(v int) *int { return &v }

func TestNewRejectsUnknownField(t *testing.T) {
	if _, err := compare.New("exposure"); err == nil {
		t.Fatal("expected error for unknown field")
	}
}

func TestNoSidecarIsSingleFinding(t *testing.T) {
	c := mustComparator(t)
	photo := &library.Photo{ID: 7, Filepath: "/p/a.raf", Rating: 4, Tags: []string{"x"}}

	findings := c.Compare(photo, sidecar.Resolution{Path: "/p/a.raf.xmp"}, nil)
	if len(findings) != 1 {
		t.Fatalf("expected exactly one finding, got %d", len(findings))
	}
	if findings[0].Kind != compare.KindNoSidecar {
		t.Fatalf("expected no-sidecar, got %s", findings[0].Kind)
	}
	for _, f := range findings {
		if f.Kind == compare.KindMismatch {
			t.Fatal("absence must not produce value mismatches")
		}
	}
}

func TestEqualValuesProduceNoFindings(t *testing.T) {
	c := mustComparator(t)
	photo := &library.Photo{
		ID:          1,
		Filepath:    "/p/a.raf",
		Rating:      3,
		Tags:        []string{"Travel", "alps"},
		ColorLabels: []library.ColorLabel{library.LabelRed},
		HistoryEnd:  5,
	}
	sc := &sidecar.Sidecar{
		Rating:      intPtr(3),
		Tags:        []string{"alps", "travel"}, // order and case differ, sets match
		ColorLabels: []int{0},
		HistoryEnd:  intPtr(9), // presence only; the count may differ
	}

	if findings := c.Compare(photo, found("/p/a.raf.xmp"), sc); len(findings) != 0 {
		t.Fatalf("expected no findings, got %+v", findings)
	}
}

func TestRatingMismatchIsExactlyOneFinding(t *testing.T) {
	c := mustComparator(t, compare.FieldRating)
	photo := &library.Photo{ID: 2, Filepath: "/p/b.raf", Rating: 4}
	sc := &sidecar.Sidecar{Rating: intPtr(2)}

	findings := c.Compare(photo, found("/p/b.raf.xmp"), sc)
	if len(findings) != 1 {
		t.Fatalf("expected one finding, got %d", len(findings))
	}
	f := findings[0]
	if f.Kind != compare.KindMismatch || f.Field != compare.FieldRating {
		t.Fatalf("unexpected finding %+v", f)
	}
	if f.CatalogValue != "4" || f.SidecarValue != "2" {
		t.Fatalf("unexpected values %q vs %q", f.CatalogValue, f.SidecarValue)
	}
}

func TestRatingAbsentInSidecar(t *testing.T) {
	c := mustComparator(t, compare.FieldRating)

	// Rated photo, no xmp:Rating: missing-in-sidecar.
	rated := &library.Photo{ID: 3, Filepath: "/p/c.raf", Rating: 5}
	findings := c.Compare(rated, found("/p/c.raf.xmp"), &sidecar.Sidecar{})
	if len(findings) != 1 || findings[0].Kind != compare.KindMissingInSidecar {
		t.Fatalf("expected missing-in-sidecar, got %+v", findings)
	}

	// Unrated photo, no xmp:Rating: clean (absent means unrated).
	unrated := &library.Photo{ID: 4, Filepath: "/p/d.raf", Rating: 0}
	if findings := c.Compare(unrated, found("/p/d.raf.xmp"), &sidecar.Sidecar{}); len(findings) != 0 {
		t.Fatalf("expected no findings, got %+v", findings)
	}
}

func TestRejectedRatingMatchesSidecarMinusOne(t *testing.T) {
	c := mustComparator(t, compare.FieldRating)
	photo := &library.Photo{ID: 5, Filepath: "/p/e.raf", Rating: library.RatingRejected}
	sc := &sidecar.Sidecar{Rating: intPtr(-1)}

	if findings := c.Compare(photo, found("/p/e.raf.xmp"), sc); len(findings) != 0 {
		t.Fatalf("rejected should match -1, got %+v", findings)
	}
}

func TestTagsInternalTagsExcluded(t *testing.T) {
	c := mustComparator(t, compare.FieldTags)
	photo := &library.Photo{
		ID:       6,
		Filepath: "/p/f.raf",
		Tags:     []string{"darktable|exported", "alps"},
	}
	sc := &sidecar.Sidecar{Tags: []string{"Alps"}}

	if findings := c.Compare(photo, found("/p/f.raf.xmp"), sc); len(findings) != 0 {
		t.Fatalf("internal tags must not count, got %+v", findings)
	}
}

func TestTagsOneSidedKinds(t *testing.T) {
	c := mustComparator(t, compare.FieldTags)

	catalogOnly := &library.Photo{ID: 7, Filepath: "/p/g.raf", Tags: []string{"alps"}}
	findings := c.Compare(catalogOnly, found("/p/g.raf.xmp"), &sidecar.Sidecar{})
	if len(findings) != 1 || findings[0].Kind != compare.KindMissingInSidecar {
		t.Fatalf("expected missing-in-sidecar, got %+v", findings)
	}

	sidecarOnly := &library.Photo{ID: 8, Filepath: "/p/h.raf"}
	findings = c.Compare(sidecarOnly, found("/p/h.raf.xmp"), &sidecar.Sidecar{Tags: []string{"alps"}})
	if len(findings) != 1 || findings[0].Kind != compare.KindMissingInCatalog {
		t.Fatalf("expected missing-in-catalog, got %+v", findings)
	}
}

func TestTagsSetMismatch(t *testing.T) {
	c := mustComparator(t, compare.FieldTags)
	photo := &library.Photo{ID: 9, Filepath: "/p/i.raf", Tags: []string{"alps", "zoo"}}
	sc := &sidecar.Sidecar{Tags: []string{"alps", "beach"}}

	findings := c.Compare(photo, found("/p/i.raf.xmp"), sc)
	if len(findings) != 1 || findings[0].Kind != compare.KindMismatch {
		t.Fatalf("expected one mismatch, got %+v", findings)
	}
	if findings[0].CatalogValue != "alps, zoo" || findings[0].SidecarValue != "alps, beach" {
		t.Fatalf("unexpected values %q vs %q", findings[0].CatalogValue, findings[0].SidecarValue)
	}
}

func TestColorLabelMismatchAndMalformedIndex(t *testing.T) {
	c := mustComparator(t, compare.FieldColorLabels)
	photo := &library.Photo{
		ID:          10,
		Filepath:    "/p/j.raf",
		ColorLabels: []library.ColorLabel{library.LabelBlue},
	}
	sc := &sidecar.Sidecar{ColorLabels: []int{4, 9}}

	findings := c.Compare(photo, found("/p/j.raf.xmp"), sc)
	if len(findings) != 2 {
		t.Fatalf("expected malformed warning plus mismatch, got %+v", findings)
	}
	if findings[0].Kind != compare.KindMalformedField || !findings[0].Warning() {
		t.Fatalf("expected malformed-field warning first, got %+v", findings[0])
	}
	if findings[1].Kind != compare.KindMismatch {
		t.Fatalf("expected mismatch, got %+v", findings[1])
	}
	if findings[1].CatalogValue != "blue" || findings[1].SidecarValue != "purple" {
		t.Fatalf("unexpected values %q vs %q", findings[1].CatalogValue, findings[1].SidecarValue)
	}
}

func TestHistoryPresenceOnly(t *testing.T) {
	c := mustComparator(t, compare.FieldHistory)

	edited := &library.Photo{ID: 11, Filepath: "/p/k.raf", HistoryEnd: 3}
	findings := c.Compare(edited, found("/p/k.raf.xmp"), &sidecar.Sidecar{})
	if len(findings) != 1 || findings[0].Kind != compare.KindMissingInSidecar {
		t.Fatalf("expected missing-in-sidecar, got %+v", findings)
	}

	unedited := &library.Photo{ID: 12, Filepath: "/p/l.raf"}
	findings = c.Compare(unedited, found("/p/l.raf.xmp"), &sidecar.Sidecar{HistoryEnd: intPtr(2)})
	if len(findings) != 1 || findings[0].Kind != compare.KindMissingInCatalog {
		t.Fatalf("expected missing-in-catalog, got %+v", findings)
	}

	// Both record history: counts may differ, presence matches.
	both := &library.Photo{ID: 13, Filepath: "/p/m.raf", HistoryEnd: 2}
	if findings = c.Compare(both, found("/p/m.raf.xmp"), &sidecar.Sidecar{HistoryEnd: intPtr(8)}); len(findings) != 0 {
		t.Fatalf("expected no findings, got %+v", findings)
	}
}

func TestParserIssuesSurfaceAsWarnings(t *testing.T) {
	c := mustComparator(t)
	photo := &library.Photo{ID: 14, Filepath: "/p/n.raf"}
	sc := &sidecar.Sidecar{Issues: []sidecar.FieldIssue{{Field: "rating", Detail: "xmp:Rating \"three\" is not an integer"}}}

	findings := c.Compare(photo, found("/p/n.raf.xmp"), sc)
	if len(findings) != 1 {
		t.Fatalf("expected one finding, got %+v", findings)
	}
	if findings[0].Kind != compare.KindMalformedField || !findings[0].Warning() {
		t.Fatalf("expected malformed-field warning, got %+v", findings[0])
	}
}

func TestParserIssuesFollowFieldSelection(t *testing.T) {
	photo := &library.Photo{ID: 16, Filepath: "/p/q.raf"}
	sc := &sidecar.Sidecar{Issues: []sidecar.FieldIssue{{Field: "rating", Detail: "xmp:Rating \"three\" is not an integer"}}}

	// With rating deselected, its malformed value is not reported either.
	c := mustComparator(t, compare.FieldTags)
	if findings := c.Compare(photo, found("/p/q.raf.xmp"), sc); len(findings) != 0 {
		t.Fatalf("expected no findings for a deselected field, got %+v", findings)
	}

	c = mustComparator(t, compare.FieldRating)
	findings := c.Compare(photo, found("/p/q.raf.xmp"), sc)
	if len(findings) != 1 || findings[0].Kind != compare.KindMalformedField {
		t.Fatalf("expected one malformed-field warning, got %+v", findings)
	}
}

func TestFindingsCarryPhotoContext(t *testing.T) {
	c := mustComparator(t, compare.FieldRating)
	photo := &library.Photo{ID: 15, Filepath: "/p/o.raf", Version: 2, Rating: 1}
	sc := &sidecar.Sidecar{Rating: intPtr(5)}

	findings := c.Compare(photo, found("/p/o_02.raf.xmp"), sc)
	if len(findings) != 1 {
		t.Fatalf("expected one finding, got %d", len(findings))
	}
	f := findings[0]
	if f.PhotoID != 15 || f.Path != "/p/o.raf" || f.Version != 2 || f.SidecarPath != "/p/o_02.raf.xmp" {
		t.Fatalf("missing context: %+v", f)
	}
}
