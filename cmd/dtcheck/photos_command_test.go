package main

import (
	"strings"
	"testing"

	"dtcheck/internal/testsupport"
)

func TestPhotosCommandListsCatalog(t *testing.T) {
	setupHome(t)
	cat := testsupport.NewCatalog(t,
		testsupport.PhotoFixture{Filename: "a.raf", Rating: 3, Tags: []string{"travel"}, ColorLabels: []int{0}},
		testsupport.PhotoFixture{Filename: "b.raf", Rating: -1},
	)

	out, _, err := runCLI(t, []string{"photos", cat.ConfigDir}, "")
	if err != nil {
		t.Fatalf("photos: %v", err)
	}
	requireContains(t, out, "a.raf")
	requireContains(t, out, "***")
	requireContains(t, out, "travel")
	requireContains(t, out, "red")
	requireContains(t, out, "rejected")
}

func TestPhotosCommandLimit(t *testing.T) {
	setupHome(t)
	cat := testsupport.NewCatalog(t,
		testsupport.PhotoFixture{Filename: "a.raf"},
		testsupport.PhotoFixture{Filename: "b.raf"},
		testsupport.PhotoFixture{Filename: "c.raf"},
	)

	out, _, err := runCLI(t, []string{"photos", "--limit", "1", cat.ConfigDir}, "")
	if err != nil {
		t.Fatalf("photos --limit: %v", err)
	}
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 2 { // header plus one row
		t.Fatalf("expected 2 lines, got %d:\n%s", len(lines), out)
	}
}

func TestTagsCommandUsageCounts(t *testing.T) {
	setupHome(t)
	cat := testsupport.NewCatalog(t,
		testsupport.PhotoFixture{Filename: "a.raf", Tags: []string{"travel", "family"}},
		testsupport.PhotoFixture{Filename: "b.raf", Tags: []string{"travel"}},
	)

	out, _, err := runCLI(t, []string{"tags", cat.ConfigDir}, "")
	if err != nil {
		t.Fatalf("tags: %v", err)
	}
	requireContains(t, out, "travel\t2")
	requireContains(t, out, "family\t1")
}

func TestFilmRollsCommand(t *testing.T) {
	setupHome(t)
	cat := testsupport.NewCatalog(t,
		testsupport.PhotoFixture{Filename: "a.raf"},
		testsupport.PhotoFixture{Filename: "b.raf"},
	)

	out, _, err := runCLI(t, []string{"film-rolls", cat.ConfigDir}, "")
	if err != nil {
		t.Fatalf("film-rolls: %v", err)
	}
	requireContains(t, out, cat.ImagesDir)
	requireContains(t, out, "\t2")
}
