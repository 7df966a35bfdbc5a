package testsupport

import (
	"fmt"
	"os"
	"strings"
	"testing"
)

// SidecarFixture describes an XMP sidecar file to write next to an image.
// Nil pointer fields are omitted from the output.
type SidecarFixture struct {
	Rating      *int
	Tags        []string
	ColorLabels []int
	HistoryEnd  *int
	RawRating   string // overrides Rating with a literal attribute value
}

// IntPtr is a convenience for building fixtures.
func IntPtr(v int) *int { return &v }

// WriteSidecar writes a darktable-shaped XMP file at path.
func WriteSidecar(t testing.TB, path string, fx SidecarFixture) {
	t.Helper()

	var attrs strings.Builder
	if fx.RawRating != "" {
		fmt.Fprintf(&attrs, "\n    xmp:Rating=%q", fx.RawRating)
	} else if fx.Rating != nil {
		fmt.Fprintf(&attrs, "\n    xmp:Rating=\"%d\"", *fx.Rating)
	}
	if fx.HistoryEnd != nil {
		fmt.Fprintf(&attrs, "\n    darktable:history_end=\"%d\"", *fx.HistoryEnd)
	}

	var body strings.Builder
	if len(fx.Tags) > 0 {
		body.WriteString("   <dc:subject>\n    <rdf:Bag>\n")
		for _, tag := range fx.Tags {
			fmt.Fprintf(&body, "     <rdf:li>%s</rdf:li>\n", tag)
		}
		body.WriteString("    </rdf:Bag>\n   </dc:subject>\n")
	}
	if len(fx.ColorLabels) > 0 {
		body.WriteString("   <darktable:colorlabels>\n    <rdf:Seq>\n")
		for _, color := range fx.ColorLabels {
			fmt.Fprintf(&body, "     <rdf:li>%d</rdf:li>\n", color)
		}
		body.WriteString("    </rdf:Seq>\n   </darktable:colorlabels>\n")
	}

	content := fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<x:xmpmeta xmlns:x="adobe:ns:meta/" x:xmptk="XMP Core 4.4.0-Exiv2">
 <rdf:RDF xmlns:rdf="http://www.w3.org/1999/02/22-rdf-syntax-ns#">
  <rdf:Description rdf:about=""
    xmlns:xmp="http://ns.adobe.com/xap/1.0/"
    xmlns:dc="http://purl.org/dc/elements/1.1/"
    xmlns:darktable="http://darktable.sf.net/"
    darktable:xmp_version="5"%s>
%s  </rdf:Description>
 </rdf:RDF>
</x:xmpmeta>
`, attrs.String(), body.String())

	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write sidecar %s: %v", path, err)
	}
}
