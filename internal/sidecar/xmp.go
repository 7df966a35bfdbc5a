package sidecar

import (
	"encoding/xml"
	"fmt"
	"io"
	"strconv"
	"strings"
)

const (
	nsXMP       = "http://ns.adobe.com/xap/1.0/"
	nsDarktable = "http://darktable.sf.net/"
	nsDC        = "http://purl.org/dc/elements/1.1/"
)

// Sidecar is the metadata a darktable XMP file carries for one image version.
// Pointer fields are nil when the attribute is absent from the file.
type Sidecar struct {
	Rating      *int
	Tags        []string
	ColorLabels []int
	HistoryEnd  *int
	Issues      []FieldIssue
}

// FieldIssue records a field whose value was present but malformed. The field
// is skipped for comparison; the issue surfaces as a warning finding.
type FieldIssue struct {
	Field  string
	Detail string
}

type xmpDocument struct {
	XMLName xml.Name `xml:"xmpmeta"`
	RDF     struct {
		Description struct {
			Rating      string  `xml:"http://ns.adobe.com/xap/1.0/ Rating,attr"`
			HistoryEnd  string  `xml:"http://darktable.sf.net/ history_end,attr"`
			Subject     rdfList `xml:"http://purl.org/dc/elements/1.1/ subject"`
			ColorLabels rdfList `xml:"http://darktable.sf.net/ colorlabels"`
		} `xml:"Description"`
	} `xml:"RDF"`
}

// rdfList accepts items from either an rdf:Bag or an rdf:Seq container.
type rdfList struct {
	Bag []string `xml:"Bag>li"`
	Seq []string `xml:"Seq>li"`
}

func (l rdfList) values() []string {
	if len(l.Bag) > 0 {
		return l.Bag
	}
	return l.Seq
}

// Parse decodes a darktable XMP document from r.
func Parse(r io.Reader) (*Sidecar, error) {
	var doc xmpDocument
	decoder := xml.NewDecoder(r)
	if err := decoder.Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode xmp: %w", err)
	}

	desc := doc.RDF.Description
	sc := &Sidecar{}

	if value := strings.TrimSpace(desc.Rating); value != "" {
		if rating, err := strconv.Atoi(value); err == nil {
			sc.Rating = &rating
		} else {
			sc.Issues = append(sc.Issues, FieldIssue{Field: "rating", Detail: fmt.Sprintf("xmp:Rating=%q is not an integer", value)})
		}
	}

	if value := strings.TrimSpace(desc.HistoryEnd); value != "" {
		if end, err := strconv.Atoi(value); err == nil {
			sc.HistoryEnd = &end
		} else {
			sc.Issues = append(sc.Issues, FieldIssue{Field: "history", Detail: fmt.Sprintf("darktable:history_end=%q is not an integer", value)})
		}
	}

	for _, tag := range desc.Subject.values() {
		tag = strings.TrimSpace(tag)
		if tag != "" {
			sc.Tags = append(sc.Tags, tag)
		}
	}

	for _, raw := range desc.ColorLabels.values() {
		raw = strings.TrimSpace(raw)
		if raw == "" {
			continue
		}
		index, err := strconv.Atoi(raw)
		if err != nil {
			sc.Issues = append(sc.Issues, FieldIssue{Field: "color_labels", Detail: fmt.Sprintf("colorlabels entry %q is not an integer", raw)})
			continue
		}
		sc.ColorLabels = append(sc.ColorLabels, index)
	}

	return sc, nil
}
