// Package compare checks catalog metadata against sidecar metadata field by
// field and emits findings for anything that disagrees.
//
// The comparison schema is explicit: each field has a fixed name and a fixed,
// documented normalization rule, so no value is ever compared through dynamic
// row access. Fields present on only one side produce their own finding kinds
// and are never conflated with value mismatches. The comparator has no side
// effects; it is a pure function of a catalog photo and its sidecar content.
package compare
