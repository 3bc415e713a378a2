package storm

import (
	"slices"
	"strings"
)

// StreamRef identifies one named output stream of one named component.
// It is a plain comparable value type: two refs are equal iff both the
// component identifier and the stream name match, so a StreamRef can be
// used directly as a map key.
type StreamRef struct {
	Component string
	Stream    string
}

// String renders the ref as "(component, stream)", the form used in
// ComponentStreams listings.
func (r StreamRef) String() string {
	return "(" + r.Component + ", " + r.Stream + ")"
}

// compare orders refs by component identifier, then stream name.
func (r StreamRef) compare(other StreamRef) int {
	if c := strings.Compare(r.Component, other.Component); c != 0 {
		return c
	}
	return strings.Compare(r.Stream, other.Stream)
}

// sortedRefs returns the members of a ref set as a sorted slice.
func sortedRefs(set map[StreamRef]bool) []StreamRef {
	refs := make([]StreamRef, 0, len(set))
	for ref := range set {
		refs = append(refs, ref)
	}
	slices.SortFunc(refs, StreamRef.compare)
	return refs
}
