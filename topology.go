package storm

import (
	"errors"
	"fmt"
	"slices"
)

// Grouping is the strategy a component uses to subscribe to an input
// stream. Wiring validation ignores it (inputs are identified by the
// keys of the mapping alone); it is carried because the external
// topology representation declares one per input.
type Grouping string

const (
	GroupingShuffle        Grouping = "shuffle"
	GroupingFields         Grouping = "fields"
	GroupingAll            Grouping = "all"
	GroupingGlobal         Grouping = "global"
	GroupingDirect         Grouping = "direct"
	GroupingNone           Grouping = "none"
	GroupingLocalOrShuffle Grouping = "local-or-shuffle"
)

// StreamInfo describes one declared output stream of a component.
type StreamInfo struct {
	// Fields is the declared tuple schema of the stream.
	Fields []string

	// Direct marks a stream whose tuples are addressed to specific
	// consumer tasks.
	Direct bool
}

// ComponentSpec is the declared contract of a single component: the
// upstream streams it subscribes to, the streams it emits, and the
// executable attached to it. A nil Payload means the component was
// declared for wiring validation only.
type ComponentSpec struct {
	Inputs  map[StreamRef]Grouping
	Outputs map[string]StreamInfo
	Payload any
}

// Topology is the full description of a stream-processing job: every
// component keyed by identifier, partitioned into the three role
// families of the external representation. The families are disjoint;
// an identifier appears in at most one of them.
//
// A Topology is constructed and owned outside this package. Validation
// never mutates it.
type Topology struct {
	Processors      map[string]*ComponentSpec
	Sources         map[string]*ComponentSpec
	StatefulSources map[string]*ComponentSpec
}

// NewTopology creates an empty topology with all role families
// allocated.
func NewTopology() *Topology {
	return &Topology{
		Processors:      make(map[string]*ComponentSpec),
		Sources:         make(map[string]*ComponentSpec),
		StatefulSources: make(map[string]*ComponentSpec),
	}
}

// ComponentIDs returns the identifiers of every component across all
// role families, sorted so that callers iterating the topology see a
// deterministic order regardless of map iteration.
func (t *Topology) ComponentIDs() []string {
	ids := make([]string, 0, len(t.Processors)+len(t.Sources)+len(t.StatefulSources))
	for id := range t.Processors {
		ids = append(ids, id)
	}
	for id := range t.Sources {
		ids = append(ids, id)
	}
	for id := range t.StatefulSources {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// Component returns the declared contract for the given identifier,
// searching all role families. An unknown identifier fails with
// ErrComponentNotFound; it is never silently skipped.
func (t *Topology) Component(id string) (*ComponentSpec, error) {
	if c, ok := t.Processors[id]; ok {
		return c, nil
	}
	if c, ok := t.Sources[id]; ok {
		return c, nil
	}
	if c, ok := t.StatefulSources[id]; ok {
		return c, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrComponentNotFound, id)
}

// eachComponent visits every component across the three role families.
// Visit order is unspecified; results built from it must not depend on
// order.
func (t *Topology) eachComponent(fn func(id string, c *ComponentSpec)) {
	for id, c := range t.Processors {
		fn(id, c)
	}
	for id, c := range t.Sources {
		fn(id, c)
	}
	for id, c := range t.StatefulSources {
		fn(id, c)
	}
}

var ErrComponentNotFound = errors.New("component not found")
