package storm

import "strings"

// IsSkeleton reports whether the topology was built only for wiring
// validation: true if any component in any role family carries no
// executable payload. An empty topology is not a skeleton, since there
// is no component without a payload to find.
func (t *Topology) IsSkeleton() bool {
	for _, c := range t.Processors {
		if c.Payload == nil {
			return true
		}
	}
	for _, c := range t.Sources {
		if c.Payload == nil {
			return true
		}
	}
	for _, c := range t.StatefulSources {
		if c.Payload == nil {
			return true
		}
	}
	return false
}

// AllInputs returns every stream reference any component in the
// topology subscribes to. Set semantics: a reference consumed by
// several components appears once.
func (t *Topology) AllInputs() map[StreamRef]bool {
	all := make(map[StreamRef]bool)
	t.eachComponent(func(_ string, c *ComponentSpec) {
		for ref := range c.Inputs {
			all[ref] = true
		}
	})
	return all
}

// AllOutputs returns a StreamRef for every output stream declared by
// every component in the topology. The declaring component is always
// the producer side of its own refs; a component cannot declare an
// output under another component's identifier.
func (t *Topology) AllOutputs() map[StreamRef]bool {
	all := make(map[StreamRef]bool)
	t.eachComponent(func(id string, c *ComponentSpec) {
		for name := range c.Outputs {
			all[StreamRef{Component: id, Stream: name}] = true
		}
	})
	return all
}

// Validate computes the wiring mismatch of the topology: declared
// inputs with no producing component and stream (fatal to a
// submission), and declared outputs no component consumes
// (informational). The two result sets are exact set differences of
// AllInputs and AllOutputs; matched references are not reported.
//
// An input referencing a component identifier that does not exist in
// the topology at all is indistinguishable from one referencing a
// missing stream of an existing component: both land in the invalid
// set.
func (t *Topology) Validate() ValidationResult {
	inputs := t.AllInputs()
	outputs := t.AllOutputs()

	invalid := make(map[StreamRef]bool)
	for ref := range inputs {
		if !outputs[ref] {
			invalid[ref] = true
		}
	}

	unconsumed := make(map[StreamRef]bool)
	for ref := range outputs {
		if !inputs[ref] {
			unconsumed[ref] = true
		}
	}

	return NewValidationResult(invalid, unconsumed)
}

// ComponentStreams renders a two-line listing of one component's input
// refs and output refs. Debugging aid only; validation does not use
// it. Pairs are sorted so the listing is stable across runs. An
// unknown identifier fails with ErrComponentNotFound.
func (t *Topology) ComponentStreams(id string) (string, error) {
	c, err := t.Component(id)
	if err != nil {
		return "", err
	}

	inputs := make(map[StreamRef]bool, len(c.Inputs))
	for ref := range c.Inputs {
		inputs[ref] = true
	}
	outputs := make(map[StreamRef]bool, len(c.Outputs))
	for name := range c.Outputs {
		outputs[StreamRef{Component: id, Stream: name}] = true
	}

	var sb strings.Builder
	sb.WriteString("input (component, stream):  ")
	for _, ref := range sortedRefs(inputs) {
		sb.WriteString(ref.String())
		sb.WriteString(" ")
	}
	sb.WriteString("\noutput (component, stream):  ")
	for _, ref := range sortedRefs(outputs) {
		sb.WriteString(ref.String())
		sb.WriteString(" ")
	}
	return sb.String(), nil
}
