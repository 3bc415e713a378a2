package storm

import (
	"fmt"

	"go.uber.org/multierr"
)

// ValidationResult holds the outcome of Validate: the set of declared
// inputs with no matching upstream output, and the set of declared
// outputs with no downstream consumer.
//
// A result is immutable. It copies both sets on construction and its
// accessors hand out fresh slices, so a result is independent of later
// mutation of the caller's sets and safe to share across goroutines.
type ValidationResult struct {
	invalidInputs     map[StreamRef]bool
	unconsumedOutputs map[StreamRef]bool
}

// NewValidationResult builds a result from the two mismatch sets,
// copying both.
func NewValidationResult(invalidInputs, unconsumedOutputs map[StreamRef]bool) ValidationResult {
	return ValidationResult{
		invalidInputs:     copySet(invalidInputs),
		unconsumedOutputs: copySet(unconsumedOutputs),
	}
}

func copySet(set map[StreamRef]bool) map[StreamRef]bool {
	out := make(map[StreamRef]bool, len(set))
	for ref, member := range set {
		if member {
			out[ref] = true
		}
	}
	return out
}

// InvalidInputs returns the declared inputs with no producing
// component and stream, sorted. A non-empty slice makes the topology
// unsubmittable.
func (r ValidationResult) InvalidInputs() []StreamRef {
	return sortedRefs(r.invalidInputs)
}

// UnconsumedOutputs returns the declared outputs no component
// subscribes to, sorted. Informational only; never blocks a
// submission.
func (r ValidationResult) UnconsumedOutputs() []StreamRef {
	return sortedRefs(r.unconsumedOutputs)
}

// OK reports whether the topology wiring is submittable, i.e. there
// are no invalid inputs. Unconsumed outputs do not affect it.
func (r ValidationResult) OK() bool {
	return len(r.invalidInputs) == 0
}

// Err returns a combined error with one entry per invalid input, or
// nil when the result is OK.
func (r ValidationResult) Err() error {
	var err error
	for _, ref := range r.InvalidInputs() {
		err = multierr.Append(err, fmt.Errorf("input %s has no matching declared output", ref))
	}
	return err
}
