// Package storm validates the wiring of stream-processing topologies.
//
// A topology is a directed graph of components connected by named
// streams. Before submission to a cluster coordinator, every input a
// component declares (a reference to an upstream component's named
// output stream) must resolve to an output some component actually
// declares. Validate computes the mismatch in both directions:
//
//   - invalid inputs: declared inputs with no producing component and
//     stream. The coordinator rejects such a topology, so callers
//     should treat a non-empty set as fatal.
//   - unconsumed outputs: declared outputs no component subscribes to.
//     Harmless, but useful feedback while a topology is being put
//     together.
//
// Typical use:
//
//	result := topology.Validate()
//	if !result.OK() {
//	    return result.Err()
//	}
//	for _, ref := range result.UnconsumedOutputs() {
//	    log.Printf("output %s is never consumed", ref)
//	}
//
// Topologies may be declared without executable payloads purely to
// exercise this check before the real components exist; IsSkeleton
// detects them.
//
// # Thread Safety
//
// Every operation is a pure function of its topology argument: no
// mutation, no I/O, no shared state. A single Topology may be
// validated concurrently from multiple goroutines, and a
// ValidationResult may be handed to other goroutines freely after
// construction.
package storm
