// Package topofile loads topology declarations from YAML files.
//
// A topology file declares the wiring contract of a job - components,
// their input subscriptions and their output streams - without any
// executable payloads. Every loaded topology is therefore a skeleton
// topology in the sense of storm.IsSkeleton, suitable for structural
// validation before the real components are attached.
//
// File layout:
//
//	name: word-count
//	sources:
//	  sentences:
//	    outputs:
//	      default: {fields: [sentence]}
//	processors:
//	  splitter:
//	    inputs:
//	      - component: sentences
//	        grouping: shuffle
//	    outputs:
//	      words: {fields: [word]}
//	  counter:
//	    inputs:
//	      - component: splitter
//	        stream: words
//	        grouping: fields
//
// An input's stream defaults to "default" and its grouping to shuffle
// when omitted, matching the conventions of the external topology
// representation.
package topofile

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/brailsmt/storm"
)

// DefaultStream is the stream name assumed when an input subscription
// does not name one.
const DefaultStream = "default"

var ErrBadTopologyFile = errors.New("bad topology file")

// File is the on-disk schema of a topology declaration.
type File struct {
	Name            string               `yaml:"name"`
	Processors      map[string]Component `yaml:"processors"`
	Sources         map[string]Component `yaml:"sources"`
	StatefulSources map[string]Component `yaml:"stateful_sources"`
}

// Component declares one component's inputs and outputs.
type Component struct {
	Inputs  []Input           `yaml:"inputs"`
	Outputs map[string]Stream `yaml:"outputs"`
}

// Input declares one input subscription.
type Input struct {
	Component string `yaml:"component"`
	Stream    string `yaml:"stream"`
	Grouping  string `yaml:"grouping"`
}

// Stream declares the schema of one output stream.
type Stream struct {
	Fields []string `yaml:"fields"`
	Direct bool     `yaml:"direct"`
}

var groupings = map[string]storm.Grouping{
	"shuffle":          storm.GroupingShuffle,
	"fields":           storm.GroupingFields,
	"all":              storm.GroupingAll,
	"global":           storm.GroupingGlobal,
	"direct":           storm.GroupingDirect,
	"none":             storm.GroupingNone,
	"local-or-shuffle": storm.GroupingLocalOrShuffle,
}

// Load reads and parses a topology declaration from path. It returns
// the declared topology name and the topology itself.
func Load(path string) (string, *storm.Topology, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", nil, fmt.Errorf("read topology file: %w", err)
	}
	name, topology, err := Parse(data)
	if err != nil {
		return "", nil, fmt.Errorf("%s: %w", path, err)
	}
	return name, topology, nil
}

// Parse decodes a topology declaration. Unknown document fields,
// unknown groupings, duplicate identifiers across role families and
// duplicate input subscriptions are all errors; a malformed file never
// yields a partial topology.
func Parse(data []byte) (string, *storm.Topology, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var f File
	if err := dec.Decode(&f); err != nil {
		return "", nil, fmt.Errorf("%w: %v", ErrBadTopologyFile, err)
	}

	topology := storm.NewTopology()
	for id, c := range f.Processors {
		spec, err := buildComponent(topology, id, c)
		if err != nil {
			return "", nil, err
		}
		topology.Processors[id] = spec
	}
	for id, c := range f.Sources {
		spec, err := buildComponent(topology, id, c)
		if err != nil {
			return "", nil, err
		}
		topology.Sources[id] = spec
	}
	for id, c := range f.StatefulSources {
		spec, err := buildComponent(topology, id, c)
		if err != nil {
			return "", nil, err
		}
		topology.StatefulSources[id] = spec
	}

	return f.Name, topology, nil
}

func buildComponent(topology *storm.Topology, id string, c Component) (*storm.ComponentSpec, error) {
	if id == "" {
		return nil, fmt.Errorf("%w: component with empty identifier", ErrBadTopologyFile)
	}
	// The role families must stay disjoint.
	if _, err := topology.Component(id); err == nil {
		return nil, fmt.Errorf("%w: component %q declared in more than one role family", ErrBadTopologyFile, id)
	}

	spec := &storm.ComponentSpec{
		Inputs:  make(map[storm.StreamRef]storm.Grouping, len(c.Inputs)),
		Outputs: make(map[string]storm.StreamInfo, len(c.Outputs)),
	}

	for _, in := range c.Inputs {
		if in.Component == "" {
			return nil, fmt.Errorf("%w: component %q has an input with no component identifier", ErrBadTopologyFile, id)
		}

		grouping := storm.GroupingShuffle
		if in.Grouping != "" {
			var ok bool
			grouping, ok = groupings[in.Grouping]
			if !ok {
				return nil, fmt.Errorf("%w: component %q: unknown grouping %q", ErrBadTopologyFile, id, in.Grouping)
			}
		}

		stream := in.Stream
		if stream == "" {
			stream = DefaultStream
		}

		ref := storm.StreamRef{Component: in.Component, Stream: stream}
		if _, dup := spec.Inputs[ref]; dup {
			return nil, fmt.Errorf("%w: component %q subscribes to %s twice", ErrBadTopologyFile, id, ref)
		}
		spec.Inputs[ref] = grouping
	}

	for name, s := range c.Outputs {
		if name == "" {
			return nil, fmt.Errorf("%w: component %q declares an output with an empty stream name", ErrBadTopologyFile, id)
		}
		spec.Outputs[name] = storm.StreamInfo{Fields: s.Fields, Direct: s.Direct}
	}

	return spec, nil
}
