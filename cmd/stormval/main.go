// Command stormval validates the wiring of declared topologies before
// they are handed to a submission pipeline. It accepts one or more
// topology YAML files, validates them concurrently, and exits non-zero
// if any declared input has no matching declared output.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/go-logr/logr"
	"github.com/go-logr/zerologr"
	"golang.org/x/sync/errgroup"

	"github.com/brailsmt/storm"
	"github.com/brailsmt/storm/pkg/log"
	"github.com/brailsmt/storm/topofile"
)

func main() {
	strict := flag.Bool("strict", false, "also fail on unconsumed outputs")
	streams := flag.Bool("streams", false, "print the stream listing of every component involved in a finding")
	flag.Parse()

	files := flag.Args()
	if len(files) == 0 {
		fmt.Fprintln(os.Stderr, "usage: stormval [-strict] [-streams] topology.yaml...")
		os.Exit(2)
	}

	zerologr.NameFieldName = "logger"
	zerologr.NameSeparator = "/"
	zl := log.New()
	logger := zerologr.New(zl).WithName("stormval")

	results := make([]fileResult, len(files))
	var eg errgroup.Group
	for i, path := range files {
		i, path := i, path
		eg.Go(func() error {
			name, topology, err := topofile.Load(path)
			if err != nil {
				return err
			}
			results[i] = fileResult{
				path:     path,
				name:     name,
				topology: topology,
				result:   topology.Validate(),
			}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		logger.Error(err, "failed to load topology")
		os.Exit(2)
	}

	failed := false
	for _, res := range results {
		if !report(logger, res, *strict, *streams) {
			failed = true
		}
	}
	if failed {
		os.Exit(1)
	}
}

type fileResult struct {
	path     string
	name     string
	topology *storm.Topology
	result   storm.ValidationResult
}

// report logs the findings for one topology and returns whether it
// passes under the given strictness.
func report(logger logr.Logger, res fileResult, strict, streams bool) bool {
	logger = logger.WithValues("topology", res.name, "file", res.path)

	if res.topology.IsSkeleton() {
		logger.V(1).Info("skeleton topology, checking wiring only")
	}

	invalid := res.result.InvalidInputs()
	unconsumed := res.result.UnconsumedOutputs()

	for _, ref := range invalid {
		logger.Error(nil, "input has no matching declared output",
			"component", ref.Component, "stream", ref.Stream)
	}
	for _, ref := range unconsumed {
		logger.Info("output is never consumed",
			"component", ref.Component, "stream", ref.Stream)
	}

	if streams {
		printStreams(res, invalid, unconsumed)
	}

	if !res.result.OK() {
		return false
	}
	if strict && len(unconsumed) > 0 {
		return false
	}
	logger.Info("topology wiring is valid", "components", len(res.topology.ComponentIDs()))
	return true
}

// printStreams dumps the input/output listing of every component named
// by a finding. A producer that was never declared at all is reported
// as such; that is the usual cause of an invalid input.
func printStreams(res fileResult, findings ...[]storm.StreamRef) {
	seen := map[string]bool{}
	for _, refs := range findings {
		for _, ref := range refs {
			if seen[ref.Component] {
				continue
			}
			seen[ref.Component] = true

			listing, err := res.topology.ComponentStreams(ref.Component)
			if err != nil {
				fmt.Printf("%s: component %q is not declared\n", res.path, ref.Component)
				continue
			}
			fmt.Printf("%s: component %q\n%s\n", res.path, ref.Component, listing)
		}
	}
}
