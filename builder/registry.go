// SPDX-License-Identifier: MIT
// Package: lvbayes/builder
//
// registry.go — name lookup for the canonical fixtures, used by the CLI.

package builder

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/lvbayes/bayes"
	"github.com/katalvlaran/lvbayes/core"
)

var graphFixtures = map[string]func() Constructor{
	"example":          ExampleGraph,
	"example-reversed": ReversedExampleGraph,
	"lecture":          LectureGraph,
}

var networkFixtures = map[string]func() NetworkConstructor{
	"wet-grass":     WetGrass,
	"slippery-road": SlipperyRoad,
	"alarm":         Alarm,
	"chain4":        Chain4,
}

// GraphNames lists the fixture names accepted by GraphByName, sorted.
// Every network name is accepted too, yielding the network's structure.
func GraphNames() []string {
	names := make([]string, 0, len(graphFixtures)+len(networkFixtures))
	for name := range graphFixtures {
		names = append(names, name)
	}
	for name := range networkFixtures {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

// NetworkNames lists the fixture names accepted by NetworkByName, sorted.
func NetworkNames() []string {
	names := make([]string, 0, len(networkFixtures))
	for name := range networkFixtures {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

// GraphByName builds the named graph fixture. Network fixtures resolve to
// a copy of their structure.
func GraphByName(name string, opts ...BuilderOption) (*core.Graph, error) {
	if mk, ok := graphFixtures[name]; ok {
		return BuildGraph(opts, mk())
	}
	if _, ok := networkFixtures[name]; ok {
		n, err := NetworkByName(name, opts...)
		if err != nil {
			return nil, err
		}
		return n.Graph(), nil
	}

	return nil, fmt.Errorf("%w: graph %q (known: %v)", ErrUnknownFixture, name, GraphNames())
}

// NetworkByName builds the named network fixture.
func NetworkByName(name string, opts ...BuilderOption) (*bayes.Network, error) {
	mk, ok := networkFixtures[name]
	if !ok {
		return nil, fmt.Errorf("%w: network %q (known: %v)", ErrUnknownFixture, name, NetworkNames())
	}

	return BuildNetwork(opts, mk())
}
