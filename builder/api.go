// SPDX-License-Identifier: MIT
// Package: lvbayes/builder
//
// api.go — public orchestration for graph and network construction.
//
// Contract:
//   • BuildGraph creates a fresh directed *core.Graph, applies each
//     Constructor in order and returns the first error, wrapped.
//   • BuildNetwork does the same for *bayes.Network and validates the
//     result (acyclic, every CPT present and shaped).
//   • A nil constructor is reported as ErrConstructFailed.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvbayes/bayes"
	"github.com/katalvlaran/lvbayes/core"
)

// Constructor mutates g according to cfg.
type Constructor func(g *core.Graph, cfg builderConfig) error

// NetworkConstructor adds variables, edges and CPTs to n according to cfg.
type NetworkConstructor func(n *bayes.Network, cfg builderConfig) error

// BuildGraph returns a new directed graph built by cons.
//
// Complexity: O(sum of constructor costs).
func BuildGraph(bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	cfg := newBuilderConfig(bopts...)
	g := core.NewGraph()
	for i, c := range cons {
		if c == nil {
			return nil, fmt.Errorf("BuildGraph: constructor %d is nil: %w", i, ErrConstructFailed)
		}
		if err := c(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}

// BuildNetwork returns a validated network built by cons.
func BuildNetwork(bopts []BuilderOption, cons ...NetworkConstructor) (*bayes.Network, error) {
	cfg := newBuilderConfig(bopts...)
	n := bayes.NewNetwork()
	for i, c := range cons {
		if c == nil {
			return nil, fmt.Errorf("BuildNetwork: constructor %d is nil: %w", i, ErrConstructFailed)
		}
		if err := c(n, cfg); err != nil {
			return nil, fmt.Errorf("BuildNetwork: %w", err)
		}
	}
	if err := n.Validate(); err != nil {
		return nil, fmt.Errorf("BuildNetwork: %w", err)
	}

	return n, nil
}

// edgesConstructor adds nodes in the given order and then the edges.
func edgesConstructor(nodes []string, edges [][2]string) Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		for _, id := range nodes {
			if err := g.AddNode(core.NodeID(id)); err != nil {
				return fmt.Errorf("%w: %v", ErrConstructFailed, err)
			}
		}
		for _, e := range edges {
			g.AddEdge(core.NodeID(e[0]), core.NodeID(e[1]))
		}

		return nil
	}
}
