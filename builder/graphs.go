// SPDX-License-Identifier: MIT
// Package: lvbayes/builder
//
// graphs.go — canonical directed graphs.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvbayes/core"
)

// ExampleGraph builds B→A, E→A, E→R.
func ExampleGraph() Constructor {
	return edgesConstructor(
		[]string{"B", "E", "A", "R"},
		[][2]string{{"B", "A"}, {"E", "A"}, {"E", "R"}},
	)
}

// ReversedExampleGraph builds B→A, E→A, R→E: same skeleton and
// immoralities as ExampleGraph.
func ReversedExampleGraph() Constructor {
	return edgesConstructor(
		[]string{"B", "E", "A", "R"},
		[][2]string{{"B", "A"}, {"E", "A"}, {"R", "E"}},
	)
}

// LectureGraph builds the 11-node graph
//
//	A→C→E→{G,H}, B→D→F→{H,I}, H→L, I→M→H
//
// with nodes inserted in the order A B C D E F G H I L M.
func LectureGraph() Constructor {
	return edgesConstructor(
		[]string{"A", "B", "C", "D", "E", "F", "G", "H", "I", "L", "M"},
		[][2]string{
			{"A", "C"}, {"C", "E"}, {"E", "G"}, {"E", "H"},
			{"B", "D"}, {"D", "F"}, {"F", "H"}, {"F", "I"},
			{"H", "L"}, {"I", "M"}, {"M", "H"},
		},
	)
}

// Path builds a directed chain of n nodes named by the ID scheme.
// Returns ErrTooFewVertices if n < 1.
func Path(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < 1 {
			return fmt.Errorf("Path: n=%d < 1: %w", n, ErrTooFewVertices)
		}
		prev := core.NodeID("")
		for i := 0; i < n; i++ {
			id := core.NodeID(cfg.idFn(i))
			if err := g.AddNode(id); err != nil {
				return fmt.Errorf("Path: add %q: %w", id, err)
			}
			if i > 0 {
				g.AddEdge(prev, id)
			}
			prev = id
		}

		return nil
	}
}
