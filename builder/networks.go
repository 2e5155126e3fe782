// SPDX-License-Identifier: MIT
// Package: lvbayes/builder
//
// networks.go — canonical Bayesian networks.
//
// Contract:
//   • Variables are declared in the listed order; edges are attached in the
//     listed order, which fixes each CPT's parent axis order.
//   • CPT tables are row-major over [child, parents...] with the child slowest.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvbayes/bayes"
)

var binary = []string{"True", "False"}

type varSpec struct {
	name     string
	outcomes []string
}

type cptSpec struct {
	name   string
	values []float64
}

// networkConstructor declares vars, attaches edges, then sets CPTs.
func networkConstructor(vars []varSpec, edges [][2]string, cpts []cptSpec) NetworkConstructor {
	return func(n *bayes.Network, _ builderConfig) error {
		for _, v := range vars {
			if err := n.AddVariable(v.name, v.outcomes...); err != nil {
				return fmt.Errorf("add variable %q: %w", v.name, err)
			}
		}
		for _, e := range edges {
			if err := n.AddEdge(e[0], e[1]); err != nil {
				return fmt.Errorf("add edge %s→%s: %w", e[0], e[1], err)
			}
		}
		for _, c := range cpts {
			if err := n.SetCPT(c.name, c.values); err != nil {
				return fmt.Errorf("set CPT %q: %w", c.name, err)
			}
		}

		return nil
	}
}

// WetGrass builds
//
//	winter → sprinkler, winter → rain, sprinkler → wet_grass,
//	rain → wet_grass, rain → dry_fields
//
// over binary variables with outcomes True, False.
func WetGrass() NetworkConstructor {
	return networkConstructor(
		[]varSpec{
			{"winter", binary}, {"sprinkler", binary}, {"rain", binary},
			{"wet_grass", binary}, {"dry_fields", binary},
		},
		[][2]string{
			{"winter", "sprinkler"}, {"winter", "rain"},
			{"sprinkler", "wet_grass"}, {"rain", "wet_grass"},
			{"rain", "dry_fields"},
		},
		[]cptSpec{
			{"winter", []float64{0.6, 0.4}},
			{"sprinkler", []float64{0.2, 0.75, 0.8, 0.25}},
			{"rain", []float64{0.8, 0.1, 0.2, 0.9}},
			{"wet_grass", []float64{0.99, 0.7, 0.9, 0.1, 0.01, 0.3, 0.1, 0.9}},
			{"dry_fields", []float64{0.01, 0.8, 0.99, 0.2}},
		},
	)
}

// SlipperyRoad builds the wet-grass structure with rain → slippery_road in
// place of dry_fields and its own wet_grass table.
func SlipperyRoad() NetworkConstructor {
	return networkConstructor(
		[]varSpec{
			{"winter", binary}, {"sprinkler", binary}, {"rain", binary},
			{"wet_grass", binary}, {"slippery_road", binary},
		},
		[][2]string{
			{"winter", "sprinkler"}, {"winter", "rain"},
			{"sprinkler", "wet_grass"}, {"rain", "wet_grass"},
			{"rain", "slippery_road"},
		},
		[]cptSpec{
			{"winter", []float64{0.6, 0.4}},
			{"sprinkler", []float64{0.2, 0.75, 0.8, 0.25}},
			{"rain", []float64{0.8, 0.1, 0.2, 0.9}},
			{"wet_grass", []float64{0.95, 0.1, 0.8, 0, 0.05, 0.9, 0.2, 1}},
			{"slippery_road", []float64{0.7, 0, 0.3, 1}},
		},
	)
}

// Alarm builds a non-binary network: alarm (Ringing, Silent, Broken) and
// burglary (Intruder, Safe) are both parents of john (Calling,
// Not_calling), attached in that order.
func Alarm() NetworkConstructor {
	return networkConstructor(
		[]varSpec{
			{"john", []string{"Calling", "Not_calling"}},
			{"burglary", []string{"Intruder", "Safe"}},
			{"alarm", []string{"Ringing", "Silent", "Broken"}},
		},
		[][2]string{{"alarm", "john"}, {"burglary", "john"}},
		[]cptSpec{
			{"burglary", []float64{0.4, 0.6}},
			{"alarm", []float64{0.2, 0.3, 0.5}},
			{"john", []float64{0.8, 0.6, 0.7, 0.1, 0.5, 0.2, 0.2, 0.4, 0.3, 0.9, 0.5, 0.8}},
		},
	)
}

// Chain4 builds C → B, B → A, B → D over binary variables.
func Chain4() NetworkConstructor {
	return networkConstructor(
		[]varSpec{{"A", binary}, {"B", binary}, {"C", binary}, {"D", binary}},
		[][2]string{{"C", "B"}, {"B", "A"}, {"B", "D"}},
		[]cptSpec{
			{"C", []float64{0.4, 0.6}},
			{"B", []float64{0.6, 0.8, 0.4, 0.2}},
			{"A", []float64{0.2, 0.3, 0.8, 0.7}},
			{"D", []float64{0.4, 0.2, 0.6, 0.8}},
		},
	)
}

// Random builds a DAG over n variables named by the ID scheme. Each earlier
// variable becomes a parent of a later one with the configured edge
// probability, up to the parent cap; every CPT column is a fresh random
// distribution. Returns ErrTooFewVertices if n < 1.
//
// Determinism: fixed seed ⇒ identical network.
// Complexity: O(n² + Σ|CPT|).
func Random(n int) NetworkConstructor {
	return func(net *bayes.Network, cfg builderConfig) error {
		if n < 1 {
			return fmt.Errorf("Random: n=%d < 1: %w", n, ErrTooFewVertices)
		}
		outcomes := make([]string, cfg.outcomes)
		for i := range outcomes {
			outcomes[i] = fmt.Sprintf("s%d", i)
		}
		names := make([]string, n)
		for i := range names {
			names[i] = cfg.idFn(i)
			if err := net.AddVariable(names[i], outcomes...); err != nil {
				return fmt.Errorf("Random: %w", err)
			}
		}
		for child := 1; child < n; child++ {
			parents := 0
			for p := 0; p < child && parents < cfg.maxParents; p++ {
				if cfg.rng.Float64() < cfg.edgeProb {
					if err := net.AddEdge(names[p], names[child]); err != nil {
						return fmt.Errorf("Random: %w", err)
					}
					parents++
				}
			}
		}
		for _, name := range names {
			ps, err := net.Parents(name)
			if err != nil {
				return fmt.Errorf("Random: %w", err)
			}
			cols := 1
			for range ps {
				cols *= cfg.outcomes
			}
			if err = net.SetCPT(name, randomColumns(cfg, cols)); err != nil {
				return fmt.Errorf("Random: %w", err)
			}
		}

		return nil
	}
}

// randomColumns returns a [outcomes × cols] row-major table whose every
// column sums to 1.
func randomColumns(cfg builderConfig, cols int) []float64 {
	k := cfg.outcomes
	values := make([]float64, k*cols)
	for c := 0; c < cols; c++ {
		total := 0.0
		for o := 0; o < k; o++ {
			w := cfg.rng.Float64() + 0.01 // keep every entry positive
			values[o*cols+c] = w
			total += w
		}
		for o := 0; o < k; o++ {
			values[o*cols+c] /= total
		}
	}

	return values
}
