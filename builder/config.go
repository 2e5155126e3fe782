// SPDX-License-Identifier: MIT
// Package: lvbayes/builder
//
// config.go — internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • idFn        = DefaultIDFn ("0","1","2",...)
//   • rng         = seeded with defaultSeed unless WithSeed/WithRand is given
//   • edgeProb    = 0.3
//   • maxParents  = 3
//   • outcomes    = 2 per random variable

package builder

import "math/rand"

type builderConfig struct {
	idFn       IDFn
	rng        *rand.Rand
	edgeProb   float64
	maxParents int
	outcomes   int
}

const (
	defaultSeed       int64 = 1
	defaultEdgeProb         = 0.3
	defaultMaxParents       = 3
	defaultOutcomes         = 2
)

// newBuilderConfig starts from the defaults and applies opts in order
// (last wins).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:       DefaultIDFn,
		edgeProb:   defaultEdgeProb,
		maxParents: defaultMaxParents,
		outcomes:   defaultOutcomes,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.rng == nil {
		cfg.rng = rand.New(rand.NewSource(defaultSeed))
	}

	return cfg
}
