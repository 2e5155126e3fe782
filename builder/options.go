// SPDX-License-Identifier: MIT
// Package: lvbayes/builder
//
// options.go — functional options for the builder package.
// Option constructors validate and panic on meaningless inputs; constructors
// themselves return errors.

package builder

import (
	"fmt"
	"math/rand"
)

// BuilderOption customizes a builderConfig before construction.
type BuilderOption func(*builderConfig)

// WithIDScheme sets the index → ID generator used by Path and Random.
// Panics on nil.
func WithIDScheme(fn IDFn) BuilderOption {
	if fn == nil {
		panic("builder: WithIDScheme(nil)")
	}
	return func(c *builderConfig) { c.idFn = fn }
}

// WithRand provides an explicit RNG for Random. Panics on nil.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) { c.rng = r }
}

// WithSeed seeds a fresh RNG for Random.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithEdgeProbability sets the chance that Random links an earlier variable
// to a later one. Panics outside [0, 1].
func WithEdgeProbability(p float64) BuilderOption {
	if p < 0 || p > 1 {
		panic(fmt.Sprintf("builder: WithEdgeProbability(%v): %v", p, ErrInvalidProbability))
	}
	return func(c *builderConfig) { c.edgeProb = p }
}

// WithMaxParents caps the in-degree Random produces. Panics if k < 0.
func WithMaxParents(k int) BuilderOption {
	if k < 0 {
		panic(fmt.Sprintf("builder: WithMaxParents(%d) must be >= 0", k))
	}
	return func(c *builderConfig) { c.maxParents = k }
}

// WithOutcomes sets the number of outcomes per Random variable. Panics if
// k < 2.
func WithOutcomes(k int) BuilderOption {
	if k < 2 {
		panic(fmt.Sprintf("builder: WithOutcomes(%d) must be >= 2", k))
	}
	return func(c *builderConfig) { c.outcomes = k }
}
