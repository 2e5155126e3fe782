package bayes

import (
	"errors"
	"slices"

	"github.com/katalvlaran/lvbayes/core"
	"github.com/katalvlaran/lvbayes/factor"
)

// Sentinel errors for network construction and validation.
var (
	// ErrCPTShape indicates a CPT whose scope or size disagrees with the
	// variable's current parents.
	ErrCPTShape = errors.New("bayes: CPT shape does not match parents")

	// ErrMissingCPT indicates a variable without a CPT.
	ErrMissingCPT = errors.New("bayes: missing CPT")

	// ErrDuplicateVariable indicates a second AddVariable with the same name.
	ErrDuplicateVariable = errors.New("bayes: duplicate variable")

	// ErrNoOutcomes indicates an empty or repeated outcome list.
	ErrNoOutcomes = errors.New("bayes: invalid outcomes")

	// ErrNotRoot indicates a marginal request for a variable with parents.
	ErrNotRoot = errors.New("bayes: variable has parents")
)

// Evidence fixes some variables to observed outcomes. It may be nil.
type Evidence map[string]string

// Assignment maps every variable of a network to an outcome.
type Assignment map[string]string

// Distribution maps outcome labels to probabilities.
type Distribution map[string]float64

// Clone returns a shallow copy of e (nil stays nil).
func (e Evidence) Clone() Evidence {
	if e == nil {
		return nil
	}
	out := make(Evidence, len(e))
	for k, v := range e {
		out[k] = v
	}

	return out
}

// Variable is a discrete random variable of a Network.
type Variable struct {
	name     string
	outcomes []string
	cpt      *factor.Factor
}

// Name returns the variable name.
func (v *Variable) Name() string { return v.name }

// Outcomes returns a copy of the ordered outcome labels.
func (v *Variable) Outcomes() []string { return slices.Clone(v.outcomes) }

// CPT returns the conditional probability table, or nil if unset.
func (v *Variable) CPT() *factor.Factor { return v.cpt }

// OutcomeIndex returns the position of label, or -1.
func (v *Variable) OutcomeIndex(label string) int { return slices.Index(v.outcomes, label) }

// Network is a discrete Bayesian network.
type Network struct {
	graph *core.Graph
	vars  map[string]*Variable
}

// NewNetwork returns an empty network.
func NewNetwork() *Network {
	return &Network{
		graph: core.NewGraph(),
		vars:  make(map[string]*Variable),
	}
}
