package bayes

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/lvbayes/dfs"
	"github.com/katalvlaran/lvbayes/factor"
)

// Validate checks that the structure is acyclic and every variable owns a
// CPT whose scope and outcome lists match [variable, current parents...].
//
// Errors: dfs.ErrCycleDetected (with the cycle), ErrMissingCPT, ErrCPTShape.
func (n *Network) Validate() error {
	if _, err := dfs.TopologicalSort(n.graph); err != nil {
		return fmt.Errorf("bayes: invalid structure: %w", err)
	}
	for _, name := range n.Names() {
		v := n.vars[name]
		if v.cpt == nil {
			return fmt.Errorf("%w: %q", ErrMissingCPT, name)
		}
		scope, domains, err := n.cptShape(name)
		if err != nil {
			return err
		}
		if !slices.Equal(v.cpt.Scope(), scope) {
			return fmt.Errorf("%w: %q has CPT over %v, want %v", ErrCPTShape, name, v.cpt.Scope(), scope)
		}
		for i, s := range scope {
			d, _ := v.cpt.Domain(s)
			if !slices.Equal(d, domains[i]) {
				return fmt.Errorf("%w: %q: CPT outcomes for %q are %v, want %v", ErrCPTShape, name, s, d, domains[i])
			}
		}
	}

	return nil
}

// CheckEvidence verifies every observed outcome of a known variable.
// Evidence on variables outside the network is ignored.
func (n *Network) CheckEvidence(e Evidence) error {
	for name, label := range e {
		v, ok := n.vars[name]
		if !ok {
			continue
		}
		if v.OutcomeIndex(label) < 0 {
			return fmt.Errorf("%w: %q for %q", factor.ErrUnknownOutcome, label, name)
		}
	}

	return nil
}

// Restrict drops evidence entries whose variable is not in the network.
func (n *Network) Restrict(e Evidence) Evidence {
	out := make(Evidence, len(e))
	for name, label := range e {
		if _, ok := n.vars[name]; ok {
			out[name] = label
		}
	}

	return out
}

// JointProbability returns P(a) = Π_X P(X=a[X] | parents(X)=a[parents]).
// a must assign every variable.
func (n *Network) JointProbability(a Assignment) (float64, error) {
	if err := n.Validate(); err != nil {
		return 0, err
	}
	p := 1.0
	for _, name := range n.Names() {
		q, err := n.vars[name].cpt.Potential(a)
		if err != nil {
			return 0, fmt.Errorf("bayes: joint probability at %q: %w", name, err)
		}
		p *= q
	}

	return p, nil
}

// Column returns P(name | parents) as weights in outcome order, for the
// parent outcomes read from a. Entries of a for other variables are ignored.
func (n *Network) Column(name string, a Assignment) ([]float64, error) {
	cpt, err := n.CPT(name)
	if err != nil {
		return nil, err
	}
	outcomes := n.vars[name].outcomes
	ctx := make(map[string]string, cpt.Rank())
	for _, s := range cpt.Scope()[1:] {
		label, ok := a[s]
		if !ok {
			return nil, fmt.Errorf("%w: parent %q of %q unassigned", factor.ErrScopeMismatch, s, name)
		}
		ctx[s] = label
	}
	out := make([]float64, len(outcomes))
	for i, o := range outcomes {
		ctx[name] = o
		if out[i], err = cpt.Potential(ctx); err != nil {
			return nil, err
		}
	}

	return out, nil
}

// Distribution returns the prior of a root variable.
func (n *Network) Distribution(name string) (Distribution, error) {
	parents, err := n.Parents(name)
	if err != nil {
		return nil, err
	}
	if len(parents) > 0 {
		return nil, fmt.Errorf("%w: %q has parents %v", ErrNotRoot, name, parents)
	}
	cpt, err := n.CPT(name)
	if err != nil {
		return nil, err
	}
	d, err := cpt.Distribution()
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %w", ErrCPTShape, name, err)
	}

	return Distribution(d), nil
}
