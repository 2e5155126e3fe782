package bayes

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/lvbayes/core"
	"github.com/katalvlaran/lvbayes/factor"
)

// AddVariable declares a variable with its ordered outcome labels.
func (n *Network) AddVariable(name string, outcomes ...string) error {
	if name == "" {
		return core.ErrEmptyNodeID
	}
	if _, ok := n.vars[name]; ok {
		return fmt.Errorf("%w: %q", ErrDuplicateVariable, name)
	}
	if len(outcomes) == 0 {
		return fmt.Errorf("%w: %q has no outcomes", ErrNoOutcomes, name)
	}
	for i, o := range outcomes {
		if o == "" || slices.Index(outcomes[:i], o) >= 0 {
			return fmt.Errorf("%w: %q has empty or repeated outcome %q", ErrNoOutcomes, name, o)
		}
	}
	if err := n.graph.AddNode(core.NodeID(name)); err != nil {
		return err
	}
	n.vars[name] = &Variable{name: name, outcomes: slices.Clone(outcomes)}

	return nil
}

// AddEdge adds parent→child. Both variables must exist. The new parent is
// appended as the last CPT axis of child.
func (n *Network) AddEdge(parent, child string) error {
	for _, name := range []string{parent, child} {
		if _, ok := n.vars[name]; !ok {
			return fmt.Errorf("%w: %q", core.ErrNodeNotFound, name)
		}
	}
	n.graph.AddEdge(core.NodeID(parent), core.NodeID(child))

	return nil
}

// RemoveEdge deletes parent→child if present.
func (n *Network) RemoveEdge(parent, child string) {
	n.graph.RemoveEdge(core.NodeID(parent), core.NodeID(child))
}

// SetCPT attaches a CPT to name given as a flat row-major table over
// [name, parents...] using the parents present now.
func (n *Network) SetCPT(name string, values []float64) error {
	v, ok := n.vars[name]
	if !ok {
		return fmt.Errorf("%w: %q", core.ErrNodeNotFound, name)
	}
	scope, domains, err := n.cptShape(name)
	if err != nil {
		return err
	}
	f, err := factor.New(scope, domains, values)
	if err != nil {
		return fmt.Errorf("%w: %q: %w", ErrCPTShape, name, err)
	}
	v.cpt = f

	return nil
}

// SetCPTFactor attaches a prebuilt factor as the CPT of name. Its scope
// must start with name; consistency with the parents is checked by Validate.
func (n *Network) SetCPTFactor(name string, f *factor.Factor) error {
	v, ok := n.vars[name]
	if !ok {
		return fmt.Errorf("%w: %q", core.ErrNodeNotFound, name)
	}
	if f == nil || f.Rank() == 0 || f.Scope()[0] != name {
		return fmt.Errorf("%w: %q: CPT scope must start with the variable", ErrCPTShape, name)
	}
	v.cpt = f.Clone()

	return nil
}

// cptShape returns the expected CPT scope and domains of name.
func (n *Network) cptShape(name string) ([]string, [][]string, error) {
	parents, err := n.Parents(name)
	if err != nil {
		return nil, nil, err
	}
	scope := append([]string{name}, parents...)
	domains := make([][]string, len(scope))
	for i, s := range scope {
		domains[i] = n.vars[s].outcomes
	}

	return scope, domains, nil
}

// Variable returns the variable called name.
func (n *Network) Variable(name string) (*Variable, bool) {
	v, ok := n.vars[name]
	return v, ok
}

// Has reports whether name is a variable of n.
func (n *Network) Has(name string) bool {
	_, ok := n.vars[name]
	return ok
}

// Names lists variable names in declaration order.
func (n *Network) Names() []string {
	return core.Strings(n.graph.Nodes())
}

// Len returns the number of variables.
func (n *Network) Len() int { return len(n.vars) }

// Outcomes returns the outcome labels of name.
func (n *Network) Outcomes(name string) ([]string, error) {
	v, ok := n.vars[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", core.ErrNodeNotFound, name)
	}

	return v.Outcomes(), nil
}

// Parents lists the parents of name in edge-insertion (CPT axis) order.
func (n *Network) Parents(name string) ([]string, error) {
	ps, err := n.graph.Parents(core.NodeID(name))
	if err != nil {
		return nil, err
	}

	return core.Strings(ps), nil
}

// Children lists the children of name in edge-insertion order.
func (n *Network) Children(name string) ([]string, error) {
	cs, err := n.graph.Children(core.NodeID(name))
	if err != nil {
		return nil, err
	}

	return core.Strings(cs), nil
}

// CPT returns the CPT of name or ErrMissingCPT.
func (n *Network) CPT(name string) (*factor.Factor, error) {
	v, ok := n.vars[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", core.ErrNodeNotFound, name)
	}
	if v.cpt == nil {
		return nil, fmt.Errorf("%w: %q", ErrMissingCPT, name)
	}

	return v.cpt, nil
}

// Graph returns an independent copy of the network structure.
func (n *Network) Graph() *core.Graph {
	return n.graph.Clone()
}
