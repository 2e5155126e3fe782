package causal

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/katalvlaran/lvbayes/core"
)

var (
	// ErrGraphNil is returned when a nil graph is passed in.
	ErrGraphNil = errors.New("causal: graph is nil")

	// ErrUndirectedGraph is returned when an operation needs edge directions.
	ErrUndirectedGraph = errors.New("causal: directed graph required")
)

// Pair is an unordered pair of nodes stored with P < Q.
type Pair struct {
	P, Q core.NodeID
}

// NewPair canonicalises {a, b}.
func NewPair(a, b core.NodeID) Pair {
	if b < a {
		a, b = b, a
	}

	return Pair{P: a, Q: b}
}

// String renders the pair as "P-Q".
func (p Pair) String() string { return fmt.Sprintf("%s-%s", p.P, p.Q) }

func checkDirected(g *core.Graph) error {
	if g == nil {
		return ErrGraphNil
	}
	if !g.Directed() {
		return ErrUndirectedGraph
	}

	return nil
}

// degrees returns |parents(id)| and |children(id)|.
func degrees(g *core.Graph, id core.NodeID) (int, int, error) {
	ps, err := g.Parents(id)
	if err != nil {
		return 0, 0, err
	}
	cs, err := g.Children(id)
	if err != nil {
		return 0, 0, err
	}

	return len(ps), len(cs), nil
}

// classify keeps the nodes whose in/out degrees satisfy keep.
func classify(g *core.Graph, keep func(in, out int) bool) ([]core.NodeID, error) {
	if err := checkDirected(g); err != nil {
		return nil, err
	}
	var out []core.NodeID
	for _, id := range g.Nodes() {
		in, o, err := degrees(g, id)
		if err != nil {
			return nil, err
		}
		if keep(in, o) {
			out = append(out, id)
		}
	}

	return out, nil
}

func isFork(in, out int) bool     { return out > 1 }
func isChain(in, out int) bool    { return in >= 1 && out >= 1 }
func isCollider(in, out int) bool { return in > 1 }

// Forks lists nodes with more than one child.
func Forks(g *core.Graph) ([]core.NodeID, error) { return classify(g, isFork) }

// Chains lists nodes with at least one parent and at least one child.
func Chains(g *core.Graph) ([]core.NodeID, error) { return classify(g, isChain) }

// Colliders lists nodes with more than one parent.
func Colliders(g *core.Graph) ([]core.NodeID, error) { return classify(g, isCollider) }

func test(g *core.Graph, id core.NodeID, pred func(in, out int) bool) (bool, error) {
	if err := checkDirected(g); err != nil {
		return false, err
	}
	in, out, err := degrees(g, id)
	if err != nil {
		return false, err
	}

	return pred(in, out), nil
}

// IsFork reports whether id has more than one child.
func IsFork(g *core.Graph, id core.NodeID) (bool, error) { return test(g, id, isFork) }

// IsChain reports whether id has a parent and a child.
func IsChain(g *core.Graph, id core.NodeID) (bool, error) { return test(g, id, isChain) }

// IsCollider reports whether id has more than one parent.
func IsCollider(g *core.Graph, id core.NodeID) (bool, error) { return test(g, id, isCollider) }

// Immoralities lists every pair of non-adjacent nodes sharing a child.
// Each pair is reported once even when the parents share several children.
//
// Complexity: O(Σ_v |parents(v)|²).
func Immoralities(g *core.Graph) ([]Pair, error) {
	if err := checkDirected(g); err != nil {
		return nil, err
	}
	seen := make(map[Pair]struct{})
	var out []Pair
	for _, id := range g.Nodes() {
		ps, err := g.Parents(id)
		if err != nil {
			return nil, err
		}
		for i := 0; i < len(ps); i++ {
			for j := i + 1; j < len(ps); j++ {
				if g.Adjacent(ps[i], ps[j]) {
					continue
				}
				p := NewPair(ps[i], ps[j])
				if _, dup := seen[p]; dup {
					continue
				}
				seen[p] = struct{}{}
				out = append(out, p)
			}
		}
	}
	slices.SortFunc(out, comparePairs)

	return out, nil
}

func comparePairs(a, b Pair) int {
	if c := strings.Compare(string(a.P), string(b.P)); c != 0 {
		return c
	}

	return strings.Compare(string(a.Q), string(b.Q))
}

// SameSkeleton reports whether g1 and g2 have the same node set and, after
// dropping directions, the same adjacency set for every node.
func SameSkeleton(g1, g2 *core.Graph) (bool, error) {
	if g1 == nil || g2 == nil {
		return false, ErrGraphNil
	}
	u1, u2 := g1.ToUndirected(), g2.ToUndirected()
	if u1.NodeCount() != u2.NodeCount() || u1.EdgeCount() != u2.EdgeCount() {
		return false, nil
	}
	for _, id := range u1.Nodes() {
		if !u2.HasNode(id) {
			return false, nil
		}
		n1, err := u1.Children(id)
		if err != nil {
			return false, err
		}
		for _, nb := range n1 {
			if !u2.HasEdge(id, nb) {
				return false, nil
			}
		}
	}

	return true, nil
}

// MarkovEquivalent reports whether g1 and g2 share a skeleton and the same
// immoralities.
func MarkovEquivalent(g1, g2 *core.Graph) (bool, error) {
	same, err := SameSkeleton(g1, g2)
	if err != nil || !same {
		return false, err
	}
	i1, err := Immoralities(g1)
	if err != nil {
		return false, err
	}
	i2, err := Immoralities(g2)
	if err != nil {
		return false, err
	}

	return slices.Equal(i1, i2), nil
}
