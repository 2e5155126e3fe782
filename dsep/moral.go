package dsep

import (
	"github.com/katalvlaran/lvbayes/bfs"
	"github.com/katalvlaran/lvbayes/core"
)

// AncestralGraph returns the subgraph of g induced by nodes and all of their
// ancestors.
func AncestralGraph(g *core.Graph, nodes []core.NodeID) (*core.Graph, error) {
	if err := requireNodes(g, nodes); err != nil {
		return nil, err
	}
	keep := setOf(nodes)
	for _, id := range nodes {
		anc, err := g.Ancestors(id)
		if err != nil {
			return nil, err
		}
		for _, a := range anc {
			keep[a] = struct{}{}
		}
	}
	ids := make([]core.NodeID, 0, len(keep))
	for id := range keep {
		ids = append(ids, id)
	}

	return g.InducedSubgraph(ids), nil
}

// MoralGraph marries every pair of co-parents and drops directions. The
// result is undirected with the same node set. An undirected input is
// returned as a copy.
func MoralGraph(g *core.Graph) (*core.Graph, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if !g.Directed() {
		return g.Clone(), nil
	}
	m := g.ToUndirected()
	for _, id := range g.Nodes() {
		ps, err := g.Parents(id)
		if err != nil {
			return nil, err
		}
		for i := 0; i < len(ps); i++ {
			for j := i + 1; j < len(ps); j++ {
				m.AddEdge(ps[i], ps[j])
			}
		}
	}

	return m, nil
}

// Separate returns a copy of g without the nodes of z and their edges.
func Separate(g *core.Graph, z []core.NodeID) (*core.Graph, error) {
	if err := requireNodes(g, z); err != nil {
		return nil, err
	}
	out := g.Clone()
	for _, id := range z {
		if !out.HasNode(id) {
			continue // listed twice
		}
		if err := out.RemoveNode(id); err != nil {
			return nil, err
		}
	}

	return out, nil
}

// CheckIndependenceGeneral tests X ⊥ Y | Z with the graph criterion:
// ancestral graph of X ∪ Y ∪ Z, moralise, delete Z, then test
// reachability. Undirected inputs skip the first two steps.
func CheckIndependenceGeneral(g *core.Graph, xs, ys, z []core.NodeID) (bool, error) {
	if err := requireNodes(g, xs, ys, z); err != nil {
		return false, err
	}
	h := g
	if g.Directed() {
		all := append(append(append([]core.NodeID(nil), xs...), ys...), z...)
		anc, err := AncestralGraph(g, all)
		if err != nil {
			return false, err
		}
		if h, err = MoralGraph(anc); err != nil {
			return false, err
		}
	}
	sep, err := Separate(h, z)
	if err != nil {
		return false, err
	}
	observed := setOf(z)
	for _, x := range xs {
		for _, y := range ys {
			if x == y {
				return false, nil
			}
			if observed.has(x) || observed.has(y) {
				continue
			}
			connected, err := bfs.Connected(sep, x, y)
			if err != nil {
				return false, err
			}
			if connected {
				return false, nil
			}
		}
	}

	return true, nil
}
