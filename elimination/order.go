package elimination

import (
	"fmt"

	"github.com/katalvlaran/lvbayes/core"
)

// interaction is a mutable undirected adjacency used while planning.
type interaction map[core.NodeID]map[core.NodeID]struct{}

func newInteraction(g *core.Graph) (interaction, error) {
	u := g.ToUndirected()
	adj := make(interaction, u.NodeCount())
	for _, id := range u.Nodes() {
		nbrs, err := u.Children(id)
		if err != nil {
			return nil, err
		}
		set := make(map[core.NodeID]struct{}, len(nbrs))
		for _, n := range nbrs {
			set[n] = struct{}{}
		}
		adj[id] = set
	}

	return adj, nil
}

func (a interaction) connected(x, y core.NodeID) bool {
	_, ok := a[x][y]
	return ok
}

func (a interaction) connect(x, y core.NodeID) {
	a[x][y] = struct{}{}
	a[y][x] = struct{}{}
}

// missing lists the non-adjacent neighbour pairs of v.
func (a interaction) missing(v core.NodeID) [][2]core.NodeID {
	nbrs := make([]core.NodeID, 0, len(a[v]))
	for n := range a[v] {
		nbrs = append(nbrs, n)
	}
	var out [][2]core.NodeID
	for i := 0; i < len(nbrs); i++ {
		for j := i + 1; j < len(nbrs); j++ {
			if !a.connected(nbrs[i], nbrs[j]) {
				out = append(out, [2]core.NodeID{nbrs[i], nbrs[j]})
			}
		}
	}

	return out
}

func (a interaction) remove(v core.NodeID) {
	for n := range a[v] {
		delete(a[n], v)
	}
	delete(a, v)
}

// scorer rates a candidate; lower is better.
type scorer func(a interaction, v core.NodeID) int

func fillScore(a interaction, v core.NodeID) int { return len(a.missing(v)) }

func degreeScore(a interaction, v core.NodeID) int { return len(a[v]) }

// MinFillOrder returns an elimination order chosen greedily by fill count.
func MinFillOrder(g *core.Graph, opts ...Option) ([]core.NodeID, error) {
	return greedy(g, fillScore, opts)
}

// MinDegreeOrder returns an elimination order chosen greedily by degree.
func MinDegreeOrder(g *core.Graph, opts ...Option) ([]core.NodeID, error) {
	return greedy(g, degreeScore, opts)
}

// Order dispatches on h.
func Order(h Heuristic, g *core.Graph, opts ...Option) ([]core.NodeID, error) {
	switch h {
	case MinFill:
		return MinFillOrder(g, opts...)
	case MinDegree:
		return MinDegreeOrder(g, opts...)
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnknownHeuristic, h)
	}
}

// FillEdges returns how many edges eliminating v from g would add.
func FillEdges(g *core.Graph, v core.NodeID) (int, error) {
	if g == nil {
		return 0, ErrGraphNil
	}
	if !g.HasNode(v) {
		return 0, fmt.Errorf("%w: %q", core.ErrNodeNotFound, v)
	}
	a, err := newInteraction(g)
	if err != nil {
		return 0, err
	}

	return fillScore(a, v), nil
}

// greedy runs the shared elimination loop:
//  1. score every remaining candidate;
//  2. take the lowest score, ties to the smallest name;
//  3. connect its neighbours, retire it (and drop it when shrinking).
func greedy(g *core.Graph, score scorer, opts []Option) ([]core.NodeID, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	a, err := newInteraction(g)
	if err != nil {
		return nil, err
	}

	candidates := g.Nodes()
	if o.Candidates != nil {
		candidates = candidates[:0:0]
		for _, id := range o.Candidates {
			if _, ok := a[id]; !ok {
				return nil, fmt.Errorf("%w: %q", core.ErrNodeNotFound, id)
			}
			candidates = append(candidates, id)
		}
	}
	remaining := make(map[core.NodeID]struct{}, len(candidates))
	for _, id := range candidates {
		remaining[id] = struct{}{}
	}

	order := make([]core.NodeID, 0, len(remaining))
	for len(remaining) > 0 {
		if err = o.Ctx.Err(); err != nil {
			return nil, err
		}
		var best core.NodeID
		bestScore := -1
		for id := range remaining {
			s := score(a, id)
			if bestScore < 0 || s < bestScore || (s == bestScore && id < best) {
				best, bestScore = id, s
			}
		}
		for _, p := range a.missing(best) {
			a.connect(p[0], p[1])
		}
		if o.Shrinking {
			a.remove(best)
		}
		delete(remaining, best)
		order = append(order, best)
	}

	return order, nil
}
