// File: methods_clone.go
// Role: Copies and views: Clone, ToUndirected, InducedSubgraph.
// Determinism:
//   - Copies preserve node order and per-node adjacency order.
// Concurrency:
//   - Read lock for snapshotting; the source graph is never mutated.

package core

// Clone returns a deep, independent copy: same orientation, same node order,
// same per-node parent/child order.
//
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	c := NewGraph(WithDirected(g.directed))
	c.order = append([]NodeID(nil), g.order...)
	for id := range g.nodes {
		c.nodes[id] = struct{}{}
	}
	for id, ps := range g.parents {
		if len(ps) > 0 {
			c.parents[id] = append([]NodeID(nil), ps...)
		}
	}
	for id, cs := range g.children {
		if len(cs) > 0 {
			c.children[id] = append([]NodeID(nil), cs...)
		}
	}
	c.arcs = g.arcs

	return c
}

// ToUndirected returns a new undirected Graph with the same node order and,
// for every stored arc u→v, the mirrored pair u–v.
//
// Applying it to an undirected graph yields an equal copy.
func (g *Graph) ToUndirected() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	u := NewGraph(WithDirected(false))
	for _, id := range g.order {
		u.addNodeLocked(id)
	}
	for _, from := range g.order {
		for _, to := range g.children[from] {
			u.addEdgeLocked(from, to)
		}
	}

	return u
}

// InducedSubgraph returns a new Graph restricted to the nodes in keep that
// exist in g, with every edge whose endpoints are both kept. Node and edge
// order follow g. Unknown IDs in keep are ignored.
func (g *Graph) InducedSubgraph(keep []NodeID) *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	want := make(map[NodeID]struct{}, len(keep))
	for _, id := range keep {
		want[id] = struct{}{}
	}
	s := NewGraph(WithDirected(g.directed))
	for _, id := range g.order {
		if _, ok := want[id]; ok {
			s.addNodeLocked(id)
		}
	}
	// Walk heads in insertion order so each kept node's parent order survives.
	for _, to := range g.order {
		if _, ok := s.nodes[to]; !ok {
			continue
		}
		for _, from := range g.parents[to] {
			if _, ok := s.nodes[from]; ok {
				s.addArcLocked(from, to)
			}
		}
	}

	return s
}
