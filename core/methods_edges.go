// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/RemoveEdge/HasEdge/Adjacent/Edges/
//       EdgeCount, plus Parents/Children/Neighbors.
// Determinism:
//   - Parents/Children keep edge-insertion order.
//   - Edges() walks nodes in insertion order, then children in insertion order.
// Concurrency:
//   - Mutations under the write lock, queries under the read lock.

package core

import "fmt"

// AddEdge inserts the edge from→to.
//
// The call is a silent no-op when either endpoint is missing, when the edge
// already exists, or when from == to. On undirected graphs the mirrored arc
// to→from is stored as well.
//
// Complexity: O(deg(from)) for the duplicate check.
func (g *Graph) AddEdge(from, to NodeID) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.addEdgeLocked(from, to)
}

func (g *Graph) addEdgeLocked(from, to NodeID) {
	if from == to {
		return
	}
	if _, ok := g.nodes[from]; !ok {
		return
	}
	if _, ok := g.nodes[to]; !ok {
		return
	}
	g.addArcLocked(from, to)
	if !g.directed {
		g.addArcLocked(to, from)
	}
}

func (g *Graph) addArcLocked(from, to NodeID) {
	if containsID(g.children[from], to) {
		return
	}
	g.children[from] = append(g.children[from], to)
	g.parents[to] = append(g.parents[to], from)
	g.arcs++
}

// RemoveEdge deletes from→to (and its mirror on undirected graphs).
// Removing an absent edge is a no-op.
func (g *Graph) RemoveEdge(from, to NodeID) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.removeArcLocked(from, to)
	if !g.directed {
		g.removeArcLocked(to, from)
	}
}

func (g *Graph) removeArcLocked(from, to NodeID) {
	if !containsID(g.children[from], to) {
		return
	}
	g.children[from] = removeID(g.children[from], to)
	g.parents[to] = removeID(g.parents[to], from)
	g.arcs--
}

// HasEdge reports whether from→to is stored. On undirected graphs this is
// symmetric.
func (g *Graph) HasEdge(from, to NodeID) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return containsID(g.children[from], to)
}

// Adjacent reports whether an edge exists in either direction.
func (g *Graph) Adjacent(a, b NodeID) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return containsID(g.children[a], b) || containsID(g.children[b], a)
}

// Parents returns the tails of edges entering id, in edge-insertion order.
// For undirected graphs Parents and Children coincide.
func (g *Graph) Parents(id NodeID) ([]NodeID, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if _, ok := g.nodes[id]; !ok {
		return nil, fmt.Errorf("%w: %q", ErrNodeNotFound, id)
	}

	return append([]NodeID(nil), g.parents[id]...), nil
}

// Children returns the heads of edges leaving id, in edge-insertion order.
func (g *Graph) Children(id NodeID) ([]NodeID, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if _, ok := g.nodes[id]; !ok {
		return nil, fmt.Errorf("%w: %q", ErrNodeNotFound, id)
	}

	return append([]NodeID(nil), g.children[id]...), nil
}

// Neighbors returns every node adjacent to id regardless of direction:
// children first (insertion order), then parents that are not also children.
func (g *Graph) Neighbors(id NodeID) ([]NodeID, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if _, ok := g.nodes[id]; !ok {
		return nil, fmt.Errorf("%w: %q", ErrNodeNotFound, id)
	}
	out := append([]NodeID(nil), g.children[id]...)
	for _, p := range g.parents[id] {
		if !containsID(out, p) {
			out = append(out, p)
		}
	}

	return out, nil
}

// Edges returns the stored edges. Directed graphs yield every arc, grouped by
// tail in node-insertion order. Undirected graphs yield each edge once, with
// the earlier-inserted endpoint as From.
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	rank := make(map[NodeID]int, len(g.order))
	for i, id := range g.order {
		rank[id] = i
	}
	out := make([]Edge, 0, g.arcs)
	for _, from := range g.order {
		for _, to := range g.children[from] {
			if !g.directed && rank[to] < rank[from] {
				continue
			}
			out = append(out, Edge{From: from, To: to})
		}
	}

	return out
}

// EdgeCount returns |E|: arcs for directed graphs, unordered pairs for
// undirected graphs.
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if g.directed {
		return g.arcs
	}

	return g.arcs / 2
}

func containsID(s []NodeID, id NodeID) bool {
	for _, x := range s {
		if x == id {
			return true
		}
	}

	return false
}
