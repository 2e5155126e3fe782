// File: reach.go
// Role: Reachability over directed edges: Ancestors/Descendants,
//       IsAncestor/IsDescendant, IsAcyclic.
// Determinism:
//   - Result sets are returned in node-insertion order.
// Concurrency:
//   - Read lock held for the whole walk.

package core

import "fmt"

// Ancestors returns every node with a directed path into id, in node-insertion
// order. id itself is included only if it lies on a cycle.
//
// Complexity: O(V + E). Terminates on cyclic graphs.
func (g *Graph) Ancestors(id NodeID) ([]NodeID, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if _, ok := g.nodes[id]; !ok {
		return nil, fmt.Errorf("%w: %q", ErrNodeNotFound, id)
	}

	return g.inOrder(g.walkLocked(id, g.parents)), nil
}

// Descendants returns every node reachable from id along directed edges, in
// node-insertion order. id itself is included only if it lies on a cycle.
func (g *Graph) Descendants(id NodeID) ([]NodeID, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if _, ok := g.nodes[id]; !ok {
		return nil, fmt.Errorf("%w: %q", ErrNodeNotFound, id)
	}

	return g.inOrder(g.walkLocked(id, g.children)), nil
}

// IsAncestor reports whether a has a directed path to b.
func (g *Graph) IsAncestor(a, b NodeID) (bool, error) {
	return g.IsDescendant(b, a)
}

// IsDescendant reports whether a is reachable from b along directed edges.
// IsDescendant(n, n) is true exactly when n lies on a cycle through itself.
func (g *Graph) IsDescendant(a, b NodeID) (bool, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if _, ok := g.nodes[a]; !ok {
		return false, fmt.Errorf("%w: %q", ErrNodeNotFound, a)
	}
	if _, ok := g.nodes[b]; !ok {
		return false, fmt.Errorf("%w: %q", ErrNodeNotFound, b)
	}
	_, found := g.walkLocked(b, g.children)[a]

	return found, nil
}

// IsAcyclic reports whether the graph has no directed cycle. Undirected
// graphs with at least one edge are treated as cyclic (every edge is a
// two-cycle u→v→u).
//
// Implementation: Kahn peeling. Each node with in-degree zero is removed and
// its children's in-degrees decremented; the graph is acyclic iff all nodes
// are eventually removed.
func (g *Graph) IsAcyclic() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	indeg := make(map[NodeID]int, len(g.order))
	queue := make([]NodeID, 0, len(g.order))
	for _, id := range g.order {
		indeg[id] = len(g.parents[id])
		if indeg[id] == 0 {
			queue = append(queue, id)
		}
	}
	seen := 0
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		seen++
		for _, c := range g.children[id] {
			indeg[c]--
			if indeg[c] == 0 {
				queue = append(queue, c)
			}
		}
	}

	return seen == len(g.order)
}

// walkLocked collects every node reachable from start (exclusive) through
// next, using an explicit stack. start is added only when reached again.
func (g *Graph) walkLocked(start NodeID, next map[NodeID][]NodeID) map[NodeID]struct{} {
	visited := make(map[NodeID]struct{})
	stack := append([]NodeID(nil), next[start]...)
	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if _, ok := visited[id]; ok {
			continue
		}
		visited[id] = struct{}{}
		stack = append(stack, next[id]...)
	}

	return visited
}

// inOrder lists the members of set in node-insertion order.
func (g *Graph) inOrder(set map[NodeID]struct{}) []NodeID {
	out := make([]NodeID, 0, len(set))
	for _, id := range g.order {
		if _, ok := set[id]; ok {
			out = append(out, id)
		}
	}

	return out
}
