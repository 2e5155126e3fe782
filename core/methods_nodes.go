// File: methods_nodes.go
// Role: Node lifecycle & queries: AddNode/AddNodes/RemoveNode/HasNode/Nodes/
//       NodeCount.
// Determinism:
//   - Nodes() returns IDs in insertion order.
// Concurrency:
//   - Mutations under the write lock, queries under the read lock.

package core

import "fmt"

// AddNode inserts id if absent. Re-adding an existing node is a no-op.
//
// Complexity: O(1) amortized.
func (g *Graph) AddNode(id NodeID) error {
	if id == "" {
		return ErrEmptyNodeID
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	g.addNodeLocked(id)

	return nil
}

// AddNodes inserts every id in order, stopping at the first error.
func (g *Graph) AddNodes(ids ...NodeID) error {
	for _, id := range ids {
		if err := g.AddNode(id); err != nil {
			return err
		}
	}

	return nil
}

func (g *Graph) addNodeLocked(id NodeID) {
	if _, ok := g.nodes[id]; ok {
		return
	}
	g.nodes[id] = struct{}{}
	g.order = append(g.order, id)
}

// RemoveNode deletes id together with every incident edge.
// Returns ErrNodeNotFound if id is absent.
//
// Complexity: O(V + deg(id)·Δ), where Δ is the largest neighbour list touched.
func (g *Graph) RemoveNode(id NodeID) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.nodes[id]; !ok {
		return fmt.Errorf("%w: %q", ErrNodeNotFound, id)
	}
	for _, p := range g.parents[id] {
		g.children[p] = removeID(g.children[p], id)
		g.arcs--
	}
	for _, c := range g.children[id] {
		g.parents[c] = removeID(g.parents[c], id)
		g.arcs--
	}
	delete(g.parents, id)
	delete(g.children, id)
	delete(g.nodes, id)
	g.order = removeID(g.order, id)

	return nil
}

// HasNode reports whether id exists.
func (g *Graph) HasNode(id NodeID) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.nodes[id]

	return ok
}

// Nodes returns every node in insertion order.
func (g *Graph) Nodes() []NodeID {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return append([]NodeID(nil), g.order...)
}

// NodeCount returns |V|.
func (g *Graph) NodeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.order)
}

// removeID deletes the first occurrence of id from s, preserving order.
func removeID(s []NodeID, id NodeID) []NodeID {
	for i, x := range s {
		if x == id {
			return append(s[:i:i], s[i+1:]...)
		}
	}

	return s
}
