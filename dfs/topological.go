package dfs

import (
	"fmt"

	"github.com/katalvlaran/lvbayes/core"
)

// topoSorter carries state for one TopologicalSort traversal.
type topoSorter struct {
	graph *core.Graph
	opts  Options
	state map[core.NodeID]int
	stack []core.NodeID // current Gray path, for cycle reporting
	cycle []core.NodeID
	order []core.NodeID // post-order
}

// TopologicalSort computes a topological ordering of all nodes of g.
//
// Returns ErrGraphNil for nil g, ErrUndirectedGraph for undirected g, and
// ErrCycleDetected (wrapped with the offending cycle) when g is cyclic.
//
// Steps:
//  1. DFS from every White node in insertion order.
//  2. Record each node when it turns Black (post-order).
//  3. Reverse the post-order.
func TopologicalSort(g *core.Graph, opts ...Option) ([]core.NodeID, error) {
	t, err := runSorter(g, opts)
	if err != nil {
		return nil, err
	}
	if t.cycle != nil {
		return nil, fmt.Errorf("%w: %v", ErrCycleDetected, t.cycle)
	}
	for i, j := 0, len(t.order)-1; i < j; i, j = i+1, j-1 {
		t.order[i], t.order[j] = t.order[j], t.order[i]
	}

	return t.order, nil
}

// FindCycle returns one directed cycle of g as a closed sequence
// (first == last), or nil if g is acyclic.
func FindCycle(g *core.Graph, opts ...Option) ([]core.NodeID, error) {
	t, err := runSorter(g, opts)
	if err != nil {
		return nil, err
	}

	return t.cycle, nil
}

func runSorter(g *core.Graph, opts []Option) (*topoSorter, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if !g.Directed() {
		return nil, ErrUndirectedGraph
	}
	nodes := g.Nodes()
	t := &topoSorter{
		graph: g,
		opts:  buildOptions(opts),
		state: make(map[core.NodeID]int, len(nodes)),
		order: make([]core.NodeID, 0, len(nodes)),
	}
	for _, id := range nodes {
		if t.state[id] != White {
			continue
		}
		if err := t.visit(id); err != nil {
			return nil, err
		}
		if t.cycle != nil {
			break
		}
	}

	return t, nil
}

// visit explores id. A back-edge stores the cycle and unwinds without error.
func (t *topoSorter) visit(id core.NodeID) error {
	select {
	case <-t.opts.Ctx.Done():
		return t.opts.Ctx.Err()
	default:
	}
	t.state[id] = Gray
	t.stack = append(t.stack, id)

	children, err := t.graph.Children(id)
	if err != nil {
		return err
	}
	for _, c := range children {
		switch t.state[c] {
		case Gray:
			t.cycle = closeCycle(t.stack, c)
			return nil
		case White:
			if err = t.visit(c); err != nil {
				return err
			}
			if t.cycle != nil {
				return nil
			}
		}
	}

	t.stack = t.stack[:len(t.stack)-1]
	t.state[id] = Black
	t.order = append(t.order, id)

	return nil
}

// closeCycle extracts the suffix of stack starting at head and appends head.
func closeCycle(stack []core.NodeID, head core.NodeID) []core.NodeID {
	for i, id := range stack {
		if id == head {
			out := append([]core.NodeID(nil), stack[i:]...)
			return append(out, head)
		}
	}

	return nil
}
