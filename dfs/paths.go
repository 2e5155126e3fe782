package dfs

import (
	"fmt"

	"github.com/katalvlaran/lvbayes/core"
)

// SimplePaths enumerates every simple path from x to y following Children
// adjacency. Each path starts with x and ends with y; no node repeats.
// x == y yields the single path [x].
//
// Paths are produced in DFS order (children in edge-insertion order).
// Unknown endpoints return core.ErrNodeNotFound.
func SimplePaths(g *core.Graph, x, y core.NodeID, opts ...Option) ([][]core.NodeID, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	for _, id := range []core.NodeID{x, y} {
		if !g.HasNode(id) {
			return nil, fmt.Errorf("%w: %q", core.ErrNodeNotFound, id)
		}
	}
	if x == y {
		return [][]core.NodeID{{x}}, nil
	}
	w := &pathWalker{
		graph:  g,
		opts:   buildOptions(opts),
		target: y,
		onPath: map[core.NodeID]bool{x: true},
		path:   []core.NodeID{x},
	}
	if err := w.extend(x); err != nil {
		return nil, err
	}

	return w.found, nil
}

type pathWalker struct {
	graph  *core.Graph
	opts   Options
	target core.NodeID
	onPath map[core.NodeID]bool
	path   []core.NodeID
	found  [][]core.NodeID
}

func (w *pathWalker) done() bool {
	return w.opts.MaxPaths > 0 && len(w.found) >= w.opts.MaxPaths
}

func (w *pathWalker) extend(id core.NodeID) error {
	if err := w.opts.Ctx.Err(); err != nil {
		return err
	}
	children, err := w.graph.Children(id)
	if err != nil {
		return err
	}
	for _, c := range children {
		if w.done() {
			return nil
		}
		if w.onPath[c] {
			continue
		}
		if c == w.target {
			p := append(append([]core.NodeID(nil), w.path...), c)
			w.found = append(w.found, p)
			continue
		}
		w.onPath[c] = true
		w.path = append(w.path, c)
		if err = w.extend(c); err != nil {
			return err
		}
		w.path = w.path[:len(w.path)-1]
		delete(w.onPath, c)
	}

	return nil
}
