package bfs

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvbayes/core"
)

// errTargetReached stops a search early; it never escapes this package.
var errTargetReached = errors.New("bfs: target reached")

// Reachable returns every node reachable from `from` (including itself) in
// BFS visit order.
func Reachable(g *core.Graph, from core.NodeID, opts ...Option) ([]core.NodeID, error) {
	res, err := BFS(g, from, opts...)
	if err != nil {
		return nil, err
	}

	return res.Order, nil
}

// Connected reports whether y is reachable from x. The search stops as soon
// as y is dequeued.
func Connected(g *core.Graph, x, y core.NodeID, opts ...Option) (bool, error) {
	if g == nil {
		return false, ErrGraphNil
	}
	if !g.HasNode(y) {
		return false, fmt.Errorf("%w: %q", core.ErrNodeNotFound, y)
	}
	found := false
	opts = append(opts[:len(opts):len(opts)], WithOnVisit(func(id core.NodeID, _ int) error {
		if id == y {
			found = true
			return errTargetReached
		}
		return nil
	}))
	_, err := BFS(g, x, opts...)
	if found {
		return true, nil
	}

	return false, err
}
