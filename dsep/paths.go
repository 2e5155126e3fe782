package dsep

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/lvbayes/core"
	"github.com/katalvlaran/lvbayes/dfs"
)

// Paths enumerates every simple path between x and y in the undirected
// projection of g.
func Paths(g *core.Graph, x, y core.NodeID, opts ...Option) ([][]core.NodeID, error) {
	if err := requireNodes(g, []core.NodeID{x, y}); err != nil {
		return nil, err
	}
	o := buildOptions(opts)

	return dfs.SimplePaths(g.ToUndirected(), x, y, dfs.WithContext(o.Ctx))
}

// IsColliderOnPath reports whether node is a collider on path. Only interior
// positions qualify; endpoints and nodes off the path yield false.
func IsColliderOnPath(g *core.Graph, node core.NodeID, path []core.NodeID, opts ...Option) (bool, error) {
	if err := requireNodes(g, path, []core.NodeID{node}); err != nil {
		return false, err
	}
	if !g.Directed() {
		return false, ErrUndirectedGraph
	}
	i := slices.Index(path, node)
	if i <= 0 || i >= len(path)-1 {
		return false, nil
	}

	return collider(g, path[i-1], node, path[i+1], buildOptions(opts).Rule)
}

func collider(g *core.Graph, prev, node, next core.NodeID, rule ColliderRule) (bool, error) {
	if rule == AncestorRule {
		a, err := g.IsAncestor(prev, node)
		if err != nil || !a {
			return false, err
		}
		return g.IsAncestor(next, node)
	}

	return g.HasEdge(prev, node) && g.HasEdge(next, node), nil
}

// IsPathOpen reports whether path is unblocked given the observed set z.
//
// For every interior node w:
//   - collider: blocks unless w or a descendant of w is observed;
//   - otherwise: blocks if w is observed.
func IsPathOpen(g *core.Graph, path, z []core.NodeID, opts ...Option) (bool, error) {
	if err := requireNodes(g, path, z); err != nil {
		return false, err
	}
	if !g.Directed() {
		return false, ErrUndirectedGraph
	}
	o := buildOptions(opts)
	observed := setOf(z)
	for i := 1; i < len(path)-1; i++ {
		w := path[i]
		isCol, err := collider(g, path[i-1], w, path[i+1], o.Rule)
		if err != nil {
			return false, err
		}
		if !isCol {
			if observed.has(w) {
				return false, nil
			}
			continue
		}
		active, err := colliderActive(g, w, observed)
		if err != nil {
			return false, err
		}
		if !active {
			return false, nil
		}
	}

	return true, nil
}

// colliderActive reports whether w or one of its descendants is observed.
func colliderActive(g *core.Graph, w core.NodeID, observed nodeSet) (bool, error) {
	if observed.has(w) {
		return true, nil
	}
	desc, err := g.Descendants(w)
	if err != nil {
		return false, err
	}
	for _, d := range desc {
		if observed.has(d) {
			return true, nil
		}
	}

	return false, nil
}

// UnblockedPathExists reports whether some path between x and y is open
// given z.
func UnblockedPathExists(g *core.Graph, x, y core.NodeID, z []core.NodeID, opts ...Option) (bool, error) {
	paths, err := Paths(g, x, y, opts...)
	if err != nil {
		return false, err
	}
	for _, p := range paths {
		open, err := IsPathOpen(g, p, z, opts...)
		if err != nil {
			return false, fmt.Errorf("dsep: path %v: %w", p, err)
		}
		if open {
			return true, nil
		}
	}

	return false, nil
}

// CheckIndependence tests X ⊥ Y | Z with the path criterion.
func CheckIndependence(g *core.Graph, xs, ys, z []core.NodeID, opts ...Option) (bool, error) {
	if err := requireNodes(g, xs, ys, z); err != nil {
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
			open, err := UnblockedPathExists(g, x, y, z, opts...)
			if err != nil {
				return false, err
			}
			if open {
				return false, nil
			}
		}
	}

	return true, nil
}
