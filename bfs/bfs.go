package bfs

import (
	"fmt"

	"github.com/katalvlaran/lvbayes/core"
)

type queueItem struct {
	id    core.NodeID
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	graph   *core.Graph
	opts    Options
	queue   []queueItem
	visited map[core.NodeID]bool
	res     *Result
}

// BFS runs breadth-first search on g from start.
// Returns ErrGraphNil, core.ErrNodeNotFound for an absent start,
// ErrOptionViolation for bad options, or any hook error.
func BFS(g *core.Graph, start core.NodeID, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !g.HasNode(start) {
		return nil, fmt.Errorf("%w: %q", core.ErrNodeNotFound, start)
	}

	n := g.NodeCount()
	w := &walker{
		graph:   g,
		opts:    o,
		queue:   make([]queueItem, 0, n),
		visited: make(map[core.NodeID]bool, n),
		res: &Result{
			Order:  make([]core.NodeID, 0, n),
			Depth:  make(map[core.NodeID]int, n),
			Parent: make(map[core.NodeID]core.NodeID, n),
		},
	}
	w.enqueue(start, 0, "")

	return w.res, w.loop()
}

func (w *walker) enqueue(id core.NodeID, d int, parent core.NodeID) {
	w.visited[id] = true
	w.res.Depth[id] = d
	if parent != "" {
		w.res.Parent[id] = parent
	}
	w.queue = append(w.queue, queueItem{id: id, depth: d})
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		select {
		case <-w.opts.Ctx.Done():
			return w.opts.Ctx.Err()
		default:
		}

		item := w.queue[0]
		w.queue = w.queue[1:]
		w.res.Order = append(w.res.Order, item.id)
		if err := w.opts.OnVisit(item.id, item.depth); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %q: %w", item.id, err)
		}

		next := item.depth + 1
		if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
			continue
		}
		children, err := w.graph.Children(item.id)
		if err != nil {
			return err
		}
		for _, c := range children {
			if w.visited[c] || !w.opts.FilterNeighbor(item.id, c) {
				continue
			}
			w.enqueue(c, next, item.id)
		}
	}

	return nil
}
