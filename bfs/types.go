package bfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/lvbayes/core"
)

// Sentinel errors for BFS execution.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")
)

// Option configures BFS behavior via functional arguments.
// An invalid Option is recorded and surfaced as ErrOptionViolation when BFS
// is invoked.
type Option func(*Options)

// Options holds parameters and callbacks to customize BFS execution.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnVisit is called when a node is dequeued. A returned error aborts the
	// search and is propagated wrapped.
	OnVisit func(id core.NodeID, depth int) error

	// MaxDepth, if > 0, stops exploring beyond this depth.
	MaxDepth int

	// FilterNeighbor can skip an edge curr→neighbor by returning false.
	FilterNeighbor func(curr, neighbor core.NodeID) bool

	err error
}

// DefaultOptions returns Background context, no depth limit, no filtering and
// a no-op OnVisit hook.
func DefaultOptions() Options {
	return Options{
		Ctx:            context.Background(),
		OnVisit:        func(core.NodeID, int) error { return nil },
		FilterNeighbor: func(_, _ core.NodeID) bool { return true },
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxDepth limits exploration depth. Negative values are an option
// violation.
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: negative max depth %d", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// WithOnVisit registers a visit hook.
func WithOnVisit(fn func(id core.NodeID, depth int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithFilterNeighbor registers an edge filter.
func WithFilterNeighbor(fn func(curr, neighbor core.NodeID) bool) Option {
	return func(o *Options) {
		if fn != nil {
			o.FilterNeighbor = fn
		}
	}
}

// Result collects the outcome of one search.
type Result struct {
	// Order lists nodes in visit order, starting with the source.
	Order []core.NodeID

	// Depth maps each visited node to its hop distance from the source.
	Depth map[core.NodeID]int

	// Parent maps each visited node (except the source) to its BFS parent.
	Parent map[core.NodeID]core.NodeID
}

// PathTo reconstructs the BFS-tree path from the source to dest, or nil if
// dest was not reached.
func (r *Result) PathTo(dest core.NodeID) []core.NodeID {
	if _, ok := r.Depth[dest]; !ok {
		return nil
	}
	path := []core.NodeID{dest}
	for cur := dest; ; {
		p, ok := r.Parent[cur]
		if !ok {
			break
		}
		path = append(path, p)
		cur = p
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}
