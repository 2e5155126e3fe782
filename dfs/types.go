package dfs

import (
	"context"
	"errors"
)

// Visitation states.
const (
	White = iota // not visited yet
	Gray         // on the recursion stack
	Black        // fully explored
)

var (
	// ErrGraphNil is returned when a nil *core.Graph is passed in.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrCycleDetected indicates that a directed cycle was encountered.
	ErrCycleDetected = errors.New("dfs: cycle detected")

	// ErrUndirectedGraph indicates that an operation requires a directed graph.
	ErrUndirectedGraph = errors.New("dfs: directed graph required")
)

// Option configures TopologicalSort and SimplePaths.
type Option func(*Options)

// Options holds the traversal settings.
type Options struct {
	// Ctx allows cancellation; defaults to context.Background().
	Ctx context.Context

	// MaxPaths, if positive, stops SimplePaths after that many paths.
	MaxPaths int
}

// DefaultOptions returns Background context and no path limit.
func DefaultOptions() Options {
	return Options{Ctx: context.Background()}
}

// WithContext sets the cancellation context. A nil context is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxPaths caps the number of paths SimplePaths returns.
// Panics if n is negative.
func WithMaxPaths(n int) Option {
	if n < 0 {
		panic("dfs: WithMaxPaths requires n >= 0")
	}

	return func(o *Options) { o.MaxPaths = n }
}

func buildOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
