package elimination

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/lvbayes/core"
)

var (
	// ErrGraphNil is returned when a nil graph is passed in.
	ErrGraphNil = errors.New("elimination: graph is nil")

	// ErrUnknownHeuristic is returned for an unsupported Heuristic value or name.
	ErrUnknownHeuristic = errors.New("elimination: unknown heuristic")
)

// Heuristic selects the greedy scoring rule.
type Heuristic int

const (
	// MinFill scores a node by the fill edges its elimination adds.
	MinFill Heuristic = iota

	// MinDegree scores a node by its neighbour count.
	MinDegree
)

// String returns the CLI spelling ("min-fill", "min-degree").
func (h Heuristic) String() string {
	switch h {
	case MinFill:
		return "min-fill"
	case MinDegree:
		return "min-degree"
	default:
		return fmt.Sprintf("Heuristic(%d)", int(h))
	}
}

// ParseHeuristic accepts "min-fill"/"minfill" and "min-degree"/"mindegree",
// case-insensitively.
func ParseHeuristic(s string) (Heuristic, error) {
	switch strings.ToLower(strings.ReplaceAll(s, "_", "-")) {
	case "min-fill", "minfill":
		return MinFill, nil
	case "min-degree", "mindegree":
		return MinDegree, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownHeuristic, s)
	}
}

// Option configures an ordering run.
type Option func(*Options)

// Options holds ordering settings.
type Options struct {
	// Ctx is checked once per elimination round.
	Ctx context.Context

	// Shrinking removes eliminated nodes from the interaction graph.
	Shrinking bool

	// Candidates, when non-nil, restricts which nodes are ordered. Other
	// nodes stay in the interaction graph and are never eliminated.
	Candidates []core.NodeID
}

// DefaultOptions returns Background context, the retained-edges policy and
// every node as a candidate.
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

// WithShrinkingGraph selects the textbook elimination graph.
func WithShrinkingGraph() Option {
	return func(o *Options) { o.Shrinking = true }
}

// WithCandidates restricts ordering to ids. An empty, non-nil slice yields
// an empty order.
func WithCandidates(ids []core.NodeID) Option {
	cp := append(make([]core.NodeID, 0, len(ids)), ids...)
	return func(o *Options) { o.Candidates = cp }
}
