package dsep

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/lvbayes/core"
)

var (
	// ErrGraphNil is returned when a nil graph is passed in.
	ErrGraphNil = errors.New("dsep: graph is nil")

	// ErrUndirectedGraph is returned when a path query needs edge directions.
	ErrUndirectedGraph = errors.New("dsep: directed graph required")

	// ErrUnknownColliderRule is returned by ParseColliderRule.
	ErrUnknownColliderRule = errors.New("dsep: unknown collider rule")
)

// ColliderRule selects how IsColliderOnPath decides whether a path node is a
// collider.
type ColliderRule int

const (
	// DirectParents: both path neighbours have an edge into the node.
	DirectParents ColliderRule = iota

	// AncestorRule: both path neighbours are ancestors of the node. On a
	// genuine path of a DAG this matches DirectParents; it differs only for
	// node sequences whose consecutive members are not adjacent.
	AncestorRule
)

// String implements fmt.Stringer.
func (r ColliderRule) String() string {
	switch r {
	case DirectParents:
		return "direct-parents"
	case AncestorRule:
		return "ancestors"
	default:
		return fmt.Sprintf("ColliderRule(%d)", int(r))
	}
}

// ParseColliderRule accepts the String spellings, case-insensitively.
func ParseColliderRule(s string) (ColliderRule, error) {
	switch strings.ToLower(strings.ReplaceAll(s, "_", "-")) {
	case "direct-parents", "parents":
		return DirectParents, nil
	case "ancestors", "ancestor":
		return AncestorRule, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownColliderRule, s)
	}
}

// Option configures path queries.
type Option func(*Options)

// Options holds query settings.
type Options struct {
	// Ctx cancels long path enumerations.
	Ctx context.Context

	// Rule decides colliders; default DirectParents.
	Rule ColliderRule
}

// DefaultOptions returns Background context and DirectParents.
func DefaultOptions() Options {
	return Options{Ctx: context.Background(), Rule: DirectParents}
}

// WithContext sets the cancellation context. A nil context is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithColliderRule selects the collider rule. Panics on an unknown rule.
func WithColliderRule(r ColliderRule) Option {
	if r != DirectParents && r != AncestorRule {
		panic(fmt.Sprintf("dsep: unknown collider rule %d", int(r)))
	}

	return func(o *Options) { o.Rule = r }
}

func buildOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// nodeSet is a membership set of node IDs.
type nodeSet map[core.NodeID]struct{}

func setOf(ids []core.NodeID) nodeSet {
	s := make(nodeSet, len(ids))
	for _, id := range ids {
		s[id] = struct{}{}
	}

	return s
}

func (s nodeSet) has(id core.NodeID) bool {
	_, ok := s[id]
	return ok
}

// requireNodes checks g and every id.
func requireNodes(g *core.Graph, groups ...[]core.NodeID) error {
	if g == nil {
		return ErrGraphNil
	}
	for _, ids := range groups {
		for _, id := range ids {
			if !g.HasNode(id) {
				return fmt.Errorf("%w: %q", core.ErrNodeNotFound, id)
			}
		}
	}

	return nil
}
