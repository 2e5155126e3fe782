// File: types.go
// Role: NodeID, Edge, Graph, GraphOption, sentinel errors and the NewGraph
//       constructor.
//
// Errors:
//
//	ErrEmptyNodeID   - node ID is the empty string.
//	ErrNodeNotFound  - requested node does not exist.
//
// Concurrency:
//   - A single sync.RWMutex guards the node catalog and both adjacency maps.

package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyNodeID indicates that an empty string was used as a node name.
	ErrEmptyNodeID = errors.New("core: node ID is empty")

	// ErrNodeNotFound indicates an operation referenced a non-existent node.
	ErrNodeNotFound = errors.New("core: node not found")
)

// NodeID names a node. Identity is the name itself.
type NodeID string

// String implements fmt.Stringer.
func (id NodeID) String() string { return string(id) }

// Edge is an ordered pair of node IDs.
type Edge struct {
	// From is the tail of the edge.
	From NodeID

	// To is the head of the edge.
	To NodeID
}

// Graph is a simple graph (no multi-edges, no self-loops) over named nodes.
//
// Invariants:
//   - every endpoint stored in parents/children exists in nodes;
//   - parents[v] contains u iff children[u] contains v;
//   - for undirected graphs, u→v is stored iff v→u is stored.
type Graph struct {
	mu sync.RWMutex

	directed bool

	order    []NodeID            // insertion order of nodes
	nodes    map[NodeID]struct{} // membership
	parents  map[NodeID][]NodeID // incoming neighbours, edge-insertion order
	children map[NodeID][]NodeID // outgoing neighbours, edge-insertion order
	arcs     int                 // number of stored directed arcs
}

// GraphOption configures a Graph at construction.
type GraphOption func(*Graph)

// WithDirected sets whether the graph is directed (default true).
func WithDirected(directed bool) GraphOption {
	return func(g *Graph) { g.directed = directed }
}

// NewGraph creates an empty Graph. Graphs are directed unless
// WithDirected(false) is supplied.
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		directed: true,
		nodes:    make(map[NodeID]struct{}),
		parents:  make(map[NodeID][]NodeID),
		children: make(map[NodeID][]NodeID),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// Directed reports whether edges are one-way.
func (g *Graph) Directed() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.directed
}

// IDs converts plain strings into NodeIDs, preserving order.
func IDs(names ...string) []NodeID {
	out := make([]NodeID, len(names))
	for i, n := range names {
		out[i] = NodeID(n)
	}

	return out
}

// Strings converts NodeIDs back into plain strings, preserving order.
func Strings(ids []NodeID) []string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = string(id)
	}

	return out
}
