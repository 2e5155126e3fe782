// Package core provides a thread-safe in-memory Graph of named nodes, the
// structural substrate for causal-structure queries, d-separation and
// inference over Bayesian networks.
//
// The Graph G = (V,E) is deliberately small:
//
//   - Nodes are identified by NodeID (a distinct string type) and kept in
//     insertion order.
//   - Directed graphs store each edge u→v once; undirected graphs (built with
//     WithDirected(false) or via ToUndirected) mirror every edge as u→v and v→u.
//   - Parents(v) and Children(v) are returned in edge-insertion order. For a
//     Bayesian network this order is the axis order of the node's CPT.
//   - No parallel edges, and self-loops are never created: AddEdge(a, a) is
//     a silent no-op, as are duplicate AddNode/AddEdge calls.
//
// Structural queries:
//
//	– Ancestors / Descendants / IsAncestor / IsDescendant
//	    Iterative search with an explicit stack and visited set, so every
//	    query terminates on cyclic graphs. IsDescendant(n, n) is true exactly
//	    when n lies on a directed cycle.
//
//	– IsAcyclic
//	    Kahn-style peeling of zero in-degree nodes.
//
//	– Clone / ToUndirected / InducedSubgraph
//	    Produce independent graphs; algorithms in dependent packages (dsep,
//	    elimination, causal) work on these scoped copies and never mutate
//	    their inputs.
//
// Concurrency:
//
//	All methods take an internal sync.RWMutex. Readers run in parallel;
//	mutations are serialized. Returned slices are always fresh copies.
//
// Errors:
//
//	ErrEmptyNodeID  - AddNode was given "".
//	ErrNodeNotFound - a query or RemoveNode referenced an absent node.
package core
