// Package elimination plans variable-elimination orders on the interaction
// (undirected) graph of a model.
//
// Heuristics:
//
//   - MinFill: pick the node whose elimination adds the fewest fill edges,
//     i.e. the fewest non-adjacent pairs among its neighbours.
//   - MinDegree: pick the node with the fewest neighbours.
//
// Ties are broken by the lexicographically smallest node name, so orders
// are fully deterministic.
//
// Interaction-graph policy:
//
//	By default an eliminated node keeps its edges: it leaves the candidate
//	set, but its adjacencies still count when scoring the remaining nodes,
//	and its fill edges stay in the graph. WithShrinkingGraph switches to the
//	textbook elimination graph, where the eliminated node and its edges are
//	removed after its neighbours have been connected.
//
// Directed inputs are projected with ToUndirected first; the input graph is
// never modified.
//
// Complexity: O(n · Σ_v deg(v)²) for n candidates.
package elimination
