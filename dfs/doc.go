// Package dfs implements depth-first algorithms on a core.Graph used by the
// structure and inference packages.
//
// What:
//
//   - TopologicalSort: a linear ordering of the nodes of a directed acyclic
//     graph such that for every edge u→v, u precedes v. Returns
//     ErrCycleDetected if a directed cycle exists.
//   - FindCycle: one directed cycle as a closed node sequence, for error
//     reporting.
//   - SimplePaths: every simple path between two nodes following Children
//     adjacency. On an undirected graph this enumerates undirected paths.
//
// How:
//
//   - Vertex colouring (White, Gray, Black). A Gray node reached again is a
//     back-edge, i.e. a cycle.
//   - SimplePaths keeps the current path on an explicit stack with an
//     on-path set, so nodes are never repeated within one path.
//
// Determinism:
//
//	Roots are scanned in node-insertion order and children in edge-insertion
//	order, so every result is reproducible for a given construction order.
//
// Complexity:
//
//   - TopologicalSort, FindCycle: O(V + E) time, O(V) memory.
//   - SimplePaths: output-sensitive; exponential in the worst case.
package dfs
