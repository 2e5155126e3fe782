// Package bfs provides breadth-first search over a core.Graph, returning
// visit order, hop depths and parent links, plus the reachability queries
// used by the independence tests in package dsep.
//
// Traversal follows Children adjacency: directed edges on directed graphs,
// both directions on undirected graphs (for example a moral graph).
//
// Complexity: O(V + E) time and O(V) memory per search.
package bfs
