// Package dsep answers conditional-independence queries on directed
// acyclic graphs, in two independent ways.
//
// Path criterion (d-separation):
//
//	A simple undirected path is blocked by an observed set Z when some
//	interior node either
//	  - is not a collider on the path and lies in Z, or
//	  - is a collider on the path and neither it nor any descendant is in Z.
//	X ⊥ Y | Z holds when every path between every x ∈ X and y ∈ Y is
//	blocked. See Paths, IsColliderOnPath, IsPathOpen, UnblockedPathExists,
//	CheckIndependence.
//
// Graph criterion (moralisation):
//
//	1. AncestralGraph: keep X ∪ Y ∪ Z and all their ancestors.
//	2. MoralGraph: marry co-parents, drop directions.
//	3. Separate: delete Z.
//	X ⊥ Y | Z holds when no x reaches any y. See CheckIndependenceGeneral.
//
// Both criteria agree on DAGs. Path enumeration is exponential in the worst
// case; the graph criterion is O(V + E) per query.
//
// Conventions shared by both tests: x == y is always dependent; an x or y
// that is itself observed (in Z) is independent of everything else. Every
// function returns core.ErrNodeNotFound (wrapped) for unknown nodes and
// never mutates its input graph.
package dsep
