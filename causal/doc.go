// Package causal classifies the local structure of a directed graph:
//
//   - Fork      X ← Z → Y   Z has more than one child.
//   - Chain     X → Z → Y   Z has at least one parent and one child.
//   - Collider  X → Z ← Y   Z has more than one parent.
//
// An immorality is a collider whose two parents are not adjacent. Two DAGs
// are Markov equivalent (encode the same conditional independences) iff
// they share a skeleton and the same set of immoralities.
//
// Every function reads the graph only; results list nodes in insertion
// order and immoralities sorted by their canonical pair.
package causal
