// Package bayes models discrete Bayesian networks: a directed acyclic
// core.Graph whose nodes are discrete variables, each carrying a conditional
// probability table (CPT) stored as a factor.Factor.
//
// CPT layout:
//
//	The CPT of X with parents P1, …, Pk (in edge-insertion order) has scope
//	[X, P1, …, Pk] and is given as a flat row-major slice: X is the slowest
//	axis and Pk the fastest. For binary X with one binary parent C:
//
//	    [P(X=x1|C=c1), P(X=x1|C=c2), P(X=x2|C=c1), P(X=x2|C=c2)]
//
//	A CPT snapshots the parents present when it was set. Adding or removing
//	an incoming edge afterwards makes Validate report ErrCPTShape until the
//	CPT is set again.
//
// Validate is the gate every inference and sampling routine passes first:
// the graph must be acyclic, and every variable must own a CPT consistent
// with its current parents and their outcome lists.
package bayes
