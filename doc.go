// Package lvbayes is an in-memory toolkit for discrete probabilistic
// graphical models: causal structure, conditional independence, exact
// variable elimination and sampling over Bayesian networks.
//
// What is inside?
//
//	• Graph store: named nodes, directed or undirected, ordered parents and
//	  children, cycle-safe ancestor/descendant search (core, bfs, dfs)
//	• Causal structure: forks, chains, colliders, immoralities, skeleton and
//	  Markov equivalence (causal)
//	• Independence: path-based d-separation and the ancestral/moral-graph
//	  criterion (dsep)
//	• Elimination planning: greedy min-fill and min-degree orders (elimination)
//	• Factor algebra: multiply, sum/max out, reduce, normalise (factor)
//	• Networks: variables, CPTs and validation (bayes)
//	• Exact inference: posteriors, joints and MAP with traceback (infer)
//	• Sampling: forward, rejection and Gibbs estimates (sampling)
//	• Fixtures: canonical graphs and networks (builder)
//
// Packages are organised leaves first:
//
//	core/         Graph, NodeID, Edge; thread-safe primitives
//	bfs/, dfs/    traversal, reachability, topological order, path search
//	causal/       structural classification and equivalence
//	dsep/         d-separation, ancestral and moral graphs
//	elimination/  elimination-order heuristics
//	factor/       dense discrete factors
//	bayes/        Bayesian networks
//	infer/        variable elimination (sum-product, max-product)
//	sampling/     stochastic simulation
//	builder/      fixtures for tests, examples and the CLI
//	cmd/lvbayes   command-line front end
//
// Quick ASCII example, the wet-grass network:
//
//	        winter
//	       ╱      ╲
//	sprinkler     rain
//	       ╲      ╱   ╲
//	      wet_grass   dry_fields
//
//	go install github.com/katalvlaran/lvbayes/cmd/lvbayes@latest
//	lvbayes query --network wet-grass --vars rain --evidence wet_grass=True
package lvbayes
