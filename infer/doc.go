// Package infer performs exact inference on discrete Bayesian networks by
// variable elimination.
//
// Pipeline shared by Posterior, Joint and MAP:
//
//  1. Validate the network (acyclic, CPTs consistent with parents).
//  2. InitializeFactors: one factor per variable (its CPT), reduced by the
//     evidence that falls in its scope.
//  3. Plan an order for the variables to eliminate with a heuristic from
//     package elimination, run on the moral graph of the network.
//  4. Eliminate one variable at a time:
//     - SumProductEliminate for marginals (Posterior, Joint);
//     - MaxProductEliminate for MAP, keeping each pre-max factor so
//     Traceback can recover the maximising assignment.
//
// MAP returns max_x P(x, e): the largest joint probability of a full
// assignment consistent with the evidence, not a conditional.
//
// Observability: each call opens an OpenTelemetry span and records
// elimination counters through the global providers (no-ops until the
// application installs an SDK). Debug logs go to the logger passed with
// WithLogger; the default logger discards everything.
package infer
