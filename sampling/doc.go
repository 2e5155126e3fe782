// Package sampling provides approximate inference over discrete Bayesian
// networks by stochastic simulation.
//
// A Sampler owns a *rand.Rand and exposes:
//
//   - Sample / SampleOutcome: roulette-wheel draws from a distribution.
//   - AncestralOrder: parents before children, ties broken by name.
//   - ForwardSample / ForwardSamplingMarginal: prior sampling.
//   - RejectionSamplingMarginal: prior sampling that discards samples
//     inconsistent with the evidence.
//   - InitialState / MarkovBlanketDistribution / GibbsSamplingMarginal:
//     Gibbs sampling that resamples each unobserved variable from its
//     Markov-blanket distribution.
//
// Determinism: a Sampler built WithSeed(s) reproduces the same draws for
// the same call sequence. A Sampler is not safe for concurrent use; Fork
// derives independent samplers for parallel workers.
//
// Observability: each marginal estimate opens an OpenTelemetry span and
// records sample counters; debug records go to the configured slog logger.
package sampling
