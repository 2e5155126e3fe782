// Package builder assembles canonical graphs and Bayesian networks for
// tests, examples, benchmarks and the lvbayes CLI.
//
// Graphs (Constructor, composed by BuildGraph):
//
//   - ExampleGraph:        B→A←E→R (burglary, alarm, earthquake, radio).
//   - ReversedExampleGraph: the same with the E–R edge reversed.
//   - LectureGraph:        the 11-node graph A…M used for d-separation
//     and elimination-order exercises.
//   - Path(n):             v0→v1→…→v(n-1) with IDs from the ID scheme.
//
// Networks (NetworkConstructor, composed by BuildNetwork):
//
//   - WetGrass:     winter → {sprinkler, rain} → wet_grass, rain → dry_fields.
//   - SlipperyRoad: the wet-grass structure with rain → slippery_road.
//   - Alarm:        non-binary: {alarm (3 outcomes), burglary} → john.
//   - Chain4:       C→B, B→A, B→D with the MAP reference tables.
//   - Random(n):    a random DAG over n variables with random CPTs, drawn
//     from the configured RNG (WithSeed / WithRand).
//
// Lookup by name for command-line use: GraphByName, NetworkByName.
//
// Determinism: same options, seed and constructor order ⇒ identical
// structures and tables.
package builder
