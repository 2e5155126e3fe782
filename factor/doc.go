// Package factor implements discrete potential tables ("factors") and the
// algebra used by variable elimination: product, marginalisation by sum or
// max, evidence reduction and normalisation.
//
// A Factor φ over scope (X1, …, Xk) with domains D1, …, Dk stores
// |D1|·…·|Dk| non-negative values in a flat row-major slice: X1 is the
// slowest axis, Xk the fastest. A factor with an empty scope is a scalar
// and holds exactly one value.
//
// Conventions:
//
//   - Scope order is significant for storage but never for semantics:
//     Multiply(a, b) and Multiply(b, a) hold the same potentials under
//     different axis orders.
//   - Operations never mutate their inputs; every result is a fresh Factor.
//   - Ties in ArgMax resolve to the first maximum in row-major order.
//
// Complexity (n = table size of the result, k = its rank):
//
//   - Multiply, SumOut, MaxOut, Reduce, Transpose: O(n·k).
//   - Normalize, Sum, Max, ArgMax: O(n).
package factor
