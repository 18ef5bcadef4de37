// Package builder generates initial network topologies as adjacency
// matrices: path, cycle, star, wheel, complete, grid and Erdős–Rényi
// random graphs.
//
// Constructors compose: Build runs them in order over one zero matrix and
// each adds its edges, so Build(n, nil, Cycle(), Cycle()) is a cycle with
// every edge of multiplicity 2. Every result satisfies network.New's
// adjacency invariants (symmetric, zero diagonal, non-negative integers).
//
// Determinism: stochastic constructors draw from the RNG set by WithSeed or
// WithRand, in a fixed pair order.
package builder
