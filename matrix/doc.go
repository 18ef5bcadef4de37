// Package matrix offers the dense row-major storage used throughout netsim.
//
// The matrix package provides:
//
//   - Dense, a bounds-checked float64 matrix with a finite-only numeric policy.
//   - Validators for adjacency-like matrices (square, symmetric, non-negative
//     integer multiplicities).
//   - Compensated summation (Sum) for drift-free totals.
//   - A deterministic row-major visitor (Do) and a diagnostic dump (String).
//
// A network's node properties (N×D) and adjacency (N×N) are both Dense, and so
// is every per-rule propensity table in the simulation engine.
package matrix
