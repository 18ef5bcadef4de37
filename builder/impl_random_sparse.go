// SPDX-License-Identifier: MIT
// Package: netsim/builder
//
// impl_random_sparse.go — Erdős–Rényi G(n, p).
//
// Contract:
//   • 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   • An RNG is required only for 0 < p < 1 (else ErrNeedRandSource).
//   • Trials run over unordered pairs, i asc then j > i asc, so a fixed
//     seed yields a fixed graph.
//
// Complexity: O(n²) Bernoulli trials.

package builder

import (
	"fmt"

	"github.com/katalvlaran/netsim/matrix"
)

const (
	methodRandomSparse = "RandomSparse"
	probMin            = 0.0
	probMax            = 1.0
)

// RandomSparse includes each edge independently with probability p.
func RandomSparse(p float64) Constructor {
	return func(adj *matrix.Dense, cfg config) error {
		if !(p >= probMin && p <= probMax) {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				methodRandomSparse, p, probMin, probMax, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > probMin && p < probMax {
			return fmt.Errorf("%s: %w", methodRandomSparse, ErrNeedRandSource)
		}

		n := adj.Rows()
		var i, j int
		for i = 0; i < n; i++ {
			for j = i + 1; j < n; j++ {
				keep := p == probMax
				if cfg.rng != nil && p > probMin && p < probMax {
					keep = cfg.rng.Float64() < p
				}
				if !keep {
					continue
				}
				if err := connect(adj, i, j); err != nil {
					return fmt.Errorf("%s: %w", methodRandomSparse, err)
				}
			}
		}
		return nil
	}
}
