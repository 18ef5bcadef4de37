// Package simulation - RNG utilities for the direct method.
//
// Goals:
//   - Determinism: same seed ⇒ identical trajectories across platforms.
//   - Encapsulation: a single RNG factory; no time-based sources hidden anywhere.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. Each Engine owns its own stream.
package simulation

import (
	"math"
	"math/rand"
)

// defaultRNGSeed is the fixed “zero” seed used when callers pass seed==0 or
// configure no source at all.
const defaultRNGSeed int64 = 1

// rngFromSeed returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ use defaultRNGSeed; otherwise use the provided seed verbatim.
func rngFromSeed(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultRNGSeed
	}
	return rand.New(rand.NewSource(seed))
}

// openUnit draws u uniformly from the open interval (0,1).
// Float64 yields [0,1); zero is redrawn so −ln(u) stays finite.
func openUnit(r *rand.Rand) float64 {
	for {
		if u := r.Float64(); u > 0 {
			return u
		}
	}
}

// exponential returns −ln(u)/rate for u drawn from (0,1).
func exponential(r *rand.Rand, rate float64) float64 {
	return -math.Log(openUnit(r)) / rate
}
