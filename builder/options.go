// SPDX-License-Identifier: MIT
// Package: netsim/builder
//
// options.go — functional options for topology builders.
//
// Contract:
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//   • Without WithSeed or WithRand the config carries no RNG, and
//     stochastic constructors with 0 < p < 1 fail with ErrNeedRandSource.
//   • Later options override earlier ones.

package builder

import "math/rand"

// Option customizes a Build call.
type Option func(*config)

// config is passed by value to every constructor.
type config struct {
	rng *rand.Rand
}

func newConfig(opts ...Option) config {
	var c config
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// WithSeed attaches a deterministic RNG.
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand attaches an explicit RNG. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *config) {
		c.rng = r
	}
}
