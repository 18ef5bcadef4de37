// SPDX-License-Identifier: MIT
// Package: netsim/simulation
//
// options.go — functional options for the engine.
//
// Contract (strict):
//   • Options are functional (type Option func(*engineConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs
//     (nil RNG, nil observer, non-positive re-summation interval).
//     The engine itself never panics on user-triggered conditions.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand;
//     without either, the engine uses defaultRNGSeed.

package simulation

import (
	"log/slog"
	"math/rand"
)

// DefaultResumInterval is the number of steps between full re-summations of
// the total propensity (bounds floating-point drift of incremental updates).
const DefaultResumInterval = 1000

// Option customizes an Engine.
type Option func(*engineConfig)

type engineConfig struct {
	rng        *rand.Rand
	resumEvery int
	observers  []func(Event)
	logger     *slog.Logger
}

func defaultEngineConfig() engineConfig {
	return engineConfig{resumEvery: DefaultResumInterval}
}

// WithSeed creates a new *rand.Rand with the given seed (seed==0 ⇒ default).
func WithSeed(seed int64) Option {
	return func(c *engineConfig) {
		c.rng = rngFromSeed(seed)
	}
}

// WithRand provides an explicit RNG. Panics on nil.
// The engine consumes it exclusively; do not share it with other goroutines.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("simulation: WithRand(nil)")
	}
	return func(c *engineConfig) {
		c.rng = r
	}
}

// WithResumInterval sets how many steps pass between full re-summations.
// Panics if k <= 0.
func WithResumInterval(k int) Option {
	if k <= 0 {
		panic("simulation: WithResumInterval(k<=0)")
	}
	return func(c *engineConfig) {
		c.resumEvery = k
	}
}

// WithObserver registers a callback invoked after every successful step.
// May be given several times; observers run in registration order.
// Panics on nil.
func WithObserver(fn func(Event)) Option {
	if fn == nil {
		panic("simulation: WithObserver(nil)")
	}
	return func(c *engineConfig) {
		c.observers = append(c.observers, fn)
	}
}

// WithLogger sets the engine logger (steps at Debug, absorption at Info).
// Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("simulation: WithLogger(nil)")
	}
	return func(c *engineConfig) {
		c.logger = l
	}
}
