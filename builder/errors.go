// SPDX-License-Identifier: MIT
// Package: netsim/builder
//
// errors.go — sentinel errors for topology builders.
//
// Error policy:
//   • Only package-level sentinels are exposed; branch with errors.Is.
//   • Constructors attach context as "<Method>: <detail>: %w".
//   • Option constructors panic on meaningless values; constructors never do.

package builder

import "errors"

var (
	// ErrTooFewNodes indicates a network too small for the topology.
	ErrTooFewNodes = errors.New("builder: too few nodes")

	// ErrInvalidProbability indicates p outside [0, 1].
	ErrInvalidProbability = errors.New("builder: probability out of range")

	// ErrNeedRandSource indicates a stochastic constructor without an RNG.
	ErrNeedRandSource = errors.New("builder: rng is required")

	// ErrShapeMismatch indicates grid dimensions that do not cover n nodes.
	ErrShapeMismatch = errors.New("builder: grid shape does not match node count")

	// ErrNilConstructor indicates a nil constructor passed to Build.
	ErrNilConstructor = errors.New("builder: nil constructor")

	// ErrUnknownTopology indicates a topology name missing from Lookup.
	ErrUnknownTopology = errors.New("builder: unknown topology")
)
