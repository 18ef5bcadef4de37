// SPDX-License-Identifier: MIT
// Package: netsim/simulation
//
// errors.go — sentinel errors for the engine.
//
// Error policy:
//   • ErrAbsorbed is a terminal status, not a failure: Run reports it through
//     Summary.Absorbed and a nil error.
//   • Every other step error moves the engine to Failed; later calls return
//     ErrEngineFailed wrapping the original cause. No retries.

package simulation

import "errors"

var (
	// ErrAbsorbed is returned by Step once the total propensity is zero.
	ErrAbsorbed = errors.New("simulation: absorbing state reached")

	// ErrNegativePropensity indicates a rate function returned a value < 0.
	// Values are never clamped to zero.
	ErrNegativePropensity = errors.New("simulation: negative propensity")

	// ErrNonFinitePropensity indicates a rate function returned NaN or ±Inf.
	ErrNonFinitePropensity = errors.New("simulation: non-finite propensity")

	// ErrEngineFailed is returned by every Step after a failed step.
	ErrEngineFailed = errors.New("simulation: engine failed")

	// ErrUnknownRule indicates an invalidation key naming a rule the engine
	// does not run.
	ErrUnknownRule = errors.New("simulation: unknown rule in invalidation")

	// ErrInvalidKey indicates an invalidation key with a diagonal or
	// out-of-range pair.
	ErrInvalidKey = errors.New("simulation: invalid invalidation key")

	// ErrNilState indicates New was called without a state.
	ErrNilState = errors.New("simulation: state is nil")

	// ErrNilRule indicates a nil element in the rule list.
	ErrNilRule = errors.New("simulation: rule is nil")

	// ErrDuplicateRule indicates two rules sharing a name.
	ErrDuplicateRule = errors.New("simulation: duplicate rule name")

	// ErrOutOfRange indicates a Propensity query outside the tables.
	ErrOutOfRange = errors.New("simulation: rule or pair out of range")
)
