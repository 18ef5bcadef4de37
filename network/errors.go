// SPDX-License-Identifier: MIT
// Package: netsim/network
//
// errors.go — sentinel errors for the network package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Every failure of Apply matches BOTH ErrInvalidMutation and the specific
//     structural sentinel (ErrSelfLoop, ErrDuplicateEdge, ...) under errors.Is.
//   • Wire decoding failures (ErrUnknownOperation, ErrArity, ErrArgumentType)
//     also match ErrInvalidMutation.

package network

import (
	"errors"
	"fmt"
)

// ErrInvalidMutation classifies every malformed or structurally illegal
// mutation instruction. A step that hits it must be treated as failed.
var ErrInvalidMutation = errors.New("network: invalid mutation")

// ErrSelfLoop indicates an edge operation with identical endpoints.
var ErrSelfLoop = errors.New("network: self-loop not allowed")

// ErrDuplicateEdge indicates add_edge on a pair that is already connected.
var ErrDuplicateEdge = errors.New("network: edge already exists")

// ErrMissingEdge indicates remove_edge on a pair that is not connected.
var ErrMissingEdge = errors.New("network: edge does not exist")

// ErrDimensionMismatch indicates a property vector whose length differs from D.
var ErrDimensionMismatch = errors.New("network: property dimension mismatch")

// ErrNodeOutOfRange indicates a node index outside [0, N).
var ErrNodeOutOfRange = errors.New("network: node index out of range")

// ErrNonFinite indicates a NaN or ±Inf property value.
var ErrNonFinite = errors.New("network: non-finite property value")

// ErrUnknownOperation indicates a wire instruction with an unknown operation key.
var ErrUnknownOperation = errors.New("network: unknown operation key")

// ErrArity indicates a wire instruction with the wrong number of arguments.
var ErrArity = errors.New("network: wrong argument count")

// ErrArgumentType indicates a wire argument that cannot be converted to the
// declared type (node index or property vector).
var ErrArgumentType = errors.New("network: wrong argument type")

// ErrNoNodes indicates construction with an empty node matrix or D == 0.
var ErrNoNodes = errors.New("network: node matrix must be non-empty N×D with D ≥ 1")

// ErrBadShape indicates an adjacency matrix that is not N×N.
var ErrBadShape = errors.New("network: adjacency must be N×N")

// ErrAsymmetric indicates an initial adjacency matrix that is not symmetric.
var ErrAsymmetric = errors.New("network: adjacency must be symmetric")

// ErrBadMultiplicity indicates a negative or fractional adjacency entry.
var ErrBadMultiplicity = errors.New("network: adjacency entries must be non-negative integers")

// mutationErrorf tags a failing instruction with its batch position and
// joins the class sentinel with the specific cause.
func mutationErrorf(idx int, m Mutation, cause error) error {
	if m == nil {
		return fmt.Errorf("<nil> at #%d: %w: %w", idx, ErrInvalidMutation, cause)
	}
	return fmt.Errorf("%s%v at #%d: %w: %w", m.Key(), m.Args(), idx, ErrInvalidMutation, cause)
}
