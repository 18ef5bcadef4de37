// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. Callers MUST compare with errors.Is; public methods wrap these
// sentinels with method context ("Dense.At(1,2): matrix: index out of range").

package matrix

import "errors"

// ERROR PRIORITY (documented, enforced in tests):
// shape -> index -> NaN/Inf -> structural (square/symmetric/integral).

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive
	// or that row-literal input is empty.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrDimensionMismatch indicates incompatible dimensions, e.g. ragged rows
	// in NewFromRows or operands of different shapes.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrNaNInf signals a NaN or ±Inf value where finite values are required.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrAsymmetry signals that a matrix expected to be symmetric is not.
	ErrAsymmetry = errors.New("matrix: matrix is not symmetric")

	// ErrNotIntegral signals a negative or fractional entry where non-negative
	// integer multiplicities are required.
	ErrNotIntegral = errors.New("matrix: entry is not a non-negative integer")

	// ErrNilMatrix indicates that a nil *Dense was passed to a validator.
	ErrNilMatrix = errors.New("matrix: nil receiver")
)
