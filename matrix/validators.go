// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for structural checks on
//    adjacency-like matrices (square, symmetric, integral multiplicities).
//  - Return sentinel errors tagged with the validator name so call sites can
//    wrap uniformly.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing.
//  - Symmetry check runs O(n²) on the upper triangle only.

package matrix

import (
	"fmt"
	"math"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
// Complexity: O(1).
func ValidateNotNil(m *Dense) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSquare checks that m is square (Rows == Cols).
//
// Errors: ErrNilMatrix if nil, ErrNonSquare if not square.
// Complexity: O(1).
func ValidateSquare(m *Dense) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}
	if m.r != m.c {
		return validatorErrorf("ValidateSquare", ErrNonSquare)
	}

	return nil
}

// ValidateSymmetric checks exact symmetry m[i][j] == m[j][i].
// Exact comparison is intended: adjacency entries are integer counts.
//
// Errors: ErrNilMatrix, ErrNonSquare, ErrAsymmetry.
// Complexity: O(n²/2).
func ValidateSymmetric(m *Dense) error {
	if err := ValidateSquare(m); err != nil {
		return err
	}
	n := m.r
	var i, j int
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			if m.data[i*n+j] != m.data[j*n+i] {
				return validatorErrorf(fmt.Sprintf("ValidateSymmetric(%d,%d)", i, j), ErrAsymmetry)
			}
		}
	}

	return nil
}

// ValidateNonNegativeIntegers checks that every entry is a finite integer >= 0.
//
// Errors: ErrNilMatrix, ErrNotIntegral.
// Complexity: O(r*c).
func ValidateNonNegativeIntegers(m *Dense) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}
	var bad error
	m.Do(func(i, j int, v float64) bool {
		if v < 0 || v != math.Trunc(v) {
			bad = validatorErrorf(fmt.Sprintf("ValidateNonNegativeIntegers(%d,%d)", i, j), ErrNotIntegral)
			return false
		}
		return true
	})

	return bad
}
