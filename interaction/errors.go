// SPDX-License-Identifier: MIT
// Package: netsim/interaction
//
// errors.go — sentinel errors for rule construction.
//
// Every error returned by New matches ErrConstruction AND exactly one
// specific sentinel below under errors.Is. Construction errors are always
// fatal to model building and never retried.

package interaction

import (
	"errors"
	"fmt"
)

var (
	// ErrConstruction classifies every rule construction failure.
	ErrConstruction = errors.New("interaction: construction failed")

	// ErrEmptyName indicates a rule without a name.
	ErrEmptyName = errors.New("interaction: empty rule name")

	// ErrInvalidRate indicates a nil rate function.
	ErrInvalidRate = errors.New("interaction: rate function is nil")

	// ErrInvalidMapSignature indicates a nil map function.
	ErrInvalidMapSignature = errors.New("interaction: map function is nil")

	// ErrInvalidUpdateSignature indicates WithUpdate(nil).
	ErrInvalidUpdateSignature = errors.New("interaction: update function is nil")

	// ErrMissingBoundParameter indicates a required declared parameter
	// without a bound value.
	ErrMissingBoundParameter = errors.New("interaction: missing bound parameter")

	// ErrParameterMismatch indicates a bound value that differs from the
	// parameter's declared default.
	ErrParameterMismatch = errors.New("interaction: bound value differs from declared default")

	// ErrUnknownParameter indicates a bound value for an undeclared parameter.
	ErrUnknownParameter = errors.New("interaction: unknown bound parameter")

	// ErrDuplicateParameter indicates the same parameter declared twice.
	ErrDuplicateParameter = errors.New("interaction: duplicate parameter declaration")
)

// constructionErrorf joins ErrConstruction with the specific cause.
func constructionErrorf(rule, format string, cause error, args ...any) error {
	return fmt.Errorf("rule %q: %s: %w: %w", rule, fmt.Sprintf(format, args...), ErrConstruction, cause)
}
