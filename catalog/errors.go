// SPDX-License-Identifier: MIT
package catalog

import "errors"

var (
	// ErrUnknownKind indicates a rule kind missing from the catalog.
	ErrUnknownKind = errors.New("catalog: unknown rule kind")

	// ErrInvalidParameter indicates a bound value outside its domain
	// (negative or non-finite rate, non-integral or negative dim).
	ErrInvalidParameter = errors.New("catalog: invalid parameter value")
)
