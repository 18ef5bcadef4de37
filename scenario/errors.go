// SPDX-License-Identifier: MIT
package scenario

import "errors"

var (
	// ErrNoNodes indicates a scenario without node data.
	ErrNoNodes = errors.New("scenario: no nodes")

	// ErrNoRules indicates a scenario without rules.
	ErrNoRules = errors.New("scenario: no rules")

	// ErrUnknownKind indicates a rule kind missing from the catalog.
	ErrUnknownKind = errors.New("scenario: unknown rule kind")

	// ErrInvalidStop indicates a negative or non-finite stop bound.
	ErrInvalidStop = errors.New("scenario: invalid stop condition")

	// ErrConflictingAdjacency indicates both an adjacency and a topology.
	ErrConflictingAdjacency = errors.New("scenario: adjacency and topology are exclusive")

	// ErrInvalidResumInterval indicates a negative re-summation interval.
	ErrInvalidResumInterval = errors.New("scenario: invalid resum interval")
)
