// SPDX-License-Identifier: MIT
// Package: netsim/model
//
// errors.go — sentinel errors for model construction.
//
// Every error returned by Build for a rule or strategy problem matches
// interaction.ErrConstruction as well as the specific sentinel below.

package model

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/netsim/interaction"
)

var (
	// ErrNotInteraction indicates a nil element in the rule list.
	ErrNotInteraction = errors.New("model: rule is not an interaction")

	// ErrDuplicateRule indicates two rules sharing a name.
	ErrDuplicateRule = errors.New("model: duplicate rule name")

	// ErrNoRules indicates an empty rule list.
	ErrNoRules = errors.New("model: no rules")

	// ErrUnknownStrategy indicates an unsupported strategy name.
	ErrUnknownStrategy = errors.New("model: unknown strategy")
)

// constructionErrorf joins interaction.ErrConstruction with the cause.
func constructionErrorf(format string, cause error, args ...any) error {
	return fmt.Errorf("model: %s: %w: %w", fmt.Sprintf(format, args...), interaction.ErrConstruction, cause)
}
