// SPDX-License-Identifier: MIT
// Package: netsim/builder
//
// impl_simple.go — deterministic topologies: Empty, Path, Cycle, Star,
// Wheel, Complete.
//
// Node roles:
//   • Path/Cycle visit nodes 0..n-1 in order.
//   • Star and Wheel use node 0 as the hub; the rim is 1..n-1.
//
// Complexity: O(n) edges, except Complete with O(n²).

package builder

import (
	"fmt"

	"github.com/katalvlaran/netsim/matrix"
)

const (
	methodPath     = "Path"
	methodCycle    = "Cycle"
	methodStar     = "Star"
	methodWheel    = "Wheel"
	methodComplete = "Complete"

	minPathNodes  = 2
	minCycleNodes = 3
	minStarNodes  = 2
	minWheelNodes = 4 // rim must be a cycle
)

// Empty adds nothing.
func Empty() Constructor {
	return func(*matrix.Dense, config) error { return nil }
}

// Path connects i–(i+1) for i in 0..n-2.
func Path() Constructor {
	return func(adj *matrix.Dense, _ config) error {
		n := adj.Rows()
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewNodes)
		}
		for i := 0; i+1 < n; i++ {
			if err := connect(adj, i, i+1); err != nil {
				return fmt.Errorf("%s: %w", methodPath, err)
			}
		}
		return nil
	}
}

// Cycle is Path plus the closing edge (n-1)–0.
func Cycle() Constructor {
	return func(adj *matrix.Dense, cfg config) error {
		n := adj.Rows()
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewNodes)
		}
		if err := Path()(adj, cfg); err != nil {
			return fmt.Errorf("%s: %w", methodCycle, err)
		}
		if err := connect(adj, n-1, 0); err != nil {
			return fmt.Errorf("%s: %w", methodCycle, err)
		}
		return nil
	}
}

// Star connects hub 0 to every other node.
func Star() Constructor {
	return func(adj *matrix.Dense, _ config) error {
		n := adj.Rows()
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewNodes)
		}
		for i := 1; i < n; i++ {
			if err := connect(adj, 0, i); err != nil {
				return fmt.Errorf("%s: %w", methodStar, err)
			}
		}
		return nil
	}
}

// Wheel is Star plus a rim cycle over 1..n-1.
func Wheel() Constructor {
	return func(adj *matrix.Dense, cfg config) error {
		n := adj.Rows()
		if n < minWheelNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodWheel, n, minWheelNodes, ErrTooFewNodes)
		}
		if err := Star()(adj, cfg); err != nil {
			return fmt.Errorf("%s: %w", methodWheel, err)
		}
		for i := 1; i < n; i++ {
			next := i + 1
			if next == n {
				next = 1
			}
			if err := connect(adj, i, next); err != nil {
				return fmt.Errorf("%s: %w", methodWheel, err)
			}
		}
		return nil
	}
}

// Complete connects every unordered pair once.
func Complete() Constructor {
	return func(adj *matrix.Dense, _ config) error {
		n := adj.Rows()
		var i, j int
		for i = 0; i < n; i++ {
			for j = i + 1; j < n; j++ {
				if err := connect(adj, i, j); err != nil {
					return fmt.Errorf("%s: %w", methodComplete, err)
				}
			}
		}
		return nil
	}
}
