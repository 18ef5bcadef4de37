// SPDX-License-Identifier: MIT
package interaction

import (
	"sort"

	"github.com/katalvlaran/netsim/network"
)

// Self names the rule that fired in an Invalidation key.
const Self = ""

// Pair is an ordered node pair (I, J).
type Pair struct{ I, J int }

// Key identifies one propensity entry: a rule (by name; Self for the rule
// that fired) and an ordered node pair.
type Key struct {
	Rule string
	Pair Pair
}

// Invalidation is an explicit set of stale propensity entries returned by an
// update function. The zero value is the empty set: "recompute nothing extra".
type Invalidation struct {
	keys map[Key]struct{}
}

// None returns the empty invalidation.
func None() Invalidation { return Invalidation{} }

// Add marks the entry (i, j) of the firing rule as stale.
func (inv *Invalidation) Add(i, j int) { inv.AddFor(Self, i, j) }

// AddFor marks the entry (i, j) of the named rule as stale.
func (inv *Invalidation) AddFor(rule string, i, j int) {
	if inv.keys == nil {
		inv.keys = make(map[Key]struct{})
	}
	inv.keys[Key{Rule: rule, Pair: Pair{I: i, J: j}}] = struct{}{}
}

// Has reports whether the entry is marked.
func (inv Invalidation) Has(rule string, i, j int) bool {
	_, ok := inv.keys[Key{Rule: rule, Pair: Pair{I: i, J: j}}]
	return ok
}

// Len returns the number of marked entries.
func (inv Invalidation) Len() int { return len(inv.keys) }

// Keys returns the marked entries ordered by rule name, then row-major pair.
func (inv Invalidation) Keys() []Key {
	out := make([]Key, 0, len(inv.keys))
	for k := range inv.keys {
		out = append(out, k)
	}
	sort.Slice(out, func(a, b int) bool {
		ka, kb := out[a], out[b]
		if ka.Rule != kb.Rule {
			return ka.Rule < kb.Rule
		}
		if ka.Pair.I != kb.Pair.I {
			return ka.Pair.I < kb.Pair.I
		}
		return ka.Pair.J < kb.Pair.J
	})

	return out
}

// PairsTouching marks every ordered pair (k, x) and (x, k), x ≠ k, for each
// node k in nodes, on each named rule (Self when rules is empty).
// Complexity: O(len(nodes)·n·len(rules)).
func PairsTouching(n int, nodes []int, rules ...string) Invalidation {
	if len(rules) == 0 {
		rules = []string{Self}
	}
	var inv Invalidation
	for _, k := range nodes {
		if k < 0 || k >= n {
			continue
		}
		for x := 0; x < n; x++ {
			if x == k {
				continue
			}
			for _, r := range rules {
				inv.AddFor(r, k, x)
				inv.AddFor(r, x, k)
			}
		}
	}

	return inv
}

// TouchedUpdate returns an UpdateFunc that invalidates every pair incident to
// a node touched by the applied batch. It is exact for rules whose rate for
// (i, j) reads only adjacency[i][j] and the properties of i and j.
func TouchedUpdate(rules ...string) UpdateFunc {
	return func(s network.View, applied []network.Mutation) Invalidation {
		return PairsTouching(s.Size(), network.Touched(applied), rules...)
	}
}
