// SPDX-License-Identifier: MIT
// Package: netsim/simulation
//
// step.go — one iteration of the direct method.
//
// Steps:
//  1. A0 ≤ 0 (after an exact re-summation) ⇒ Absorbed.
//  2. dt = −ln(u1)/A0.
//  3. target = u2·A0; scan rules in order, then (i, j) row-major, and pick
//     the first positive entry whose cumulative sum reaches target.
//  4. Fire the rule and apply the batch to the state.
//  5. Collect stale entries (see invalidate).
//  6. Recompute them, adjusting A0 incrementally.
//  7. Every resumEvery steps, re-derive A0 from the tables.

package simulation

import (
	"fmt"

	"github.com/katalvlaran/netsim/interaction"
	"github.com/katalvlaran/netsim/network"
)

// Step performs one event. On ErrAbsorbed the state and the clock are
// unchanged. Any other error moves the engine to Failed.
func (e *Engine) Step() (Event, error) {
	switch e.status {
	case Failed:
		return Event{}, fmt.Errorf("%w: %w", ErrEngineFailed, e.cause)
	case Absorbed:
		return Event{}, ErrAbsorbed
	}

	if e.a0 <= 0 {
		e.resum() // never absorb on accumulated rounding error alone
		if e.a0 <= 0 {
			return Event{}, e.absorb()
		}
	}

	dt := exponential(e.rng, e.a0)
	target := openUnit(e.rng) * e.a0

	r, i, j, ok := e.selectEntry(target)
	if !ok {
		// Only reachable when A0 drifted above an all-zero table set.
		e.resum()
		return Event{}, e.absorb()
	}

	rule := e.rules[r]
	batch := rule.Fire(i, j, e.state)
	if err := e.state.Apply(batch); err != nil {
		return Event{}, e.fail(fmt.Errorf("step %d: rule %q (%d,%d): %w", e.steps+1, rule.Name(), i, j, err))
	}
	e.clock += dt
	e.steps++

	if err := e.invalidate(r, batch); err != nil {
		return Event{}, e.fail(fmt.Errorf("step %d: %w", e.steps, err))
	}

	e.sinceResum++
	if e.sinceResum >= e.resumEvery {
		e.resum()
	}

	ev := Event{
		Step:            e.steps,
		Clock:           e.clock,
		Dt:              dt,
		Rule:            r,
		RuleName:        rule.Name(),
		I:               i,
		J:               j,
		Applied:         batch,
		TotalPropensity: e.a0,
	}
	e.log.Debug("step",
		"step", ev.Step, "clock", ev.Clock, "rule", ev.RuleName, "i", i, "j", j, "a0", e.a0)
	for _, obs := range e.observers {
		obs(ev)
	}

	return ev, nil
}

// absorb moves the engine to the terminal Absorbed status.
func (e *Engine) absorb() error {
	e.status = Absorbed
	e.log.Info("absorbing state reached", "steps", e.steps, "clock", e.clock)
	return ErrAbsorbed
}

// selectEntry scans cumulative propensities in rule order, then row-major
// (i, j), and returns the first positive entry reaching target. Rule totals
// let whole tables be skipped. If rounding leaves target unmet, the last
// positive entry overall is returned.
func (e *Engine) selectEntry(target float64) (r, i, j int, ok bool) {
	var cum float64

	for k, table := range e.tables {
		if e.totals[k] <= 0 {
			continue
		}
		if cum+e.totals[k] < target {
			cum += e.totals[k]
			continue
		}
		table.Do(func(a, b int, v float64) bool {
			if v <= 0 {
				return true
			}
			cum += v
			if cum >= target {
				r, i, j, ok = k, a, b, true
				return false
			}
			return true
		})
		if ok {
			return r, i, j, true
		}
	}

	return e.lastPositive()
}

// lastPositive returns the last positive entry in scan order.
func (e *Engine) lastPositive() (r, i, j int, ok bool) {
	for k, table := range e.tables {
		table.Do(func(a, b int, v float64) bool {
			if v > 0 {
				r, i, j, ok = k, a, b, true
			}
			return true
		})
	}

	return r, i, j, ok
}

// invalidate refreshes the entries made stale by the fired rule's batch.
//
// Policy:
//   - every rule without an update function is recomputed in full;
//   - when the fired rule has no update function it names no keys at all,
//     so every rule is recomputed in full;
//   - otherwise exactly the keys it names are recomputed (Self names the
//     fired rule); keys of rules already refreshed in full are skipped.
func (e *Engine) invalidate(fired int, batch []network.Mutation) error {
	full := make([]bool, len(e.rules))
	for k := range e.rules {
		full[k] = !e.tracked[k]
	}

	inv, ok := e.rules[fired].Invalidated(e.state, batch)
	if !ok {
		for k := range full {
			full[k] = true
		}
	}

	for k := range e.rules {
		if full[k] {
			if err := e.refreshRule(k); err != nil {
				return err
			}
		}
	}
	if !ok {
		return nil
	}

	n := e.state.Size()
	for _, key := range inv.Keys() {
		k := fired
		if key.Rule != interaction.Self {
			idx, known := e.index[key.Rule]
			if !known {
				return fmt.Errorf("rule %q: %w", key.Rule, ErrUnknownRule)
			}
			k = idx
		}
		if full[k] {
			continue
		}
		p := key.Pair
		if p.I == p.J || p.I < 0 || p.J < 0 || p.I >= n || p.J >= n {
			return fmt.Errorf("rule %q pair (%d,%d): %w", e.rules[k].Name(), p.I, p.J, ErrInvalidKey)
		}
		delta, err := e.evaluate(k, p.I, p.J)
		if err != nil {
			return err
		}
		e.totals[k] += delta
		e.a0 += delta
	}

	return nil
}
