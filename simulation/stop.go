// SPDX-License-Identifier: MIT
package simulation

import "github.com/katalvlaran/netsim/network"

// StopCondition decides, before each step of Run, whether to stop.
// steps is the engine's total step count (not the count of the current Run).
type StopCondition interface {
	Done(clock float64, steps int, s network.View) bool
}

// StopFunc adapts a function to StopCondition.
type StopFunc func(clock float64, steps int, s network.View) bool

// Done calls f.
func (f StopFunc) Done(clock float64, steps int, s network.View) bool { return f(clock, steps, s) }

// MaxTime stops once the clock has reached t. The event that crosses t is
// applied; the engine never truncates an event.
func MaxTime(t float64) StopCondition {
	return StopFunc(func(clock float64, _ int, _ network.View) bool { return clock >= t })
}

// MaxSteps stops once the engine has performed n steps in total.
func MaxSteps(n int) StopCondition {
	return StopFunc(func(_ float64, steps int, _ network.View) bool { return steps >= n })
}

// Any stops as soon as one of conds does. Nil entries are ignored.
func Any(conds ...StopCondition) StopCondition {
	return StopFunc(func(clock float64, steps int, s network.View) bool {
		for _, c := range conds {
			if c != nil && c.Done(clock, steps, s) {
				return true
			}
		}
		return false
	})
}

// Never runs until absorption or failure.
func Never() StopCondition {
	return StopFunc(func(float64, int, network.View) bool { return false })
}
