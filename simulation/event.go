// SPDX-License-Identifier: MIT
package simulation

import "github.com/katalvlaran/netsim/network"

// Status is the engine state machine position.
type Status int

const (
	// Ready: tables initialized, further events possible.
	Ready Status = iota
	// Absorbed: total propensity is zero; terminal.
	Absorbed
	// Failed: a step failed; terminal.
	Failed
)

// String returns the lower-case status name.
func (s Status) String() string {
	switch s {
	case Ready:
		return "ready"
	case Absorbed:
		return "absorbed"
	case Failed:
		return "failed"
	}
	return "unknown"
}

// Event describes one successful step.
type Event struct {
	Step            int                // 1-based index of this step
	Clock           float64            // clock after the step
	Dt              float64            // sampled waiting time
	Rule            int                // index of the fired rule
	RuleName        string             // name of the fired rule
	I, J            int                // fired node pair
	Applied         []network.Mutation // batch applied to the state
	TotalPropensity float64            // A0 after refresh
}

// Summary reports the outcome of Run.
type Summary struct {
	Steps      int     // steps performed by this Run
	TotalSteps int     // engine step count after Run
	Clock      float64 // clock after Run
	Status     Status
	Absorbed   bool
}
