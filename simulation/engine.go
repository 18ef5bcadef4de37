// SPDX-License-Identifier: MIT
// Package: netsim/simulation
//
// engine.go — Gillespie direct-method engine: construction, tables, accessors.
//
// Ownership:
//   • The engine owns its propensity tables (one N×N *matrix.Dense per rule).
//   • The state and the rules are borrowed for the engine's lifetime; nothing
//     else may mutate the state while the engine runs.
// Concurrency:
//   • Single-threaded. Steps are atomic; callers stop between steps.

package simulation

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"math/rand"

	"github.com/katalvlaran/netsim/interaction"
	"github.com/katalvlaran/netsim/internal/logging"
	"github.com/katalvlaran/netsim/matrix"
	"github.com/katalvlaran/netsim/network"
)

// Engine runs the direct method over one state and an ordered rule list.
type Engine struct {
	state   *network.State
	rules   []interaction.Rule
	index   map[string]int // rule name → position
	tracked []bool         // rule declares an update function

	tables []*matrix.Dense // propensity per rule, row-major (i, j)
	totals []float64       // Σ table[r]
	a0     float64         // Σ totals

	clock      float64
	steps      int
	status     Status
	cause      error
	sinceResum int

	rng        *rand.Rand
	resumEvery int
	observers  []func(Event)
	log        *slog.Logger
}

// New builds an engine and evaluates every rule on every ordered pair i ≠ j.
//
// Errors:
//   - ErrNilState, ErrNilRule, ErrDuplicateRule.
//   - ErrNegativePropensity / ErrNonFinitePropensity from the initial sweep.
//
// Complexity: O(R·N²) rate evaluations.
func New(state *network.State, rules []interaction.Rule, opts ...Option) (*Engine, error) {
	if state == nil {
		return nil, ErrNilState
	}
	cfg := defaultEngineConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.rng == nil {
		cfg.rng = rngFromSeed(0)
	}
	if cfg.logger == nil {
		cfg.logger = logging.NewNop()
	}

	e := &Engine{
		state:      state,
		rules:      make([]interaction.Rule, len(rules)),
		index:      make(map[string]int, len(rules)),
		tracked:    make([]bool, len(rules)),
		tables:     make([]*matrix.Dense, len(rules)),
		totals:     make([]float64, len(rules)),
		rng:        cfg.rng,
		resumEvery: cfg.resumEvery,
		observers:  cfg.observers,
		log:        cfg.logger,
	}
	copy(e.rules, rules)

	n := state.Size()
	for r, rule := range e.rules {
		if rule == nil {
			return nil, fmt.Errorf("rule #%d: %w", r, ErrNilRule)
		}
		if rule.Name() == interaction.Self {
			return nil, fmt.Errorf("rule #%d: %w", r, interaction.ErrEmptyName)
		}
		if prev, dup := e.index[rule.Name()]; dup {
			return nil, fmt.Errorf("rules #%d and #%d named %q: %w", prev, r, rule.Name(), ErrDuplicateRule)
		}
		e.index[rule.Name()] = r
		e.tracked[r] = interaction.HasUpdate(rule)

		table, err := matrix.NewDense(n, n)
		if err != nil {
			return nil, err
		}
		e.tables[r] = table
		if err = e.refreshRule(r); err != nil {
			return nil, err
		}
	}
	e.resum()

	e.log.Debug("engine initialized",
		"nodes", n, "rules", len(e.rules), "total_propensity", e.a0)

	return e, nil
}

// Clock returns the current simulation time.
func (e *Engine) Clock() float64 { return e.clock }

// Steps returns the number of successful steps.
func (e *Engine) Steps() int { return e.steps }

// Status returns the state-machine position.
func (e *Engine) Status() Status { return e.status }

// Err returns the cause of failure when Status() == Failed.
func (e *Engine) Err() error { return e.cause }

// TotalPropensity returns A0.
func (e *Engine) TotalPropensity() float64 { return e.a0 }

// State returns the read-only view of the simulated network.
func (e *Engine) State() network.View { return e.state }

// RuleNames returns rule names in iteration order.
func (e *Engine) RuleNames() []string {
	out := make([]string, len(e.rules))
	for r, rule := range e.rules {
		out[r] = rule.Name()
	}
	return out
}

// Propensity returns the stored propensity of rule r for (i, j).
func (e *Engine) Propensity(r, i, j int) (float64, error) {
	if r < 0 || r >= len(e.tables) {
		return 0, fmt.Errorf("rule %d: %w", r, ErrOutOfRange)
	}
	v, err := e.tables[r].At(i, j)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrOutOfRange, err)
	}
	return v, nil
}

// Run steps until stop holds, the engine absorbs, a step fails, or ctx is
// done. ctx is checked between steps only; a step is never interrupted.
// Absorption is not an error: Summary.Absorbed is set and err is nil.
func (e *Engine) Run(ctx context.Context, stop StopCondition) (Summary, error) {
	if stop == nil {
		stop = Never()
	}
	start := e.steps
	summary := func() Summary {
		return Summary{
			Steps:      e.steps - start,
			TotalSteps: e.steps,
			Clock:      e.clock,
			Status:     e.status,
			Absorbed:   e.status == Absorbed,
		}
	}

	for {
		if err := ctx.Err(); err != nil {
			return summary(), err
		}
		if e.status == Ready && stop.Done(e.clock, e.steps, e.state) {
			return summary(), nil
		}
		if _, err := e.Step(); err != nil {
			if errors.Is(err, ErrAbsorbed) {
				return summary(), nil
			}
			return summary(), err
		}
	}
}

// checkPropensity enforces the rate-function contract for one value.
func (e *Engine) checkPropensity(r, i, j int, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Errorf("rule %q (%d,%d) = %g: %w", e.rules[r].Name(), i, j, v, ErrNonFinitePropensity)
	}
	if v < 0 {
		return fmt.Errorf("rule %q (%d,%d) = %g: %w", e.rules[r].Name(), i, j, v, ErrNegativePropensity)
	}
	return nil
}

// evaluate recomputes entry (r, i, j) and returns the change in propensity.
// The table is left untouched on error.
func (e *Engine) evaluate(r, i, j int) (float64, error) {
	v := e.rules[r].Propensity(i, j, e.state)
	if err := e.checkPropensity(r, i, j, v); err != nil {
		return 0, err
	}
	old, err := e.tables[r].At(i, j)
	if err != nil {
		return 0, err
	}
	if err = e.tables[r].Set(i, j, v); err != nil {
		return 0, err
	}
	return v - old, nil
}

// refreshRule recomputes every off-diagonal entry of rule r and re-derives
// its total exactly. A0 is adjusted by the change of the rule total.
func (e *Engine) refreshRule(r int) error {
	n := e.state.Size()
	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if i == j {
				continue
			}
			if _, err := e.evaluate(r, i, j); err != nil {
				return err
			}
		}
	}
	total := e.tables[r].Sum()
	e.a0 += total - e.totals[r]
	e.totals[r] = total

	return nil
}

// resum re-derives every rule total and A0 from the tables.
func (e *Engine) resum() {
	var a0 float64
	for r, table := range e.tables {
		e.totals[r] = table.Sum()
		a0 += e.totals[r]
	}
	e.a0 = a0
	e.sinceResum = 0
}

// fail moves the engine to Failed and records the cause.
func (e *Engine) fail(err error) error {
	e.status = Failed
	e.cause = err
	e.log.Error("step failed", "step", e.steps+1, "clock", e.clock, "err", err)
	return err
}
