// SPDX-License-Identifier: MIT
// Package: netsim/model
//
// model.go — composition root: state + ordered rules + engine.

package model

import (
	"context"
	"fmt"
	"reflect"
	"sort"

	"github.com/katalvlaran/netsim/interaction"
	"github.com/katalvlaran/netsim/network"
	"github.com/katalvlaran/netsim/simulation"
)

// Simulator is the engine surface a Model exposes.
type Simulator interface {
	Step() (simulation.Event, error)
	Run(ctx context.Context, stop simulation.StopCondition) (simulation.Summary, error)
	Clock() float64
	Steps() int
	Status() simulation.Status
	TotalPropensity() float64
}

// factory builds a Simulator for one strategy.
type factory func(s *network.State, rules []interaction.Rule, opts ...simulation.Option) (Simulator, error)

var strategies = map[string]factory{
	StrategyGillespieDirect: func(s *network.State, rules []interaction.Rule, opts ...simulation.Option) (Simulator, error) {
		e, err := simulation.New(s, rules, opts...)
		if err != nil {
			return nil, err
		}
		return e, nil
	},
}

// Strategies returns the supported strategy names, sorted.
func Strategies() []string {
	out := make([]string, 0, len(strategies))
	for name := range strategies {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// Model couples a network, its rules and the engine that evolves them.
type Model struct {
	state    *network.State
	rules    []interaction.Rule
	strategy string
	sim      Simulator
}

// Build validates the rules, constructs the network and instantiates the
// requested engine. Rule order is kept: it is the event-selection order.
//
// Errors:
//   - ErrNoRules, ErrNotInteraction, ErrDuplicateRule, ErrUnknownStrategy
//     (each also matching interaction.ErrConstruction).
//   - network errors from the initial matrices.
//   - simulation errors from the initial propensity sweep.
func Build(nodes, adj [][]float64, rules []interaction.Rule, opts ...Option) (*Model, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	mk, ok := strategies[cfg.strategy]
	if !ok {
		return nil, constructionErrorf("strategy %q", ErrUnknownStrategy, cfg.strategy)
	}
	if len(rules) == 0 {
		return nil, constructionErrorf("rules", ErrNoRules)
	}
	seen := make(map[string]int, len(rules))
	for k, r := range rules {
		if isNil(r) {
			return nil, constructionErrorf("rule #%d", ErrNotInteraction, k)
		}
		if prev, dup := seen[r.Name()]; dup {
			return nil, constructionErrorf("rules #%d and #%d named %q", ErrDuplicateRule, prev, k, r.Name())
		}
		seen[r.Name()] = k
	}

	state, err := network.New(nodes, adj)
	if err != nil {
		return nil, err
	}
	ordered := append([]interaction.Rule(nil), rules...)
	sim, err := mk(state, ordered, cfg.engineOpts...)
	if err != nil {
		return nil, fmt.Errorf("model: %s: %w", cfg.strategy, err)
	}

	return &Model{state: state, rules: ordered, strategy: cfg.strategy, sim: sim}, nil
}

// isNil catches both nil interfaces and typed nil pointers.
func isNil(r interaction.Rule) bool {
	if r == nil {
		return true
	}
	v := reflect.ValueOf(r)
	return v.Kind() == reflect.Pointer && v.IsNil()
}

// State returns the simulated network.
func (m *Model) State() *network.State { return m.state }

// Rules returns a copy of the rule list in selection order.
func (m *Model) Rules() []interaction.Rule {
	return append([]interaction.Rule(nil), m.rules...)
}

// Strategy returns the engine strategy name.
func (m *Model) Strategy() string { return m.strategy }

// Simulator returns the engine.
func (m *Model) Simulator() Simulator { return m.sim }

// Time returns the simulation clock.
func (m *Model) Time() float64 { return m.sim.Clock() }

// Step performs one event.
func (m *Model) Step() (simulation.Event, error) { return m.sim.Step() }

// Run steps until stop holds or the engine absorbs.
func (m *Model) Run(ctx context.Context, stop simulation.StopCondition) (simulation.Summary, error) {
	return m.sim.Run(ctx, stop)
}

// String dumps the node and adjacency matrices.
func (m *Model) String() string {
	return "System\n" + m.state.String()
}
