// SPDX-License-Identifier: MIT
// Package: netsim/scenario
//
// scenario.go — declarative simulation setups loaded from YAML (or JSON).

package scenario

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/netsim/builder"
	"github.com/katalvlaran/netsim/catalog"
	"github.com/katalvlaran/netsim/interaction"
	"github.com/katalvlaran/netsim/model"
	"github.com/katalvlaran/netsim/network"
	"github.com/katalvlaran/netsim/simulation"
)

// Scenario is one simulation setup.
type Scenario struct {
	Name          string                `yaml:"name" json:"name"`
	Seed          int64                 `yaml:"seed" json:"seed"`
	Strategy      string                `yaml:"strategy" json:"strategy"`
	ResumInterval int                   `yaml:"resum_interval" json:"resum_interval"`
	Nodes         [][]float64           `yaml:"nodes" json:"nodes"`
	Adjacency     [][]float64           `yaml:"adjacency" json:"adjacency"`
	Topology      *builder.Spec         `yaml:"topology" json:"topology"`
	Setup         []network.Instruction `yaml:"setup" json:"setup"`
	Stop          Stop                  `yaml:"stop" json:"stop"`
	Rules         []Rule                `yaml:"rules" json:"rules"`
}

// Stop bounds a run. Nil fields are unbounded; with both nil the run lasts
// until absorption.
type Stop struct {
	MaxTime  *float64 `yaml:"max_time" json:"max_time"`
	MaxSteps *int     `yaml:"max_steps" json:"max_steps"`
}

// Rule selects a catalog rule by kind.
type Rule struct {
	Kind   string             `yaml:"kind" json:"kind"`
	Name   string             `yaml:"name" json:"name"`
	Params map[string]float64 `yaml:"params" json:"params"`
}

// RuleName returns the rule name, defaulting to its kind.
func (r Rule) RuleName() string {
	if r.Name != "" {
		return r.Name
	}
	return r.Kind
}

// Load reads and parses the scenario at path.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("scenario: read %s: %w", path, err)
	}
	sc, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return sc, nil
}

// Parse decodes a YAML (or JSON) scenario and validates it.
// Unknown fields are rejected.
func Parse(data []byte) (*Scenario, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var sc Scenario
	if err := dec.Decode(&sc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrNoNodes
		}
		return nil, fmt.Errorf("scenario: parse: %w", err)
	}
	if err := sc.Validate(); err != nil {
		return nil, err
	}
	return &sc, nil
}

// Validate checks what can be checked without building the model: node
// data, stop bounds and rule kinds. Matrix shapes and rule parameters are
// checked by Build.
func (sc *Scenario) Validate() error {
	if len(sc.Nodes) == 0 || len(sc.Nodes[0]) == 0 {
		return ErrNoNodes
	}
	if len(sc.Rules) == 0 {
		return ErrNoRules
	}
	if t := sc.Stop.MaxTime; t != nil && (*t < 0 || math.IsNaN(*t) || math.IsInf(*t, 0)) {
		return fmt.Errorf("scenario: max_time = %g: %w", *t, ErrInvalidStop)
	}
	if n := sc.Stop.MaxSteps; n != nil && *n < 0 {
		return fmt.Errorf("scenario: max_steps = %d: %w", *n, ErrInvalidStop)
	}
	if sc.Topology != nil {
		if sc.Adjacency != nil {
			return ErrConflictingAdjacency
		}
		if _, err := builder.Lookup(*sc.Topology); err != nil {
			return fmt.Errorf("scenario: topology: %w", err)
		}
	}
	if sc.ResumInterval < 0 {
		return fmt.Errorf("scenario: resum_interval = %d: %w", sc.ResumInterval, ErrInvalidResumInterval)
	}
	for k, r := range sc.Rules {
		if _, err := catalog.Lookup(r.Kind); err != nil {
			return fmt.Errorf("scenario: rule #%d: %w: %w", k, ErrUnknownKind, err)
		}
	}
	return nil
}

// Build constructs the model. Setup instructions are applied to the initial
// network before the engine evaluates any propensity. opts are appended
// after the scenario's own engine options, so they take precedence.
func (sc *Scenario) Build(opts ...simulation.Option) (*model.Model, error) {
	if err := sc.Validate(); err != nil {
		return nil, err
	}

	nodes, adj, err := sc.initial()
	if err != nil {
		return nil, err
	}

	rules, err := sc.rules()
	if err != nil {
		return nil, err
	}

	engineOpts := []simulation.Option{simulation.WithSeed(sc.Seed)}
	if sc.ResumInterval > 0 {
		engineOpts = append(engineOpts, simulation.WithResumInterval(sc.ResumInterval))
	}
	engineOpts = append(engineOpts, opts...)

	buildOpts := []model.Option{model.WithEngineOptions(engineOpts...)}
	if sc.Strategy != "" {
		buildOpts = append(buildOpts, model.WithStrategy(sc.Strategy))
	}

	return model.Build(nodes, adj, rules, buildOpts...)
}

// initial returns the node and adjacency matrices after the topology is
// generated and the setup batch applied.
func (sc *Scenario) initial() (nodes, adj [][]float64, err error) {
	adj = sc.Adjacency
	if sc.Topology != nil {
		con, err := builder.Lookup(*sc.Topology)
		if err != nil {
			return nil, nil, fmt.Errorf("scenario: topology: %w", err)
		}
		adj, err = builder.Rows(len(sc.Nodes), []builder.Option{builder.WithSeed(sc.Seed)}, con)
		if err != nil {
			return nil, nil, fmt.Errorf("scenario: topology: %w", err)
		}
	}
	if len(sc.Setup) == 0 {
		return sc.Nodes, adj, nil
	}
	batch, err := network.DecodeBatch(sc.Setup)
	if err != nil {
		return nil, nil, fmt.Errorf("scenario: setup: %w", err)
	}
	state, err := network.New(sc.Nodes, adj)
	if err != nil {
		return nil, nil, err
	}
	if err = state.Apply(batch); err != nil {
		return nil, nil, fmt.Errorf("scenario: setup: %w", err)
	}
	return state.Nodes().ToRows(), state.Adjacency().ToRows(), nil
}

// rules builds the catalog rules. Each rule lists every other rule as a
// dependent so cross-rule invalidation stays exact.
func (sc *Scenario) rules() ([]interaction.Rule, error) {
	names := make([]string, len(sc.Rules))
	for k, r := range sc.Rules {
		names[k] = r.RuleName()
	}

	out := make([]interaction.Rule, 0, len(sc.Rules))
	for k, r := range sc.Rules {
		ctor, err := catalog.Lookup(r.Kind)
		if err != nil {
			return nil, fmt.Errorf("scenario: rule #%d: %w: %w", k, ErrUnknownKind, err)
		}
		deps := make([]string, 0, len(names)-1)
		for m, name := range names {
			if m != k {
				deps = append(deps, name)
			}
		}
		rule, err := ctor(catalog.Config{Name: r.RuleName(), Params: r.Params, Dependents: deps})
		if err != nil {
			return nil, fmt.Errorf("scenario: rule %q: %w", r.RuleName(), err)
		}
		out = append(out, rule)
	}
	return out, nil
}

// StopCondition returns the stop bounds as a simulation.StopCondition.
func (sc *Scenario) StopCondition() simulation.StopCondition {
	var conds []simulation.StopCondition
	if sc.Stop.MaxTime != nil {
		conds = append(conds, simulation.MaxTime(*sc.Stop.MaxTime))
	}
	if sc.Stop.MaxSteps != nil {
		conds = append(conds, simulation.MaxSteps(*sc.Stop.MaxSteps))
	}
	if len(conds) == 0 {
		return simulation.Never()
	}
	return simulation.Any(conds...)
}
