// SPDX-License-Identifier: MIT
// Package: netsim/catalog
//
// api.go — public entry points: Config, Constructor, Lookup.
//
// Contract:
//   • Every catalog rule is local: the propensity of (i, j) reads only
//     adjacency[i][j] and the properties of i and j.
//   • Hence TouchedUpdate over the rule itself plus Config.Dependents is an
//     exact invalidation; list every other tracked rule of the model there.
//   • Parameters are bound as declared interaction parameters; "dim"
//     defaults to 0 when absent from Config.Params.

package catalog

import (
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/netsim/interaction"
)

// Kind names understood by Lookup.
const (
	KindEdgeFormation = "edge_formation"
	KindEdgeDecay     = "edge_decay"
	KindContagion     = "contagion"
	KindVoter         = "voter"
)

// Parameter names.
const (
	ParamRate = "rate"
	ParamBeta = "beta"
	ParamDim  = "dim"
)

// Config parameterizes one catalog rule.
type Config struct {
	Name       string             // rule name; defaults to the kind
	Params     map[string]float64 // bound parameter values
	Dependents []string           // other rules whose pairs go stale with ours
}

// Constructor builds one catalog rule.
type Constructor func(cfg Config) (*interaction.Interaction, error)

var registry = map[string]Constructor{
	KindEdgeFormation: EdgeFormation,
	KindEdgeDecay:     EdgeDecay,
	KindContagion:     Contagion,
	KindVoter:         Voter,
}

// Lookup returns the constructor registered for kind.
func Lookup(kind string) (Constructor, error) {
	c, ok := registry[kind]
	if !ok {
		return nil, fmt.Errorf("catalog: %q: %w", kind, ErrUnknownKind)
	}
	return c, nil
}

// Kinds returns the registered kinds, sorted.
func Kinds() []string {
	out := make([]string, 0, len(registry))
	for k := range registry {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// build assembles a rule with the shared catalog options.
func build(kind string, cfg Config, decl []interaction.Parameter,
	rate interaction.RateFunc, mapFn interaction.MapFunc) (*interaction.Interaction, error) {
	name := cfg.Name
	if name == "" {
		name = kind
	}

	bound := make(map[string]float64, len(cfg.Params)+1)
	for k, v := range cfg.Params {
		bound[k] = v
	}
	for _, d := range decl {
		if d.Name == ParamDim {
			if _, ok := bound[ParamDim]; !ok {
				bound[ParamDim] = 0
			}
		}
	}
	if err := checkBound(name, bound); err != nil {
		return nil, err
	}

	invalidates := append([]string{interaction.Self}, cfg.Dependents...)

	return interaction.New(name, rate, mapFn,
		interaction.WithParameters(decl...),
		interaction.WithBoundParams(bound),
		interaction.WithUpdate(interaction.TouchedUpdate(invalidates...)),
	)
}

// checkBound validates the domain of known parameter values. Unknown names
// are left to interaction.New.
func checkBound(rule string, bound map[string]float64) error {
	for _, k := range []string{ParamRate, ParamBeta} {
		if v, ok := bound[k]; ok && (v < 0 || math.IsNaN(v) || math.IsInf(v, 0)) {
			return fmt.Errorf("catalog: rule %q: %s = %g: %w", rule, k, v, ErrInvalidParameter)
		}
	}
	if v, ok := bound[ParamDim]; ok && (v < 0 || v != math.Trunc(v) || math.IsInf(v, 0)) {
		return fmt.Errorf("catalog: rule %q: %s = %g: %w", rule, ParamDim, v, ErrInvalidParameter)
	}
	return nil
}
