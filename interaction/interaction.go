// SPDX-License-Identifier: MIT
// Package: netsim/interaction
//
// interaction.go — the Rule contract and its validated implementation.
//
// Contract:
//   • A Rule is pairwise (Arity == 2): every method takes an ordered node
//     pair (i, j) plus a read-only network.View.
//   • Propensity is pure and must be non-negative; the engine enforces it.
//   • Fire describes the transition and never mutates the state itself.
//   • Invalidated reports which entries became stale after a firing;
//     ok == false means "no update function: recompute all of this rule".
//   • An *Interaction is immutable after New returns.

package interaction

import "github.com/katalvlaran/netsim/network"

// Arity is the number of bodies per interaction.
const Arity = 2

// RateFunc computes the propensity of (i, j) from the state and bound params.
type RateFunc func(i, j int, s network.View, p Params) float64

// MapFunc returns the mutations produced by firing (i, j).
type MapFunc func(i, j int, s network.View) []network.Mutation

// UpdateFunc returns the propensity entries made stale by applied.
// Returning None() means "recompute nothing extra".
type UpdateFunc func(s network.View, applied []network.Mutation) Invalidation

// Rule is the pluggable interaction contract consumed by the engine.
type Rule interface {
	Name() string
	Propensity(i, j int, s network.View) float64
	Fire(i, j int, s network.View) []network.Mutation
	Invalidated(s network.View, applied []network.Mutation) (Invalidation, bool)
}

// Tracker is implemented by rules that can tell whether they carry an
// update function. Rules that do not implement it are treated as untracked.
type Tracker interface {
	HasUpdate() bool
}

// HasUpdate reports whether r declares an update function.
func HasUpdate(r Rule) bool {
	t, ok := r.(Tracker)
	return ok && t.HasUpdate()
}

// Interaction is the validated Rule built from a rate function, a map
// function and an optional update function.
type Interaction struct {
	name   string
	rate   RateFunc
	mapFn  MapFunc
	update UpdateFunc
	params Params
}

var _ Rule = (*Interaction)(nil)

// Option customizes New.
type Option func(*config)

type config struct {
	update    UpdateFunc
	updateSet bool
	decl      []Parameter
	bound     map[string]float64
}

// WithUpdate attaches an update function. WithUpdate(nil) makes New fail
// with ErrInvalidUpdateSignature.
func WithUpdate(fn UpdateFunc) Option {
	return func(c *config) {
		c.update = fn
		c.updateSet = true
	}
}

// WithParameters declares the keyword parameters of the rate function.
func WithParameters(decl ...Parameter) Option {
	return func(c *config) {
		c.decl = append(c.decl, decl...)
	}
}

// WithBound binds a value to a declared parameter.
func WithBound(name string, value float64) Option {
	return func(c *config) {
		if c.bound == nil {
			c.bound = make(map[string]float64)
		}
		c.bound[name] = value
	}
}

// WithBoundParams binds every entry of values (copied).
func WithBoundParams(values map[string]float64) Option {
	return func(c *config) {
		if c.bound == nil {
			c.bound = make(map[string]float64, len(values))
		}
		for k, v := range values {
			c.bound[k] = v
		}
	}
}

// New validates and builds an Interaction.
//
// Validation order (first failure wins):
//
//	name → rate → map → update → parameters
//
// Errors: ErrConstruction joined with ErrEmptyName, ErrInvalidRate,
// ErrInvalidMapSignature, ErrInvalidUpdateSignature, ErrDuplicateParameter,
// ErrUnknownParameter, ErrMissingBoundParameter or ErrParameterMismatch.
func New(name string, rate RateFunc, mapFn MapFunc, opts ...Option) (*Interaction, error) {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}

	if name == "" {
		return nil, constructionErrorf(name, "name", ErrEmptyName)
	}
	if rate == nil {
		return nil, constructionErrorf(name, "rate", ErrInvalidRate)
	}
	if mapFn == nil {
		return nil, constructionErrorf(name, "map", ErrInvalidMapSignature)
	}
	if cfg.updateSet && cfg.update == nil {
		return nil, constructionErrorf(name, "update", ErrInvalidUpdateSignature)
	}
	params, err := resolveParams(name, cfg.decl, cfg.bound)
	if err != nil {
		return nil, err
	}

	return &Interaction{
		name:   name,
		rate:   rate,
		mapFn:  mapFn,
		update: cfg.update,
		params: params,
	}, nil
}

// Name returns the rule name.
func (r *Interaction) Name() string { return r.name }

// Params returns the bound parameters.
func (r *Interaction) Params() Params { return r.params }

// HasUpdate reports whether an update function is attached.
func (r *Interaction) HasUpdate() bool { return r.update != nil }

// Propensity evaluates the rate function with the bound parameters.
func (r *Interaction) Propensity(i, j int, s network.View) float64 {
	return r.rate(i, j, s, r.params)
}

// Fire returns the mutations of firing (i, j).
func (r *Interaction) Fire(i, j int, s network.View) []network.Mutation {
	return r.mapFn(i, j, s)
}

// Invalidated returns the update function's result, or ok == false when the
// rule has none.
func (r *Interaction) Invalidated(s network.View, applied []network.Mutation) (Invalidation, bool) {
	if r.update == nil {
		return Invalidation{}, false
	}

	return r.update(s, applied), true
}
