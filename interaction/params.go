// SPDX-License-Identifier: MIT
package interaction

import "sort"

// Parameter declares one keyword parameter of a rate function.
type Parameter struct {
	Name       string
	Default    float64
	HasDefault bool
}

// Required declares a parameter that must be bound at construction.
func Required(name string) Parameter { return Parameter{Name: name} }

// Optional declares a parameter with a default. A bound value, if given,
// must equal the default.
func Optional(name string, def float64) Parameter {
	return Parameter{Name: name, Default: def, HasDefault: true}
}

// Params is the immutable set of bound values forwarded to every rate
// evaluation.
type Params struct {
	values map[string]float64
}

// Get returns the bound value of name, or 0 when undeclared.
// Construction guarantees every declared parameter is present.
func (p Params) Get(name string) float64 { return p.values[name] }

// Lookup returns the bound value of name and whether it exists.
func (p Params) Lookup(name string) (float64, bool) {
	v, ok := p.values[name]
	return v, ok
}

// Len returns the number of bound parameters.
func (p Params) Len() int { return len(p.values) }

// Names returns the bound parameter names in ascending order.
func (p Params) Names() []string {
	out := make([]string, 0, len(p.values))
	for k := range p.values {
		out = append(out, k)
	}
	sort.Strings(out)

	return out
}

// resolveParams applies the keyword-parameter contract:
//  1. each declared name appears once (ErrDuplicateParameter);
//  2. each bound name is declared (ErrUnknownParameter);
//  3. required names are bound (ErrMissingBoundParameter);
//  4. optional names bound to a value other than their default fail
//     (ErrParameterMismatch); unbound optional names take their default.
func resolveParams(rule string, decl []Parameter, bound map[string]float64) (Params, error) {
	declared := make(map[string]Parameter, len(decl))
	for _, d := range decl {
		if _, dup := declared[d.Name]; dup {
			return Params{}, constructionErrorf(rule, "parameter %q", ErrDuplicateParameter, d.Name)
		}
		declared[d.Name] = d
	}

	names := make([]string, 0, len(bound))
	for k := range bound {
		names = append(names, k)
	}
	sort.Strings(names) // deterministic error selection
	for _, k := range names {
		if _, ok := declared[k]; !ok {
			return Params{}, constructionErrorf(rule, "parameter %q", ErrUnknownParameter, k)
		}
	}

	values := make(map[string]float64, len(decl))
	for _, d := range decl {
		v, ok := bound[d.Name]
		switch {
		case !ok && !d.HasDefault:
			return Params{}, constructionErrorf(rule, "parameter %q", ErrMissingBoundParameter, d.Name)
		case !ok:
			values[d.Name] = d.Default
		case d.HasDefault && v != d.Default:
			return Params{}, constructionErrorf(rule, "parameter %q bound to %g, default %g",
				ErrParameterMismatch, d.Name, v, d.Default)
		default:
			values[d.Name] = v
		}
	}

	return Params{values: values}, nil
}
