// Package interaction defines pairwise interaction rules for the simulation
// engine.
//
// A rule combines:
//
//   - a rate function  RateFunc(i, j, view, params) → propensity ≥ 0,
//   - a map function   MapFunc(i, j, view) → []network.Mutation,
//   - an optional update function UpdateFunc(view, applied) → Invalidation.
//
// Keyword parameters of the rate function are declared with WithParameters
// (Required / Optional) and bound with WithBound. New checks the contract once,
// at construction:
//
//	r, err := interaction.New("form", rate, add,
//		interaction.WithParameters(interaction.Required("k")),
//		interaction.WithBound("k", 0.5),
//		interaction.WithUpdate(interaction.TouchedUpdate()),
//	)
//
// An Invalidation is an explicit set of (rule, pair) keys rather than a dense
// boolean matrix, so sparse updates on large networks cost O(changes).
// Rules without an update function are recomputed in full after each firing.
package interaction
