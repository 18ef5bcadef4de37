// Package simulation implements Gillespie's stochastic simulation algorithm
// (direct method) over a network.State and an ordered list of
// interaction.Rule values.
//
// Overview:
//
//   - The engine keeps one N×N propensity table per rule, evaluated on every
//     ordered pair i ≠ j, and the total propensity A0.
//   - Each Step draws dt = −ln(u1)/A0, picks the entry where the cumulative
//     propensity (rule order, then row-major pairs) first reaches u2·A0,
//     applies the rule's mutations and refreshes only the stale entries.
//   - A0 is maintained incrementally and re-derived by compensated summation
//     every DefaultResumInterval steps (WithResumInterval).
//
// State machine:
//
//	Ready ──Step──▶ Ready
//	Ready ──A0 = 0──▶ Absorbed (terminal, Step returns ErrAbsorbed)
//	Ready ──error──▶ Failed   (terminal, Step returns ErrEngineFailed)
//
// Stopping is the caller's policy: call Step in a loop, or Run with a
// StopCondition (MaxTime, MaxSteps, Any, StopFunc). Clock and state can be
// read between any two steps.
//
// Determinism:
//
//   - Same seed (WithSeed) + same rule order + same initial state ⇒ the same
//     trajectory, event by event.
//
// Error handling (sentinel errors):
//
//   - ErrNegativePropensity / ErrNonFinitePropensity: a rate function broke
//     its contract; never clamped.
//   - network.ErrInvalidMutation (wrapped): a map function produced an
//     illegal batch.
//   - ErrAbsorbed: not a failure; no further events are possible.
package simulation
