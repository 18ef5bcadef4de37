// SPDX-License-Identifier: MIT
package simulation_test

import (
	"context"
	"math"
	"testing"

	"github.com/katalvlaran/netsim/interaction"
	"github.com/katalvlaran/netsim/network"
	"github.com/katalvlaran/netsim/simulation"
	"github.com/stretchr/testify/require"
)

// emptyState builds an n-node, 1-dimensional state with no edges at all.
func emptyState(t *testing.T, n int) *network.State {
	t.Helper()
	nodes := make([][]float64, n)
	adj := make([][]float64, n)
	for i := range nodes {
		nodes[i] = []float64{0}
		adj[i] = make([]float64, n)
	}
	s, err := network.New(nodes, adj)
	require.NoError(t, err)

	return s
}

// linkRule fires at rate k on every unconnected pair and connects it.
func linkRule(t *testing.T, name string, opts ...interaction.Option) *interaction.Interaction {
	t.Helper()
	opts = append([]interaction.Option{
		interaction.WithParameters(interaction.Optional("k", 1.0)),
	}, opts...)
	r, err := interaction.New(name,
		func(i, j int, s network.View, p interaction.Params) float64 {
			if s.Connected(i, j) {
				return 0
			}
			return p.Get("k")
		},
		func(i, j int, s network.View) []network.Mutation {
			return []network.Mutation{network.AddEdge{I: i, J: j}}
		},
		opts...,
	)
	require.NoError(t, err)

	return r
}

func constant(t *testing.T, name string, v float64) *interaction.Interaction {
	t.Helper()
	r, err := interaction.New(name,
		func(i, j int, s network.View, p interaction.Params) float64 { return v },
		func(i, j int, s network.View) []network.Mutation { return nil },
	)
	require.NoError(t, err)

	return r
}

func TestNewValidation(t *testing.T) {
	s := emptyState(t, 2)

	_, err := simulation.New(nil, nil)
	require.ErrorIs(t, err, simulation.ErrNilState)

	_, err = simulation.New(s, []interaction.Rule{nil})
	require.ErrorIs(t, err, simulation.ErrNilRule)

	_, err = simulation.New(s, []interaction.Rule{constant(t, "a", 0), constant(t, "a", 0)})
	require.ErrorIs(t, err, simulation.ErrDuplicateRule)

	_, err = simulation.New(s, []interaction.Rule{constant(t, "neg", -1)})
	require.ErrorIs(t, err, simulation.ErrNegativePropensity)

	_, err = simulation.New(s, []interaction.Rule{constant(t, "nan", math.NaN())})
	require.ErrorIs(t, err, simulation.ErrNonFinitePropensity)
}

func TestInitialTablesSkipDiagonal(t *testing.T) {
	e, err := simulation.New(emptyState(t, 3), []interaction.Rule{constant(t, "c", 0.5)})
	require.NoError(t, err)

	// 6 ordered pairs × 0.5
	require.InDelta(t, 3.0, e.TotalPropensity(), 1e-12)

	v, err := e.Propensity(0, 1, 1)
	require.NoError(t, err)
	require.Equal(t, 0.0, v)

	v, err = e.Propensity(0, 2, 0)
	require.NoError(t, err)
	require.Equal(t, 0.5, v)

	_, err = e.Propensity(1, 0, 0)
	require.ErrorIs(t, err, simulation.ErrOutOfRange)
	_, err = e.Propensity(0, 0, 3)
	require.ErrorIs(t, err, simulation.ErrOutOfRange)
}

func TestAllZeroAbsorbsImmediately(t *testing.T) {
	s := emptyState(t, 3)
	before := s.String()

	e, err := simulation.New(s, []interaction.Rule{constant(t, "zero", 0)})
	require.NoError(t, err)
	require.Equal(t, simulation.Ready, e.Status())

	_, err = e.Step()
	require.ErrorIs(t, err, simulation.ErrAbsorbed)
	require.Equal(t, simulation.Absorbed, e.Status())
	require.Equal(t, 0.0, e.Clock())
	require.Equal(t, 0, e.Steps())
	require.Equal(t, before, s.String())

	// Terminal: further steps keep reporting absorption.
	_, err = e.Step()
	require.ErrorIs(t, err, simulation.ErrAbsorbed)
}

func TestTriangleFormationAbsorbsAfterThreeSteps(t *testing.T) {
	s := emptyState(t, 3)
	e, err := simulation.New(s, []interaction.Rule{linkRule(t, "link")}, simulation.WithSeed(42))
	require.NoError(t, err)

	sum, err := e.Run(context.Background(), simulation.Never())
	require.NoError(t, err)
	require.True(t, sum.Absorbed)
	require.Equal(t, 3, sum.Steps)
	require.Equal(t, simulation.Absorbed, e.Status())
	require.Equal(t, 0.0, e.TotalPropensity())

	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			if i != j {
				require.Equal(t, 1, s.Edge(i, j))
			}
		}
	}
}

func TestClockIsMonotonic(t *testing.T) {
	e, err := simulation.New(emptyState(t, 5), []interaction.Rule{linkRule(t, "link")}, simulation.WithSeed(3))
	require.NoError(t, err)

	prev := 0.0
	for {
		ev, err := e.Step()
		if err != nil {
			require.ErrorIs(t, err, simulation.ErrAbsorbed)
			break
		}
		require.Greater(t, ev.Dt, 0.0)
		require.Greater(t, ev.Clock, prev)
		require.Equal(t, e.Clock(), ev.Clock)
		prev = ev.Clock
	}
	require.Equal(t, 10, e.Steps()) // one per unordered pair of K5
}

type trace struct {
	clock float64
	i, j  int
	adj   string
}

func runTrace(t *testing.T, seed int64) []trace {
	t.Helper()
	s := emptyState(t, 6)
	var out []trace
	e, err := simulation.New(s, []interaction.Rule{linkRule(t, "link")},
		simulation.WithSeed(seed),
		simulation.WithObserver(func(ev simulation.Event) {
			out = append(out, trace{clock: ev.Clock, i: ev.I, j: ev.J, adj: s.Adjacency().String()})
		}),
	)
	require.NoError(t, err)
	_, err = e.Run(context.Background(), simulation.MaxSteps(8))
	require.NoError(t, err)

	return out
}

func TestDeterminismUnderFixedSeed(t *testing.T) {
	a := runTrace(t, 11)
	b := runTrace(t, 11)
	require.Len(t, a, 8)
	require.Equal(t, a, b)

	c := runTrace(t, 12)
	require.NotEqual(t, a, c)
}

func TestNegativePropensityAfterStepFails(t *testing.T) {
	// Rate turns negative once any edge exists.
	bad, err := interaction.New("bad",
		func(i, j int, s network.View, p interaction.Params) float64 {
			if s.Degree(0)+s.Degree(1)+s.Degree(2) > 0 {
				return -1
			}
			return 1
		},
		func(i, j int, s network.View) []network.Mutation {
			return []network.Mutation{network.AddEdge{I: i, J: j}}
		},
	)
	require.NoError(t, err)

	e, err := simulation.New(emptyState(t, 3), []interaction.Rule{bad}, simulation.WithSeed(1))
	require.NoError(t, err)

	_, err = e.Step()
	require.ErrorIs(t, err, simulation.ErrNegativePropensity)
	require.Equal(t, simulation.Failed, e.Status())

	_, err = e.Step()
	require.ErrorIs(t, err, simulation.ErrEngineFailed)
	require.ErrorIs(t, err, simulation.ErrNegativePropensity)
}

func TestInvalidMutationFailsStep(t *testing.T) {
	// Constant rate even on connected pairs: the second firing on a pair
	// is a duplicate insertion.
	dup, err := interaction.New("dup",
		func(i, j int, s network.View, p interaction.Params) float64 { return 1 },
		func(i, j int, s network.View) []network.Mutation {
			return []network.Mutation{network.AddEdge{I: i, J: j}}
		},
	)
	require.NoError(t, err)

	e, err := simulation.New(emptyState(t, 2), []interaction.Rule{dup}, simulation.WithSeed(5))
	require.NoError(t, err)

	_, err = e.Step()
	require.NoError(t, err)
	clock := e.Clock()

	_, err = e.Step()
	require.ErrorIs(t, err, network.ErrInvalidMutation)
	require.ErrorIs(t, err, network.ErrDuplicateEdge)
	require.Equal(t, simulation.Failed, e.Status())
	require.Equal(t, clock, e.Clock()) // failed step does not advance time
	require.Error(t, e.Err())
}

func TestSetNodePropertyVisibleAfterStep(t *testing.T) {
	s, err := network.New([][]float64{{1.0}, {0.0}}, nil)
	require.NoError(t, err)

	bump, err := interaction.New("bump",
		func(i, j int, s network.View, p interaction.Params) float64 {
			if i == 0 && j == 1 && s.Property(0, 0) == 1.0 {
				return 1
			}
			return 0
		},
		func(i, j int, s network.View) []network.Mutation {
			return []network.Mutation{network.SetNodeProperty{I: 0, Value: []float64{2.0}}}
		},
	)
	require.NoError(t, err)

	e, err := simulation.New(s, []interaction.Rule{bump})
	require.NoError(t, err)

	ev, err := e.Step()
	require.NoError(t, err)
	require.Equal(t, 0, ev.I)
	require.Equal(t, 1, ev.J)
	require.Equal(t, []float64{2.0}, s.Node(0))
	require.Equal(t, []float64{0.0}, s.Node(1))
	require.Equal(t, "[1, 0]\n[0, 1]\n", s.Adjacency().String())

	_, err = e.Step()
	require.ErrorIs(t, err, simulation.ErrAbsorbed)
}

func TestTrackedRuleRecomputesOnlyNamedKeys(t *testing.T) {
	s := emptyState(t, 3)
	calls := map[[2]int]int{}

	tracked, err := interaction.New("tracked",
		func(i, j int, v network.View, p interaction.Params) float64 {
			calls[[2]int{i, j}]++
			if v.Connected(i, j) {
				return 0
			}
			return 1
		},
		func(i, j int, v network.View) []network.Mutation {
			return []network.Mutation{network.AddEdge{I: i, J: j}}
		},
		interaction.WithUpdate(func(v network.View, applied []network.Mutation) interaction.Invalidation {
			var inv interaction.Invalidation
			for _, m := range applied {
				if op, ok := m.(network.AddEdge); ok {
					inv.Add(op.I, op.J)
					inv.Add(op.J, op.I)
				}
			}
			return inv
		}),
	)
	require.NoError(t, err)

	e, err := simulation.New(s, []interaction.Rule{tracked}, simulation.WithSeed(9))
	require.NoError(t, err)
	require.Len(t, calls, 6)

	ev, err := e.Step()
	require.NoError(t, err)

	for pair, n := range calls {
		want := 1
		if (pair[0] == ev.I && pair[1] == ev.J) || (pair[0] == ev.J && pair[1] == ev.I) {
			want = 2
		}
		require.Equal(t, want, n, "pair %v", pair)
	}
	require.InDelta(t, 4.0, e.TotalPropensity(), 1e-12)
}

func TestUntrackedRulesAreRefreshedAfterTrackedFiring(t *testing.T) {
	s := emptyState(t, 3)
	// "degree" depends on global structure and declares no update function.
	degree, err := interaction.New("degree",
		func(i, j int, v network.View, p interaction.Params) float64 {
			return float64(v.Degree(i))
		},
		func(i, j int, v network.View) []network.Mutation { return nil },
	)
	require.NoError(t, err)

	link := linkRule(t, "link", interaction.WithUpdate(interaction.TouchedUpdate()))

	e, err := simulation.New(s, []interaction.Rule{link, degree}, simulation.WithSeed(2))
	require.NoError(t, err)

	ev, err := e.Step()
	require.NoError(t, err)
	require.Equal(t, "link", ev.RuleName)

	v, err := e.Propensity(1, ev.I, ev.J)
	require.NoError(t, err)
	require.Equal(t, 1.0, v)
}

func TestTrackedRulesAreRefreshedAfterUntrackedFiring(t *testing.T) {
	s := emptyState(t, 2)
	form := linkRule(t, "form")
	decay, err := interaction.New("decay",
		func(i, j int, v network.View, p interaction.Params) float64 {
			if i < j && v.Connected(i, j) {
				return 1
			}
			return 0
		},
		func(i, j int, v network.View) []network.Mutation {
			return []network.Mutation{network.RemoveEdge{I: i, J: j}}
		},
		interaction.WithUpdate(interaction.TouchedUpdate(interaction.Self, "form")),
	)
	require.NoError(t, err)

	e, err := simulation.New(s, []interaction.Rule{form, decay}, simulation.WithSeed(1))
	require.NoError(t, err)

	ev, err := e.Step()
	require.NoError(t, err)
	require.Equal(t, "form", ev.RuleName)

	v, err := e.Propensity(1, 0, 1)
	require.NoError(t, err)
	require.Equal(t, 1.0, v)
	require.InDelta(t, 1.0, e.TotalPropensity(), 1e-12)

	ev, err = e.Step()
	require.NoError(t, err)
	require.Equal(t, "decay", ev.RuleName)
	require.Equal(t, simulation.Ready, e.Status())
}

// unnamed is a hand-written Rule whose name collides with interaction.Self.
type unnamed struct{}

func (unnamed) Name() string { return "" }
func (unnamed) Propensity(i, j int, s network.View) float64 { return 1 }
func (unnamed) Fire(i, j int, s network.View) []network.Mutation { return nil }
func (unnamed) Invalidated(network.View, []network.Mutation) (interaction.Invalidation, bool) {
	return interaction.Invalidation{}, false
}

func TestEmptyRuleNameRejected(t *testing.T) {
	_, err := simulation.New(emptyState(t, 2), []interaction.Rule{unnamed{}})
	require.ErrorIs(t, err, interaction.ErrEmptyName)
}

func TestUnknownRuleInInvalidationFails(t *testing.T) {
	r := linkRule(t, "link", interaction.WithUpdate(
		func(v network.View, applied []network.Mutation) interaction.Invalidation {
			var inv interaction.Invalidation
			inv.AddFor("ghost", 0, 1)
			return inv
		}))

	e, err := simulation.New(emptyState(t, 2), []interaction.Rule{r})
	require.NoError(t, err)

	_, err = e.Step()
	require.ErrorIs(t, err, simulation.ErrUnknownRule)
}

func TestInvalidKeyFails(t *testing.T) {
	r := linkRule(t, "link", interaction.WithUpdate(
		func(v network.View, applied []network.Mutation) interaction.Invalidation {
			var inv interaction.Invalidation
			inv.Add(1, 1)
			return inv
		}))

	e, err := simulation.New(emptyState(t, 2), []interaction.Rule{r})
	require.NoError(t, err)

	_, err = e.Step()
	require.ErrorIs(t, err, simulation.ErrInvalidKey)
}

func TestCrossRuleInvalidation(t *testing.T) {
	s := emptyState(t, 2)
	// "watch" is tracked and only refreshed when another rule names it.
	watch, err := interaction.New("watch",
		func(i, j int, v network.View, p interaction.Params) float64 {
			return float64(v.Edge(i, j)) * 2
		},
		func(i, j int, v network.View) []network.Mutation {
			return []network.Mutation{network.RemoveEdge{I: i, J: j}}
		},
		interaction.WithUpdate(interaction.TouchedUpdate(interaction.Self, "link")),
	)
	require.NoError(t, err)
	link := linkRule(t, "link", interaction.WithUpdate(interaction.TouchedUpdate(interaction.Self, "watch")))

	e, err := simulation.New(s, []interaction.Rule{link, watch}, simulation.WithSeed(4))
	require.NoError(t, err)

	ev, err := e.Step()
	require.NoError(t, err)
	require.Equal(t, "link", ev.RuleName)

	v, err := e.Propensity(1, 0, 1)
	require.NoError(t, err)
	require.Equal(t, 2.0, v)
	require.InDelta(t, 4.0, e.TotalPropensity(), 1e-12) // link: 0, watch: 2+2
}

func TestPeriodicResumKeepsTotalExact(t *testing.T) {
	// Toggle an edge forever with awkward rates to accumulate drift.
	s := emptyState(t, 2)
	toggle, err := interaction.New("toggle",
		func(i, j int, v network.View, p interaction.Params) float64 {
			if i != 0 {
				return 0
			}
			if v.Connected(i, j) {
				return 0.1
			}
			return 0.7
		},
		func(i, j int, v network.View) []network.Mutation {
			if v.Connected(i, j) {
				return []network.Mutation{network.RemoveEdge{I: i, J: j}}
			}
			return []network.Mutation{network.AddEdge{I: i, J: j}}
		},
		interaction.WithUpdate(interaction.TouchedUpdate()),
	)
	require.NoError(t, err)

	e, err := simulation.New(s, []interaction.Rule{toggle},
		simulation.WithSeed(8), simulation.WithResumInterval(10))
	require.NoError(t, err)

	_, err = e.Run(context.Background(), simulation.MaxSteps(1000))
	require.NoError(t, err)
	require.Equal(t, 1000, e.Steps())
	// 1000 is a multiple of the interval, so the total was just re-derived.
	require.Equal(t, 0.7, e.TotalPropensity())
}

func TestOptionPanics(t *testing.T) {
	require.Panics(t, func() { simulation.WithRand(nil) })
	require.Panics(t, func() { simulation.WithResumInterval(0) })
	require.Panics(t, func() { simulation.WithObserver(nil) })
	require.Panics(t, func() { simulation.WithLogger(nil) })
}
