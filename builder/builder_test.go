// SPDX-License-Identifier: MIT
package builder_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/netsim/builder"
	"github.com/katalvlaran/netsim/matrix"
	"github.com/katalvlaran/netsim/network"
	"github.com/stretchr/testify/require"
)

func degrees(t *testing.T, adj [][]float64) []int {
	t.Helper()
	nodes := make([][]float64, len(adj))
	for i := range nodes {
		nodes[i] = []float64{0}
	}
	s, err := network.New(nodes, adj)
	require.NoError(t, err) // every topology is a valid adjacency
	out := make([]int, len(adj))
	for i := range out {
		out[i] = s.Degree(i)
	}
	return out
}

func TestDeterministicTopologies(t *testing.T) {
	tests := []struct {
		name string
		n    int
		con  builder.Constructor
		deg  []int
	}{
		{"empty", 3, builder.Empty(), []int{0, 0, 0}},
		{"path", 4, builder.Path(), []int{1, 2, 2, 1}},
		{"cycle", 5, builder.Cycle(), []int{2, 2, 2, 2, 2}},
		{"star", 4, builder.Star(), []int{3, 1, 1, 1}},
		{"wheel", 5, builder.Wheel(), []int{4, 3, 3, 3, 3}},
		{"complete", 4, builder.Complete(), []int{3, 3, 3, 3}},
		{"grid", 6, builder.Grid(2, 3), []int{2, 3, 2, 2, 3, 2}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			adj, err := builder.Rows(tt.n, nil, tt.con)
			require.NoError(t, err)
			require.Equal(t, tt.deg, degrees(t, adj))
		})
	}
}

func TestTooFewNodes(t *testing.T) {
	tests := []struct {
		name string
		n    int
		con  builder.Constructor
	}{
		{"path", 1, builder.Path()},
		{"cycle", 2, builder.Cycle()},
		{"star", 1, builder.Star()},
		{"wheel", 3, builder.Wheel()},
		{"grid", 1, builder.Grid(0, 1)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := builder.Build(tt.n, nil, tt.con)
			require.ErrorIs(t, err, builder.ErrTooFewNodes)
		})
	}

	_, err := builder.Build(0, nil)
	require.ErrorIs(t, err, builder.ErrTooFewNodes)
}

func TestBuildErrors(t *testing.T) {
	_, err := builder.Build(3, nil, nil)
	require.ErrorIs(t, err, builder.ErrNilConstructor)

	_, err = builder.Build(5, nil, builder.Grid(2, 2))
	require.ErrorIs(t, err, builder.ErrShapeMismatch)

	_, err = builder.Build(5, nil, builder.RandomSparse(1.5))
	require.ErrorIs(t, err, builder.ErrInvalidProbability)

	_, err = builder.Build(5, nil, builder.RandomSparse(0.5))
	require.ErrorIs(t, err, builder.ErrNeedRandSource)
}

func TestComposeAddsMultiplicity(t *testing.T) {
	adj, err := builder.Build(3, nil, builder.Cycle(), builder.Path())
	require.NoError(t, err)

	v, err := adj.At(0, 1)
	require.NoError(t, err)
	require.Equal(t, 2.0, v)
	v, err = adj.At(2, 0)
	require.NoError(t, err)
	require.Equal(t, 1.0, v)
	require.NoError(t, matrix.ValidateSymmetric(adj))
}

func TestRandomSparse(t *testing.T) {
	// Extremes need no RNG.
	full, err := builder.Rows(5, nil, builder.RandomSparse(1))
	require.NoError(t, err)
	require.Equal(t, []int{4, 4, 4, 4, 4}, degrees(t, full))

	none, err := builder.Rows(5, nil, builder.RandomSparse(0))
	require.NoError(t, err)
	require.Equal(t, []int{0, 0, 0, 0, 0}, degrees(t, none))

	a, err := builder.Rows(30, []builder.Option{builder.WithSeed(4)}, builder.RandomSparse(0.2))
	require.NoError(t, err)
	b, err := builder.Rows(30, []builder.Option{builder.WithRand(rand.New(rand.NewSource(4)))}, builder.RandomSparse(0.2))
	require.NoError(t, err)
	require.Equal(t, a, b)
	degrees(t, a)
}

func TestLookup(t *testing.T) {
	require.Equal(t,
		[]string{"complete", "cycle", "empty", "grid", "path", "random_sparse", "star", "wheel"},
		builder.Kinds())

	con, err := builder.Lookup(builder.Spec{Kind: builder.KindGrid, Rows: 2, Cols: 2})
	require.NoError(t, err)
	adj, err := builder.Rows(4, nil, con)
	require.NoError(t, err)
	require.Equal(t, []int{2, 2, 2, 2}, degrees(t, adj))

	_, err = builder.Lookup(builder.Spec{Kind: "barabasi_albert"})
	require.ErrorIs(t, err, builder.ErrUnknownTopology)
}

func TestWithRandPanicsOnNil(t *testing.T) {
	require.Panics(t, func() { builder.WithRand(nil) })
}
