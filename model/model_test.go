// SPDX-License-Identifier: MIT
package model_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/katalvlaran/netsim/interaction"
	"github.com/katalvlaran/netsim/model"
	"github.com/katalvlaran/netsim/network"
	"github.com/katalvlaran/netsim/simulation"
	"github.com/stretchr/testify/require"
)

func link(t testing.TB, name string) *interaction.Interaction {
	t.Helper()
	r, err := interaction.New(name,
		func(i, j int, s network.View, p interaction.Params) float64 {
			if i < j && !s.Connected(i, j) {
				return 1
			}
			return 0
		},
		func(i, j int, s network.View) []network.Mutation {
			return []network.Mutation{network.AddEdge{I: i, J: j}}
		},
	)
	require.NoError(t, err)
	return r
}

var threeNodes = [][]float64{{0}, {0}, {0}}

func TestBuildErrors(t *testing.T) {
	var typedNil *interaction.Interaction

	tests := []struct {
		name  string
		rules []interaction.Rule
		opts  []model.Option
		want  error
	}{
		{"no rules", nil, nil, model.ErrNoRules},
		{"nil rule", []interaction.Rule{nil}, nil, model.ErrNotInteraction},
		{"typed nil rule", []interaction.Rule{typedNil}, nil, model.ErrNotInteraction},
		{"duplicate", []interaction.Rule{link(t, "a"), link(t, "a")}, nil, model.ErrDuplicateRule},
		{"strategy", []interaction.Rule{link(t, "a")}, []model.Option{model.WithStrategy("tau_leaping")}, model.ErrUnknownStrategy},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := model.Build(threeNodes, nil, tt.rules, tt.opts...)
			require.ErrorIs(t, err, tt.want)
			require.ErrorIs(t, err, interaction.ErrConstruction)
		})
	}
}

func TestBuildPropagatesStateErrors(t *testing.T) {
	_, err := model.Build(nil, nil, []interaction.Rule{link(t, "a")})
	require.ErrorIs(t, err, network.ErrNoNodes)

	_, err = model.Build(threeNodes, [][]float64{{0, 1, 0}, {0, 0, 0}, {0, 0, 0}}, []interaction.Rule{link(t, "a")})
	require.ErrorIs(t, err, network.ErrAsymmetric)
}

func TestAccessorsAndRun(t *testing.T) {
	rules := []interaction.Rule{link(t, "form")}
	m, err := model.Build(threeNodes, nil, rules,
		model.WithStrategy(model.StrategyGillespieDirect),
		model.WithEngineOptions(simulation.WithSeed(5)))
	require.NoError(t, err)

	require.Equal(t, model.StrategyGillespieDirect, m.Strategy())
	require.Equal(t, []string{model.StrategyGillespieDirect}, model.Strategies())
	require.Len(t, m.Rules(), 1)
	require.Equal(t, 0.0, m.Time())
	require.Equal(t, 3.0, m.Simulator().TotalPropensity())

	ev, err := m.Step()
	require.NoError(t, err)
	require.Equal(t, 1, ev.Step)
	require.Equal(t, ev.Clock, m.Time())

	sum, err := m.Run(context.Background(), nil)
	require.NoError(t, err)
	require.True(t, sum.Absorbed)
	require.Equal(t, 3, sum.TotalSteps)
	require.Equal(t, simulation.Absorbed, m.Simulator().Status())
	require.Equal(t, 2, m.State().Degree(0))
}

func TestRulesAreCopied(t *testing.T) {
	rules := []interaction.Rule{link(t, "a"), link(t, "b")}
	m, err := model.Build(threeNodes, nil, rules)
	require.NoError(t, err)

	rules[0] = nil
	require.Equal(t, "a", m.Rules()[0].Name())
}

func TestString(t *testing.T) {
	m, err := model.Build([][]float64{{1}, {2}}, nil, []interaction.Rule{link(t, "a")})
	require.NoError(t, err)

	want := "System\nNodes:\n[1]\n[2]\nAdjacency matrix:\n[1, 0]\n[0, 1]\n"
	require.Equal(t, want, m.String())
}

func ExampleBuild() {
	rule, _ := interaction.New("form",
		func(i, j int, s network.View, p interaction.Params) float64 {
			if i < j && !s.Connected(i, j) {
				return p.Get("rate")
			}
			return 0
		},
		func(i, j int, s network.View) []network.Mutation {
			return []network.Mutation{network.AddEdge{I: i, J: j}}
		},
		interaction.WithParameters(interaction.Required("rate")),
		interaction.WithBound("rate", 1.0),
	)

	m, err := model.Build([][]float64{{0}, {0}, {0}}, nil, []interaction.Rule{rule},
		model.WithEngineOptions(simulation.WithSeed(1)))
	if err != nil {
		fmt.Println(err)
		return
	}
	sum, _ := m.Run(context.Background(), nil)
	fmt.Println(sum.Steps, sum.Status)
	fmt.Print(m.State().Adjacency())
	// Output:
	// 3 absorbed
	// [1, 1, 1]
	// [1, 1, 1]
	// [1, 1, 1]
}
