// SPDX-License-Identifier: MIT
package catalog

import (
	"github.com/katalvlaran/netsim/interaction"
	"github.com/katalvlaran/netsim/network"
)

// EdgeFormation connects unconnected pairs at constant rate.
// Only i < j carries propensity, so each unordered pair counts once.
//
// Parameters: rate (required).
func EdgeFormation(cfg Config) (*interaction.Interaction, error) {
	return build(KindEdgeFormation, cfg,
		[]interaction.Parameter{interaction.Required(ParamRate)},
		func(i, j int, s network.View, p interaction.Params) float64 {
			if i >= j || s.Connected(i, j) {
				return 0
			}
			return p.Get(ParamRate)
		},
		func(i, j int, _ network.View) []network.Mutation {
			return []network.Mutation{network.AddEdge{I: i, J: j}}
		},
	)
}

// EdgeDecay removes one edge of a pair at rate·multiplicity (i < j).
//
// Parameters: rate (required).
func EdgeDecay(cfg Config) (*interaction.Interaction, error) {
	return build(KindEdgeDecay, cfg,
		[]interaction.Parameter{interaction.Required(ParamRate)},
		func(i, j int, s network.View, p interaction.Params) float64 {
			if i >= j {
				return 0
			}
			return p.Get(ParamRate) * float64(s.Edge(i, j))
		},
		func(i, j int, _ network.View) []network.Mutation {
			return []network.Mutation{network.RemoveEdge{I: i, J: j}}
		},
	)
}
