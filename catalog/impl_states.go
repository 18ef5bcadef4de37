// SPDX-License-Identifier: MIT
package catalog

import (
	"github.com/katalvlaran/netsim/interaction"
	"github.com/katalvlaran/netsim/network"
)

// Infection states used by Contagion on property component dim.
const (
	Susceptible = 0.0
	Infected    = 1.0
)

// Contagion is SI infection along edges: infected i passes the infection to
// a connected susceptible j at rate beta.
//
// Parameters: beta (required), dim (bound to 0 when absent).
func Contagion(cfg Config) (*interaction.Interaction, error) {
	dim := dimOf(cfg)
	return build(KindContagion, cfg,
		[]interaction.Parameter{interaction.Required(ParamBeta), interaction.Required(ParamDim)},
		func(i, j int, s network.View, p interaction.Params) float64 {
			d := int(p.Get(ParamDim))
			if !s.Connected(i, j) || s.Property(i, d) != Infected || s.Property(j, d) != Susceptible {
				return 0
			}
			return p.Get(ParamBeta)
		},
		func(i, j int, s network.View) []network.Mutation {
			return []network.Mutation{withComponent(s, j, dim, Infected)}
		},
	)
}

// Voter lets j adopt i's opinion (property component dim) at the given rate
// when the two are connected and disagree.
//
// Parameters: rate (required), dim (bound to 0 when absent).
func Voter(cfg Config) (*interaction.Interaction, error) {
	dim := dimOf(cfg)
	return build(KindVoter, cfg,
		[]interaction.Parameter{interaction.Required(ParamRate), interaction.Required(ParamDim)},
		func(i, j int, s network.View, p interaction.Params) float64 {
			d := int(p.Get(ParamDim))
			if !s.Connected(i, j) || s.Property(i, d) == s.Property(j, d) {
				return 0
			}
			return p.Get(ParamRate)
		},
		func(i, j int, s network.View) []network.Mutation {
			return []network.Mutation{withComponent(s, j, dim, s.Property(i, dim))}
		},
	)
}

// dimOf reads the dim parameter from cfg (0 when absent).
func dimOf(cfg Config) int {
	return int(cfg.Params[ParamDim])
}

// withComponent returns a SetNodeProperty replacing component d of node i.
func withComponent(s network.View, i, d int, v float64) network.Mutation {
	vec := s.Node(i)
	if d >= 0 && d < len(vec) {
		vec[d] = v
	}
	return network.SetNodeProperty{I: i, Value: vec}
}
