// Package model is the composition root of netsim: it validates an ordered
// rule list, builds the network.State from raw node and adjacency matrices,
// and instantiates the engine named by the strategy ("gillespie_direct").
//
// A Model does nothing in the hot loop; Step and Run delegate to the engine.
//
//	m, err := model.Build(nodes, nil, []interaction.Rule{rule},
//		model.WithEngineOptions(simulation.WithSeed(7)))
//	if err != nil {
//		return err
//	}
//	sum, err := m.Run(ctx, simulation.MaxTime(10))
package model
