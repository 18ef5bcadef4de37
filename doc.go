// Package netsim is a stochastic simulation kernel for dynamic networks.
//
// A network of N nodes carries a D-dimensional property vector per node and
// a symmetric multigraph adjacency. Pairwise interaction rules give every
// ordered node pair a propensity and describe the mutations that firing
// produces; the Gillespie direct method picks the next event and its time.
//
// Packages:
//
//	matrix/        dense row-major storage and structural validators
//	network/       NetworkState, mutations (add_edge, remove_edge,
//	               set_node_property), batch application, traversal
//	interaction/   the Rule contract, bound parameters, invalidation sets
//	simulation/    the direct-method engine, stop conditions, events
//	model/         composition root: rules + state + strategy
//	catalog/       ready-made rules (edge formation/decay, contagion, voter)
//	builder/       initial topologies (path, cycle, grid, G(n,p), ...)
//	scenario/      YAML scenario files
//	metrics/       Prometheus collector for engine events
//	cmd/netsim     command line front end
//
// Quick start:
//
//	rule, _ := catalog.EdgeFormation(catalog.Config{Params: map[string]float64{"rate": 1}})
//	m, _ := model.Build(nodes, nil, []interaction.Rule{rule},
//		model.WithEngineOptions(simulation.WithSeed(42)))
//	sum, err := m.Run(ctx, simulation.MaxTime(10))
//	fmt.Print(m) // node and adjacency dumps
//
// Determinism: the same seed, rule order and initial state always produce
// the same trajectory.
package netsim
