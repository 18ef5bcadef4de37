// Package network holds the mutable state of a simulated network: N nodes,
// each carrying a property vector of fixed dimension D, and a symmetric N×N
// adjacency matrix of non-negative integer multiplicities (values above 1
// describe a multigraph).
//
// State changes only through State.Apply, which consumes an ordered batch of
// Mutation values. The mutation set is closed:
//
//	AddEdge{I, J}             adjacency[I][J]++ and adjacency[J][I]++
//	RemoveEdge{I, J}          adjacency[I][J]-- and adjacency[J][I]--
//	SetNodeProperty{I, Value} nodes[I] = Value (len(Value) == D)
//
// Self-loops, duplicate insertions, removal of absent edges and dimension
// changes are rejected before anything is written, and a failing batch is
// rolled back as a whole.
//
// The wire form (operation_key, argument_tuple) is available through Decode,
// DecodeBatch and Encode:
//
//	m, err := network.Decode("add_edge", 0, 1)
//
// Errors:
//
//	ErrInvalidMutation   - class of every Apply/Decode failure.
//	ErrSelfLoop          - edge operation with I == J.
//	ErrDuplicateEdge     - add_edge on a connected pair.
//	ErrMissingEdge       - remove_edge on an unconnected pair.
//	ErrDimensionMismatch - property vector of the wrong length.
//	ErrUnknownOperation  - unknown wire key.
//	ErrArity             - wrong wire argument count.
package network
