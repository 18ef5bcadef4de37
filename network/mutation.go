// SPDX-License-Identifier: MIT
// Package: netsim/network
//
// mutation.go — the closed set of state-mutation instructions and their wire
// form.
//
// Contract:
//   • Mutation is sealed: only AddEdge, RemoveEdge and SetNodeProperty exist,
//     and State.apply matches them exhaustively with a type switch.
//   • The wire form is an ordered (operation_key, argument_tuple) pair;
//     Decode converts it into a typed Mutation and fails on unknown keys,
//     wrong arity or wrong argument types. DecodeBatch decodes a whole batch
//     before anything can be applied.

package network

import (
	"fmt"
	"math"
)

// Operation keys of the wire format.
const (
	KeyAddEdge         = "add_edge"
	KeyRemoveEdge      = "remove_edge"
	KeySetNodeProperty = "set_node_property"
)

// Declared argument counts per operation key.
var arity = map[string]int{
	KeyAddEdge:         2,
	KeyRemoveEdge:      2,
	KeySetNodeProperty: 2,
}

// Mutation is one atomic state-mutation instruction.
type Mutation interface {
	// Key returns the wire operation key.
	Key() string
	// Args returns the wire argument tuple.
	Args() []any

	sealed()
}

// AddEdge increments adjacency[I][J] and adjacency[J][I] by one.
type AddEdge struct{ I, J int }

// RemoveEdge decrements adjacency[I][J] and adjacency[J][I] by one.
type RemoveEdge struct{ I, J int }

// SetNodeProperty replaces the property vector of node I.
type SetNodeProperty struct {
	I     int
	Value []float64
}

func (AddEdge) Key() string         { return KeyAddEdge }
func (RemoveEdge) Key() string      { return KeyRemoveEdge }
func (SetNodeProperty) Key() string { return KeySetNodeProperty }

func (m AddEdge) Args() []any    { return []any{m.I, m.J} }
func (m RemoveEdge) Args() []any { return []any{m.I, m.J} }
func (m SetNodeProperty) Args() []any {
	v := make([]float64, len(m.Value))
	copy(v, m.Value)
	return []any{m.I, v}
}

func (AddEdge) sealed()         {}
func (RemoveEdge) sealed()      {}
func (SetNodeProperty) sealed() {}

// Instruction is the wire form of a Mutation: an operation key plus its
// argument tuple. It decodes from YAML as {op: add_edge, args: [0, 1]}.
type Instruction struct {
	Op   string `yaml:"op" json:"op"`
	Args []any  `yaml:"args" json:"args"`
}

// Encode returns the wire form of m.
func Encode(m Mutation) Instruction {
	return Instruction{Op: m.Key(), Args: m.Args()}
}

// Decode converts a wire instruction into a typed Mutation.
//
// Errors (all also match ErrInvalidMutation):
//   - ErrUnknownOperation: key is not one of the Key* constants.
//   - ErrArity: len(args) differs from the operation's declared arity.
//   - ErrArgumentType: a node index is not integral, or a vector is not numeric.
//
// Complexity: O(len(vector)).
func Decode(key string, args ...any) (Mutation, error) {
	want, ok := arity[key]
	if !ok {
		return nil, fmt.Errorf("decode %q: %w: %w", key, ErrInvalidMutation, ErrUnknownOperation)
	}
	if len(args) != want {
		return nil, fmt.Errorf("decode %q: got %d args, want %d: %w: %w",
			key, len(args), want, ErrInvalidMutation, ErrArity)
	}

	i, err := toIndex(args[0])
	if err != nil {
		return nil, fmt.Errorf("decode %q arg 0: %w: %w", key, ErrInvalidMutation, err)
	}

	switch key {
	case KeyAddEdge, KeyRemoveEdge:
		j, err := toIndex(args[1])
		if err != nil {
			return nil, fmt.Errorf("decode %q arg 1: %w: %w", key, ErrInvalidMutation, err)
		}
		if key == KeyAddEdge {
			return AddEdge{I: i, J: j}, nil
		}
		return RemoveEdge{I: i, J: j}, nil
	default: // KeySetNodeProperty
		v, err := toVector(args[1])
		if err != nil {
			return nil, fmt.Errorf("decode %q arg 1: %w: %w", key, ErrInvalidMutation, err)
		}
		return SetNodeProperty{I: i, Value: v}, nil
	}
}

// DecodeBatch decodes every instruction, failing on the first malformed one
// without returning a partial batch.
func DecodeBatch(batch []Instruction) ([]Mutation, error) {
	out := make([]Mutation, 0, len(batch))
	for idx, in := range batch {
		m, err := Decode(in.Op, in.Args...)
		if err != nil {
			return nil, fmt.Errorf("instruction #%d: %w", idx, err)
		}
		out = append(out, m)
	}

	return out, nil
}

// toIndex accepts any Go integer type, or a float with an integral value
// (YAML and JSON decoders produce those).
func toIndex(a any) (int, error) {
	switch v := a.(type) {
	case int:
		return v, nil
	case int8:
		return int(v), nil
	case int16:
		return int(v), nil
	case int32:
		return int(v), nil
	case int64:
		return int(v), nil
	case uint:
		return int(v), nil
	case uint8:
		return int(v), nil
	case uint16:
		return int(v), nil
	case uint32:
		return int(v), nil
	case uint64:
		return int(v), nil
	case float64:
		if integralIndex(v) {
			return int(v), nil
		}
	case float32:
		if f := float64(v); integralIndex(f) {
			return int(f), nil
		}
	}

	return 0, fmt.Errorf("node index %v (%T): %w", a, a, ErrArgumentType)
}

// integralIndex reports whether f is a whole number small enough to convert
// to int without overflow.
func integralIndex(f float64) bool {
	return f == math.Trunc(f) && math.Abs(f) <= math.MaxInt32
}

// toVector accepts []float64 (copied), or []any / []int of numbers.
func toVector(a any) ([]float64, error) {
	switch v := a.(type) {
	case []float64:
		out := make([]float64, len(v))
		copy(out, v)
		return out, nil
	case []int:
		out := make([]float64, len(v))
		for k, x := range v {
			out[k] = float64(x)
		}
		return out, nil
	case []any:
		out := make([]float64, len(v))
		for k, x := range v {
			switch n := x.(type) {
			case float64:
				out[k] = n
			case int:
				out[k] = float64(n)
			case int64:
				out[k] = float64(n)
			default:
				return nil, fmt.Errorf("vector element %d %v (%T): %w", k, x, x, ErrArgumentType)
			}
		}
		return out, nil
	}

	return nil, fmt.Errorf("vector %v (%T): %w", a, a, ErrArgumentType)
}
