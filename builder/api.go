// SPDX-License-Identifier: MIT
// Package: netsim/builder
//
// api.go — the Build orchestrator and the topology registry.
//
// Contract:
//   • Build starts from an n×n all-zero adjacency and runs the constructors
//     in order; each adds edges, so composed topologies add multiplicities.
//   • The result is always symmetric with a zero diagonal and non-negative
//     integral entries, i.e. a valid network adjacency.
//   • Same n, options, seed and constructor order ⇒ the same matrix.

package builder

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/netsim/matrix"
)

// Constructor adds the edges of one topology to an n×n adjacency.
type Constructor func(adj *matrix.Dense, cfg config) error

// Build returns the n×n adjacency produced by cons.
//
// Errors: ErrTooFewNodes (n < 1), ErrNilConstructor, or the first
// constructor error wrapped as "Build: %w".
func Build(n int, opts []Option, cons ...Constructor) (*matrix.Dense, error) {
	if n < 1 {
		return nil, fmt.Errorf("Build: n=%d: %w", n, ErrTooFewNodes)
	}
	adj, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, fmt.Errorf("Build: %w", err)
	}
	cfg := newConfig(opts...)

	for k, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("Build: constructor #%d: %w", k, ErrNilConstructor)
		}
		if err = fn(adj, cfg); err != nil {
			return nil, fmt.Errorf("Build: %w", err)
		}
	}

	return adj, nil
}

// Rows is Build returning [][]float64, the form network.New accepts.
func Rows(n int, opts []Option, cons ...Constructor) ([][]float64, error) {
	adj, err := Build(n, opts, cons...)
	if err != nil {
		return nil, err
	}
	return adj.ToRows(), nil
}

// Spec names a topology and its parameters, as written in scenario files.
type Spec struct {
	Kind string  `yaml:"kind" json:"kind"`
	P    float64 `yaml:"p" json:"p"`       // random_sparse
	Rows int     `yaml:"rows" json:"rows"` // grid
	Cols int     `yaml:"cols" json:"cols"` // grid
}

// Topology kinds accepted by Lookup.
const (
	KindEmpty        = "empty"
	KindPath         = "path"
	KindCycle        = "cycle"
	KindStar         = "star"
	KindWheel        = "wheel"
	KindComplete     = "complete"
	KindGrid         = "grid"
	KindRandomSparse = "random_sparse"
)

var topologies = map[string]func(Spec) Constructor{
	KindEmpty:        func(Spec) Constructor { return Empty() },
	KindPath:         func(Spec) Constructor { return Path() },
	KindCycle:        func(Spec) Constructor { return Cycle() },
	KindStar:         func(Spec) Constructor { return Star() },
	KindWheel:        func(Spec) Constructor { return Wheel() },
	KindComplete:     func(Spec) Constructor { return Complete() },
	KindGrid:         func(s Spec) Constructor { return Grid(s.Rows, s.Cols) },
	KindRandomSparse: func(s Spec) Constructor { return RandomSparse(s.P) },
}

// Lookup returns the constructor described by s.
func Lookup(s Spec) (Constructor, error) {
	mk, ok := topologies[s.Kind]
	if !ok {
		return nil, fmt.Errorf("builder: %q: %w", s.Kind, ErrUnknownTopology)
	}
	return mk(s), nil
}

// Kinds returns the topology names accepted by Lookup, sorted.
func Kinds() []string {
	out := make([]string, 0, len(topologies))
	for k := range topologies {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// connect adds one undirected edge i–j.
func connect(adj *matrix.Dense, i, j int) error {
	if err := adj.Add(i, j, 1); err != nil {
		return err
	}
	return adj.Add(j, i, 1)
}
