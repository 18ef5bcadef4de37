// SPDX-License-Identifier: MIT
// Package: netsim/network
//
// state.go — State: node property matrix (N×D) + symmetric multiplicity
// adjacency (N×N), mutated only through Apply.
//
// Invariants:
//   • adjacency is square, symmetric, non-negative integer valued.
//   • every node property vector has length D, fixed at construction.
// Concurrency:
//   • State is NOT goroutine-safe. One engine owns one State; concurrent
//     simulations must each work on their own Clone().

package network

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/katalvlaran/netsim/matrix"
)

// View is the read-only face of a State handed to rate, map and update
// functions. Out-of-range indices read as zero values instead of failing,
// so rate functions stay total.
type View interface {
	// Size returns the node count N.
	Size() int
	// Dim returns the property dimension D.
	Dim() int
	// Edge returns the multiplicity adjacency[i][j].
	Edge(i, j int) int
	// Connected reports adjacency[i][j] > 0.
	Connected(i, j int) bool
	// Property returns component k of node i's property vector.
	Property(i, k int) float64
	// Node returns a copy of node i's property vector.
	Node(i int) []float64
	// Degree returns the sum of off-diagonal multiplicities in row i.
	Degree(i int) int
}

// State owns the node properties and the adjacency matrix of one network.
type State struct {
	n, d  int
	nodes *matrix.Dense // N×D
	adj   *matrix.Dense // N×N
}

var _ View = (*State)(nil)

// New builds a State from an N×D node matrix and an optional N×N adjacency.
// A nil adj yields the identity matrix (self entries only, no edges).
//
// Errors:
//   - ErrNoNodes: nodes empty or D == 0.
//   - matrix.ErrDimensionMismatch / matrix.ErrNaNInf: ragged or non-finite input.
//   - ErrBadShape, ErrAsymmetric, ErrBadMultiplicity: invalid adjacency.
//
// Complexity: O(N·D + N²).
func New(nodes [][]float64, adj [][]float64) (*State, error) {
	if len(nodes) == 0 || len(nodes[0]) == 0 {
		return nil, ErrNoNodes
	}
	nm, err := matrix.NewFromRows(nodes)
	if err != nil {
		return nil, fmt.Errorf("network: nodes: %w", err)
	}
	n, d := nm.Shape()

	var am *matrix.Dense
	if adj == nil {
		if am, err = matrix.NewIdentity(n); err != nil {
			return nil, fmt.Errorf("network: adjacency: %w", err)
		}
	} else {
		if len(adj) != n {
			return nil, fmt.Errorf("network: adjacency has %d rows for %d nodes: %w", len(adj), n, ErrBadShape)
		}
		if am, err = matrix.NewFromRows(adj); err != nil {
			return nil, fmt.Errorf("network: adjacency: %w: %w", ErrBadShape, err)
		}
		if err = validateAdjacency(am); err != nil {
			return nil, err
		}
	}

	return &State{n: n, d: d, nodes: nm, adj: am}, nil
}

// validateAdjacency maps matrix validator sentinels onto network sentinels.
func validateAdjacency(am *matrix.Dense) error {
	if err := matrix.ValidateSquare(am); err != nil {
		return fmt.Errorf("network: %w: %w", ErrBadShape, err)
	}
	if err := matrix.ValidateSymmetric(am); err != nil {
		return fmt.Errorf("network: %w: %w", ErrAsymmetric, err)
	}
	if err := matrix.ValidateNonNegativeIntegers(am); err != nil {
		return fmt.Errorf("network: %w: %w", ErrBadMultiplicity, err)
	}

	return nil
}

// Size returns the node count N.
func (s *State) Size() int { return s.n }

// Dim returns the property dimension D.
func (s *State) Dim() int { return s.d }

// Edge returns adjacency[i][j] as an integer multiplicity (0 when out of range).
func (s *State) Edge(i, j int) int {
	v, err := s.adj.At(i, j)
	if err != nil {
		return 0
	}

	return int(v)
}

// Connected reports whether at least one edge joins i and j.
func (s *State) Connected(i, j int) bool { return s.Edge(i, j) > 0 }

// Property returns component k of node i (0 when out of range).
func (s *State) Property(i, k int) float64 {
	v, err := s.nodes.At(i, k)
	if err != nil {
		return 0
	}

	return v
}

// Node returns a copy of node i's property vector (nil when out of range).
func (s *State) Node(i int) []float64 {
	row, err := s.nodes.Row(i)
	if err != nil {
		return nil
	}

	return row
}

// Degree returns Σ_j adjacency[i][j] over j ≠ i.
func (s *State) Degree(i int) int {
	if i < 0 || i >= s.n {
		return 0
	}
	var j, deg int
	for j = 0; j < s.n; j++ {
		if j != i {
			deg += s.Edge(i, j)
		}
	}

	return deg
}

// Nodes returns a deep copy of the N×D node property matrix.
func (s *State) Nodes() *matrix.Dense { return s.nodes.Clone() }

// Adjacency returns a deep copy of the N×N adjacency matrix.
func (s *State) Adjacency() *matrix.Dense { return s.adj.Clone() }

// Clone returns an independent copy, e.g. for a concurrent engine.
func (s *State) Clone() *State {
	return &State{n: s.n, d: s.d, nodes: s.nodes.Clone(), adj: s.adj.Clone()}
}

// String dumps both matrices for diagnostics.
func (s *State) String() string {
	var b strings.Builder
	b.WriteString("Nodes:\n")
	b.WriteString(s.nodes.String())
	b.WriteString("Adjacency matrix:\n")
	b.WriteString(s.adj.String())

	return b.String()
}

var errNilMutation = errors.New("network: nil mutation")

// undo reverts one applied instruction.
type undo func()

// Apply applies batch in order. Each instruction is checked for structural
// legality before it touches the matrices; if instruction k fails, the
// instructions 0..k-1 already applied are reverted, so on error the State is
// exactly what it was before the call.
//
// Errors: every error matches ErrInvalidMutation plus one of ErrSelfLoop,
// ErrDuplicateEdge, ErrMissingEdge, ErrDimensionMismatch, ErrNonFinite,
// ErrNodeOutOfRange.
//
// Complexity: O(Σ cost(instruction)); edge ops O(1), property ops O(D).
func (s *State) Apply(batch []Mutation) error {
	journal := make([]undo, 0, len(batch))
	for idx, m := range batch {
		u, err := s.apply(m)
		if err != nil {
			for k := len(journal) - 1; k >= 0; k-- {
				journal[k]()
			}
			return mutationErrorf(idx, m, err)
		}
		journal = append(journal, u)
	}

	return nil
}

// apply validates then performs a single instruction, returning its inverse.
func (s *State) apply(m Mutation) (undo, error) {
	switch op := m.(type) {
	case AddEdge:
		if err := s.checkPair(op.I, op.J); err != nil {
			return nil, err
		}
		if s.Edge(op.I, op.J) > 0 {
			return nil, ErrDuplicateEdge
		}
		s.bump(op.I, op.J, 1)
		return func() { s.bump(op.I, op.J, -1) }, nil

	case RemoveEdge:
		if err := s.checkPair(op.I, op.J); err != nil {
			return nil, err
		}
		if s.Edge(op.I, op.J) == 0 {
			return nil, ErrMissingEdge
		}
		s.bump(op.I, op.J, -1)
		return func() { s.bump(op.I, op.J, 1) }, nil

	case SetNodeProperty:
		if op.I < 0 || op.I >= s.n {
			return nil, ErrNodeOutOfRange
		}
		if len(op.Value) != s.d {
			return nil, fmt.Errorf("len %d, want %d: %w", len(op.Value), s.d, ErrDimensionMismatch)
		}
		for _, v := range op.Value {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, ErrNonFinite
			}
		}
		prev := s.Node(op.I)
		if err := s.nodes.SetRow(op.I, op.Value); err != nil {
			return nil, err
		}
		return func() { _ = s.nodes.SetRow(op.I, prev) }, nil

	case nil:
		return nil, errNilMutation
	}

	// Unreachable while Mutation stays sealed.
	return nil, ErrUnknownOperation
}

// checkPair validates node indices and rejects self-loops.
func (s *State) checkPair(i, j int) error {
	if i < 0 || i >= s.n || j < 0 || j >= s.n {
		return ErrNodeOutOfRange
	}
	if i == j {
		return ErrSelfLoop
	}

	return nil
}

// bump adjusts both symmetric entries. Indices are pre-validated.
func (s *State) bump(i, j int, delta float64) {
	_ = s.adj.Add(i, j, delta)
	_ = s.adj.Add(j, i, delta)
}

// Touched returns the sorted distinct node indices referenced by batch.
func Touched(batch []Mutation) []int {
	seen := make(map[int]struct{}, 2*len(batch))
	for _, m := range batch {
		switch op := m.(type) {
		case AddEdge:
			seen[op.I], seen[op.J] = struct{}{}, struct{}{}
		case RemoveEdge:
			seen[op.I], seen[op.J] = struct{}{}, struct{}{}
		case SetNodeProperty:
			seen[op.I] = struct{}{}
		}
	}
	out := make([]int, 0, len(seen))
	for k := range seen {
		out = append(out, k)
	}
	sort.Ints(out)

	return out
}
