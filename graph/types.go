// SPDX-License-Identifier: MIT
// Package graph: sentinel errors and value types.

package graph

import (
	"errors"
	"fmt"
)

// Sentinel errors for graph construction and queries.
var (
	// ErrInvalidGraph is returned when adjacency data is not a square,
	// non-negative, symmetric matrix. No partial graph is ever returned.
	ErrInvalidGraph = errors.New("graph: invalid adjacency data")

	// ErrInvalidNode is returned when a node index is outside [0, NodeCount).
	// The receiver stays usable.
	ErrInvalidNode = errors.New("graph: invalid node index")
)

// Edge is an undirected edge identified by the unordered pair {U, V}.
// By convention U <= V.
type Edge struct {
	U      int   `json:"u" yaml:"u"`
	V      int   `json:"v" yaml:"v"`
	Weight int64 `json:"weight" yaml:"weight"`
}

// NewEdge returns the edge {a, b} with its endpoints ordered.
func NewEdge(a, b int, w int64) Edge {
	if a > b {
		a, b = b, a
	}

	return Edge{U: a, V: b, Weight: w}
}

// String renders the edge as "(u, v)".
func (e Edge) String() string { return fmt.Sprintf("(%d, %d)", e.U, e.V) }

// nodeErrorf reports an out-of-range node for the named operation.
func nodeErrorf(op string, node, n int) error {
	return fmt.Errorf("%s: node %d not in [0,%d): %w", op, node, n, ErrInvalidNode)
}
