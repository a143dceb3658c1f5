// SPDX-License-Identifier: MIT
// Package: graph
//
// transform.go - removal operations yielding brand-new Graph values.
//
// Contract:
//   - The receiver is never mutated; the result owns fresh storage.
//   - The child recomputes its full distance matrix (O(n³)).

package graph

import (
	"fmt"
)

// RemoveNode returns a new graph with node deleted. Remaining nodes are
// renumbered in their original relative order (indices above node shift down by 1).
// Errors: ErrInvalidNode.
func (g *Graph) RemoveNode(node int) (*Graph, error) {
	if !g.validNode(node) {
		return nil, nodeErrorf(opRemoveNode, node, g.n)
	}
	adj, err := g.adj.Without(node)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opRemoveNode, err)
	}

	return newUnchecked(adj), nil
}

// RemoveEdge returns a new graph, same node count, with edge {a, b} removed.
// Removing an absent edge yields an equal copy.
// Errors: ErrInvalidNode.
func (g *Graph) RemoveEdge(a, b int) (*Graph, error) {
	if !g.validNode(a) {
		return nil, nodeErrorf(opRemoveEdge, a, g.n)
	}
	if !g.validNode(b) {
		return nil, nodeErrorf(opRemoveEdge, b, g.n)
	}
	adj := g.adj.Clone()
	// Indices were validated above.
	_ = adj.Set(a, b, 0)
	_ = adj.Set(b, a, 0)

	return newUnchecked(adj), nil
}
