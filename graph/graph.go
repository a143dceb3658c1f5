// SPDX-License-Identifier: MIT
// Package: graph
//
// graph.go - construction and raw accessors of the immutable Graph.
//
// Contract:
//   - Input is validated (square, non-negative, symmetric) and deep-copied.
//   - The distance matrix is computed eagerly; every query assumes it is ready.
//   - No method mutates a Graph after New returns; accessors hand out copies.

package graph

import (
	"fmt"

	"github.com/katalvlaran/graphmetrics/matrix"
)

// Operation tags for error wrapping.
const (
	opNew        = "New"
	opFromDense  = "FromDense"
	opDegree     = "Degree"
	opReachable  = "ReachableNodes"
	opEcc        = "Eccentricity"
	opDistance   = "Distance"
	opWeight     = "Weight"
	opRemoveNode = "RemoveNode"
	opRemoveEdge = "RemoveEdge"
)

// Graph is an immutable undirected weighted graph over nodes 0..n-1.
// It is safe for concurrent use by any number of readers.
type Graph struct {
	n    int
	adj  *matrix.Dense
	dist *matrix.Distances
}

// New validates adj and builds a Graph with its distance matrix.
//
// Errors:
//   - ErrInvalidGraph wrapping matrix.ErrNonSquare, matrix.ErrNegativeWeight
//     or matrix.ErrAsymmetry.
//
// Complexity: O(n³) for the distance closure.
func New(adj [][]int64) (*Graph, error) {
	d, err := matrix.NewSquareFromRows(adj)
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %w", opNew, ErrInvalidGraph, err)
	}

	return build(opNew, d)
}

// FromDense builds a Graph from a copy of m.
// Errors: as New.
func FromDense(m *matrix.Dense) (*Graph, error) {
	if err := matrix.ValidateNotNil(m); err != nil {
		return nil, fmt.Errorf("%s: %w: %w", opFromDense, ErrInvalidGraph, err)
	}

	return build(opFromDense, m.Clone())
}

// build validates an owned adjacency matrix and attaches distances.
func build(op string, adj *matrix.Dense) (*Graph, error) {
	if err := matrix.ValidateAdjacency(adj); err != nil {
		return nil, fmt.Errorf("%s: %w: %w", op, ErrInvalidGraph, err)
	}

	return newUnchecked(adj), nil
}

// newUnchecked wraps an owned adjacency already known to be valid.
// Used by transformations whose input is a valid Graph.
func newUnchecked(adj *matrix.Dense) *Graph {
	// adj is square by construction, so the closure cannot fail.
	dist, _ := matrix.FloydWarshall(adj)

	return &Graph{n: adj.Rows(), adj: adj, dist: dist}
}

// NodeCount returns the number of nodes.
func (g *Graph) NodeCount() int { return g.n }

// validNode reports whether node is in [0, n).
func (g *Graph) validNode(node int) bool { return node >= 0 && node < g.n }

// at reads adj[i][j] for indices already validated.
func (g *Graph) at(i, j int) int64 {
	v, _ := g.adj.At(i, j)

	return v
}

// length reads dist[i][j] for indices already validated.
func (g *Graph) length(i, j int) matrix.Length {
	l, _ := g.dist.At(i, j)

	return l
}

// Weight returns the weight of edge {a, b}, 0 when absent.
// Errors: ErrInvalidNode.
func (g *Graph) Weight(a, b int) (int64, error) {
	if !g.validNode(a) {
		return 0, nodeErrorf(opWeight, a, g.n)
	}
	if !g.validNode(b) {
		return 0, nodeErrorf(opWeight, b, g.n)
	}

	return g.at(a, b), nil
}

// Distance returns the shortest-path length between a and b (Inf if unreachable).
// Errors: ErrInvalidNode.
func (g *Graph) Distance(a, b int) (matrix.Length, error) {
	if !g.validNode(a) {
		return matrix.Inf, nodeErrorf(opDistance, a, g.n)
	}
	if !g.validNode(b) {
		return matrix.Inf, nodeErrorf(opDistance, b, g.n)
	}

	return g.length(a, b), nil
}

// Adjacency returns a copy of the adjacency matrix.
func (g *Graph) Adjacency() [][]int64 { return g.adj.RowsCopy() }

// DistanceMatrix returns a copy of the distance matrix.
func (g *Graph) DistanceMatrix() [][]matrix.Length { return g.dist.RowsCopy() }

// Edges lists every edge once as (U <= V), ordered by U then V.
// A positive diagonal entry is reported as the self-loop (i, i).
func (g *Graph) Edges() []Edge {
	var edges []Edge
	for i := 0; i < g.n; i++ {
		for j := i; j < g.n; j++ {
			if w := g.at(i, j); w > 0 {
				edges = append(edges, Edge{U: i, V: j, Weight: w})
			}
		}
	}

	return edges
}

// EdgeCount returns len(Edges()) without allocating.
func (g *Graph) EdgeCount() int {
	count := 0
	for i := 0; i < g.n; i++ {
		for j := i; j < g.n; j++ {
			if g.at(i, j) > 0 {
				count++
			}
		}
	}

	return count
}

// Equal reports whether g and o have identical adjacency matrices.
func (g *Graph) Equal(o *Graph) bool {
	if g == nil || o == nil {
		return g == o
	}

	return g.adj.Equal(o.adj)
}

// String renders the adjacency matrix.
func (g *Graph) String() string { return g.adj.String() }
