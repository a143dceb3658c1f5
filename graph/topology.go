// SPDX-License-Identifier: MIT
// Package: graph
//
// topology.go - read-only queries over the precomputed distance matrix.
//
// Policy:
//   - Reachability is "finite distance"; the closure makes it symmetric and
//     transitive, which IsConnected relies on (node 0 reaching all is enough).
//   - Eccentricity, Diameter and Radius are whole-graph metrics: on a disconnected
//     graph they are Inf for every node, and Center is empty.
//   - The 0-node graph has no components and is not connected.

package graph

import (
	"iter"

	"github.com/katalvlaran/graphmetrics/matrix"
)

// Degree returns the number of nodes sharing a positive-weight edge with node.
// A self-loop counts once.
// Errors: ErrInvalidNode.
func (g *Graph) Degree(node int) (int, error) {
	if !g.validNode(node) {
		return 0, nodeErrorf(opDegree, node, g.n)
	}
	deg := 0
	for j := 0; j < g.n; j++ {
		if g.at(node, j) > 0 {
			deg++
		}
	}

	return deg, nil
}

// Degrees returns Degree for every node in index order.
func (g *Graph) Degrees() []int {
	out := make([]int, g.n)
	for i := range out {
		out[i], _ = g.Degree(i)
	}

	return out
}

// ReachableNodes returns, in ascending order, every node at finite distance
// from start, start included.
// Errors: ErrInvalidNode.
func (g *Graph) ReachableNodes(start int) ([]int, error) {
	if !g.validNode(start) {
		return nil, nodeErrorf(opReachable, start, g.n)
	}

	return g.reachable(start), nil
}

// reachable is ReachableNodes without the bounds check.
func (g *Graph) reachable(start int) []int {
	var out []int
	for j := 0; j < g.n; j++ {
		if !g.length(start, j).IsInf() {
			out = append(out, j)
		}
	}

	return out
}

// ConnectedComponents partitions the nodes into components.
//
// The smallest unvisited node seeds each component, so components are yielded in
// order of their smallest member and each component lists its nodes ascending.
// The sequence is lazy and recomputed on every iteration.
func (g *Graph) ConnectedComponents() iter.Seq[[]int] {
	return func(yield func([]int) bool) {
		visited := make([]bool, g.n)
		for start := 0; start < g.n; start++ {
			if visited[start] {
				continue
			}
			comp := g.reachable(start)
			for _, v := range comp {
				visited[v] = true
			}
			if !yield(comp) {
				return
			}
		}
	}
}

// Components collects ConnectedComponents into a slice.
func (g *Graph) Components() [][]int {
	var out [][]int
	for comp := range g.ConnectedComponents() {
		out = append(out, comp)
	}

	return out
}

// ComponentCount returns the number of connected components.
func (g *Graph) ComponentCount() int {
	count := 0
	for range g.ConnectedComponents() {
		count++
	}

	return count
}

// IsConnected reports whether node 0 reaches every other node.
// The 0-node graph is not connected.
func (g *Graph) IsConnected() bool {
	if g.n == 0 {
		return false
	}
	for j := 1; j < g.n; j++ {
		if g.length(0, j).IsInf() {
			return false
		}
	}

	return true
}

// Eccentricity returns the greatest distance from node to any other node,
// or Inf when the graph is disconnected (for every node, see package policy).
// Errors: ErrInvalidNode.
func (g *Graph) Eccentricity(node int) (matrix.Length, error) {
	if !g.validNode(node) {
		return matrix.Inf, nodeErrorf(opEcc, node, g.n)
	}
	if !g.IsConnected() {
		return matrix.Inf, nil
	}

	return g.eccentricity(node), nil
}

// eccentricity assumes a connected graph and a valid node.
func (g *Graph) eccentricity(node int) matrix.Length {
	ecc := matrix.Finite(0)
	for j := 0; j < g.n; j++ {
		if l := g.length(node, j); ecc.Less(l) {
			ecc = l
		}
	}

	return ecc
}

// Eccentricities returns Eccentricity for every node in index order.
func (g *Graph) Eccentricities() []matrix.Length {
	out := make([]matrix.Length, g.n)
	if !g.IsConnected() {
		return out // zero value is Inf
	}
	for i := range out {
		out[i] = g.eccentricity(i)
	}

	return out
}

// Diameter returns the maximum eccentricity, Inf if disconnected.
func (g *Graph) Diameter() matrix.Length {
	if !g.IsConnected() {
		return matrix.Inf
	}
	d := matrix.Finite(0)
	for _, ecc := range g.Eccentricities() {
		if d.Less(ecc) {
			d = ecc
		}
	}

	return d
}

// Radius returns the minimum eccentricity, Inf if disconnected.
func (g *Graph) Radius() matrix.Length {
	r := matrix.Inf
	if !g.IsConnected() {
		return r
	}
	for _, ecc := range g.Eccentricities() {
		if ecc.Less(r) {
			r = ecc
		}
	}

	return r
}

// Center returns, ascending, the nodes whose eccentricity equals the radius.
// Empty (nil) when the graph is disconnected.
func (g *Graph) Center() []int {
	if !g.IsConnected() {
		return nil
	}
	eccs := g.Eccentricities()
	r := g.Radius()
	var out []int
	for i, ecc := range eccs {
		if ecc == r {
			out = append(out, i)
		}
	}

	return out
}
