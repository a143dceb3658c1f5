// SPDX-License-Identifier: MIT
// Package: graph
//
// gonum.go - export to gonum's graph model for interop with its algorithms
// (path, topo, network, ...). Node IDs equal node indices.

package graph

import (
	"math"

	"gonum.org/v1/gonum/graph/simple"
)

// ToGonum returns a gonum weighted undirected graph with one node per index and
// one edge per positive off-diagonal entry. Absent edges weigh +Inf; self-loops
// are dropped because gonum simple graphs reject them and they never affect
// distances or connectivity.
func (g *Graph) ToGonum() *simple.WeightedUndirectedGraph {
	out := simple.NewWeightedUndirectedGraph(0, math.Inf(1))
	for i := 0; i < g.n; i++ {
		out.AddNode(simple.Node(int64(i)))
	}
	for _, e := range g.Edges() {
		if e.U == e.V {
			continue
		}
		out.SetWeightedEdge(out.NewWeightedEdge(
			simple.Node(int64(e.U)), simple.Node(int64(e.V)), float64(e.Weight)))
	}

	return out
}
