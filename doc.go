// SPDX-License-Identifier: MIT

// Package graphmetrics computes the structural metrics of undirected, weighted
// graphs given as adjacency matrices.
//
// 🚀 What is inside?
//
//	matrix/      - int64 Dense storage, optional Length distances, Floyd–Warshall, validators
//	graph/       - immutable Graph: distances, degrees, components, eccentricity,
//	               diameter/radius/center, node and edge removal, gonum export
//	separators/  - articulation points and bridges, lazy sequential and errgroup-parallel
//	builder/     - deterministic adjacency fixtures (path, cycle, star, wheel, complete, random)
//	adjfile/     - digit-run matrix file parser
//	report/      - full summary record with text, YAML and JSON encoders
//	cmd/graphmetrics - CLI front end
//
// ✨ Guarantees
//
//   - Graphs are immutable; every transformation returns a fresh Graph.
//   - Parallel and sequential separator searches return identical, ordered results.
//   - Infinite distances are explicit (matrix.Inf), never a magic number.
//
// Quick start:
//
//	g, _ := graph.New([][]int64{{0, 1, 0}, {1, 0, 1}, {0, 1, 0}})
//	g.Diameter()                             // 2
//	slices.Collect(separators.ArticulationPoints(g)) // [1]
package graphmetrics
