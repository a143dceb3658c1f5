// Package graph provides an immutable undirected weighted graph built from an
// adjacency matrix, with its all-pairs distance matrix computed up front.
//
// What
//
//   - New / FromDense validate (square, non-negative, symmetric) and copy the
//     adjacency data, then run Floyd–Warshall eagerly.
//   - Topology queries are pure reads over the distance matrix:
//     Degree, ReachableNodes, ConnectedComponents (lazy iter.Seq), ComponentCount,
//     IsConnected, Eccentricity, Diameter, Radius, Center.
//   - RemoveNode / RemoveEdge return brand-new graphs; the receiver never changes,
//     so one Graph can be probed from many goroutines at once.
//   - ToGonum exports to gonum for interop.
//
// Disconnected graphs
//
//	Eccentricity, Diameter and Radius are whole-graph metrics: if any pair is
//	unreachable they are matrix.Inf for every node and Center is empty, even
//	though each component has its own local eccentricities.
//
// Complexity (n = NodeCount)
//
//   - Construction and every removal: O(n³) time, O(n²) memory.
//   - ReachableNodes, Degree, Eccentricity: O(n). ConnectedComponents: O(n²).
//
// Usage
//
//	g, err := graph.New([][]int64{
//		{0, 1, 0},
//		{1, 0, 1},
//		{0, 1, 0},
//	})
//	if err != nil {
//		// errors.Is(err, graph.ErrInvalidGraph)
//	}
//	for comp := range g.ConnectedComponents() {
//		fmt.Println(comp)
//	}
//	d := g.Diameter() // 2
//
// Errors
//
//   - ErrInvalidGraph  construction from invalid adjacency data.
//   - ErrInvalidNode   node index outside [0, NodeCount).
package graph
