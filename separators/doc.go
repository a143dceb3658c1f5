// Package separators finds the articulation points and bridges of a graph.Graph
// by "removal + recount": a node (edge) is a separator iff removing it strictly
// increases the number of connected components.
//
// What
//
//   - ArticulationPoints / Bridges: lazy iter.Seq, ascending order, single goroutine.
//   - ArticulationPointsParallel / BridgesParallel: one errgroup unit per node
//     (per lower-triangle row for bridges). Every unit writes only its own result
//     slot and the dispatcher merges the slots in index order once the group has
//     settled, so no lock guards the output and the result equals the sequential
//     variant element for element.
//
// Bridges scan only the lower triangle (node2 <= node1) and report each edge once
// as (node2, node1), i.e. smaller index first.
//
// Concurrency
//
//	The baseline graph and its component count are shared read-only by all units;
//	each unit builds its own derived graph via RemoveNode / RemoveEdge. The first
//	unit error cancels the group context, siblings stop at their next check, and
//	the error is returned after all units have settled. Cancelling the caller's
//	context aborts the run with ctx.Err().
//
// Complexity (n = NodeCount)
//
//   - ArticulationPoints*: n removals, each O(n³).
//   - Bridges*: one removal per edge, each O(n³).
//
// Options
//
//   - WithWorkers(n):  cap concurrent units (default runtime.GOMAXPROCS(0)).
//   - WithOnFoundNode(fn) / WithOnFoundEdge(fn): hook called for every separator,
//     in result order, from the caller's goroutine after the merge.
//
// Errors
//
//   - ErrGraphNil         if the graph pointer is nil.
//   - ErrOptionViolation  if an Option is invalid (e.g. WithWorkers(0)).
//   - context errors and wrapped unit failures from the parallel variants.
package separators
