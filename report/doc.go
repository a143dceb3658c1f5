// Package report assembles the full structural summary of a graph and encodes
// it for humans (aligned text) or machines (YAML, JSON).
//
// Build runs every query of the graph and separators packages once. By default
// articulation points and bridges come from the parallel variants; pass
// WithSequential to use the lazy sequences instead. Both produce identical
// reports.
//
// Infinite lengths render as "inf" in text and as null in YAML and JSON.
package report
