// SPDX-License-Identifier: MIT
// Package: builder
//
// constants.go - shared names, size floors and defaults for all constructors.

package builder

//-----------------------------------------------------------------------------
// Constructor names
//   used to prefix errors with the constructor name for context.
//-----------------------------------------------------------------------------

const (
	methodEmpty        = "Empty"
	methodPath         = "Path"
	methodCycle        = "Cycle"
	methodStar         = "Star"
	methodWheel        = "Wheel"
	methodComplete     = "Complete"
	methodRandomSparse = "RandomSparse"
)

//-----------------------------------------------------------------------------
// Minimum node counts
//-----------------------------------------------------------------------------

// MinEmptyNodes allows the 0-node graph.
const MinEmptyNodes = 0

// MinPathNodes is the smallest meaningful size for a simple path.
// A path of fewer than 2 nodes has no edges.
const MinPathNodes = 2

// MinCycleNodes is the smallest meaningful size for a cycle (ring) topology.
// A cycle with fewer than 3 nodes cannot form a ring without loops or multi-edges.
const MinCycleNodes = 3

// MinStarNodes is one hub plus at least one leaf.
const MinStarNodes = 2

// MinWheelNodes is a cycle of at least 3 rim nodes plus the hub.
const MinWheelNodes = 4

// MinCompleteNodes is K1.
const MinCompleteNodes = 1

// MinRandomSparseNodes allows the 0-node graph.
const MinRandomSparseNodes = 0

//-----------------------------------------------------------------------------
// Default weights and probability bounds
//-----------------------------------------------------------------------------

// DefaultEdgeWeight is the weight of every edge when no WeightFn is provided.
const DefaultEdgeWeight int64 = 1

// MinProbability is the inclusive lower bound of RandomSparse's p.
const MinProbability = 0.0

// MaxProbability is the inclusive upper bound of RandomSparse's p.
const MaxProbability = 1.0
