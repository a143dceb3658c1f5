// SPDX-License-Identifier: MIT
// Package: builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach context using `%w`.

package builder

import "errors"

// ErrTooFewVertices indicates that a size parameter is smaller than the allowed
// minimum for the requested constructor.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates that a probability is outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates that a stochastic constructor requires a non-nil
// *rand.Rand in the resolved builderConfig (WithSeed/WithRand must be set).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrInvalidWeight indicates that the weight generator produced a value ≤ 0,
// which an adjacency matrix would read as "no edge".
var ErrInvalidWeight = errors.New("builder: edge weight must be positive")

// ErrConstructFailed indicates that the builder could not assemble the requested
// matrix (nil constructor, link endpoint outside the union, ...).
var ErrConstructFailed = errors.New("builder: construction failed")

// ErrBadSpec indicates an unparsable "kind:n" fixture spec.
var ErrBadSpec = errors.New("builder: invalid fixture spec")
