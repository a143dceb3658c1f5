// SPDX-License-Identifier: MIT
// Package: builder
//
// config.go - internal configuration and deterministic defaults.
//
// Design:
//   • builderConfig is the single source of truth for all builder knobs.
//   • Defaults are deterministic and documented; no globals.
//   • newBuilderConfig applies options in-order (later overrides earlier).
//
// Deterministic defaults:
//   • rng      = nil                      (pure/deterministic unless seeded)
//   • weightFn = constant DefaultEdgeWeight
//   • links    = none

package builder

import "math/rand"

// link is an extra edge between two global node indices of the union.
type link struct{ u, v int }

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors (immutable to callers).
type builderConfig struct {
	// RNG for stochastic choices; nil means “no randomness”.
	rng *rand.Rand
	// Weight generator for edges.
	weightFn WeightFn
	// Extra edges applied after the disjoint union is laid out.
	links []link
}

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order.
// Complexity: O(len(opts)) time, O(1) space.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		rng:      nil,
		weightFn: ConstantWeightFn(DefaultEdgeWeight),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}

// nextWeight draws one weight and checks that it encodes an edge.
func (cfg builderConfig) nextWeight() (int64, error) {
	w := cfg.weightFn(cfg.rng)
	if w <= 0 {
		return 0, ErrInvalidWeight
	}

	return w, nil
}
