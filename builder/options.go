// SPDX-License-Identifier: MIT
// Package: builder
//
// options.go - functional options for the builder package.
//
// Contract:
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Constructors themselves never panic.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.

package builder

import (
	"fmt"
	"math/rand"
)

// BuilderOption customizes a builderConfig before construction begins.
type BuilderOption func(*builderConfig)

// WithRand provides an explicit RNG for stochastic builders.
// Panics on nil; prefer WithSeed for reproducible runs.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("WithRand: nil *rand.Rand")
	}

	return func(c *builderConfig) { c.rng = r }
}

// WithSeed creates a new *rand.Rand with the given seed (deterministic).
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithWeightFn overrides the per-edge weight generator. Panics on nil.
func WithWeightFn(fn WeightFn) BuilderOption {
	if fn == nil {
		panic("WithWeightFn: nil WeightFn")
	}

	return func(c *builderConfig) { c.weightFn = fn }
}

// WithLink adds the edge {u, v} between global node indices of the finished
// union, typically to join two blocks. Panics on negative or equal endpoints.
func WithLink(u, v int) BuilderOption {
	if u < 0 || v < 0 || u == v {
		panic(fmt.Sprintf("WithLink: need distinct non-negative endpoints, got %d,%d", u, v))
	}

	return func(c *builderConfig) { c.links = append(c.links, link{u: u, v: v}) }
}
