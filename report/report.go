// SPDX-License-Identifier: MIT
// Package: report
//
// report.go - Report record and Build.

package report

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/katalvlaran/graphmetrics/graph"
	"github.com/katalvlaran/graphmetrics/matrix"
	"github.com/katalvlaran/graphmetrics/separators"
)

// ErrGraphNil is returned by Build for a nil graph.
var ErrGraphNil = errors.New("report: graph is nil")

// Report is the complete structural summary of one graph.
// Slices are never nil, so encoders print [] rather than null.
type Report struct {
	Nodes              int             `json:"nodes" yaml:"nodes"`
	Edges              int             `json:"edges" yaml:"edges"`
	Degrees            []int           `json:"degrees" yaml:"degrees"`
	Components         [][]int         `json:"components" yaml:"components"`
	Eccentricities     []matrix.Length `json:"eccentricities" yaml:"eccentricities"`
	Diameter           matrix.Length   `json:"diameter" yaml:"diameter"`
	Radius             matrix.Length   `json:"radius" yaml:"radius"`
	Center             []int           `json:"center" yaml:"center"`
	ArticulationPoints []int           `json:"articulation_points" yaml:"articulation_points"`
	Bridges            []graph.Edge    `json:"bridges" yaml:"bridges"`
}

// Option tunes Build.
type Option func(*options)

type options struct {
	sequential bool
	sepOpts    []separators.Option
}

// WithSequential computes separators with the lazy sequential variants.
func WithSequential() Option {
	return func(o *options) { o.sequential = true }
}

// WithSeparatorOptions forwards options to the parallel separator variants.
// Ignored under WithSequential.
func WithSeparatorOptions(opts ...separators.Option) Option {
	return func(o *options) { o.sepOpts = append(o.sepOpts, opts...) }
}

// Build computes the report for g.
//
// Errors: ErrGraphNil, or any error of the parallel separator variants
// (ctx.Err(), separators.ErrOptionViolation).
func Build(ctx context.Context, g *graph.Graph, opts ...Option) (*Report, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	r := &Report{
		Nodes:          g.NodeCount(),
		Edges:          g.EdgeCount(),
		Degrees:        g.Degrees(),
		Components:     g.Components(),
		Eccentricities: g.Eccentricities(),
		Diameter:       g.Diameter(),
		Radius:         g.Radius(),
		Center:         g.Center(),
	}

	if o.sequential {
		r.ArticulationPoints = slices.Collect(separators.ArticulationPoints(g))
		r.Bridges = slices.Collect(separators.Bridges(g))
	} else {
		var err error
		if r.ArticulationPoints, err = separators.ArticulationPointsParallel(ctx, g, o.sepOpts...); err != nil {
			return nil, fmt.Errorf("report: %w", err)
		}
		if r.Bridges, err = separators.BridgesParallel(ctx, g, o.sepOpts...); err != nil {
			return nil, fmt.Errorf("report: %w", err)
		}
	}
	r.normalize()

	return r, nil
}

// normalize replaces nil slices with empty ones.
func (r *Report) normalize() {
	if r.Degrees == nil {
		r.Degrees = []int{}
	}
	if r.Components == nil {
		r.Components = [][]int{}
	}
	if r.Eccentricities == nil {
		r.Eccentricities = []matrix.Length{}
	}
	if r.Center == nil {
		r.Center = []int{}
	}
	if r.ArticulationPoints == nil {
		r.ArticulationPoints = []int{}
	}
	if r.Bridges == nil {
		r.Bridges = []graph.Edge{}
	}
}
