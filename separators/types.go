// SPDX-License-Identifier: MIT
// Package separators provides tunable options and error definitions
// for articulation-point and bridge detection.

package separators

import (
	"errors"
	"fmt"
	"runtime"

	"github.com/katalvlaran/graphmetrics/graph"
)

// Sentinel errors for separator detection.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("separators: graph is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("separators: invalid option supplied")
)

// notFound is the per-unit sentinel for "this node is not an articulation point".
const notFound = -1

// Option configures the parallel variants via functional arguments.
// Invalid options are recorded and surfaced as ErrOptionViolation.
type Option func(*Options)

// Options holds parameters and callbacks for a parallel run.
type Options struct {
	// Workers caps the number of units running at once.
	Workers int

	// OnFoundNode is called for each articulation point after the merge.
	OnFoundNode func(node int)

	// OnFoundEdge is called for each bridge after the merge.
	OnFoundEdge func(e graph.Edge)

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with GOMAXPROCS workers and no-op hooks.
func DefaultOptions() Options {
	return Options{
		Workers:     runtime.GOMAXPROCS(0),
		OnFoundNode: func(int) {},
		OnFoundEdge: func(graph.Edge) {},
	}
}

// WithWorkers caps concurrent units. n < 1 is an ErrOptionViolation.
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: Workers must be >= 1 (%d)", ErrOptionViolation, n)
			return
		}
		o.Workers = n
	}
}

// WithOnFoundNode registers a callback for every articulation point found.
func WithOnFoundNode(fn func(node int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnFoundNode = fn
		}
	}
}

// WithOnFoundEdge registers a callback for every bridge found.
func WithOnFoundEdge(fn func(e graph.Edge)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnFoundEdge = fn
		}
	}
}

// resolve applies opts over the defaults.
func resolve(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o, o.err
}
