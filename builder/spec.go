// SPDX-License-Identifier: MIT
// Package: builder
//
// spec.go - textual fixture specs ("path:10", "cycle:5", ...) for the CLI.

package builder

import (
	"fmt"
	"strconv"
	"strings"
)

// fixtures maps a spec kind to its Constructor factory.
var fixtures = map[string]func(int) Constructor{
	"empty":    Empty,
	"path":     Path,
	"cycle":    Cycle,
	"star":     Star,
	"wheel":    Wheel,
	"complete": Complete,
}

// ParseSpec turns "kind:n" into a Constructor. Kinds: empty, path, cycle, star,
// wheel, complete. Size validation happens when the Constructor runs.
// Errors: ErrBadSpec.
func ParseSpec(s string) (Constructor, error) {
	kind, size, ok := strings.Cut(strings.TrimSpace(s), ":")
	if !ok {
		return nil, fmt.Errorf("ParseSpec(%q): want kind:n: %w", s, ErrBadSpec)
	}
	factory, found := fixtures[strings.ToLower(kind)]
	if !found {
		return nil, fmt.Errorf("ParseSpec(%q): unknown kind %q: %w", s, kind, ErrBadSpec)
	}
	n, err := strconv.Atoi(size)
	if err != nil {
		return nil, fmt.Errorf("ParseSpec(%q): size: %w: %v", s, ErrBadSpec, err)
	}

	return factory(n), nil
}
