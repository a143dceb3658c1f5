// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Length is the optional path length stored in a distance matrix.
//   - The zero value is Inf, so freshly allocated storage means "no path".
//
// Contract:
//   - Finite lengths are non-negative int64 values.
//   - Add saturates: an overflowing sum is Inf, never a wrapped negative.

package matrix

import (
	"encoding/json"
	"math"
	"strconv"
)

// Length is a shortest-path length that may be infinite (unreachable).
type Length struct {
	v      int64
	finite bool
}

// Inf is the infinite Length. It equals the zero value.
var Inf = Length{}

// infText is the textual rendering of Inf.
const infText = "inf"

// Finite returns a finite Length holding v.
func Finite(v int64) Length { return Length{v: v, finite: true} }

// Value returns the length and whether it is finite.
func (l Length) Value() (int64, bool) { return l.v, l.finite }

// IsInf reports whether l is infinite.
func (l Length) IsInf() bool { return !l.finite }

// Less reports whether l is strictly shorter than o. Inf is never less than
// anything; any finite length is less than Inf.
func (l Length) Less(o Length) bool {
	switch {
	case !l.finite:
		return false
	case !o.finite:
		return true
	default:
		return l.v < o.v
	}
}

// Add returns l+o. Inf absorbs; an int64 overflow yields Inf.
func (l Length) Add(o Length) Length {
	if !l.finite || !o.finite {
		return Inf
	}
	if l.v > math.MaxInt64-o.v {
		return Inf
	}

	return Finite(l.v + o.v)
}

// String renders l as a decimal number or "inf".
func (l Length) String() string {
	if !l.finite {
		return infText
	}

	return strconv.FormatInt(l.v, 10)
}

// MarshalJSON encodes Inf as null and finite lengths as numbers.
func (l Length) MarshalJSON() ([]byte, error) {
	if !l.finite {
		return []byte("null"), nil
	}

	return json.Marshal(l.v)
}

// MarshalYAML encodes Inf as null and finite lengths as integers.
func (l Length) MarshalYAML() (interface{}, error) {
	if !l.finite {
		return nil, nil
	}

	return l.v, nil
}
