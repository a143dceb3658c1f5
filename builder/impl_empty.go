// SPDX-License-Identifier: MIT
// Package: builder
//
// impl_empty.go - implementation of Empty(n): n isolated vertices.

package builder

// Empty returns a Constructor for n isolated vertices (n ≥ 0).
func Empty(n int) Constructor {
	return func(cfg builderConfig) (*block, error) {
		if err := validateMin(methodEmpty, n, MinEmptyNodes); err != nil {
			return nil, err
		}

		return newBlock(methodEmpty, n)
	}
}
