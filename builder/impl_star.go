// SPDX-License-Identifier: MIT
// Package: builder
//
// impl_star.go - implementation of Star(n): center 0 with leaves 1..n-1.

package builder

// Star returns a Constructor for a star with center node 0 and n-1 leaves.
func Star(n int) Constructor {
	return func(cfg builderConfig) (*block, error) {
		if err := validateMin(methodStar, n, MinStarNodes); err != nil {
			return nil, err
		}
		b, err := newBlock(methodStar, n)
		if err != nil {
			return nil, err
		}
		for i := 1; i < n; i++ {
			if err = b.connect(methodStar, cfg, 0, i); err != nil {
				return nil, err
			}
		}

		return b, nil
	}
}
