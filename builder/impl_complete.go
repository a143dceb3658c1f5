// SPDX-License-Identifier: MIT
// Package: builder
//
// impl_complete.go - implementation of Complete(n) = K_n.
//
// Emission order: (i, j) for i ascending, j = i+1..n-1 ascending.

package builder

// Complete returns a Constructor for the complete simple graph K_n (n ≥ 1).
func Complete(n int) Constructor {
	return func(cfg builderConfig) (*block, error) {
		if err := validateMin(methodComplete, n, MinCompleteNodes); err != nil {
			return nil, err
		}
		b, err := newBlock(methodComplete, n)
		if err != nil {
			return nil, err
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err = b.connect(methodComplete, cfg, i, j); err != nil {
					return nil, err
				}
			}
		}

		return b, nil
	}
}
