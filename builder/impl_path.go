// SPDX-License-Identifier: MIT
// Package: builder
//
// impl_path.go - implementation of Path(n) constructor.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - Emits edges (i-1)-i for i=1..n-1 in stable increasing order.
//   - Weights come from cfg.weightFn in emission order.
//
// Complexity: O(n²) block allocation + O(n) edges.

package builder

// Path returns a Constructor that builds a simple path P_n.
func Path(n int) Constructor {
	return func(cfg builderConfig) (*block, error) {
		if err := validateMin(methodPath, n, MinPathNodes); err != nil {
			return nil, err
		}
		b, err := newBlock(methodPath, n)
		if err != nil {
			return nil, err
		}
		for i := 1; i < n; i++ {
			if err = b.connect(methodPath, cfg, i-1, i); err != nil {
				return nil, err
			}
		}

		return b, nil
	}
}
