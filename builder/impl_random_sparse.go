// SPDX-License-Identifier: MIT
// Package: builder
//
// impl_random_sparse.go - Erdős–Rényi G(n, p) block.
//
// Contract:
//   - n ≥ 0, p ∈ [0,1].
//   - cfg.rng is required when 0 < p < 1; p ∈ {0,1} is deterministic without it.
//   - Pairs (i<j) are sampled in row-major order; each accepted pair then draws
//     its weight, so results are reproducible for a fixed seed.

package builder

import "fmt"

// RandomSparse returns a Constructor sampling each pair independently with
// probability p.
func RandomSparse(n int, p float64) Constructor {
	return func(cfg builderConfig) (*block, error) {
		if err := validateMin(methodRandomSparse, n, MinRandomSparseNodes); err != nil {
			return nil, err
		}
		if err := validateProbability(methodRandomSparse, p); err != nil {
			return nil, err
		}
		if cfg.rng == nil && p > MinProbability && p < MaxProbability {
			return nil, fmt.Errorf("%s: %w", methodRandomSparse, ErrNeedRandSource)
		}

		b, err := newBlock(methodRandomSparse, n)
		if err != nil {
			return nil, err
		}
		var keep bool
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				switch p {
				case MinProbability:
					keep = false
				case MaxProbability:
					keep = true
				default:
					keep = cfg.rng.Float64() < p
				}
				if !keep {
					continue
				}
				if err = b.connect(methodRandomSparse, cfg, i, j); err != nil {
					return nil, err
				}
			}
		}

		return b, nil
	}
}
