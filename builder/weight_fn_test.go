// SPDX-License-Identifier: MIT

package builder_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/graphmetrics/builder"
)

func TestConstantWeightFn(t *testing.T) {
	t.Parallel()

	assert.Equal(t, int64(3), builder.ConstantWeightFn(3)(nil))
	assert.Panics(t, func() { builder.ConstantWeightFn(0) })
}

func TestUniformWeightFn(t *testing.T) {
	t.Parallel()

	fn := builder.UniformWeightFn(2, 5)
	assert.Equal(t, int64(2), fn(nil), "nil rng falls back to min")

	rng := rand.New(rand.NewSource(11))
	for i := 0; i < 200; i++ {
		w := fn(rng)
		assert.GreaterOrEqual(t, w, int64(2))
		assert.LessOrEqual(t, w, int64(5))
	}
	assert.Equal(t, int64(4), builder.UniformWeightFn(4, 4)(rng))

	assert.Panics(t, func() { builder.UniformWeightFn(0, 3) })
	assert.Panics(t, func() { builder.UniformWeightFn(5, 3) })
}
