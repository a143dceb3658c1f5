// SPDX-License-Identifier: MIT

package matrix_test

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/graphmetrics/matrix"
)

func TestLength_ZeroValueIsInf(t *testing.T) {
	t.Parallel()

	var l matrix.Length
	assert.True(t, l.IsInf())
	assert.Equal(t, matrix.Inf, l)
	_, ok := l.Value()
	assert.False(t, ok)
}

func TestLength_Less(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		a, b matrix.Length
		want bool
	}{
		{"finite<finite", matrix.Finite(1), matrix.Finite(2), true},
		{"equal", matrix.Finite(2), matrix.Finite(2), false},
		{"finite<inf", matrix.Finite(100), matrix.Inf, true},
		{"inf<finite", matrix.Inf, matrix.Finite(0), false},
		{"inf<inf", matrix.Inf, matrix.Inf, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.Less(tt.b))
		})
	}
}

func TestLength_AddSaturates(t *testing.T) {
	t.Parallel()

	assert.Equal(t, matrix.Finite(5), matrix.Finite(2).Add(matrix.Finite(3)))
	assert.True(t, matrix.Finite(2).Add(matrix.Inf).IsInf())
	assert.True(t, matrix.Inf.Add(matrix.Finite(2)).IsInf())
	assert.True(t, matrix.Finite(math.MaxInt64).Add(matrix.Finite(1)).IsInf())
	assert.Equal(t, matrix.Finite(math.MaxInt64), matrix.Finite(math.MaxInt64-1).Add(matrix.Finite(1)))
}

func TestLength_Encoding(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "inf", matrix.Inf.String())
	assert.Equal(t, "42", matrix.Finite(42).String())

	b, err := json.Marshal([]matrix.Length{matrix.Finite(3), matrix.Inf})
	require.NoError(t, err)
	assert.JSONEq(t, `[3,null]`, string(b))

	y, err := yaml.Marshal(map[string]matrix.Length{"a": matrix.Finite(7), "b": matrix.Inf})
	require.NoError(t, err)
	assert.YAMLEq(t, "a: 7\nb: null\n", string(y))
}
