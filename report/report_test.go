// SPDX-License-Identifier: MIT

package report_test

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/graphmetrics/builder"
	"github.com/katalvlaran/graphmetrics/graph"
	"github.com/katalvlaran/graphmetrics/matrix"
	"github.com/katalvlaran/graphmetrics/report"
	"github.com/katalvlaran/graphmetrics/separators"
)

func path3(t *testing.T) *graph.Graph {
	t.Helper()
	g, err := graph.New([][]int64{{0, 1, 0}, {1, 0, 1}, {0, 1, 0}})
	require.NoError(t, err)

	return g
}

func TestBuild_Path3(t *testing.T) {
	t.Parallel()

	r, err := report.Build(context.Background(), path3(t))
	require.NoError(t, err)

	assert.Equal(t, 3, r.Nodes)
	assert.Equal(t, 2, r.Edges)
	assert.Equal(t, []int{1, 2, 1}, r.Degrees)
	assert.Equal(t, [][]int{{0, 1, 2}}, r.Components)
	assert.Equal(t, []matrix.Length{matrix.Finite(2), matrix.Finite(1), matrix.Finite(2)}, r.Eccentricities)
	assert.Equal(t, matrix.Finite(2), r.Diameter)
	assert.Equal(t, matrix.Finite(1), r.Radius)
	assert.Equal(t, []int{1}, r.Center)
	assert.Equal(t, []int{1}, r.ArticulationPoints)
	assert.Equal(t, []graph.Edge{graph.NewEdge(0, 1, 1), graph.NewEdge(1, 2, 1)}, r.Bridges)
}

func TestBuild_SequentialEqualsParallel(t *testing.T) {
	t.Parallel()

	g, err := builder.BuildGraph(
		[]builder.BuilderOption{builder.WithSeed(7)},
		builder.RandomSparse(24, 0.12),
	)
	require.NoError(t, err)

	par, err := report.Build(context.Background(), g, report.WithSeparatorOptions(separators.WithWorkers(3)))
	require.NoError(t, err)
	seq, err := report.Build(context.Background(), g, report.WithSequential())
	require.NoError(t, err)
	assert.Equal(t, seq, par)
}

func TestBuild_EmptyGraph(t *testing.T) {
	t.Parallel()

	g, err := graph.New(nil)
	require.NoError(t, err)
	r, err := report.Build(context.Background(), g)
	require.NoError(t, err)

	assert.True(t, r.Diameter.IsInf())
	assert.NotNil(t, r.Center)
	assert.Empty(t, r.Center)
	assert.NotNil(t, r.Bridges)
	assert.NotNil(t, r.ArticulationPoints)

	var buf bytes.Buffer
	require.NoError(t, r.Encode(&buf, report.FormatJSON))
	assert.Contains(t, buf.String(), `"center": []`)
	assert.Contains(t, buf.String(), `"diameter": null`)
}

func TestBuild_Errors(t *testing.T) {
	t.Parallel()

	_, err := report.Build(context.Background(), nil)
	assert.ErrorIs(t, err, report.ErrGraphNil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = report.Build(ctx, path3(t))
	assert.ErrorIs(t, err, context.Canceled)

	_, err = report.Build(context.Background(), path3(t), report.WithSeparatorOptions(separators.WithWorkers(0)))
	assert.ErrorIs(t, err, separators.ErrOptionViolation)

	// Sequential ignores separator options and context.
	_, err = report.Build(ctx, path3(t), report.WithSequential(), report.WithSeparatorOptions(separators.WithWorkers(0)))
	assert.NoError(t, err)
}

func TestEncode_YAML(t *testing.T) {
	t.Parallel()

	g, err := graph.New([][]int64{{0, 4, 0}, {4, 0, 0}, {0, 0, 0}})
	require.NoError(t, err)
	r, err := report.Build(context.Background(), g)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, r.Encode(&buf, report.FormatYAML))

	var got map[string]any
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, 3, got["nodes"])
	assert.Equal(t, 1, got["edges"])
	assert.Nil(t, got["diameter"])
	assert.Equal(t, []any{nil, nil, nil}, got["eccentricities"])
	assert.Equal(t, []any{map[string]any{"u": 0, "v": 1, "weight": 4}}, got["bridges"])
}

func TestEncode_JSON(t *testing.T) {
	t.Parallel()

	r, err := report.Build(context.Background(), path3(t))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, r.Encode(&buf, report.FormatJSON))

	var got struct {
		Diameter           *int64       `json:"diameter"`
		Center             []int        `json:"center"`
		ArticulationPoints []int        `json:"articulation_points"`
		Bridges            []graph.Edge `json:"bridges"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	require.NotNil(t, got.Diameter)
	assert.EqualValues(t, 2, *got.Diameter)
	assert.Equal(t, []int{1}, got.Center)
	assert.Equal(t, []int{1}, got.ArticulationPoints)
	assert.Equal(t, r.Bridges, got.Bridges)
}

func TestEncode_Text(t *testing.T) {
	t.Parallel()

	r, err := report.Build(context.Background(), path3(t))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, r.Encode(&buf, report.FormatText))
	out := buf.String()
	assert.Contains(t, out, "articulation points:")
	assert.Contains(t, out, "[(0, 1) (1, 2)]")
	assert.Contains(t, out, "eccentricity")
	assert.Regexp(t, `diameter:\s+2\n`, out)
}

func TestFormats(t *testing.T) {
	t.Parallel()

	for in, want := range map[string]report.Format{
		"text": report.FormatText, "TXT": report.FormatText,
		"yaml": report.FormatYAML, " yml ": report.FormatYAML,
		"Json": report.FormatJSON,
	} {
		got, err := report.ParseFormat(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := report.ParseFormat("xml")
	assert.ErrorIs(t, err, report.ErrUnknownFormat)

	r, err := report.Build(context.Background(), path3(t))
	require.NoError(t, err)
	assert.ErrorIs(t, r.Encode(&bytes.Buffer{}, report.Format("csv")), report.ErrUnknownFormat)
}
