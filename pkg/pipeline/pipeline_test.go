package pipeline

import (
	"context"
	"encoding/json"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arcgram/arcgram/pkg/errors"
	"github.com/arcgram/arcgram/pkg/graph"
	"github.com/arcgram/arcgram/pkg/io"
	"github.com/arcgram/arcgram/pkg/layout"
	"github.com/arcgram/arcgram/pkg/render"
)

func triangleDoc() *io.Document {
	return &io.Document{
		Edges: graph.EdgeList{
			{From: "A", To: "B"},
			{From: "B", To: "C"},
			{From: "C", To: "A"},
		},
	}
}

// drawCall records one renderer invocation for order and value assertions.
type drawCall struct {
	kind     string
	a, b     float64
	positive bool
	text     string
}

type fakeRenderer struct {
	xRange, yRange [2]float64
	calls          []drawCall
}

func (f *fakeRenderer) SetBounds(xRange, yRange [2]float64) {
	f.xRange, f.yRange = xRange, yRange
	f.calls = append(f.calls, drawCall{kind: "bounds"})
}

func (f *fakeRenderer) DrawArc(center, radius float64, positive bool, _ render.ArcStyle) {
	f.calls = append(f.calls, drawCall{kind: "arc", a: center, b: radius, positive: positive})
}

func (f *fakeRenderer) DrawNodeMarker(coord float64, _ render.NodeStyle) {
	f.calls = append(f.calls, drawCall{kind: "node", a: coord})
}

func (f *fakeRenderer) DrawLabel(text string, coord float64, positive bool, _ render.LabelStyle) {
	f.calls = append(f.calls, drawCall{kind: "label", a: coord, positive: positive, text: text})
}

func TestComputeLayoutTriangle(t *testing.T) {
	runner := NewRunner(nil)
	result, err := runner.ComputeLayout(context.Background(), triangleDoc(), &Options{})
	require.NoError(t, err)

	assert.Equal(t, []graph.NodeID{"A", "B", "C"}, result.Info.Nodes)
	assert.InDelta(t, 1.0/6, result.Coordinates[0], 1e-12)
	assert.InDelta(t, 0.5, result.Coordinates[1], 1e-12)
	assert.InDelta(t, 5.0/6, result.Coordinates[2], 1e-12)

	assert.InDelta(t, 1.0/3, result.Arcs[0].Center, 1e-12)
	assert.InDelta(t, 1.0/6, result.Arcs[0].Radius, 1e-12)
	assert.InDelta(t, 1.0/3, result.MaxRadius, 1e-12)

	// Default side assignment: everything positive, bounds follow.
	assert.Equal(t, []bool{true, true, true}, result.Sides)
	assert.InDelta(t, 1.0/3, result.Bounds.Max, 1e-12)
	assert.Zero(t, result.Bounds.Min)
}

func TestComputeLayoutDeterministic(t *testing.T) {
	runner := NewRunner(nil)

	r1, err := runner.ComputeLayout(context.Background(), triangleDoc(), &Options{})
	require.NoError(t, err)
	r2, err := runner.ComputeLayout(context.Background(), triangleDoc(), &Options{})
	require.NoError(t, err)

	assert.Equal(t, r1.Coordinates, r2.Coordinates)
	assert.Equal(t, r1.Arcs, r2.Arcs)
	assert.Equal(t, r1.Bounds, r2.Bounds)
}

func TestComputeLayoutSideSpec(t *testing.T) {
	doc := triangleDoc()
	doc.Above = &layout.SideSpec{Indices: []int{1, 3}}

	runner := NewRunner(nil)
	result, err := runner.ComputeLayout(context.Background(), doc, &Options{})
	require.NoError(t, err)

	assert.Equal(t, []bool{true, false, true}, result.Sides)
	assert.InDelta(t, 1.0/3, result.Bounds.Max, 1e-12)
	assert.InDelta(t, -1.0/6, result.Bounds.Min, 1e-12)
}

func TestComputeLayoutPropagatesErrors(t *testing.T) {
	doc := triangleDoc()
	doc.Above = &layout.SideSpec{Indices: []int{2, -3}}

	runner := NewRunner(nil)
	_, err := runner.ComputeLayout(context.Background(), doc, &Options{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrCodeMixedSign))
}

func TestDrawOrderAndValues(t *testing.T) {
	runner := NewRunner(nil)
	result, err := runner.ComputeLayout(context.Background(), triangleDoc(), &Options{})
	require.NoError(t, err)

	fake := &fakeRenderer{}
	Draw(result, fake, false)

	require.Len(t, fake.calls, 1+3+3+3)
	assert.Equal(t, "bounds", fake.calls[0].kind)
	assert.Equal(t, [2]float64{-0.015, 1.015}, fake.xRange)
	assert.InDelta(t, 1.0/3, fake.yRange[1], 1e-12)

	// Arcs before markers before labels.
	kinds := make([]string, 0, len(fake.calls))
	for _, c := range fake.calls {
		kinds = append(kinds, c.kind)
	}
	assert.Equal(t, []string{
		"bounds", "arc", "arc", "arc",
		"node", "node", "node",
		"label", "label", "label",
	}, kinds)

	assert.Equal(t, "A", fake.calls[7].text)
	assert.False(t, fake.calls[7].positive)
}

func TestExecuteSVGArtifact(t *testing.T) {
	runner := NewRunner(nil)
	result, err := runner.Execute(context.Background(), triangleDoc(), Options{})
	require.NoError(t, err)

	svg := string(result.Artifacts[FormatSVG])
	assert.Contains(t, svg, "<svg")
	assert.Equal(t, 3, strings.Count(svg, "<path"))
	assert.Equal(t, 3, strings.Count(svg, `<circle class="node"`))
	assert.Equal(t, 3, strings.Count(svg, `<text class="label"`))
}

func TestExecuteJSONArtifact(t *testing.T) {
	runner := NewRunner(nil)
	result, err := runner.Execute(context.Background(), triangleDoc(), Options{
		Formats: []string{FormatJSON},
	})
	require.NoError(t, err)

	var doc struct {
		Nodes       []string  `json:"nodes"`
		Coordinates []float64 `json:"coordinates"`
		MaxRadius   float64   `json:"max_radius"`
		Edges       []struct {
			From   string  `json:"from"`
			Radius float64 `json:"radius"`
		} `json:"edges"`
	}
	require.NoError(t, json.Unmarshal(result.Artifacts[FormatJSON], &doc))

	assert.Equal(t, []string{"A", "B", "C"}, doc.Nodes)
	assert.InDelta(t, 1.0/3, doc.MaxRadius, 1e-12)
	require.Len(t, doc.Edges, 3)
	assert.Equal(t, "A", doc.Edges[0].From)
	assert.True(t, math.Abs(doc.Edges[2].Radius-1.0/3) < 1e-9)
}

func TestExecuteDOTArtifact(t *testing.T) {
	runner := NewRunner(nil)
	result, err := runner.Execute(context.Background(), triangleDoc(), Options{
		Formats: []string{FormatDOT},
	})
	require.NoError(t, err)

	dot := string(result.Artifacts[FormatDOT])
	assert.Contains(t, dot, "graph G {")
	assert.Contains(t, dot, `"A" -- "B";`)
}

func TestExecuteUnknownFormat(t *testing.T) {
	runner := NewRunner(nil)
	_, err := runner.Execute(context.Background(), triangleDoc(), Options{
		Formats: []string{"gif"},
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrCodeInvalidFormat))
}

func TestOptionsDefaults(t *testing.T) {
	var opts Options
	opts.setDefaults()

	assert.Equal(t, DefaultWidth, opts.Width)
	assert.Equal(t, DefaultHeight, opts.Height)
	assert.Equal(t, []string{FormatSVG}, opts.Formats)
	assert.Equal(t, render.Horizontal, opts.Orientation())

	opts.Vertical = true
	assert.Equal(t, render.Vertical, opts.Orientation())
}
