// Package pipeline runs the complete arc-diagram computation: normalize the
// edge list, place nodes, derive arc geometry and sides, compute bounds, and
// drive a renderer.
//
// By centralizing this sequence, the CLI and library callers share one code
// path and one set of defaults.
//
// # Usage
//
//	runner := pipeline.NewRunner(logger)
//	result, err := runner.Execute(ctx, doc, pipeline.Options{
//	    Formats: []string{"svg"},
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	svg := result.Artifacts["svg"]
//
// The returned [Result] also carries the raw computed values (coordinates,
// per-edge centers and radii, side assignments, and bounds) so callers can
// place custom annotations at the exact positions the renderer used.
//
// Every invocation is independent and deterministic: identical inputs yield
// bit-identical geometry. Nothing is drawn until the whole layout resolves,
// so a failed run has no partial output.
package pipeline

import (
	"github.com/arcgram/arcgram/pkg/graph"
	"github.com/arcgram/arcgram/pkg/layout"
	"github.com/arcgram/arcgram/pkg/render"
)

// Default rendering values shared by the CLI and library callers.
const (
	DefaultWidth   = 800.0
	DefaultHeight  = 600.0
	DefaultPadding = 40.0
	DefaultScale   = 2.0 // PNG export resolution factor
)

// Format constants for output formats.
const (
	FormatSVG  = "svg"
	FormatPNG  = "png"
	FormatPDF  = "pdf"
	FormatJSON = "json"
	FormatDOT  = "dot"
)

// Options configures a pipeline run.
type Options struct {
	// Ordering inputs, mutually exclusive in precedence order: Ordering,
	// then Sorted/Decreasing, then discovery order.
	Ordering   *graph.Ordering
	Sorted     bool
	Decreasing bool

	// Vertical flips the node axis from left-right to top-bottom.
	Vertical bool

	// LabelsPositive places labels on the positive side of the axis
	// (above/right); the default is the negative side, away from the arcs.
	LabelsPositive bool

	// Styles are the caller's per-item visual attributes, recycled to
	// length and reordered by the pipeline.
	Styles render.StyleSet

	// Formats selects the artifacts to produce. Empty means svg only.
	Formats []string

	// Viewport geometry in pixels.
	Width, Height, Padding float64
	Background             string

	// Scale is the PNG resolution factor.
	Scale float64

	// DotDirected draws the nodelink artifact with arrowheads.
	DotDirected bool
}

// setDefaults fills zero values in place.
func (o *Options) setDefaults() {
	if o.Width <= 0 {
		o.Width = DefaultWidth
	}
	if o.Height <= 0 {
		o.Height = DefaultHeight
	}
	if o.Padding <= 0 {
		o.Padding = DefaultPadding
	}
	if o.Scale <= 0 {
		o.Scale = DefaultScale
	}
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatSVG}
	}
}

// Orientation returns the render orientation for the options.
func (o *Options) Orientation() render.Orientation {
	if o.Vertical {
		return render.Vertical
	}
	return render.Horizontal
}

// Result is the outcome of a pipeline run: the resolved graph, the full
// computed geometry, and the rendered artifacts keyed by format.
type Result struct {
	Info        *graph.Info
	Edges       graph.EdgeList
	Coordinates []float64
	Arcs        []layout.Arc
	MaxRadius   float64
	Sides       []bool
	Bounds      layout.Bounds
	Styles      render.ResolvedStyles

	Artifacts map[string][]byte
}
