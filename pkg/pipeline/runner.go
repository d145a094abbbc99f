package pipeline

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/arcgram/arcgram/pkg/errors"
	"github.com/arcgram/arcgram/pkg/graph"
	"github.com/arcgram/arcgram/pkg/io"
	"github.com/arcgram/arcgram/pkg/layout"
	"github.com/arcgram/arcgram/pkg/observability"
	"github.com/arcgram/arcgram/pkg/render"
	"github.com/arcgram/arcgram/pkg/render/nodelink"
)

// Runner executes the layout → render pipeline. It is stateless apart from
// its logger; the same Runner can serve multiple goroutines with different
// inputs.
type Runner struct {
	Logger *log.Logger
}

// NewRunner creates a runner. A nil logger falls back to log.Default().
func NewRunner(logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Logger: logger}
}

// Execute runs the complete pipeline and renders all requested formats.
func (r *Runner) Execute(ctx context.Context, doc *io.Document, opts Options) (*Result, error) {
	opts.setDefaults()

	result, err := r.ComputeLayout(ctx, doc, &opts)
	if err != nil {
		return nil, err
	}

	if err := r.Render(ctx, result, &opts); err != nil {
		return nil, err
	}
	return result, nil
}

// ComputeLayout resolves the node order and computes all geometry without
// drawing anything. The returned Result has every value a renderer needs;
// Artifacts is empty until Render runs.
func (r *Runner) ComputeLayout(ctx context.Context, doc *io.Document, opts *Options) (*Result, error) {
	opts.setDefaults()
	start := time.Now()
	observability.Pipeline().OnLayoutStart(ctx, len(doc.Nodes), len(doc.Edges))

	result, err := r.computeLayout(doc, opts)
	observability.Pipeline().OnLayoutComplete(ctx, time.Since(start), err)
	if err != nil {
		return nil, err
	}

	r.Logger.Info("computed layout",
		"nodes", len(result.Info.Nodes),
		"edges", len(doc.Edges),
		"maxRadius", result.MaxRadius,
		"duration", time.Since(start).Round(time.Microsecond))
	return result, nil
}

func (r *Runner) computeLayout(doc *io.Document, opts *Options) (*Result, error) {
	info, err := graph.Build(doc.Edges, graph.Options{
		Nodes:      doc.Nodes,
		Labels:     doc.Labels,
		Ordering:   opts.Ordering,
		Sorted:     opts.Sorted,
		Decreasing: opts.Decreasing,
	})
	if err != nil {
		return nil, err
	}

	coords, err := layout.Coordinates(len(info.Nodes))
	if err != nil {
		return nil, err
	}

	arcs, maxRadius, err := layout.Geometry(doc.Edges, info.Nodes, coords)
	if err != nil {
		return nil, err
	}

	sides, err := layout.Sides(len(doc.Edges), doc.Above)
	if err != nil {
		return nil, err
	}

	return &Result{
		Info:        info,
		Edges:       doc.Edges,
		Coordinates: coords,
		Arcs:        arcs,
		MaxRadius:   maxRadius,
		Sides:       sides,
		Bounds:      layout.MarginBounds(arcs, sides),
		Styles:      opts.Styles.Resolve(len(doc.Edges), info.Perm),
		Artifacts:   map[string][]byte{},
	}, nil
}

// Render produces all requested artifacts from an already computed layout.
func (r *Runner) Render(ctx context.Context, result *Result, opts *Options) error {
	opts.setDefaults()
	start := time.Now()
	observability.Pipeline().OnRenderStart(ctx, opts.Formats)

	err := r.renderAll(ctx, result, opts)
	observability.Pipeline().OnRenderComplete(ctx, opts.Formats, time.Since(start), err)
	if err != nil {
		return err
	}

	r.Logger.Info("rendered outputs",
		"formats", opts.Formats,
		"duration", time.Since(start).Round(time.Millisecond))
	return nil
}

func (r *Runner) renderAll(ctx context.Context, result *Result, opts *Options) error {
	var svg []byte
	needsSVG := false
	for _, f := range opts.Formats {
		if f == FormatSVG || f == FormatPNG || f == FormatPDF {
			needsSVG = true
		}
	}
	if needsSVG {
		renderer := render.NewSVG(
			render.WithSize(opts.Width, opts.Height),
			render.WithPadding(opts.Padding),
			render.WithOrientation(opts.Orientation()),
			render.WithBackground(opts.Background),
		)
		Draw(result, renderer, opts.LabelsPositive)
		svg = renderer.Bytes()
	}

	for _, format := range opts.Formats {
		switch format {
		case FormatSVG:
			result.Artifacts[FormatSVG] = svg
		case FormatPNG:
			png, err := render.ToPNG(svg, opts.Scale)
			if err != nil {
				return err
			}
			result.Artifacts[FormatPNG] = png
		case FormatPDF:
			pdf, err := render.ToPDF(svg)
			if err != nil {
				return err
			}
			result.Artifacts[FormatPDF] = pdf
		case FormatJSON:
			data, err := marshalResult(result)
			if err != nil {
				return err
			}
			result.Artifacts[FormatJSON] = data
		case FormatDOT:
			dot := nodelink.ToDOT(result.Edges, result.Info, nodelink.Options{Directed: opts.DotDirected})
			result.Artifacts[FormatDOT] = []byte(dot)
		default:
			return errors.New(errors.ErrCodeInvalidFormat, "unknown output format %q", format)
		}
	}
	return nil
}

// Draw replays the computed layout against any renderer: bounds first, then
// arcs, then node markers, then labels. By the time Draw is called every
// value is resolved, so a renderer never observes a partial diagram.
func Draw(result *Result, renderer render.Renderer, labelsPositive bool) {
	xmin, xmax := layout.XRange()
	renderer.SetBounds(
		[2]float64{xmin, xmax},
		[2]float64{result.Bounds.Min, result.Bounds.Max},
	)

	for i, arc := range result.Arcs {
		renderer.DrawArc(arc.Center, arc.Radius, result.Sides[i], result.Styles.Arcs[i])
	}
	for i, coord := range result.Coordinates {
		renderer.DrawNodeMarker(coord, result.Styles.Nodes[i])
	}
	for i, coord := range result.Coordinates {
		renderer.DrawLabel(result.Info.Labels[i], coord, labelsPositive, result.Styles.Labels[i])
	}
}
