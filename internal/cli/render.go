package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/arcgram/arcgram/pkg/config"
	"github.com/arcgram/arcgram/pkg/graph"
	arcio "github.com/arcgram/arcgram/pkg/io"
	"github.com/arcgram/arcgram/pkg/layout"
	"github.com/arcgram/arcgram/pkg/pipeline"
	"github.com/arcgram/arcgram/pkg/render"
)

// renderOpts holds the command-line flags for the render command.
// These options control node ordering, orientation, styling, and output formats.
type renderOpts struct {
	output      string   // output file path (or base path for multiple formats)
	formats     []string // output formats: "svg", "png", "pdf", "json", "dot"
	sorted      bool     // sort nodes by label instead of discovery order
	decreasing  bool     // reverse the sorted order
	ordering    string   // explicit node order as comma-separated labels
	indices     string   // explicit node order as comma-separated positions
	above       string   // per-edge side spec, overriding the document's
	vertical    bool     // place the node axis top-to-bottom
	labelsAbove bool     // draw labels on the arc side of the axis
	styleFile   string   // TOML style configuration file
	width       float64  // viewport width in pixels
	height      float64  // viewport height in pixels
	padding     float64  // viewport padding in pixels
	background  string   // background fill color
	scale       float64  // PNG resolution factor
	directed    bool     // draw DOT output with arrowheads
}

// renderCommand creates the render command for generating arc diagrams.
// It reads a JSON edge list and produces one output file per requested format.
//
// Default settings:
//   - format: svg
//   - width: 800px, height: 600px, padding: 40px
//   - ordering: discovery order (first appearance in the edge list)
//   - labels: drawn on the side opposite the arcs
func (c *CLI) renderCommand() *cobra.Command {
	var formatsStr string
	opts := renderOpts{
		width:   pipeline.DefaultWidth,
		height:  pipeline.DefaultHeight,
		padding: pipeline.DefaultPadding,
		scale:   pipeline.DefaultScale,
	}

	cmd := &cobra.Command{
		Use:   "render [file]",
		Short: "Render an arc diagram from a JSON edge list",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.formats = parseFormats(formatsStr)
			if err := validateFormats(opts.formats); err != nil {
				return err
			}
			return c.runRender(cmd.Context(), args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): svg (default), png, pdf, json, dot (comma-separated)")
	cmd.Flags().BoolVar(&opts.sorted, "sorted", false, "order nodes by label")
	cmd.Flags().BoolVar(&opts.decreasing, "decreasing", false, "reverse the sorted order (requires --sorted)")
	cmd.Flags().StringVar(&opts.ordering, "ordering", "", "explicit node order as comma-separated labels")
	cmd.Flags().StringVar(&opts.indices, "ordering-indices", "", "explicit node order as comma-separated positions into the sorted labels")
	cmd.Flags().StringVar(&opts.above, "above", "", "per-edge sides: comma-separated booleans, or 1-based edge numbers to include (all positive) or exclude (all negative)")
	cmd.Flags().BoolVar(&opts.vertical, "vertical", false, "place the node axis top-to-bottom")
	cmd.Flags().BoolVar(&opts.labelsAbove, "labels-above", false, "draw labels on the arc side of the axis")
	cmd.Flags().StringVar(&opts.styleFile, "style", "", "TOML style configuration file")
	cmd.Flags().Float64Var(&opts.width, "width", opts.width, "frame width")
	cmd.Flags().Float64Var(&opts.height, "height", opts.height, "frame height")
	cmd.Flags().Float64Var(&opts.padding, "padding", opts.padding, "frame padding")
	cmd.Flags().StringVar(&opts.background, "background", "", "background color (default transparent)")
	cmd.Flags().Float64Var(&opts.scale, "scale", opts.scale, "PNG resolution factor")
	cmd.Flags().BoolVar(&opts.directed, "directed", false, "draw DOT output with arrowheads")

	return cmd
}

// validFormats is the set of supported output formats.
var validFormats = map[string]bool{
	pipeline.FormatSVG:  true,
	pipeline.FormatPNG:  true,
	pipeline.FormatPDF:  true,
	pipeline.FormatJSON: true,
	pipeline.FormatDOT:  true,
}

// validateFormats checks that all requested formats are valid.
// It returns an error if any format is not in validFormats.
func validateFormats(formats []string) error {
	for _, f := range formats {
		if !validFormats[f] {
			return fmt.Errorf("invalid format: %s (must be 'svg', 'png', 'pdf', 'json', or 'dot')", f)
		}
	}
	return nil
}

// parseOrdering converts the --ordering and --ordering-indices flags into a
// graph.Ordering. Both flags empty yields nil (discovery or sorted order).
func parseOrdering(labels, indices string) (*graph.Ordering, error) {
	if labels != "" && indices != "" {
		return nil, fmt.Errorf("--ordering and --ordering-indices are mutually exclusive")
	}
	if labels != "" {
		return &graph.Ordering{Labels: strings.Split(labels, ",")}, nil
	}
	if indices != "" {
		parts := strings.Split(indices, ",")
		idx := make([]int, len(parts))
		for i, p := range parts {
			v, err := strconv.Atoi(strings.TrimSpace(p))
			if err != nil {
				return nil, fmt.Errorf("invalid ordering index %q: %w", p, err)
			}
			idx[i] = v
		}
		return &graph.Ordering{Indices: idx}, nil
	}
	return nil, nil
}

// parseSideSpec converts the --above flag into a layout.SideSpec. The value
// is either a boolean list ("true,false,true") or a 1-based signed index
// list ("1,3" or "-2"); an empty value yields nil, keeping the document's
// own side spec.
func parseSideSpec(s string) (*layout.SideSpec, error) {
	if s == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")

	if _, err := strconv.ParseBool(strings.TrimSpace(parts[0])); err == nil {
		bools := make([]bool, len(parts))
		for i, p := range parts {
			v, err := strconv.ParseBool(strings.TrimSpace(p))
			if err != nil {
				return nil, fmt.Errorf("invalid side value %q: %w", p, err)
			}
			bools[i] = v
		}
		return &layout.SideSpec{Bools: bools}, nil
	}

	idx := make([]int, len(parts))
	for i, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, fmt.Errorf("invalid side value %q: %w", p, err)
		}
		idx[i] = v
	}
	return &layout.SideSpec{Indices: idx}, nil
}

// basePath derives the base output path from the output and input file paths.
// If output is empty, it strips the extension from input.
// If output has a format extension (.svg, .pdf, etc.), it strips that extension.
// This is used when generating multiple files (e.g., graph.svg, graph.json).
func basePath(output, input string) string {
	if output == "" {
		return strings.TrimSuffix(input, filepath.Ext(input))
	}
	ext := filepath.Ext(output)
	if validFormats[strings.TrimPrefix(ext, ".")] {
		return strings.TrimSuffix(output, ext)
	}
	return output
}

// buildPipelineOptions converts render flags into pipeline options,
// loading the TOML style file when one is given.
func buildPipelineOptions(opts *renderOpts) (pipeline.Options, error) {
	ordering, err := parseOrdering(opts.ordering, opts.indices)
	if err != nil {
		return pipeline.Options{}, err
	}

	var styles render.StyleSet
	if opts.styleFile != "" {
		cfg, err := config.Load(opts.styleFile)
		if err != nil {
			return pipeline.Options{}, err
		}
		styles = cfg.StyleSet()
		if opts.width == pipeline.DefaultWidth && cfg.Width > 0 {
			opts.width = cfg.Width
		}
		if opts.height == pipeline.DefaultHeight && cfg.Height > 0 {
			opts.height = cfg.Height
		}
		if opts.background == "" && cfg.Background != "" {
			opts.background = cfg.Background
		}
		if opts.padding == pipeline.DefaultPadding && cfg.Padding > 0 {
			opts.padding = cfg.Padding
		}
	}

	return pipeline.Options{
		Ordering:       ordering,
		Sorted:         opts.sorted,
		Decreasing:     opts.decreasing,
		Vertical:       opts.vertical,
		LabelsPositive: opts.labelsAbove,
		Styles:         styles,
		Formats:        opts.formats,
		Width:          opts.width,
		Height:         opts.height,
		Padding:        opts.padding,
		Background:     opts.background,
		Scale:          opts.scale,
		DotDirected:    opts.directed,
	}, nil
}

// runRender loads the edge list from input, runs the layout pipeline, and
// writes one file per requested format.
func (c *CLI) runRender(ctx context.Context, input string, opts *renderOpts) error {
	logger := loggerFromContext(ctx)
	logger.Infof("Rendering %s", input)

	doc, err := arcio.ReadDocumentFile(input)
	if err != nil {
		return err
	}
	logger.Infof("Loaded edge list: %d edges", len(doc.Edges))

	if opts.above != "" {
		spec, err := parseSideSpec(opts.above)
		if err != nil {
			return err
		}
		doc.Above = spec
	}

	pipeOpts, err := buildPipelineOptions(opts)
	if err != nil {
		return err
	}

	prog := newProgress(logger)
	result, err := c.newRunner().Execute(ctx, doc, pipeOpts)
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Rendered %d arcs", len(result.Arcs)))

	printStats(len(result.Info.Nodes), len(result.Edges))

	if len(opts.formats) == 1 {
		return writeArtifact(result.Artifacts[opts.formats[0]], outputPath(opts.output, input, opts.formats[0]))
	}

	base := basePath(opts.output, input)
	for _, format := range opts.formats {
		path := fmt.Sprintf("%s.%s", base, format)
		if err := writeArtifact(result.Artifacts[format], path); err != nil {
			return err
		}
	}
	return nil
}

// outputPath resolves the destination for a single-format render.
// An empty output derives the path from the input file name.
func outputPath(output, input, format string) string {
	if output != "" {
		return output
	}
	return basePath("", input) + "." + format
}

// writeArtifact writes data to path and prints the file line.
// An empty path writes to stdout without the decoration.
func writeArtifact(data []byte, path string) error {
	out, err := openOutput(path)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err := out.Write(data); err != nil {
		return err
	}
	if path != "" {
		printFile(path)
	}
	return nil
}
