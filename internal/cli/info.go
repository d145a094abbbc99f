package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	arcio "github.com/arcgram/arcgram/pkg/io"
	"github.com/arcgram/arcgram/pkg/pipeline"
)

// infoOpts holds the command-line flags for the info command.
type infoOpts struct {
	sorted     bool
	decreasing bool
	showArcs   bool
}

// infoCommand creates the info command for inspecting a layout without
// rendering it. It prints node placement, bounds, and optionally the
// per-edge arc geometry.
func (c *CLI) infoCommand() *cobra.Command {
	var opts infoOpts

	cmd := &cobra.Command{
		Use:   "info [file]",
		Short: "Print the computed layout for a JSON edge list",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runInfo(cmd.Context(), args[0], &opts)
		},
	}

	cmd.Flags().BoolVar(&opts.sorted, "sorted", false, "order nodes by label")
	cmd.Flags().BoolVar(&opts.decreasing, "decreasing", false, "reverse the sorted order (requires --sorted)")
	cmd.Flags().BoolVar(&opts.showArcs, "arcs", false, "print per-edge arc geometry")

	return cmd
}

// runInfo computes the layout for input and prints a human-readable summary.
func (c *CLI) runInfo(ctx context.Context, input string, opts *infoOpts) error {
	doc, err := arcio.ReadDocumentFile(input)
	if err != nil {
		return err
	}

	result, err := c.newRunner().ComputeLayout(ctx, doc, &pipeline.Options{
		Sorted:     opts.sorted,
		Decreasing: opts.decreasing,
	})
	if err != nil {
		return err
	}

	fmt.Println(StyleTitle.Render(input))
	printStats(len(result.Info.Nodes), len(result.Edges))
	printNewline()

	printKeyValue("order", strings.Join(result.Info.Labels, " "))
	printKeyValue("max radius", fmt.Sprintf("%.4f", result.MaxRadius))
	printKeyValue("bounds", fmt.Sprintf("[%.4f, %.4f]", result.Bounds.Min, result.Bounds.Max))

	printNewline()
	for i, label := range result.Info.Labels {
		printDetail("%-12s %.4f", label, result.Coordinates[i])
	}

	if opts.showArcs {
		printNewline()
		for i, e := range result.Edges {
			side := "above"
			if !result.Sides[i] {
				side = "below"
			}
			printDetail("%s %s %s  center=%.4f radius=%.4f %s",
				e.From, iconArrow, e.To, result.Arcs[i].Center, result.Arcs[i].Radius, side)
		}
	}

	return nil
}
