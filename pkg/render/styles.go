package render

import (
	"github.com/arcgram/arcgram/pkg/layout"
)

// Default style constants.
const (
	DefaultArcColor   = "gray50"
	DefaultArcWidth   = 1.0
	DefaultNodeShape  = "circle"
	DefaultNodeSize   = 4.0
	DefaultNodeColor  = "gray30"
	DefaultNodeFill   = "gray90"
	DefaultLabelColor = "gray30"
	DefaultLabelSize  = 12.0
	DefaultLabelFont  = "Helvetica, Arial, sans-serif"
)

// StyleSet holds caller-supplied per-item style attributes before
// resolution. Every slice is independent: any of them may be nil (defaults
// apply), a single element (broadcast to all items), or any shorter length
// (recycled cyclically). Per-node slices are indexed in node discovery
// order; Resolve reorders them into final placement order.
type StyleSet struct {
	// Per edge.
	ArcColors []string
	ArcWidths []float64
	ArcDashes []string

	// Per node, discovery order.
	NodeShapes       []string
	NodeSizes        []float64
	NodeColors       []string
	NodeFills        []string
	NodeStrokeWidths []float64

	// Per node, discovery order.
	LabelColors    []string
	LabelSizes     []float64
	LabelFonts     []string
	LabelRotations []float64
}

// ResolvedStyles holds one fully resolved style per edge and per node, in
// final order.
type ResolvedStyles struct {
	Arcs   []ArcStyle
	Nodes  []NodeStyle
	Labels []LabelStyle
}

// Resolve recycles every attribute slice to length, fills defaults for
// absent ones, and reorders the per-node attributes by the placement
// permutation from graph.Build.
func (s StyleSet) Resolve(edgeCount int, perm []int) ResolvedStyles {
	n := len(perm)

	arcColors := recycleOr(s.ArcColors, edgeCount, DefaultArcColor)
	arcWidths := recycleOr(s.ArcWidths, edgeCount, DefaultArcWidth)
	arcDashes := layout.Recycle(s.ArcDashes, edgeCount)

	nodeShapes := layout.Reorder(recycleOr(s.NodeShapes, n, DefaultNodeShape), perm)
	nodeSizes := layout.Reorder(recycleOr(s.NodeSizes, n, DefaultNodeSize), perm)
	nodeColors := layout.Reorder(recycleOr(s.NodeColors, n, DefaultNodeColor), perm)
	nodeFills := layout.Reorder(recycleOr(s.NodeFills, n, DefaultNodeFill), perm)
	nodeStrokes := layout.Reorder(recycleOr(s.NodeStrokeWidths, n, 1.0), perm)

	labelColors := layout.Reorder(recycleOr(s.LabelColors, n, DefaultLabelColor), perm)
	labelSizes := layout.Reorder(recycleOr(s.LabelSizes, n, DefaultLabelSize), perm)
	labelFonts := layout.Reorder(recycleOr(s.LabelFonts, n, DefaultLabelFont), perm)
	labelRotations := layout.Reorder(layout.Recycle(s.LabelRotations, n), perm)

	out := ResolvedStyles{
		Arcs:   make([]ArcStyle, edgeCount),
		Nodes:  make([]NodeStyle, n),
		Labels: make([]LabelStyle, n),
	}
	for i := range out.Arcs {
		out.Arcs[i] = ArcStyle{
			Color: arcColors[i],
			Width: arcWidths[i],
			Dash:  arcDashes[i],
			Cap:   "round",
			Join:  "round",
		}
	}
	for i := range out.Nodes {
		out.Nodes[i] = NodeStyle{
			Shape:       nodeShapes[i],
			Size:        nodeSizes[i],
			Color:       nodeColors[i],
			Fill:        nodeFills[i],
			StrokeWidth: nodeStrokes[i],
		}
		out.Labels[i] = LabelStyle{
			Color:         labelColors[i],
			Size:          labelSizes[i],
			Font:          labelFonts[i],
			Rotation:      labelRotations[i],
			Justification: "middle",
		}
	}
	return out
}

// recycleOr recycles vals to length n, substituting def when vals is empty.
func recycleOr[T any](vals []T, n int, def T) []T {
	if len(vals) == 0 {
		vals = []T{def}
	}
	return layout.Recycle(vals, n)
}
