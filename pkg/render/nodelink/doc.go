// Package nodelink renders a conventional 2D node-link view of the input
// graph using Graphviz.
//
// The arc diagram is a one-dimensional layout; a node-link drawing of the
// same edge list is often useful next to it as a sanity check. [ToDOT] emits
// the DOT source using the same resolved node set and labels as the arc
// layout, and [RenderSVG] rasterizes it through goccy/go-graphviz.
package nodelink
