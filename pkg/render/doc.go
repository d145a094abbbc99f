// Package render draws computed arc-diagram layouts.
//
// # Overview
//
// The layout core never touches a drawing surface directly. It calls the
// [Renderer] interface with fully resolved geometry and styles; this package
// supplies that interface plus the shipped implementation:
//
//   - [SVG]: accumulates draw calls into an SVG document
//   - [ToPDF], [ToPNG]: convert the SVG to other formats via rsvg-convert
//
// A conventional 2D node-link view of the same graph is available in the
// [nodelink] subpackage, rendered through Graphviz.
//
// # Styles
//
// Callers describe appearance through a [StyleSet]: per-edge and per-node
// attribute slices that are recycled to length (shorter slices repeat
// cyclically) and, for node attributes, reordered from discovery order into
// final placement order. [StyleSet.Resolve] produces the one-style-per-item
// form the Renderer methods consume.
//
// [nodelink]: github.com/arcgram/arcgram/pkg/render/nodelink
package render
