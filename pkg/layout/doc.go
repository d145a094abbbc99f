// Package layout computes the one-dimensional node placement and per-edge arc
// geometry of an arc diagram.
//
// # Overview
//
// Given the normalized node order from [github.com/arcgram/arcgram/pkg/graph]
// the layout proceeds in four independent steps:
//
//   - [Coordinates] places n nodes at the midpoints of n equal cells of [0,1].
//   - [Geometry] derives each edge's arc: the center is the midpoint of its
//     endpoint coordinates and the radius half their distance.
//   - [Sides] decides for each edge which half-plane its arc occupies.
//   - [Bounds] derives the perpendicular-axis extent from the per-side
//     maximum radii.
//
// All steps are pure: identical inputs yield bit-identical outputs, and a
// failing step reports a coded configuration error before anything is drawn.
//
// # Style broadcasting
//
// Per-node and per-edge attribute arrays shorter than the target count are
// cyclically repeated to length by [Recycle]. This is the decided
// broadcasting policy, not an error.
package layout
