// Package pkg provides the core libraries for Arcgram arc-diagram drawing.
//
// # Overview
//
// Arcgram draws arc diagrams: every node of a graph is placed on a single
// axis and each edge becomes a semicircular arc above or below it. The pkg
// directory is organized into a few main areas:
//
//  1. [graph] - Node identity, edge lists, and node ordering
//  2. [layout] - Coordinates, arc geometry, side assignment, and bounds
//  3. [render] - SVG output, styles, and the nodelink alternate view
//  4. [io] / [config] - JSON edge-list documents and TOML style files
//  5. [pipeline] - Orchestration (read → order → place → render)
//
// # Architecture
//
// The typical data flow through Arcgram:
//
//	JSON edge list
//	         ↓
//	    [graph] package (resolve node set and order)
//	         ↓
//	    [layout] package (coordinates, arcs, sides, bounds)
//	         ↓
//	    [render] package (SVG, PDF, PNG, DOT)
//	         ↓
//	    output files
//
// # Quick Start
//
// Read an edge list and render an SVG:
//
//	import (
//	    "context"
//	    "github.com/arcgram/arcgram/pkg/io"
//	    "github.com/arcgram/arcgram/pkg/pipeline"
//	)
//
//	doc, _ := io.ReadDocumentFile("graph.json")
//	runner := pipeline.NewRunner(nil)
//	result, _ := runner.Execute(context.Background(), doc, pipeline.Options{})
//	svg := result.Artifacts[pipeline.FormatSVG]
//
// # Main Packages
//
// [graph] - Edge lists with string or numeric node ids, discovery-order node
// extraction, label sorting, and explicit orderings by index or label.
//
// [layout] - Pure geometry: evenly spaced coordinates in the unit interval,
// per-edge arc centers and radii, above/below side assignment, and the
// bounding range perpendicular to the axis.
//
// [render] - The Renderer contract plus the built-in SVG sink, per-item
// style recycling, and Graphviz-based nodelink output for comparison views.
//
// [pipeline] - Shared orchestration used by both the CLI and library
// callers, with structured logging and observability hooks.
package pkg
