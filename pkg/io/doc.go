// Package io reads and writes the JSON documents at the edges of the
// pipeline: the edge-list input and the computed layout output.
//
// # Input format
//
// The input is a JSON object with an "edges" array and optional "nodes",
// "labels", and "above" arrays:
//
//	{
//	  "nodes": ["a", "b", "lonely"],
//	  "labels": ["Alpha", "Beta", "Lonely"],
//	  "edges": [
//	    {"from": "a", "to": "b"},
//	    {"from": 1, "to": 2}
//	  ],
//	  "above": [1, 3]
//	}
//
// Node ids may be nonnegative integers or strings; both map onto the
// canonical string key of [graph.NodeID]. The optional "nodes" array
// preserves isolated nodes, "labels" supplies display labels in the same
// order, and "above" is a side specification (booleans or one-based edge
// indices).
//
// # Output format
//
// [WriteResult] emits the computed coordinates, per-edge geometry, and
// bounds so downstream tooling can place annotations at the exact positions
// the renderer used.
package io
