// Package graph models the raw edge-list input and normalizes it into the
// canonical node set, label set, and node ordering used by the layout core.
//
// # Overview
//
// An arc diagram starts from a two-column edge list. This package answers the
// questions that must be settled before any coordinate is computed:
//
//   - Which distinct nodes exist, and in what discovery order?
//   - What display label belongs to each node?
//   - In what final order are nodes placed along the axis?
//
// [Build] resolves all three and returns an [Info]. The ordering sources are
// mutually exclusive, in precedence order: an explicit [Ordering] (numeric
// permutation or label sequence), the Sorted/Decreasing flags, or the default
// discovery order.
//
// # Node identity
//
// Input node ids may be numeric or string-valued. Both are carried as a
// single canonical string key ([NodeID]) so identity comparison is always
// homogeneous; comparisons between two numeric keys order numerically.
//
// # Example
//
//	info, err := graph.Build(graph.EdgeList{
//	    {From: "A", To: "B"},
//	    {From: "B", To: "C"},
//	    {From: "C", To: "A"},
//	}, graph.Options{})
//	// info.Nodes == [A B C], info.Perm == [0 1 2]
package graph
