package graph

import (
	"sort"

	"github.com/arcgram/arcgram/pkg/errors"
)

// Ordering selects the final node placement. Exactly one of Indices and
// Labels may be set: Indices is a zero-based permutation, Labels is a
// sequence of display labels resolved against the label set.
type Ordering struct {
	Indices []int
	Labels  []string
}

// Options configures Build.
type Options struct {
	// Nodes, when non-nil, is used verbatim as the node set. This preserves
	// isolated nodes that appear in no edge. When nil, nodes are discovered
	// from the edge list.
	Nodes []NodeID

	// Labels, when non-nil, supplies one display label per discovered node.
	// When nil, labels default to the node ids.
	Labels []string

	// Ordering, when non-nil, overrides Sorted and the default
	// discovery-order placement.
	Ordering *Ordering

	// Sorted places nodes in ascending label order; Decreasing flips it.
	Sorted     bool
	Decreasing bool
}

// Info is the normalized graph: the node and label sets reordered into final
// placement, plus the permutation that produced them.
type Info struct {
	// Nodes in final placement order.
	Nodes []NodeID
	// Labels in final placement order, 1:1 with Nodes.
	Labels []string
	// Perm maps final position to discovery index: the node at final
	// position i was discovered at index Perm[i]. Callers use it to reorder
	// per-node attribute arrays that are indexed in discovery order.
	Perm []int
}

// Build validates and normalizes the raw edge list into a canonical node set,
// label set, and node ordering.
//
// Node discovery, label defaulting, and ordering precedence follow a strict
// contract:
//
//  1. An explicit Ordering wins. Numeric orderings compose on top of the
//     ascending label sort (see resolveNumeric); label orderings resolve each
//     entry against the label set and report every unresolved entry at once.
//  2. Otherwise Sorted places nodes in ascending (or, with Decreasing,
//     descending) label order.
//  3. Otherwise nodes stay in discovery order.
func Build(edges EdgeList, opts Options) (*Info, error) {
	nodes := opts.Nodes
	if nodes == nil {
		nodes = edges.Nodes()
	}
	if len(nodes) == 0 {
		return nil, errors.New(errors.ErrCodeEmptyGraph, "edge list yields no nodes")
	}

	labels := opts.Labels
	if labels == nil {
		labels = make([]string, len(nodes))
		for i, id := range nodes {
			labels[i] = string(id)
		}
	} else if len(labels) != len(nodes) {
		return nil, errors.New(errors.ErrCodeLengthMismatch,
			"%d labels supplied for %d nodes", len(labels), len(nodes))
	}

	perm, err := resolvePerm(nodes, labels, opts)
	if err != nil {
		return nil, err
	}

	info := &Info{
		Nodes:  make([]NodeID, len(nodes)),
		Labels: make([]string, len(nodes)),
		Perm:   perm,
	}
	for i, p := range perm {
		info.Nodes[i] = nodes[p]
		info.Labels[i] = labels[p]
	}
	return info, nil
}

func resolvePerm(nodes []NodeID, labels []string, opts Options) ([]int, error) {
	switch {
	case opts.Ordering != nil:
		ord := opts.Ordering
		if len(ord.Indices) > 0 && len(ord.Labels) > 0 {
			return nil, errors.New(errors.ErrCodeInvalidInput,
				"ordering cannot mix numeric indices and labels")
		}
		if len(ord.Indices) > 0 {
			return resolveNumeric(labels, ord.Indices)
		}
		return resolveByLabel(labels, ord.Labels)
	case opts.Sorted:
		return sortPerm(labels, opts.Decreasing), nil
	default:
		return identityPerm(len(nodes)), nil
	}
}

// resolveNumeric applies a zero-based numeric ordering. The ordering does not
// act on discovery order directly: nodes are first placed in ascending label
// order, and the numeric permutation selects positions within that sorted
// sequence. This sort-then-permute composition matches the documented
// behavior of numeric orderings over labeled nodes.
func resolveNumeric(labels []string, indices []int) ([]int, error) {
	n := len(labels)
	if len(indices) != n {
		return nil, errors.New(errors.ErrCodeLengthMismatch,
			"ordering has %d entries for %d nodes", len(indices), n)
	}
	if err := validatePermutation(indices); err != nil {
		return nil, err
	}

	sorted := sortPerm(labels, false)
	perm := make([]int, n)
	for i, idx := range indices {
		perm[i] = sorted[idx]
	}
	return perm, nil
}

// resolveByLabel maps each ordering label to its index in the label set.
// Unresolved entries are collected and reported together so a caller fixing
// a hand-written ordering sees every offending value in one pass.
func resolveByLabel(labels []string, ordering []string) ([]int, error) {
	if len(ordering) != len(labels) {
		return nil, errors.New(errors.ErrCodeLengthMismatch,
			"ordering has %d entries for %d nodes", len(ordering), len(labels))
	}

	index := make(map[string]int, len(labels))
	for i, l := range labels {
		if _, ok := index[l]; !ok {
			index[l] = i
		}
	}

	perm := make([]int, 0, len(ordering))
	var missing []string
	for _, l := range ordering {
		i, ok := index[l]
		if !ok {
			missing = append(missing, l)
			continue
		}
		perm = append(perm, i)
	}
	if len(missing) > 0 {
		return nil, errors.New(errors.ErrCodeUnknownLabel,
			"unknown labels in ordering: %v", missing)
	}
	if err := validatePermutation(perm); err != nil {
		return nil, err
	}
	return perm, nil
}

// sortPerm returns the permutation that places nodes in ascending label
// order, or descending when decreasing is set. Labels that parse as integers
// compare numerically. The sort is stable, so equal labels keep their
// discovery order.
func sortPerm(labels []string, decreasing bool) []int {
	perm := identityPerm(len(labels))
	sort.SliceStable(perm, func(i, j int) bool {
		c := NodeID(labels[perm[i]]).Compare(NodeID(labels[perm[j]]))
		if decreasing {
			return c > 0
		}
		return c < 0
	})
	return perm
}

func identityPerm(n int) []int {
	perm := make([]int, n)
	for i := range perm {
		perm[i] = i
	}
	return perm
}

func validatePermutation(perm []int) error {
	seen := make([]bool, len(perm))
	for _, p := range perm {
		if p < 0 || p >= len(perm) {
			return errors.New(errors.ErrCodeInvalidInput,
				"ordering index %d out of range [0,%d)", p, len(perm))
		}
		if seen[p] {
			return errors.New(errors.ErrCodeInvalidInput,
				"ordering repeats index %d", p)
		}
		seen[p] = true
	}
	return nil
}
