package graph

import (
	"strconv"
)

// NodeID is the canonical node identifier. Input node ids may be numeric or
// string-valued; both are normalized to a single string key at the input
// boundary so that identity comparison is always homogeneous.
type NodeID string

// NumericID formats a nonnegative integer node id as its canonical key.
func NumericID(n int) NodeID {
	return NodeID(strconv.Itoa(n))
}

// IsNumeric reports whether the id parses as an integer.
func (id NodeID) IsNumeric() bool {
	_, err := strconv.Atoi(string(id))
	return err == nil
}

// Compare orders two ids. Ids that both parse as integers compare
// numerically, so "10" sorts after "2"; everything else compares lexically.
func (id NodeID) Compare(other NodeID) int {
	a, errA := strconv.Atoi(string(id))
	b, errB := strconv.Atoi(string(other))
	if errA == nil && errB == nil {
		switch {
		case a < b:
			return -1
		case a > b:
			return 1
		default:
			return 0
		}
	}
	switch {
	case id < other:
		return -1
	case id > other:
		return 1
	default:
		return 0
	}
}

// Edge is an ordered pair of node identifiers. Duplicates and self-loops are
// permitted; each edge instance produces its own arc.
type Edge struct {
	From NodeID
	To   NodeID
}

// IsSelfLoop reports whether both endpoints are the same node.
func (e Edge) IsSelfLoop() bool { return e.From == e.To }

// EdgeList is the raw two-column input consumed by Build. Row order is
// significant: it fixes both the per-edge output order and, together with the
// column scan, the node discovery order.
type EdgeList []Edge

// Nodes returns the distinct node ids in discovery order: the From column is
// scanned top to bottom, then the To column. First occurrence wins.
func (el EdgeList) Nodes() []NodeID {
	seen := make(map[NodeID]struct{}, len(el)*2)
	var nodes []NodeID
	add := func(id NodeID) {
		if _, ok := seen[id]; !ok {
			seen[id] = struct{}{}
			nodes = append(nodes, id)
		}
	}
	for _, e := range el {
		add(e.From)
	}
	for _, e := range el {
		add(e.To)
	}
	return nodes
}
