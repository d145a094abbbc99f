package layout

import (
	"math"

	"github.com/arcgram/arcgram/pkg/errors"
	"github.com/arcgram/arcgram/pkg/graph"
)

// Arc is the semicircle drawn for one edge: a half-circle of the given
// Radius centered at Center on the node axis. Radius is zero exactly for
// self-loops.
type Arc struct {
	Center float64
	Radius float64
}

// Geometry computes the arc for every edge. The nodes slice carries the
// resolved node set in final placement order and coords the matching
// coordinates from [Coordinates].
//
// Endpoint lookup is by exact id match through a value→index map. An edge
// referencing a node absent from the node set fails with an UNKNOWN_NODE
// error; this can happen when an explicitly supplied node set is smaller
// than the nodes referenced by the edge list.
//
// The second return value is the maximum radius across all edges (zero when
// the edge list is empty). When several edges tie for the maximum, only the
// radius value is meaningful downstream, so any representative works.
func Geometry(edges graph.EdgeList, nodes []graph.NodeID, coords []float64) ([]Arc, float64, error) {
	if len(nodes) != len(coords) {
		return nil, 0, errors.New(errors.ErrCodeLengthMismatch,
			"%d coordinates for %d nodes", len(coords), len(nodes))
	}

	pos := make(map[graph.NodeID]float64, len(nodes))
	for i, id := range nodes {
		pos[id] = coords[i]
	}

	arcs := make([]Arc, len(edges))
	maxRadius := 0.0
	for i, e := range edges {
		from, ok := pos[e.From]
		if !ok {
			return nil, 0, errors.New(errors.ErrCodeUnknownNode,
				"edge %d references unknown node %q", i, e.From)
		}
		to, ok := pos[e.To]
		if !ok {
			return nil, 0, errors.New(errors.ErrCodeUnknownNode,
				"edge %d references unknown node %q", i, e.To)
		}

		arcs[i] = Arc{
			Center: (from + to) / 2,
			Radius: math.Abs(from-to) / 2,
		}
		if arcs[i].Radius > maxRadius {
			maxRadius = arcs[i].Radius
		}
	}
	return arcs, maxRadius, nil
}
