package layout

// Bounds is the perpendicular-axis extent needed to fit the largest arc on
// each side of the node axis. Max covers the positive side, Min the negative
// one (as a non-positive value). Either is zero when its side is empty.
type Bounds struct {
	Min float64
	Max float64
}

// MarginBounds derives the plot's perpendicular extent from per-edge radii
// and side assignments. The slices must be index-aligned; both come from the
// same edge list so this holds by construction.
func MarginBounds(arcs []Arc, sides []bool) Bounds {
	var b Bounds
	for i, arc := range arcs {
		if sides[i] {
			if arc.Radius > b.Max {
				b.Max = arc.Radius
			}
		} else {
			if -arc.Radius < b.Min {
				b.Min = -arc.Radius
			}
		}
	}
	return b
}
