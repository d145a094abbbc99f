package render

// Orientation selects the node axis direction. Horizontal places nodes left
// to right with arcs above or below the axis; Vertical places them top to
// bottom with arcs right or left of it.
type Orientation int

const (
	Horizontal Orientation = iota
	Vertical
)

// String returns "horizontal" or "vertical".
func (o Orientation) String() string {
	if o == Vertical {
		return "vertical"
	}
	return "horizontal"
}

// ArcStyle carries the resolved visual attributes for one edge's arc.
type ArcStyle struct {
	Color      string  // stroke color
	Width      float64 // stroke width
	Dash       string  // dash pattern, empty for solid
	Cap        string  // line cap: butt, round, square
	Join       string  // line join: miter, round, bevel
	MiterLimit float64 // miter limit, 0 for renderer default
}

// NodeStyle carries the resolved visual attributes for one node marker.
type NodeStyle struct {
	Shape       string  // marker shape: circle, square
	Size        float64 // marker radius
	Color       string  // stroke color
	Fill        string  // fill color
	StrokeWidth float64
}

// LabelStyle carries the resolved visual attributes for one node label.
type LabelStyle struct {
	Color         string
	Size          float64 // font size
	Font          string  // font family
	Rotation      float64 // degrees, counterclockwise
	Justification string  // start, middle, end
}

// Renderer is the drawing contract the layout core calls into. The core
// computes every coordinate, radius, and side before the first call, so an
// implementation never sees a partially resolved diagram.
//
// The positive parameter follows the side convention of the layout: true is
// above the axis in horizontal mode and right of it in vertical mode.
type Renderer interface {
	// SetBounds establishes the world-coordinate window before any drawing:
	// xRange along the node axis, yRange perpendicular to it.
	SetBounds(xRange, yRange [2]float64)

	// DrawArc draws the semicircle of the given radius centered at center on
	// the node axis, bulging into the positive or negative half-plane.
	DrawArc(center, radius float64, positive bool, style ArcStyle)

	// DrawNodeMarker draws one node marker at the given axis coordinate.
	DrawNodeMarker(coord float64, style NodeStyle)

	// DrawLabel draws one node label at the given axis coordinate, on the
	// positive or negative side of the axis.
	DrawLabel(text string, coord float64, positive bool, style LabelStyle)
}
