package render

import (
	"bytes"
	"fmt"
	"html"
)

// SVGOption configures the SVG renderer.
type SVGOption func(*SVG)

// WithSize sets the viewport dimensions in pixels.
func WithSize(width, height float64) SVGOption {
	return func(s *SVG) { s.width, s.height = width, height }
}

// WithOrientation selects the node axis direction.
func WithOrientation(o Orientation) SVGOption {
	return func(s *SVG) { s.orientation = o }
}

// WithBackground sets a background fill; the default is transparent.
func WithBackground(color string) SVGOption {
	return func(s *SVG) { s.background = color }
}

// WithPadding sets the pixel inset between the viewport edge and the plot
// window.
func WithPadding(px float64) SVGOption {
	return func(s *SVG) { s.padding = px }
}

// SVG is a [Renderer] that accumulates draw calls into an SVG document.
// Create one with NewSVG, hand it to the pipeline, then call Bytes.
//
// The zero value is not usable and SVG is not safe for concurrent use.
type SVG struct {
	width, height float64
	orientation   Orientation
	background    string
	padding       float64
	labelOffset   float64

	xmin, xmax float64
	ymin, ymax float64

	body bytes.Buffer
}

const (
	defaultSVGWidth   = 800.0
	defaultSVGHeight  = 600.0
	defaultPadding    = 40.0
	defaultLabelGapPx = 14.0
)

// NewSVG creates an SVG renderer with an 800x600 viewport, horizontal
// orientation, and a 40px plot inset.
func NewSVG(opts ...SVGOption) *SVG {
	s := &SVG{
		width:       defaultSVGWidth,
		height:      defaultSVGHeight,
		padding:     defaultPadding,
		labelOffset: defaultLabelGapPx,
		xmin:        0, xmax: 1,
		ymin: -0.5, ymax: 0.5,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// SetBounds implements [Renderer]. A degenerate perpendicular range (every
// edge a self-loop, or no edges) is widened symmetrically so the window
// never has zero span.
func (s *SVG) SetBounds(xRange, yRange [2]float64) {
	s.xmin, s.xmax = xRange[0], xRange[1]
	s.ymin, s.ymax = yRange[0], yRange[1]
	if s.ymax-s.ymin == 0 {
		s.ymin -= 0.05
		s.ymax += 0.05
	}
	if s.xmax-s.xmin == 0 {
		s.xmin -= 0.05
		s.xmax += 0.05
	}
}

// project maps a world point (axis coordinate a, perpendicular coordinate p)
// to pixel coordinates. World perpendicular values grow toward the positive
// side, which is up on screen in horizontal mode and right in vertical mode.
func (s *SVG) project(a, p float64) (px, py float64) {
	if s.orientation == Vertical {
		px = s.padding + (p-s.ymin)/(s.ymax-s.ymin)*(s.width-2*s.padding)
		py = s.padding + (a-s.xmin)/(s.xmax-s.xmin)*(s.height-2*s.padding)
		return px, py
	}
	px = s.padding + (a-s.xmin)/(s.xmax-s.xmin)*(s.width-2*s.padding)
	py = s.height - s.padding - (p-s.ymin)/(s.ymax-s.ymin)*(s.height-2*s.padding)
	return px, py
}

// scales returns the pixel-per-world-unit factors along and across the axis.
func (s *SVG) scales() (along, across float64) {
	if s.orientation == Vertical {
		return (s.height - 2*s.padding) / (s.xmax - s.xmin),
			(s.width - 2*s.padding) / (s.ymax - s.ymin)
	}
	return (s.width - 2*s.padding) / (s.xmax - s.xmin),
		(s.height - 2*s.padding) / (s.ymax - s.ymin)
}

// DrawArc implements [Renderer]. Arcs are emitted as single elliptical-arc
// path commands; differing axis scales stretch the world semicircle into the
// matching screen ellipse. A self-loop (radius zero) produces a degenerate,
// invisible path and is emitted anyway so every input edge has an element.
func (s *SVG) DrawArc(center, radius float64, positive bool, style ArcStyle) {
	x0, y0 := s.project(center-radius, 0)
	x1, y1 := s.project(center+radius, 0)
	along, across := s.scales()
	rAlong := radius * along
	rAcross := radius * across
	if rAcross < 0 {
		rAcross = -rAcross
	}

	// Positive-side semicircles run from the lower to the higher axis
	// coordinate in the positive-angle sweep.
	sweep := 0
	if positive {
		sweep = 1
	}

	// Sweep 1 runs clockwise on screen: left-to-right over the top of a
	// horizontal axis, and top-to-bottom right of a vertical one. Both are
	// the positive side.
	rx, ry := rAlong, rAcross
	if s.orientation == Vertical {
		rx, ry = rAcross, rAlong
	}

	fmt.Fprintf(&s.body, `  <path d="M %.2f %.2f A %.2f %.2f 0 0 %d %.2f %.2f" fill="none" stroke=%q stroke-width="%.2f"%s stroke-linecap=%q stroke-linejoin=%q/>`+"\n",
		x0, y0, rx, ry, sweep, x1, y1, style.Color, style.Width, dashAttr(style.Dash), style.Cap, style.Join)
}

func dashAttr(dash string) string {
	if dash == "" {
		return ""
	}
	return fmt.Sprintf(" stroke-dasharray=%q", dash)
}

// DrawNodeMarker implements [Renderer].
func (s *SVG) DrawNodeMarker(coord float64, style NodeStyle) {
	x, y := s.project(coord, 0)
	switch style.Shape {
	case "square":
		fmt.Fprintf(&s.body, `  <rect class="node" x="%.2f" y="%.2f" width="%.2f" height="%.2f" fill=%q stroke=%q stroke-width="%.2f"/>`+"\n",
			x-style.Size, y-style.Size, 2*style.Size, 2*style.Size, style.Fill, style.Color, style.StrokeWidth)
	default:
		fmt.Fprintf(&s.body, `  <circle class="node" cx="%.2f" cy="%.2f" r="%.2f" fill=%q stroke=%q stroke-width="%.2f"/>`+"\n",
			x, y, style.Size, style.Fill, style.Color, style.StrokeWidth)
	}
}

// DrawLabel implements [Renderer]. Labels sit a fixed pixel gap off the
// axis, on the requested side.
func (s *SVG) DrawLabel(text string, coord float64, positive bool, style LabelStyle) {
	x, y := s.project(coord, 0)

	anchor := style.Justification
	if s.orientation == Vertical {
		if positive {
			x += s.labelOffset
			if anchor == "" || anchor == "middle" {
				anchor = "start"
			}
		} else {
			x -= s.labelOffset
			if anchor == "" || anchor == "middle" {
				anchor = "end"
			}
		}
		y += style.Size / 3 // visually center on the marker
	} else {
		if positive {
			y -= s.labelOffset
		} else {
			y += s.labelOffset + style.Size*0.75
		}
		if anchor == "" {
			anchor = "middle"
		}
	}

	rotation := ""
	if style.Rotation != 0 {
		rotation = fmt.Sprintf(` transform="rotate(%.1f %.2f %.2f)"`, -style.Rotation, x, y)
	}

	fmt.Fprintf(&s.body, `  <text class="label" x="%.2f" y="%.2f" font-family=%q font-size="%.1f" fill=%q text-anchor=%q%s>%s</text>`+"\n",
		x, y, style.Font, style.Size, style.Color, anchor, rotation, html.EscapeString(text))
}

// Bytes returns the complete SVG document accumulated so far.
func (s *SVG) Bytes() []byte {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.1f %.1f" width="%.0f" height="%.0f">`+"\n",
		s.width, s.height, s.width, s.height)
	if s.background != "" {
		fmt.Fprintf(&buf, `  <rect width="100%%" height="100%%" fill=%q/>`+"\n", s.background)
	}
	buf.Write(s.body.Bytes())
	buf.WriteString("</svg>\n")
	return buf.Bytes()
}
