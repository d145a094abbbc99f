package layout

import (
	"github.com/arcgram/arcgram/pkg/errors"
)

// AxisInset is the fixed overshoot applied to the along-axis plot range so
// the outermost node markers are not clipped: the axis spans
// [-AxisInset, 1+AxisInset].
const AxisInset = 0.015

// XRange returns the along-axis plot range.
func XRange() (min, max float64) {
	return -AxisInset, 1 + AxisInset
}

// Coordinates maps n nodes, in final placement order, to evenly spaced
// positions in (0,1). The unit interval is partitioned into n equal cells and
// each node sits at its cell's midpoint, so coordinate i is (i+0.5)/n.
//
// A single node lands at 0.5. Zero nodes is a configuration error.
func Coordinates(n int) ([]float64, error) {
	if n <= 0 {
		return nil, errors.New(errors.ErrCodeEmptyGraph, "cannot lay out %d nodes", n)
	}
	coords := make([]float64, n)
	width := 1.0 / float64(n)
	for i := range coords {
		coords[i] = (float64(i) + 0.5) * width
	}
	return coords, nil
}
