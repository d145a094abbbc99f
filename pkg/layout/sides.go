package layout

import (
	"github.com/arcgram/arcgram/pkg/errors"
)

// SideSpec selects which half-plane each arc occupies. Exactly one of Bools
// and Indices may be set; a nil *SideSpec means every arc goes to the
// positive side (above the axis in horizontal mode, right of it in vertical
// mode).
//
// Bools is used verbatim and must match the edge count.
//
// Indices is a one-based edge index list: all-positive entries form an
// inclusion list (the named edges go positive, the rest negative),
// all-negative entries an exclusion list (the named edges go negative, the
// rest positive). An all-zero list sends every edge to the negative side.
type SideSpec struct {
	Bools   []bool
	Indices []int
}

// Sides resolves spec into one boolean per edge, true meaning positive side.
func Sides(edgeCount int, spec *SideSpec) ([]bool, error) {
	sides := make([]bool, edgeCount)

	switch {
	case spec == nil:
		for i := range sides {
			sides[i] = true
		}
		return sides, nil

	case spec.Bools != nil && spec.Indices != nil:
		return nil, errors.New(errors.ErrCodeShape,
			"side spec cannot carry both booleans and indices")

	case spec.Bools != nil:
		if len(spec.Bools) != edgeCount {
			return nil, errors.New(errors.ErrCodeLengthMismatch,
				"side spec has %d entries for %d edges", len(spec.Bools), edgeCount)
		}
		copy(sides, spec.Bools)
		return sides, nil

	case spec.Indices != nil:
		return sidesFromIndices(edgeCount, spec.Indices)

	default:
		return nil, errors.New(errors.ErrCodeShape, "side spec carries neither booleans nor indices")
	}
}

func sidesFromIndices(edgeCount int, indices []int) ([]bool, error) {
	positive, negative := 0, 0
	for _, idx := range indices {
		switch {
		case idx > 0:
			positive++
		case idx < 0:
			negative++
		}
	}
	if positive > 0 && negative > 0 {
		return nil, errors.New(errors.ErrCodeMixedSign,
			"side spec mixes positive and negative indices")
	}

	sides := make([]bool, edgeCount)

	// All zeros: every edge goes to the negative side.
	if positive == 0 && negative == 0 {
		return sides, nil
	}

	// Exclusion list: everything is positive except the named edges.
	if negative > 0 {
		for i := range sides {
			sides[i] = true
		}
	}

	for _, idx := range indices {
		if idx == 0 {
			continue
		}
		i := idx
		if i < 0 {
			i = -i
		}
		if i > edgeCount {
			return nil, errors.New(errors.ErrCodeInvalidInput,
				"side spec index %d out of range for %d edges", idx, edgeCount)
		}
		sides[i-1] = idx > 0
	}
	return sides, nil
}
