package layout

// Recycle repeats vals cyclically until it has length n. A slice already at
// or beyond n is truncated to exactly n; an empty input yields n zero values.
// This is the broadcasting rule for per-node and per-edge style attributes.
func Recycle[T any](vals []T, n int) []T {
	out := make([]T, n)
	if len(vals) == 0 {
		return out
	}
	for i := range out {
		out[i] = vals[i%len(vals)]
	}
	return out
}

// Reorder applies a final-placement permutation to a per-node attribute
// slice indexed in discovery order: out[i] = vals[perm[i]]. Callers recycle
// vals to the node count first.
func Reorder[T any](vals []T, perm []int) []T {
	out := make([]T, len(perm))
	for i, p := range perm {
		out[i] = vals[p]
	}
	return out
}
