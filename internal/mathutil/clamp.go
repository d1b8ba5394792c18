package mathutil

// Number covers the value types that flow through pixel filtering paths.
type Number interface {
	~int | ~int32 | ~int64 | ~float32 | ~float64
}

// Clamp limits v to the inclusive range [lo, hi].
// Used for both sample-range clipping and edge-replicated index access.
func Clamp[T Number](v, lo, hi T) T {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// ClampIndex limits a sample index to [0, last], replicating the edge
// sample for out-of-bounds filter window positions.
func ClampIndex(i, last int) int {
	return Clamp(i, 0, last)
}
