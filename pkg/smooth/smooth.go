// Package smooth applies a symmetric moving-average filter to the Y axis of a path.
package smooth

import "github.com/matzehuels/polyline/pkg/geom"

// MaxPointerRadius is the largest radius the interactive views derive from
// pointer position.
const MaxPointerRadius = 16

// Smooth returns a new path of the same length as p in which each Y is the
// arithmetic mean of the input Ys over the inclusive index window
// [max(0, i-radius), min(len-1, i+radius)]. X values pass through unchanged.
//
// Windows near the ends are truncated rather than padded, so they shrink and
// become asymmetric there. A radius of 0 returns an exact copy; a negative
// radius is treated as 0.
func Smooth(p geom.Path, radius int) geom.Path {
	out := make(geom.Path, len(p))
	if radius <= 0 {
		copy(out, p)
		return out
	}

	// A window wider than the path covers all of it; clamping keeps i+radius
	// from overflowing.
	radius = min(radius, len(p))
	last := len(p) - 1
	for i := range p {
		lo, hi := max(0, i-radius), min(last, i+radius)
		var sum float64
		for j := lo; j <= hi; j++ {
			sum += p[j].Y
		}
		out[i] = geom.V(p[i].X, sum/float64(hi-lo+1))
	}
	return out
}
