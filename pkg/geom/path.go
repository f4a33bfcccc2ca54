package geom

import (
	"math"
	"slices"
)

// Path is an ordered polyline. Slice order is the traversal order along the curve.
type Path []Vec2

// Len returns the number of points in p.
func (p Path) Len() int { return len(p) }

// Clone returns a copy of p that shares no storage with it.
func (p Path) Clone() Path {
	if p == nil {
		return nil
	}
	return slices.Clone(p)
}

// Xs returns the X coordinates of p in order.
func (p Path) Xs() []float64 {
	xs := make([]float64, len(p))
	for i, v := range p {
		xs[i] = v.X
	}
	return xs
}

// Ys returns the Y coordinates of p in order.
func (p Path) Ys() []float64 {
	ys := make([]float64, len(p))
	for i, v := range p {
		ys[i] = v.Y
	}
	return ys
}

// Bounds returns the component-wise minimum and maximum of p.
// An empty path returns two zero vectors.
func (p Path) Bounds() (lo, hi Vec2) {
	if len(p) == 0 {
		return Vec2{}, Vec2{}
	}
	lo = Vec2{math.Inf(1), math.Inf(1)}
	hi = Vec2{math.Inf(-1), math.Inf(-1)}
	for _, v := range p {
		lo.X, lo.Y = min(lo.X, v.X), min(lo.Y, v.Y)
		hi.X, hi.Y = max(hi.X, v.X), max(hi.Y, v.Y)
	}
	return lo, hi
}

// Equal reports whether p and o hold the same points in the same order.
func (p Path) Equal(o Path) bool {
	return slices.Equal(p, o)
}
