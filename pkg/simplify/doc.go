// Package simplify reduces polylines with the Ramer-Douglas-Peucker algorithm.
//
// # Algorithm
//
// For a range of the path, the chord is the segment between its two
// endpoints. Every interior point is measured by its perpendicular distance
// to the chord's line: the absolute dot product of the chord's unit normal
// with the vector from the first endpoint to the point. If the farthest
// point lies strictly farther than the tolerance it is kept, and the two
// sub-ranges on either side of it are processed the same way with their own
// chords. Otherwise every interior point of the range is dropped.
//
// The result is always a subsequence of the input that contains the first
// and last points. A tolerance of 0 keeps every point with a nonzero
// distance; there is no epsilon.
//
// # Implementation
//
// Ranges are processed from an explicit work stack instead of by recursion,
// so the depth of the subdivision is bounded by heap memory rather than the
// goroutine stack. The worst case remains O(n²) comparisons (e.g. when
// distances grow monotonically along the path).
//
// A range whose endpoints coincide has no direction to measure against.
// Such ranges are never subdivided: only their endpoints survive.
//
// # Tracing
//
// [Trace] returns the simplified path together with one [Split] per examined
// range, in processing order. [ToDOT] and [RenderSVG] draw that record as a
// tree, which is useful when tuning tolerances:
//
//	out, splits := simplify.Trace(path, 0.01)
//	svg, err := simplify.RenderSVG(simplify.ToDOT(splits, simplify.DOTOptions{}))
package simplify
