package synth

import "math"

// maxBounces is how many literal mirror steps Reflect takes before it
// switches to the periodic closed form.
const maxBounces = 4

// Reflect folds x into [a, b] by mirroring it off the bounds until it lands
// inside: values above b map to 2b-x, values below a map to 2a-x, repeatedly.
// Values already in [a, b] are returned unchanged.
//
// The first few bounces are mirrored literally so that small excursions come
// back bit-exact. Larger excursions use the closed form, since reflection is
// periodic with period 2(b-a). A degenerate range (a >= b) returns a.
// Infinite inputs are truncated to the nearest bound; NaN is returned as is.
func Reflect(x, a, b float64) float64 {
	if x >= a && x <= b {
		return x
	}
	if math.IsNaN(x) {
		return x
	}
	if a >= b {
		return a
	}
	if math.IsInf(x, 1) {
		return b
	}
	if math.IsInf(x, -1) {
		return a
	}

	for range maxBounces {
		switch {
		case x > b:
			x = 2*b - x
		case x < a:
			x = 2*a - x
		default:
			return x
		}
	}
	if x >= a && x <= b {
		return x
	}

	w := b - a
	t := math.Mod(x-a, 2*w)
	if t < 0 {
		t += 2 * w
	}
	if t > w {
		t = 2*w - t
	}
	return a + t
}
