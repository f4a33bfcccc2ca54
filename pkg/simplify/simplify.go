package simplify

import (
	"math"

	"github.com/zyedidia/generic/stack"

	"github.com/matzehuels/polyline/pkg/geom"
)

// Split records how one range of the path was examined.
type Split struct {
	Begin      int     `json:"begin"`      // index of the first chord endpoint
	End        int     `json:"end"`        // index of the last chord endpoint
	Index      int     `json:"index"`      // farthest interior point, -1 if there is none
	Distance   float64 `json:"distance"`   // perpendicular distance of Index from the chord
	Kept       bool    `json:"kept"`       // Distance exceeded the tolerance
	Degenerate bool    `json:"degenerate"` // the chord has zero length
	Parent     int     `json:"parent"`     // position of the parent Split in the trace, -1 for the root
}

// span is a pending range on the work stack.
type span struct {
	begin, end int
	parent     int
}

// Simplify returns the RDP simplification of p for the given tolerance.
// Paths with fewer than two points are returned as a copy.
func Simplify(p geom.Path, tolerance float64) geom.Path {
	out, _ := run(p, tolerance, false)
	return out
}

// Trace is like [Simplify] but also returns the examined ranges in processing order.
func Trace(p geom.Path, tolerance float64) (geom.Path, []Split) {
	return run(p, tolerance, true)
}

func run(p geom.Path, tolerance float64, record bool) (geom.Path, []Split) {
	n := len(p)
	if n < 2 {
		return p.Clone(), nil
	}

	keep := make([]bool, n)
	keep[0], keep[n-1] = true, true
	kept := 2

	var splits []Split
	work := stack.New[span]()
	work.Push(span{begin: 0, end: n - 1, parent: -1})

	for work.Size() > 0 {
		s := work.Pop()
		idx, dist, degenerate := farthest(p, s.begin, s.end)
		split := idx >= 0 && dist > tolerance

		self := -1
		if record {
			self = len(splits)
			splits = append(splits, Split{
				Begin:      s.begin,
				End:        s.end,
				Index:      idx,
				Distance:   dist,
				Kept:       split,
				Degenerate: degenerate,
				Parent:     s.parent,
			})
		}
		if !split {
			continue
		}

		keep[idx] = true
		kept++
		// Right is pushed first so the left half is examined first.
		if s.end-idx > 1 {
			work.Push(span{begin: idx, end: s.end, parent: self})
		}
		if idx-s.begin > 1 {
			work.Push(span{begin: s.begin, end: idx, parent: self})
		}
	}

	out := make(geom.Path, 0, kept)
	for i, k := range keep {
		if k {
			out = append(out, p[i])
		}
	}
	return out, splits
}

// farthest returns the interior point of p[begin:end+1] farthest from the
// chord p[begin]→p[end]. Ties resolve to the lowest index. It returns
// idx = -1 when the range has no interior points or the chord is degenerate.
func farthest(p geom.Path, begin, end int) (idx int, dist float64, degenerate bool) {
	chord := p[begin].To(p[end])
	if chord.IsZero() {
		return -1, 0, true
	}
	normal := chord.Normalize().Normal()

	idx = -1
	for i := begin + 1; i < end; i++ {
		d := math.Abs(normal.Dot(p[begin].To(p[i])))
		if idx < 0 || d > dist {
			idx, dist = i, d
		}
	}
	return idx, dist, false
}

// Distance returns the perpendicular distance of pt from the line through a
// and b. If a and b coincide the line is undefined and Distance returns 0.
func Distance(pt, a, b geom.Vec2) float64 {
	chord := a.To(b)
	if chord.IsZero() {
		return 0
	}
	return math.Abs(chord.Normalize().Normal().Dot(a.To(pt)))
}

// MaxDeviation returns the largest perpendicular distance of any interior
// point of p from the chord between its endpoints. Any tolerance at or above
// this value simplifies p to its two endpoints.
func MaxDeviation(p geom.Path) float64 {
	if len(p) < 3 {
		return 0
	}
	_, d, _ := farthest(p, 0, len(p)-1)
	return d
}
