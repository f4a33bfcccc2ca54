package simplify

import (
	"math"
	"testing"

	"github.com/matzehuels/polyline/pkg/geom"
	"github.com/matzehuels/polyline/pkg/smooth"
	"github.com/matzehuels/polyline/pkg/synth"
)

func generated(seed uint64) geom.Path {
	return synth.NewGenerator(seed).Generate(synth.DefaultParams())
}

// isSubsequence reports whether every point of sub appears in p in the same relative order.
func isSubsequence(sub, p geom.Path) bool {
	j := 0
	for _, v := range p {
		if j < len(sub) && sub[j] == v {
			j++
		}
	}
	return j == len(sub)
}

func TestSimplifyPeak(t *testing.T) {
	p := geom.Path{geom.V(0, 0), geom.V(1, 5), geom.V(2, 0)}

	tests := []struct {
		name      string
		tolerance float64
		want      geom.Path
	}{
		{"large tolerance drops peak", 10, geom.Path{geom.V(0, 0), geom.V(2, 0)}},
		{"small tolerance keeps peak", 1, p},
		{"just below distance keeps peak", 4.999, p},
		{"equal to distance drops peak", 5, geom.Path{geom.V(0, 0), geom.V(2, 0)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Simplify(p, tt.tolerance); !got.Equal(tt.want) {
				t.Errorf("Simplify(tol=%v) = %v, want %v", tt.tolerance, got, tt.want)
			}
		})
	}
}

func TestSimplifyDegenerateChord(t *testing.T) {
	p := geom.Path{geom.V(3, 3), geom.V(5, 5), geom.V(3, 3)}
	want := geom.Path{geom.V(3, 3), geom.V(3, 3)}
	for _, tol := range []float64{0, 0.5, 100} {
		got := Simplify(p, tol)
		if !got.Equal(want) {
			t.Errorf("Simplify(tol=%v) = %v, want %v", tol, got, want)
		}
		for _, v := range got {
			if math.IsNaN(v.X) || math.IsNaN(v.Y) {
				t.Fatalf("NaN in output: %v", got)
			}
		}
	}
}

func TestSimplifyCollinear(t *testing.T) {
	lines := map[string]func(i float64) geom.Vec2{
		"horizontal": func(i float64) geom.Vec2 { return geom.V(i, 2) },
		"vertical":   func(i float64) geom.Vec2 { return geom.V(-1, i) },
		"diagonal":   func(i float64) geom.Vec2 { return geom.V(i, i) },
	}
	for name, at := range lines {
		t.Run(name, func(t *testing.T) {
			var p geom.Path
			for i := range 20 {
				p = append(p, at(float64(i)))
			}
			got := Simplify(p, 0)
			want := geom.Path{p[0], p[len(p)-1]}
			if !got.Equal(want) {
				t.Errorf("Simplify = %v, want %v", got, want)
			}
		})
	}
}

func TestSimplifyProperties(t *testing.T) {
	for _, seed := range []uint64{1, 2, 3, 42} {
		raw := generated(seed)
		for _, r := range []int{0, 1, 4} {
			p := smooth.Smooth(raw, r)
			for _, tol := range []float64{0, 1e-4, 1e-3, 0.01, 0.05, 0.2} {
				got := Simplify(p, tol)

				if len(got) < 2 || got[0] != p[0] || got[len(got)-1] != p[len(p)-1] {
					t.Fatalf("seed %d r %d tol %v: endpoints not retained", seed, r, tol)
				}
				if len(got) > len(p) {
					t.Fatalf("seed %d r %d tol %v: output longer than input", seed, r, tol)
				}
				if !isSubsequence(got, p) {
					t.Fatalf("seed %d r %d tol %v: output is not a subsequence", seed, r, tol)
				}
				if again := Simplify(got, tol); !again.Equal(got) {
					t.Fatalf("seed %d r %d tol %v: not idempotent (%d -> %d points)", seed, r, tol, len(got), len(again))
				}
			}
		}
	}
}

func TestSimplifyToleranceMonotone(t *testing.T) {
	p := generated(7)
	prev := len(p) + 1
	for _, tol := range []float64{0, 1e-5, 1e-4, 1e-3, 1e-2, 1e-1, 1} {
		n := len(Simplify(p, tol))
		if n > prev {
			t.Errorf("tol %v kept %d points, more than %d at a smaller tolerance", tol, n, prev)
		}
		prev = n
	}
}

func TestSimplifyAboveMaxDeviation(t *testing.T) {
	p := generated(9)
	tol := MaxDeviation(p)
	got := Simplify(p, tol)
	want := geom.Path{p[0], p[len(p)-1]}
	if !got.Equal(want) {
		t.Errorf("Simplify(tol=max deviation) kept %d points, want 2", len(got))
	}
	if got := Simplify(p, math.Inf(1)); !got.Equal(want) {
		t.Errorf("Simplify(tol=+Inf) kept %d points, want 2", len(got))
	}
}

func TestSimplifyShortPaths(t *testing.T) {
	if got := Simplify(nil, 0); len(got) != 0 {
		t.Errorf("nil path = %v", got)
	}
	one := geom.Path{geom.V(1, 2)}
	if got := Simplify(one, 0); !got.Equal(one) {
		t.Errorf("single point = %v", got)
	}
	two := geom.Path{geom.V(1, 2), geom.V(3, 4)}
	if got := Simplify(two, 0); !got.Equal(two) {
		t.Errorf("two points = %v", got)
	}
}

func TestSimplifyDoesNotMutateInput(t *testing.T) {
	p := generated(4)
	orig := p.Clone()
	Simplify(p, 0.01)
	if !p.Equal(orig) {
		t.Error("Simplify mutated its input")
	}
}

func TestSimplifyLargeInput(t *testing.T) {
	// A long convex run keeps the work stack busy with nested ranges.
	n := 20000
	p := make(geom.Path, n)
	for i := range p {
		x := float64(i)
		p[i] = geom.V(x, x*x)
	}
	p[n-1] = geom.V(float64(n-1), 0)
	got := Simplify(p, 0)
	if got[0] != p[0] || got[len(got)-1] != p[n-1] {
		t.Fatal("endpoints not retained")
	}
	if !isSubsequence(got, p) {
		t.Fatal("output is not a subsequence")
	}
}

func TestTraceMatchesSimplify(t *testing.T) {
	p := generated(12)
	for _, tol := range []float64{0, 0.001, 0.02} {
		out, splits := Trace(p, tol)
		if !out.Equal(Simplify(p, tol)) {
			t.Fatalf("tol %v: Trace and Simplify disagree", tol)
		}
		if len(splits) == 0 || splits[0].Parent != -1 || splits[0].Begin != 0 || splits[0].End != len(p)-1 {
			t.Fatalf("tol %v: bad root split %+v", tol, splits[0])
		}
		keptCount := 0
		for i, s := range splits {
			if s.Kept {
				keptCount++
				if s.Distance <= tol {
					t.Errorf("split %d kept at distance %v <= %v", i, s.Distance, tol)
				}
			}
			if s.Parent >= i {
				t.Errorf("split %d has parent %d recorded after it", i, s.Parent)
			}
		}
		if keptCount != len(out)-2 {
			t.Errorf("tol %v: %d kept splits, %d interior output points", tol, keptCount, len(out)-2)
		}
	}
}

func TestTraceOrder(t *testing.T) {
	p := geom.Path{geom.V(0, 0), geom.V(1, 2), geom.V(2, 0), geom.V(3, 4), geom.V(4, 0)}
	_, splits := Trace(p, 0.1)

	if splits[0].Index != 3 || !splits[0].Kept {
		t.Fatalf("root split = %+v, want keep 3", splits[0])
	}
	// The left sub-range is examined before the right one.
	if splits[1].Begin != 0 || splits[1].End != 3 {
		t.Errorf("second split = [%d..%d], want [0..3]", splits[1].Begin, splits[1].End)
	}
}

func TestDistance(t *testing.T) {
	if d := Distance(geom.V(1, 5), geom.V(0, 0), geom.V(2, 0)); d != 5 {
		t.Errorf("Distance = %v, want 5", d)
	}
	if d := Distance(geom.V(1, 5), geom.V(2, 2), geom.V(2, 2)); d != 0 {
		t.Errorf("degenerate Distance = %v, want 0", d)
	}
	// Beyond the segment the distance is still measured to the line.
	if d := Distance(geom.V(10, 3), geom.V(0, 0), geom.V(1, 0)); d != 3 {
		t.Errorf("Distance = %v, want 3", d)
	}
}
