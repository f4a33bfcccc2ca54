package synth

import (
	"math"
	"testing"

	"github.com/matzehuels/polyline/pkg/errors"
	"github.com/matzehuels/polyline/pkg/geom"
)

// seqSource replays fixed samples, cycling when exhausted.
type seqSource struct {
	vals []float64
	i    int
}

func (s *seqSource) Float64() float64 {
	v := s.vals[s.i%len(s.vals)]
	s.i++
	return v
}

func TestReflectInterior(t *testing.T) {
	for _, x := range []float64{0, 0.25, 0.5, 0.999, 1} {
		if got := Reflect(x, 0, 1); got != x {
			t.Errorf("Reflect(%v, 0, 1) = %v, want identity", x, got)
		}
	}
}

func TestReflect(t *testing.T) {
	tests := []struct {
		x, a, b float64
		want    float64
	}{
		{1.2, 0, 1, 0.8},
		{-0.3, 0, 1, 0.3},
		{2.5, 0, 1, 0.5},    // 2.5 -> -0.5 -> 0.5
		{-1.25, 0, 1, 0.75}, // -1.25 -> 1.25 -> 0.75
		{3, 0, 1, 1},
		{12, 10, 11, 10},
		{7, 2, 4, 3}, // 7 -> 1 -> 3
		{5, 3, 3, 3}, // degenerate range
		{math.Inf(1), 0, 1, 1},
		{math.Inf(-1), 0, 1, 0},
	}
	for _, tt := range tests {
		got := Reflect(tt.x, tt.a, tt.b)
		if math.Abs(got-tt.want) > 1e-12 {
			t.Errorf("Reflect(%v, %v, %v) = %v, want %v", tt.x, tt.a, tt.b, got, tt.want)
		}
	}
}

func TestReflectStaysInRange(t *testing.T) {
	src := NewPCGSource(7)
	for range 10000 {
		a := src.Float64()*10 - 5
		b := a + src.Float64()*3 + 0.01
		x := (src.Float64() - 0.5) * 200
		got := Reflect(x, a, b)
		if got < a || got > b {
			t.Fatalf("Reflect(%v, %v, %v) = %v, outside range", x, a, b, got)
		}
	}
}

// mirror applies the 2b-x / 2a-x rule step by step.
func mirror(x, a, b float64) float64 {
	for x < a || x > b {
		if x > b {
			x = 2*b - x
		} else {
			x = 2*a - x
		}
	}
	return x
}

func TestReflectMatchesLiteralMirroring(t *testing.T) {
	if got, want := Reflect(-0.09103601714194542, 0, 1), 0.09103601714194542; got != want {
		t.Errorf("Reflect(-0.09103601714194542, 0, 1) = %v, want %v", got, want)
	}

	src := NewPCGSource(3)
	for range 100000 {
		x := src.Float64()*1.4 - 0.2
		if got, want := Reflect(x, 0, 1), mirror(x, 0, 1); got != want {
			t.Fatalf("Reflect(%v, 0, 1) = %v, want %v", x, got, want)
		}
	}
}

func TestReflectNaN(t *testing.T) {
	if got := Reflect(math.NaN(), 0, 1); !math.IsNaN(got) {
		t.Errorf("Reflect(NaN) = %v, want NaN", got)
	}
}

func TestGenerateProperties(t *testing.T) {
	tests := []struct {
		name   string
		params Params
	}{
		{"default", DefaultParams()},
		{"wide", Params{Width: 4, Height: 2, Count: 100, Strength: 0.5}},
		{"strong jitter", Params{Width: 1, Height: 1, Count: 500, Strength: 3}},
		{"no jitter", Params{Width: 1, Height: 1, Count: 10, Strength: 0}},
		{"two points", Params{Width: 1, Height: 1, Count: 2, Strength: 0.1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewGenerator(42).Generate(tt.params)
			if len(p) != tt.params.Count {
				t.Fatalf("len = %d, want %d", len(p), tt.params.Count)
			}
			if p[0].X != 0 {
				t.Errorf("first X = %v, want 0", p[0].X)
			}
			for i, v := range p {
				if v.Y < 0 || v.Y > tt.params.Height {
					t.Errorf("point %d: Y = %v outside [0, %v]", i, v.Y, tt.params.Height)
				}
				if i > 0 && v.X <= p[i-1].X {
					t.Errorf("point %d: X = %v not greater than %v", i, v.X, p[i-1].X)
				}
			}
		})
	}
}

func TestGenerateDeterministic(t *testing.T) {
	a := NewGenerator(1).Generate(DefaultParams())
	b := NewGenerator(1).Generate(DefaultParams())
	if !a.Equal(b) {
		t.Error("same seed should produce the same path")
	}
	c := NewGenerator(2).Generate(DefaultParams())
	if a.Equal(c) {
		t.Error("different seeds should produce different paths")
	}
}

func TestGenerateExactValues(t *testing.T) {
	// U = 0.5 gives a zero step, U = 1 the largest upward step.
	src := &seqSource{vals: []float64{0.5, 1, 0.5, 0}}
	p := New(src).Generate(Params{Width: 1, Height: 2, Count: 4, Strength: 0.5})

	want := geom.Path{
		geom.V(0, 1),
		geom.V(0.25, 1.5), // 1 + 2*0.5*0.5
		geom.V(0.5, 1.5),  // zero step
		geom.V(0.75, 1.0), // 1.5 + 2*0.5*(-0.5)
	}
	if !p.Equal(want) {
		t.Errorf("Generate = %v, want %v", p, want)
	}
}

func TestGenerateReflectsAtBoundary(t *testing.T) {
	// Start at the top and push upward: the walk must fold back below 1.
	src := &seqSource{vals: []float64{0.999999, 1}}
	p := New(src).Generate(Params{Width: 1, Height: 1, Count: 3, Strength: 1})
	for i, v := range p {
		if v.Y > 1 || v.Y < 0 {
			t.Fatalf("point %d escaped: %v", i, v)
		}
	}
	if p[1].Y >= p[0].Y {
		t.Errorf("expected reflection below start, got %v then %v", p[0].Y, p[1].Y)
	}
}

func TestGenerateSmallCounts(t *testing.T) {
	g := NewGenerator(3)
	if p := g.Generate(Params{Width: 1, Height: 1, Count: 0}); len(p) != 0 {
		t.Errorf("count 0: len = %d", len(p))
	}
	if p := g.Generate(Params{Width: 1, Height: 1, Count: -4}); len(p) != 0 {
		t.Errorf("negative count: len = %d", len(p))
	}
	if p := g.Generate(Params{Width: 1, Height: 1, Count: 1}); len(p) != 1 {
		t.Errorf("count 1: len = %d", len(p))
	}
}

func TestSimplexSource(t *testing.T) {
	src := NewSimplexSource(9, 0)
	for range 1000 {
		v := src.Float64()
		if v < 0 || v >= 1 {
			t.Fatalf("sample %v outside [0, 1)", v)
		}
	}

	p := New(NewSimplexSource(9, 0.2)).Generate(DefaultParams())
	if len(p) != DefaultCount {
		t.Errorf("len = %d, want %d", len(p), DefaultCount)
	}
}

func TestParamsValidate(t *testing.T) {
	tests := []struct {
		name    string
		params  Params
		wantErr bool
	}{
		{"default", DefaultParams(), false},
		{"zero width", Params{Width: 0, Height: 1, Count: 2}, true},
		{"negative height", Params{Width: 1, Height: -1, Count: 2}, true},
		{"negative count", Params{Width: 1, Height: 1, Count: -1}, true},
		{"negative strength", Params{Width: 1, Height: 1, Count: 2, Strength: -0.1}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.params.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, errors.ErrCodeInvalidParams) {
				t.Errorf("error code = %v, want %v", errors.GetCode(err), errors.ErrCodeInvalidParams)
			}
		})
	}
}
