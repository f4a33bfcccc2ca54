package synth

import (
	"math"
	"math/rand/v2"

	"github.com/ojrac/opensimplex-go"
)

// Source supplies uniform samples in [0, 1).
// *rand.Rand from math/rand/v2 satisfies it.
type Source interface {
	Float64() float64
}

// NewPCGSource returns a seeded PCG source.
func NewPCGSource(seed uint64) Source {
	return rand.New(rand.NewPCG(seed, seed^0xdeadbeef))
}

// DefaultSimplexFrequency is the sampling step along the noise line used by
// [NewSimplexSource] when freq is not positive.
const DefaultSimplexFrequency = 0.35

type simplexSource struct {
	noise opensimplex.Noise
	freq  float64
	t     float64
}

// NewSimplexSource returns a source that walks along a line of normalized
// simplex noise. Consecutive samples are correlated, so the jitter of a
// generated walk drifts instead of flipping sign at every step.
func NewSimplexSource(seed int64, freq float64) Source {
	if freq <= 0 {
		freq = DefaultSimplexFrequency
	}
	return &simplexSource{
		noise: opensimplex.NewNormalized(seed),
		freq:  freq,
	}
}

func (s *simplexSource) Float64() float64 {
	v := s.noise.Eval2(s.t*s.freq, 0)
	s.t++
	return min(max(v, 0), math.Nextafter(1, 0))
}
