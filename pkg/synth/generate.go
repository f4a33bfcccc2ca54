package synth

import (
	"github.com/matzehuels/polyline/pkg/errors"
	"github.com/matzehuels/polyline/pkg/geom"
)

// Bootstrap parameters used by the interactive front ends.
const (
	DefaultWidth    = 1.0
	DefaultHeight   = 1.0
	DefaultCount    = 256
	DefaultStrength = 0.1
)

// Params configures path generation.
type Params struct {
	Width    float64 `json:"width" toml:"width"`       // normalized extent along X
	Height   float64 `json:"height" toml:"height"`     // normalized extent along Y
	Count    int     `json:"count" toml:"count"`       // number of points
	Strength float64 `json:"strength" toml:"strength"` // per-step jitter as a fraction of Height
}

// DefaultParams returns width 1, height 1, 256 points and jitter strength 0.1.
func DefaultParams() Params {
	return Params{
		Width:    DefaultWidth,
		Height:   DefaultHeight,
		Count:    DefaultCount,
		Strength: DefaultStrength,
	}
}

// Validate checks that p describes a well-formed generation request.
func (p Params) Validate() error {
	if p.Width <= 0 || p.Height <= 0 {
		return errors.Invalid("size", "must be positive, got %g x %g", p.Width, p.Height)
	}
	if err := errors.ValidateCount(p.Count); err != nil {
		return err
	}
	return errors.ValidateStrength(p.Strength)
}

// Generator produces random walks from a [Source].
// It is not safe for concurrent use; each goroutine needs its own Generator.
type Generator struct {
	src Source
}

// New returns a Generator drawing from src.
func New(src Source) *Generator {
	return &Generator{src: src}
}

// NewGenerator returns a Generator backed by a PCG source seeded with seed.
func NewGenerator(seed uint64) *Generator {
	return New(NewPCGSource(seed))
}

// Generate returns a path of exactly p.Count points.
//
// The first point is (0, Height·U). Point i has X = Width·i/Count and
// Y = Reflect(prevY + Height·Strength·(U-0.5), 0, Height), where each U is a
// fresh sample. A non-positive count yields an empty path.
func (g *Generator) Generate(p Params) geom.Path {
	if p.Count <= 0 {
		return geom.Path{}
	}
	path := make(geom.Path, 0, p.Count)
	path = append(path, geom.V(0, p.Height*g.src.Float64()))

	n := float64(p.Count)
	for i := 1; i < p.Count; i++ {
		jitter := p.Height * p.Strength * (g.src.Float64() - 0.5)
		y := Reflect(path[i-1].Y+jitter, 0, p.Height)
		path = append(path, geom.V(p.Width*float64(i)/n, y))
	}
	return path
}
